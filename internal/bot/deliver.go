package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/artdecor-nn/order-bot/internal/domain/directory"
	"github.com/artdecor-nn/order-bot/internal/domain/order"
	"github.com/artdecor-nn/order-bot/internal/infra/mailer"
)

// Delivery доставляет заявку менеджеру: контактам с chat_id — личным
// сообщением с пересылкой вложений по file_id, почтовым контактам —
// письмом со скачанными вложениями.
type Delivery struct {
	api  *tgbotapi.BotAPI
	mail *mailer.Mailer
	log  *slog.Logger
}

func NewDelivery(api *tgbotapi.BotAPI, mail *mailer.Mailer, log *slog.Logger) *Delivery {
	return &Delivery{api: api, mail: mail, log: log}
}

func (d *Delivery) Deliver(ctx context.Context, c directory.Contact, text string, attachments []order.Attachment) error {
	if c.ChatID != 0 {
		return d.deliverTelegram(c.ChatID, text, attachments)
	}
	if c.Email != "" {
		return d.deliverEmail(ctx, c.Email, text, attachments)
	}
	return errors.New("у контакта нет каналов доставки")
}

func (d *Delivery) deliverTelegram(chatID int64, text string, attachments []order.Attachment) error {
	if _, err := d.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return err
	}
	for i, a := range attachments {
		var msg tgbotapi.Chattable
		switch a.Kind {
		case order.AttachmentPhoto:
			msg = tgbotapi.NewPhoto(chatID, tgbotapi.FileID(a.FileID))
		default:
			msg = tgbotapi.NewDocument(chatID, tgbotapi.FileID(a.FileID))
		}
		if _, err := d.api.Send(msg); err != nil {
			return fmt.Errorf("вложение %d: %w", i+1, err)
		}
	}
	return nil
}

func (d *Delivery) deliverEmail(ctx context.Context, to, text string, attachments []order.Attachment) error {
	if d.mail == nil || !d.mail.Enabled() {
		return errors.New("почтовый канал не настроен")
	}

	files := make([]mailer.File, 0, len(attachments))
	for i, a := range attachments {
		data, err := downloadTelegramFile(d.api, a.FileID)
		if err != nil {
			return fmt.Errorf("вложение %d: %w", i+1, err)
		}
		files = append(files, mailer.File{Name: attachmentFileName(a, i), Data: data})
	}

	return d.mail.Send(ctx, to, "Новая заявка", text, files)
}

func attachmentFileName(a order.Attachment, i int) string {
	if a.Name != "" {
		return a.Name
	}
	if a.Kind == order.AttachmentPhoto {
		return fmt.Sprintf("photo_%d.jpg", i+1)
	}
	return fmt.Sprintf("file_%d", i+1)
}
