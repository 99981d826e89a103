package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/artdecor-nn/order-bot/internal/flow"
)

// Transport показывает диалог заявки клиенту. Диалог живёт в одном
// сообщении: первый показ отправляет новое, дальше редактируется оно же.
type Transport struct {
	api *tgbotapi.BotAPI
}

func NewTransport(api *tgbotapi.BotAPI) *Transport {
	return &Transport{api: api}
}

func (t *Transport) SendOrEditView(_ context.Context, chatID int64, messageID int, text string, buttons [][]flow.Choice) (int, error) {
	kb := choiceKeyboard(buttons)
	if messageID == 0 {
		m := tgbotapi.NewMessage(chatID, text)
		if len(kb.InlineKeyboard) > 0 {
			m.ReplyMarkup = kb
		}
		sent, err := t.api.Send(m)
		if err != nil {
			return 0, err
		}
		return sent.MessageID, nil
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, kb)
	if _, err := t.api.Send(edit); err != nil {
		// Повторный показ того же шага даёт идентичный текст,
		// Telegram отвечает ошибкой «message is not modified».
		if strings.Contains(err.Error(), "message is not modified") {
			return messageID, nil
		}
		return messageID, err
	}
	return messageID, nil
}

func (t *Transport) SendText(_ context.Context, chatID int64, text string) error {
	_, err := t.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (t *Transport) DeleteMessage(_ context.Context, chatID int64, messageID int) error {
	_, err := t.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID))
	return err
}
