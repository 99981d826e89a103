package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/artdecor-nn/order-bot/internal/domain/directory"
	"github.com/artdecor-nn/order-bot/internal/domain/order"
	"github.com/artdecor-nn/order-bot/internal/domain/texts"
	"github.com/artdecor-nn/order-bot/internal/flow"
)

type Bot struct {
	api      *tgbotapi.BotAPI
	log      *slog.Logger
	engine   *flow.Engine
	managers directory.Store
	texts    texts.Store
	adminIDs []int64

	admMu sync.Mutex
	adm   map[int64]*adminSession
}

func New(api *tgbotapi.BotAPI, log *slog.Logger,
	engine *flow.Engine, managersStore directory.Store,
	textsStore texts.Store, adminIDs []int64) *Bot {

	return &Bot{
		api: api, log: log, engine: engine,
		managers: managersStore, texts: textsStore,
		adminIDs: adminIDs,
		adm:      map[int64]*adminSession{},
	}
}

func (b *Bot) Run(ctx context.Context, timeoutSec int) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeoutSec
	updates := b.api.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case upd := <-updates:
			if upd.Message != nil {
				b.onMessage(ctx, upd)
			} else if upd.CallbackQuery != nil {
				b.onCallback(ctx, upd)
			}
		}
	}
}

func (b *Bot) onMessage(ctx context.Context, upd tgbotapi.Update) {
	msg := upd.Message

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}
	if b.adminActive(msg.Chat.ID) {
		b.handleAdminMessage(ctx, msg)
		return
	}
	b.handleFlowMessage(ctx, msg)
}

func (b *Bot) onCallback(ctx context.Context, upd tgbotapi.Update) {
	cb := upd.CallbackQuery
	if cb.Message == nil {
		return
	}
	if isAdminData(cb.Data) {
		b.handleAdminCallback(ctx, cb)
		return
	}
	// Ответ «Да»/«Нет» на вопрос админки «Добавить менеджера?» не
	// должен попасть в диалог заявки.
	if b.adminAwaitsConfirm(cb.Message.Chat.ID) && (cb.Data == "yes" || cb.Data == "no") {
		b.handleAdminConfirm(ctx, cb)
		return
	}
	_ = b.answerCallback(cb, "", false)
	b.engine.Handle(ctx, cb.Message.Chat.ID, flow.ButtonEvent(cb.Data))
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch msg.Command() {
	case "start":
		b.adminEnd(chatID)
		b.engine.Start(ctx, chatID, telegramLabel(msg.From))
	case "admin":
		b.showAdminMenu(ctx, chatID, msg.From.ID, nil)
	default:
		b.log.Debug("unknown command", "chat_id", chatID, "command", msg.Command())
	}
}

// handleFlowMessage превращает сообщение в событие диалога заявки:
// фото и документы — во вложения, остальное — в текст.
func (b *Bot) handleFlowMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch {
	case len(msg.Photo) > 0:
		// Telegram присылает варианты одного фото по возрастанию
		// размера, берём самый крупный.
		ps := msg.Photo[len(msg.Photo)-1]
		b.engine.Handle(ctx, chatID, flow.AttachmentEvent(order.Attachment{
			Kind:   order.AttachmentPhoto,
			FileID: ps.FileID,
			Size:   int64(ps.FileSize),
		}))
	case msg.Document != nil:
		b.engine.Handle(ctx, chatID, flow.AttachmentEvent(order.Attachment{
			Kind:   order.AttachmentDocument,
			FileID: msg.Document.FileID,
			Name:   msg.Document.FileName,
			Size:   int64(msg.Document.FileSize),
		}))
	case msg.Text != "":
		b.engine.Handle(ctx, chatID, flow.TextEvent(msg.Text))
	}
}

func (b *Bot) isAdmin(userID int64) bool {
	for _, id := range b.adminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func telegramLabel(u *tgbotapi.User) string {
	if u == nil {
		return "без username"
	}
	username := "без username"
	if u.UserName != "" {
		username = "@" + u.UserName
	}
	return fmt.Sprintf("%s (id %d)", username, u.ID)
}
