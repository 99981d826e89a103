package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/artdecor-nn/order-bot/internal/domain/texts"
)

// adminTexts — редактируемые канонические тексты: код в callback-данных,
// ключ хранилища, кнопка меню, приглашение к вводу и подтверждение.
var adminTexts = []struct {
	code    string
	key     string
	button  string
	prompt  string
	updated string
}{
	{"start", texts.KeyStart, "Изменить стартовый текст",
		"Введите новый стартовый текст:", "Стартовый текст обновлен."},
	{"freski", texts.KeyFresco, "Изменить текст фресок",
		"Введите новый текст для фресок:", "Текст фресок обновлен."},
	{"designer", texts.KeyDesigner, "Изменить текст дизайнерских обоев",
		"Введите новый текст для дизайнерских обоев:", "Текст дизайнерских обоев обновлен."},
	{"background", texts.KeyBackground, "Изменить текст фоновых обоев",
		"Введите новый текст для фоновых обоев:", "Текст фоновых обоев обновлен."},
	{"paintings", texts.KeyPaintings, "Изменить текст картин",
		"Введите новый текст для картин:", "Текст картин обновлен."},
}

func (b *Bot) startTextEdit(chatID int64, msgID int, code string) {
	for i, t := range adminTexts {
		if t.code == code {
			b.adminSet(chatID, &adminSession{step: admText, textIdx: i})
			b.editTextAndClear(chatID, msgID, t.prompt)
			return
		}
	}
}

func (b *Bot) adminText(ctx context.Context, msg *tgbotapi.Message, st *adminSession) {
	chatID := msg.Chat.ID
	t := adminTexts[st.textIdx]

	m, err := b.texts.Load(ctx)
	if err != nil {
		b.log.Error("load texts failed", "err", err)
		m = map[string]string{}
	}
	m[t.key] = strings.TrimSpace(msg.Text)

	if err := b.texts.Save(ctx, m); err != nil {
		b.log.Error("save texts failed", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось сохранить тексты."))
		return
	}
	b.adminEnd(chatID)
	b.send(tgbotapi.NewMessage(chatID, t.updated))
	b.showAdminMenu(ctx, chatID, msg.From.ID, nil)
}
