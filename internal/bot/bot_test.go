package bot

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artdecor-nn/order-bot/internal/domain/order"
	"github.com/artdecor-nn/order-bot/internal/flow"
)

func TestTelegramLabel(t *testing.T) {
	assert.Equal(t, "@ivan (id 42)", telegramLabel(&tgbotapi.User{ID: 42, UserName: "ivan"}))
	assert.Equal(t, "без username (id 42)", telegramLabel(&tgbotapi.User{ID: 42}))
	assert.Equal(t, "без username", telegramLabel(nil))
}

func TestChoiceKeyboardShape(t *testing.T) {
	kb := choiceKeyboard([][]flow.Choice{
		{{Label: "Да", Data: "yes"}, {Label: "Нет", Data: "no"}},
		{{Label: "Назад", Data: "nav:back"}},
	})

	require.Len(t, kb.InlineKeyboard, 2)
	require.Len(t, kb.InlineKeyboard[0], 2)
	assert.Equal(t, "Да", kb.InlineKeyboard[0][0].Text)
	require.NotNil(t, kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "yes", *kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "nav:back", *kb.InlineKeyboard[1][0].CallbackData)
}

func TestAttachmentFileName(t *testing.T) {
	assert.Equal(t, "план.pdf", attachmentFileName(order.Attachment{Kind: order.AttachmentDocument, Name: "план.pdf"}, 0))
	assert.Equal(t, "photo_1.jpg", attachmentFileName(order.Attachment{Kind: order.AttachmentPhoto}, 0))
	assert.Equal(t, "file_3", attachmentFileName(order.Attachment{Kind: order.AttachmentDocument}, 2))
}
