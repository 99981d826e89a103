package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/artdecor-nn/order-bot/internal/domain/directory"
	"github.com/artdecor-nn/order-bot/internal/flow"
)

// choiceKeyboard переводит ряды кнопок диалога в inline-клавиатуру.
func choiceKeyboard(rows [][]flow.Choice) tgbotapi.InlineKeyboardMarkup {
	kb := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		btns := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, c := range row {
			btns = append(btns, tgbotapi.NewInlineKeyboardButtonData(c.Label, c.Data))
		}
		kb = append(kb, tgbotapi.NewInlineKeyboardRow(btns...))
	}
	return tgbotapi.NewInlineKeyboardMarkup(kb...)
}

func adminYesNoKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Да", "yes"),
			tgbotapi.NewInlineKeyboardButtonData("Нет", "no"),
		),
	)
}

func adminMenuKeyboard(regions []string) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{}
	for _, region := range regions {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Редактировать: "+region, "admin_edit:"+region),
		))
	}
	for _, t := range adminTexts {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t.button, "admin_text:"+t.code),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Выгрузить справочник (Excel)", "admin_export"),
		tgbotapi.NewInlineKeyboardButtonData("Загрузить справочник (Excel)", "admin_import"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func adminRegionKeyboard(region string, managers []directory.Contact) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{}
	for idx, m := range managers {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(m.Label(), fmt.Sprintf("admin_manager:%s:%d", region, idx)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Добавить менеджера", "admin_add_manager:"+region),
	))
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Назад", "admin_back"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func adminManagerKeyboard(region string, idx int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Изменить имя", fmt.Sprintf("admin_change_name:%s:%d", region, idx)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Изменить ID", fmt.Sprintf("admin_change_id:%s:%d", region, idx)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Изменить email", fmt.Sprintf("admin_change_email:%s:%d", region, idx)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Удалить", fmt.Sprintf("admin_delete:%s:%d", region, idx)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Назад", "admin_edit:"+region),
		),
	)
}

func adminDeleteKeyboard(region string, idx int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Да, удалить", fmt.Sprintf("admin_confirm_delete:%s:%d", region, idx)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Отмена", "admin_edit:"+region),
		),
	)
}
