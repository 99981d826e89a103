package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/artdecor-nn/order-bot/internal/domain/directory"
)

func (b *Bot) showRegionManagers(ctx context.Context, chatID int64, msgID int, region string) {
	snap, err := b.managers.Load(ctx)
	if err != nil {
		b.log.Error("load managers failed", "err", err)
		b.editTextAndClear(chatID, msgID, "Не удалось загрузить справочник менеджеров.")
		return
	}

	managers := snap.Contacts(region)
	if len(managers) == 0 {
		b.adminSet(chatID, &adminSession{step: admConfirmAdd, region: region, index: -1})
		b.send(tgbotapi.NewEditMessageTextAndMarkup(chatID, msgID,
			fmt.Sprintf("Регион: %s\n\nМенеджеров нет. Добавить менеджера?", region),
			adminYesNoKeyboard()))
		return
	}
	b.send(tgbotapi.NewEditMessageTextAndMarkup(chatID, msgID,
		fmt.Sprintf("Регион: %s\n\nВыберите менеджера для редактирования:", region),
		adminRegionKeyboard(region, managers)))
}

func (b *Bot) showManagerCard(ctx context.Context, chatID int64, msgID int, region string, idx int) {
	m, ok := b.managerAt(ctx, region, idx)
	if !ok {
		b.editTextAndClear(chatID, msgID, "Менеджер не найден.")
		return
	}
	text := fmt.Sprintf("Менеджер:\nИмя: %s\nID: %s\nEmail: %s\n\nЧто изменить?",
		nameOrDefault(m.Name), chatIDOrDash(m.ChatID), emailOrDash(m.Email))
	b.send(tgbotapi.NewEditMessageTextAndMarkup(chatID, msgID, text, adminManagerKeyboard(region, idx)))
}

func (b *Bot) confirmDeleteManager(ctx context.Context, chatID int64, msgID int, region string, idx int) {
	m, ok := b.managerAt(ctx, region, idx)
	if !ok {
		b.editTextAndClear(chatID, msgID, "Менеджер не найден.")
		return
	}
	text := fmt.Sprintf("Вы уверены, что хотите удалить менеджера:\nИмя: %s\nID: %s?",
		nameOrDefault(m.Name), chatIDOrDash(m.ChatID))
	b.send(tgbotapi.NewEditMessageTextAndMarkup(chatID, msgID, text, adminDeleteKeyboard(region, idx)))
}

func (b *Bot) deleteManager(ctx context.Context, chatID int64, msgID int, region string, idx int, userID int64) {
	snap, err := b.managers.Load(ctx)
	if err != nil {
		b.log.Error("load managers failed", "err", err)
		b.editTextAndClear(chatID, msgID, "Не удалось загрузить справочник менеджеров.")
		return
	}
	if !snap.RemoveContact(region, idx) {
		b.editTextAndClear(chatID, msgID, "Менеджер не найден.")
		return
	}
	if err := b.managers.Save(ctx, snap); err != nil {
		b.log.Error("save managers failed", "err", err)
		b.editTextAndClear(chatID, msgID, "Не удалось сохранить справочник менеджеров.")
		return
	}
	b.editTextAndClear(chatID, msgID, "Менеджер удален.")
	b.showAdminMenu(ctx, chatID, userID, nil)
}

// adminName — ввод имени: для нового менеджера продолжаем вводом
// chat_id, для существующего сразу сохраняем.
func (b *Bot) adminName(ctx context.Context, msg *tgbotapi.Message, st *adminSession) {
	chatID := msg.Chat.ID
	name := strings.TrimSpace(msg.Text)

	if st.index < 0 {
		st.newName = name
		st.step = admChatID
		b.send(tgbotapi.NewMessage(chatID, fmt.Sprintf("Имя: %s\n\nВведите chat_id менеджера:", name)))
		return
	}

	snap, err := b.managers.Load(ctx)
	if err != nil {
		b.log.Error("load managers failed", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось загрузить справочник менеджеров."))
		return
	}
	if !snap.UpdateContact(st.region, st.index, func(c *directory.Contact) { c.Name = name }) {
		b.adminEnd(chatID)
		b.send(tgbotapi.NewMessage(chatID, "Менеджер не найден."))
		b.showAdminMenu(ctx, chatID, msg.From.ID, nil)
		return
	}
	if err := b.managers.Save(ctx, snap); err != nil {
		b.log.Error("save managers failed", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось сохранить справочник менеджеров."))
		return
	}
	b.adminEnd(chatID)
	b.send(tgbotapi.NewMessage(chatID, "Имя менеджера изменено на: "+name))
	b.showAdminMenu(ctx, chatID, msg.From.ID, nil)
}

func (b *Bot) adminChatID(ctx context.Context, msg *tgbotapi.Message, st *adminSession) {
	chatID := msg.Chat.ID
	id, err := strconv.ParseInt(strings.TrimSpace(msg.Text), 10, 64)
	if err != nil {
		b.send(tgbotapi.NewMessage(chatID, "Ошибка: chat_id должен быть числом. Попробуйте снова:"))
		return
	}

	snap, err := b.managers.Load(ctx)
	if err != nil {
		b.log.Error("load managers failed", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось загрузить справочник менеджеров."))
		return
	}

	var done string
	if st.index < 0 {
		snap.AppendContact(st.region, directory.Contact{Name: st.newName, ChatID: id})
		done = fmt.Sprintf("Менеджер добавлен:\nИмя: %s\nID: %d", st.newName, id)
	} else {
		if !snap.UpdateContact(st.region, st.index, func(c *directory.Contact) { c.ChatID = id }) {
			b.adminEnd(chatID)
			b.send(tgbotapi.NewMessage(chatID, "Менеджер не найден."))
			b.showAdminMenu(ctx, chatID, msg.From.ID, nil)
			return
		}
		done = fmt.Sprintf("Chat ID менеджера изменен на: %d", id)
	}

	if err := b.managers.Save(ctx, snap); err != nil {
		b.log.Error("save managers failed", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось сохранить справочник менеджеров."))
		return
	}
	b.adminEnd(chatID)
	b.send(tgbotapi.NewMessage(chatID, done))
	b.showAdminMenu(ctx, chatID, msg.From.ID, nil)
}

func (b *Bot) adminEmail(ctx context.Context, msg *tgbotapi.Message, st *adminSession) {
	chatID := msg.Chat.ID
	email := strings.TrimSpace(msg.Text)
	if email == "-" {
		email = ""
	}

	snap, err := b.managers.Load(ctx)
	if err != nil {
		b.log.Error("load managers failed", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось загрузить справочник менеджеров."))
		return
	}

	managers := snap.Contacts(st.region)
	if st.index < 0 || st.index >= len(managers) {
		b.adminEnd(chatID)
		b.send(tgbotapi.NewMessage(chatID, "Менеджер не найден."))
		b.showAdminMenu(ctx, chatID, msg.From.ID, nil)
		return
	}
	if email == "" && managers[st.index].ChatID == 0 {
		b.send(tgbotapi.NewMessage(chatID, "У менеджера должен остаться chat_id или email. Введите email:"))
		return
	}

	snap.UpdateContact(st.region, st.index, func(c *directory.Contact) { c.Email = email })
	if err := b.managers.Save(ctx, snap); err != nil {
		b.log.Error("save managers failed", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось сохранить справочник менеджеров."))
		return
	}
	b.adminEnd(chatID)
	if email == "" {
		b.send(tgbotapi.NewMessage(chatID, "Email менеджера удален."))
	} else {
		b.send(tgbotapi.NewMessage(chatID, "Email менеджера изменен на: "+email))
	}
	b.showAdminMenu(ctx, chatID, msg.From.ID, nil)
}

func (b *Bot) managerAt(ctx context.Context, region string, idx int) (directory.Contact, bool) {
	snap, err := b.managers.Load(ctx)
	if err != nil {
		b.log.Error("load managers failed", "err", err)
		return directory.Contact{}, false
	}
	managers := snap.Contacts(region)
	if idx < 0 || idx >= len(managers) {
		return directory.Contact{}, false
	}
	return managers[idx], true
}

func nameOrDefault(name string) string {
	if name == "" {
		return "Без имени"
	}
	return name
}

func chatIDOrDash(id int64) string {
	if id == 0 {
		return "—"
	}
	return strconv.FormatInt(id, 10)
}

func emailOrDash(email string) string {
	if email == "" {
		return "—"
	}
	return email
}
