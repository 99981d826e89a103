package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Шаги админского диалога. В отличие от заявки, админка не ведёт
// историю: каждый шаг — короткий ввод с возвратом в меню.
type adminStep int

const (
	admConfirmAdd adminStep = iota + 1 // «Менеджеров нет. Добавить менеджера?»
	admName                            // ввод имени: новый менеджер или переименование
	admChatID                          // ввод chat_id
	admEmail                           // ввод email
	admText                            // ввод нового канонического текста
	admImport                          // ожидание .xlsx со справочником
)

type adminSession struct {
	step    adminStep
	region  string
	index   int // -1 — новый менеджер
	newName string
	textIdx int // индекс в adminTexts
}

func isAdminData(data string) bool {
	return strings.HasPrefix(data, "admin_")
}

func (b *Bot) adminGet(chatID int64) *adminSession {
	b.admMu.Lock()
	defer b.admMu.Unlock()
	return b.adm[chatID]
}

func (b *Bot) adminSet(chatID int64, st *adminSession) {
	b.admMu.Lock()
	defer b.admMu.Unlock()
	b.adm[chatID] = st
}

func (b *Bot) adminEnd(chatID int64) {
	b.admMu.Lock()
	defer b.admMu.Unlock()
	delete(b.adm, chatID)
}

func (b *Bot) adminActive(chatID int64) bool {
	return b.adminGet(chatID) != nil
}

func (b *Bot) adminAwaitsConfirm(chatID int64) bool {
	st := b.adminGet(chatID)
	return st != nil && st.step == admConfirmAdd
}

// showAdminMenu — корень админки: список регионов, редактируемые
// тексты и выгрузка/загрузка справочника. Вход прекращает активную
// заявку в этом чате.
func (b *Bot) showAdminMenu(ctx context.Context, chatID, userID int64, editMsgID *int) {
	if !b.isAdmin(userID) {
		b.send(tgbotapi.NewMessage(chatID, "У вас нет прав доступа."))
		return
	}
	b.engine.Cancel(chatID)
	b.adminEnd(chatID)

	snap, err := b.managers.Load(ctx)
	if err != nil {
		b.log.Error("load managers failed", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось загрузить справочник менеджеров."))
		return
	}

	text := "Выберите действие:"
	if len(snap.Regions) == 0 {
		text = "Нет регионов."
	}
	kb := adminMenuKeyboard(snap.RegionNames())
	if editMsgID != nil {
		b.send(tgbotapi.NewEditMessageTextAndMarkup(chatID, *editMsgID, text, kb))
	} else {
		m := tgbotapi.NewMessage(chatID, text)
		m.ReplyMarkup = kb
		b.send(m)
	}
}

func (b *Bot) handleAdminCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	if !b.isAdmin(cb.From.ID) {
		_ = b.answerCallback(cb, "У вас нет прав доступа.", true)
		return
	}
	_ = b.answerCallback(cb, "", false)

	data := cb.Data
	msgID := cb.Message.MessageID

	switch {
	case data == "admin_back":
		b.showAdminMenu(ctx, chatID, cb.From.ID, &msgID)
	case data == "admin_export":
		b.exportDirectoryExcel(ctx, chatID, msgID)
	case data == "admin_import":
		b.adminSet(chatID, &adminSession{step: admImport})
		b.editTextAndClear(chatID, msgID, "Пришлите файл .xlsx со справочником менеджеров.")
	case strings.HasPrefix(data, "admin_edit:"):
		b.showRegionManagers(ctx, chatID, msgID, strings.TrimPrefix(data, "admin_edit:"))
	case strings.HasPrefix(data, "admin_manager:"):
		if region, idx, ok := parseManagerRef(data, "admin_manager:"); ok {
			b.showManagerCard(ctx, chatID, msgID, region, idx)
		}
	case strings.HasPrefix(data, "admin_add_manager:"):
		region := strings.TrimPrefix(data, "admin_add_manager:")
		b.adminSet(chatID, &adminSession{step: admName, region: region, index: -1})
		b.editTextAndClear(chatID, msgID, fmt.Sprintf("Регион: %s\n\nВведите имя нового менеджера:", region))
	case strings.HasPrefix(data, "admin_change_name:"):
		if region, idx, ok := parseManagerRef(data, "admin_change_name:"); ok {
			b.adminSet(chatID, &adminSession{step: admName, region: region, index: idx})
			b.editTextAndClear(chatID, msgID, "Введите новое имя менеджера:")
		}
	case strings.HasPrefix(data, "admin_change_id:"):
		if region, idx, ok := parseManagerRef(data, "admin_change_id:"); ok {
			b.adminSet(chatID, &adminSession{step: admChatID, region: region, index: idx})
			b.editTextAndClear(chatID, msgID, "Введите новый chat_id менеджера:")
		}
	case strings.HasPrefix(data, "admin_change_email:"):
		if region, idx, ok := parseManagerRef(data, "admin_change_email:"); ok {
			b.adminSet(chatID, &adminSession{step: admEmail, region: region, index: idx})
			b.editTextAndClear(chatID, msgID, "Введите новый email менеджера (или «-», чтобы удалить):")
		}
	case strings.HasPrefix(data, "admin_delete:"):
		if region, idx, ok := parseManagerRef(data, "admin_delete:"); ok {
			b.confirmDeleteManager(ctx, chatID, msgID, region, idx)
		}
	case strings.HasPrefix(data, "admin_confirm_delete:"):
		if region, idx, ok := parseManagerRef(data, "admin_confirm_delete:"); ok {
			b.deleteManager(ctx, chatID, msgID, region, idx, cb.From.ID)
		}
	case strings.HasPrefix(data, "admin_text:"):
		b.startTextEdit(chatID, msgID, strings.TrimPrefix(data, "admin_text:"))
	}
}

// handleAdminConfirm — «Да»/«Нет» на предложение добавить менеджера
// в регион без менеджеров.
func (b *Bot) handleAdminConfirm(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	if !b.isAdmin(cb.From.ID) {
		_ = b.answerCallback(cb, "У вас нет прав доступа.", true)
		return
	}
	_ = b.answerCallback(cb, "", false)

	st := b.adminGet(chatID)
	if st == nil {
		return
	}
	if cb.Data == "yes" {
		st.step = admName
		st.index = -1
		b.editTextAndClear(chatID, cb.Message.MessageID,
			fmt.Sprintf("Регион: %s\n\nВведите имя нового менеджера:", st.region))
		return
	}
	b.adminEnd(chatID)
	b.showAdminMenu(ctx, chatID, cb.From.ID, nil)
}

func (b *Bot) handleAdminMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if !b.isAdmin(msg.From.ID) {
		b.send(tgbotapi.NewMessage(chatID, "У вас нет прав доступа."))
		return
	}
	st := b.adminGet(chatID)
	if st == nil {
		return
	}

	switch st.step {
	case admName:
		b.adminName(ctx, msg, st)
	case admChatID:
		b.adminChatID(ctx, msg, st)
	case admEmail:
		b.adminEmail(ctx, msg, st)
	case admText:
		b.adminText(ctx, msg, st)
	case admImport:
		if msg.Document != nil {
			b.importDirectoryExcel(ctx, msg)
			return
		}
		b.send(tgbotapi.NewMessage(chatID, "Пришлите файл .xlsx со справочником менеджеров."))
	}
}

// parseManagerRef разбирает data вида "prefix{регион}:{индекс}".
// Индекс отрезается справа: имя региона может содержать двоеточие.
func parseManagerRef(data, prefix string) (string, int, bool) {
	rest, ok := strings.CutPrefix(data, prefix)
	if !ok {
		return "", 0, false
	}
	i := strings.LastIndex(rest, ":")
	if i < 0 {
		return "", 0, false
	}
	idx, err := strconv.Atoi(rest[i+1:])
	if err != nil || idx < 0 {
		return "", 0, false
	}
	return rest[:i], idx, true
}
