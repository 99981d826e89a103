package bot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xuri/excelize/v2"

	"github.com/artdecor-nn/order-bot/internal/domain/directory"
)

// exportDirectoryExcel выгружает справочник менеджеров в Excel:
// строка на менеджера, пустые регионы — строкой без контактов.
func (b *Bot) exportDirectoryExcel(ctx context.Context, chatID int64, msgID int) {
	snap, err := b.managers.Load(ctx)
	if err != nil {
		b.log.Error("load managers failed", "err", err)
		b.editTextAndClear(chatID, msgID, "Не удалось загрузить справочник менеджеров.")
		return
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{"region", "name", "chat_id", "email"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		b.editTextAndClear(chatID, msgID, "Ошибка формирования файла (заголовок)")
		return
	}

	row := 2
	writeRow := func(values []interface{}) bool {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			b.editTextAndClear(chatID, msgID, "Ошибка формирования файла (ячейки)")
			return false
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			b.editTextAndClear(chatID, msgID, "Ошибка формирования файла (строки)")
			return false
		}
		row++
		return true
	}

	for _, r := range snap.Regions {
		if len(r.Managers) == 0 {
			if !writeRow([]interface{}{r.Name, "", "", ""}) {
				return
			}
			continue
		}
		for _, m := range r.Managers {
			chatIDCell := ""
			if m.ChatID != 0 {
				chatIDCell = strconv.FormatInt(m.ChatID, 10)
			}
			if !writeRow([]interface{}{r.Name, m.Name, chatIDCell, m.Email}) {
				return
			}
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		b.editTextAndClear(chatID, msgID, "Ошибка записи файла")
		return
	}

	fileName := fmt.Sprintf("managers_%s.xlsx", time.Now().Format("20060102_150405"))
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  fileName,
		Bytes: buf.Bytes(),
	})
	doc.Caption = "Справочник менеджеров.\nОтредактируйте файл и загрузите его через кнопку «Загрузить справочник (Excel)»."
	b.send(doc)

	b.editTextAndClear(chatID, msgID, "Сформирован файл со справочником менеджеров.")
}

func (b *Bot) importDirectoryExcel(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	data, err := downloadTelegramFile(b.api, msg.Document.FileID)
	if err != nil {
		b.log.Error("download import file failed", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось скачать файл. Попробуйте ещё раз."))
		return
	}

	snap, stats, err := parseDirectoryExcel(data)
	if err != nil {
		b.send(tgbotapi.NewMessage(chatID, err.Error()))
		return
	}

	if err := b.managers.Save(ctx, snap); err != nil {
		b.log.Error("save managers failed", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось сохранить справочник менеджеров."))
		return
	}
	b.adminEnd(chatID)
	b.send(tgbotapi.NewMessage(chatID,
		fmt.Sprintf("Справочник обновлён: регионов — %d, менеджеров — %d.", stats.regions, stats.contacts)))
	b.showAdminMenu(ctx, chatID, msg.From.ID, nil)
}

type importStats struct {
	regions  int
	contacts int
}

// parseDirectoryExcel читает справочник из .xlsx. Текст ошибки
// показывается админу как есть.
func parseDirectoryExcel(data []byte) (*directory.Snapshot, importStats, error) {
	var stats importStats

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, stats, errors.New("Не удалось прочитать Excel-файл (повреждён или не .xlsx).")
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		return nil, stats, errors.New("Файл не содержит данных (нет строк с менеджерами).")
	}
	if len(rows[0]) < 3 {
		return nil, stats, errors.New("Некорректный формат файла: ожидаются колонки region, name, chat_id, email.")
	}

	snap := &directory.Snapshot{}
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		region := strings.TrimSpace(cellAt(row, 0))
		name := strings.TrimSpace(cellAt(row, 1))
		chatIDStr := strings.TrimSpace(cellAt(row, 2))
		email := strings.TrimSpace(cellAt(row, 3))

		if region == "" && name == "" && chatIDStr == "" && email == "" {
			continue
		}
		if region == "" {
			return nil, stats, fmt.Errorf("Ошибка в строке %d: не указан регион.", i+1)
		}
		if name == "" && chatIDStr == "" && email == "" {
			snap.EnsureRegion(region)
			continue
		}

		var chatID int64
		if chatIDStr != "" {
			chatID, err = strconv.ParseInt(chatIDStr, 10, 64)
			if err != nil {
				return nil, stats, fmt.Errorf("Ошибка в строке %d: некорректный chat_id (%q).", i+1, chatIDStr)
			}
		}
		if chatID == 0 && email == "" {
			return nil, stats, fmt.Errorf("Ошибка в строке %d: у менеджера нет ни chat_id, ни email.", i+1)
		}

		snap.AppendContact(region, directory.Contact{Name: name, ChatID: chatID, Email: email})
		stats.contacts++
	}

	stats.regions = len(snap.Regions)
	if stats.regions == 0 {
		return nil, stats, errors.New("Файл не содержит данных (нет строк с менеджерами).")
	}
	return snap, stats, nil
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
