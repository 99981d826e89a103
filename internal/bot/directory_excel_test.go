package bot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/artdecor-nn/order-bot/internal/domain/directory"
)

func managersXLSX(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &rows[i]))
	}

	buf := &bytes.Buffer{}
	require.NoError(t, f.Write(buf))
	return buf.Bytes()
}

func TestParseDirectoryExcel(t *testing.T) {
	data := managersXLSX(t, [][]interface{}{
		{"region", "name", "chat_id", "email"},
		{"Центр", "Анна", "100", ""},
		{"Центр", "Пётр", "", "p@art.ru"},
		{"", "", "", ""},
		{"Сибирь", "", "", ""},
		{"Юг", "Ия", "300", "i@art.ru"},
	})

	snap, stats, err := parseDirectoryExcel(data)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.regions)
	assert.Equal(t, 3, stats.contacts)
	assert.Equal(t, []string{"Центр", "Сибирь", "Юг"}, snap.RegionNames())
	assert.Equal(t, []directory.Contact{
		{Name: "Анна", ChatID: 100},
		{Name: "Пётр", Email: "p@art.ru"},
	}, snap.Contacts("Центр"))
	assert.Empty(t, snap.Contacts("Сибирь"))
	assert.Equal(t, []directory.Contact{{Name: "Ия", ChatID: 300, Email: "i@art.ru"}}, snap.Contacts("Юг"))
}

func TestParseDirectoryExcelRowErrors(t *testing.T) {
	tests := []struct {
		name    string
		row     []interface{}
		wantErr string
	}{
		{"нет региона", []interface{}{"", "Анна", "100", ""}, "Ошибка в строке 2: не указан регион."},
		{"кривой chat_id", []interface{}{"Центр", "Анна", "сто", ""}, `Ошибка в строке 2: некорректный chat_id ("сто").`},
		{"нет каналов", []interface{}{"Центр", "Анна", "", ""}, "Ошибка в строке 2: у менеджера нет ни chat_id, ни email."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := managersXLSX(t, [][]interface{}{
				{"region", "name", "chat_id", "email"},
				tt.row,
			})
			_, _, err := parseDirectoryExcel(data)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestParseDirectoryExcelBadFile(t *testing.T) {
	_, _, err := parseDirectoryExcel([]byte("это не xlsx"))
	require.Error(t, err)
	assert.Equal(t, "Не удалось прочитать Excel-файл (повреждён или не .xlsx).", err.Error())
}

func TestParseDirectoryExcelNoRows(t *testing.T) {
	data := managersXLSX(t, [][]interface{}{
		{"region", "name", "chat_id", "email"},
	})
	_, _, err := parseDirectoryExcel(data)
	require.Error(t, err)
	assert.Equal(t, "Файл не содержит данных (нет строк с менеджерами).", err.Error())
}
