package directory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManagers(t *testing.T, content string) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "managers.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return NewFileStore(path)
}

func TestFileStoreLoadRegionsShape(t *testing.T) {
	fs := writeManagers(t, `{
	  "regions": [
	    {"region": "Центр", "managers": [{"chat_id": 100, "name": "Анна"}, {"chat_id": 200}]},
	    {"region": "Сибирь", "managers": [{"chat_id": 300, "name": "Пётр", "email": "p@art.ru"}]}
	  ]
	}`)

	snap, err := fs.Load(context.Background())
	require.NoError(t, err)

	require.Equal(t, []string{"Центр", "Сибирь"}, snap.RegionNames())
	require.Len(t, snap.Contacts("Центр"), 2)
	assert.Equal(t, Contact{Name: "Анна", ChatID: 100}, snap.Contacts("Центр")[0])
	assert.Equal(t, Contact{Name: "Пётр", ChatID: 300, Email: "p@art.ru"}, snap.Contacts("Сибирь")[0])
}

func TestFileStoreLoadLegacyDictKeepsOrder(t *testing.T) {
	fs := writeManagers(t, `{
	  "Юг": [{"chat_id": 1}],
	  "Север": [2, 3],
	  "Запад": [{"chat_id": 4, "name": "Ия"}]
	}`)

	snap, err := fs.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Юг", "Север", "Запад"}, snap.RegionNames())
	assert.Equal(t, []Contact{{ChatID: 2}, {ChatID: 3}}, snap.Contacts("Север"))
}

func TestFileStoreLoadLegacyListShape(t *testing.T) {
	fs := writeManagers(t, `[{"region": "Восток", "managers": [5]}]`)

	snap, err := fs.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []Contact{{ChatID: 5}}, snap.Contacts("Восток"))
}

func TestFileStoreLoadDropsBadContactsKeepsEmptyRegions(t *testing.T) {
	fs := writeManagers(t, `{
	  "regions": [
	    {"region": "Пусто", "managers": []},
	    {"region": "", "managers": [{"chat_id": 1}]},
	    {"region": "Центр", "managers": [{"name": "без каналов"}, {"chat_id": 7}]}
	  ]
	}`)

	snap, err := fs.Load(context.Background())
	require.NoError(t, err)

	// Безымянный регион и контакт без каналов выпадают, пустой регион
	// остаётся и ведёт к ветке «менеджеры не найдены».
	assert.Equal(t, []string{"Пусто", "Центр"}, snap.RegionNames())
	assert.Empty(t, snap.Contacts("Пусто"))
	assert.Equal(t, []Contact{{ChatID: 7}}, snap.Contacts("Центр"))
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

	snap, err := fs.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Regions)
}

func TestFileStoreSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "managers.json")
	fs := NewFileStore(path)
	in := &Snapshot{Regions: []Region{
		{Name: "Центр", Managers: []Contact{{Name: "Анна", ChatID: 100}}},
		{Name: "Юг", Managers: []Contact{{ChatID: 200, Email: "y@art.ru"}}},
	}}

	require.NoError(t, fs.Save(context.Background(), in))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"regions"`)
	assert.Contains(t, string(raw), `"Анна"`)

	out, err := fs.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, in.Regions, out.Regions)
}

func TestContactLabelAndIdent(t *testing.T) {
	assert.Equal(t, "Анна (ID: 5)", Contact{Name: "Анна", ChatID: 5}.Label())
	assert.Equal(t, "Менеджер (ID: 5)", Contact{ChatID: 5}.Label())
	assert.Equal(t, "Ия (i@art.ru)", Contact{Name: "Ия", Email: "i@art.ru"}.Label())
	assert.Equal(t, "ID 5", Contact{ChatID: 5}.Ident())
	assert.Equal(t, "i@art.ru", Contact{Email: "i@art.ru"}.Ident())
}
