package texts

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreMissingFileGivesEmptyMap(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "texts.json"))

	m, err := fs.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestFileStoreCorruptFileGivesEmptyMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texts.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	m, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestFileStoreRoundTrip(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "data", "texts.json"))
	in := map[string]string{KeyStart: "Здравствуйте!", KeyFresco: "Фрески Affresco"}

	require.NoError(t, fs.Save(context.Background(), in))

	out, err := fs.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestValueFallsBackToDefaults(t *testing.T) {
	m := map[string]string{KeyStart: "Привет!"}

	assert.Equal(t, "Привет!", Value(m, KeyStart))
	assert.Equal(t, "Фрески", Value(m, KeyFresco))
	assert.Equal(t, "Добрый день.", Value(nil, KeyStart))
	assert.Equal(t, "Добрый день.", Value(map[string]string{KeyStart: ""}, KeyStart))
}
