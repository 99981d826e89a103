package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseManagerRef(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		region string
		idx    int
		ok     bool
	}{
		{"обычный регион", "admin_manager:Центр:0", "Центр", 0, true},
		{"регион с двоеточием", "admin_manager:Юг: побережье:2", "Юг: побережье", 2, true},
		{"чужой префикс", "admin_edit:Центр:0", "", 0, false},
		{"нет индекса", "admin_manager:Центр", "", 0, false},
		{"индекс не число", "admin_manager:Центр:abc", "", 0, false},
		{"отрицательный индекс", "admin_manager:Центр:-1", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region, idx, ok := parseManagerRef(tt.data, "admin_manager:")
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.region, region)
				assert.Equal(t, tt.idx, idx)
			}
		})
	}
}

func TestIsAdminData(t *testing.T) {
	assert.True(t, isAdminData("admin_back"))
	assert.True(t, isAdminData("admin_manager:Центр:0"))
	assert.False(t, isAdminData("menu:freski"))
	assert.False(t, isAdminData("yes"))
}
