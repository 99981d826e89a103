package texts

import "context"

// Ключи редактируемых текстов бота.
const (
	KeyStart      = "start_text"
	KeyFresco     = "freski_text"
	KeyDesigner   = "designer_text"
	KeyBackground = "background_text"
	KeyPaintings  = "paintings_text"
)

var defaults = map[string]string{
	KeyStart:      "Добрый день.",
	KeyFresco:     "Фрески",
	KeyDesigner:   "Дизайнерские обои",
	KeyBackground: "Фоновые обои",
	KeyPaintings:  "Картины",
}

// Keys в порядке показа в админском меню.
func Keys() []string {
	return []string{KeyStart, KeyFresco, KeyDesigner, KeyBackground, KeyPaintings}
}

func Default(key string) string {
	return defaults[key]
}

// Value возвращает текст из карты или дефолт для ключа.
func Value(m map[string]string, key string) string {
	if v, ok := m[key]; ok && v != "" {
		return v
	}
	return defaults[key]
}

// Store загружает и сохраняет карту текстов целиком.
type Store interface {
	Load(ctx context.Context) (map[string]string, error)
	Save(ctx context.Context, m map[string]string) error
}
