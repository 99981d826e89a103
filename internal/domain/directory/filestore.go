package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore хранит справочник в JSON-файле. Понимает три
// исторических формата:
//
//	{"regions": [{"region": "...", "managers": [...]}]}
//	{"Регион": [менеджеры], ...}
//	[{"region": "...", "managers": [...]}]
//
// Менеджер записывается объектом {"chat_id", "name", "email"} или
// просто числом chat_id. Сохраняется всегда первый формат.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load(_ context.Context) (*Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Snapshot{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	snap, err := parseSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.path, err)
	}
	return snap.Normalize(), nil
}

func (f *FileStore) Save(_ context.Context, s *Snapshot) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string][]Region{"regions": s.Regions}); err != nil {
		return fmt.Errorf("encode managers: %w", err)
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(f.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}

func parseSnapshot(data []byte) (*Snapshot, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return &Snapshot{}, nil
	}
	switch trimmed[0] {
	case '[':
		var regions []rawRegion
		if err := json.Unmarshal(data, &regions); err != nil {
			return nil, err
		}
		return fromRawRegions(regions)
	case '{':
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(data, &probe); err != nil {
			return nil, err
		}
		if raw, ok := probe["regions"]; ok {
			var regions []rawRegion
			if err := json.Unmarshal(raw, &regions); err != nil {
				return nil, err
			}
			return fromRawRegions(regions)
		}
		return parseLegacyDict(data)
	default:
		return nil, fmt.Errorf("unexpected JSON value %q", trimmed[0])
	}
}

type rawRegion struct {
	Name     string            `json:"region"`
	Managers []json.RawMessage `json:"managers"`
}

func fromRawRegions(raw []rawRegion) (*Snapshot, error) {
	snap := &Snapshot{}
	for _, r := range raw {
		managers, err := parseManagers(r.Managers)
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", r.Name, err)
		}
		snap.Regions = append(snap.Regions, Region{Name: r.Name, Managers: managers})
	}
	return snap, nil
}

// parseLegacyDict разбирает {"Регион": [...]} через токены,
// чтобы сохранить порядок регионов из файла.
func parseLegacyDict(data []byte) (*Snapshot, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil { // {
		return nil, err
	}
	snap := &Snapshot{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key token %v", tok)
		}
		var raw []json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("region %q: %w", name, err)
		}
		managers, err := parseManagers(raw)
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", name, err)
		}
		snap.Regions = append(snap.Regions, Region{Name: name, Managers: managers})
	}
	return snap, nil
}

func parseManagers(raw []json.RawMessage) ([]Contact, error) {
	var out []Contact
	for _, m := range raw {
		trimmed := bytes.TrimLeft(m, " \t\r\n")
		if len(trimmed) == 0 {
			continue
		}
		if trimmed[0] == '{' {
			var c Contact
			if err := json.Unmarshal(m, &c); err != nil {
				return nil, err
			}
			out = append(out, c)
			continue
		}
		var chatID int64
		if err := json.Unmarshal(m, &chatID); err != nil {
			return nil, fmt.Errorf("manager entry %s: %w", m, err)
		}
		out = append(out, Contact{ChatID: chatID})
	}
	return out, nil
}
