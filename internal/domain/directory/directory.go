package directory

import (
	"context"
	"fmt"
	"strings"
)

// Contact — получатель заявки: менеджер с телеграм chat_id и/или email.
type Contact struct {
	Name   string `json:"name,omitempty"`
	ChatID int64  `json:"chat_id,omitempty"`
	Email  string `json:"email,omitempty"`
}

// Valid: у контакта должен быть хотя бы один канал доставки.
func (c Contact) Valid() bool {
	return c.ChatID != 0 || c.Email != ""
}

// Label — подпись для кнопок выбора менеджера.
func (c Contact) Label() string {
	name := c.Name
	if name == "" {
		name = "Менеджер"
	}
	if c.ChatID != 0 {
		return fmt.Sprintf("%s (ID: %d)", name, c.ChatID)
	}
	return fmt.Sprintf("%s (%s)", name, c.Email)
}

// Ident — имя для отчётов об ошибках доставки.
func (c Contact) Ident() string {
	if c.Name != "" {
		return c.Name
	}
	if c.ChatID != 0 {
		return fmt.Sprintf("ID %d", c.ChatID)
	}
	return c.Email
}

type Region struct {
	Name     string    `json:"region"`
	Managers []Contact `json:"managers"`
}

// Snapshot — срез справочника на момент загрузки. Порядок регионов
// сохраняется как в источнике, по нему нумеруются кнопки выбора.
// Читатели не должны его изменять.
type Snapshot struct {
	Regions []Region
}

func (s *Snapshot) RegionNames() []string {
	names := make([]string, 0, len(s.Regions))
	for _, r := range s.Regions {
		names = append(names, r.Name)
	}
	return names
}

func (s *Snapshot) Contacts(region string) []Contact {
	for _, r := range s.Regions {
		if r.Name == region {
			return r.Managers
		}
	}
	return nil
}

func (s *Snapshot) Region(name string) (Region, bool) {
	for _, r := range s.Regions {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}

// EnsureRegion возвращает регион по имени, создавая его в конце
// списка при отсутствии.
func (s *Snapshot) EnsureRegion(name string) *Region {
	for i := range s.Regions {
		if s.Regions[i].Name == name {
			return &s.Regions[i]
		}
	}
	s.Regions = append(s.Regions, Region{Name: name})
	return &s.Regions[len(s.Regions)-1]
}

// AppendContact добавляет контакт в регион, создавая регион при
// необходимости.
func (s *Snapshot) AppendContact(region string, c Contact) {
	r := s.EnsureRegion(region)
	r.Managers = append(r.Managers, c)
}

// UpdateContact применяет fn к контакту региона по индексу.
func (s *Snapshot) UpdateContact(region string, idx int, fn func(*Contact)) bool {
	for i := range s.Regions {
		if s.Regions[i].Name != region {
			continue
		}
		if idx < 0 || idx >= len(s.Regions[i].Managers) {
			return false
		}
		fn(&s.Regions[i].Managers[idx])
		return true
	}
	return false
}

// RemoveContact удаляет контакт по индексу; опустевший регион
// удаляется целиком.
func (s *Snapshot) RemoveContact(region string, idx int) bool {
	for i := range s.Regions {
		if s.Regions[i].Name != region {
			continue
		}
		ms := s.Regions[i].Managers
		if idx < 0 || idx >= len(ms) {
			return false
		}
		s.Regions[i].Managers = append(ms[:idx], ms[idx+1:]...)
		if len(s.Regions[i].Managers) == 0 {
			s.Regions = append(s.Regions[:i], s.Regions[i+1:]...)
		}
		return true
	}
	return false
}

// Normalize отбрасывает безымянные регионы и контакты без каналов
// доставки, сохраняя порядок. Регион без контактов остаётся: выбор
// такого региона завершает заявку веткой «менеджеры не найдены».
func (s *Snapshot) Normalize() *Snapshot {
	out := &Snapshot{}
	for _, r := range s.Regions {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}
		var managers []Contact
		for _, m := range r.Managers {
			if m.Valid() {
				managers = append(managers, m)
			}
		}
		out.Regions = append(out.Regions, Region{Name: name, Managers: managers})
	}
	return out
}

// Store загружает и сохраняет справочник целиком.
type Store interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, s *Snapshot) error
}
