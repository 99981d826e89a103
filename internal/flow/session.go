package flow

import (
	"sync"

	"github.com/google/uuid"

	"github.com/artdecor-nn/order-bot/internal/domain/directory"
	"github.com/artdecor-nn/order-bot/internal/domain/order"
	"github.com/artdecor-nn/order-bot/internal/infra/metrics"
)

// Session — один активный диалог заявки. Обрабатывается из одного
// цикла обновлений, поэтому не требует собственной блокировки.
type Session struct {
	ChatID   int64
	IntakeID string
	State    State
	Order    *order.Document
	History  History

	// MsgID — идентификатор единственного редактируемого сообщения.
	MsgID int
	// Current — снимок последнего отображённого шага.
	Current *StepDescriptor
	// Directory — срез справочника, загруженный на шаге выбора региона.
	Directory *directory.Snapshot
}

// Sessions — реестр активных диалогов по chat_id.
type Sessions struct {
	mu sync.Mutex
	m  map[int64]*Session
}

func NewSessions() *Sessions {
	return &Sessions{m: make(map[int64]*Session)}
}

func (s *Sessions) Get(chatID int64) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.m[chatID]
	return sess, ok
}

// Start создаёт новый диалог, отбрасывая прежний для этого чата.
func (s *Sessions) Start(chatID int64, telegram string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := &Session{
		ChatID:   chatID,
		IntakeID: uuid.NewString(),
		Order:    order.New(telegram),
	}
	s.m[chatID] = sess
	metrics.ActiveIntakes.Set(float64(len(s.m)))
	return sess
}

func (s *Sessions) Reset(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, chatID)
	metrics.ActiveIntakes.Set(float64(len(s.m)))
}
