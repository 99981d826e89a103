package flow

import "github.com/artdecor-nn/order-bot/internal/domain/order"

type EventKind int

const (
	EventText EventKind = iota
	EventButton
	EventAttachment
)

// Event — нормализованное действие пользователя, которое адаптер
// транспорта передаёт движку диалога.
type Event struct {
	Kind       EventKind
	Text       string
	Data       string
	Attachment order.Attachment
}

func TextEvent(text string) Event {
	return Event{Kind: EventText, Text: text}
}

func ButtonEvent(data string) Event {
	return Event{Kind: EventButton, Data: data}
}

func AttachmentEvent(a order.Attachment) Event {
	return Event{Kind: EventAttachment, Attachment: a}
}
