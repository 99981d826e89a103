package flow

// History — навигация «Назад»/«Продолжить» по пройденным шагам.
// Стек растёт только при обычном движении вперёд: по одному снимку
// на переход. «Назад» снимает верхний шаг и откладывает текущий в
// слот возврата; «Продолжить» восстанавливает отложенный шаг и
// возвращает снятый на место. Слот возврата один: повторное «Назад»
// перезаписывает его, движение вперёд очищает.
type History struct {
	back      []StepDescriptor
	resume    *StepDescriptor
	reviewing bool
}

func (h *History) Push(current StepDescriptor) {
	h.back = append(h.back, current)
	h.resume = nil
	h.reviewing = false
}

// Back возвращает предыдущий шаг. При пустом стеке ничего не меняет.
func (h *History) Back(current StepDescriptor) (StepDescriptor, bool) {
	if len(h.back) == 0 {
		return StepDescriptor{}, false
	}
	d := h.back[len(h.back)-1]
	h.back = h.back[:len(h.back)-1]
	c := current
	h.resume = &c
	h.reviewing = true
	return d, true
}

// Continue восстанавливает шаг из слота возврата. Просмотренный шаг
// возвращается в стек, так что состояние навигации после пары
// Back+Continue совпадает с состоянием до неё.
func (h *History) Continue(current StepDescriptor) (StepDescriptor, bool) {
	if h.resume == nil {
		return StepDescriptor{}, false
	}
	d := *h.resume
	h.back = append(h.back, current)
	h.resume = nil
	h.reviewing = false
	return d, true
}

func (h *History) Len() int { return len(h.back) }

// Reviewing — пользователь смотрит пройденный шаг после «Назад».
func (h *History) Reviewing() bool { return h.reviewing }
