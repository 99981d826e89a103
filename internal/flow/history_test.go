package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func desc(state State, prompt string) StepDescriptor {
	return StepDescriptor{State: state, Prompt: prompt}
}

func TestHistoryBackAndContinueRestoreNavigation(t *testing.T) {
	var h History
	h.Push(desc(StateAskFresco, "Хотите фрески?"))
	h.Push(desc(StateAskDesigner, "Хотите дизайнерские обои?"))
	current := desc(StateAskBackground, "Хотите фоновые обои?")

	prev, ok := h.Back(current)
	require.True(t, ok)
	assert.Equal(t, StateAskDesigner, prev.State)
	assert.Equal(t, 1, h.Len())
	assert.True(t, h.Reviewing())

	resumed, ok := h.Continue(prev)
	require.True(t, ok)
	assert.Equal(t, current, resumed)
	assert.Equal(t, 2, h.Len())
	assert.False(t, h.Reviewing())
}

func TestHistoryBackOnEmptyStack(t *testing.T) {
	var h History

	_, ok := h.Back(desc(StateAskFresco, "Хотите фрески?"))
	assert.False(t, ok)
	assert.Equal(t, 0, h.Len())
	assert.False(t, h.Reviewing())
}

func TestHistoryContinueWithoutBack(t *testing.T) {
	var h History
	h.Push(desc(StateAskFresco, "Хотите фрески?"))

	_, ok := h.Continue(desc(StateAskDesigner, "Хотите дизайнерские обои?"))
	assert.False(t, ok)
	assert.Equal(t, 1, h.Len())
}

func TestHistoryDoubleBackOverwritesResume(t *testing.T) {
	var h History
	h.Push(desc(StateAskFresco, "Хотите фрески?"))
	h.Push(desc(StateAskDesigner, "Хотите дизайнерские обои?"))

	first, ok := h.Back(desc(StateAskBackground, "Хотите фоновые обои?"))
	require.True(t, ok)
	second, ok := h.Back(first)
	require.True(t, ok)
	assert.Equal(t, StateAskFresco, second.State)

	// Слот возврата один: после второго «Назад» восстановится шаг,
	// показанный между нажатиями, а не самый поздний.
	resumed, ok := h.Continue(second)
	require.True(t, ok)
	assert.Equal(t, StateAskDesigner, resumed.State)
}

func TestHistoryPushClearsResume(t *testing.T) {
	var h History
	h.Push(desc(StateAskFresco, "Хотите фрески?"))

	_, ok := h.Back(desc(StateAskDesigner, "Хотите дизайнерские обои?"))
	require.True(t, ok)
	require.True(t, h.Reviewing())

	h.Push(desc(StateAskFresco, "Хотите фрески?"))
	assert.False(t, h.Reviewing())

	_, ok = h.Continue(desc(StateAskDesigner, "Хотите дизайнерские обои?"))
	assert.False(t, ok)
}
