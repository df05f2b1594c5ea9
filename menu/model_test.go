package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaults = Selection{Sides: 3, Points: 1000, Fraction: 0.5, Path: "HumanY_data.txt"}

// answer types v into the model and presses Enter.
func answer(t *testing.T, m Model, v string) (Model, tea.Cmd) {
	t.Helper()
	var next tea.Model = m
	if v != "" {
		next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(v)})
	}
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_ChaosGame(t *testing.T) {
	m := New(defaults)
	assert.Contains(t, m.View(), "1: Chaos Game")
	assert.Contains(t, m.View(), "Enter the choice of your display:")

	m, _ = answer(t, m, "1")
	assert.Contains(t, m.View(), "Enter number of sides")
	m, _ = answer(t, m, "6")
	m, _ = answer(t, m, "20000")
	m, cmd := answer(t, m, "0.375")

	assert.True(t, m.Done())
	assert.True(t, isQuit(cmd))
	assert.Equal(t, Selection{Choice: ChoiceChaos, Sides: 6, Points: 20000, Fraction: 0.375, Path: "HumanY_data.txt"}, m.Selection())
}

func TestModel_SequenceKeepsDefaults(t *testing.T) {
	m := New(defaults)
	m, _ = answer(t, m, "2")
	assert.Contains(t, m.View(), "Enter the fraction of distance:")
	m, _ = answer(t, m, "")
	m, cmd := answer(t, m, "")

	assert.True(t, isQuit(cmd))
	got := m.Selection()
	assert.Equal(t, ChoiceSequence, got.Choice)
	assert.Equal(t, 0.5, got.Fraction)
	assert.Equal(t, "HumanY_data.txt", got.Path)
}

func TestModel_InvalidInputStays(t *testing.T) {
	m := New(defaults)

	m, cmd := answer(t, m, "7")
	assert.Nil(t, cmd)
	assert.False(t, m.Done())
	assert.Contains(t, m.View(), invalidChoice)

	m, _ = answer(t, m, "1")
	m, _ = answer(t, m, "2")
	assert.Contains(t, m.View(), "below the minimum of 3")
	assert.Contains(t, m.View(), "Enter number of sides")

	m, _ = answer(t, m, "4")
	m, _ = answer(t, m, "many")
	assert.Contains(t, m.View(), "not a whole number")
	assert.Contains(t, m.View(), "Enter number of iterations:")
}

func TestModel_Quit(t *testing.T) {
	m, cmd := answer(t, New(defaults), "3")
	assert.True(t, isQuit(cmd))
	assert.Equal(t, ChoiceQuit, m.Selection().Choice)

	next, cmd := New(defaults).Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
	assert.Equal(t, ChoiceQuit, next.(Model).Selection().Choice)
	assert.Empty(t, next.View())
}
