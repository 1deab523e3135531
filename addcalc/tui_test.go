package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	cmpkg "github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func enter(t *testing.T, m tuiModel, value string) (tuiModel, tea.Cmd) {
	t.Helper()

	m.textInput.SetValue(value)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(tuiModel), cmd
}

func TestTUIModel(t *testing.T) {
	t.Parallel()

	m := newTUIModel(&printer{})

	m, cmd := enter(t, m, "2+3")
	assert.Assert(t, cmd == nil)
	m, _ = enter(t, m, "2 x")
	m, _ = enter(t, m, "")

	assert.DeepEqual(t, m.history, []tuiEntry{
		{input: "2+3", output: "5"},
		{input: "2 x", output: "'x' is not a valid number", failed: true},
		{input: "", output: "No numbers provided", failed: true},
	}, cmpkg.AllowUnexported(tuiEntry{}))
	assert.Equal(t, m.textInput.Value(), "")

	view := m.View()
	assert.Assert(t, is.Contains(view, "Addition Calculator"))
	assert.Assert(t, is.Contains(view, "= 5"))
}

func TestTUIModel_historyIsBounded(t *testing.T) {
	t.Parallel()

	m := newTUIModel(&printer{})
	for i := 0; i < tuiHistory+5; i++ {
		m, _ = enter(t, m, "1+1")
	}

	assert.Equal(t, len(m.history), tuiHistory)
}

func TestTUIModel_quit(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"q", "EXIT"} {
		_, cmd := enter(t, newTUIModel(&printer{}), value)
		assert.Assert(t, cmd != nil, value)
		assert.Equal(t, cmd(), tea.Msg(tea.QuitMsg{}))
	}

	_, cmd := newTUIModel(&printer{}).Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Assert(t, cmd != nil)
	assert.Equal(t, cmd(), tea.Msg(tea.QuitMsg{}))
}
