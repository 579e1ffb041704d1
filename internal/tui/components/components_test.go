package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/kvdoc/pkg/tuitest"
)

func TestConfirmModal(t *testing.T) {
	tests := []struct {
		name      string
		key       tea.Msg
		confirmed bool
		cancelled bool
	}{
		{"y confirms", tuitest.KeyPress('y'), true, false},
		{"enter confirms", tuitest.KeyEnter(), true, false},
		{"n cancels", tuitest.KeyPress('n'), false, true},
		{"esc cancels", tuitest.KeyEsc(), false, true},
		{"other key ignored", tuitest.KeyPress('x'), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewConfirmModal("Quit", "Unsaved changes will be lost.")
			m, _ = m.Update(tt.key)
			assert.Equal(t, tt.confirmed, m.Confirmed())
			assert.Equal(t, tt.cancelled, m.Cancelled())
		})
	}
}

func TestConfirmModal_Overlay(t *testing.T) {
	m := NewConfirmModal("Quit", "Unsaved changes will be lost.")
	out := tuitest.StripANSI(m.Overlay("background", 80, 20))
	assert.Contains(t, out, "Quit")
	assert.Contains(t, out, "Unsaved changes will be lost.")
	assert.Contains(t, out, "(y/n)")
}

func TestHelpDialog(t *testing.T) {
	h := NewHelpDialog("Keys", []HelpDialogSection{
		{Title: "Edit", Entries: []HelpEntry{{Key: "t", Desc: "add type"}, {Key: "a", Desc: "add pair"}}},
		{Title: "File", Entries: []HelpEntry{{Key: "w", Desc: "save"}}},
	})

	out := tuitest.StripANSI(h.Overlay("", 80, 30))
	assert.Contains(t, out, "Keys")
	assert.Contains(t, out, "Edit")
	assert.Contains(t, out, "add type")
	assert.Contains(t, out, "save")
}

func TestHelpDialog_AlignsDescriptions(t *testing.T) {
	h := NewHelpDialog("Keys", []HelpDialogSection{
		{Entries: []HelpEntry{{Key: "ctrl+s", Desc: "save"}, {Key: "q", Desc: "quit"}}},
	})

	lines := strings.Split(tuitest.StripANSI(h.View()), "\n")
	var cols []int
	for _, l := range lines {
		for _, desc := range []string{"save", "quit"} {
			if i := strings.Index(l, desc); i >= 0 {
				cols = append(cols, i)
			}
		}
	}
	if assert.Len(t, cols, 2) {
		assert.Equal(t, cols[0], cols[1])
	}
}
