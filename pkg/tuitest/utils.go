// Package tuitest builds bubbletea messages and normalizes rendered views
// for tests.
package tuitest

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI drops escape sequences, trailing spaces on each line and
// trailing blank lines so views compare as plain text.
func StripANSI(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func press(code rune, mod tea.KeyMod, text string) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: code, Mod: mod, Text: text})
}

// KeyPress types r. Text is set so inputs insert it.
func KeyPress(r rune) tea.Msg { return press(r, 0, string(r)) }

// Type returns a KeyPress for each rune of s.
func Type(s string) []tea.Msg {
	var msgs []tea.Msg
	for _, r := range s {
		msgs = append(msgs, KeyPress(r))
	}
	return msgs
}

// KeyCtrl is ctrl+r.
func KeyCtrl(r rune) tea.Msg { return press(r, tea.ModCtrl, "") }

func KeyUp() tea.Msg    { return press(tea.KeyUp, 0, "") }
func KeyDown() tea.Msg  { return press(tea.KeyDown, 0, "") }
func KeyEnter() tea.Msg { return press(tea.KeyEnter, 0, "") }
func KeyEsc() tea.Msg   { return press(tea.KeyEscape, 0, "") }
func KeyTab() tea.Msg   { return press(tea.KeyTab, 0, "") }

// WindowSize is a resize to w x h.
func WindowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}
