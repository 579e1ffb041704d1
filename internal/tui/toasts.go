package tui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/kvdoc/internal/core/notify"
	"github.com/colonyops/kvdoc/internal/core/styles"
)

const (
	toastFrame = 100 * time.Millisecond
	toastWidth = 48
	maxToasts  = 4
)

// toastLifetime keeps confirmations short and problems on screen longer.
func toastLifetime(level notify.Level) time.Duration {
	if level == notify.LevelInfo {
		return 4 * time.Second
	}
	return 8 * time.Second
}

type toastFrameMsg time.Time

func nextToastFrame() tea.Cmd {
	return tea.Tick(toastFrame, func(t time.Time) tea.Msg { return toastFrameMsg(t) })
}

type toastEntry struct {
	n       notify.Notification
	left    time.Duration
	repeats int
}

// toastStack is the set of toasts currently on screen, oldest first. A
// notification equal to the newest one is folded into it instead of
// stacking, so a burst of identical warnings shows once with a count.
type toastStack struct {
	entries []toastEntry
	running bool
}

func (s *toastStack) push(n notify.Notification) {
	if last := len(s.entries) - 1; last >= 0 {
		top := &s.entries[last]
		if top.n.Level == n.Level && top.n.Message == n.Message {
			top.repeats++
			top.left = toastLifetime(n.Level)
			return
		}
	}

	s.entries = append(s.entries, toastEntry{n: n, left: toastLifetime(n.Level), repeats: 1})
	if extra := len(s.entries) - maxToasts; extra > 0 {
		s.entries = s.entries[extra:]
	}
}

// advance ages every toast by d and drops the expired ones.
func (s *toastStack) advance(d time.Duration) {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.left -= d; e.left > 0 {
			kept = append(kept, e)
		}
	}
	s.entries = kept
}

func (s *toastStack) dismissNewest() {
	if n := len(s.entries); n > 0 {
		s.entries = s.entries[:n-1]
	}
}

func (s *toastStack) empty() bool { return len(s.entries) == 0 }

// start reports whether a frame timer must be scheduled, marking it running.
func (s *toastStack) start() bool {
	if s.running || s.empty() {
		return false
	}
	s.running = true
	return true
}

func (s *toastStack) view() string {
	boxes := make([]string, len(s.entries))
	for i, e := range s.entries {
		boxes[i] = e.render()
	}
	return strings.Join(boxes, "\n")
}

func (e toastEntry) render() string {
	icon, style := styles.IconNotifyInfo, styles.ToastInfoStyle
	switch e.n.Level {
	case notify.LevelWarning:
		icon, style = styles.IconNotifyWarning, styles.ToastWarningStyle
	case notify.LevelError:
		icon, style = styles.IconNotifyError, styles.ToastErrorStyle
	}

	text := icon + " " + e.n.Message
	if e.repeats > 1 {
		text += fmt.Sprintf(" (×%d)", e.repeats)
	}
	return style.Width(toastWidth).Render(text)
}

// overlay draws the stack in the bottom-right corner of background, one row
// above the status line.
func (s *toastStack) overlay(background string, width, height int) string {
	if s.empty() {
		return background
	}
	stack := s.view()
	x := max(width-lipgloss.Width(stack)-1, 0)
	y := max(height-lipgloss.Height(stack)-1, 0)

	layer := lipgloss.NewLayer(stack)
	layer.X(x).Y(y).Z(2)
	return lipgloss.NewCompositor(lipgloss.NewLayer(background), layer).Render()
}
