// Package notify classifies editor outcomes into user-facing notifications
// and keeps a bounded history of them.
package notify

import (
	"errors"
	"sync"
	"time"

	"github.com/colonyops/kvdoc/internal/core/document"
)

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification represents a single notification event.
type Notification struct {
	Level     Level
	Message   string
	CreatedAt time.Time
}

// Info returns an info notification.
func Info(msg string) Notification {
	return Notification{Level: LevelInfo, Message: msg, CreatedAt: time.Now()}
}

// Warning returns a warning notification.
func Warning(msg string) Notification {
	return Notification{Level: LevelWarning, Message: msg, CreatedAt: time.Now()}
}

// FromError maps err to a notification. Rejected input is a warning; format
// and I/O failures are errors.
func FromError(err error) Notification {
	level := LevelError
	var verr *document.ValidationError
	if errors.As(err, &verr) {
		level = LevelWarning
	}
	return Notification{Level: level, Message: err.Error(), CreatedAt: time.Now()}
}

// History keeps the most recent notifications, oldest first.
type History struct {
	mu    sync.Mutex
	limit int
	items []Notification
}

// NewHistory returns a History holding at most limit entries.
func NewHistory(limit int) *History {
	return &History{limit: max(limit, 1)}
}

// Add records n, evicting the oldest entry when full.
func (h *History) Add(n Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	h.items = append(h.items, n)
	if len(h.items) > h.limit {
		h.items = h.items[len(h.items)-h.limit:]
	}
}

// List returns a copy of the recorded notifications.
func (h *History) List() []Notification {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Notification, len(h.items))
	copy(out, h.items)
	return out
}

// Len returns the number of recorded notifications.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.items)
}
