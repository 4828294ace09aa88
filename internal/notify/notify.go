package notify

import (
	"github.com/gen2brain/beeep"

	"almanac/internal/push"
)

// Notifier renders reminder messages. Native desktop delivery is best-effort;
// when it is disabled or fails, callers fall back to an in-app toast.
type Notifier struct {
	enabled bool
}

func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled}
}

// Title frames the reminder by its declared kind.
func Title(r push.Reminder) string {
	if r.Type == "task" {
		return "Task Reminder: " + r.Title
	}
	return "Event Reminder: " + r.Title
}

// Body picks the reminder's detail text.
func Body(r push.Reminder) string {
	if r.Description != "" {
		return r.Description
	}
	if r.Note != "" {
		return r.Note
	}
	return "No details provided."
}

// Deliver shows a native notification for the reminder. It returns false when
// the caller should render an in-app toast instead.
func (n *Notifier) Deliver(r push.Reminder) bool {
	if !n.enabled {
		return false
	}
	if err := beeep.Notify(Title(r), Body(r), ""); err != nil {
		return false
	}
	return true
}
