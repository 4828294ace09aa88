package notify

import (
	"testing"

	"almanac/internal/push"
)

func TestTitleFraming(t *testing.T) {
	cases := []struct {
		r    push.Reminder
		want string
	}{
		{push.Reminder{Type: "event", Title: "Standup"}, "Event Reminder: Standup"},
		{push.Reminder{Type: "task", Title: "File report"}, "Task Reminder: File report"},
		// Unknown kinds frame as events, matching how the grids display them.
		{push.Reminder{Type: "", Title: "Mystery"}, "Event Reminder: Mystery"},
	}
	for _, tc := range cases {
		if got := Title(tc.r); got != tc.want {
			t.Fatalf("Title(%+v) = %q, want %q", tc.r, got, tc.want)
		}
	}
}

func TestBodyFallbackChain(t *testing.T) {
	r := push.Reminder{Description: "weekly sync", Note: "bring updates"}
	if got := Body(r); got != "weekly sync" {
		t.Fatalf("Body = %q, want description first", got)
	}
	r.Description = ""
	if got := Body(r); got != "bring updates" {
		t.Fatalf("Body = %q, want note", got)
	}
	r.Note = ""
	if got := Body(r); got != "No details provided." {
		t.Fatalf("Body = %q, want placeholder", got)
	}
}

func TestDisabledNotifierDefersToToast(t *testing.T) {
	n := New(false)
	if n.Deliver(push.Reminder{Type: "event", Title: "Standup"}) {
		t.Fatalf("disabled notifier claimed native delivery")
	}
}
