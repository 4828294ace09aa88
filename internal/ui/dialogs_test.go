package ui

import (
	"strings"
	"testing"
	"time"

	"almanac/internal/store"
)

func TestEventFormRequiresTitle(t *testing.T) {
	f := eventFormForSlot(time.Date(2025, 6, 5, 14, 0, 0, 0, time.UTC))
	if _, err := f.toItem(time.UTC); err == nil {
		t.Fatal("expected error for empty title")
	}
}

func TestEventFormRejectsInvertedTimes(t *testing.T) {
	f := eventFormForSlot(time.Date(2025, 6, 5, 14, 0, 0, 0, time.UTC))
	f.inputs[evFieldTitle].SetValue("Review")
	f.inputs[evFieldStart].SetValue("15:00")
	f.inputs[evFieldEnd].SetValue("14:00")
	if _, err := f.toItem(time.UTC); err == nil {
		t.Fatal("expected error when end precedes start")
	}
}

func TestEventFormToItem(t *testing.T) {
	f := eventFormForSlot(time.Date(2025, 6, 5, 14, 0, 0, 0, time.UTC))
	f.inputs[evFieldTitle].SetValue("  Review  ")
	f.inputs[evFieldLocation].SetValue("Room 4")
	f.inputs[evFieldReminder].SetValue("20")
	f = f.cycleColor(1)

	it, err := f.toItem(time.UTC)
	if err != nil {
		t.Fatalf("toItem: %v", err)
	}
	if it.Title != "Review" {
		t.Errorf("Title = %q, want trimmed", it.Title)
	}
	if it.Kind != store.KindEvent {
		t.Errorf("Kind = %v, want event", it.Kind)
	}
	want := time.Date(2025, 6, 5, 14, 0, 0, 0, time.UTC)
	if !it.Start.Equal(want) || !it.End.Equal(want.Add(time.Hour)) {
		t.Errorf("Start/End = %v/%v, want prefilled slot hour", it.Start, it.End)
	}
	if it.Reminder != 20 {
		t.Errorf("Reminder = %d, want 20", it.Reminder)
	}
	if it.Color != store.ColorGreen {
		t.Errorf("Color = %q, want cycled to green", it.Color)
	}
}

func TestEventFormRejectsBadReminder(t *testing.T) {
	f := eventFormForSlot(time.Date(2025, 6, 5, 14, 0, 0, 0, time.UTC))
	f.inputs[evFieldTitle].SetValue("Review")
	for _, bad := range []string{"soon", "-5"} {
		f.inputs[evFieldReminder].SetValue(bad)
		if _, err := f.toItem(time.UTC); err == nil {
			t.Errorf("reminder %q: expected error", bad)
		}
	}
}

func TestEventFormRoundTrip(t *testing.T) {
	orig := store.Item{
		ID:          "12",
		Kind:        store.KindEvent,
		Title:       "Sprint demo",
		Start:       time.Date(2025, 6, 5, 16, 30, 0, 0, time.UTC),
		End:         time.Date(2025, 6, 5, 17, 15, 0, 0, time.UTC),
		Location:    "Main hall",
		Description: "Quarterly",
		Notes:       "bring slides",
		Color:       store.ColorPurple,
		Reminder:    15,
	}
	f := eventFormForItem(orig)
	if !f.editing() {
		t.Fatal("form for existing item should be editing")
	}

	got, err := f.toItem(time.UTC)
	if err != nil {
		t.Fatalf("toItem: %v", err)
	}
	if got.ID != orig.ID || got.Title != orig.Title || got.Color != orig.Color ||
		!got.Start.Equal(orig.Start) || !got.End.Equal(orig.End) ||
		got.Location != orig.Location || got.Notes != orig.Notes || got.Reminder != orig.Reminder {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, orig)
	}
}

func TestTaskFormDefaultsDueTime(t *testing.T) {
	f := newTaskForm()
	f.inputs[taskFieldTitle].SetValue("Pay rent")
	f.inputs[taskFieldDate].SetValue("2025-06-05")

	it, err := f.toItem(time.UTC)
	if err != nil {
		t.Fatalf("toItem: %v", err)
	}
	if it.Start.Hour() != 9 || it.Start.Minute() != 0 {
		t.Errorf("due = %v, want 09:00 default", it.Start)
	}
	if !it.Start.Equal(it.End) {
		t.Errorf("task Start %v != End %v", it.Start, it.End)
	}
	if it.Color != store.ColorGreen {
		t.Errorf("Color = %q, want low-priority green", it.Color)
	}
}

func TestTaskFormPriorityCycle(t *testing.T) {
	f := newTaskForm()
	f = f.cyclePriority(1) // low wraps to high
	if taskPriorities[f.priorityIdx].name != "high" {
		t.Fatalf("priority = %q, want high", taskPriorities[f.priorityIdx].name)
	}
	f = f.cyclePriority(-1)
	if taskPriorities[f.priorityIdx].name != "low" {
		t.Fatalf("priority = %q, want low", taskPriorities[f.priorityIdx].name)
	}
}

func TestParseDateInput(t *testing.T) {
	loc := time.UTC
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2025-06-05", time.Date(2025, 6, 5, 0, 0, 0, 0, loc)},
		{"2025/06/05", time.Date(2025, 6, 5, 0, 0, 0, 0, loc)},
		{"06/05/2025", time.Date(2025, 6, 5, 0, 0, 0, 0, loc)},
		{"Jun 5, 2025", time.Date(2025, 6, 5, 0, 0, 0, 0, loc)},
		{"january 2, 2026", time.Date(2026, 1, 2, 0, 0, 0, 0, loc)},
	}
	for _, tc := range cases {
		got, err := parseDateInput(tc.in, loc)
		if err != nil {
			t.Errorf("parseDateInput(%q): %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("parseDateInput(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := parseDateInput("not a date", loc); err == nil {
		t.Error("expected error for garbage input")
	}

	today, err := parseDateInput("today", loc)
	if err != nil {
		t.Fatalf("parseDateInput(today): %v", err)
	}
	now := time.Now().In(loc)
	if today.Day() != now.Day() || today.Hour() != 0 {
		t.Errorf("today = %v, want midnight of current day", today)
	}
}

func TestParseTimeInput(t *testing.T) {
	cases := []struct {
		in      string
		h, m    int
		wantErr bool
	}{
		{"14:30", 14, 30, false},
		{"2:30 pm", 14, 30, false},
		{"2:30pm", 14, 30, false},
		{"9", 9, 0, false},
		{"3pm", 15, 0, false},
		{"25", 0, 0, true},
		{"noonish", 0, 0, true},
	}
	for _, tc := range cases {
		h, min, err := parseTimeInput(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseTimeInput(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseTimeInput(%q): %v", tc.in, err)
			continue
		}
		if h != tc.h || min != tc.m {
			t.Errorf("parseTimeInput(%q) = %d:%02d, want %d:%02d", tc.in, h, min, tc.h, tc.m)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("meeting with the team", 10); got != "meeting w…" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("anything", 0); got != "" {
		t.Errorf("truncate zero width = %q", got)
	}
	if strings.Contains(truncate("abc", 3), "…") {
		t.Error("no ellipsis expected when string fits")
	}
}
