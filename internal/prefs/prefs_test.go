package prefs

import (
	"path/filepath"
	"testing"
	"time"

	"almanac/internal/calendar"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := OpenPath(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestViewModeRoundTrip(t *testing.T) {
	d := openTestDB(t)
	for _, v := range []calendar.View{calendar.ViewDay, calendar.ViewMonth, calendar.ViewWeek} {
		if err := d.SetViewMode(v); err != nil {
			t.Fatalf("SetViewMode(%s): %v", v, err)
		}
		if got := d.ViewMode(); got != v {
			t.Fatalf("ViewMode = %s after persisting %s", got, v)
		}
	}
}

func TestViewModeDefaultsToWeek(t *testing.T) {
	d := openTestDB(t)
	if got := d.ViewMode(); got != calendar.ViewWeek {
		t.Fatalf("missing view mode = %s, want week", got)
	}

	// A corrupted stored value also yields the default.
	if err := d.set(keyViewMode, "fortnight"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := d.ViewMode(); got != calendar.ViewWeek {
		t.Fatalf("corrupted view mode = %s, want week", got)
	}
}

func TestFocusedDateRoundTrip(t *testing.T) {
	d := openTestDB(t)
	want := time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)
	if err := d.SetFocusedDate(want); err != nil {
		t.Fatalf("SetFocusedDate: %v", err)
	}
	got := d.FocusedDate(time.UTC)
	if !calendar.SameDay(got, want) {
		t.Fatalf("FocusedDate = %v, want %v", got, want)
	}
}

func TestFocusedDateFallsBackToToday(t *testing.T) {
	d := openTestDB(t)
	today := calendar.StartOfDay(time.Now().UTC())

	if got := d.FocusedDate(time.UTC); !calendar.SameDay(got, today) {
		t.Fatalf("missing focused date = %v, want today", got)
	}

	if err := d.set(keyFocusedDate, "not-a-date"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := d.FocusedDate(time.UTC); !calendar.SameDay(got, today) {
		t.Fatalf("corrupted focused date = %v, want today", got)
	}
}
