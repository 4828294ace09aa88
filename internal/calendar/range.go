package calendar

import (
	"fmt"
	"time"
)

// View selects the calendar grid granularity.
type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// ParseView returns the view for s, or false when s is not one of day/week/month.
func ParseView(s string) (View, bool) {
	switch View(s) {
	case ViewDay, ViewWeek, ViewMonth:
		return View(s), true
	}
	return "", false
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the most recent weekStart on or before t, at midnight.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	t = StartOfDay(t)
	diff := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return t.AddDate(0, 0, -diff)
}

// Range produces the ordered cell dates for rendering focused in the given view.
// Day is the single focused date, week is 7 days from the week start, month is a
// whole number of weeks covering the focused month, including leading/trailing
// days from adjacent months so the grid stays rectangular.
func Range(focused time.Time, view View, weekStart time.Weekday) []time.Time {
	switch view {
	case ViewDay:
		return []time.Time{StartOfDay(focused)}
	case ViewWeek:
		start := StartOfWeek(focused, weekStart)
		days := make([]time.Time, 7)
		for i := range days {
			days[i] = start.AddDate(0, 0, i)
		}
		return days
	case ViewMonth:
		first := time.Date(focused.Year(), focused.Month(), 1, 0, 0, 0, 0, focused.Location())
		last := first.AddDate(0, 1, -1)
		start := StartOfWeek(first, weekStart)
		end := StartOfWeek(last, weekStart).AddDate(0, 0, 6)
		var days []time.Time
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			days = append(days, d)
		}
		return days
	}
	return nil
}

// Title builds the header text for the focused range.
func Title(focused time.Time, view View, weekStart time.Weekday) string {
	switch view {
	case ViewDay:
		return focused.Format("January 2, 2006")
	case ViewWeek:
		start := StartOfWeek(focused, weekStart)
		end := start.AddDate(0, 0, 6)
		switch {
		case start.Month() == end.Month() && start.Year() == end.Year():
			return fmt.Sprintf("%s - %s", start.Format("January 2"), end.Format("2, 2006"))
		case start.Year() == end.Year():
			return fmt.Sprintf("%s - %s", start.Format("January 2"), end.Format("January 2, 2006"))
		default:
			return fmt.Sprintf("%s - %s", start.Format("January 2, 2006"), end.Format("January 2, 2006"))
		}
	case ViewMonth:
		return focused.Format("January 2006")
	}
	return ""
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
