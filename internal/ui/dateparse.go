package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parseDateInput accepts the date spellings the dialogs take, including a few
// natural-language shortcuts.
func parseDateInput(input string, loc *time.Location) (time.Time, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	now := time.Now().In(loc)
	switch input {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc), nil
	case "tomorrow":
		t := now.AddDate(0, 0, 1)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
	case "yesterday":
		t := now.AddDate(0, 0, -1)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
	}

	formats := []string{
		"2006-01-02",
		"2006/01/02",
		"01/02/2006",
		"Jan 2, 2006",
		"Jan 2 2006",
		"January 2, 2006",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, input, loc); err == nil {
			return t, nil
		}
	}
	// Month names in lowercase after normalization.
	for _, format := range formats {
		if t, err := time.ParseInLocation(strings.ToLower(format), input, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", input)
}

// parseTimeInput reads a clock time like "14:30", "2:30 pm", or a bare hour.
func parseTimeInput(input string) (hour, minute int, err error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return 0, 0, fmt.Errorf("empty time")
	}

	for _, layout := range []string{"15:04", "3:04 pm", "3:04pm", "3 pm", "3pm"} {
		if t, perr := time.Parse(layout, input); perr == nil {
			return t.Hour(), t.Minute(), nil
		}
	}
	if h, perr := strconv.Atoi(input); perr == nil && h >= 0 && h <= 23 {
		return h, 0, nil
	}
	return 0, 0, fmt.Errorf("unable to parse time: %s", input)
}

func formatClock(t time.Time) string {
	return t.Format("15:04")
}
