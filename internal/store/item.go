package store

import (
	"fmt"
	"time"

	"almanac/internal/api"
)

// Kind distinguishes the two backend collections an item can come from.
type Kind string

const (
	KindEvent Kind = "event"
	KindTask  Kind = "task"
)

// Item colors understood by the views.
const (
	ColorBlue   = "blue"
	ColorGreen  = "green"
	ColorPurple = "purple"
	ColorYellow = "yellow"
	ColorOrange = "orange"
	ColorRed    = "red"
)

// Item is the unified displayable shape for a backend event or task. A task
// has no duration: Start == End == due date.
type Item struct {
	ID          string
	Title       string
	Description string
	Notes       string
	Location    string
	Start       time.Time
	End         time.Time
	Color       string
	Kind        Kind
	Reminder    int // minutes before start; 0 means none
	Completed   bool
}

// parseWhen accepts the ISO-8601 timestamps the backend emits.
func parseWhen(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable timestamp %q", s)
}

func itemFromEvent(ev api.Event, loc *time.Location) (Item, error) {
	start, err := parseWhen(ev.StartTime, loc)
	if err != nil {
		return Item{}, fmt.Errorf("event %d start: %w", ev.ID, err)
	}
	end, err := parseWhen(ev.EndTime, loc)
	if err != nil {
		return Item{}, fmt.Errorf("event %d end: %w", ev.ID, err)
	}
	color := ev.Color
	if color == "" {
		color = ColorBlue
	}
	return Item{
		ID:          fmt.Sprintf("%d", ev.ID),
		Title:       ev.Title,
		Description: ev.Description,
		Location:    ev.Location,
		Start:       start,
		End:         end,
		Color:       color,
		Kind:        KindEvent,
		Reminder:    ev.Reminder,
	}, nil
}

func itemFromTask(task api.Task, loc *time.Location) (Item, error) {
	due, err := parseWhen(task.DueDate, loc)
	if err != nil {
		return Item{}, fmt.Errorf("task %d due date: %w", task.ID, err)
	}
	color := task.Color
	if color == "" {
		color = ColorGreen
	}
	return Item{
		ID:          fmt.Sprintf("%d", task.ID),
		Title:       task.Title,
		Description: task.Description,
		Start:       due,
		End:         due,
		Color:       color,
		Kind:        KindTask,
		Completed:   task.IsCompleted,
	}, nil
}

func (it Item) toEvent() api.Event {
	return api.Event{
		Title:       it.Title,
		StartTime:   it.Start.Format(time.RFC3339),
		EndTime:     it.End.Format(time.RFC3339),
		Description: it.Description,
		Location:    it.Location,
		Color:       it.Color,
		Reminder:    it.Reminder,
	}
}

func (it Item) toTask() api.Task {
	return api.Task{
		Title:       it.Title,
		DueDate:     it.Start.Format(time.RFC3339),
		Description: it.Description,
		Color:       it.Color,
		IsCompleted: it.Completed,
	}
}
