package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"almanac/internal/store"
)

var eventColors = []string{
	store.ColorBlue, store.ColorGreen, store.ColorPurple,
	store.ColorYellow, store.ColorOrange, store.ColorRed,
}

// Priorities map onto colors the same way the task dialog always has.
var taskPriorities = []struct {
	name  string
	color string
}{
	{"high", store.ColorRed},
	{"medium", store.ColorOrange},
	{"low", store.ColorGreen},
}

// ---------- event dialog ----------

const (
	evFieldTitle = iota
	evFieldDate
	evFieldStart
	evFieldEnd
	evFieldLocation
	evFieldDescription
	evFieldNotes
	evFieldReminder
	evFieldColor
	evFieldCount
)

type eventForm struct {
	inputs   [evFieldColor]textinput.Model // all fields except the color cycler
	colorIdx int
	focus    int
	editID   string // empty when creating
}

func newEventForm() eventForm {
	var f eventForm
	placeholders := [evFieldColor]string{
		"Event title",
		"YYYY-MM-DD",
		"HH:MM",
		"HH:MM",
		"Location (optional)",
		"Description (optional)",
		"Notes (optional)",
		"Minutes before start, e.g. 20",
	}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 200
		in.Width = 40
		f.inputs[i] = in
	}
	f.inputs[evFieldTitle].CharLimit = 120
	f.inputs[evFieldDate].Width = 16
	f.inputs[evFieldStart].Width = 10
	f.inputs[evFieldEnd].Width = 10
	f.inputs[evFieldReminder].Width = 10
	f.inputs[evFieldTitle].Focus()
	return f
}

// eventFormForSlot prefills a creation form for an empty slot.
func eventFormForSlot(slot time.Time) eventForm {
	f := newEventForm()
	f.inputs[evFieldDate].SetValue(slot.Format("2006-01-02"))
	f.inputs[evFieldStart].SetValue(formatClock(slot))
	f.inputs[evFieldEnd].SetValue(formatClock(slot.Add(time.Hour)))
	return f
}

// eventFormForItem prefills an edit form from an existing event.
func eventFormForItem(it store.Item) eventForm {
	f := newEventForm()
	f.editID = it.ID
	f.inputs[evFieldTitle].SetValue(it.Title)
	f.inputs[evFieldDate].SetValue(it.Start.Format("2006-01-02"))
	f.inputs[evFieldStart].SetValue(formatClock(it.Start))
	f.inputs[evFieldEnd].SetValue(formatClock(it.End))
	f.inputs[evFieldLocation].SetValue(it.Location)
	f.inputs[evFieldDescription].SetValue(it.Description)
	f.inputs[evFieldNotes].SetValue(it.Notes)
	if it.Reminder > 0 {
		f.inputs[evFieldReminder].SetValue(strconv.Itoa(it.Reminder))
	}
	for i, c := range eventColors {
		if c == it.Color {
			f.colorIdx = i
		}
	}
	return f
}

func (f eventForm) editing() bool { return f.editID != "" }

func (f eventForm) setFocus(idx int) eventForm {
	f.focus = (idx + evFieldCount) % evFieldCount
	for i := range f.inputs {
		if i == f.focus {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return f
}

func (f eventForm) update(msg tea.Msg) (eventForm, tea.Cmd) {
	if f.focus >= evFieldColor {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f eventForm) cycleColor(dir int) eventForm {
	f.colorIdx = (f.colorIdx + dir + len(eventColors)) % len(eventColors)
	return f
}

// toItem validates the form and produces the item to send.
func (f eventForm) toItem(loc *time.Location) (store.Item, error) {
	title := strings.TrimSpace(f.inputs[evFieldTitle].Value())
	if title == "" {
		return store.Item{}, fmt.Errorf("title is required")
	}

	day, err := parseDateInput(f.inputs[evFieldDate].Value(), loc)
	if err != nil {
		return store.Item{}, err
	}
	sh, sm, err := parseTimeInput(f.inputs[evFieldStart].Value())
	if err != nil {
		return store.Item{}, fmt.Errorf("start time: %w", err)
	}
	eh, em, err := parseTimeInput(f.inputs[evFieldEnd].Value())
	if err != nil {
		return store.Item{}, fmt.Errorf("end time: %w", err)
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), sh, sm, 0, 0, loc)
	end := time.Date(day.Year(), day.Month(), day.Day(), eh, em, 0, 0, loc)
	if end.Before(start) {
		return store.Item{}, fmt.Errorf("end time precedes start time")
	}

	reminder := 0
	if v := strings.TrimSpace(f.inputs[evFieldReminder].Value()); v != "" {
		reminder, err = strconv.Atoi(v)
		if err != nil || reminder < 0 {
			return store.Item{}, fmt.Errorf("reminder must be a number of minutes")
		}
	}

	return store.Item{
		ID:          f.editID,
		Kind:        store.KindEvent,
		Title:       title,
		Start:       start,
		End:         end,
		Location:    strings.TrimSpace(f.inputs[evFieldLocation].Value()),
		Description: strings.TrimSpace(f.inputs[evFieldDescription].Value()),
		Notes:       strings.TrimSpace(f.inputs[evFieldNotes].Value()),
		Color:       eventColors[f.colorIdx],
		Reminder:    reminder,
	}, nil
}

// ---------- task dialog ----------

const (
	taskFieldTitle = iota
	taskFieldDate
	taskFieldTime
	taskFieldDescription
	taskFieldPriority
	taskFieldCompleted
	taskFieldCount
)

type taskForm struct {
	inputs      [taskFieldPriority]textinput.Model
	priorityIdx int
	completed   bool
	focus       int
	editID      string
}

func newTaskForm() taskForm {
	var f taskForm
	placeholders := [taskFieldPriority]string{
		"Task title",
		"YYYY-MM-DD",
		"HH:MM",
		"Description (optional)",
	}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 200
		in.Width = 40
		f.inputs[i] = in
	}
	f.inputs[taskFieldTitle].CharLimit = 120
	f.inputs[taskFieldDate].Width = 16
	f.inputs[taskFieldTime].Width = 10
	f.priorityIdx = 2 // low
	f.inputs[taskFieldTitle].Focus()
	return f
}

func taskFormForSlot(slot time.Time) taskForm {
	f := newTaskForm()
	f.inputs[taskFieldDate].SetValue(slot.Format("2006-01-02"))
	f.inputs[taskFieldTime].SetValue(formatClock(slot))
	return f
}

func taskFormForItem(it store.Item) taskForm {
	f := newTaskForm()
	f.editID = it.ID
	f.inputs[taskFieldTitle].SetValue(it.Title)
	f.inputs[taskFieldDate].SetValue(it.Start.Format("2006-01-02"))
	f.inputs[taskFieldTime].SetValue(formatClock(it.Start))
	f.inputs[taskFieldDescription].SetValue(it.Description)
	f.completed = it.Completed
	for i, p := range taskPriorities {
		if p.color == it.Color {
			f.priorityIdx = i
		}
	}
	return f
}

func (f taskForm) editing() bool { return f.editID != "" }

func (f taskForm) setFocus(idx int) taskForm {
	f.focus = (idx + taskFieldCount) % taskFieldCount
	for i := range f.inputs {
		if i == f.focus {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return f
}

func (f taskForm) update(msg tea.Msg) (taskForm, tea.Cmd) {
	if f.focus >= taskFieldPriority {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f taskForm) cyclePriority(dir int) taskForm {
	f.priorityIdx = (f.priorityIdx + dir + len(taskPriorities)) % len(taskPriorities)
	return f
}

func (f taskForm) toItem(loc *time.Location) (store.Item, error) {
	title := strings.TrimSpace(f.inputs[taskFieldTitle].Value())
	if title == "" {
		return store.Item{}, fmt.Errorf("title is required")
	}

	day, err := parseDateInput(f.inputs[taskFieldDate].Value(), loc)
	if err != nil {
		return store.Item{}, err
	}
	hour, minute := 9, 0
	if v := strings.TrimSpace(f.inputs[taskFieldTime].Value()); v != "" {
		hour, minute, err = parseTimeInput(v)
		if err != nil {
			return store.Item{}, fmt.Errorf("due time: %w", err)
		}
	}
	due := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)

	return store.Item{
		ID:          f.editID,
		Kind:        store.KindTask,
		Title:       title,
		Start:       due,
		End:         due,
		Description: strings.TrimSpace(f.inputs[taskFieldDescription].Value()),
		Color:       taskPriorities[f.priorityIdx].color,
		Completed:   f.completed,
	}, nil
}
