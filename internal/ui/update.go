package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"almanac/internal/calendar"
	"almanac/internal/store"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		m.now = msg.now.In(m.loc)
		if m.quitting {
			return m, nil
		}
		return m, tickMinute()

	case itemsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.setStatus("Error fetching data: " + msg.err.Error())
			return m, nil
		}
		m.items = msg.items
		m.setStatus(fmt.Sprintf("Loaded %d items", len(m.items)))
		return m, nil

	case itemSavedMsg:
		if msg.err != nil {
			m.setStatus("Failed to save: " + msg.err.Error())
			return m, nil
		}
		m.items = m.store.Items()
		m.activeDialog = dialogNone
		m.sel = selection{}
		// Focus the saved item's date and show it in day view.
		m.focused = calendar.StartOfDay(msg.item.Start)
		m.cursor = m.focused
		m.view = calendar.ViewDay
		m.persistFocused()
		m.persistView()
		verb := "updated"
		if msg.created {
			verb = "created"
		}
		noun := "Event"
		if msg.item.Kind == store.KindTask {
			noun = "Task"
		}
		m.setStatus(fmt.Sprintf("%s %s: %s", noun, verb, msg.item.Title))
		return m, nil

	case itemDeletedMsg:
		if msg.err != nil {
			m.setStatus("Failed to delete: " + msg.err.Error())
			return m, nil
		}
		m.items = m.store.Items()
		m.activeDialog = dialogNone
		m.sel = selection{}
		m.itemIdx = -1
		m.setStatus("Deleted: " + msg.title)
		return m, nil

	case reminderMsg:
		if !m.notifier.Deliver(msg.r) {
			m.setStatus(notifyToast(msg.r))
		}
		return m, m.waitReminder()

	case tea.KeyMsg:
		switch m.activeDialog {
		case dialogEvent:
			return m.updateEventDialog(msg)
		case dialogTask:
			return m.updateTaskDialog(msg)
		case dialogChooser:
			return m.updateChooser(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

// ---------- normal mode ----------

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		if m.cancelPush != nil {
			m.cancelPush()
		}
		return m, tea.Quit

	case "s":
		m.sidebarVisible = !m.sidebarVisible
		return m, nil

	case "d":
		return m.switchView(calendar.ViewDay), nil
	case "w":
		return m.switchView(calendar.ViewWeek), nil
	case "m":
		return m.switchView(calendar.ViewMonth), nil

	case "t":
		today := calendar.StartOfDay(m.now)
		m.focused, m.cursor = today, today
		m.itemIdx = -1
		m.persistFocused()
		return m, nil

	case "[", "pgup":
		return m.step(-1), nil
	case "]", "pgdown":
		return m.step(1), nil

	case "left", "h":
		return m.moveCursorDay(-1), nil
	case "right", "l":
		return m.moveCursorDay(1), nil
	case "up", "k":
		if m.view == calendar.ViewMonth {
			return m.moveCursorDay(-7), nil
		}
		return m.moveCursorHour(-1), nil
	case "down", "j":
		if m.view == calendar.ViewMonth {
			return m.moveCursorDay(7), nil
		}
		return m.moveCursorHour(1), nil

	case "tab", "i":
		// Cycle item selection on the cursor day; wraps back to none.
		day := m.itemsOn(m.cursor)
		if len(day) == 0 {
			m.itemIdx = -1
			return m, nil
		}
		m.itemIdx++
		if m.itemIdx >= len(day) {
			m.itemIdx = -1
		}
		return m, nil

	case "enter":
		return m.openSelection()

	case "n":
		m.sel = selection{kind: selSlot, slot: m.slotTime()}
		m.activeDialog = dialogChooser
		m.chooserIdx = 0
		return m, nil

	case "r":
		m.loading = true
		m.setStatus("Reloading…")
		return m, m.loadItemsCmd()

	case "1", "2", "3":
		idx := int(msg.String()[0] - '1')
		m.myCalendars[idx].checked = !m.myCalendars[idx].checked
		m.itemIdx = -1
		return m, nil
	case "4", "5":
		idx := int(msg.String()[0] - '4')
		m.otherCalendars[idx].checked = !m.otherCalendars[idx].checked
		m.itemIdx = -1
		return m, nil

	case "c":
		m.myExpanded = !m.myExpanded
		return m, nil
	case "o":
		m.otherExpanded = !m.otherExpanded
		return m, nil
	}
	return m, nil
}

func (m Model) switchView(v calendar.View) Model {
	m.view = v
	m.itemIdx = -1
	m.persistView()
	m.setStatus("View: " + string(v))
	return m
}

// step pages the focused date by one view unit.
func (m Model) step(dir int) Model {
	switch m.view {
	case calendar.ViewDay:
		m.focused = m.focused.AddDate(0, 0, dir)
	case calendar.ViewWeek:
		m.focused = m.focused.AddDate(0, 0, 7*dir)
	case calendar.ViewMonth:
		m.focused = m.focused.AddDate(0, dir, 0)
	}
	m.cursor = m.focused
	m.itemIdx = -1
	m.persistFocused()
	return m
}

// moveCursorDay moves the day selection; leaving the visible range refocuses.
func (m Model) moveCursorDay(days int) Model {
	m.cursor = m.cursor.AddDate(0, 0, days)
	m.itemIdx = -1
	visible := m.visibleDays()
	if m.cursor.Before(visible[0]) || m.cursor.After(visible[len(visible)-1]) {
		m.focused = m.cursor
		m.persistFocused()
	}
	return m
}

func (m Model) moveCursorHour(dir int) Model {
	m.cursorHour += dir
	if m.cursorHour < m.cfg.Calendar.DayStart {
		m.cursorHour = m.cfg.Calendar.DayStart
	}
	if m.cursorHour > m.cfg.Calendar.DayEnd-1 {
		m.cursorHour = m.cfg.Calendar.DayEnd - 1
	}
	return m
}

// slotTime is the date-time an empty-slot action refers to.
func (m Model) slotTime() time.Time {
	if m.view == calendar.ViewMonth {
		return time.Date(m.cursor.Year(), m.cursor.Month(), m.cursor.Day(), 9, 0, 0, 0, m.loc)
	}
	return time.Date(m.cursor.Year(), m.cursor.Month(), m.cursor.Day(), m.cursorHour, 0, 0, 0, m.loc)
}

// openSelection opens the edit dialog for the selected item, or the
// appropriate creation dialog for the empty slot under the cursor.
func (m Model) openSelection() (tea.Model, tea.Cmd) {
	day := m.itemsOn(m.cursor)
	if m.itemIdx >= 0 && m.itemIdx < len(day) {
		it := day[m.itemIdx]
		m.sel = selection{kind: selItem, id: it.ID}
		if it.Kind == store.KindTask {
			m.taskForm = taskFormForItem(it)
			m.activeDialog = dialogTask
		} else {
			m.eventForm = eventFormForItem(it)
			m.activeDialog = dialogEvent
		}
		return m, nil
	}

	slot := m.slotTime()
	m.sel = selection{kind: selSlot, slot: slot}
	if m.view == calendar.ViewMonth {
		m.activeDialog = dialogChooser
		m.chooserIdx = 0
	} else {
		m.eventForm = eventFormForSlot(slot)
		m.activeDialog = dialogEvent
	}
	return m, nil
}

// ---------- dialogs ----------

func (m Model) closeDialog() Model {
	m.activeDialog = dialogNone
	m.sel = selection{}
	return m
}

func (m Model) updateChooser(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closeDialog(), nil
	case "left", "right", "tab", "h", "l":
		m.chooserIdx = 1 - m.chooserIdx
		return m, nil
	case "e":
		m.chooserIdx = 0
		return m.confirmChooser(), nil
	case "t":
		m.chooserIdx = 1
		return m.confirmChooser(), nil
	case "enter":
		return m.confirmChooser(), nil
	}
	return m, nil
}

func (m Model) confirmChooser() Model {
	slot := m.sel.slot
	if m.chooserIdx == 1 {
		m.taskForm = taskFormForSlot(slot)
		m.activeDialog = dialogTask
	} else {
		m.eventForm = eventFormForSlot(slot)
		m.activeDialog = dialogEvent
	}
	return m
}

func (m Model) updateEventDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closeDialog(), nil

	case "tab", "down":
		m.eventForm = m.eventForm.setFocus(m.eventForm.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.eventForm = m.eventForm.setFocus(m.eventForm.focus - 1)
		return m, nil

	case "left", "right":
		if m.eventForm.focus == evFieldColor {
			dir := 1
			if msg.String() == "left" {
				dir = -1
			}
			m.eventForm = m.eventForm.cycleColor(dir)
			return m, nil
		}

	case "enter":
		it, err := m.eventForm.toItem(m.loc)
		if err != nil {
			m.setStatus("Invalid event: " + err.Error())
			return m, nil
		}
		if m.eventForm.editing() {
			return m, m.updateItemCmd(m.eventForm.editID, it)
		}
		return m, m.createItemCmd(it)

	case "ctrl+d":
		if m.eventForm.editing() {
			if it, ok := m.store.Get(m.eventForm.editID); ok {
				return m, m.deleteItemCmd(it.ID, it.Kind, it.Title)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.eventForm, cmd = m.eventForm.update(msg)
	return m, cmd
}

func (m Model) updateTaskDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closeDialog(), nil

	case "tab", "down":
		m.taskForm = m.taskForm.setFocus(m.taskForm.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.taskForm = m.taskForm.setFocus(m.taskForm.focus - 1)
		return m, nil

	case "left", "right":
		switch m.taskForm.focus {
		case taskFieldPriority:
			dir := 1
			if msg.String() == "left" {
				dir = -1
			}
			m.taskForm = m.taskForm.cyclePriority(dir)
			return m, nil
		case taskFieldCompleted:
			m.taskForm.completed = !m.taskForm.completed
			return m, nil
		}

	case " ":
		if m.taskForm.focus == taskFieldCompleted {
			m.taskForm.completed = !m.taskForm.completed
			return m, nil
		}

	case "enter":
		it, err := m.taskForm.toItem(m.loc)
		if err != nil {
			m.setStatus("Invalid task: " + err.Error())
			return m, nil
		}
		if m.taskForm.editing() {
			return m, m.updateItemCmd(m.taskForm.editID, it)
		}
		return m, m.createItemCmd(it)

	case "ctrl+d":
		if m.taskForm.editing() {
			if it, ok := m.store.Get(m.taskForm.editID); ok {
				return m, m.deleteItemCmd(it.ID, it.Kind, it.Title)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.taskForm, cmd = m.taskForm.update(msg)
	return m, cmd
}
