package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"almanac/internal/calendar"
	"almanac/internal/notify"
	"almanac/internal/push"
	"almanac/internal/store"
)

const sidebarWidth = 26

func notifyToast(r push.Reminder) string {
	return notify.Title(r) + " - " + notify.Body(r)
}

func (m Model) View() string {
	if m.width == 0 || m.quitting {
		return ""
	}

	top := m.renderTopBar()
	status := m.renderStatusBar()
	bodyHeight := m.height - lipgloss.Height(top) - lipgloss.Height(status)
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	var body string
	if m.activeDialog != dialogNone {
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, m.renderDialog())
	} else {
		mainWidth := m.width
		var cols []string
		if m.sidebarVisible && m.width > sidebarWidth+30 {
			mainWidth -= sidebarWidth
			cols = append(cols, m.renderSidebar(bodyHeight))
		}
		cols = append(cols, m.renderGrid(mainWidth, bodyHeight))
		body = lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, top, body, status)
}

func (m Model) renderTopBar() string {
	title := calendar.Title(m.focused, m.view, m.weekStart)
	mode := strings.ToUpper(string(m.view))
	left := m.st.topBar.Render("Almanac")
	center := m.st.title.Render(title)
	right := m.st.textDim.Render("[" + mode + "]")
	if m.loading {
		right = m.st.textDim.Render("[" + mode + "] loading…")
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right) - 2
	if gap < 2 {
		gap = 2
	}
	pad := strings.Repeat(" ", gap/2)
	return left + pad + center + strings.Repeat(" ", gap-gap/2) + right
}

func (m Model) renderStatusBar() string {
	hints := "d/w/m views · [/] page · t today · enter open · n new · i cycle · s sidebar · r reload · q quit"
	line := hints
	if m.status != "" {
		line = m.st.toast.Render(m.status) + "  " + hints
	}
	return m.st.statusBar.Width(m.width).Render(truncate(line, m.width-2))
}

// ---------- grids ----------

func (m Model) renderGrid(width, height int) string {
	switch m.view {
	case calendar.ViewMonth:
		return m.renderMonth(width, height)
	case calendar.ViewDay:
		return m.renderDay(width, height)
	default:
		return m.renderWeek(width, height)
	}
}

func (m Model) renderMonth(width, height int) string {
	days := m.visibleDays()
	weeks := len(days) / 7
	cellW := (width - 2) / 7
	cellH := (height - 3) / weeks
	if cellH < 2 {
		cellH = 2
	}

	var b strings.Builder
	for i := 0; i < 7; i++ {
		name := days[i].Format("Mon")
		b.WriteString(m.st.dayHeader.Width(cellW).Align(lipgloss.Center).Render(name))
	}
	b.WriteString("\n")

	for w := 0; w < weeks; w++ {
		row := make([]string, 7)
		for d := 0; d < 7; d++ {
			row[d] = m.renderMonthCell(days[w*7+d], cellW, cellH)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderMonthCell(day time.Time, w, h int) string {
	num := fmt.Sprintf("%2d", day.Day())
	numStyle := m.st.textBold
	if day.Month() != m.focused.Month() {
		numStyle = m.st.dayDim
	}
	if calendar.SameDay(day, m.now) {
		numStyle = m.st.today
	}
	if calendar.SameDay(day, m.cursor) {
		numStyle = m.st.cursor
	}

	lines := []string{numStyle.Render(num)}
	items := m.itemsOn(day)
	slots := h - 1
	for i, it := range items {
		if i >= slots {
			break
		}
		if i == slots-1 && len(items) > slots {
			lines = append(lines, m.st.textDim.Render(fmt.Sprintf("+%d more", len(items)-slots+1)))
			break
		}
		label := it.Title
		if it.Kind == store.KindTask && it.Completed {
			label = "✓ " + label
		}
		st := m.st.colorStyle(it.Color)
		if calendar.SameDay(day, m.cursor) && i == m.itemIdx {
			st = st.Copy().Reverse(true)
		}
		lines = append(lines, st.Render(truncate(label, w-1)))
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	cell := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.NewStyle().Width(w).Height(h).Render(cell)
}

func (m Model) renderWeek(width, height int) string {
	days := m.visibleDays()
	colW := (width - 7) / 7

	var b strings.Builder
	b.WriteString(m.st.hourLabel.Render(""))
	for _, day := range days {
		label := day.Format("Mon 2")
		st := m.st.dayHeader
		if calendar.SameDay(day, m.now) {
			st = m.st.today
		}
		b.WriteString(st.Width(colW).Align(lipgloss.Center).Render(label))
	}
	b.WriteString("\n")

	for hour := m.cfg.Calendar.DayStart; hour < m.cfg.Calendar.DayEnd; hour++ {
		b.WriteString(m.renderHourRow(days, hour, colW))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderHourRow(days []time.Time, hour, colW int) string {
	label := fmt.Sprintf("%02d:00", hour)
	labelStyle := m.st.hourLabel
	todayVisible := false
	for _, d := range days {
		if calendar.SameDay(d, m.now) {
			todayVisible = true
		}
	}
	if todayVisible && hour == m.now.Hour() {
		labelStyle = m.st.nowLine
		label = "▶" + label
	}

	var row strings.Builder
	row.WriteString(labelStyle.Render(label))
	for _, day := range days {
		cell := ""
		selected := calendar.SameDay(day, m.cursor) && hour == m.cursorHour
		if dayItems := m.itemsOn(day); len(dayItems) > 0 {
			for idx, it := range dayItems {
				if _, _, ok := calendar.CellLayout(it.Start, it.End, hour); !ok {
					continue
				}
				label := formatClock(it.Start) + " " + it.Title
				st := m.st.colorStyle(it.Color)
				if calendar.SameDay(day, m.cursor) && idx == m.itemIdx {
					st = st.Copy().Reverse(true)
				}
				cell = st.Render(truncate(label, colW-1))
				break
			}
		}
		cellStyle := lipgloss.NewStyle().Width(colW)
		if selected && cell == "" {
			cell = m.st.cursor.Render(strings.Repeat("·", colW-1))
		} else if selected {
			cellStyle = cellStyle.Background(lipgloss.Color("#313244"))
		}
		row.WriteString(cellStyle.Render(cell))
	}
	return row.String()
}

func (m Model) renderDay(width, height int) string {
	day := m.cursor
	items := m.itemsOn(day)

	var b strings.Builder
	head := day.Format("Monday, January 2")
	st := m.st.dayHeader
	if calendar.SameDay(day, m.now) {
		st = m.st.today
	}
	b.WriteString(st.Render(head))
	b.WriteString("\n")

	for hour := m.cfg.Calendar.DayStart; hour < m.cfg.Calendar.DayEnd; hour++ {
		label := fmt.Sprintf("%02d:00", hour)
		labelStyle := m.st.hourLabel
		if calendar.SameDay(day, m.now) && hour == m.now.Hour() {
			labelStyle = m.st.nowLine
			label = "▶" + label
		}
		line := labelStyle.Render(label)

		var entries []string
		for idx, it := range items {
			if _, _, ok := calendar.CellLayout(it.Start, it.End, hour); !ok {
				continue
			}
			detail := formatClock(it.Start) + "-" + formatClock(it.End) + " " + it.Title
			if it.Kind == store.KindTask {
				detail = formatClock(it.Start) + " ☐ " + it.Title
				if it.Completed {
					detail = formatClock(it.Start) + " ✓ " + it.Title
				}
			}
			if it.Location != "" {
				detail += " @ " + it.Location
			}
			es := m.st.colorStyle(it.Color)
			if idx == m.itemIdx {
				es = es.Copy().Reverse(true)
			}
			entries = append(entries, es.Render(truncate(detail, width-10)))
		}
		if hour == m.cursorHour && len(entries) == 0 {
			entries = append(entries, m.st.cursor.Render("·"))
		}
		if len(entries) > 0 {
			line += " " + strings.Join(entries, "  ")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// ---------- dialogs ----------

func (m Model) renderDialog() string {
	switch m.activeDialog {
	case dialogEvent:
		return m.renderEventDialog()
	case dialogTask:
		return m.renderTaskDialog()
	case dialogChooser:
		return m.renderChooser()
	}
	return ""
}

func (m Model) renderChooser() string {
	ev := "  Event  "
	tk := "  Task  "
	if m.chooserIdx == 0 {
		ev = m.st.cursor.Render(ev)
		tk = m.st.textDim.Render(tk)
	} else {
		ev = m.st.textDim.Render(ev)
		tk = m.st.cursor.Render(tk)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.st.modalTitle.Render("Create on "+m.sel.slot.Format("Jan 2, 2006")),
		"",
		ev+"   "+tk,
		"",
		m.st.textDim.Render("←/→ choose · enter confirm · esc cancel"),
	)
	return m.st.modalBox.Render(body)
}

func (m Model) renderEventDialog() string {
	f := m.eventForm
	title := "New Event"
	if f.editing() {
		title = "Edit Event"
	}

	labels := [evFieldColor]string{
		"Title", "Date", "Start", "End", "Location", "Description", "Notes", "Reminder",
	}
	var rows []string
	rows = append(rows, m.st.modalTitle.Render(title), "")
	for i := 0; i < evFieldColor; i++ {
		rows = append(rows, m.fieldRow(labels[i], f.inputs[i].View(), f.focus == i))
	}

	swatches := make([]string, len(eventColors))
	for i, c := range eventColors {
		dot := "○"
		if i == f.colorIdx {
			dot = "●"
		}
		swatches[i] = m.st.colorStyle(c).Render(dot)
	}
	rows = append(rows, m.fieldRow("Color", strings.Join(swatches, " "), f.focus == evFieldColor))

	hints := "tab next · enter save · esc cancel"
	if f.editing() {
		hints = "tab next · enter save · ctrl+d delete · esc cancel"
	}
	rows = append(rows, "", m.st.textDim.Render(hints))
	return m.st.modalBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderTaskDialog() string {
	f := m.taskForm
	title := "New Task"
	if f.editing() {
		title = "Edit Task"
	}

	labels := [taskFieldPriority]string{"Title", "Due date", "Due time", "Description"}
	var rows []string
	rows = append(rows, m.st.modalTitle.Render(title), "")
	for i := 0; i < taskFieldPriority; i++ {
		rows = append(rows, m.fieldRow(labels[i], f.inputs[i].View(), f.focus == i))
	}

	prios := make([]string, len(taskPriorities))
	for i, p := range taskPriorities {
		name := p.name
		if i == f.priorityIdx {
			name = "[" + name + "]"
		}
		prios[i] = m.st.colorStyle(p.color).Render(name)
	}
	rows = append(rows, m.fieldRow("Priority", strings.Join(prios, " "), f.focus == taskFieldPriority))

	done := "☐ pending"
	if f.completed {
		done = "✓ completed"
	}
	rows = append(rows, m.fieldRow("Status", done, f.focus == taskFieldCompleted))

	hints := "tab next · enter save · esc cancel"
	if f.editing() {
		hints = "tab next · enter save · ctrl+d delete · esc cancel"
	}
	rows = append(rows, "", m.st.textDim.Render(hints))
	return m.st.modalBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) fieldRow(label, value string, focused bool) string {
	ls := m.st.fieldLabel
	if focused {
		ls = m.st.fieldFocus.Copy().Width(12)
	}
	return ls.Render(label) + " " + value
}

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w == 1 {
		return "…"
	}
	return string(r[:w-1]) + "…"
}
