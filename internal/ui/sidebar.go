package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"almanac/internal/calendar"
)

func (m Model) renderSidebar(height int) string {
	sections := []string{
		m.renderMiniMonth(),
		"",
		m.st.textDim.Render("＋ Create (n)"),
		"",
		m.renderCalendarList("My calendars", m.myCalendars, m.myExpanded, 1, "c"),
		"",
		m.renderCalendarList("Other calendars", m.otherCalendars, m.otherExpanded, 4, "o"),
	}
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return m.st.sidebarBox.Width(sidebarWidth - 2).Height(height - 2).Render(body)
}

// renderMiniMonth is the compact month-at-a-glance above the calendar lists.
// It always shows the month containing the focused date, whatever the view.
func (m Model) renderMiniMonth() string {
	var b strings.Builder
	b.WriteString(m.st.sectionHead.Render(m.focused.Format("January 2006")))
	b.WriteString("\n")

	days := calendar.Range(m.focused, calendar.ViewMonth, m.weekStart)
	for i := 0; i < 7; i++ {
		b.WriteString(m.st.textDim.Render(days[i].Format("Mon")[:2] + " "))
	}
	b.WriteString("\n")

	for i, day := range days {
		cell := fmt.Sprintf("%2d", day.Day())
		switch {
		case calendar.SameDay(day, m.cursor):
			cell = m.st.cursor.Render(cell)
		case calendar.SameDay(day, m.now):
			cell = m.st.today.Render(cell)
		case day.Month() != m.focused.Month():
			cell = m.st.dayDim.Render(cell)
		case m.hasItems(day):
			cell = m.st.textBold.Render(cell)
		}
		b.WriteString(cell + " ")
		if i%7 == 6 && i != len(days)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderCalendarList(title string, list []calendarToggle, expanded bool, firstKey int, toggleKey string) string {
	var b strings.Builder
	arrow := "▸"
	if expanded {
		arrow = "▾"
	}
	b.WriteString(m.st.sectionHead.Render(arrow + " " + title))
	b.WriteString(m.st.textDim.Render(" (" + toggleKey + ")"))
	if !expanded {
		return b.String()
	}
	for i, c := range list {
		mark := "☐"
		if c.checked {
			mark = "☑"
		}
		b.WriteString("\n")
		b.WriteString(m.st.colorStyle(c.color).Render(mark))
		b.WriteString(" " + c.name)
		b.WriteString(m.st.textDim.Render(fmt.Sprintf(" (%d)", firstKey+i)))
	}
	return b.String()
}

func (m Model) hasItems(day time.Time) bool {
	hidden := m.hiddenColors()
	for _, it := range m.items {
		if hidden[it.Color] {
			continue
		}
		if calendar.SameDay(it.Start, day) {
			return true
		}
	}
	return false
}
