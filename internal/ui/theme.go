package ui

import (
	"github.com/charmbracelet/lipgloss"

	"almanac/internal/store"
)

type style struct {
	topBar    lipgloss.Style
	title     lipgloss.Style
	statusBar lipgloss.Style

	dayHeader   lipgloss.Style
	dayDim      lipgloss.Style
	today       lipgloss.Style
	cursor      lipgloss.Style
	weekend     lipgloss.Style
	hourLabel   lipgloss.Style
	nowLine     lipgloss.Style
	gridBorder  lipgloss.Style
	sidebarBox  lipgloss.Style
	sectionHead lipgloss.Style
	textDim     lipgloss.Style
	textBold    lipgloss.Style

	modalBox   lipgloss.Style
	modalTitle lipgloss.Style
	fieldLabel lipgloss.Style
	fieldFocus lipgloss.Style

	toast lipgloss.Style

	colors map[string]lipgloss.Style
}

func newStyle() style {
	return style{
		topBar:    lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true).Padding(0, 1),
		title:     lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true),
		statusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Background(lipgloss.Color("#313244")).Padding(0, 1),

		dayHeader:   lipgloss.NewStyle().Foreground(lipgloss.Color("#bac2de")).Bold(true),
		dayDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70")),
		today:       lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#89b4fa")).Bold(true),
		cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#f9e2af")),
		weekend:     lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")),
		hourLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Width(6).Align(lipgloss.Right),
		nowLine:     lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true),
		gridBorder:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#585b70")),
		sidebarBox:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#585b70")).Padding(0, 1),
		sectionHead: lipgloss.NewStyle().Foreground(lipgloss.Color("#bac2de")).Bold(true),
		textDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")),
		textBold:    lipgloss.NewStyle().Bold(true),

		modalBox:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#89b4fa")).Padding(1, 2).Width(64),
		modalTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cdd6f4")),
		fieldLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Width(12),
		fieldFocus: lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true),

		toast: lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#f9e2af")).Padding(0, 1),

		colors: map[string]lipgloss.Style{
			store.ColorBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")),
			store.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")),
			store.ColorPurple: lipgloss.NewStyle().Foreground(lipgloss.Color("#cba6f7")),
			store.ColorYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af")),
			store.ColorOrange: lipgloss.NewStyle().Foreground(lipgloss.Color("#fab387")),
			store.ColorRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")),
		},
	}
}

func (s style) colorStyle(color string) lipgloss.Style {
	if st, ok := s.colors[color]; ok {
		return st
	}
	return s.colors[store.ColorBlue]
}
