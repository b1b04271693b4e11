package viz

import "github.com/charmbracelet/lipgloss"

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	lineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	dragOn  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	dragOff = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	errText = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444"))
)

// canvasOrigin is the terminal cell of the canvas's top-left braille cell,
// given canvasStyle's padding.
const (
	canvasOriginX = 2
	canvasOriginY = 1
)
