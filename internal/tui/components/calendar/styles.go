package calendar

import "github.com/charmbracelet/lipgloss"

const cellWidth = 6

var (
	holidayColor  = lipgloss.Color("196")
	weekendColor  = lipgloss.Color("240")
	selectedColor = lipgloss.Color("57")
	multiColor    = lipgloss.Color("24")

	cellStyle   = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	headerStyle = cellStyle.Foreground(lipgloss.Color("245")).Bold(true)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	holidayStyle  = lipgloss.NewStyle().Foreground(holidayColor)
	mutedStyle    = lipgloss.NewStyle().Foreground(weekendColor).Italic(true)
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Background(selectedColor)
	multiStyle    = lipgloss.NewStyle().Background(multiColor)
)
