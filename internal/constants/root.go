package constants

import tea "github.com/charmbracelet/bubbletea"

// SessionState represents the current state of the TUI application
type SessionState int

// ConfirmationMsg is a message to trigger a confirmation dialog
type ConfirmationMsg struct {
	Message string
	Action  func() tea.Cmd
}

const (
	AppName            = "cronograma"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/cronograma/cronograma.db"
	Version            = "v0.3.0"

	// EnvPrefix is prepended to environment variables read by the CLI
	EnvPrefix = "CRONOGRAMA_"

	// DefaultYearSpan is how many years past the current one get national holidays
	DefaultYearSpan = 5
	// MinYearSpan is the smallest span accepted from configuration
	MinYearSpan = 4

	// Session hour limits for the edit form
	MinSessionHours = 1
	MaxSessionHours = 8
)

// Session States
const (
	StateCalendar SessionState = iota
	StateHolidays
	StateScheduling
	StateEditSession
	StateAddHoliday
	StateConfirmDelete
	StateError
)
