package tui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the TUI.
var (
	ColorRed     = lipgloss.Color("#FF5F5F")
	ColorGreen   = lipgloss.Color("#5FD75F")
	ColorYellow  = lipgloss.Color("#FFD75F")
	ColorCyan    = lipgloss.Color("#5FD7FF")
	ColorGray    = lipgloss.Color("#808080")
	ColorDimGray = lipgloss.Color("#4E4E4E")
	ColorWhite   = lipgloss.Color("#FFFFFF")
	ColorMagenta = lipgloss.Color("#D787FF")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	SubtitleStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(ColorGray)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorWhite)

	ActiveLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorCyan)

	YearStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorYellow)

	KeyLoadedStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	KeyMissingStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	BusyStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite)

	SummaryStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	UserStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorYellow)

	AssistantStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGreen)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorDimGray)

	FooterKeyStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)
