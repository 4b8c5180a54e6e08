// tui/styles.go
package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("69")
	subtle = lipgloss.Color("241")
	dimmed = lipgloss.Color("238")

	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(accent).Padding(0, 1)
	CountStyle  = lipgloss.NewStyle().Foreground(subtle)
	StatusStyle = lipgloss.NewStyle().Foreground(subtle).Italic(true)

	ButtonStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("237")).Padding(0, 1)
	ButtonActiveStyle = ButtonStyle.Foreground(lipgloss.Color("231")).Background(accent)

	FocusedStyle = lipgloss.NewStyle().Foreground(accent)
	BlurredStyle = lipgloss.NewStyle().Foreground(subtle)

	HeaderStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	SeparatorStyle = lipgloss.NewStyle().Foreground(dimmed)
	CellStyle      = lipgloss.NewStyle()
	EmptyStyle     = lipgloss.NewStyle().Foreground(subtle).Italic(true)
	CursorStyle    = lipgloss.NewStyle().Foreground(accent).Bold(true)
	DeleteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("#DC143C"))

	EvenRowStyle = lipgloss.NewStyle().Background(lipgloss.Color("#2E3440"))
	OddRowStyle  = lipgloss.NewStyle().Background(lipgloss.Color("#434C5E"))
)
