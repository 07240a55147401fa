package fancy

import (
	"github.com/charmbracelet/lipgloss"
)

// Common styles that can be used across the application
var (
	RootStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray)

	DomainStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	ToolStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	ReadOnlyStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// DomainText styles a domain name
func DomainText(text string) string {
	return DomainStyle.Render(text)
}

// ToolText styles a tool name
func ToolText(text string) string {
	return ToolStyle.Render(text)
}

// ReadOnlyBadge renders the marker appended to read-only tools
func ReadOnlyBadge() string {
	return ReadOnlyStyle.Render("[ro]")
}

// DescriptionText styles a tool description
func DescriptionText(text string) string {
	return InfoStyle.Render(text)
}

// ValidText styles valid status text (green)
func ValidText(text string) string {
	return ReadOnlyStyle.Render(text)
}

// ErrorText styles error text (red)
func ErrorText(text string) string {
	return ErrorStyle.Render(text)
}

// CountText styles count numbers (cyan)
func CountText(text string) string {
	return ToolStyle.Render(text)
}

// TruncateString truncates a string if it exceeds maxLength
func TruncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength-3] + "..."
}
