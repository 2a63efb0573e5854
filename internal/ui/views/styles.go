package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Label         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Toggle        lipgloss.Style
	ToggleOn      lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	SelectionBg   lipgloss.Style
	InfoBox       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Dim:   lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Toggle:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ToggleOn:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:          lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
	}
}

// GetExtensionColor returns the display color for a file extension
func GetExtensionColor(ext string) string {
	switch ext {
	case "jpg", "jpeg", "png", "gif", "bmp", "webp":
		return "78" // green for images
	case "pdf", "doc", "docx", "txt", "md", "rtf":
		return "33" // blue for documents
	case "py", "js", "ts", "java", "c", "cpp", "h", "hpp", "go", "rs":
		return "214" // yellow for code
	default:
		return "252"
	}
}
