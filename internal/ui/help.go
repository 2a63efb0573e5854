package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContentPlain generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	// Title
	help.WriteString(titleStyle.Render("fileseek Help"))
	help.WriteString("\n")

	// Search form section
	help.WriteString(sectionStyle.Render("Search Form"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("Tab/Shift+Tab"), descStyle.Render("Move between fields")))
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("Enter"), descStyle.Render("Start the search")))
	help.WriteString(fmt.Sprintf("  %s              %s\n", keyStyle.Render("Esc"), descStyle.Render("Cancel a running search")))
	help.WriteString(fmt.Sprintf("  %s              %s\n", keyStyle.Render("↑/↓"), descStyle.Render("Recall recent queries (in the query field)")))
	help.WriteString("\n")

	// Results section
	help.WriteString(sectionStyle.Render("Results"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("↑/↓, j/k"), descStyle.Render("Move the selection")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("PgUp/PgDn"), descStyle.Render("Page up/down")))
	help.WriteString(fmt.Sprintf("  %s              %s\n", keyStyle.Render("g/G"), descStyle.Render("Go to top/bottom")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("Enter/i"), descStyle.Render("Show result details")))
	help.WriteString(fmt.Sprintf("  %s                %s\n", keyStyle.Render("y"), descStyle.Render("Copy the full path")))
	help.WriteString(fmt.Sprintf("  %s                %s\n", keyStyle.Render("o"), descStyle.Render("Open the containing folder")))
	help.WriteString("\n")

	// Search options section
	help.WriteString(sectionStyle.Render("Search Options"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s                %s\n", keyStyle.Render("c"), descStyle.Render("Toggle case sensitive matching")))
	help.WriteString(fmt.Sprintf("  %s                %s\n", keyStyle.Render("m"), descStyle.Render("Toggle whole machine search")))
	help.WriteString(fmt.Sprintf("  %s                %s\n", keyStyle.Render("p"), descStyle.Render("Cycle extension preset")))
	help.WriteString(fmt.Sprintf("  %s                %s\n", keyStyle.Render("/"), descStyle.Render("Jump to the query field")))
	help.WriteString("\n")

	// Preset examples
	presetStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	help.WriteString(presetStyle.Render("  Presets: All, Images, Documents, Code. Types accepts a comma list, e.g. jpg, png"))
	help.WriteString("\n")

	// Other section
	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s                %s\n", keyStyle.Render("?"), descStyle.Render("Show this help")))
	help.WriteString(fmt.Sprintf("  %s                %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	// Create a reader from the help content string
	reader := strings.NewReader(helpContent)

	// Create oviewer root from the reader
	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
