package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"fileseek/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	// Search form, pre-rendered by the model's text inputs
	QueryView     string
	PathView      string
	ExtView       string
	PresetName    string
	CaseSensitive bool
	WholeMachine  bool

	// Results window, already clipped by the navigator
	Results       []domain.MatchResult
	SelectedIndex int
	VisibleStart  int
	VisibleEnd    int
	ShowTop       bool
	ShowBottom    bool

	// Search progress
	Searching  bool
	Cancelling bool
	MatchCount int
	Truncated  bool
	Elapsed    time.Duration

	StatusMessage string
	StatusIsError bool

	ShowDetail   bool
	DetailResult domain.MatchResult
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	resultRender *ResultRenderer
	popupRender  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		resultRender: NewResultRenderer(styles),
		popupRender:  NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n")

	content.WriteString(r.renderForm(state))
	content.WriteString("\n")

	content.WriteString(r.renderResultList(state))

	statusLine := r.renderStatus(state)
	if statusLine != "" {
		content.WriteString("\n")
		content.WriteString(statusLine)
	}

	// Pin the help hint to the bottom of the screen
	helpText := r.styles.Help.Render("Press ? for help")
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	if padding := availableLines - currentLines - 1; padding > 0 {
		content.WriteString(strings.Repeat("\n", padding))
	}
	content.WriteString("\n")
	content.WriteString(helpText)

	mainStyle := r.styles.Main.MaxHeight(state.Height)
	finalContent := mainStyle.Render(content.String())

	if state.ShowDetail {
		detail := r.popupRender.RenderResultDetail(state.DetailResult)
		return r.popupRender.RenderPopupOverlay(finalContent, detail, state.Height, state.Width, r.styles.InfoBox)
	}

	return finalContent
}

// renderTitleLine builds the logo line with right-aligned progress and
// mode indicators.
func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("fileseek")

	indicators := []string{}
	if state.Cancelling {
		indicators = append(indicators, fmt.Sprintf("%s Cancelling", spinnerFrame()))
	} else if state.Searching {
		indicators = append(indicators, fmt.Sprintf("%s Searching", spinnerFrame()))
	}
	if state.CaseSensitive {
		indicators = append(indicators, r.styles.ToggleOn.Render("[Aa]"))
	}
	if state.WholeMachine {
		indicators = append(indicators, r.styles.ToggleOn.Render("[whole machine]"))
	}
	if state.PresetName != "" {
		indicators = append(indicators, r.styles.Toggle.Render("[Preset: "+state.PresetName+"]"))
	}

	if len(indicators) == 0 {
		return logo
	}

	rightContent := r.styles.Dim.Render(strings.Join(indicators, " | "))
	logoWidth := lipgloss.Width(logo)
	rightWidth := lipgloss.Width(rightContent)

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	availableWidth := termWidth - 4 // main container padding
	paddingWidth := availableWidth - logoWidth - rightWidth

	if paddingWidth > 0 {
		return fmt.Sprintf("%s%s%s", logo, strings.Repeat(" ", paddingWidth), rightContent)
	}
	return fmt.Sprintf("%s  %s", logo, rightContent)
}

// renderForm draws the query, path and extension inputs.
func (r *Renderer) renderForm(state ViewState) string {
	var b strings.Builder

	b.WriteString(r.styles.Label.Render("Query "))
	b.WriteString(state.QueryView)
	b.WriteString("\n")

	b.WriteString(r.styles.Label.Render("Path  "))
	if state.WholeMachine {
		b.WriteString(r.styles.Dim.Render("(searching all mounted volumes)"))
	} else {
		b.WriteString(state.PathView)
	}
	b.WriteString("\n")

	b.WriteString(r.styles.Label.Render("Types "))
	b.WriteString(state.ExtView)
	b.WriteString("\n")

	return b.String()
}

// renderResultList renders the visible slice of matches with scroll
// indicators.
func (r *Renderer) renderResultList(state ViewState) string {
	if len(state.Results) == 0 {
		if state.Searching {
			return r.styles.Dim.Render("Searching...")
		}
		return r.styles.Dim.Render("No results. Enter a query and press enter.")
	}

	var lines []string

	if state.ShowTop {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", state.VisibleStart)))
	}

	end := state.VisibleEnd
	if end > len(state.Results) {
		end = len(state.Results)
	}
	for i := state.VisibleStart; i < end; i++ {
		line := r.resultRender.RenderResult(state.Results[i], i == state.SelectedIndex, state.Width-4)
		lines = append(lines, line)
	}

	if state.ShowBottom {
		below := len(state.Results) - end
		if below < 0 {
			below = 0
		}
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}

	return strings.Join(lines, "\n")
}

// renderStatus mirrors the worker lifecycle in one line.
func (r *Renderer) renderStatus(state ViewState) string {
	if state.StatusMessage != "" {
		if state.StatusIsError {
			return r.styles.StatusError.Render(state.StatusMessage)
		}
		return r.styles.Status.Render(state.StatusMessage)
	}

	switch {
	case state.Cancelling:
		return r.styles.Status.Render("Cancelling...")
	case state.Searching:
		return r.styles.Status.Render(fmt.Sprintf("Searching... Found: %d", state.MatchCount))
	case state.Elapsed > 0:
		msg := fmt.Sprintf("Search finished: %d result(s) in %s", state.MatchCount, formatElapsed(state.Elapsed))
		if state.Truncated {
			msg += fmt.Sprintf(" (showing first %d)", len(state.Results))
		}
		return r.styles.StatusSuccess.Render(msg)
	default:
		return ""
	}
}

// spinnerFrame returns the current frame of the braille spinner.
func spinnerFrame() string {
	spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	frame := int(time.Now().UnixMilli()/80) % len(spinner)
	return spinner[frame]
}

// formatElapsed renders a duration the way the status line shows it,
// with a single decimal.
func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
