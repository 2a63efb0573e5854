package views

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"fileseek/internal/domain"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay draws a popup centered on top of the main content.
// The content behind it is desaturated so the popup stands out, except
// for the line naming the popup's subject, which keeps its colors.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	popupLines := strings.Split(styledPopup, "\n")
	popupWidth := lipgloss.Width(styledPopup)
	popupHeight := len(popupLines)

	x := (width - popupWidth) / 2
	y := (height - popupHeight) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	subject := extractTitlePlain(popupContent)
	base := desaturateKeeping(mainContent, subject)
	baseLines := strings.Split(base, "\n")
	for len(baseLines) < y+popupHeight {
		baseLines = append(baseLines, "")
	}

	// Splice each popup line into the base row, keeping whatever sticks
	// out on either side.
	for i, popupLine := range popupLines {
		row := y + i
		line := baseLines[row]

		left := ansi.Truncate(line, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(line, x+ansi.StringWidth(popupLine), "")

		baseLines[row] = left + popupLine + right
	}

	return strings.Join(baseLines, "\n")
}

// RenderResultDetail builds the detail popup body for a match.
func (pr *PopupRenderer) RenderResultDetail(match domain.MatchResult) string {
	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	labelStyle := pr.styles.Label

	var b strings.Builder
	b.WriteString(nameStyle.Render(match.FileName))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Path:"), match.FullPath))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Folder:"), filepath.Dir(match.FullPath)))
	b.WriteString("\n")
	b.WriteString(pr.styles.Help.Render("y copy path • o open folder • esc close"))
	return b.String()
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	plain := ansiRE.ReplaceAllString(s, "")
	return lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(plain)
}

// extractTitlePlain returns the first line of popup content without ANSI
func extractTitlePlain(popup string) string {
	for i := 0; i < len(popup); i++ {
		if popup[i] == '\n' {
			return ansiRE.ReplaceAllString(popup[:i], "")
		}
	}
	return ansiRE.ReplaceAllString(popup, "")
}

// desaturateKeeping turns everything greyscale except lines containing keepSubstr (plain text match)
func desaturateKeeping(s, keepSubstr string) string {
	if keepSubstr == "" {
		return desaturateANSI(s)
	}
	lines := strings.Split(s, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		plain := ansiRE.ReplaceAllString(line, "")
		if strings.Contains(plain, keepSubstr) {
			// keep original colored line
			out[i] = line
		} else {
			out[i] = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(plain)
		}
	}
	return strings.Join(out, "\n")
}
