package views

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"fileseek/internal/domain"
)

// ResultRenderer handles rendering of match rows
type ResultRenderer struct {
	styles *Styles
}

// NewResultRenderer creates a new result renderer
func NewResultRenderer(styles *Styles) *ResultRenderer {
	return &ResultRenderer{styles: styles}
}

// RenderResult renders a single match line. The matched part of the file
// name is emphasized using the byte span carried by the result.
func (r *ResultRenderer) RenderResult(match domain.MatchResult, isSelected bool, width int) string {
	bgColor := ""
	if isSelected {
		bgColor = "238"
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(match.FileName)), ".")
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(GetExtensionColor(ext)))
	highlightStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	dirStyle := r.styles.Dim
	if isSelected {
		nameStyle = nameStyle.Background(lipgloss.Color(bgColor))
		highlightStyle = highlightStyle.Background(lipgloss.Color(bgColor))
		dirStyle = dirStyle.Background(lipgloss.Color(bgColor))
	}

	var parts []string
	parts = append(parts, "  ")
	parts = append(parts, r.renderName(match, highlightStyle, nameStyle))
	parts = append(parts, dirStyle.Render("  "+filepath.Dir(match.FullPath)))

	line := strings.Join(parts, "")
	if width > 0 {
		line = ansi.Truncate(line, width, "…")
	}
	return line
}

// renderName highlights the matched span within the file name
func (r *ResultRenderer) renderName(match domain.MatchResult, highlightStyle, normalStyle lipgloss.Style) string {
	before, matched, after, ok := splitSpan(match.FileName, match.MatchStart, match.MatchLength)
	if !ok {
		return normalStyle.Render(match.FileName)
	}

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(matched))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}

// splitSpan cuts text into the parts before, inside and after the byte
// span. ok is false when the span does not fit the text.
func splitSpan(text string, start, length int) (before, match, after string, ok bool) {
	if start < 0 || length < 0 || start+length > len(text) {
		return "", "", "", false
	}
	return text[:start], text[start : start+length], text[start+length:], true
}
