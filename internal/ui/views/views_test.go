package views

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fileseek/internal/domain"
)

func TestSplitSpan(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		start  int
		length int
		before string
		match  string
		after  string
		ok     bool
	}{
		{"start of name", "report.txt", 0, 6, "", "report", ".txt", true},
		{"mid name", "annual-report.txt", 7, 6, "annual-", "report", ".txt", true},
		{"whole name", "report", 0, 6, "", "report", "", true},
		{"end of name", "myreport", 2, 6, "my", "report", "", true},
		{"zero length", "report.txt", 3, 0, "rep", "", "ort.txt", true},
		{"negative start", "report.txt", -1, 3, "", "", "", false},
		{"span past end", "report.txt", 8, 5, "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, match, after, ok := splitSpan(tt.text, tt.start, tt.length)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.before, before)
			assert.Equal(t, tt.match, match)
			assert.Equal(t, tt.after, after)
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "0.3s", formatElapsed(320*time.Millisecond))
	assert.Equal(t, "2.0s", formatElapsed(2*time.Second))
	assert.Equal(t, "61.5s", formatElapsed(61500*time.Millisecond))
}

func TestRenderStatusLifecycle(t *testing.T) {
	r := NewRenderer()

	idle := r.renderStatus(ViewState{})
	assert.Empty(t, idle)

	searching := r.renderStatus(ViewState{Searching: true, MatchCount: 12})
	assert.Contains(t, searching, "Searching")
	assert.Contains(t, searching, "12")

	cancelling := r.renderStatus(ViewState{Searching: true, Cancelling: true})
	assert.Contains(t, cancelling, "Cancelling")

	done := r.renderStatus(ViewState{MatchCount: 3, Elapsed: 1230 * time.Millisecond})
	assert.Contains(t, done, "Search finished: 3 result(s) in 1.2s")

	failed := r.renderStatus(ViewState{StatusMessage: "root does not exist", StatusIsError: true})
	assert.Contains(t, failed, "root does not exist")
}

func TestRenderResultListEmpty(t *testing.T) {
	r := NewRenderer()

	out := r.renderResultList(ViewState{})
	assert.Contains(t, out, "No results")

	out = r.renderResultList(ViewState{Searching: true})
	assert.Contains(t, out, "Searching")
}

func TestRenderResultListIndicators(t *testing.T) {
	r := NewRenderer()

	results := make([]domain.MatchResult, 10)
	for i := range results {
		results[i] = domain.MatchResult{
			FullPath:    "/tmp/report.txt",
			FileName:    "report.txt",
			MatchStart:  0,
			MatchLength: 6,
		}
	}

	out := r.renderResultList(ViewState{
		Results:       results,
		SelectedIndex: 5,
		VisibleStart:  3,
		VisibleEnd:    7,
		ShowTop:       true,
		ShowBottom:    true,
		Width:         80,
	})

	assert.Contains(t, out, "3 more above")
	assert.Contains(t, out, "3 more below")
	assert.Equal(t, 6, len(strings.Split(out, "\n")), "4 rows plus 2 indicators")
}

func TestRenderResultHighlightsSpan(t *testing.T) {
	r := NewResultRenderer(NewStyles())

	match := domain.MatchResult{
		FullPath:    "/home/user/docs/annual-report.txt",
		FileName:    "annual-report.txt",
		MatchStart:  7,
		MatchLength: 6,
	}

	out := r.RenderResult(match, false, 0)
	assert.Contains(t, out, "annual-")
	assert.Contains(t, out, "report")
	assert.Contains(t, out, "/home/user/docs")
}

func TestRenderPopupOverlayCentersContent(t *testing.T) {
	pr := NewPopupRenderer(NewStyles())

	base := strings.TrimRight(strings.Repeat(strings.Repeat("x", 40)+"\n", 12), "\n")
	out := pr.RenderPopupOverlay(base, "hello popup", 12, 40, NewStyles().InfoBox)

	assert.Contains(t, out, "hello popup")
	lines := strings.Split(out, "\n")
	assert.GreaterOrEqual(t, len(lines), 12)
}
