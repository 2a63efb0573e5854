package ui

import (
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"fileseek/internal/config"
	"fileseek/internal/domain"
	"fileseek/internal/eventbus"
	"fileseek/internal/search"
	"fileseek/internal/ui/logic"
	"fileseek/internal/ui/state"
	"fileseek/internal/ui/views"
	"fileseek/internal/volumes"
)

// focusField identifies which part of the screen receives key input.
type focusField int

const (
	focusQuery focusField = iota
	focusPath
	focusExtensions
	focusResults
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width  int
	height int
	keys   KeyMap

	// Search form
	queryInput    textinput.Model
	pathInput     textinput.Model
	extInput      textinput.Model
	focus         focusField
	preset        search.Preset
	caseSensitive bool
	wholeMachine  bool

	// Session query history
	history      *logic.History
	historyIndex int // -1 means the live draft
	historyDraft string

	// Handlers
	navigator  *logic.Navigator
	renderer   *views.Renderer
	helpRender *HelpRenderer
	helpOps    *HelpOps

	// Program reference for terminal management
	program     *tea.Program
	inPagerMode bool // tracks if we're currently in pager mode
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	queryInput := textinput.New()
	queryInput.Placeholder = "file name contains..."
	queryInput.Prompt = "> "
	queryInput.Focus()

	pathInput := textinput.New()
	pathInput.Placeholder = cfg.DefaultRoot
	pathInput.Prompt = "> "
	pathInput.SetValue(cfg.DefaultRoot)

	extInput := textinput.New()
	extInput.Placeholder = "jpg, png, ... (empty for all)"
	extInput.Prompt = "> "

	preset := search.PresetByName(cfg.DefaultPreset)
	extInput.SetValue(search.PresetText(preset))

	m := &Model{
		bus:           bus,
		config:        cfg,
		state:         state.NewAppState(cfg.MaxResults),
		keys:          DefaultKeyMap(),
		queryInput:    queryInput,
		pathInput:     pathInput,
		extInput:      extInput,
		focus:         focusQuery,
		preset:        preset,
		caseSensitive: cfg.CaseSensitive,
		history:       logic.NewHistory(logic.DefaultHistorySize),
		historyIndex:  -1,
		navigator:     logic.NewNavigator(),
		renderer:      views.NewRenderer(),
		helpRender:    NewHelpRenderer(),
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// PersistPreferences writes the toggles the user changed during the session
// back into cfg so they survive restarts. The search root is left alone, it
// may have been overridden by a flag for this run.
func (m *Model) PersistPreferences(cfg *config.Config) {
	cfg.CaseSensitive = m.caseSensitive
	cfg.DefaultPreset = string(m.preset)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inputWidth := msg.Width - 12
		if inputWidth < 20 {
			inputWidth = 20
		}
		m.queryInput.Width = inputWidth
		m.pathInput.Width = inputWidth
		m.extInput.Width = inputWidth
		m.navigator.SetViewportHeight(m.resultsHeight())
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		return m.handleKey(msg)

	case EventMsg:
		return m.handleEvent(msg.Event)

	case tickMsg:
		return m, tickCmd()

	case searchSetupErrMsg:
		m.state.SetStatus(msg.err.Error(), true)
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.state.SetStatus(fmt.Sprintf("Copy failed: %v", msg.err), true)
		} else {
			m.state.SetStatus(fmt.Sprintf("Copied: %s", msg.path), false)
		}
		return m, nil

	case openFolderMsg:
		if msg.err != nil {
			m.state.SetStatus(fmt.Sprintf("Could not open folder: %v", msg.err), true)
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.state.SetStatus(fmt.Sprintf("Help pager failed: %v", msg.err), true)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	start, end, showTop, showBottom := m.navigator.VisibleRange()

	vs := views.ViewState{
		Width:  m.width,
		Height: m.height,

		QueryView:     m.queryInput.View(),
		PathView:      m.pathInput.View(),
		ExtView:       m.extInput.View(),
		PresetName:    m.presetLabel(),
		CaseSensitive: m.caseSensitive,
		WholeMachine:  m.wholeMachine,

		Results:       m.state.Results,
		SelectedIndex: m.navigator.Selected(),
		VisibleStart:  start,
		VisibleEnd:    end,
		ShowTop:       showTop,
		ShowBottom:    showBottom,

		Searching:  m.state.Searching,
		Cancelling: m.state.Cancelling,
		MatchCount: m.state.MatchCount,
		Truncated:  m.state.Truncated,
		Elapsed:    m.state.Elapsed,

		StatusMessage: m.state.StatusMessage,
		StatusIsError: m.state.StatusIsError,

		ShowDetail: m.state.ShowDetail,
	}

	if m.state.ShowDetail {
		if result, ok := m.state.ResultAt(m.navigator.Selected()); ok {
			vs.DetailResult = result
		}
	}

	return m.renderer.Render(vs)
}

// handleKey routes key presses by focus and popup state.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// The detail popup swallows everything except its own keys
	if m.state.ShowDetail {
		return m.handleDetailKey(msg)
	}

	if m.focus == focusResults {
		return m.handleResultsKey(msg)
	}
	return m.handleFormKey(msg)
}

// handleDetailKey handles keys while the detail popup is open.
func (m *Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Detail), key.Matches(msg, m.keys.Quit):
		m.state.ShowDetail = false
		return m, nil
	case key.Matches(msg, m.keys.CopyPath):
		if result, ok := m.state.ResultAt(m.navigator.Selected()); ok {
			return m, copyPathCmd(result.FullPath)
		}
	case key.Matches(msg, m.keys.OpenFolder):
		if result, ok := m.state.ResultAt(m.navigator.Selected()); ok {
			return m, openFolderCmd(result.FullPath)
		}
	}
	return m, nil
}

// handleFormKey handles keys while one of the text inputs is focused.
func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextField):
		m.cycleFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.cycleFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m, m.startSearchCmd()

	case key.Matches(msg, m.keys.Cancel):
		if m.state.Searching {
			m.state.RequestCancel()
			return m, m.cancelSearchCmd()
		}
		m.setFocus(focusResults)
		return m, nil

	case key.Matches(msg, m.keys.HistoryPrev):
		if m.focus == focusQuery {
			m.recallOlderQuery()
			return m, nil
		}

	case key.Matches(msg, m.keys.HistoryNext):
		if m.focus == focusQuery {
			m.recallNewerQuery()
			return m, nil
		}
	}

	// Anything else edits the focused input and leaves history recall
	if m.focus == focusQuery {
		m.historyIndex = -1
	}
	return m, m.updateFocusedInput(msg)
}

// handleResultsKey handles keys while the results list is focused.
func (m *Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.navigator.MoveUp()

	case key.Matches(msg, m.keys.Down):
		m.navigator.MoveDown()

	case key.Matches(msg, m.keys.PageUp):
		m.navigator.PageUp()

	case key.Matches(msg, m.keys.PageDown):
		m.navigator.PageDown()

	case key.Matches(msg, m.keys.Top):
		m.navigator.JumpTop()

	case key.Matches(msg, m.keys.Bottom):
		m.navigator.JumpBottom()

	case key.Matches(msg, m.keys.Detail), key.Matches(msg, m.keys.Submit):
		if _, ok := m.state.ResultAt(m.navigator.Selected()); ok {
			m.state.ShowDetail = true
		}

	case key.Matches(msg, m.keys.CopyPath):
		if result, ok := m.state.ResultAt(m.navigator.Selected()); ok {
			return m, copyPathCmd(result.FullPath)
		}

	case key.Matches(msg, m.keys.OpenFolder):
		if result, ok := m.state.ResultAt(m.navigator.Selected()); ok {
			return m, openFolderCmd(result.FullPath)
		}

	case key.Matches(msg, m.keys.ToggleCase):
		m.caseSensitive = !m.caseSensitive

	case key.Matches(msg, m.keys.ToggleMachine):
		m.wholeMachine = !m.wholeMachine

	case key.Matches(msg, m.keys.CyclePreset):
		m.cyclePreset()

	case key.Matches(msg, m.keys.FocusQuery):
		m.setFocus(focusQuery)

	case key.Matches(msg, m.keys.NextField):
		m.cycleFocus(1)

	case key.Matches(msg, m.keys.PrevField):
		m.cycleFocus(-1)

	case key.Matches(msg, m.keys.Cancel):
		if m.state.Searching {
			m.state.RequestCancel()
			return m, m.cancelSearchCmd()
		}
		m.state.ClearStatus()

	case key.Matches(msg, m.keys.Help):
		return m, m.helpPagerCmd()
	}

	return m, nil
}

// handleEvent processes domain events forwarded from the bus.
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch event := event.(type) {
	case eventbus.SearchStartedEvent:
		m.state.BeginSearch(event.SearchID, event.Roots, event.Query)
		m.state.ClearStatus()
		m.navigator.SetTotal(0)
		m.history.Add(event.Query)
		m.historyIndex = -1

	case eventbus.MatchFoundEvent:
		if m.state.AddResult(event.SearchID, event.Match) {
			m.navigator.SetTotal(len(m.state.Results))
		}

	case eventbus.SearchCompletedEvent:
		if m.state.CompleteSearch(event.SearchID, event.MatchCount, event.Elapsed, event.Cancelled) {
			if event.Cancelled {
				m.state.SetStatus(fmt.Sprintf("Search cancelled: %d result(s)", event.MatchCount), false)
			}
		}

	case eventbus.ErrorEvent:
		text := event.Message
		if event.Err != nil {
			text = event.Err.Error()
		}
		m.state.SetStatus(text, true)

	case eventbus.ConfigLoadedEvent:
		if m.pathInput.Value() == "" {
			m.pathInput.SetValue(event.DefaultRoot)
		}
	}

	return m, nil
}

// cycleFocus moves focus through query, path, extensions and results.
// The path field is skipped while whole machine mode is on.
func (m *Model) cycleFocus(direction int) {
	order := []focusField{focusQuery, focusPath, focusExtensions, focusResults}

	current := 0
	for i, f := range order {
		if f == m.focus {
			current = i
			break
		}
	}

	next := m.focus
	for i := 0; i < len(order); i++ {
		current = (current + direction + len(order)) % len(order)
		next = order[current]
		if next == focusPath && m.wholeMachine {
			continue
		}
		break
	}
	m.setFocus(next)
}

// setFocus focuses one element and blurs the rest.
func (m *Model) setFocus(target focusField) {
	m.focus = target
	m.queryInput.Blur()
	m.pathInput.Blur()
	m.extInput.Blur()

	switch target {
	case focusQuery:
		m.queryInput.Focus()
	case focusPath:
		m.pathInput.Focus()
	case focusExtensions:
		m.extInput.Focus()
	}
}

// updateFocusedInput forwards a message to whichever input has focus.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusQuery:
		m.queryInput, cmd = m.queryInput.Update(msg)
	case focusPath:
		m.pathInput, cmd = m.pathInput.Update(msg)
	case focusExtensions:
		m.extInput, cmd = m.extInput.Update(msg)
	}
	return cmd
}

// cyclePreset advances to the next extension preset and writes its
// extension list into the types field, the same as picking it from a
// dropdown would.
func (m *Model) cyclePreset() {
	for i, p := range search.Presets {
		if p == m.preset {
			m.preset = search.Presets[(i+1)%len(search.Presets)]
			m.extInput.SetValue(search.PresetText(m.preset))
			return
		}
	}
	m.preset = search.PresetAll
	m.extInput.SetValue("")
}

// presetLabel names the active preset, or Custom when the types field
// was edited away from it.
func (m *Model) presetLabel() string {
	if strings.TrimSpace(m.extInput.Value()) == search.PresetText(m.preset) {
		return string(m.preset)
	}
	return "Custom"
}

// recallOlderQuery steps back through the session history.
func (m *Model) recallOlderQuery() {
	entries := m.history.Entries()
	if len(entries) == 0 {
		return
	}
	if m.historyIndex == -1 {
		m.historyDraft = m.queryInput.Value()
	}
	if m.historyIndex < len(entries)-1 {
		m.historyIndex++
	}
	m.queryInput.SetValue(entries[m.historyIndex])
	m.queryInput.CursorEnd()
}

// recallNewerQuery steps forward through the session history back to the
// live draft.
func (m *Model) recallNewerQuery() {
	if m.historyIndex < 0 {
		return
	}
	m.historyIndex--
	if m.historyIndex == -1 {
		m.queryInput.SetValue(m.historyDraft)
	} else {
		entries := m.history.Entries()
		if m.historyIndex < len(entries) {
			m.queryInput.SetValue(entries[m.historyIndex])
		}
	}
	m.queryInput.CursorEnd()
}

// resultsHeight computes how many rows the results list may use.
func (m *Model) resultsHeight() int {
	// Title, form, status and footer take a fixed number of rows.
	height := m.height - 12
	if height < 3 {
		height = 3
	}
	return height
}

// startSearchCmd assembles a search request from the form and publishes
// it. Volume enumeration and validation happen off the UI goroutine; the
// search service reports validation failures as error events.
func (m *Model) startSearchCmd() tea.Cmd {
	bus := m.bus
	query := m.queryInput.Value()
	pathText := strings.TrimSpace(m.pathInput.Value())
	extText := m.extInput.Value()
	caseSensitive := m.caseSensitive
	wholeMachine := m.wholeMachine
	defaultRoot := m.config.DefaultRoot

	return func() tea.Msg {
		exts, err := search.ParseExtensions(extText)
		if err != nil {
			return searchSetupErrMsg{err: err}
		}

		var roots []string
		if wholeMachine {
			// Enumerate volumes per search so newly mounted drives
			// are picked up.
			roots, err = volumes.List()
			if err != nil {
				return searchSetupErrMsg{err: err}
			}
		} else {
			root := pathText
			if root == "" {
				root = defaultRoot
			}
			roots = []string{root}
		}

		slog.Info("requesting search", "query", query, "roots", len(roots), "case_sensitive", caseSensitive)
		bus.Publish(eventbus.SearchRequestedEvent{Request: domain.SearchRequest{
			Roots:             roots,
			Query:             query,
			CaseSensitive:     caseSensitive,
			AllowedExtensions: exts,
		}})
		return nil
	}
}

// cancelSearchCmd asks the search service to stop the active search.
func (m *Model) cancelSearchCmd() tea.Cmd {
	bus := m.bus
	return func() tea.Msg {
		bus.Publish(eventbus.SearchCancelRequestedEvent{})
		return nil
	}
}

// helpPagerCmd shows the help screen in the ov pager.
func (m *Model) helpPagerCmd() tea.Cmd {
	if m.program == nil || m.helpOps == nil {
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(m.helpRender.RenderHelpContentPlain())

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// copyPathCmd copies a result path to the system clipboard.
func copyPathCmd(path string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{path: path, err: clipboard.WriteAll(path)}
	}
}

// openFolderCmd reveals the folder containing a result in the platform
// file manager.
func openFolderCmd(path string) tea.Cmd {
	dir := filepath.Dir(path)
	return func() tea.Msg {
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", dir)
		case "windows":
			cmd = exec.Command("explorer", dir)
		default:
			cmd = exec.Command("xdg-open", dir)
		}
		if err := cmd.Start(); err != nil {
			return openFolderMsg{path: dir, err: err}
		}
		go func() {
			if err := cmd.Wait(); err != nil {
				slog.Debug("file manager exited with error", "dir", dir, "error", err)
			}
		}()
		return openFolderMsg{path: dir}
	}
}

// tickCmd drives the spinner animation.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
