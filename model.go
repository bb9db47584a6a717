package main

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// copiedDuration is how long a column header shows the copy confirmation
const copiedDuration = 2 * time.Second

// Focus represents which panel receives key presses
type Focus int

const (
	FocusOriginal Focus = iota
	FocusChanged
	FocusDiff
	focusCount
)

// String returns the string representation of the focus
func (f Focus) String() string {
	switch f {
	case FocusOriginal:
		return "original"
	case FocusChanged:
		return "changed"
	default:
		return "diff"
	}
}

// Model holds the application state
type Model struct {
	inputs   [2]textarea.Model
	labels   [2]string
	sources  [2]string // loaded text, compared until the input is edited
	edited   [2]bool
	focus    Focus
	viewport viewport.Model
	keys     keyMap

	provider     Provider
	providerName string
	clipboard    Clipboard
	styles       Styles
	highlighter  *SyntaxHighlighter
	logger       *Logger
	watcher      *Watcher
	reload       func(ctx context.Context) (Inputs, error)

	comparison Comparison
	showDiff   bool // false after an edit until the next compare
	copied     Side
	copySeq    int
	showHelp   bool

	width    int
	height   int
	status   string
	err      error
	quitting bool
}

// Option configures a Model
type Option func(*Model)

// WithProvider sets the diff provider. A nil provider yields empty comparisons.
func WithProvider(p Provider, name string) Option {
	return func(m *Model) {
		m.provider = p
		m.providerName = name
	}
}

// WithClipboard sets the clipboard used by the copy actions
func WithClipboard(c Clipboard) Option {
	return func(m *Model) {
		m.clipboard = c
	}
}

// WithLogger sets the logger
func WithLogger(l *Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// WithHighlighter sets the syntax highlighter for unchanged rows
func WithHighlighter(h *SyntaxHighlighter) Option {
	return func(m *Model) {
		m.highlighter = h
	}
}

// WithStyles overrides the default styles
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.styles = s
	}
}

// WithWatcher re-runs reload whenever w reports a change to an input file
func WithWatcher(w *Watcher, reload func(ctx context.Context) (Inputs, error)) Option {
	return func(m *Model) {
		m.watcher = w
		m.reload = reload
	}
}

// NewModel creates a model editing in and showing their comparison
func NewModel(in Inputs, opts ...Option) Model {
	m := Model{
		inputs:       [2]textarea.Model{newInput(in.Original.Text), newInput(in.Changed.Text)},
		labels:       [2]string{in.Original.Label, in.Changed.Label},
		sources:      [2]string{in.Original.Text, in.Changed.Text},
		focus:        FocusDiff,
		viewport:     viewport.New(0, 0),
		keys:         defaultKeyMap(),
		provider:     LookupProvider(defaultProviderName),
		providerName: defaultProviderName,
		clipboard:    NewSystemClipboard(),
		styles:       NewStyles(nil),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.compare()
	return m
}

func newInput(text string) textarea.Model {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.MaxWidth = 0
	ta.Prompt = ""
	ta.SetValue(text)
	ta.Blur()
	return ta
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.WaitForChange())
	}
	return tea.Batch(cmds...)
}

// Messages

// inputsLoadedMsg carries inputs re-read after a file change
type inputsLoadedMsg struct {
	inputs Inputs
	err    error
}

// clearCopiedMsg resets the copy confirmation set by copy number seq
type clearCopiedMsg struct {
	seq int
}

type errMsg struct {
	err error
}

func (e errMsg) Error() string { return e.err.Error() }

// Comparison returns the current comparison
func (m Model) Comparison() Comparison {
	return m.comparison
}

// DiffVisible reports whether the comparison is shown, which stops being
// the case once either input is edited.
func (m Model) DiffVisible() bool {
	return m.showDiff
}

// text returns the content of input i. The editor expands tabs, so its value
// is only used once the user has typed into it.
func (m Model) text(i int) string {
	if m.edited[i] {
		return m.inputs[i].Value()
	}
	return m.sources[i]
}

// compare diffs the current inputs and shows the result
func (m *Model) compare() {
	original, changed := m.text(0), m.text(1)
	if m.provider == nil {
		m.logger.Warn("no diff provider available", nil, map[string]any{
			"provider": m.providerName,
		})
	}

	m.comparison = Compare(m.provider, original, changed)
	m.showDiff = true
	m.copied = SideNone

	m.logger.Info("comparison computed", map[string]any{
		"provider":  m.providerName,
		"additions": m.comparison.Additions,
		"removals":  m.comparison.Removals,
		"rows":      len(m.comparison.Rows),
	})

	m.refreshViewport()
	m.viewport.GotoTop()
}

// setInputs replaces both editors' contents, keeping the current focus
func (m *Model) setInputs(in Inputs) {
	for i, src := range []Source{in.Original, in.Changed} {
		m.inputs[i].SetValue(src.Text)
		m.labels[i] = src.Label
		m.sources[i] = src.Text
		m.edited[i] = false
	}
	m.resize()
}

// setFocus moves focus to f, returning the cursor blink command when an
// editor gains focus
func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	m.inputs[0].Blur()
	m.inputs[1].Blur()
	if f < FocusDiff {
		return m.inputs[f].Focus()
	}
	return nil
}

// resize applies the terminal size to the editors and the diff viewport
func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	inner := inputPanelWidth(m.width) - panelBorderCols
	for i := range m.inputs {
		m.inputs[i].SetWidth(inner)
		m.inputs[i].SetHeight(textareaHeight(m.height))
	}
	m.viewport.Width = m.width - panelBorderCols
	m.viewport.Height = diffViewportHeight(m.height)
	m.refreshViewport()
}

// refreshViewport re-renders the comparison rows into the viewport
func (m *Model) refreshViewport() {
	if m.viewport.Width <= 0 {
		return
	}
	m.viewport.SetContent(m.renderRows(columnWidth(m.viewport.Width)))
}
