// Package tui implements the interactive terminal converter.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rshade/convkit/internal/config"
	"github.com/rshade/convkit/internal/converter"
	"github.com/rshade/convkit/internal/units"
)

// Focus identifies the field receiving key input.
type Focus int

const (
	// FocusValue is the numeric input field.
	FocusValue Focus = iota
	// FocusFrom is the source unit selector.
	FocusFrom
	// FocusTo is the target unit selector.
	FocusTo

	focusCount = 3
)

const (
	labelWidth     = 8
	inputCharLimit = 64
	inputWidth     = 32
	defaultWidth   = 80
)

// themeSavedMsg reports the outcome of persisting a theme change.
type themeSavedMsg struct {
	theme config.Theme
	err   error
}

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct {
	text string
	err  error
}

// ConverterModel is the Bubble Tea model for one converter widget with a
// domain switcher.
type ConverterModel struct {
	session   *converter.Session
	tables    []*units.Table
	domainIdx int

	input textinput.Model
	focus Focus

	keys keyMap
	help help.Model

	theme     config.Theme
	styles    Styles
	settings  config.SettingsStore
	clipboard Clipboard
	precision func(*units.Table) int

	status    string
	statusErr bool
	quitting  bool
	width     int

	logger zerolog.Logger
}

// ModelOption configures a ConverterModel.
type ModelOption func(*ConverterModel)

// WithSettingsStore sets where the theme is loaded from and saved to.
func WithSettingsStore(store config.SettingsStore) ModelOption {
	return func(m *ConverterModel) { m.settings = store }
}

// WithClipboard replaces the system clipboard.
func WithClipboard(cb Clipboard) ModelOption {
	return func(m *ConverterModel) { m.clipboard = cb }
}

// WithPrecisionFunc sets the per-table fraction digits, typically
// config.Config.PrecisionFor.
func WithPrecisionFunc(fn func(*units.Table) int) ModelOption {
	return func(m *ConverterModel) { m.precision = fn }
}

// WithModelLogger attaches a logger to the model and its session.
func WithModelLogger(logger zerolog.Logger) ModelOption {
	return func(m *ConverterModel) { m.logger = logger }
}

// NewConverterModel creates a converter opened on domain.
func NewConverterModel(domain units.Domain, opts ...ModelOption) (*ConverterModel, error) {
	m := &ConverterModel{
		tables:    units.Tables(),
		keys:      defaultKeyMap(),
		help:      help.New(),
		settings:  config.NewMemorySettingsStore(config.DefaultSettings()),
		clipboard: SystemClipboard{},
		precision: func(t *units.Table) int { return t.Precision() },
		width:     defaultWidth,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.domainIdx = -1
	for i, t := range m.tables {
		if t.Domain() == domain {
			m.domainIdx = i
			break
		}
	}
	if m.domainIdx < 0 {
		return nil, fmt.Errorf("%w: %q", units.ErrUnknownDomain, domain)
	}

	table := m.tables[m.domainIdx]
	session, err := converter.NewSession(table,
		converter.WithPrecision(m.precision(table)),
		converter.WithLogger(m.logger),
	)
	if err != nil {
		return nil, err
	}
	m.session = session

	settings, err := m.settings.Load()
	if err != nil {
		m.logger.Warn().Err(err).Msg("loading settings, using defaults")
		m.setStatus("settings unreadable, using defaults", true)
	}
	m.applyTheme(settings.Theme)

	m.input = textinput.New()
	m.input.Placeholder = "Enter a value"
	m.input.CharLimit = inputCharLimit
	m.input.Width = inputWidth
	m.input.Focus()

	return m, nil
}

// Session returns the underlying converter session.
func (m *ConverterModel) Session() *converter.Session { return m.session }

// Focus returns the focused field.
func (m *ConverterModel) Focus() Focus { return m.focus }

// Theme returns the active theme.
func (m *ConverterModel) Theme() config.Theme { return m.theme }

// Status returns the current status line text.
func (m *ConverterModel) Status() string { return m.status }

// Quitting reports whether the model has requested exit.
func (m *ConverterModel) Quitting() bool { return m.quitting }

// Init starts the cursor blink.
func (m *ConverterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *ConverterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case themeSavedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("saving theme")
			m.setStatus("theme not saved: "+msg.err.Error(), true)
		} else {
			m.setStatus("theme: "+msg.theme.String(), false)
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.setStatus("copy failed: "+msg.err.Error(), true)
		} else {
			m.setStatus("copied "+msg.text, false)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m.updateInput(msg)
}

func (m *ConverterModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextFocus):
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case key.Matches(msg, m.keys.PrevFocus):
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	case key.Matches(msg, m.keys.Swap):
		m.session.Swap()
		return m, nil
	case key.Matches(msg, m.keys.NextDomain):
		m.switchDomain(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevDomain):
		m.switchDomain(-1)
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		return m, m.toggleTheme()
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyResult()
	}

	if m.focus == FocusValue {
		return m.updateInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.PrevUnit):
		m.stepUnit(-1)
	case key.Matches(msg, m.keys.NextUnit):
		m.stepUnit(1)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// updateInput forwards msg to the text field and recomputes on change.
func (m *ConverterModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.session.SetInput(m.input.Value())
	}
	return m, cmd
}

func (m *ConverterModel) setFocus(f Focus) {
	m.focus = f
	if f == FocusValue {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// stepUnit moves the focused selector by delta, wrapping around.
func (m *ConverterModel) stepUnit(delta int) {
	table := m.session.Table()
	ids := table.IDs()
	from, to := m.session.Units()

	current := from
	if m.focus == FocusTo {
		current = to
	}
	next := ids[wrap(table.IndexOf(current)+delta, len(ids))]

	// Units come from the table itself, so the setters cannot fail.
	if m.focus == FocusTo {
		_, _ = m.session.SetTo(next)
	} else {
		_, _ = m.session.SetFrom(next)
	}
}

// switchDomain moves to the next or previous table, keeping the input.
func (m *ConverterModel) switchDomain(delta int) {
	m.domainIdx = wrap(m.domainIdx+delta, len(m.tables))
	table := m.tables[m.domainIdx]

	if _, err := m.session.SetTable(table); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if digits := m.precision(table); digits != table.Precision() {
		if _, err := m.session.SetPrecision(digits); err != nil {
			m.setStatus(err.Error(), true)
			return
		}
	}
	m.setStatus("", false)
}

func (m *ConverterModel) toggleTheme() tea.Cmd {
	m.applyTheme(m.theme.Toggle())
	theme, store := m.theme, m.settings
	return func() tea.Msg {
		err := store.Save(config.Settings{Theme: theme})
		return themeSavedMsg{theme: theme, err: err}
	}
}

func (m *ConverterModel) applyTheme(theme config.Theme) {
	if _, err := config.ParseTheme(string(theme)); err != nil {
		theme = config.DefaultTheme
	}
	m.theme = theme
	m.styles = NewStyles(theme)
}

func (m *ConverterModel) copyResult() tea.Cmd {
	res := m.session.Result()
	if !res.Valid {
		m.setStatus("nothing to copy", true)
		return nil
	}
	text, cb := res.Formatted, m.clipboard
	return func() tea.Msg {
		return copiedMsg{text: text, err: cb.WriteAll(text)}
	}
}

func (m *ConverterModel) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// View renders the converter.
func (m *ConverterModel) View() string {
	if m.quitting {
		return ""
	}

	res := m.session.Result()
	table := m.session.Table()
	from, to := m.session.Units()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("convkit · " + table.Domain().Title()))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	b.WriteString(m.styles.Label.Render("Value"))
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.renderSelector("From", table, from, m.focus == FocusFrom))
	b.WriteString("\n")
	b.WriteString(m.renderSelector("To", table, to, m.focus == FocusTo))
	b.WriteString("\n\n")

	resultStyle := m.styles.Result
	if !res.Valid {
		resultStyle = m.styles.Placeholder
	}
	b.WriteString(m.styles.Label.Render("Result"))
	b.WriteString(resultStyle.Render(res.Formatted))
	if u, ok := table.Unit(to); ok && res.Valid {
		b.WriteString(" " + u.Symbol)
	}

	body := m.styles.Box.MaxWidth(m.width).Render(b.String())

	footer := m.help.View(m.keys)
	if m.status != "" {
		statusStyle := m.styles.Status
		if m.statusErr {
			statusStyle = m.styles.ErrorStatus
		}
		footer = statusStyle.Render(m.status) + "\n" + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m *ConverterModel) renderTabs() string {
	tabs := make([]string, 0, len(m.tables))
	for i, t := range m.tables {
		style := m.styles.Tab
		if i == m.domainIdx {
			style = m.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(t.Domain().Title()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *ConverterModel) renderSelector(label string, table *units.Table, id units.UnitID, focused bool) string {
	u, _ := table.Unit(id)
	text := u.Label
	style := m.styles.Selector
	if focused {
		text = "‹ " + text + " ›"
		style = m.styles.Focused
	}
	return m.styles.Label.Render(label) + style.Render(text)
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
