// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/gorillatype/internal/trial"
)

const title = "GorillaType v0.1"

// Model implements the Bubble Tea typing UI. It owns the trial session and
// is the only writer of its state.
type Model struct {
	session *trial.Session
	logger  *slog.Logger

	keys  keyMap
	help  help.Model
	watch stopwatch.Model

	width  int
	height int

	result    trial.Result
	resultErr error
}

var (
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	accentStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FA8FF"))
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6CCB5F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	cursorStyle      = currentWordStyle.Underline(true)
	resultStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs a typing TUI model for session.
func NewModel(session *trial.Session, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Model{
		session: session,
		logger:  logger,
		keys:    newKeyMap(),
		help:    help.New(),
		watch:   stopwatch.NewWithInterval(100 * time.Millisecond),
	}
	m.syncKeys()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			if !m.session.Done() {
				m.logger.Info("trial abandoned", "cursor", m.session.State().Cursor)
			}
			return m, tea.Quit
		}
		if m.session.Done() {
			if key.Matches(msg, m.keys.Exit) {
				return m, tea.Quit
			}
			return m, nil
		}
		switch msg.Type {
		case tea.KeySpace:
			return m, m.press([]rune{' '})
		case tea.KeyRunes:
			return m, m.press(msg.Runes)
		default:
			return m, nil
		}
	default:
		var cmd tea.Cmd
		m.watch, cmd = m.watch.Update(msg)
		return m, cmd
	}
}

func (m *Model) press(runes []rune) tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range runes {
		sig := m.session.Press(r)
		switch sig.Kind {
		case trial.SignalReady:
			m.logger.Debug("trial ready", "chars", m.session.Passage().Len())
		case trial.SignalAccepted:
			if sig.Pos == 0 {
				cmds = append(cmds, m.watch.Start())
			}
			m.logger.Debug("char accepted", "pos", sig.Pos)
		case trial.SignalIgnored:
			m.logger.Debug("key ignored", "key", string(r), "cursor", m.session.State().Cursor)
		case trial.SignalCompleted:
			cmds = append(cmds, m.watch.Stop())
			m.finish()
		}
		if m.session.Done() {
			break
		}
	}
	m.syncKeys()
	return tea.Batch(cmds...)
}

func (m *Model) finish() {
	m.result, m.resultErr = m.session.Result()
	if m.resultErr != nil {
		m.logger.Error("trial completed without a speed", "err", m.resultErr)
		return
	}
	m.logger.Info("trial completed",
		"chars", m.result.Chars,
		"elapsed", m.result.Elapsed,
		"cpm", m.result.CPM,
		"missed", m.result.Missed,
	)
}

func (m *Model) syncKeys() {
	phase := m.session.State().Phase
	m.keys.Start.SetEnabled(phase == trial.AwaitingStart)
	m.keys.Exit.SetEnabled(phase == trial.Completed)
}

// Done reports whether the trial reached completion.
func (m *Model) Done() bool {
	return m.session.Done()
}

// Result returns the trial result. It fails when the trial was abandoned or
// finished in zero time.
func (m *Model) Result() (trial.Result, error) {
	if !m.session.Done() {
		return trial.Result{}, trial.ErrNotCompleted
	}
	return m.result, m.resultErr
}

// View implements tea.Model.
func (m *Model) View() string {
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	var body string
	switch m.session.State().Phase {
	case trial.AwaitingStart:
		body = fmt.Sprintf("Press %s to start", accentStyle.Render("Space"))
	case trial.Completed:
		body = m.renderResult()
	default:
		body = m.renderPassage(contentWidth)
	}
	content := titleStyle.Render(title) + "\n\n" + body
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return content + "\n\n" + footer
	}
	content = lipgloss.NewStyle().Width(contentWidth).Render(content)
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body = lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderPassage(width int) string {
	state := m.session.State()
	styled := buildStyledRunes(m.session.Passage().Runes(), state.Cursor)
	if m.width == 0 {
		return renderStyledRunes(styled)
	}
	return wrapStyledRunes(styled, width)
}

func (m *Model) renderResult() string {
	if m.resultErr != nil {
		return errorStyle.Render(fmt.Sprintf("Could not compute speed: %v", m.resultErr))
	}
	return resultStyle.Render(fmt.Sprintf("CPM: %.1f  WPM: %.1f", m.result.CPM, m.result.WPM))
}

func (m *Model) renderFooter() string {
	state := m.session.State()
	segments := []string{}
	if state.Phase != trial.AwaitingStart {
		total := m.session.Passage().Len()
		progress := int(float64(state.Cursor) / float64(total) * 100)
		segments = append(segments,
			fmt.Sprintf("Progress %d%%", progress),
			fmt.Sprintf("Elapsed %s", m.elapsed()),
			fmt.Sprintf("Missed %d", m.session.Missed()),
		)
	}
	segments = append(segments, m.help.View(m.keys))
	return footerStyle.Render(strings.Join(segments, "  "))
}

func (m *Model) elapsed() string {
	if m.session.Done() && m.resultErr == nil {
		return m.result.Elapsed.Round(100 * time.Millisecond).String()
	}
	return m.watch.View()
}
