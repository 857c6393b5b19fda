// Package notify implements the transient notification stack shown above
// every view.
package notify

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/leadline-labs/leadline-cli/internal/adapters/driving/tui/styles"
)

// TTL is how long a notice stays visible before it expires on its own.
const TTL = 3 * time.Second

// Level is the severity of a notice. It only affects styling.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

// Notice is one entry in the notification stack.
type Notice struct {
	ID    string
	Text  string
	Level Level
}

// PushMsg adds a notice to the stack.
type PushMsg struct {
	Notice Notice
}

// expireMsg removes the notice with a matching ID. A dismissed or replaced
// notice simply ignores its late tick.
type expireMsg struct {
	ID string
}

// Push returns a command that pushes a notice onto the stack.
func Push(text string, level Level) tea.Cmd {
	notice := Notice{
		ID:    uuid.NewString(),
		Text:  text,
		Level: level,
	}
	return func() tea.Msg {
		return PushMsg{Notice: notice}
	}
}

// Model holds the active notices.
type Model struct {
	styles  *styles.Styles
	notices []Notice
}

// New creates an empty notification stack.
func New(s *styles.Styles) Model {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return Model{styles: s}
}

// Update handles push and expiry messages. Each notice expires on its own
// tick; removing one never affects the others.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PushMsg:
		m.notices = append(m.notices, msg.Notice)
		id := msg.Notice.ID
		return m, tea.Tick(TTL, func(time.Time) tea.Msg {
			return expireMsg{ID: id}
		})

	case expireMsg:
		m.notices = m.remove(msg.ID)
		return m, nil
	}

	return m, nil
}

// Dismiss removes the newest notice, if any.
func (m Model) Dismiss() Model {
	if len(m.notices) == 0 {
		return m
	}
	m.notices = m.remove(m.notices[len(m.notices)-1].ID)
	return m
}

func (m Model) remove(id string) []Notice {
	kept := make([]Notice, 0, len(m.notices))
	for _, n := range m.notices {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	return kept
}

// Active returns the notices currently on the stack.
func (m Model) Active() []Notice {
	return m.notices
}

// View renders the stack, oldest first.
func (m Model) View() string {
	if len(m.notices) == 0 {
		return ""
	}

	var b strings.Builder
	for _, n := range m.notices {
		b.WriteString(m.style(n.Level).Render("* " + n.Text))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) style(level Level) lipgloss.Style {
	switch level {
	case LevelSuccess:
		return m.styles.Success
	case LevelWarning:
		return m.styles.Warning
	case LevelError:
		return m.styles.Error
	default:
		return m.styles.Normal
	}
}
