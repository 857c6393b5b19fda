// Package questions provides the question management view for the TUI.
package questions

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leadline-labs/leadline-cli/internal/adapters/driving/tui/messages"
	"github.com/leadline-labs/leadline-cli/internal/adapters/driving/tui/render"
	"github.com/leadline-labs/leadline-cli/internal/adapters/driving/tui/styles"
	"github.com/leadline-labs/leadline-cli/internal/core/domain"
	"github.com/leadline-labs/leadline-cli/internal/core/ports/driving"
)

// mode tracks what the view is currently doing.
type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
)

// View is the question management view, scoped to one domain.
type View struct {
	styles          *styles.Styles
	questionService driving.QuestionService

	domain    *domain.Domain
	questions []domain.Question
	selected  int
	mode      mode
	loading   bool
	err       error

	loadSeq uint64

	input   textinput.Model
	editing *domain.Question

	width  int
	height int
	ready  bool
}

// NewView creates a new questions view.
func NewView(s *styles.Styles, questionService driving.QuestionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:          s,
		questionService: questionService,
	}
}

// Init is a no-op; loading happens once a domain is set.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetDomain scopes the view to a domain and loads its questions.
func (v *View) SetDomain(d domain.Domain) tea.Cmd {
	v.domain = &d
	v.questions = nil
	v.selected = 0
	v.mode = modeList
	v.err = nil
	return v.Reload()
}

// Reload starts a fresh stamped load of the question list.
func (v *View) Reload() tea.Cmd {
	if v.domain == nil {
		return nil
	}
	v.loading = true
	v.loadSeq++
	seq := v.loadSeq
	domainID := v.domain.ID
	return func() tea.Msg {
		if v.questionService == nil {
			return messages.QuestionsLoaded{Seq: seq, DomainID: domainID, Err: fmt.Errorf("question service not available")}
		}
		questions, err := v.questionService.List(context.Background(), domainID)
		return messages.QuestionsLoaded{Seq: seq, DomainID: domainID, Questions: questions, Err: err}
	}
}

// Update handles messages for the questions view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.QuestionsLoaded:
		if msg.Seq != v.loadSeq {
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.questions = msg.Questions
			v.err = nil
			if v.selected >= len(v.questions) {
				v.selected = 0
			}
		}
		return v, nil

	case messages.QuestionAdded:
		return v.handleAdded(msg)

	case messages.QuestionUpdated:
		v.mode = modeList
		v.editing = nil
		if msg.Err == nil && msg.Updated {
			return v, v.Reload()
		}
		return v, nil

	case messages.QuestionDeleted:
		if msg.Err != nil {
			return v, nil
		}
		return v, v.Reload()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleAdded applies the discriminated outcome of a submission. A rejected
// question keeps the form open for correction; a duplicate closes it without
// reloading; a created question closes it and reloads.
func (v *View) handleAdded(msg messages.QuestionAdded) (*View, tea.Cmd) {
	if msg.Err != nil {
		return v, nil
	}

	switch msg.Outcome {
	case domain.OutcomeRejected:
		return v, nil
	case domain.OutcomeDuplicate:
		v.mode = modeList
		return v, nil
	default:
		v.mode = modeList
		return v, v.Reload()
	}
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch v.mode {
	case modeAdd, modeEdit:
		return v.handleFormKeys(msg)
	case modeConfirmDelete:
		return v.handleConfirmKeys(msg)
	default:
		return v.handleListKeys(msg)
	}
}

func (v *View) handleListKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.questions)-1 {
			v.selected++
		}
	case "a":
		v.openForm(modeAdd, "")
	case "e":
		if q, ok := v.current(); ok {
			v.editing = &q
			v.openForm(modeEdit, q.Text)
		}
	case "d":
		if _, ok := v.current(); ok {
			v.mode = modeConfirmDelete
		}
	case "r":
		return v, v.Reload()
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewDomains}
		}
	}

	return v, nil
}

func (v *View) handleConfirmKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "y":
		v.mode = modeList
		if q, ok := v.current(); ok {
			return v, v.deleteQuestion(q.ID)
		}
	case "n", "esc":
		v.mode = modeList
	}
	return v, nil
}

func (v *View) handleFormKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.mode = modeList
		v.editing = nil
		return v, nil

	case "enter":
		if v.mode == modeEdit {
			return v, v.submitEdit()
		}
		return v, v.submitAdd()
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) openForm(m mode, value string) {
	in := textinput.New()
	in.Placeholder = "Question text"
	in.CharLimit = 300
	in.SetValue(value)
	in.Focus()
	v.input = in
	v.mode = m
}

func (v *View) submitAdd() tea.Cmd {
	if v.domain == nil {
		return nil
	}
	domainID := v.domain.ID
	text := v.input.Value()
	return func() tea.Msg {
		if v.questionService == nil {
			return messages.QuestionAdded{Err: fmt.Errorf("question service not available")}
		}
		outcome, err := v.questionService.Add(context.Background(), domainID, text)
		return messages.QuestionAdded{Outcome: outcome, Err: err}
	}
}

func (v *View) submitEdit() tea.Cmd {
	if v.editing == nil {
		return nil
	}
	id := v.editing.ID
	currentText := v.editing.Text
	newText := v.input.Value()
	return func() tea.Msg {
		if v.questionService == nil {
			return messages.QuestionUpdated{ID: id, Err: fmt.Errorf("question service not available")}
		}
		updated, err := v.questionService.Update(context.Background(), id, currentText, newText)
		return messages.QuestionUpdated{ID: id, Updated: updated, Err: err}
	}
}

func (v *View) deleteQuestion(id string) tea.Cmd {
	return func() tea.Msg {
		if v.questionService == nil {
			return messages.QuestionDeleted{ID: id, Err: fmt.Errorf("question service not available")}
		}
		err := v.questionService.Delete(context.Background(), id)
		return messages.QuestionDeleted{ID: id, Err: err}
	}
}

func (v *View) current() (domain.Question, bool) {
	if len(v.questions) == 0 || v.selected >= len(v.questions) {
		return domain.Question{}, false
	}
	return v.questions[v.selected], true
}

// View renders the questions view.
func (v *View) View() string {
	var b strings.Builder

	title := "Questions"
	if v.domain != nil {
		title = fmt.Sprintf("Questions - %s", v.domain.Name)
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	if v.domain == nil {
		b.WriteString(v.styles.Muted.Render("Select a domain first (Domains view, [enter])."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back"))
		return b.String()
	}

	if v.mode == modeAdd || v.mode == modeEdit {
		label := "New question"
		if v.mode == modeEdit {
			label = "Edit question"
		}
		b.WriteString(v.styles.Subtitle.Render(label))
		b.WriteString("\n")
		b.WriteString(v.input.View())
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[enter] submit  [esc] cancel"))
		return b.String()
	}

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading questions..."))
		b.WriteString("\n\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	case len(v.questions) == 0:
		b.WriteString(v.styles.Muted.Render("No questions yet. Press [a] to add one."))
		b.WriteString("\n\n")
	default:
		for i := range v.questions {
			b.WriteString(v.renderQuestion(i, &v.questions[i]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if v.mode == modeConfirmDelete {
		b.WriteString(v.styles.Warning.Render("Delete this question? [y/n]"))
		b.WriteString("\n\n")
	}

	b.WriteString(v.styles.Help.Render("[a] add  [e] edit  [d] delete  [r] reload  [esc] domains"))
	return b.String()
}

func (v *View) renderQuestion(index int, q *domain.Question) string {
	cursor := "  "
	if index == v.selected {
		cursor = "> "
	}

	text := render.Truncate(q.Text, 70)
	line := cursor + text
	if index == v.selected {
		line = v.styles.Selected.Render(line)
	} else {
		line = v.styles.Normal.Render(line)
	}

	if tags := render.Tags(v.styles, q.Leads); tags != "" {
		line += "\n    " + tags
	}
	return line
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Questions returns the current question list.
func (v *View) Questions() []domain.Question {
	return v.questions
}

// Domain returns the domain this view is scoped to.
func (v *View) Domain() *domain.Domain {
	return v.domain
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
