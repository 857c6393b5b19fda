// Package domains provides the domain management view for the TUI.
package domains

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
	modeCreate
	modeConfirmDelete
)

// View is the domain management view.
type View struct {
	styles        *styles.Styles
	domainService driving.DomainService

	domains  []domain.Domain
	selected int
	mode     mode
	loading  bool
	err      error

	// loadSeq stamps load requests so a slow response cannot overwrite a
	// newer one.
	loadSeq uint64

	// Create form state: inputs[0] is the name, the rest are initial
	// questions.
	inputs  []textinput.Model
	focused int

	width  int
	height int
	ready  bool
}

// NewView creates a new domains view.
func NewView(s *styles.Styles, domainService driving.DomainService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:        s,
		domainService: domainService,
	}
}

// Init initialises the view and loads domains.
func (v *View) Init() tea.Cmd {
	return v.Reload()
}

// Reload starts a fresh stamped load of the domain list.
func (v *View) Reload() tea.Cmd {
	v.loading = true
	v.loadSeq++
	seq := v.loadSeq
	return func() tea.Msg {
		if v.domainService == nil {
			return messages.DomainsLoaded{Seq: seq, Err: fmt.Errorf("domain service not available")}
		}
		domains, err := v.domainService.List(context.Background())
		return messages.DomainsLoaded{Seq: seq, Domains: domains, Err: err}
	}
}

// Update handles messages for the domains view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.DomainsLoaded:
		if msg.Seq != v.loadSeq {
			// Stale response from an earlier load
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.domains = msg.Domains
			v.err = nil
			if v.selected >= len(v.domains) {
				v.selected = 0
			}
		}
		return v, nil

	case messages.DomainCreated:
		if msg.Err != nil {
			return v, nil
		}
		v.mode = modeList
		v.inputs = nil
		return v, v.Reload()

	case messages.DomainDeleted:
		if msg.Err != nil {
			return v, nil
		}
		return v, v.Reload()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg dispatches key presses by mode.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch v.mode {
	case modeCreate:
		return v.handleCreateKeys(msg)
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
		if v.selected < len(v.domains)-1 {
			v.selected++
		}
	case "enter":
		if d, ok := v.current(); ok {
			return v, func() tea.Msg {
				return messages.DomainSelected{Domain: d}
			}
		}
	case "m":
		if d, ok := v.current(); ok {
			return v, func() tea.Msg {
				return messages.ManageQuestions{Domain: d}
			}
		}
	case "c":
		if d, ok := v.current(); ok {
			return v, func() tea.Msg {
				return messages.ViewConversationsOf{Domain: d}
			}
		}
	case "g":
		if d, ok := v.current(); ok {
			return v, v.generateLeads(d)
		}
	case "a":
		v.openCreateForm()
	case "d":
		if _, ok := v.current(); ok {
			v.mode = modeConfirmDelete
		}
	case "r":
		return v, v.Reload()
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

func (v *View) handleConfirmKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "y":
		v.mode = modeList
		if d, ok := v.current(); ok {
			return v, v.deleteDomain(d.ID)
		}
	case "n", "esc":
		v.mode = modeList
	}
	return v, nil
}

func (v *View) handleCreateKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.mode = modeList
		v.inputs = nil
		return v, nil

	case "enter":
		// Move to the next field, growing the question list at the end
		if v.focused == len(v.inputs)-1 {
			v.inputs = append(v.inputs, v.newQuestionInput())
		}
		v.setFocus(v.focused + 1)
		return v, nil

	case "tab":
		v.setFocus((v.focused + 1) % len(v.inputs))
		return v, nil

	case "shift+tab":
		v.setFocus((v.focused + len(v.inputs) - 1) % len(v.inputs))
		return v, nil

	case "ctrl+s":
		return v, v.submitCreate()
	}

	var cmd tea.Cmd
	v.inputs[v.focused], cmd = v.inputs[v.focused].Update(msg)
	return v, cmd
}

func (v *View) openCreateForm() {
	name := textinput.New()
	name.Placeholder = "Domain name"
	name.CharLimit = 120
	name.Focus()

	v.inputs = []textinput.Model{name, v.newQuestionInput()}
	v.focused = 0
	v.mode = modeCreate
}

func (v *View) newQuestionInput() textinput.Model {
	in := textinput.New()
	in.Placeholder = "Initial question (optional)"
	in.CharLimit = 300
	return in
}

func (v *View) setFocus(i int) {
	for j := range v.inputs {
		v.inputs[j].Blur()
	}
	v.focused = i
	v.inputs[i].Focus()
}

// submitCreate sends the form as-is. Name validation and blank question
// filtering belong to the service.
func (v *View) submitCreate() tea.Cmd {
	name := v.inputs[0].Value()
	questions := make([]string, 0, len(v.inputs)-1)
	for _, in := range v.inputs[1:] {
		questions = append(questions, in.Value())
	}

	return func() tea.Msg {
		if v.domainService == nil {
			return messages.DomainCreated{Name: name, Err: fmt.Errorf("domain service not available")}
		}
		added, err := v.domainService.Create(context.Background(), name, questions)
		return messages.DomainCreated{Name: name, QuestionsAdded: added, Err: err}
	}
}

func (v *View) deleteDomain(id string) tea.Cmd {
	return func() tea.Msg {
		if v.domainService == nil {
			return messages.DomainDeleted{ID: id, Err: fmt.Errorf("domain service not available")}
		}
		err := v.domainService.Delete(context.Background(), id)
		return messages.DomainDeleted{ID: id, Err: err}
	}
}

func (v *View) generateLeads(d domain.Domain) tea.Cmd {
	return func() tea.Msg {
		if v.domainService == nil {
			return messages.LeadsGenerated{DomainID: d.ID, Err: fmt.Errorf("domain service not available")}
		}
		leads, err := v.domainService.GenerateLeads(context.Background(), d.ID)
		return messages.LeadsGenerated{DomainID: d.ID, Leads: leads, Err: err}
	}
}

func (v *View) current() (domain.Domain, bool) {
	if len(v.domains) == 0 || v.selected >= len(v.domains) {
		return domain.Domain{}, false
	}
	return v.domains[v.selected], true
}

// View renders the domains view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Domains"))
	b.WriteString("\n\n")

	if v.mode == modeCreate {
		b.WriteString(v.renderCreateForm())
		return b.String()
	}

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading domains..."))
		b.WriteString("\n\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	case len(v.domains) == 0:
		b.WriteString(v.styles.Muted.Render("No domains yet. Press [a] to create one."))
		b.WriteString("\n\n")
	default:
		for i := range v.domains {
			b.WriteString(v.renderDomain(i, &v.domains[i]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if v.mode == modeConfirmDelete {
		if d, ok := v.current(); ok {
			prompt := fmt.Sprintf("Delete domain %q and everything under it? [y/n]", d.Name)
			b.WriteString(v.styles.Warning.Render(prompt))
			b.WriteString("\n\n")
		}
	}

	b.WriteString(v.renderHelp())
	return b.String()
}

func (v *View) renderDomain(index int, d *domain.Domain) string {
	cursor := "  "
	if index == v.selected {
		cursor = "> "
	}

	name := render.Truncate(d.Name, 50)
	meta := fmt.Sprintf("%d questions", d.QuestionCount)
	if created := render.ShortDate(d.CreatedAt); created != "" {
		meta += "  " + created
	}

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%-52s %s", cursor, name, meta))
	}
	return v.styles.Normal.Render(cursor+fmt.Sprintf("%-52s ", name)) + v.styles.Muted.Render(meta)
}

func (v *View) renderCreateForm() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("New domain"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Name"))
	b.WriteString("\n")
	b.WriteString(v.inputs[0].View())
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Initial questions (blank lines are skipped)"))
	b.WriteString("\n")
	for _, in := range v.inputs[1:] {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[enter] next field  [ctrl+s] create  [esc] cancel"))

	return b.String()
}

func (v *View) renderHelp() string {
	return v.styles.Help.Render(
		"[a] add  [enter] select  [m] questions  [c] conversations  [g] leads  [d] delete  [r] reload  [esc] menu")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Domains returns the current domain list.
func (v *View) Domains() []domain.Domain {
	return v.domains
}

// Selected returns the currently selected domain index.
func (v *View) Selected() int {
	return v.selected
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
