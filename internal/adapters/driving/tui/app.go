package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leadline-labs/leadline-cli/internal/adapters/driving/tui/messages"
	"github.com/leadline-labs/leadline-cli/internal/adapters/driving/tui/notify"
	"github.com/leadline-labs/leadline-cli/internal/adapters/driving/tui/styles"
	"github.com/leadline-labs/leadline-cli/internal/adapters/driving/tui/views/conversations"
	"github.com/leadline-labs/leadline-cli/internal/adapters/driving/tui/views/domains"
	"github.com/leadline-labs/leadline-cli/internal/adapters/driving/tui/views/menu"
	"github.com/leadline-labs/leadline-cli/internal/adapters/driving/tui/views/questions"
	"github.com/leadline-labs/leadline-cli/internal/adapters/driving/tui/views/results"
	"github.com/leadline-labs/leadline-cli/internal/core/domain"
	"github.com/leadline-labs/leadline-cli/internal/eventbus"
)

// EventDomainSelected is published whenever the active domain changes.
const EventDomainSelected = "domain.selected"

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea and owns all state shared
// between views: the domain cache, the current selection, and the transient
// lead suggestions.
type App struct {
	ports *Ports
	ctx   context.Context

	styles *styles.Styles
	bus    *eventbus.Bus

	menuView          *menu.View
	domainsView       *domains.View
	questionsView     *questions.View
	conversationsView *conversations.View
	resultsView       *results.View

	notices notify.Model

	// domains is the authoritative cache; views that need the domain list
	// read it from here instead of refetching.
	domains []domain.Domain

	// selectedDomain is the active domain for question and conversation
	// management.
	selectedDomain *domain.Domain

	// selectedConversationID is the conversation shown in the results view.
	selectedConversationID string

	// domainLeads holds backend-suggested leads for leadsDomainID. Cleared
	// whenever the selection changes.
	domainLeads   []string
	leadsDomainID string

	currentView messages.ViewType

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	a := &App{
		ports:             ports,
		ctx:               context.Background(),
		styles:            s,
		bus:               eventbus.New(),
		menuView:          menu.NewView(s),
		domainsView:       domains.NewView(s, ports.Domains),
		questionsView:     questions.NewView(s, ports.Questions),
		conversationsView: conversations.NewView(s, ports.Conversations),
		resultsView:       results.NewView(s, ports.Results),
		notices:           notify.New(s),
		currentView:       messages.ViewMenu,
	}

	a.bus.Subscribe(EventDomainSelected, func(any) {
		a.domainLeads = nil
		a.leadsDomainID = ""
	})

	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("leadline"),
	)
}

// Update implements tea.Model. It routes messages to the owning view and
// keeps the shared state coherent.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	// The notification stack sees every message; it only reacts to its own.
	a.notices, cmd = a.notices.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.domainsView.SetDimensions(msg.Width, msg.Height)
		a.questionsView.SetDimensions(msg.Width, msg.Height)
		a.conversationsView.SetDimensions(msg.Width, msg.Height)
		a.resultsView.SetDimensions(msg.Width, msg.Height)
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "ctrl+x":
			// Dismiss the newest notice without waiting for its expiry.
			// ctrl+x never collides with form input, so it is safe to
			// swallow here even while a text field is focused.
			if len(a.notices.Active()) > 0 {
				a.notices = a.notices.Dismiss()
				return a, tea.Batch(cmds...)
			}
		}
		cmds = append(cmds, a.forwardToCurrent(msg))
		return a, tea.Batch(cmds...)

	case messages.ViewChanged:
		cmds = append(cmds, a.switchView(msg.View))
		return a, tea.Batch(cmds...)

	case messages.Quit:
		return a, tea.Quit

	case messages.DomainsLoaded:
		a.domainsView, cmd = a.domainsView.Update(msg)
		cmds = append(cmds, cmd)
		// Refresh the cache from whatever the view accepted; stale
		// responses were already discarded there
		a.domains = a.domainsView.Domains()
		return a, tea.Batch(cmds...)

	case messages.DomainSelected:
		a.selectDomain(msg.Domain)
		cmds = append(cmds, notify.Push(fmt.Sprintf("Selected domain %q", msg.Domain.Name), notify.LevelInfo))
		return a, tea.Batch(cmds...)

	case messages.DomainCreated:
		a.domainsView, cmd = a.domainsView.Update(msg)
		cmds = append(cmds, cmd, a.domainCreatedNotice(msg))
		return a, tea.Batch(cmds...)

	case messages.DomainDeleted:
		a.domainsView, cmd = a.domainsView.Update(msg)
		cmds = append(cmds, cmd)
		if msg.Err != nil {
			cmds = append(cmds, notify.Push(msg.Err.Error(), notify.LevelError))
		} else {
			if a.selectedDomain != nil && a.selectedDomain.ID == msg.ID {
				a.selectedDomain = nil
				a.bus.Publish(EventDomainSelected, nil)
			}
			cmds = append(cmds, notify.Push("Domain deleted", notify.LevelSuccess))
		}
		return a, tea.Batch(cmds...)

	case messages.LeadsGenerated:
		if msg.Err != nil {
			cmds = append(cmds, notify.Push(msg.Err.Error(), notify.LevelError))
		} else {
			a.domainLeads = msg.Leads
			a.leadsDomainID = msg.DomainID
		}
		return a, tea.Batch(cmds...)

	case messages.ManageQuestions:
		a.selectDomain(msg.Domain)
		a.currentView = messages.ViewQuestions
		cmds = append(cmds, a.questionsView.SetDomain(msg.Domain))
		return a, tea.Batch(cmds...)

	case messages.ViewConversationsOf:
		a.selectDomain(msg.Domain)
		a.currentView = messages.ViewConversations
		cmds = append(cmds, a.conversationsView.SetDomain(msg.Domain))
		return a, tea.Batch(cmds...)

	case messages.QuestionsLoaded:
		a.questionsView, cmd = a.questionsView.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case messages.QuestionAdded:
		a.questionsView, cmd = a.questionsView.Update(msg)
		cmds = append(cmds, cmd, a.questionAddedNotice(msg))
		return a, tea.Batch(cmds...)

	case messages.QuestionUpdated:
		a.questionsView, cmd = a.questionsView.Update(msg)
		cmds = append(cmds, cmd)
		switch {
		case msg.Err != nil:
			cmds = append(cmds, notify.Push(msg.Err.Error(), notify.LevelError))
		case msg.Updated:
			cmds = append(cmds, notify.Push("Question updated", notify.LevelSuccess))
		}
		return a, tea.Batch(cmds...)

	case messages.QuestionDeleted:
		a.questionsView, cmd = a.questionsView.Update(msg)
		cmds = append(cmds, cmd)
		if msg.Err != nil {
			cmds = append(cmds, notify.Push(msg.Err.Error(), notify.LevelError))
		} else {
			cmds = append(cmds, notify.Push("Question deleted", notify.LevelSuccess))
		}
		return a, tea.Batch(cmds...)

	case messages.ConversationsLoaded:
		a.conversationsView, cmd = a.conversationsView.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case messages.ConversationUploaded:
		a.conversationsView, cmd = a.conversationsView.Update(msg)
		cmds = append(cmds, cmd)
		if msg.Err != nil {
			cmds = append(cmds, notify.Push(msg.Err.Error(), notify.LevelError))
		} else {
			cmds = append(cmds,
				notify.Push(msg.Message, notify.LevelSuccess),
				notify.Push("Processing still required before results appear", notify.LevelInfo))
		}
		return a, tea.Batch(cmds...)

	case messages.ConversationProcessed:
		a.conversationsView, cmd = a.conversationsView.Update(msg)
		cmds = append(cmds, cmd)
		if msg.Err != nil {
			cmds = append(cmds, notify.Push(msg.Err.Error(), notify.LevelError))
		} else {
			text := fmt.Sprintf("Conversation processed, %d questions analysed", msg.QuestionsProcessed)
			cmds = append(cmds, notify.Push(text, notify.LevelSuccess))
		}
		return a, tea.Batch(cmds...)

	case messages.ShowResults:
		a.selectedConversationID = msg.ConversationID
		a.currentView = messages.ViewResults
		cmds = append(cmds, a.resultsView.ShowConversation(msg.ConversationID))
		return a, tea.Batch(cmds...)

	case messages.ProcessedConversationsLoaded:
		a.resultsView, cmd = a.resultsView.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case messages.ResultsLoaded:
		a.resultsView, cmd = a.resultsView.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)
	}

	cmds = append(cmds, a.forwardToCurrent(msg))
	return a, tea.Batch(cmds...)
}

// selectDomain updates the active domain and announces the change on the
// event bus, which clears any stale lead suggestions.
func (a *App) selectDomain(d domain.Domain) {
	changed := a.selectedDomain == nil || a.selectedDomain.ID != d.ID
	a.selectedDomain = &d
	if changed {
		a.bus.Publish(EventDomainSelected, d)
	}
}

// switchView hydrates the target view before showing it. The domains view
// refetches; questions and conversations reuse the cached selection; the
// results view starts its fan-out over the cached domain list.
func (a *App) switchView(view messages.ViewType) tea.Cmd {
	a.currentView = view

	switch view {
	case messages.ViewDomains:
		return a.domainsView.Reload()
	case messages.ViewQuestions:
		if a.selectedDomain != nil {
			return a.questionsView.SetDomain(*a.selectedDomain)
		}
	case messages.ViewConversations:
		if a.selectedDomain != nil {
			return a.conversationsView.SetDomain(*a.selectedDomain)
		}
	case messages.ViewResults:
		return a.resultsView.SetDomains(a.domains)
	case messages.ViewMenu:
	}
	return nil
}

func (a *App) forwardToCurrent(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewDomains:
		a.domainsView, cmd = a.domainsView.Update(msg)
	case messages.ViewQuestions:
		a.questionsView, cmd = a.questionsView.Update(msg)
	case messages.ViewConversations:
		a.conversationsView, cmd = a.conversationsView.Update(msg)
	case messages.ViewResults:
		a.resultsView, cmd = a.resultsView.Update(msg)
	}
	return cmd
}

func (a *App) domainCreatedNotice(msg messages.DomainCreated) tea.Cmd {
	if msg.Err != nil {
		return notify.Push(msg.Err.Error(), notify.LevelError)
	}
	text := fmt.Sprintf("Domain %q created, %d questions seeded", msg.Name, msg.QuestionsAdded)
	return notify.Push(text, notify.LevelSuccess)
}

// questionAddedNotice maps the discriminated outcome to a notice. The
// backend message strings never appear here; only the enum drives behaviour.
func (a *App) questionAddedNotice(msg messages.QuestionAdded) tea.Cmd {
	if msg.Err != nil {
		return notify.Push(msg.Err.Error(), notify.LevelError)
	}
	switch msg.Outcome {
	case domain.OutcomeDuplicate:
		return notify.Push("A similar question already exists", notify.LevelWarning)
	case domain.OutcomeRejected:
		return notify.Push("That question was not accepted, try rephrasing it", notify.LevelWarning)
	default:
		return notify.Push("Question added", notify.LevelSuccess)
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewDomains:
		body = a.domainsView.View() + a.renderLeads()
	case messages.ViewQuestions:
		body = a.questionsView.View()
	case messages.ViewConversations:
		body = a.conversationsView.View()
	case messages.ViewResults:
		body = a.resultsView.View()
	default:
		body = a.menuView.View()
	}

	if notices := a.notices.View(); notices != "" {
		return notices + "\n" + body
	}
	return body
}

// renderLeads shows the transient lead suggestions under the domains view.
func (a *App) renderLeads() string {
	if len(a.domainLeads) == 0 {
		return ""
	}
	var name string
	for _, d := range a.domains {
		if d.ID == a.leadsDomainID {
			name = d.Name
			break
		}
	}
	header := "Suggested leads"
	if name != "" {
		header = fmt.Sprintf("Suggested leads for %s", name)
	}

	out := "\n\n" + a.styles.Subtitle.Render(header) + "\n"
	for _, lead := range a.domainLeads {
		out += a.styles.Tag.Render("#"+lead) + " "
	}
	return out
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// SelectedDomain returns the active domain, if any.
func (a *App) SelectedDomain() *domain.Domain {
	return a.selectedDomain
}

// Domains returns the cached domain list.
func (a *App) Domains() []domain.Domain {
	return a.domains
}

// Leads returns the transient lead suggestions.
func (a *App) Leads() []string {
	return a.domainLeads
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
}
