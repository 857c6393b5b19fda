// Package conversations provides the conversation management view for the TUI.
package conversations

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
	modeUpload
)

// View is the conversation list and upload view, scoped to one domain.
type View struct {
	styles              *styles.Styles
	conversationService driving.ConversationService

	domain        *domain.Domain
	conversations []domain.Conversation
	selected      int
	mode          mode
	loading       bool
	processing    bool
	err           error

	loadSeq uint64

	pathInput textinput.Model

	width  int
	height int
	ready  bool
}

// NewView creates a new conversations view.
func NewView(s *styles.Styles, conversationService driving.ConversationService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:              s,
		conversationService: conversationService,
	}
}

// Init is a no-op; loading happens once a domain is set.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetDomain scopes the view to a domain and loads its conversations.
func (v *View) SetDomain(d domain.Domain) tea.Cmd {
	v.domain = &d
	v.conversations = nil
	v.selected = 0
	v.mode = modeList
	v.err = nil
	return v.Reload()
}

// Reload starts a fresh stamped load of the conversation list.
func (v *View) Reload() tea.Cmd {
	if v.domain == nil {
		return nil
	}
	v.loading = true
	v.loadSeq++
	seq := v.loadSeq
	domainID := v.domain.ID
	return func() tea.Msg {
		if v.conversationService == nil {
			return messages.ConversationsLoaded{Seq: seq, DomainID: domainID, Err: fmt.Errorf("conversation service not available")}
		}
		conversations, err := v.conversationService.List(context.Background(), domainID)
		return messages.ConversationsLoaded{Seq: seq, DomainID: domainID, Conversations: conversations, Err: err}
	}
}

// Update handles messages for the conversations view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.ConversationsLoaded:
		if msg.Seq != v.loadSeq {
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.conversations = msg.Conversations
			v.err = nil
			if v.selected >= len(v.conversations) {
				v.selected = 0
			}
		}
		return v, nil

	case messages.ConversationUploaded:
		if msg.Err != nil {
			return v, nil
		}
		v.mode = modeList
		return v, v.Reload()

	case messages.ConversationProcessed:
		v.processing = false
		if msg.Err != nil {
			return v, nil
		}
		return v, v.Reload()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.mode == modeUpload {
		return v.handleUploadKeys(msg)
	}

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.conversations)-1 {
			v.selected++
		}
	case "enter":
		// Two-state action: process pending conversations, inspect
		// processed ones
		if c, ok := v.current(); ok {
			if c.Processed {
				return v, func() tea.Msg {
					return messages.ShowResults{ConversationID: c.ID}
				}
			}
			return v, v.process(c.ID)
		}
	case "u":
		v.openUploadForm()
	case "r":
		return v, v.Reload()
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewDomains}
		}
	}

	return v, nil
}

func (v *View) handleUploadKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.mode = modeList
		return v, nil

	case "enter":
		return v, v.submitUpload()
	}

	var cmd tea.Cmd
	v.pathInput, cmd = v.pathInput.Update(msg)
	return v, cmd
}

func (v *View) openUploadForm() {
	in := textinput.New()
	in.Placeholder = "/path/to/transcript.txt"
	in.CharLimit = 500
	in.Focus()
	v.pathInput = in
	v.mode = modeUpload
}

func (v *View) submitUpload() tea.Cmd {
	if v.domain == nil {
		return nil
	}
	domainID := v.domain.ID
	path := v.pathInput.Value()
	return func() tea.Msg {
		if v.conversationService == nil {
			return messages.ConversationUploaded{Err: fmt.Errorf("conversation service not available")}
		}
		message, err := v.conversationService.Upload(context.Background(), domainID, path)
		return messages.ConversationUploaded{Message: message, Err: err}
	}
}

func (v *View) process(conversationID string) tea.Cmd {
	v.processing = true
	return func() tea.Msg {
		if v.conversationService == nil {
			return messages.ConversationProcessed{ConversationID: conversationID, Err: fmt.Errorf("conversation service not available")}
		}
		count, err := v.conversationService.Process(context.Background(), conversationID)
		return messages.ConversationProcessed{ConversationID: conversationID, QuestionsProcessed: count, Err: err}
	}
}

func (v *View) current() (domain.Conversation, bool) {
	if len(v.conversations) == 0 || v.selected >= len(v.conversations) {
		return domain.Conversation{}, false
	}
	return v.conversations[v.selected], true
}

// View renders the conversations view.
func (v *View) View() string {
	var b strings.Builder

	title := "Conversations"
	if v.domain != nil {
		title = fmt.Sprintf("Conversations - %s", v.domain.Name)
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	if v.domain == nil {
		b.WriteString(v.styles.Muted.Render("Select a domain first (Domains view, [enter])."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back"))
		return b.String()
	}

	if v.mode == modeUpload {
		b.WriteString(v.styles.Subtitle.Render("Upload transcript"))
		b.WriteString("\n")
		b.WriteString(v.pathInput.View())
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[enter] upload  [esc] cancel"))
		return b.String()
	}

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading conversations..."))
		b.WriteString("\n\n")
	case v.processing:
		b.WriteString(v.styles.Muted.Render("Processing..."))
		b.WriteString("\n\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	case len(v.conversations) == 0:
		b.WriteString(v.styles.Muted.Render("No conversations yet. Press [u] to upload a transcript."))
		b.WriteString("\n\n")
	default:
		for i := range v.conversations {
			b.WriteString(v.renderConversation(i, &v.conversations[i]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(v.renderHelp())
	return b.String()
}

func (v *View) renderConversation(index int, c *domain.Conversation) string {
	cursor := "  "
	if index == v.selected {
		cursor = "> "
	}

	status := v.styles.Warning.Render(c.StatusLabel())
	if c.Processed {
		status = v.styles.Success.Render(fmt.Sprintf("%s (%d results)", c.StatusLabel(), c.ResultCount))
	}

	name := render.Truncate(c.Filename, 40)
	line := fmt.Sprintf("%s%-42s %s", cursor, name, status)
	if index == v.selected {
		line = v.styles.Selected.Render(fmt.Sprintf("%s%-42s ", cursor, name)) + status
	}

	if preview := strings.TrimSpace(c.ContentPreview); preview != "" {
		line += "\n    " + v.styles.Muted.Render(render.Truncate(preview, 70))
	}
	return line
}

func (v *View) renderHelp() string {
	action := "[enter] process/results"
	return v.styles.Help.Render(fmt.Sprintf("[u] upload  %s  [r] reload  [esc] domains", action))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Conversations returns the current conversation list.
func (v *View) Conversations() []domain.Conversation {
	return v.conversations
}

// Domain returns the domain this view is scoped to.
func (v *View) Domain() *domain.Domain {
	return v.domain
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
