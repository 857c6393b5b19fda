// Package results provides the extraction results view for the TUI.
package results

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leadline-labs/leadline-cli/internal/adapters/driving/tui/messages"
	"github.com/leadline-labs/leadline-cli/internal/adapters/driving/tui/render"
	"github.com/leadline-labs/leadline-cli/internal/adapters/driving/tui/styles"
	"github.com/leadline-labs/leadline-cli/internal/core/domain"
	"github.com/leadline-labs/leadline-cli/internal/core/ports/driving"
)

// mode tracks which screen of the results view is showing.
type mode int

const (
	modeSelector mode = iota
	modeDetail
)

// View is the results view: a selector over processed conversations and a
// detail screen for one conversation's extraction results.
type View struct {
	styles        *styles.Styles
	resultService driving.ResultService

	processed []domain.ProcessedConversation
	selected  int
	mode      mode
	loading   bool
	err       error

	// set is nil until a conversation's results have loaded. A loaded but
	// empty set renders differently from a set that never loaded.
	set            *domain.ResultSet
	conversationID string

	fanOutSeq  uint64
	resultsSeq uint64

	width  int
	height int
	ready  bool
}

// NewView creates a new results view.
func NewView(s *styles.Styles, resultService driving.ResultService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:        s,
		resultService: resultService,
	}
}

// Init is a no-op; the fan-out starts when domains are provided.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetDomains starts the processed-conversation fan-out over the given
// domains.
func (v *View) SetDomains(domains []domain.Domain) tea.Cmd {
	v.mode = modeSelector
	v.loading = true
	v.err = nil
	v.fanOutSeq++
	seq := v.fanOutSeq
	return func() tea.Msg {
		if v.resultService == nil {
			return messages.ProcessedConversationsLoaded{Seq: seq}
		}
		processed := v.resultService.ProcessedConversations(context.Background(), domains)
		return messages.ProcessedConversationsLoaded{Seq: seq, Conversations: processed}
	}
}

// ShowConversation jumps straight to the detail screen for one conversation.
func (v *View) ShowConversation(conversationID string) tea.Cmd {
	v.mode = modeDetail
	v.set = nil
	v.conversationID = conversationID
	return v.loadResults(conversationID)
}

func (v *View) loadResults(conversationID string) tea.Cmd {
	v.loading = true
	v.resultsSeq++
	seq := v.resultsSeq
	return func() tea.Msg {
		if v.resultService == nil {
			return messages.ResultsLoaded{Seq: seq, ConversationID: conversationID, Err: fmt.Errorf("result service not available")}
		}
		set, err := v.resultService.Results(context.Background(), conversationID)
		return messages.ResultsLoaded{Seq: seq, ConversationID: conversationID, Set: set, Err: err}
	}
}

// Update handles messages for the results view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.ProcessedConversationsLoaded:
		if msg.Seq != v.fanOutSeq {
			return v, nil
		}
		v.loading = false
		v.processed = msg.Conversations
		if v.selected >= len(v.processed) {
			v.selected = 0
		}
		return v, nil

	case messages.ResultsLoaded:
		if msg.Seq != v.resultsSeq {
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.set = msg.Set
			v.conversationID = msg.ConversationID
			v.err = nil
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.mode == modeDetail {
		switch msg.String() {
		case "esc":
			v.mode = modeSelector
			v.set = nil
			v.err = nil
		}
		return v, nil
	}

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.processed)-1 {
			v.selected++
		}
	case "enter":
		if len(v.processed) > 0 && v.selected < len(v.processed) {
			pc := v.processed[v.selected]
			return v, v.ShowConversation(pc.Conversation.ID)
		}
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

// View renders the results view.
func (v *View) View() string {
	if v.mode == modeDetail {
		return v.renderDetail()
	}
	return v.renderSelector()
}

func (v *View) renderSelector() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Results"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Finding processed conversations..."))
		b.WriteString("\n\n")
	case len(v.processed) == 0:
		b.WriteString(v.styles.Muted.Render("No processed conversations. Upload and process a transcript first."))
		b.WriteString("\n\n")
	default:
		for i, pc := range v.processed {
			cursor := "  "
			style := v.styles.Normal
			if i == v.selected {
				cursor = "> "
				style = v.styles.Selected
			}
			b.WriteString(style.Render(cursor + render.Truncate(pc.Label(), 70)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(v.styles.Help.Render("[enter] view results  [esc] menu"))
	return b.String()
}

func (v *View) renderDetail() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Extraction Results"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading results..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	case v.set == nil:
		b.WriteString(v.styles.Muted.Render("Results not loaded."))
	case len(v.set.Results) == 0:
		b.WriteString(v.renderHeader())
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("No results were extracted from this conversation."))
	default:
		b.WriteString(v.renderHeader())
		b.WriteString("\n")
		for i := range v.set.Results {
			b.WriteString(v.renderResult(&v.set.Results[i]))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[esc] back"))
	return b.String()
}

func (v *View) renderHeader() string {
	header := fmt.Sprintf("%s / %s", v.set.DomainName, v.set.Filename)
	total := fmt.Sprintf("%d results", v.set.Total)
	return v.styles.Subtitle.Render(header) + "  " + v.styles.Muted.Render(total) + "\n"
}

func (v *View) renderResult(r *domain.Result) string {
	var b strings.Builder

	b.WriteString(v.styles.Normal.Render(render.Truncate(r.QuestionText, 70)))
	b.WriteString("\n  ")
	b.WriteString(render.Confidence(v.styles, r.Confidence))
	b.WriteString(" ")
	b.WriteString(v.styles.Normal.Render(render.Truncate(r.Answer, 60)))
	if tags := render.Tags(v.styles, r.Leads); tags != "" {
		b.WriteString("\n  ")
		b.WriteString(tags)
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Processed returns the processed-conversation selector entries.
func (v *View) Processed() []domain.ProcessedConversation {
	return v.processed
}

// Set returns the currently loaded result set, if any.
func (v *View) Set() *domain.ResultSet {
	return v.set
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
