package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/leadline-labs/leadline-cli/internal/core/domain"
)

// wireID accepts the backend's numeric identifiers but carries them as
// strings, which is what the client uses to build request paths.
type wireID string

func (id *wireID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = wireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id is neither string nor number: %w", err)
	}
	*id = wireID(n.String())
	return nil
}

// wireTime tolerates both RFC 3339 timestamps and the zone-less format the
// backend emits for naive datetimes.
type wireTime time.Time

func (t *wireTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = wireTime(time.Time{})
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		parsed, err = time.Parse("2006-01-02T15:04:05", s)
	}
	if err != nil {
		return fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	*t = wireTime(parsed)
	return nil
}

func (t wireTime) Time() time.Time { return time.Time(t) }

// Wire representations of the backend's payloads.

type wireDomain struct {
	ID            wireID   `json:"id"`
	DomainName    string   `json:"domain_name"`
	QuestionCount int      `json:"question_count"`
	CreatedAt     wireTime `json:"created_at"`
}

func (w wireDomain) toDomain() domain.Domain {
	return domain.Domain{
		ID:            string(w.ID),
		Name:          w.DomainName,
		QuestionCount: w.QuestionCount,
		CreatedAt:     w.CreatedAt.Time(),
	}
}

type wireQuestion struct {
	ID           wireID   `json:"id"`
	DomainID     wireID   `json:"domain_id"`
	QuestionText string   `json:"question_text"`
	QuestionLead []string `json:"question_lead"`
	CreatedAt    wireTime `json:"created_at"`
}

func (w wireQuestion) toDomain() domain.Question {
	return domain.Question{
		ID:        string(w.ID),
		DomainID:  string(w.DomainID),
		Text:      w.QuestionText,
		Leads:     w.QuestionLead,
		CreatedAt: w.CreatedAt.Time(),
	}
}

type wireConversation struct {
	ConversationID wireID   `json:"conversation_id"`
	DomainID       wireID   `json:"domain_id"`
	Filename       string   `json:"filename"`
	ContentPreview string   `json:"content_preview"`
	Processed      bool     `json:"processed"`
	ResultCount    int      `json:"result_count"`
	CreatedAt      wireTime `json:"created_at"`
}

func (w wireConversation) toDomain() domain.Conversation {
	return domain.Conversation{
		ID:             string(w.ConversationID),
		DomainID:       string(w.DomainID),
		Filename:       w.Filename,
		ContentPreview: w.ContentPreview,
		Processed:      w.Processed,
		ResultCount:    w.ResultCount,
		CreatedAt:      w.CreatedAt.Time(),
	}
}

type wireResult struct {
	QuestionText string   `json:"question_text"`
	Answer       string   `json:"answer"`
	Confidence   float64  `json:"confidence"`
	Leads        []string `json:"leads"`
	CreatedAt    wireTime `json:"created_at"`
}

// Response envelopes.

type domainsResponse struct {
	Domains []wireDomain `json:"domains"`
}

type createDomainRequest struct {
	DomainName string   `json:"domain_name"`
	Questions  []string `json:"questions"`
}

type createDomainResponse struct {
	QuestionsAdded int `json:"questions_added"`
}

type questionsResponse struct {
	Questions []wireQuestion `json:"questions"`
}

type questionRequest struct {
	QuestionText string `json:"question_text"`
}

type addQuestionResponse struct {
	Message  string        `json:"message"`
	Question *wireQuestion `json:"question"`
}

type updateQuestionResponse struct {
	Question wireQuestion `json:"question"`
}

type leadsResponse struct {
	Leads []string `json:"leads"`
}

type conversationsResponse struct {
	Conversations []wireConversation `json:"conversations"`
}

type uploadResponse struct {
	Message string `json:"message"`
}

type processResponse struct {
	QuestionsProcessed int `json:"questions_processed"`
}

type resultsResponse struct {
	DomainName   string       `json:"domain_name"`
	Filename     string       `json:"filename"`
	TotalResults int          `json:"total_results"`
	Results      []wireResult `json:"results"`
}

func (r resultsResponse) toDomain(conversationID string) *domain.ResultSet {
	set := &domain.ResultSet{
		DomainName: r.DomainName,
		Filename:   r.Filename,
		Total:      r.TotalResults,
		Results:    make([]domain.Result, 0, len(r.Results)),
	}
	for _, w := range r.Results {
		set.Results = append(set.Results, domain.Result{
			ConversationID: conversationID,
			QuestionText:   w.QuestionText,
			Answer:         w.Answer,
			Confidence:     w.Confidence,
			Leads:          w.Leads,
			CreatedAt:      w.CreatedAt.Time(),
		})
	}
	return set
}
