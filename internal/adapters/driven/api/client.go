// Package api provides the HTTP backend adapter.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/leadline-labs/leadline-cli/internal/core/domain"
	"github.com/leadline-labs/leadline-cli/internal/core/ports/driven"
	"github.com/leadline-labs/leadline-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.Backend = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 60 * time.Second
)

// Config holds configuration for the backend client.
type Config struct {
	// BaseURL is the backend base URL (default: http://localhost:8000).
	BaseURL string

	// Timeout is the per-request timeout (default: 60s).
	Timeout time.Duration

	// RequestsPerSecond paces outgoing calls. Zero disables pacing.
	RequestsPerSecond float64

	// Burst is the pacing burst size (default: 1 when pacing is on).
	Burst int
}

// Client talks to the extraction backend over its REST API.
type Client struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// NewClient creates a new backend client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		limiter: limiter,
	}
}

// SetBaseURL replaces the backend base URL for subsequent requests. Used by
// the --server flag, which is applied after the client is constructed.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimRight(baseURL, "/")
}

// do sends one request and decodes a 2xx response into out (skipped when out
// is nil). Any non-2xx status becomes a *RequestError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("%s %s", method, path)
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError turns a non-2xx response into a *RequestError, falling back to
// a generic detail when the body carries none.
func decodeError(resp *http.Response) error {
	detail := fmt.Sprintf("request failed with status %d", resp.StatusCode)
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(body) > 0 {
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil && eb.Detail != "" {
			detail = eb.Detail
		}
	}
	return &RequestError{Status: resp.StatusCode, Detail: detail}
}

// ListDomains returns all domains.
func (c *Client) ListDomains(ctx context.Context) ([]domain.Domain, error) {
	var resp domainsResponse
	if err := c.do(ctx, http.MethodGet, "/api/domains", nil, &resp); err != nil {
		return nil, err
	}
	domains := make([]domain.Domain, 0, len(resp.Domains))
	for _, w := range resp.Domains {
		domains = append(domains, w.toDomain())
	}
	return domains, nil
}

// CreateDomain creates a domain with its initial questions and reports how
// many questions the backend accepted.
func (c *Client) CreateDomain(ctx context.Context, name string, questions []string) (int, error) {
	req := createDomainRequest{DomainName: name, Questions: questions}
	var resp createDomainResponse
	if err := c.do(ctx, http.MethodPost, "/api/domains", req, &resp); err != nil {
		return 0, err
	}
	return resp.QuestionsAdded, nil
}

// DeleteDomain deletes a domain and everything under it.
func (c *Client) DeleteDomain(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/domains/"+url.PathEscape(id), nil, nil)
}

// ListQuestions returns the questions of a domain.
func (c *Client) ListQuestions(ctx context.Context, domainID string) ([]domain.Question, error) {
	var resp questionsResponse
	path := "/api/domains/" + url.PathEscape(domainID) + "/questions"
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	questions := make([]domain.Question, 0, len(resp.Questions))
	for _, w := range resp.Questions {
		questions = append(questions, w.toDomain())
	}
	return questions, nil
}

// AddQuestion submits a question and returns the backend's outcome message
// alongside the created question, if any.
func (c *Client) AddQuestion(ctx context.Context, domainID, text string) (string, *domain.Question, error) {
	req := questionRequest{QuestionText: text}
	var resp addQuestionResponse
	path := "/api/domains/" + url.PathEscape(domainID) + "/questions"
	if err := c.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return "", nil, err
	}
	if resp.Question == nil {
		return resp.Message, nil, nil
	}
	q := resp.Question.toDomain()
	return resp.Message, &q, nil
}

// UpdateQuestion replaces a question's text.
func (c *Client) UpdateQuestion(ctx context.Context, id, text string) (*domain.Question, error) {
	req := questionRequest{QuestionText: text}
	var resp updateQuestionResponse
	if err := c.do(ctx, http.MethodPut, "/api/questions/"+url.PathEscape(id), req, &resp); err != nil {
		return nil, err
	}
	q := resp.Question.toDomain()
	return &q, nil
}

// DeleteQuestion deletes a question.
func (c *Client) DeleteQuestion(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/questions/"+url.PathEscape(id), nil, nil)
}

// GenerateLeads asks the backend to propose leads for a domain.
func (c *Client) GenerateLeads(ctx context.Context, domainID string) ([]string, error) {
	var resp leadsResponse
	path := "/api/domains/" + url.PathEscape(domainID) + "/generate-leads"
	if err := c.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Leads, nil
}

// ListConversations returns the conversations uploaded to a domain.
func (c *Client) ListConversations(ctx context.Context, domainID string) ([]domain.Conversation, error) {
	var resp conversationsResponse
	path := "/api/domains/" + url.PathEscape(domainID) + "/conversations"
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	conversations := make([]domain.Conversation, 0, len(resp.Conversations))
	for _, w := range resp.Conversations {
		conversations = append(conversations, w.toDomain())
	}
	return conversations, nil
}

// UploadConversation sends one transcript as a multipart upload and returns
// the backend's status message.
func (c *Client) UploadConversation(ctx context.Context, domainID, filename string, content []byte) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limit wait: %w", err)
		}
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return "", fmt.Errorf("write form file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart body: %w", err)
	}

	path := "/api/domains/" + url.PathEscape(domainID) + "/upload"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	logger.Debug("POST %s (%d bytes)", path, len(content))
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", decodeError(resp)
	}

	var ur uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return ur.Message, nil
}

// ProcessConversation runs extraction over a conversation and reports how
// many questions were analysed.
func (c *Client) ProcessConversation(ctx context.Context, conversationID string) (int, error) {
	var resp processResponse
	path := "/api/conversations/" + url.PathEscape(conversationID) + "/process"
	if err := c.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return 0, err
	}
	return resp.QuestionsProcessed, nil
}

// ConversationResults returns the extraction results of a conversation.
func (c *Client) ConversationResults(ctx context.Context, conversationID string) (*domain.ResultSet, error) {
	var resp resultsResponse
	path := "/api/conversations/" + url.PathEscape(conversationID) + "/results"
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.toDomain(conversationID), nil
}
