package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/leadline-labs/leadline-cli/internal/core/domain"
	"github.com/leadline-labs/leadline-cli/internal/core/ports/driven"
	"github.com/leadline-labs/leadline-cli/internal/core/ports/driving"
	"github.com/leadline-labs/leadline-cli/internal/logger"
)

// Ensure ResultService implements the interface.
var _ driving.ResultService = (*ResultService)(nil)

// fanOutWorkers caps how many per-domain conversation fetches run at once
// while building the processed-conversation list.
const fanOutWorkers = 4

// ResultService reads extraction results through the backend.
type ResultService struct {
	backend driven.Backend
}

// NewResultService creates a new result service.
func NewResultService(backend driven.Backend) *ResultService {
	return &ResultService{backend: backend}
}

// ProcessedConversations fetches each domain's conversations and flattens
// the processed ones into (domain name, conversation) pairs. Fetches run
// concurrently up to fanOutWorkers, but the flattened list preserves the
// given domain order and the backend's order within each domain. A domain
// whose fetch fails is skipped and logged rather than failing the whole
// selector.
func (s *ResultService) ProcessedConversations(ctx context.Context, domains []domain.Domain) []domain.ProcessedConversation {
	perDomain := make([][]domain.ProcessedConversation, len(domains))

	var wg sync.WaitGroup
	sem := make(chan struct{}, fanOutWorkers)
	for i := range domains {
		wg.Add(1)
		go func(i int, d domain.Domain) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			conversations, err := s.backend.ListConversations(ctx, d.ID)
			if err != nil {
				logger.Error("load conversations for domain %q: %v", d.Name, err)
				return
			}
			for _, c := range conversations {
				if !c.Processed {
					continue
				}
				perDomain[i] = append(perDomain[i], domain.ProcessedConversation{
					DomainID:     d.ID,
					DomainName:   d.Name,
					Conversation: c,
				})
			}
		}(i, domains[i])
	}
	wg.Wait()

	var flat []domain.ProcessedConversation
	for _, pcs := range perDomain {
		flat = append(flat, pcs...)
	}
	return flat
}

// Results returns the result set of one conversation. The backend's order
// is preserved; results are never re-sorted client-side.
func (s *ResultService) Results(ctx context.Context, conversationID string) (*domain.ResultSet, error) {
	set, err := s.backend.ConversationResults(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	return set, nil
}
