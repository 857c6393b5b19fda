package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/leadline-labs/leadline-cli/internal/core/domain"
	"github.com/leadline-labs/leadline-cli/internal/core/ports/driven"
	"github.com/leadline-labs/leadline-cli/internal/core/ports/driving"
	"github.com/leadline-labs/leadline-cli/internal/logger"
)

// Ensure DomainService implements the interface.
var _ driving.DomainService = (*DomainService)(nil)

// DomainService manages the domain collection through the backend.
type DomainService struct {
	backend driven.Backend
}

// NewDomainService creates a new domain service.
func NewDomainService(backend driven.Backend) *DomainService {
	return &DomainService{backend: backend}
}

// List returns all domains from the backend.
func (s *DomainService) List(ctx context.Context) ([]domain.Domain, error) {
	domains, err := s.backend.ListDomains(ctx)
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	logger.Debug("loaded %d domains", len(domains))
	return domains, nil
}

// Create creates a domain seeded with initial questions. The name must be
// non-blank; blank question lines are dropped before submission.
func (s *DomainService) Create(ctx context.Context, name string, initialQuestions []string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, domain.ErrEmptyDomainName
	}

	questions := make([]string, 0, len(initialQuestions))
	for _, q := range initialQuestions {
		q = strings.TrimSpace(q)
		if q != "" {
			questions = append(questions, q)
		}
	}

	added, err := s.backend.CreateDomain(ctx, name, questions)
	if err != nil {
		return 0, fmt.Errorf("create domain %q: %w", name, err)
	}
	return added, nil
}

// Delete deletes a domain. Confirmation is the caller's responsibility;
// the backend cascades deletion to dependent entities.
func (s *DomainService) Delete(ctx context.Context, id string) error {
	if err := s.backend.DeleteDomain(ctx, id); err != nil {
		return fmt.Errorf("delete domain: %w", err)
	}
	return nil
}

// GenerateLeads produces an ephemeral lead set for a domain.
func (s *DomainService) GenerateLeads(ctx context.Context, domainID string) ([]string, error) {
	if domainID == "" {
		return nil, domain.ErrNoDomainSelected
	}
	leads, err := s.backend.GenerateLeads(ctx, domainID)
	if err != nil {
		return nil, fmt.Errorf("generate leads: %w", err)
	}
	return leads, nil
}
