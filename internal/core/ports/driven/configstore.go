package driven

import (
	"github.com/leadline-labs/leadline-cli/internal/core/domain"
)

// ConfigStore persists client configuration between runs.
type ConfigStore interface {
	// Load returns the stored settings, or defaults when none exist.
	Load() (domain.Settings, error)

	// Save persists the settings immediately.
	Save(settings domain.Settings) error
}
