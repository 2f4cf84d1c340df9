package memory

import (
	"context"
	"sync"
	"time"

	"github.com/luxemods/economy-backend/internal/models"
	"github.com/luxemods/economy-backend/internal/repositories"
)

// Compile-time check to ensure WheelSettingsRepository implements the interface
var _ repositories.WheelSettingsRepository = (*WheelSettingsRepository)(nil)

// WheelSettingsRepository is the in-memory singleton settings store
type WheelSettingsRepository struct {
	mu       sync.Mutex
	settings *models.WheelSettings
}

// NewWheelSettingsRepository creates a settings store holding the defaults
func NewWheelSettingsRepository() *WheelSettingsRepository {
	return &WheelSettingsRepository{}
}

// GetSettings returns the stored settings, or defaults when none were saved
func (r *WheelSettingsRepository) GetSettings(_ context.Context) (*models.WheelSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.settings == nil {
		return models.DefaultWheelSettings(), nil
	}
	found := *r.settings
	return &found, nil
}

// UpdateSettings replaces the stored settings
func (r *WheelSettingsRepository) UpdateSettings(_ context.Context, settings *models.WheelSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings.UpdatedAt = time.Now().UTC()
	stored := *settings
	r.settings = &stored
	return nil
}
