package services

import (
	"context"
	"fmt"

	"github.com/luxemods/economy-backend/internal/models"
	"github.com/luxemods/economy-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure PrizeServiceImpl implements PrizeService
var _ PrizeService = (*PrizeServiceImpl)(nil)

// PrizeServiceImpl manages the prize catalog and wheel settings
type PrizeServiceImpl struct {
	prizeRepo    repositories.PrizeRepository
	settingsRepo repositories.WheelSettingsRepository
}

// NewPrizeService creates a new PrizeServiceImpl
func NewPrizeService(prizeRepo repositories.PrizeRepository, settingsRepo repositories.WheelSettingsRepository) *PrizeServiceImpl {
	return &PrizeServiceImpl{
		prizeRepo:    prizeRepo,
		settingsRepo: settingsRepo,
	}
}

// CreatePrize validates and inserts a new prize
func (s *PrizeServiceImpl) CreatePrize(ctx context.Context, prize *models.Prize) error {
	if err := validatePrize(prize); err != nil {
		return err
	}
	if err := s.prizeRepo.Create(ctx, prize); err != nil {
		return fmt.Errorf("failed to create prize: %w", err)
	}
	slog.Info("Prize created", "prizeId", prize.ID.Hex(), "name", prize.Name, "type", prize.Type, "weight", prize.Weight)
	return nil
}

// UpdatePrize validates and updates an existing prize
func (s *PrizeServiceImpl) UpdatePrize(ctx context.Context, prize *models.Prize) error {
	if prize.ID.IsZero() {
		return fmt.Errorf("%w: prize id is required", ErrInvalidInput)
	}
	if err := validatePrize(prize); err != nil {
		return err
	}
	if err := s.prizeRepo.Update(ctx, prize); err != nil {
		return fmt.Errorf("failed to update prize: %w", err)
	}
	slog.Info("Prize updated", "prizeId", prize.ID.Hex(), "name", prize.Name)
	return nil
}

// DeletePrize removes a prize from the catalog
func (s *PrizeServiceImpl) DeletePrize(ctx context.Context, id primitive.ObjectID) error {
	if err := s.prizeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete prize: %w", err)
	}
	slog.Info("Prize deleted", "prizeId", id.Hex())
	return nil
}

// ListPrizes returns the full catalog, active or not
func (s *PrizeServiceImpl) ListPrizes(ctx context.Context) ([]*models.Prize, error) {
	return s.prizeRepo.FindAll(ctx)
}

// GetSettings retrieves the wheel settings
func (s *PrizeServiceImpl) GetSettings(ctx context.Context) (*models.WheelSettings, error) {
	return s.settingsRepo.GetSettings(ctx)
}

// UpdateSettings validates and stores the wheel settings
func (s *PrizeServiceImpl) UpdateSettings(ctx context.Context, settings *models.WheelSettings) error {
	if settings.SpinCost < 0 {
		return fmt.Errorf("%w: spin cost cannot be negative", ErrInvalidInput)
	}
	if settings.DailySpinCount < 0 {
		return fmt.Errorf("%w: daily spin count cannot be negative", ErrInvalidInput)
	}
	if err := s.settingsRepo.UpdateSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	slog.Info("Wheel settings updated", "enabled", settings.Enabled, "spinCost", settings.SpinCost, "updatedBy", settings.UpdatedBy)
	return nil
}

func validatePrize(prize *models.Prize) error {
	if prize.Name == "" {
		return fmt.Errorf("%w: prize name is required", ErrInvalidInput)
	}
	if !models.ValidPrizeType(prize.Type) {
		return fmt.Errorf("%w: unknown prize type %q", ErrInvalidInput, prize.Type)
	}
	if prize.Weight < 0 {
		return fmt.Errorf("%w: weight cannot be negative", ErrInvalidInput)
	}
	if prize.Value < 0 {
		return fmt.Errorf("%w: value cannot be negative", ErrInvalidInput)
	}
	return nil
}
