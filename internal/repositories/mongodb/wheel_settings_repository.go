package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/luxemods/economy-backend/internal/models"
	"github.com/luxemods/economy-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure WheelSettingsRepository implements the interface
var _ repositories.WheelSettingsRepository = (*WheelSettingsRepository)(nil)

// WheelSettingsRepository handles MongoDB operations for the singleton wheel
// settings document.
type WheelSettingsRepository struct {
	collection *mongo.Collection
}

// NewWheelSettingsRepository creates a new WheelSettingsRepository
func NewWheelSettingsRepository(db *mongo.Database) *WheelSettingsRepository {
	return &WheelSettingsRepository{
		collection: db.Collection("wheel_settings"),
	}
}

// GetSettings retrieves the current settings, falling back to defaults when
// no admin has saved any yet.
func (r *WheelSettingsRepository) GetSettings(ctx context.Context) (*models.WheelSettings, error) {
	var settings models.WheelSettings
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.DefaultWheelSettings(), nil
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return &settings, nil
}

// UpdateSettings upserts the settings document
func (r *WheelSettingsRepository) UpdateSettings(ctx context.Context, settings *models.WheelSettings) error {
	settings.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"spinCost":       settings.SpinCost,
		"dailySpinCount": settings.DailySpinCount,
		"enabled":        settings.Enabled,
		"updatedBy":      settings.UpdatedBy,
		"updatedAt":      settings.UpdatedAt,
	}}
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, bson.M{}, update, opts)
	return wrapErr(err)
}
