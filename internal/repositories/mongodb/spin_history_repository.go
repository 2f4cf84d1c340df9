package mongodb

import (
	"context"
	"time"

	"github.com/luxemods/economy-backend/internal/models"
	"github.com/luxemods/economy-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure SpinHistoryRepository implements the interface
var _ repositories.SpinHistoryRepository = (*SpinHistoryRepository)(nil)

// SpinHistoryRepository handles MongoDB operations for the spin audit log
type SpinHistoryRepository struct {
	collection *mongo.Collection
}

// NewSpinHistoryRepository creates a new SpinHistoryRepository
func NewSpinHistoryRepository(db *mongo.Database) *SpinHistoryRepository {
	return &SpinHistoryRepository{
		collection: db.Collection("spin_history"),
	}
}

// Create appends a spin history record
func (r *SpinHistoryRepository) Create(ctx context.Context, record *models.SpinHistoryRecord) error {
	record.ID = primitive.NewObjectID()
	record.CreatedAt = time.Now().UTC()
	_, err := r.collection.InsertOne(ctx, record)
	return wrapErr(err)
}

// FindByAccount returns spin history newest first
func (r *SpinHistoryRepository) FindByAccount(ctx context.Context, account string, page, limit int) ([]*models.SpinHistoryRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, bson.M{"account": account}, opts)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer cursor.Close(ctx)

	var records []*models.SpinHistoryRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, wrapErr(err)
	}
	if records == nil {
		records = []*models.SpinHistoryRecord{}
	}
	return records, nil
}

// CountByAccount returns the number of spins recorded for an account
func (r *SpinHistoryRepository) CountByAccount(ctx context.Context, account string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"account": account})
	if err != nil {
		return 0, wrapErr(err)
	}
	return count, nil
}
