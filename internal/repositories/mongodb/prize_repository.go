package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/luxemods/economy-backend/internal/models"
	"github.com/luxemods/economy-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure PrizeRepository implements the interface
var _ repositories.PrizeRepository = (*PrizeRepository)(nil)

// PrizeRepository handles MongoDB operations for the prize catalog
type PrizeRepository struct {
	collection *mongo.Collection
}

// NewPrizeRepository creates a new PrizeRepository
func NewPrizeRepository(db *mongo.Database) *PrizeRepository {
	return &PrizeRepository{
		collection: db.Collection("prizes"),
	}
}

// Create inserts a new prize
func (r *PrizeRepository) Create(ctx context.Context, prize *models.Prize) error {
	prize.ID = primitive.NewObjectID()
	prize.CreatedAt = time.Now().UTC()
	prize.UpdatedAt = prize.CreatedAt
	_, err := r.collection.InsertOne(ctx, prize)
	return wrapErr(err)
}

// FindByID finds a prize by ID
func (r *PrizeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Prize, error) {
	var prize models.Prize
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&prize)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return &prize, nil
}

// FindActive retrieves active prizes in insertion order. The order is the
// catalog order the draw walks, so it must be stable between calls.
func (r *PrizeRepository) FindActive(ctx context.Context) ([]*models.Prize, error) {
	return r.find(ctx, bson.M{"active": true})
}

// FindAll retrieves every prize in insertion order
func (r *PrizeRepository) FindAll(ctx context.Context) ([]*models.Prize, error) {
	return r.find(ctx, bson.M{})
}

func (r *PrizeRepository) find(ctx context.Context, filter bson.M) ([]*models.Prize, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer cursor.Close(ctx)

	var prizes []*models.Prize
	if err = cursor.All(ctx, &prizes); err != nil {
		return nil, wrapErr(err)
	}
	if prizes == nil {
		prizes = []*models.Prize{}
	}
	return prizes, nil
}

// Update updates an existing prize
func (r *PrizeRepository) Update(ctx context.Context, prize *models.Prize) error {
	prize.UpdatedAt = time.Now().UTC()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": prize.ID}, bson.M{"$set": prize})
	if err != nil {
		return wrapErr(err)
	}
	if res.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// Delete deletes a prize by ID
func (r *PrizeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return wrapErr(err)
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
