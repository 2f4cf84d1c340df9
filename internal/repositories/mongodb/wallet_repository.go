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

// Compile-time check to ensure WalletRepository implements the interface
var _ repositories.WalletRepository = (*WalletRepository)(nil)

// WalletRepository handles MongoDB operations for balances and ledger entries.
// Both collections are written inside one session transaction so the
// materialized balance always equals the sum of the account's entries.
type WalletRepository struct {
	client   *mongo.Client
	balances *mongo.Collection
	entries  *mongo.Collection
}

// NewWalletRepository creates a new WalletRepository
func NewWalletRepository(db *mongo.Database) *WalletRepository {
	return &WalletRepository{
		client:   db.Client(),
		balances: db.Collection("balances"),
		entries:  db.Collection("ledger_entries"),
	}
}

// Credit appends a positive ledger entry and increments the balance.
func (r *WalletRepository) Credit(ctx context.Context, account string, amount int64, kind models.LedgerKind, description string) (*models.LedgerEntry, error) {
	entry := &models.LedgerEntry{
		ID:          primitive.NewObjectID(),
		Account:     account,
		Amount:      amount,
		Kind:        kind,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	err := r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		filter := bson.M{"account": account}
		update := bson.M{
			"$inc": bson.M{"amount": amount},
			"$set": bson.M{"updatedAt": entry.CreatedAt},
			"$setOnInsert": bson.M{"account": account},
		}
		opts := options.Update().SetUpsert(true)
		if _, err := r.balances.UpdateOne(sc, filter, update, opts); err != nil {
			return err
		}
		_, err := r.entries.InsertOne(sc, entry)
		return err
	})
	if err != nil {
		return nil, wrapErr(err)
	}
	return entry, nil
}

// Debit appends a negative ledger entry and decrements the balance. The
// conditional update on `amount >= n` makes the check and the decrement one
// atomic operation, so concurrent debits cannot drive the balance negative.
func (r *WalletRepository) Debit(ctx context.Context, account string, amount int64, kind models.LedgerKind, description string) (*models.LedgerEntry, error) {
	entry := &models.LedgerEntry{
		ID:          primitive.NewObjectID(),
		Account:     account,
		Amount:      -amount,
		Kind:        kind,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	err := r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		filter := bson.M{"account": account, "amount": bson.M{"$gte": amount}}
		update := bson.M{
			"$inc": bson.M{"amount": -amount},
			"$set": bson.M{"updatedAt": entry.CreatedAt},
		}
		res := r.balances.FindOneAndUpdate(sc, filter, update)
		if err := res.Err(); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return r.debitFailure(sc, account)
			}
			return err
		}
		_, err := r.entries.InsertOne(sc, entry)
		return err
	})
	if err != nil {
		if errors.Is(err, repositories.ErrInsufficientFunds) || errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, err
		}
		return nil, wrapErr(err)
	}
	return entry, nil
}

// debitFailure distinguishes a missing account from a too-small balance after
// a conditional debit matched nothing.
func (r *WalletRepository) debitFailure(sc mongo.SessionContext, account string) error {
	err := r.balances.FindOne(sc, bson.M{"account": account}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repositories.ErrAccountNotFound
	}
	if err != nil {
		return err
	}
	return repositories.ErrInsufficientFunds
}

// GetBalance returns the current balance, 0 for unknown accounts.
func (r *WalletRepository) GetBalance(ctx context.Context, account string) (int64, error) {
	var balance models.Balance
	err := r.balances.FindOne(ctx, bson.M{"account": account}).Decode(&balance)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, wrapErr(err)
	}
	return balance.Amount, nil
}

// FindEntriesByAccount returns ledger entries newest first.
func (r *WalletRepository) FindEntriesByAccount(ctx context.Context, account string, page, limit int) ([]*models.LedgerEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	cursor, err := r.entries.Find(ctx, bson.M{"account": account}, opts)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer cursor.Close(ctx)

	var entries []*models.LedgerEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, wrapErr(err)
	}
	if entries == nil {
		entries = []*models.LedgerEntry{}
	}
	return entries, nil
}

func (r *WalletRepository) withTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
