package mongodb

import (
	"errors"
	"fmt"

	"github.com/luxemods/economy-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// wrapErr maps driver errors onto the store error taxonomy. Missing documents
// become ErrNotFound; anything else is treated as a transient infrastructure
// failure so callers can distinguish it from domain outcomes.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repositories.ErrNotFound
	}
	return fmt.Errorf("%w: %v", repositories.ErrUnavailable, err)
}
