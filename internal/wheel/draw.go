// Package wheel implements the weighted prize draw. It is pure with respect
// to its inputs: the caller supplies the prize list and the random source, so
// draws are reproducible in tests.
package wheel

import (
	"errors"

	"github.com/luxemods/economy-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrEmptyCatalog is returned when there are no prizes to draw from.
var ErrEmptyCatalog = errors.New("empty prize catalog")

// RandFunc yields a uniform float64 in [0, 1).
type RandFunc func() float64

// Draw selects one prize from prizes.
//
// A forced prize ID short-circuits the weighted path entirely: if it matches
// an entry in prizes, that entry wins. Otherwise a random value spanning the
// total weight is walked against the prizes in their given order, so the same
// draw value always lands on the same prize. A catalog whose weights sum to
// zero falls back to a uniform pick rather than failing.
func Draw(prizes []*models.Prize, forcedID primitive.ObjectID, random RandFunc) (*models.Prize, error) {
	if len(prizes) == 0 {
		return nil, ErrEmptyCatalog
	}

	if !forcedID.IsZero() {
		for _, p := range prizes {
			if p.ID == forcedID {
				return p, nil
			}
		}
	}

	var totalWeight float64
	for _, p := range prizes {
		if p.Weight > 0 {
			totalWeight += p.Weight
		}
	}

	if totalWeight <= 0 {
		idx := int(random() * float64(len(prizes)))
		if idx >= len(prizes) {
			idx = len(prizes) - 1
		}
		return prizes[idx], nil
	}

	r := random() * totalWeight
	var cumulative float64
	for _, p := range prizes {
		if p.Weight <= 0 {
			continue
		}
		cumulative += p.Weight
		if cumulative > r {
			return p, nil
		}
	}

	// Floating-point accumulation can leave r a hair past the last cumulative
	// weight; the final weighted prize takes it.
	for i := len(prizes) - 1; i >= 0; i-- {
		if prizes[i].Weight > 0 {
			return prizes[i], nil
		}
	}
	return prizes[len(prizes)-1], nil
}
