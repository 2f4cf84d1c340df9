package wheel

import (
	"errors"
	"testing"

	"github.com/luxemods/economy-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func catalog(weights ...float64) []*models.Prize {
	prizes := make([]*models.Prize, 0, len(weights))
	for i, w := range weights {
		prizes = append(prizes, &models.Prize{
			ID:     primitive.NewObjectID(),
			Name:   string(rune('A' + i)),
			Type:   models.PrizeTypeCoins,
			Value:  100,
			Weight: w,
			Active: true,
		})
	}
	return prizes
}

// pinned returns a RandFunc that makes the weighted draw land on value r
// within a catalog of the given total weight.
func pinned(r, total float64) RandFunc {
	return func() float64 { return r / total }
}

func TestDraw_EmptyCatalog(t *testing.T) {
	_, err := Draw(nil, primitive.NilObjectID, func() float64 { return 0 })
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDraw_WeightedSelection(t *testing.T) {
	prizes := catalog(1, 1, 2)

	tests := []struct {
		name string
		r    float64
		want int // index into prizes
	}{
		{name: "first band", r: 0.5, want: 0},
		{name: "second band", r: 1.5, want: 1},
		{name: "third band low", r: 2.5, want: 2},
		{name: "third band high", r: 3.5, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Draw(prizes, primitive.NilObjectID, pinned(tt.r, 4))
			if err != nil {
				t.Fatalf("Draw failed: %v", err)
			}
			if got.ID != prizes[tt.want].ID {
				t.Fatalf("unexpected prize: got=%s want=%s", got.Name, prizes[tt.want].Name)
			}
		})
	}
}

func TestDraw_SkipsZeroWeightPrizes(t *testing.T) {
	prizes := catalog(0, 1, 0, 1)

	got, err := Draw(prizes, primitive.NilObjectID, pinned(0.5, 2))
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if got.ID != prizes[1].ID {
		t.Fatalf("zero-weight prize should be unreachable, got %s", got.Name)
	}

	got, err = Draw(prizes, primitive.NilObjectID, pinned(1.5, 2))
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if got.ID != prizes[3].ID {
		t.Fatalf("unexpected prize: got=%s want=%s", got.Name, prizes[3].Name)
	}
}

func TestDraw_UniformFallback(t *testing.T) {
	prizes := catalog(0, 0, 0)

	tests := []struct {
		r    float64
		want int
	}{
		{r: 0.0, want: 0},
		{r: 0.4, want: 1},
		{r: 0.9, want: 2},
	}

	for _, tt := range tests {
		got, err := Draw(prizes, primitive.NilObjectID, func() float64 { return tt.r })
		if err != nil {
			t.Fatalf("all-zero-weight catalog must still draw, got error: %v", err)
		}
		if got.ID != prizes[tt.want].ID {
			t.Fatalf("unexpected prize at r=%.1f: got=%s want=%s", tt.r, got.Name, prizes[tt.want].Name)
		}
	}
}

func TestDraw_ForcedOverride(t *testing.T) {
	prizes := catalog(1, 1, 2)

	// Forced prize wins regardless of the random value, even at weight 0.
	prizes[0].Weight = 0
	got, err := Draw(prizes, prizes[0].ID, pinned(3.5, 4))
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if got.ID != prizes[0].ID {
		t.Fatalf("forced prize should win, got %s", got.Name)
	}
}

func TestDraw_ForcedIDNotInCatalog(t *testing.T) {
	prizes := catalog(1, 1, 2)

	got, err := Draw(prizes, primitive.NewObjectID(), pinned(0.5, 4))
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if got.ID != prizes[0].ID {
		t.Fatalf("unknown forced ID should fall back to weighted draw, got %s", got.Name)
	}
}

func TestDraw_RoundingLandsOnLastWeighted(t *testing.T) {
	prizes := catalog(1, 1, 0)

	// A random value at the very top of the range must still select a
	// weighted prize.
	got, err := Draw(prizes, primitive.NilObjectID, func() float64 { return 0.9999999999999999 })
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if got.Weight <= 0 {
		t.Fatalf("draw landed on zero-weight prize %s", got.Name)
	}
}
