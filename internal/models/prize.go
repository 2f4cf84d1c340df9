package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrizeType is the closed set of prize payout kinds. Reward crediting
// switches exhaustively over this set.
type PrizeType string

const (
	PrizeTypeCoins    PrizeType = "coins"
	PrizeTypeTicket   PrizeType = "ticket"
	PrizeTypeCosmetic PrizeType = "cosmetic"
)

// ValidPrizeType reports whether t is a known prize type.
func ValidPrizeType(t PrizeType) bool {
	switch t {
	case PrizeTypeCoins, PrizeTypeTicket, PrizeTypeCosmetic:
		return true
	}
	return false
}

// Prize is one entry on the wheel. Weight 0 means the prize is never drawn
// by the weighted path but can still be forced by an admin override.
type Prize struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Type      PrizeType          `bson:"type" json:"type"`
	Value     int64              `bson:"value" json:"value"`
	Weight    float64            `bson:"weight" json:"weight"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// WheelSettings is the singleton wheel configuration managed by admins.
type WheelSettings struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SpinCost       int64              `bson:"spinCost" json:"spinCost"`
	DailySpinCount int                `bson:"dailySpinCount" json:"dailySpinCount"`
	Enabled        bool               `bson:"enabled" json:"enabled"`
	UpdatedBy      string             `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DefaultWheelSettings returns the settings used before an admin has saved any.
func DefaultWheelSettings() *WheelSettings {
	return &WheelSettings{
		SpinCost:       0,
		DailySpinCount: 1,
		Enabled:        true,
	}
}
