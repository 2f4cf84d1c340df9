package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LedgerKind classifies a coin movement.
type LedgerKind string

const (
	LedgerKindDailyClaim  LedgerKind = "daily_claim"
	LedgerKindSpinWheel   LedgerKind = "spin_wheel"
	LedgerKindPurchase    LedgerKind = "purchase"
	LedgerKindAdminAdjust LedgerKind = "admin_adjust"
	LedgerKindRefund      LedgerKind = "refund"
)

// ValidLedgerKind reports whether k is one of the known ledger kinds.
func ValidLedgerKind(k LedgerKind) bool {
	switch k {
	case LedgerKindDailyClaim, LedgerKindSpinWheel, LedgerKindPurchase, LedgerKindAdminAdjust, LedgerKindRefund:
		return true
	}
	return false
}

// Balance is the materialized coin balance for an account. It is only ever
// changed together with a LedgerEntry append, so its amount always equals the
// sum of the account's ledger entries.
type Balance struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Account   string             `bson:"account" json:"account"`
	Amount    int64              `bson:"amount" json:"amount"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// LedgerEntry records a single coin movement. Entries are append-only and
// never mutated after creation. Amount is negative for spends.
type LedgerEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Account     string             `bson:"account" json:"account"`
	Amount      int64              `bson:"amount" json:"amount"`
	Kind        LedgerKind         `bson:"kind" json:"kind"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
