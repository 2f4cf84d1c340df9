package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/luxemods/economy-backend/internal/models"
	"github.com/luxemods/economy-backend/internal/repositories"
	"github.com/luxemods/economy-backend/internal/repositories/memory"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type eligibilityFixture struct {
	svc         *EligibilityServiceImpl
	eligibility *memory.EligibilityRepository
	tickets     *memory.TicketRepository
	prizes      *memory.PrizeRepository
}

func newEligibilityFixture() *eligibilityFixture {
	f := &eligibilityFixture{
		eligibility: memory.NewEligibilityRepository(),
		tickets:     memory.NewTicketRepository(),
		prizes:      memory.NewPrizeRepository(),
	}
	f.svc = NewEligibilityService(f.eligibility, f.tickets, f.prizes)
	return f
}

func TestGrantBonusSpins_CreditsTickets(t *testing.T) {
	f := newEligibilityFixture()
	ctx := context.Background()

	grant, err := f.svc.GrantBonusSpins(ctx, "acct-1", 3, "giveaway winner", nil, "admin-1")
	if err != nil {
		t.Fatalf("GrantBonusSpins failed: %v", err)
	}
	if grant.SpinsRemaining != 3 {
		t.Fatalf("expected 3 spins on the grant, got %d", grant.SpinsRemaining)
	}

	remaining, _ := f.tickets.GetRemaining(ctx, "acct-1")
	if remaining != 3 {
		t.Fatalf("expected 3 tickets credited, got %d", remaining)
	}
}

func TestGrantBonusSpins_RepeatedGrantsAccumulate(t *testing.T) {
	f := newEligibilityFixture()
	ctx := context.Background()

	if _, err := f.svc.GrantBonusSpins(ctx, "acct-1", 2, "event", nil, "admin-1"); err != nil {
		t.Fatalf("first grant failed: %v", err)
	}
	grant, err := f.svc.GrantBonusSpins(ctx, "acct-1", 3, "compensation", nil, "admin-2")
	if err != nil {
		t.Fatalf("second grant failed: %v", err)
	}

	if grant.SpinsRemaining != 5 {
		t.Fatalf("grants must accumulate, expected 5 got %d", grant.SpinsRemaining)
	}
	remaining, _ := f.tickets.GetRemaining(ctx, "acct-1")
	if remaining != 5 {
		t.Fatalf("expected 5 tickets total, got %d", remaining)
	}
}

func TestGrantBonusSpins_RejectsBadInput(t *testing.T) {
	f := newEligibilityFixture()
	ctx := context.Background()
	past := time.Now().UTC().Add(-time.Hour)

	tests := []struct {
		name      string
		account   string
		count     int64
		expiresAt *time.Time
	}{
		{"empty account", "", 1, nil},
		{"zero count", "acct-1", 0, nil},
		{"negative count", "acct-1", -2, nil},
		{"expiry in the past", "acct-1", 1, &past},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.GrantBonusSpins(ctx, tc.account, tc.count, "x", tc.expiresAt, "admin-1")
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
		})
	}
}

func TestRevokeEligibility_KeepsCreditedTickets(t *testing.T) {
	f := newEligibilityFixture()
	ctx := context.Background()

	if _, err := f.svc.GrantBonusSpins(ctx, "acct-1", 2, "event", nil, "admin-1"); err != nil {
		t.Fatalf("grant failed: %v", err)
	}
	if err := f.svc.RevokeEligibility(ctx, "acct-1"); err != nil {
		t.Fatalf("RevokeEligibility failed: %v", err)
	}

	if _, err := f.eligibility.FindGrant(ctx, "acct-1"); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected grant deleted, got %v", err)
	}
	remaining, _ := f.tickets.GetRemaining(ctx, "acct-1")
	if remaining != 2 {
		t.Fatalf("revoke must not claw back tickets, got %d", remaining)
	}
}

func TestForceNextWin_RejectsUnknownPrize(t *testing.T) {
	f := newEligibilityFixture()
	ctx := context.Background()

	err := f.svc.ForceNextWin(ctx, "acct-1", primitive.NewObjectID(), "admin-1")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown prize, got %v", err)
	}
	if _, err := f.eligibility.PopForcedWin(ctx, "acct-1"); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("no override should be stored, got %v", err)
	}
}

func TestForceNextWin_StoresSingleUseOverride(t *testing.T) {
	f := newEligibilityFixture()
	ctx := context.Background()

	prize := &models.Prize{Name: "Rare", Type: models.PrizeTypeCoins, Value: 1000, Weight: 0, Active: true}
	if err := f.prizes.Create(ctx, prize); err != nil {
		t.Fatalf("prize create failed: %v", err)
	}

	if err := f.svc.ForceNextWin(ctx, "acct-1", prize.ID, "admin-1"); err != nil {
		t.Fatalf("ForceNextWin failed: %v", err)
	}

	forced, err := f.eligibility.PopForcedWin(ctx, "acct-1")
	if err != nil {
		t.Fatalf("PopForcedWin failed: %v", err)
	}
	if forced.PrizeID != prize.ID || forced.SetBy != "admin-1" {
		t.Fatalf("unexpected override: %+v", forced)
	}

	// Single use: the pop cleared it.
	if _, err := f.eligibility.PopForcedWin(ctx, "acct-1"); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("override must be cleared after one pop, got %v", err)
	}
}

func TestSweepExpiredGrants_RemovesOnlyExpired(t *testing.T) {
	f := newEligibilityFixture()
	ctx := context.Background()

	soon := time.Now().UTC().Add(100 * time.Millisecond)
	future := time.Now().UTC().Add(24 * time.Hour)

	if _, err := f.svc.GrantBonusSpins(ctx, "expiring", 1, "flash event", &soon, "admin-1"); err != nil {
		t.Fatalf("grant failed: %v", err)
	}
	if _, err := f.svc.GrantBonusSpins(ctx, "lasting", 1, "season pass", &future, "admin-1"); err != nil {
		t.Fatalf("grant failed: %v", err)
	}
	if _, err := f.svc.GrantBonusSpins(ctx, "permanent", 1, "no expiry", nil, "admin-1"); err != nil {
		t.Fatalf("grant failed: %v", err)
	}

	time.Sleep(150 * time.Millisecond)

	removed, err := f.svc.SweepExpiredGrants(ctx)
	if err != nil {
		t.Fatalf("SweepExpiredGrants failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 grant removed, got %d", removed)
	}

	if _, err := f.eligibility.FindGrant(ctx, "expiring"); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expired grant should be gone, got %v", err)
	}
	if _, err := f.eligibility.FindGrant(ctx, "lasting"); err != nil {
		t.Fatalf("future grant should survive: %v", err)
	}
	if _, err := f.eligibility.FindGrant(ctx, "permanent"); err != nil {
		t.Fatalf("unexpiring grant should survive: %v", err)
	}
}
