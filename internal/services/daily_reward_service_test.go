package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/luxemods/economy-backend/internal/repositories"
	"github.com/luxemods/economy-backend/internal/repositories/memory"
)

type dailyFixture struct {
	svc     *DailyRewardServiceImpl
	tickets *memory.TicketRepository
	wallet  *memory.WalletRepository
}

func newDailyFixture(coinReward int64) *dailyFixture {
	tickets := memory.NewTicketRepository()
	wallet := memory.NewWalletRepository()
	claims := memory.NewDailyClaimRepository()
	return &dailyFixture{
		svc:     NewDailyRewardService(claims, tickets, wallet, coinReward),
		tickets: tickets,
		wallet:  wallet,
	}
}

func TestDailyReward_FirstClaim(t *testing.T) {
	f := newDailyFixture(50)
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	result, err := f.svc.Claim(ctx, "acct-1", now)
	if err != nil {
		t.Fatalf("Claim failed: %v", err)
	}
	if result.Streak != 1 {
		t.Fatalf("expected streak=1, got %d", result.Streak)
	}
	if result.TicketsGranted != 1 {
		t.Fatalf("expected 1 ticket, got %d", result.TicketsGranted)
	}
	if result.TicketsRemaining != 1 {
		t.Fatalf("expected 1 ticket remaining, got %d", result.TicketsRemaining)
	}
	if result.CoinsGranted != 50 {
		t.Fatalf("expected 50 coins, got %d", result.CoinsGranted)
	}

	wantNext := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	if !result.NextEligibleAt.Equal(wantNext) {
		t.Fatalf("unexpected next eligible time: got=%s want=%s", result.NextEligibleAt, wantNext)
	}

	balance, _ := f.wallet.GetBalance(ctx, "acct-1")
	if balance != 50 {
		t.Fatalf("expected balance=50, got %d", balance)
	}
}

func TestDailyReward_SecondClaimSameDayFails(t *testing.T) {
	f := newDailyFixture(50)
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	if _, err := f.svc.Claim(ctx, "acct-1", now); err != nil {
		t.Fatalf("first claim failed: %v", err)
	}

	// Later the same UTC day.
	_, err := f.svc.Claim(ctx, "acct-1", now.Add(10*time.Hour))
	if !errors.Is(err, repositories.ErrDuplicateClaim) {
		t.Fatalf("expected duplicate claim, got %v", err)
	}

	var claimed *AlreadyClaimedError
	if !errors.As(err, &claimed) {
		t.Fatalf("expected AlreadyClaimedError, got %T", err)
	}
	wantNext := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	if !claimed.NextEligibleAt.Equal(wantNext) {
		t.Fatalf("unexpected next eligible time: got=%s want=%s", claimed.NextEligibleAt, wantNext)
	}

	// Only the first claim's tickets were granted.
	remaining, _ := f.tickets.GetRemaining(ctx, "acct-1")
	if remaining != 1 {
		t.Fatalf("expected 1 ticket, got %d", remaining)
	}
}

func TestDailyReward_StreakProgression(t *testing.T) {
	f := newDailyFixture(0)
	ctx := context.Background()
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	wantTickets := []int{1, 1, 2, 2, 2, 2, 3, 3}
	for day := 0; day < len(wantTickets); day++ {
		result, err := f.svc.Claim(ctx, "acct-1", start.AddDate(0, 0, day))
		if err != nil {
			t.Fatalf("claim on day %d failed: %v", day+1, err)
		}
		if result.Streak != day+1 {
			t.Fatalf("day %d: expected streak=%d, got %d", day+1, day+1, result.Streak)
		}
		if result.TicketsGranted != wantTickets[day] {
			t.Fatalf("day %d: expected %d tickets, got %d", day+1, wantTickets[day], result.TicketsGranted)
		}
	}
}

func TestDailyReward_MissedDayResetsStreak(t *testing.T) {
	f := newDailyFixture(0)
	ctx := context.Background()
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for day := 0; day < 3; day++ {
		if _, err := f.svc.Claim(ctx, "acct-1", start.AddDate(0, 0, day)); err != nil {
			t.Fatalf("claim on day %d failed: %v", day+1, err)
		}
	}

	// Skip a day; the streak starts over.
	result, err := f.svc.Claim(ctx, "acct-1", start.AddDate(0, 0, 4))
	if err != nil {
		t.Fatalf("claim after gap failed: %v", err)
	}
	if result.Streak != 1 {
		t.Fatalf("expected streak reset to 1, got %d", result.Streak)
	}
}

func TestDailyReward_StreakCrossesMonthBoundary(t *testing.T) {
	f := newDailyFixture(0)
	ctx := context.Background()

	if _, err := f.svc.Claim(ctx, "acct-1", time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	result, err := f.svc.Claim(ctx, "acct-1", time.Date(2025, 4, 1, 1, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if result.Streak != 2 {
		t.Fatalf("expected streak=2 across month boundary, got %d", result.Streak)
	}
}

func TestDailyReward_ConcurrentClaimsExactlyOneSucceeds(t *testing.T) {
	f := newDailyFixture(50)
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	const attempts = 100
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded, duplicates := 0, 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Claim(ctx, "acct-1", now)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, repositories.ErrDuplicateClaim):
				duplicates++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if succeeded != 1 {
		t.Fatalf("expected exactly 1 successful claim, got %d", succeeded)
	}
	if duplicates != attempts-1 {
		t.Fatalf("expected %d duplicate failures, got %d", attempts-1, duplicates)
	}

	remaining, _ := f.tickets.GetRemaining(ctx, "acct-1")
	if remaining != 1 {
		t.Fatalf("expected exactly 1 ticket granted, got %d", remaining)
	}
	balance, _ := f.wallet.GetBalance(ctx, "acct-1")
	if balance != 50 {
		t.Fatalf("expected exactly one coin credit, balance=%d", balance)
	}
}

func TestTicketsForStreak_Monotonic(t *testing.T) {
	tests := []struct {
		streak int
		want   int
	}{
		{streak: 1, want: 1},
		{streak: 2, want: 1},
		{streak: 3, want: 2},
		{streak: 5, want: 2},
		{streak: 7, want: 3},
		{streak: 30, want: 3},
	}

	previous := 0
	for _, tt := range tests {
		got := TicketsForStreak(tt.streak)
		if got != tt.want {
			t.Fatalf("streak %d: expected %d tickets, got %d", tt.streak, tt.want, got)
		}
		if got < previous {
			t.Fatalf("streak %d grants fewer tickets (%d) than a shorter streak (%d)", tt.streak, got, previous)
		}
		previous = got
	}
}
