package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/luxemods/economy-backend/internal/models"
	"github.com/luxemods/economy-backend/internal/repositories"
	"github.com/luxemods/economy-backend/internal/repositories/memory"
)

type spinFixture struct {
	svc         *SpinServiceImpl
	prizes      *memory.PrizeRepository
	settings    *memory.WheelSettingsRepository
	tickets     *memory.TicketRepository
	wallet      *memory.WalletRepository
	history     *memory.SpinHistoryRepository
	eligibility *memory.EligibilityRepository
}

func newSpinFixture() *spinFixture {
	f := &spinFixture{
		prizes:      memory.NewPrizeRepository(),
		settings:    memory.NewWheelSettingsRepository(),
		tickets:     memory.NewTicketRepository(),
		wallet:      memory.NewWalletRepository(),
		history:     memory.NewSpinHistoryRepository(),
		eligibility: memory.NewEligibilityRepository(),
	}
	f.svc = NewSpinService(f.prizes, f.settings, f.tickets, f.wallet, f.history, f.eligibility)
	return f
}

func (f *spinFixture) addPrize(t *testing.T, name string, prizeType models.PrizeType, value int64, weight float64) *models.Prize {
	t.Helper()
	prize := &models.Prize{Name: name, Type: prizeType, Value: value, Weight: weight, Active: true}
	if err := f.prizes.Create(context.Background(), prize); err != nil {
		t.Fatalf("failed to add prize: %v", err)
	}
	return prize
}

func TestSpin_NoTicketsLeavesNoTrace(t *testing.T) {
	f := newSpinFixture()
	ctx := context.Background()
	f.addPrize(t, "100 Coins", models.PrizeTypeCoins, 100, 1)

	_, err := f.svc.Spin(ctx, "acct-1")
	if !errors.Is(err, repositories.ErrNoTickets) {
		t.Fatalf("expected no tickets, got %v", err)
	}

	balance, _ := f.wallet.GetBalance(ctx, "acct-1")
	if balance != 0 {
		t.Fatalf("balance changed on failed spin: %d", balance)
	}
	count, _ := f.history.CountByAccount(ctx, "acct-1")
	if count != 0 {
		t.Fatalf("history written on failed spin: %d records", count)
	}
}

func TestSpin_NoPrizesConsumesNothing(t *testing.T) {
	f := newSpinFixture()
	ctx := context.Background()
	f.tickets.Grant(ctx, "acct-1", 1, models.TicketSourceAdminGrant)

	_, err := f.svc.Spin(ctx, "acct-1")
	if !errors.Is(err, ErrNoPrizesAvailable) {
		t.Fatalf("expected no prizes, got %v", err)
	}

	remaining, _ := f.tickets.GetRemaining(ctx, "acct-1")
	if remaining != 1 {
		t.Fatalf("ticket consumed although no prizes existed: remaining=%d", remaining)
	}
}

func TestSpin_DisabledWheel(t *testing.T) {
	f := newSpinFixture()
	ctx := context.Background()
	f.addPrize(t, "100 Coins", models.PrizeTypeCoins, 100, 1)
	f.tickets.Grant(ctx, "acct-1", 1, models.TicketSourceAdminGrant)
	f.settings.UpdateSettings(ctx, &models.WheelSettings{Enabled: false})

	_, err := f.svc.Spin(ctx, "acct-1")
	if !errors.Is(err, ErrSpinsDisabled) {
		t.Fatalf("expected spins disabled, got %v", err)
	}
}

func TestSpin_CoinPrizeCreditsWallet(t *testing.T) {
	f := newSpinFixture()
	ctx := context.Background()
	prize := f.addPrize(t, "250 Coins", models.PrizeTypeCoins, 250, 1)
	f.tickets.Grant(ctx, "acct-1", 2, models.TicketSourceAdminGrant)

	result, err := f.svc.Spin(ctx, "acct-1")
	if err != nil {
		t.Fatalf("Spin failed: %v", err)
	}
	if result.Prize.ID != prize.ID {
		t.Fatalf("unexpected prize: %s", result.Prize.Name)
	}
	if result.Balance != 250 {
		t.Fatalf("expected balance=250, got %d", result.Balance)
	}
	if result.TicketsRemaining != 1 {
		t.Fatalf("expected 1 ticket remaining, got %d", result.TicketsRemaining)
	}

	entries, _ := f.wallet.FindEntriesByAccount(ctx, "acct-1", 1, 10)
	if len(entries) != 1 || entries[0].Kind != models.LedgerKindSpinWheel {
		t.Fatalf("expected one spin_wheel ledger entry, got %+v", entries)
	}
	count, _ := f.history.CountByAccount(ctx, "acct-1")
	if count != 1 {
		t.Fatalf("expected 1 history record, got %d", count)
	}
}

func TestSpin_TicketPrizeGrantsTicket(t *testing.T) {
	f := newSpinFixture()
	ctx := context.Background()
	f.addPrize(t, "Free Spin", models.PrizeTypeTicket, 1, 1)
	f.tickets.Grant(ctx, "acct-1", 1, models.TicketSourceAdminGrant)

	result, err := f.svc.Spin(ctx, "acct-1")
	if err != nil {
		t.Fatalf("Spin failed: %v", err)
	}

	// One consumed, one granted back.
	if result.TicketsRemaining != 1 {
		t.Fatalf("expected 1 ticket remaining, got %d", result.TicketsRemaining)
	}
	if result.Balance != 0 {
		t.Fatalf("ticket prize must not touch the balance, got %d", result.Balance)
	}
}

func TestSpin_CosmeticPrizeOnlyRecordsHistory(t *testing.T) {
	f := newSpinFixture()
	ctx := context.Background()
	f.addPrize(t, "Golden Horn", models.PrizeTypeCosmetic, 0, 1)
	f.tickets.Grant(ctx, "acct-1", 1, models.TicketSourceAdminGrant)

	result, err := f.svc.Spin(ctx, "acct-1")
	if err != nil {
		t.Fatalf("Spin failed: %v", err)
	}
	if result.Balance != 0 || result.TicketsRemaining != 0 {
		t.Fatalf("cosmetic prize must have no financial effect: balance=%d tickets=%d", result.Balance, result.TicketsRemaining)
	}

	records, _ := f.history.FindByAccount(ctx, "acct-1", 1, 10)
	if len(records) != 1 || records[0].PrizeName != "Golden Horn" {
		t.Fatalf("expected history record for cosmetic prize, got %+v", records)
	}
}

func TestSpin_WeightedSelectionUsesCatalogOrder(t *testing.T) {
	f := newSpinFixture()
	ctx := context.Background()
	f.addPrize(t, "A", models.PrizeTypeCosmetic, 0, 1)
	b := f.addPrize(t, "B", models.PrizeTypeCosmetic, 0, 1)
	f.addPrize(t, "C", models.PrizeTypeCosmetic, 0, 2)
	f.tickets.Grant(ctx, "acct-1", 1, models.TicketSourceAdminGrant)

	// Pin the draw into the second band: r = 1.5 of total weight 4.
	f.svc.SetRandom(func() float64 { return 1.5 / 4 })

	result, err := f.svc.Spin(ctx, "acct-1")
	if err != nil {
		t.Fatalf("Spin failed: %v", err)
	}
	if result.Prize.ID != b.ID {
		t.Fatalf("expected prize B, got %s", result.Prize.Name)
	}
}

func TestSpin_ForcedWinAppliesExactlyOnce(t *testing.T) {
	f := newSpinFixture()
	ctx := context.Background()
	f.addPrize(t, "Common", models.PrizeTypeCosmetic, 0, 100)
	rare := f.addPrize(t, "Rare", models.PrizeTypeCoins, 1000, 0)
	f.tickets.Grant(ctx, "acct-1", 2, models.TicketSourceAdminGrant)

	// Always land in the common band; only the override can produce Rare.
	f.svc.SetRandom(func() float64 { return 0.1 })

	if err := f.eligibility.SetForcedWin(ctx, "acct-1", rare.ID, "admin-1"); err != nil {
		t.Fatalf("SetForcedWin failed: %v", err)
	}

	first, err := f.svc.Spin(ctx, "acct-1")
	if err != nil {
		t.Fatalf("first spin failed: %v", err)
	}
	if first.Prize.ID != rare.ID {
		t.Fatalf("forced spin should win Rare, got %s", first.Prize.Name)
	}

	second, err := f.svc.Spin(ctx, "acct-1")
	if err != nil {
		t.Fatalf("second spin failed: %v", err)
	}
	if second.Prize.ID == rare.ID {
		t.Fatalf("forced win applied twice")
	}

	records, _ := f.history.FindByAccount(ctx, "acct-1", 1, 10)
	if len(records) != 2 {
		t.Fatalf("expected 2 history records, got %d", len(records))
	}
	// Newest first: the second spin is unforced.
	if records[0].Forced || !records[1].Forced {
		t.Fatalf("expected only the first spin marked forced, got %+v", records)
	}
}

func TestSpin_ConcurrentSpinsConsumeExactlyAvailableTickets(t *testing.T) {
	f := newSpinFixture()
	ctx := context.Background()
	f.addPrize(t, "Trinket", models.PrizeTypeCosmetic, 0, 1)

	const available = 5
	const attempts = 20
	f.tickets.Grant(ctx, "acct-1", available, models.TicketSourceAdminGrant)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded, noTickets := 0, 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Spin(ctx, "acct-1")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, repositories.ErrNoTickets):
				noTickets++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if succeeded != available {
		t.Fatalf("expected %d successful spins, got %d", available, succeeded)
	}
	if noTickets != attempts-available {
		t.Fatalf("expected %d no-ticket failures, got %d", attempts-available, noTickets)
	}

	remaining, _ := f.tickets.GetRemaining(ctx, "acct-1")
	if remaining != 0 {
		t.Fatalf("expected 0 tickets remaining, got %d", remaining)
	}
	count, _ := f.history.CountByAccount(ctx, "acct-1")
	if count != available {
		t.Fatalf("expected %d history records, got %d", available, count)
	}
}
