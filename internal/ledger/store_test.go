package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/jdewildt/Finance-Ledger-Backend/internal/apperrors"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/clock"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/model"
)

var testTime = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestStore() *Store {
	return NewStore(clock.Fixed{Time: testTime})
}

// seedSnapshot builds a snapshot with two portfolios, three investments
// and transactions spread across them, returning everything by name.
func seedSnapshot(t *testing.T) (model.Snapshot, map[string]model.Portfolio, map[string]model.Investment) {
	t.Helper()
	store := newTestStore()

	snap := model.Snapshot{}
	portfolios := map[string]model.Portfolio{}
	investments := map[string]model.Investment{}

	for _, name := range []string{"Retirement", "Emergency"} {
		var p model.Portfolio
		var err error
		snap, p, err = store.CreatePortfolio(snap, CreatePortfolioInput{Name: name})
		if err != nil {
			t.Fatalf("Failed to create portfolio %q: %v", name, err)
		}
		portfolios[name] = p
	}

	seed := []struct {
		portfolio string
		name      string
	}{
		{"Retirement", "Treasury Bond"},
		{"Retirement", "Index Fund"},
		{"Emergency", "Savings CDB"},
	}
	for _, s := range seed {
		var inv model.Investment
		var err error
		snap, inv, err = store.AddInvestment(snap, portfolios[s.portfolio].ID, InvestmentInput{
			Name:            s.name,
			Type:            model.InvestmentTypeFixedIncome,
			InvestedAmount:  1000,
			CurrentValue:    1100,
			AcquisitionDate: testTime,
			Active:          true,
		})
		if err != nil {
			t.Fatalf("Failed to add investment %q: %v", s.name, err)
		}
		investments[s.name] = inv
	}

	for _, name := range []string{"Treasury Bond", "Index Fund", "Savings CDB"} {
		var err error
		snap, _, err = store.AddTransaction(snap, TransactionInput{
			InvestmentID: investments[name].ID,
			Kind:         model.TransactionBuy,
			Amount:       1000,
			Date:         testTime,
		})
		if err != nil {
			t.Fatalf("Failed to add transaction for %q: %v", name, err)
		}
	}

	return snap, portfolios, investments
}

func TestStore_CreatePortfolio(t *testing.T) {
	store := newTestStore()

	t.Run("creates portfolio with empty investment set", func(t *testing.T) {
		snap, p, err := store.CreatePortfolio(model.Snapshot{}, CreatePortfolioInput{
			Name:        "Retirement",
			Description: "Long term",
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if p.ID == "" {
			t.Error("Expected a generated ID")
		}
		if len(p.Investments) != 0 {
			t.Errorf("Expected empty investment set, got %d", len(p.Investments))
		}
		if !p.CreatedAt.Equal(testTime) || !p.UpdatedAt.Equal(testTime) {
			t.Errorf("Expected timestamps %v, got created=%v updated=%v", testTime, p.CreatedAt, p.UpdatedAt)
		}
		if len(snap.Portfolios) != 1 {
			t.Errorf("Expected 1 portfolio in snapshot, got %d", len(snap.Portfolios))
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, _, err := store.CreatePortfolio(model.Snapshot{}, CreatePortfolioInput{Name: "   "})
		if !errors.Is(err, apperrors.ErrEmptyName) {
			t.Errorf("Expected ErrEmptyName, got %v", err)
		}
		if !errors.Is(err, apperrors.ErrValidation) {
			t.Errorf("Expected error to classify as validation, got %v", err)
		}
	})

	t.Run("does not mutate the input snapshot", func(t *testing.T) {
		before := model.Snapshot{}
		_, _, err := store.CreatePortfolio(before, CreatePortfolioInput{Name: "A"})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(before.Portfolios) != 0 {
			t.Errorf("Input snapshot was mutated: %d portfolios", len(before.Portfolios))
		}
	})
}

func TestStore_UpdatePortfolio(t *testing.T) {
	store := newTestStore()
	snap, portfolios, _ := seedSnapshot(t)

	t.Run("merges provided fields only", func(t *testing.T) {
		name := "Renamed"
		next, p, err := store.UpdatePortfolio(snap, portfolios["Retirement"].ID, UpdatePortfolioInput{Name: &name})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if p.Name != "Renamed" {
			t.Errorf("Expected name 'Renamed', got %q", p.Name)
		}
		if len(p.Investments) != 2 {
			t.Errorf("Expected investments preserved, got %d", len(p.Investments))
		}
		// The old snapshot keeps the old name.
		if snap.Portfolio(portfolios["Retirement"].ID).Name != "Retirement" {
			t.Error("Old snapshot was mutated")
		}
		if next.Portfolio(portfolios["Retirement"].ID).Name != "Renamed" {
			t.Error("New snapshot does not carry the update")
		}
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		_, _, err := store.UpdatePortfolio(snap, "00000000-0000-0000-0000-000000000000", UpdatePortfolioInput{})
		if !errors.Is(err, apperrors.ErrPortfolioNotFound) {
			t.Errorf("Expected ErrPortfolioNotFound, got %v", err)
		}
	})
}

// TestStore_DeletePortfolioCascading verifies cascade completeness and
// precision: deleting a portfolio removes every investment it owns and
// every transaction referencing those investments, and nothing else.
func TestStore_DeletePortfolioCascading(t *testing.T) {
	store := newTestStore()

	t.Run("removes owned investments and their transactions only", func(t *testing.T) {
		snap, portfolios, investments := seedSnapshot(t)

		next, err := store.DeletePortfolioCascading(snap, portfolios["Retirement"].ID)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if next.Portfolio(portfolios["Retirement"].ID) != nil {
			t.Error("Portfolio still present after delete")
		}
		if next.Portfolio(portfolios["Emergency"].ID) == nil {
			t.Error("Unrelated portfolio was deleted")
		}

		for _, tx := range next.Transactions {
			if tx.InvestmentID == investments["Treasury Bond"].ID || tx.InvestmentID == investments["Index Fund"].ID {
				t.Errorf("Transaction %s orphaned by cascade", tx.ID)
			}
		}
		if len(next.Transactions) != 1 {
			t.Errorf("Expected exactly 1 surviving transaction, got %d", len(next.Transactions))
		}
		if next.Transactions[0].InvestmentID != investments["Savings CDB"].ID {
			t.Error("Surviving transaction references the wrong investment")
		}
	})

	t.Run("unknown id fails without change", func(t *testing.T) {
		snap, _, _ := seedSnapshot(t)
		next, err := store.DeletePortfolioCascading(snap, "00000000-0000-0000-0000-000000000000")
		if !errors.Is(err, apperrors.ErrPortfolioNotFound) {
			t.Errorf("Expected ErrPortfolioNotFound, got %v", err)
		}
		if len(next.Portfolios) != len(snap.Portfolios) {
			t.Error("Snapshot changed on failed delete")
		}
	})
}

func TestStore_DeleteInvestment(t *testing.T) {
	store := newTestStore()
	snap, portfolios, investments := seedSnapshot(t)

	next, err := store.DeleteInvestment(snap, portfolios["Retirement"].ID, investments["Treasury Bond"].ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	p := next.Portfolio(portfolios["Retirement"].ID)
	if len(p.Investments) != 1 {
		t.Errorf("Expected 1 remaining investment, got %d", len(p.Investments))
	}
	// Narrow cascade: only transactions of the deleted investment go.
	if len(next.Transactions) != 2 {
		t.Errorf("Expected 2 remaining transactions, got %d", len(next.Transactions))
	}
	for _, tx := range next.Transactions {
		if tx.InvestmentID == investments["Treasury Bond"].ID {
			t.Error("Transaction of deleted investment survived")
		}
	}
}

func TestStore_AddTransaction(t *testing.T) {
	store := newTestStore()
	snap, _, investments := seedSnapshot(t)

	t.Run("rejects unresolvable investment reference", func(t *testing.T) {
		_, _, err := store.AddTransaction(snap, TransactionInput{
			InvestmentID: "00000000-0000-0000-0000-000000000000",
			Kind:         model.TransactionBuy,
			Amount:       100,
			Date:         testTime,
		})
		if !errors.Is(err, apperrors.ErrUnresolvedInvestment) {
			t.Errorf("Expected ErrUnresolvedInvestment, got %v", err)
		}
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, _, err := store.AddTransaction(snap, TransactionInput{
			InvestmentID: investments["Index Fund"].ID,
			Kind:         model.TransactionBuy,
			Amount:       0,
			Date:         testTime,
		})
		if !errors.Is(err, apperrors.ErrNonPositiveAmount) {
			t.Errorf("Expected ErrNonPositiveAmount, got %v", err)
		}
	})

	t.Run("rejects invalid kind", func(t *testing.T) {
		_, _, err := store.AddTransaction(snap, TransactionInput{
			InvestmentID: investments["Index Fund"].ID,
			Kind:         "transfer",
			Amount:       100,
			Date:         testTime,
		})
		if !errors.Is(err, apperrors.ErrInvalidTransactionKind) {
			t.Errorf("Expected ErrInvalidTransactionKind, got %v", err)
		}
	})

	t.Run("appends transaction with assigned id and timestamp", func(t *testing.T) {
		next, tx, err := store.AddTransaction(snap, TransactionInput{
			InvestmentID: investments["Index Fund"].ID,
			Kind:         model.TransactionDividend,
			Amount:       25.50,
			Date:         testTime,
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if tx.ID == "" {
			t.Error("Expected a generated ID")
		}
		if !tx.CreatedAt.Equal(testTime) {
			t.Errorf("Expected CreatedAt %v, got %v", testTime, tx.CreatedAt)
		}
		if len(next.Transactions) != len(snap.Transactions)+1 {
			t.Errorf("Expected %d transactions, got %d", len(snap.Transactions)+1, len(next.Transactions))
		}
	})
}
