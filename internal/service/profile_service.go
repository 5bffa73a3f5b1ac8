// Package service coordinates the core components over one profile:
// it holds the current snapshot, runs entity-store and recurrence
// commands against it, and persists the result through the gateway.
package service

import (
	"errors"
	"sync"

	"github.com/jdewildt/Finance-Ledger-Backend/internal/analytics"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/apperrors"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/clock"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/ledger"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/model"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/recurrence"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/repository"
)

// ProfileService is the single-writer command executor for one profile.
//
// Mutations run to completion one at a time under the write lock: the
// core produces a new snapshot, the gateway persists it, and only then
// is it published as the current snapshot. A failed save leaves the
// previous snapshot in place. Readers take a reference to the current
// snapshot under the read lock and compute against it without blocking
// writers, since published snapshots are never mutated.
type ProfileService struct {
	mu        sync.RWMutex
	snap      model.Snapshot
	profileID string
	repo      repository.SnapshotRepository
	store     *ledger.Store
	engine    *recurrence.Engine
	clock     clock.Clock
}

// NewProfileService loads the profile's snapshot from the gateway and
// returns a service ready to execute commands. A profile that was never
// saved before starts from an empty snapshot.
func NewProfileService(repo repository.SnapshotRepository, c clock.Clock, profileID string, lookaheadMonths int) (*ProfileService, error) {
	snap, err := repo.Load(profileID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrProfileNotFound) {
			return nil, err
		}
		snap = model.Snapshot{}
	}
	return &ProfileService{
		snap:      snap,
		profileID: profileID,
		repo:      repo,
		store:     ledger.NewStore(c),
		engine:    recurrence.NewEngine(c, lookaheadMonths),
		clock:     c,
	}, nil
}

// commit persists the new snapshot and publishes it. Callers must hold
// the write lock.
func (s *ProfileService) commit(next model.Snapshot) error {
	next.SavedAt = s.clock.Now()
	if err := s.repo.Save(s.profileID, next); err != nil {
		return err
	}
	s.snap = next
	return nil
}

// Snapshot returns the current snapshot. The returned value is never
// mutated afterwards, so callers may compute against it freely.
func (s *ProfileService) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

//
// PORTFOLIO AND LEDGER COMMANDS
//

// CreatePortfolio creates a new, empty portfolio.
func (s *ProfileService) CreatePortfolio(in ledger.CreatePortfolioInput) (model.Portfolio, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, portfolio, err := s.store.CreatePortfolio(s.snap, in)
	if err != nil {
		return model.Portfolio{}, err
	}
	if err := s.commit(next); err != nil {
		return model.Portfolio{}, err
	}
	return portfolio, nil
}

// UpdatePortfolio merges partial fields into a portfolio.
func (s *ProfileService) UpdatePortfolio(portfolioID string, in ledger.UpdatePortfolioInput) (model.Portfolio, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, portfolio, err := s.store.UpdatePortfolio(s.snap, portfolioID, in)
	if err != nil {
		return model.Portfolio{}, err
	}
	if err := s.commit(next); err != nil {
		return model.Portfolio{}, err
	}
	return portfolio, nil
}

// DeletePortfolio removes a portfolio with the full cascade: its
// investments and every transaction referencing them.
func (s *ProfileService) DeletePortfolio(portfolioID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.store.DeletePortfolioCascading(s.snap, portfolioID)
	if err != nil {
		return err
	}
	return s.commit(next)
}

// ListPortfolios returns all portfolios in the current snapshot.
func (s *ProfileService) ListPortfolios() []model.Portfolio {
	return s.Snapshot().Portfolios
}

// GetPortfolio returns one portfolio by ID.
func (s *ProfileService) GetPortfolio(portfolioID string) (model.Portfolio, error) {
	snap := s.Snapshot()
	portfolio := snap.Portfolio(portfolioID)
	if portfolio == nil {
		return model.Portfolio{}, apperrors.ErrPortfolioNotFound
	}
	return *portfolio, nil
}

// AddInvestment appends an investment to a portfolio.
func (s *ProfileService) AddInvestment(portfolioID string, in ledger.InvestmentInput) (model.Investment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, investment, err := s.store.AddInvestment(s.snap, portfolioID, in)
	if err != nil {
		return model.Investment{}, err
	}
	if err := s.commit(next); err != nil {
		return model.Investment{}, err
	}
	return investment, nil
}

// UpdateInvestment merges partial fields into an investment.
func (s *ProfileService) UpdateInvestment(portfolioID, investmentID string, in ledger.UpdateInvestmentInput) (model.Investment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, investment, err := s.store.UpdateInvestment(s.snap, portfolioID, investmentID, in)
	if err != nil {
		return model.Investment{}, err
	}
	if err := s.commit(next); err != nil {
		return model.Investment{}, err
	}
	return investment, nil
}

// DeleteInvestment removes an investment and the transactions
// referencing it.
func (s *ProfileService) DeleteInvestment(portfolioID, investmentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.store.DeleteInvestment(s.snap, portfolioID, investmentID)
	if err != nil {
		return err
	}
	return s.commit(next)
}

// AddTransaction appends a transaction to the ledger.
func (s *ProfileService) AddTransaction(in ledger.TransactionInput) (model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, tx, err := s.store.AddTransaction(s.snap, in)
	if err != nil {
		return model.Transaction{}, err
	}
	if err := s.commit(next); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

// ListTransactions returns transactions, optionally filtered by the
// investment they reference. An empty investmentID returns everything.
func (s *ProfileService) ListTransactions(investmentID string) []model.Transaction {
	snap := s.Snapshot()
	if investmentID == "" {
		return snap.Transactions
	}
	filtered := []model.Transaction{}
	for _, tx := range snap.Transactions {
		if tx.InvestmentID == investmentID {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// Summary computes the aggregation over the current snapshot. It is
// recomputed on every call, never cached.
func (s *ProfileService) Summary() analytics.Summary {
	return analytics.Summarize(s.Snapshot())
}

//
// RECURRENCE COMMANDS
//

// CreateObligation creates a recurring obligation and generates its
// installment schedule.
func (s *ProfileService) CreateObligation(in recurrence.ObligationInput) (model.RecurringObligation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, obligation, err := s.engine.CreateObligation(s.snap, in)
	if err != nil {
		return model.RecurringObligation{}, err
	}
	if err := s.commit(next); err != nil {
		return model.RecurringObligation{}, err
	}
	return obligation, nil
}

// UpdateObligation merges metadata fields into an obligation; setting
// Active to false halts future generation.
func (s *ProfileService) UpdateObligation(obligationID string, in recurrence.UpdateObligationInput) (model.RecurringObligation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, obligation, err := s.engine.UpdateObligation(s.snap, obligationID, in)
	if err != nil {
		return model.RecurringObligation{}, err
	}
	if err := s.commit(next); err != nil {
		return model.RecurringObligation{}, err
	}
	return obligation, nil
}

// DeleteObligation removes an obligation and its installments.
func (s *ProfileService) DeleteObligation(obligationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.engine.DeleteObligation(s.snap, obligationID)
	if err != nil {
		return err
	}
	return s.commit(next)
}

// ListObligations returns all recurring obligations.
func (s *ProfileService) ListObligations() []model.RecurringObligation {
	return s.Snapshot().Obligations
}

// GetObligation returns one obligation by ID.
func (s *ProfileService) GetObligation(obligationID string) (model.RecurringObligation, error) {
	snap := s.Snapshot()
	obligation := snap.Obligation(obligationID)
	if obligation == nil {
		return model.RecurringObligation{}, apperrors.ErrObligationNotFound
	}
	return *obligation, nil
}

// SettleInstallment settles one installment, optionally overriding its
// amount or category, and records the linked transaction when the
// obligation references an investment.
func (s *ProfileService) SettleInstallment(obligationID string, sequence int, in recurrence.SettleInput) (model.Installment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, installment, err := s.engine.SettleInstallment(s.snap, obligationID, sequence, in)
	if err != nil {
		return model.Installment{}, err
	}
	if err := s.commit(next); err != nil {
		return model.Installment{}, err
	}
	return installment, nil
}

// EditInstallments applies an individual or all-mode edit at the given
// sequence number.
func (s *ProfileService) EditInstallments(obligationID string, sequence int, mode recurrence.EditMode, in recurrence.EditInput) (model.RecurringObligation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, obligation, err := s.engine.EditInstallments(s.snap, obligationID, sequence, mode, in)
	if err != nil {
		return model.RecurringObligation{}, err
	}
	if err := s.commit(next); err != nil {
		return model.RecurringObligation{}, err
	}
	return obligation, nil
}

// AdvanceOverdue runs the overdue sweep and tops up open-ended
// schedules to the look-ahead horizon. Any scheduler may invoke it: the
// cron job, a manual API trigger, or a test. When nothing changes, no
// save is performed, which keeps the operation idempotent at the
// storage layer too.
func (s *ProfileService) AdvanceOverdue() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	next, swept := s.engine.AdvanceOverdue(s.snap, now)
	next, added := s.engine.EnsureHorizon(next, now)
	if swept+added == 0 {
		return 0, nil
	}
	if err := s.commit(next); err != nil {
		return 0, err
	}
	return swept + added, nil
}
