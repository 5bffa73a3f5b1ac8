// Package ledger implements the entity store: the canonical collections
// of portfolios, investments and transactions, with referential
// integrity enforced on every mutation.
//
// Every operation is a total function over (old snapshot, command). It
// either returns a new snapshot with the change fully applied, or an
// error with the old snapshot untouched. Snapshots are never mutated in
// place, so a reader holding a snapshot reference is never exposed to a
// partial mutation.
package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jdewildt/Finance-Ledger-Backend/internal/apperrors"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/clock"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/model"
)

// Store executes entity commands against snapshots. It carries only the
// injected clock and ID source; all entity state lives in the snapshot.
type Store struct {
	clock clock.Clock
	newID func() string
}

// NewStore creates a Store using the given clock and UUID generation.
func NewStore(c clock.Clock) *Store {
	return &Store{clock: c, newID: uuid.NewString}
}

// CreatePortfolioInput carries the caller-supplied fields for a new portfolio.
type CreatePortfolioInput struct {
	Name        string
	Description string
	Goal        *model.Goal
}

// CreatePortfolio adds a new portfolio with an empty investment set.
// Timestamps and the ID are assigned here, never by the caller.
func (s *Store) CreatePortfolio(snap model.Snapshot, in CreatePortfolioInput) (model.Snapshot, model.Portfolio, error) {
	if strings.TrimSpace(in.Name) == "" {
		return snap, model.Portfolio{}, apperrors.ErrEmptyName
	}

	now := s.clock.Now()
	portfolio := model.Portfolio{
		ID:          s.newID(),
		Name:        in.Name,
		Description: in.Description,
		Goal:        in.Goal,
		Investments: []model.Investment{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	next := snap.Clone()
	next.Portfolios = append(next.Portfolios, portfolio)
	return next, portfolio, nil
}

// UpdatePortfolioInput carries partial portfolio fields. Nil pointers
// leave the corresponding field unchanged; ClearGoal removes the goal.
type UpdatePortfolioInput struct {
	Name        *string
	Description *string
	Goal        *model.Goal
	ClearGoal   bool
}

// UpdatePortfolio merges the provided fields into an existing portfolio
// and bumps its UpdatedAt timestamp.
func (s *Store) UpdatePortfolio(snap model.Snapshot, portfolioID string, in UpdatePortfolioInput) (model.Snapshot, model.Portfolio, error) {
	if snap.Portfolio(portfolioID) == nil {
		return snap, model.Portfolio{}, apperrors.ErrPortfolioNotFound
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return snap, model.Portfolio{}, apperrors.ErrEmptyName
	}

	next := snap.Clone()
	portfolio := next.Portfolio(portfolioID)
	if in.Name != nil {
		portfolio.Name = *in.Name
	}
	if in.Description != nil {
		portfolio.Description = *in.Description
	}
	if in.ClearGoal {
		portfolio.Goal = nil
	} else if in.Goal != nil {
		goal := *in.Goal
		portfolio.Goal = &goal
	}
	portfolio.UpdatedAt = s.clock.Now()
	return next, *portfolio, nil
}

// DeletePortfolioCascading removes a portfolio, every investment it
// owns, and every transaction referencing any of those investments.
//
// The cascade resolves the full set of owned investment IDs before any
// transaction is filtered, so a partial cascade (portfolio removed but
// transactions orphaned) cannot occur.
func (s *Store) DeletePortfolioCascading(snap model.Snapshot, portfolioID string) (model.Snapshot, error) {
	portfolio := snap.Portfolio(portfolioID)
	if portfolio == nil {
		return snap, apperrors.ErrPortfolioNotFound
	}
	owned := portfolio.InvestmentIDs()

	next := snap.Clone()
	portfolios := next.Portfolios[:0]
	for _, p := range next.Portfolios {
		if p.ID != portfolioID {
			portfolios = append(portfolios, p)
		}
	}
	next.Portfolios = portfolios

	transactions := next.Transactions[:0]
	for _, tx := range next.Transactions {
		if !owned[tx.InvestmentID] {
			transactions = append(transactions, tx)
		}
	}
	next.Transactions = transactions
	return next, nil
}

// InvestmentInput carries the caller-supplied fields for a new investment.
type InvestmentInput struct {
	Name                 string
	Category             string
	Type                 model.InvestmentType
	InvestedAmount       float64
	CurrentValue         float64
	AcquisitionDate      time.Time
	MaturityDate         *time.Time
	RealizedReturn       float64
	AnnualizedReturnRate float64
	Broker               string
	Notes                string
	Tags                 []string
	Active               bool
}

// AddInvestment appends a new investment to an existing portfolio and
// bumps the portfolio's UpdatedAt timestamp.
func (s *Store) AddInvestment(snap model.Snapshot, portfolioID string, in InvestmentInput) (model.Snapshot, model.Investment, error) {
	if snap.Portfolio(portfolioID) == nil {
		return snap, model.Investment{}, apperrors.ErrPortfolioNotFound
	}
	if strings.TrimSpace(in.Name) == "" {
		return snap, model.Investment{}, apperrors.ErrEmptyName
	}
	if !model.ValidInvestmentType(in.Type) {
		return snap, model.Investment{}, apperrors.ErrInvalidInvestmentType
	}

	now := s.clock.Now()
	investment := model.Investment{
		ID:                   s.newID(),
		Name:                 in.Name,
		Category:             in.Category,
		Type:                 in.Type,
		InvestedAmount:       in.InvestedAmount,
		CurrentValue:         in.CurrentValue,
		AcquisitionDate:      in.AcquisitionDate,
		MaturityDate:         in.MaturityDate,
		RealizedReturn:       in.RealizedReturn,
		AnnualizedReturnRate: in.AnnualizedReturnRate,
		Broker:               in.Broker,
		Notes:                in.Notes,
		Tags:                 in.Tags,
		Active:               in.Active,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	next := snap.Clone()
	portfolio := next.Portfolio(portfolioID)
	portfolio.Investments = append(portfolio.Investments, investment)
	portfolio.UpdatedAt = now
	return next, investment, nil
}

// UpdateInvestmentInput carries partial investment fields. Nil pointers
// leave the corresponding field unchanged.
type UpdateInvestmentInput struct {
	Name                 *string
	Category             *string
	Type                 *model.InvestmentType
	InvestedAmount       *float64
	CurrentValue         *float64
	AcquisitionDate      *time.Time
	MaturityDate         *time.Time
	RealizedReturn       *float64
	AnnualizedReturnRate *float64
	Broker               *string
	Notes                *string
	Tags                 []string
	Active               *bool
}

// UpdateInvestment merges the provided fields into an investment owned
// by the given portfolio.
func (s *Store) UpdateInvestment(snap model.Snapshot, portfolioID, investmentID string, in UpdateInvestmentInput) (model.Snapshot, model.Investment, error) {
	portfolio := snap.Portfolio(portfolioID)
	if portfolio == nil {
		return snap, model.Investment{}, apperrors.ErrPortfolioNotFound
	}
	if portfolio.Investment(investmentID) == nil {
		return snap, model.Investment{}, apperrors.ErrInvestmentNotFound
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return snap, model.Investment{}, apperrors.ErrEmptyName
	}
	if in.Type != nil && !model.ValidInvestmentType(*in.Type) {
		return snap, model.Investment{}, apperrors.ErrInvalidInvestmentType
	}

	now := s.clock.Now()
	next := snap.Clone()
	p := next.Portfolio(portfolioID)
	inv := p.Investment(investmentID)
	if in.Name != nil {
		inv.Name = *in.Name
	}
	if in.Category != nil {
		inv.Category = *in.Category
	}
	if in.Type != nil {
		inv.Type = *in.Type
	}
	if in.InvestedAmount != nil {
		inv.InvestedAmount = *in.InvestedAmount
	}
	if in.CurrentValue != nil {
		inv.CurrentValue = *in.CurrentValue
	}
	if in.AcquisitionDate != nil {
		inv.AcquisitionDate = *in.AcquisitionDate
	}
	if in.MaturityDate != nil {
		md := *in.MaturityDate
		inv.MaturityDate = &md
	}
	if in.RealizedReturn != nil {
		inv.RealizedReturn = *in.RealizedReturn
	}
	if in.AnnualizedReturnRate != nil {
		inv.AnnualizedReturnRate = *in.AnnualizedReturnRate
	}
	if in.Broker != nil {
		inv.Broker = *in.Broker
	}
	if in.Notes != nil {
		inv.Notes = *in.Notes
	}
	if in.Tags != nil {
		inv.Tags = append([]string(nil), in.Tags...)
	}
	if in.Active != nil {
		inv.Active = *in.Active
	}
	inv.UpdatedAt = now
	p.UpdatedAt = now
	return next, *inv, nil
}

// DeleteInvestment removes one investment from a portfolio along with
// every transaction referencing that specific investment. This is the
// narrow cascade; other investments and their transactions are untouched.
func (s *Store) DeleteInvestment(snap model.Snapshot, portfolioID, investmentID string) (model.Snapshot, error) {
	portfolio := snap.Portfolio(portfolioID)
	if portfolio == nil {
		return snap, apperrors.ErrPortfolioNotFound
	}
	if portfolio.Investment(investmentID) == nil {
		return snap, apperrors.ErrInvestmentNotFound
	}

	next := snap.Clone()
	p := next.Portfolio(portfolioID)
	investments := p.Investments[:0]
	for _, inv := range p.Investments {
		if inv.ID != investmentID {
			investments = append(investments, inv)
		}
	}
	p.Investments = investments
	p.UpdatedAt = s.clock.Now()

	transactions := next.Transactions[:0]
	for _, tx := range next.Transactions {
		if tx.InvestmentID != investmentID {
			transactions = append(transactions, tx)
		}
	}
	next.Transactions = transactions
	return next, nil
}

// TransactionInput carries the caller-supplied fields for a new transaction.
type TransactionInput struct {
	InvestmentID string
	Kind         model.TransactionKind
	Amount       float64
	Quantity     float64
	UnitPrice    float64
	Date         time.Time
	Description  string
	Broker       string
}

// AddTransaction appends a transaction to the ledger. The investment
// reference must resolve in the current snapshot; later orphaning is
// prevented by the cascade rules, not re-checked here.
func (s *Store) AddTransaction(snap model.Snapshot, in TransactionInput) (model.Snapshot, model.Transaction, error) {
	if !model.ValidTransactionKind(in.Kind) {
		return snap, model.Transaction{}, apperrors.ErrInvalidTransactionKind
	}
	if in.Amount <= 0 {
		return snap, model.Transaction{}, apperrors.ErrNonPositiveAmount
	}
	if _, inv := snap.Investment(in.InvestmentID); inv == nil {
		return snap, model.Transaction{}, apperrors.ErrUnresolvedInvestment
	}

	tx := model.Transaction{
		ID:           s.newID(),
		InvestmentID: in.InvestmentID,
		Kind:         in.Kind,
		Amount:       in.Amount,
		Quantity:     in.Quantity,
		UnitPrice:    in.UnitPrice,
		Date:         in.Date,
		Description:  in.Description,
		Broker:       in.Broker,
		CreatedAt:    s.clock.Now(),
	}

	next := snap.Clone()
	next.Transactions = append(next.Transactions, tx)
	return next, tx, nil
}
