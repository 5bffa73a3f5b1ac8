package testutil

import (
	"testing"
	"time"

	"github.com/jdewildt/Finance-Ledger-Backend/internal/ledger"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/model"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/recurrence"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/service"
)

// CreatePortfolio creates a portfolio through the service.
func CreatePortfolio(t *testing.T, svc *service.ProfileService, name string) model.Portfolio {
	t.Helper()

	portfolio, err := svc.CreatePortfolio(ledger.CreatePortfolioInput{Name: name})
	if err != nil {
		t.Fatalf("Failed to create portfolio %q: %v", name, err)
	}
	return portfolio
}

// CreateInvestment adds an active investment with the given amounts and
// annualized return rate.
func CreateInvestment(t *testing.T, svc *service.ProfileService, portfolioID, name string, invested, current, rate float64) model.Investment {
	t.Helper()

	investment, err := svc.AddInvestment(portfolioID, ledger.InvestmentInput{
		Name:                 name,
		Type:                 model.InvestmentTypeFixedIncome,
		InvestedAmount:       invested,
		CurrentValue:         current,
		AnnualizedReturnRate: rate,
		AcquisitionDate:      TestTime,
		Active:               true,
	})
	if err != nil {
		t.Fatalf("Failed to add investment %q: %v", name, err)
	}
	return investment
}

// CreateMonthlyObligation creates a monthly outflow obligation with a
// fixed installment count.
func CreateMonthlyObligation(t *testing.T, svc *service.ProfileService, description string, start time.Time, count int) model.RecurringObligation {
	t.Helper()

	obligation, err := svc.CreateObligation(recurrence.ObligationInput{
		Description:      description,
		Amount:           100,
		Direction:        model.DirectionOutflow,
		Category:         "housing",
		Frequency:        model.FrequencyMonthly,
		StartDate:        start,
		InstallmentCount: count,
	})
	if err != nil {
		t.Fatalf("Failed to create obligation %q: %v", description, err)
	}
	return obligation
}
