package handlers_test

import (
	"testing"

	"github.com/jdewildt/Finance-Ledger-Backend/internal/ledger"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/model"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/service"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/testutil"
)

// addTransaction records a buy transaction against an investment.
func addTransaction(t *testing.T, svc *service.ProfileService, investmentID string, amount float64) model.Transaction {
	t.Helper()

	tx, err := svc.AddTransaction(ledger.TransactionInput{
		InvestmentID: investmentID,
		Kind:         model.TransactionBuy,
		Amount:       amount,
		Date:         testutil.TestTime,
	})
	if err != nil {
		t.Fatalf("Failed to add transaction: %v", err)
	}
	return tx
}
