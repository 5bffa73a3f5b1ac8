package handlers

import (
	"net/http"

	"github.com/jdewildt/Finance-Ledger-Backend/internal/api/request"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/api/response"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/ledger"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/model"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/service"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/validation"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	profileService *service.ProfileService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(profileService *service.ProfileService) *TransactionHandler {
	return &TransactionHandler{
		profileService: profileService,
	}
}

// Transactions lists transactions, optionally filtered with the
// investment_id query parameter.
func (h *TransactionHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	investmentID := r.URL.Query().Get("investment_id")
	if investmentID != "" {
		if err := validation.ValidateUUID(investmentID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid UUID format", err.Error())
			return
		}
	}
	respondJSON(w, http.StatusOK, h.profileService.ListTransactions(investmentID))
}

// CreateTransaction records a transaction against an investment.
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTransactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidateCreateTransaction(req); err != nil {
		respondServiceError(w, "Transaction validation failed", err)
		return
	}

	tx, err := h.profileService.AddTransaction(ledger.TransactionInput{
		InvestmentID: req.InvestmentID,
		Kind:         model.TransactionKind(req.Kind),
		Amount:       req.Amount,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		Date:         parseDate(req.Date),
		Description:  req.Description,
		Broker:       req.Broker,
	})
	if err != nil {
		respondServiceError(w, "Failed to create transaction", err)
		return
	}
	respondJSON(w, http.StatusCreated, tx)
}
