package validation

import (
	"github.com/jdewildt/Finance-Ledger-Backend/internal/api/request"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/model"
)

func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if req.InvestmentID == "" {
		errors["investmentId"] = "investment id is required"
	} else if err := ValidateUUID(req.InvestmentID); err != nil {
		errors["investmentId"] = "investment id must be a valid UUID"
	}

	if !model.ValidTransactionKind(model.TransactionKind(req.Kind)) {
		errors["kind"] = "kind must be one of buy, sell, dividend, interest, fee"
	}

	if req.Amount <= 0 {
		errors["amount"] = "amount must be positive"
	}
	if req.Quantity < 0 {
		errors["quantity"] = "quantity cannot be negative"
	}
	if req.UnitPrice < 0 {
		errors["unitPrice"] = "unit price cannot be negative"
	}

	if req.Date == "" {
		errors["date"] = "date is required"
	} else if !ValidDate(req.Date) {
		errors["date"] = "date must use the YYYY-MM-DD format"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
