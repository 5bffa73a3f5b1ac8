package validation

import (
	"strings"

	"github.com/jdewildt/Finance-Ledger-Backend/internal/api/request"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/model"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/recurrence"
)

func ValidateCreateObligation(req request.CreateObligationRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Description) == "" {
		errors["description"] = "description is required"
	} else if len(req.Description) > 200 {
		errors["description"] = "description must be 200 characters or less"
	}

	if req.Amount <= 0 {
		errors["amount"] = "amount must be positive"
	}

	if !model.ValidDirection(model.Direction(req.Direction)) {
		errors["direction"] = "direction must be inflow or outflow"
	}
	if !model.ValidFrequency(model.Frequency(req.Frequency)) {
		errors["frequency"] = "frequency must be one of daily, weekly, biweekly, monthly, bimonthly, quarterly, semiannual, annual"
	}

	if req.StartDate == "" {
		errors["startDate"] = "start date is required"
	} else if !ValidDate(req.StartDate) {
		errors["startDate"] = "start date must use the YYYY-MM-DD format"
	}
	if req.EndDate != nil && !ValidDate(*req.EndDate) {
		errors["endDate"] = "end date must use the YYYY-MM-DD format"
	}

	// Exactly one of end date, installment count, or open-ended.
	if req.EndDate != nil && req.InstallmentCount > 0 {
		errors["installmentCount"] = "end date and installment count are mutually exclusive"
	}
	if req.InstallmentCount < 0 {
		errors["installmentCount"] = "installment count cannot be negative"
	}

	if req.InvestmentID != "" {
		if err := ValidateUUID(req.InvestmentID); err != nil {
			errors["investmentId"] = "investment id must be a valid UUID"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateObligation(req request.UpdateObligationRequest) error {
	errors := make(map[string]string)

	// Only validate provided fields
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			errors["description"] = "description cannot be empty"
		} else if len(*req.Description) > 200 {
			errors["description"] = "description must be 200 characters or less"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateSettleInstallment(req request.SettleInstallmentRequest) error {
	errors := make(map[string]string)

	if req.SettledDate != nil && !ValidDate(*req.SettledDate) {
		errors["settledDate"] = "settled date must use the YYYY-MM-DD format"
	}
	if req.Amount != nil && *req.Amount <= 0 {
		errors["amount"] = "amount must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateEditInstallments(req request.EditInstallmentsRequest) error {
	errors := make(map[string]string)

	switch recurrence.EditMode(req.Mode) {
	case recurrence.EditIndividual, recurrence.EditAll:
	default:
		errors["mode"] = "mode must be individual or all"
	}

	if req.Amount != nil && *req.Amount <= 0 {
		errors["amount"] = "amount must be positive"
	}
	if req.ScheduledDate != nil && !ValidDate(*req.ScheduledDate) {
		errors["scheduledDate"] = "scheduled date must use the YYYY-MM-DD format"
	}
	if req.Amount == nil && req.Category == nil && req.ScheduledDate == nil {
		errors["body"] = "at least one of amount, category or scheduledDate is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
