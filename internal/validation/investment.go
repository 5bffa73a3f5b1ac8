package validation

import (
	"strings"

	"github.com/jdewildt/Finance-Ledger-Backend/internal/api/request"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/model"
)

func ValidateCreateInvestment(req request.CreateInvestmentRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if !model.ValidInvestmentType(model.InvestmentType(req.Type)) {
		errors["type"] = "type must be one of fixed_income, variable_income, funds, crypto, other"
	}

	if req.InvestedAmount < 0 {
		errors["investedAmount"] = "invested amount cannot be negative"
	}
	if req.CurrentValue < 0 {
		errors["currentValue"] = "current value cannot be negative"
	}

	if req.AcquisitionDate == "" {
		errors["acquisitionDate"] = "acquisition date is required"
	} else if !ValidDate(req.AcquisitionDate) {
		errors["acquisitionDate"] = "acquisition date must use the YYYY-MM-DD format"
	}
	if req.MaturityDate != nil && !ValidDate(*req.MaturityDate) {
		errors["maturityDate"] = "maturity date must use the YYYY-MM-DD format"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateInvestment(req request.UpdateInvestmentRequest) error {
	errors := make(map[string]string)

	// Only validate provided fields
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name cannot be empty"
		} else if len(*req.Name) > 100 {
			errors["name"] = "name must be 100 characters or less"
		}
	}

	if req.Type != nil && !model.ValidInvestmentType(model.InvestmentType(*req.Type)) {
		errors["type"] = "type must be one of fixed_income, variable_income, funds, crypto, other"
	}

	if req.InvestedAmount != nil && *req.InvestedAmount < 0 {
		errors["investedAmount"] = "invested amount cannot be negative"
	}
	if req.CurrentValue != nil && *req.CurrentValue < 0 {
		errors["currentValue"] = "current value cannot be negative"
	}

	if req.AcquisitionDate != nil && !ValidDate(*req.AcquisitionDate) {
		errors["acquisitionDate"] = "acquisition date must use the YYYY-MM-DD format"
	}
	if req.MaturityDate != nil && !ValidDate(*req.MaturityDate) {
		errors["maturityDate"] = "maturity date must use the YYYY-MM-DD format"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
