package validation

import (
	"strings"

	"github.com/jdewildt/Finance-Ledger-Backend/internal/api/request"
)

func ValidateCreatePortfolio(req request.CreatePortfolioRequest) error {
	errors := make(map[string]string)

	// Required field
	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	// Optional but has constraints
	if len(req.Description) > 500 {
		errors["description"] = "description must be 500 characters or less"
	}

	validateGoal(req.Goal, errors)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdatePortfolio(req request.UpdatePortfolioRequest) error {
	errors := make(map[string]string)

	// Only validate provided fields
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name cannot be empty"
		} else if len(*req.Name) > 100 {
			errors["name"] = "name must be 100 characters or less"
		}
	}

	if req.Description != nil && len(*req.Description) > 500 {
		errors["description"] = "description must be 500 characters or less"
	}

	if req.Goal != nil && req.ClearGoal {
		errors["goal"] = "goal and clearGoal are mutually exclusive"
	}
	validateGoal(req.Goal, errors)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateGoal(goal *request.GoalRequest, errors map[string]string) {
	if goal == nil {
		return
	}
	if goal.TargetValue <= 0 {
		errors["goal.targetValue"] = "target value must be positive"
	}
	if goal.Deadline != "" && !ValidDate(goal.Deadline) {
		errors["goal.deadline"] = "deadline must use the YYYY-MM-DD format"
	}
}
