package request

// GoalRequest is the optional savings target attached to a portfolio.
// Deadline uses the YYYY-MM-DD date format.
type GoalRequest struct {
	TargetValue float64 `json:"targetValue"`
	Deadline    string  `json:"deadline"`
	Description string  `json:"description,omitempty"`
}

// CreatePortfolioRequest represents the request body for creating a portfolio
type CreatePortfolioRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Goal        *GoalRequest `json:"goal,omitempty"`
}

// UpdatePortfolioRequest carries partial portfolio fields; absent fields
// are left unchanged. ClearGoal removes an existing goal.
type UpdatePortfolioRequest struct {
	Name        *string      `json:"name,omitempty"`
	Description *string      `json:"description,omitempty"`
	Goal        *GoalRequest `json:"goal,omitempty"`
	ClearGoal   bool         `json:"clearGoal,omitempty"`
}
