// Package dto defines data transfer objects for API requests and responses.
package dto

// OnboardingEmiRequest represents one running loan in the onboarding snapshot.
type OnboardingEmiRequest struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount" binding:"gte=0"`
}

// OnboardingExpenseRequest represents one recurring expense in the snapshot.
type OnboardingExpenseRequest struct {
	Name     string  `json:"name" binding:"required"`
	Amount   float64 `json:"amount" binding:"gte=0"`
	Category string  `json:"category" binding:"required"`
}

// OnboardingGoalRequest represents one savings goal in the snapshot.
type OnboardingGoalRequest struct {
	Name              string  `json:"name" binding:"required"`
	TargetAmount      float64 `json:"target_amount" binding:"required,gt=0"`
	MonthlyPercentage float64 `json:"monthly_percentage" binding:"required,gt=0,lte=100"`
}

// OnboardingRequest represents the one-shot onboarding import body.
type OnboardingRequest struct {
	MonthlySalary float64                    `json:"monthly_salary" binding:"gte=0"`
	OtherIncome   float64                    `json:"other_income" binding:"gte=0"`
	Emis          []OnboardingEmiRequest     `json:"emis"`
	Expenses      []OnboardingExpenseRequest `json:"expenses"`
	Goals         []OnboardingGoalRequest    `json:"goals"`
}

// OnboardingResponse represents the result of an onboarding import.
type OnboardingResponse struct {
	IncomesCreated    int     `json:"incomes_created"`
	ExpensesCreated   int     `json:"expenses_created"`
	GoalsCreated      int     `json:"goals_created"`
	SavingsGoalTarget float64 `json:"savings_goal_target"`
}
