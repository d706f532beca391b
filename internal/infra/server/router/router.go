// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/integration/entrypoint/controller"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	expenseController    *controller.ExpenseController
	incomeController     *controller.IncomeController
	goalController       *controller.GoalController
	budgetController     *controller.BudgetController
	onboardingController *controller.OnboardingController
	adviceController     *controller.AdviceController
	adviceRateLimiter    *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	expenseController *controller.ExpenseController,
	incomeController *controller.IncomeController,
	goalController *controller.GoalController,
	budgetController *controller.BudgetController,
	onboardingController *controller.OnboardingController,
	adviceController *controller.AdviceController,
	adviceRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:     healthController,
		expenseController:    expenseController,
		incomeController:     incomeController,
		goalController:       goalController,
		budgetController:     budgetController,
		onboardingController: onboardingController,
		adviceController:     adviceController,
		adviceRateLimiter:    adviceRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		expenses := v1.Group("/expenses")
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", r.expenseController.Create)
			expenses.DELETE("/:id", r.expenseController.Delete)
		}

		incomes := v1.Group("/incomes")
		{
			incomes.GET("", r.incomeController.List)
			incomes.POST("", r.incomeController.Create)
			incomes.DELETE("/:id", r.incomeController.Delete)
		}

		goals := v1.Group("/goals")
		{
			goals.GET("", r.goalController.List)
			goals.POST("", r.goalController.Create)
			goals.DELETE("/:id", r.goalController.Delete)
			goals.POST("/:id/contribute", r.goalController.Contribute)
		}

		budget := v1.Group("/budget")
		{
			budget.GET("", r.budgetController.Get)
			budget.PUT("/savings-target", r.budgetController.SetSavingsTarget)
		}

		v1.POST("/onboarding", r.onboardingController.Import)

		advice := v1.Group("/advice")
		{
			// The advice endpoint fronts a metered AI service.
			advice.POST("", r.adviceRateLimiter.Middleware(), r.adviceController.Send)
			advice.GET("/history", r.adviceController.History)
		}
	}
}
