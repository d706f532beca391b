// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/config"
	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/advice"
	"github.com/budgetwise/backend/internal/application/usecase/budget"
	"github.com/budgetwise/backend/internal/application/usecase/expense"
	"github.com/budgetwise/backend/internal/application/usecase/goal"
	"github.com/budgetwise/backend/internal/application/usecase/income"
	"github.com/budgetwise/backend/internal/application/usecase/onboarding"
	"github.com/budgetwise/backend/internal/infra/server/router"
	"github.com/budgetwise/backend/internal/integration/adapters"
	"github.com/budgetwise/backend/internal/integration/entrypoint/controller"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
	"github.com/budgetwise/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	expenseRepo := persistence.NewExpenseRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)

	// Create adapters/services
	conversationStore := adapters.NewRedisConversationStore(redisClient)
	adviceService := newAdviceService(cfg)

	// Create expense use cases
	addExpenseUseCase := expense.NewAddExpenseUseCase(expenseRepo)
	removeExpenseUseCase := expense.NewRemoveExpenseUseCase(expenseRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)

	// Create income use cases
	addIncomeUseCase := income.NewAddIncomeUseCase(incomeRepo)
	removeIncomeUseCase := income.NewRemoveIncomeUseCase(incomeRepo)
	listIncomesUseCase := income.NewListIncomesUseCase(incomeRepo)

	// Create goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	contributeGoalUseCase := goal.NewContributeGoalUseCase(goalRepo)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, incomeRepo)

	// Create budget use cases
	deriveBudgetPlanUseCase := budget.NewDeriveBudgetPlanUseCase(expenseRepo, incomeRepo, goalRepo, settingsRepo)
	setSavingsTargetUseCase := budget.NewSetSavingsTargetUseCase(settingsRepo)

	// Create onboarding use case
	importSnapshotUseCase := onboarding.NewImportSnapshotUseCase(expenseRepo, incomeRepo, goalRepo, settingsRepo)

	// Create advice use cases
	sendMessageUseCase := advice.NewSendMessageUseCase(deriveBudgetPlanUseCase, expenseRepo, conversationStore, adviceService)
	getHistoryUseCase := advice.NewGetHistoryUseCase(conversationStore)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})
	expenseController := controller.NewExpenseController(addExpenseUseCase, removeExpenseUseCase, listExpensesUseCase)
	incomeController := controller.NewIncomeController(addIncomeUseCase, removeIncomeUseCase, listIncomesUseCase)
	goalController := controller.NewGoalController(createGoalUseCase, deleteGoalUseCase, contributeGoalUseCase, listGoalsUseCase)
	budgetController := controller.NewBudgetController(deriveBudgetPlanUseCase, setSavingsTargetUseCase)
	onboardingController := controller.NewOnboardingController(importSnapshotUseCase)
	adviceController := controller.NewAdviceController(sendMessageUseCase, getHistoryUseCase)

	// Create middleware
	// Use a generous limit for the test environment to prevent flaky tests
	var adviceRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		adviceRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		adviceRateLimiter = middleware.NewRateLimiterWithConfig(cfg.RateLimit.AdviceRequestsPerMinute, 1*time.Minute)
	}

	// Create router
	r := router.NewRouter(
		healthController,
		expenseController,
		incomeController,
		goalController,
		budgetController,
		onboardingController,
		adviceController,
		adviceRateLimiter,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}

// newAdviceService picks the advice backend from configuration: the
// OpenAI-compatible gateway when a URL is set, otherwise Gemini. Without
// either, the chat still works through local fallback replies.
func newAdviceService(cfg *config.Config) adapter.AdviceService {
	if cfg.AI.GatewayURL != "" {
		slog.Info("Advice service: gateway", "model", cfg.AI.GatewayModel)
		return adapters.NewGatewayAdviceService(cfg.AI.GatewayURL, cfg.AI.GatewayAPIKey, cfg.AI.GatewayModel, cfg.AI.RequestTimeout)
	}
	if cfg.AI.GeminiAPIKey != "" {
		slog.Info("Advice service: gemini", "model", cfg.AI.GeminiModel)
		return adapters.NewGeminiAdviceService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}
	slog.Warn("Advice service not configured; chat will answer with fallback replies")
	return adapters.NewGeminiAdviceService("", cfg.AI.GeminiModel)
}
