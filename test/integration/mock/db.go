package mock

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

// NewDb opens a fresh in-memory database with all tables migrated. Each
// scenario gets its own database, so no cross-scenario cleanup is needed.
func NewDb() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	if err := db.AutoMigrate(
		&model.ExpenseModel{},
		&model.IncomeModel{},
		&model.GoalModel{},
		&model.SettingModel{},
	); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return db
}
