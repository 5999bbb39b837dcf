package app

import (
	"fmt"

	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"gorm.io/gorm"
)

// liveActionIndex keeps at most one pending invitation or request per user,
// company and kind. Finished actions are kept as history.
const liveActionIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_actions_live
	ON actions (user_id, company_id, kind) WHERE state = 'sent'`

// Migrate creates the schema. It is safe to run repeatedly.
func Migrate(db *gorm.DB) error {
	for _, stmt := range []string{
		`CREATE EXTENSION IF NOT EXISTS citext`,
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("enabling extension: %w", err)
		}
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Company{},
		&model.Membership{},
		&model.Action{},
		&model.Quiz{},
		&model.Question{},
		&model.Result{},
		&model.Notification{},
	); err != nil {
		return fmt.Errorf("migrating tables: %w", err)
	}

	if err := db.Exec(liveActionIndex).Error; err != nil {
		return fmt.Errorf("creating live action index: %w", err)
	}
	return nil
}
