package repository

import (
	"gorm.io/gorm"

	"github.com/kchowhan/propvestor-sub002/internal/models"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Payment{},
		&models.BankTransaction{},
		&models.Reconciliation{},
		&models.ReconciliationMatch{},
		&models.MatchAuditLog{},
	)
}
