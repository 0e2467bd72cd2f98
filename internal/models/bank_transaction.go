package models

import (
	"time"

	"github.com/google/uuid"
)

type BankTransaction struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID   string     `gorm:"index;not null" json:"organization_id"`
	Date             time.Time  `gorm:"column:transaction_date;index" json:"date"`
	Amount           float64    `gorm:"index" json:"amount"`
	Description      string     `json:"description"`
	Reference        *string    `json:"reference,omitempty"`
	AccountNumber    *string    `json:"account_number,omitempty"`
	AccountName      *string    `json:"account_name,omitempty"`
	ImportSource     string     `json:"import_source"`
	Reconciled       bool       `gorm:"index" json:"reconciled"`
	PaymentID        *uuid.UUID `gorm:"type:uuid;index" json:"payment_id,omitempty"`
	ReconciliationID *uuid.UUID `gorm:"type:uuid;index" json:"reconciliation_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
