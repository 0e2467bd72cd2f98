package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment is a receipt of money recorded by the billing flow. Only the
// reconciliation fields are written by this service after creation.
type Payment struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID    string     `gorm:"index;not null" json:"organization_id"`
	ChargeID          *string    `gorm:"index" json:"charge_id,omitempty"`
	ReceivedDate      time.Time  `gorm:"index" json:"received_date"`
	Amount            float64    `gorm:"index" json:"amount"`
	Method            string     `json:"method,omitempty"`
	Reconciled        bool       `gorm:"index" json:"reconciled"`
	BankTransactionID *uuid.UUID `gorm:"type:uuid;index" json:"bank_transaction_id,omitempty"`
	ReconciliationID  *uuid.UUID `gorm:"type:uuid;index" json:"reconciliation_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
