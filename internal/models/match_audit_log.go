package models

import (
	"time"

	"github.com/google/uuid"
)

const AuditActionManualMatch = "manual_match"

// MatchAuditLog records manual overrides, including the counterparts a row
// was linked to before the override.
type MatchAuditLog struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ReconciliationID      uuid.UUID  `gorm:"type:uuid;index" json:"reconciliation_id"`
	PaymentID             uuid.UUID  `gorm:"type:uuid;index" json:"payment_id"`
	BankTransactionID     uuid.UUID  `gorm:"type:uuid;index" json:"bank_transaction_id"`
	Action                string     `json:"action"`
	PreviousTransactionID *uuid.UUID `gorm:"type:uuid" json:"previous_transaction_id,omitempty"`
	PreviousPaymentID     *uuid.UUID `gorm:"type:uuid" json:"previous_payment_id,omitempty"`
	PerformedBy           string     `json:"performed_by,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}
