package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MatchType string

const (
	MatchTypeAuto      MatchType = "auto"
	MatchTypeSuggested MatchType = "suggested"
	MatchTypeManual    MatchType = "manual"
)

// ReconciliationMatch pairs one Payment with one BankTransaction. A match
// starts unclaimed (nil ReconciliationID) unless created inside a session,
// and is claimed at most once when a session is built.
type ReconciliationMatch struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	PaymentID         uuid.UUID      `gorm:"type:uuid;index" json:"payment_id"`
	BankTransactionID uuid.UUID      `gorm:"type:uuid;index" json:"bank_transaction_id"`
	MatchType         MatchType      `gorm:"index" json:"match_type"`
	Confidence        float64        `json:"confidence"`
	ReconciliationID  *uuid.UUID     `gorm:"type:uuid;index" json:"reconciliation_id,omitempty"`
	Details           datatypes.JSON `json:"details,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
}

// Claimed reports whether a reconciliation session owns the match.
func (m ReconciliationMatch) Claimed() bool {
	return m.ReconciliationID != nil
}
