package models

import (
	"time"

	"github.com/google/uuid"
)

const ReconciliationInProgress = "IN_PROGRESS"

type Reconciliation struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID string    `gorm:"index;not null" json:"organization_id"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Status         string    `gorm:"index" json:"status"`
	ExpectedTotal  float64   `json:"expected_total"`
	ActualTotal    float64   `json:"actual_total"`
	Difference     float64   `json:"difference"`
	CreatedAt      time.Time `json:"created_at"`

	Matches []ReconciliationMatch `gorm:"-" json:"matches,omitempty"`
}
