package reconciliation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kchowhan/propvestor-sub002/internal/models"
)

// The service depends on these store interfaces rather than on the gorm
// repositories directly.
//
//go:generate mockgen -destination=mocks/mock_store.go -package=mocks -source=interface.go

type PaymentStore interface {
	Create(ctx context.Context, p *models.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	ListInRange(ctx context.Context, orgID string, start, end time.Time, reconciled *bool) ([]models.Payment, error)
	CountUnreconciled(ctx context.Context, orgID string, start, end time.Time) (int64, error)
	MarkReconciled(ctx context.Context, id, bankTransactionID uuid.UUID, reconciliationID *uuid.UUID) error
}

type BankTransactionStore interface {
	ExistsDuplicate(ctx context.Context, orgID string, date time.Time, amount float64, reference *string) (bool, error)
	Create(ctx context.Context, tx *models.BankTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.BankTransaction, error)
	ListInRange(ctx context.Context, orgID string, start, end time.Time, reconciled *bool) ([]models.BankTransaction, error)
	CountUnreconciled(ctx context.Context, orgID string, start, end time.Time) (int64, error)
	MarkReconciled(ctx context.Context, id, paymentID uuid.UUID, reconciliationID *uuid.UUID) error
}

type ReconciliationStore interface {
	Create(ctx context.Context, rec *models.Reconciliation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Reconciliation, error)
	ListByOrganization(ctx context.Context, orgID string) ([]models.Reconciliation, error)
	CreateMatch(ctx context.Context, match *models.ReconciliationMatch) error
	ListMatches(ctx context.Context, reconciliationID uuid.UUID) ([]models.ReconciliationMatch, error)
	ClaimUnownedMatches(ctx context.Context, orgID string, reconciliationID uuid.UUID) (int64, error)
	ListSuggestedMatches(ctx context.Context, orgID string) ([]models.ReconciliationMatch, error)
	CreateAuditLog(ctx context.Context, entry *models.MatchAuditLog) error
}
