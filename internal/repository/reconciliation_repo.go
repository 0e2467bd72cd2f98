package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kchowhan/propvestor-sub002/internal/models"
)

// ReconciliationRepository stores sessions together with the matches and
// audit entries that hang off them.
type ReconciliationRepository struct {
	db *gorm.DB
}

func NewReconciliationRepository(db *gorm.DB) *ReconciliationRepository {
	return &ReconciliationRepository{db: db}
}

func (r *ReconciliationRepository) Create(ctx context.Context, rec *models.Reconciliation) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *ReconciliationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Reconciliation, error) {
	var rec models.Reconciliation
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

func (r *ReconciliationRepository) ListByOrganization(ctx context.Context, orgID string) ([]models.Reconciliation, error) {
	var recs []models.Reconciliation
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&recs).Error
	return recs, err
}

func (r *ReconciliationRepository) CreateMatch(ctx context.Context, m *models.ReconciliationMatch) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ReconciliationRepository) ListMatches(ctx context.Context, reconciliationID uuid.UUID) ([]models.ReconciliationMatch, error) {
	var matches []models.ReconciliationMatch
	err := r.db.WithContext(ctx).
		Where("reconciliation_id = ?", reconciliationID).
		Order("created_at ASC, id ASC").
		Find(&matches).Error
	return matches, err
}

// ClaimUnownedMatches stamps every unclaimed match whose payment in the
// organization is reconciled with the given session id.
func (r *ReconciliationRepository) ClaimUnownedMatches(ctx context.Context, orgID string, reconciliationID uuid.UUID) (int64, error) {
	reconciledPayments := r.db.
		Model(&models.Payment{}).
		Select("id").
		Where("organization_id = ? AND reconciled = ?", orgID, true)

	result := r.db.WithContext(ctx).
		Model(&models.ReconciliationMatch{}).
		Where("reconciliation_id IS NULL AND payment_id IN (?)", reconciledPayments).
		Update("reconciliation_id", reconciliationID)
	return result.RowsAffected, result.Error
}

// ListSuggestedMatches returns advisory matches whose payment is still
// waiting for confirmation.
func (r *ReconciliationRepository) ListSuggestedMatches(ctx context.Context, orgID string) ([]models.ReconciliationMatch, error) {
	var matches []models.ReconciliationMatch
	err := r.db.WithContext(ctx).
		Joins("JOIN payments ON payments.id = reconciliation_matches.payment_id").
		Where("payments.organization_id = ? AND payments.reconciled = ? AND reconciliation_matches.match_type = ?",
			orgID, false, models.MatchTypeSuggested).
		Order("reconciliation_matches.confidence DESC, reconciliation_matches.created_at ASC").
		Find(&matches).Error
	return matches, err
}

func (r *ReconciliationRepository) CreateAuditLog(ctx context.Context, entry *models.MatchAuditLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(entry).Error
}
