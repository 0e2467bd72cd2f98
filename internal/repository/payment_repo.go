package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kchowhan/propvestor-sub002/internal/models"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create inserts the payment, ignoring a replay of an id already stored.
func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(p).Error
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	var p models.Payment
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// ListInRange returns payments received within [start, end], oldest first.
func (r *PaymentRepository) ListInRange(ctx context.Context, orgID string, start, end time.Time, reconciled *bool) ([]models.Payment, error) {
	var payments []models.Payment
	query := r.db.WithContext(ctx).
		Where("organization_id = ? AND received_date BETWEEN ? AND ?", orgID, start, end).
		Order("received_date ASC, created_at ASC, id ASC")

	if reconciled != nil {
		query = query.Where("reconciled = ?", *reconciled)
	}

	err := query.Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) CountUnreconciled(ctx context.Context, orgID string, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("organization_id = ? AND received_date BETWEEN ? AND ? AND reconciled = ?", orgID, start, end, false).
		Count(&count).Error
	return count, err
}

func (r *PaymentRepository) MarkReconciled(ctx context.Context, id, bankTransactionID uuid.UUID, reconciliationID *uuid.UUID) error {
	updates := map[string]interface{}{
		"reconciled":          true,
		"bank_transaction_id": bankTransactionID,
	}
	if reconciliationID != nil {
		updates["reconciliation_id"] = *reconciliationID
	}

	result := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
