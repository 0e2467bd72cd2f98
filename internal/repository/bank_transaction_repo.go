package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kchowhan/propvestor-sub002/internal/models"
)

type BankTransactionRepository struct {
	db *gorm.DB
}

func NewBankTransactionRepository(db *gorm.DB) *BankTransactionRepository {
	return &BankTransactionRepository{db: db}
}

func (r *BankTransactionRepository) DB() *gorm.DB {
	return r.db
}

// ExistsDuplicate reports whether the organization already holds a posting
// with the same date and amount. The reference only narrows the lookup when
// one is supplied.
func (r *BankTransactionRepository) ExistsDuplicate(ctx context.Context, orgID string, date time.Time, amount float64, reference *string) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&models.BankTransaction{}).
		Where("organization_id = ? AND transaction_date = ? AND amount = ?", orgID, date, amount)

	if reference != nil && *reference != "" {
		query = query.Where("reference = ?", *reference)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BankTransactionRepository) Create(ctx context.Context, tx *models.BankTransaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *BankTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.BankTransaction, error) {
	var tx models.BankTransaction
	if err := r.db.WithContext(ctx).First(&tx, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &tx, nil
}

// ListInRange returns the organization's postings dated within [start, end],
// oldest first. A nil reconciled filter returns both states.
func (r *BankTransactionRepository) ListInRange(ctx context.Context, orgID string, start, end time.Time, reconciled *bool) ([]models.BankTransaction, error) {
	var txs []models.BankTransaction
	query := r.db.WithContext(ctx).
		Where("organization_id = ? AND transaction_date BETWEEN ? AND ?", orgID, start, end).
		Order("transaction_date ASC, created_at ASC, id ASC")

	if reconciled != nil {
		query = query.Where("reconciled = ?", *reconciled)
	}

	err := query.Find(&txs).Error
	return txs, err
}

func (r *BankTransactionRepository) CountUnreconciled(ctx context.Context, orgID string, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.BankTransaction{}).
		Where("organization_id = ? AND transaction_date BETWEEN ? AND ? AND reconciled = ?", orgID, start, end, false).
		Count(&count).Error
	return count, err
}

// MarkReconciled links the posting to its payment. The reconciliation link is
// left untouched when reconciliationID is nil.
func (r *BankTransactionRepository) MarkReconciled(ctx context.Context, id, paymentID uuid.UUID, reconciliationID *uuid.UUID) error {
	updates := map[string]interface{}{
		"reconciled": true,
		"payment_id": paymentID,
	}
	if reconciliationID != nil {
		updates["reconciliation_id"] = *reconciliationID
	}

	result := r.db.WithContext(ctx).
		Model(&models.BankTransaction{}).
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
