package reconciliation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/kchowhan/propvestor-sub002/internal/models"
)

// ManualMatch pairs a payment and a bank transaction inside an existing
// reconciliation. It does not check whether either side is already matched;
// earlier links are overwritten and kept in the audit log.
func (s *ReconciliationService) ManualMatch(ctx context.Context, reconciliationID, paymentID, bankTransactionID uuid.UUID, performedBy string) error {
	if _, err := s.reconciliations.GetByID(ctx, reconciliationID); err != nil {
		return fmt.Errorf("reconciliation %s: %w", reconciliationID, err)
	}
	payment, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("payment %s: %w", paymentID, err)
	}
	tx, err := s.transactions.GetByID(ctx, bankTransactionID)
	if err != nil {
		return fmt.Errorf("bank transaction %s: %w", bankTransactionID, err)
	}

	details, _ := json.Marshal(map[string]interface{}{"rule": string(models.MatchTypeManual)})
	match := &models.ReconciliationMatch{
		PaymentID:         paymentID,
		BankTransactionID: bankTransactionID,
		MatchType:         models.MatchTypeManual,
		Confidence:        100,
		ReconciliationID:  &reconciliationID,
		Details:           datatypes.JSON(details),
	}
	if err := s.reconcilePair(ctx, match, &reconciliationID, &reconciliationID); err != nil {
		return err
	}

	entry := &models.MatchAuditLog{
		ReconciliationID:      reconciliationID,
		PaymentID:             paymentID,
		BankTransactionID:     bankTransactionID,
		Action:                models.AuditActionManualMatch,
		PreviousTransactionID: payment.BankTransactionID,
		PreviousPaymentID:     tx.PaymentID,
		PerformedBy:           performedBy,
	}
	if err := s.reconciliations.CreateAuditLog(ctx, entry); err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"reconciliation_id":   reconciliationID,
		"payment_id":          paymentID,
		"bank_transaction_id": bankTransactionID,
		"overrode":            payment.Reconciled || tx.Reconciled,
	}).Info("manual match recorded")
	return nil
}
