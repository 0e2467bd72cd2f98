package reconciliation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/kchowhan/propvestor-sub002/internal/models"
	"github.com/kchowhan/propvestor-sub002/internal/services/matching"
)

type AutoMatchResult struct {
	Matched   int `json:"matched"`
	Suggested int `json:"suggested"`
}

// AutoMatchPayments pairs the organization's unreconciled payments received
// in [start, end] with unreconciled bank transactions in the same range.
// Exact matches reconcile both sides; fuzzy matches are only recorded as
// suggestions. Writes are issued per match, so a failure part way leaves the
// earlier matches in place.
func (s *ReconciliationService) AutoMatchPayments(ctx context.Context, orgID string, start, end time.Time) (AutoMatchResult, error) {
	var result AutoMatchResult
	if err := validateRange(orgID, start, end); err != nil {
		return result, err
	}

	unreconciled := false
	payments, err := s.payments.ListInRange(ctx, orgID, start, end, &unreconciled)
	if err != nil {
		return result, fmt.Errorf("load payments: %w", err)
	}
	txs, err := s.transactions.ListInRange(ctx, orgID, start, end, &unreconciled)
	if err != nil {
		return result, fmt.Errorf("load bank transactions: %w", err)
	}

	pool := matching.NewPool(txs)
	for _, payment := range payments {
		if pool.Available() == 0 {
			break
		}
		found, ok := pool.Match(payment)
		if !ok {
			continue
		}

		match := &models.ReconciliationMatch{
			PaymentID:         payment.ID,
			BankTransactionID: found.Transaction.ID,
			MatchType:         found.Type,
			Confidence:        found.Confidence,
			Details:           matchDetails(found),
		}

		switch found.Type {
		case models.MatchTypeAuto:
			match.ReconciliationID = payment.ReconciliationID
			if err := s.reconcilePair(ctx, match, nil, nil); err != nil {
				return result, err
			}
			pool.Consume(found.Transaction.ID)
			result.Matched++
		case models.MatchTypeSuggested:
			if err := s.reconciliations.CreateMatch(ctx, match); err != nil {
				return result, fmt.Errorf("create suggested match: %w", err)
			}
			result.Suggested++
		}

		s.log.WithFields(map[string]interface{}{
			"payment_id":          payment.ID,
			"bank_transaction_id": found.Transaction.ID,
			"match_type":          found.Type,
			"confidence":          found.Confidence,
		}).Debug("payment matched")
	}

	s.log.WithFields(map[string]interface{}{
		"organization_id": orgID,
		"payments":        len(payments),
		"transactions":    len(txs),
		"matched":         result.Matched,
		"suggested":       result.Suggested,
	}).Info("auto-match completed")
	return result, nil
}

// reconcilePair stores the match and marks both sides reconciled, linked to
// each other. paymentRec and txRec are the reconciliation links to set on
// each side; nil leaves the existing link alone.
func (s *ReconciliationService) reconcilePair(ctx context.Context, match *models.ReconciliationMatch, paymentRec, txRec *uuid.UUID) error {
	if err := s.reconciliations.CreateMatch(ctx, match); err != nil {
		return fmt.Errorf("create %s match: %w", match.MatchType, err)
	}
	if err := s.payments.MarkReconciled(ctx, match.PaymentID, match.BankTransactionID, paymentRec); err != nil {
		return fmt.Errorf("mark payment %s reconciled: %w", match.PaymentID, err)
	}
	if err := s.transactions.MarkReconciled(ctx, match.BankTransactionID, match.PaymentID, txRec); err != nil {
		return fmt.Errorf("mark bank transaction %s reconciled: %w", match.BankTransactionID, err)
	}
	return nil
}

func matchDetails(r matching.Result) datatypes.JSON {
	details := map[string]interface{}{
		"rule":         string(r.Type),
		"amount_delta": r.AmountDelta,
		"days_apart":   r.DaysApart,
		"confidence":   r.Confidence,
	}
	b, _ := json.Marshal(details)
	return datatypes.JSON(b)
}
