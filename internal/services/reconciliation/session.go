package reconciliation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kchowhan/propvestor-sub002/internal/models"
)

type SessionResult struct {
	ID                    uuid.UUID `json:"id"`
	Matched               int       `json:"matched"`
	Suggested             int       `json:"suggested"`
	UnmatchedPayments     int64     `json:"unmatched_payments"`
	UnmatchedTransactions int64     `json:"unmatched_transactions"`
}

// CreateReconciliation runs the auto-matcher over [start, end], records a
// session with the expected (payments) and actual (bank) totals for the whole
// range, and claims every unowned match of a reconciled payment for it.
func (s *ReconciliationService) CreateReconciliation(ctx context.Context, orgID string, start, end time.Time) (SessionResult, error) {
	var result SessionResult
	if err := validateRange(orgID, start, end); err != nil {
		return result, err
	}

	matched, err := s.AutoMatchPayments(ctx, orgID, start, end)
	if err != nil {
		return result, fmt.Errorf("auto-match: %w", err)
	}
	result.Matched = matched.Matched
	result.Suggested = matched.Suggested

	payments, err := s.payments.ListInRange(ctx, orgID, start, end, nil)
	if err != nil {
		return result, fmt.Errorf("load payments: %w", err)
	}
	txs, err := s.transactions.ListInRange(ctx, orgID, start, end, nil)
	if err != nil {
		return result, fmt.Errorf("load bank transactions: %w", err)
	}

	expected := sumPayments(payments)
	actual := sumTransactions(txs)

	rec := &models.Reconciliation{
		ID:             uuid.New(),
		OrganizationID: orgID,
		StartDate:      start,
		EndDate:        end,
		Status:         models.ReconciliationInProgress,
		ExpectedTotal:  expected.InexactFloat64(),
		ActualTotal:    actual.InexactFloat64(),
		Difference:     actual.Sub(expected).InexactFloat64(),
	}
	if err := s.reconciliations.Create(ctx, rec); err != nil {
		return result, fmt.Errorf("create reconciliation: %w", err)
	}
	result.ID = rec.ID

	claimed, err := s.reconciliations.ClaimUnownedMatches(ctx, orgID, rec.ID)
	if err != nil {
		return result, fmt.Errorf("claim matches: %w", err)
	}

	if result.UnmatchedPayments, err = s.payments.CountUnreconciled(ctx, orgID, start, end); err != nil {
		return result, fmt.Errorf("count unmatched payments: %w", err)
	}
	if result.UnmatchedTransactions, err = s.transactions.CountUnreconciled(ctx, orgID, start, end); err != nil {
		return result, fmt.Errorf("count unmatched bank transactions: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"organization_id":        orgID,
		"reconciliation_id":      rec.ID,
		"expected_total":         rec.ExpectedTotal,
		"actual_total":           rec.ActualTotal,
		"difference":             rec.Difference,
		"claimed_matches":        claimed,
		"unmatched_payments":     result.UnmatchedPayments,
		"unmatched_transactions": result.UnmatchedTransactions,
	}).Info("reconciliation created")
	return result, nil
}
