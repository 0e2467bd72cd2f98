package reconciliation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kchowhan/propvestor-sub002/internal/models"
)

// PaymentInput is a payment handed over by the billing flow.
type PaymentInput struct {
	ID           *uuid.UUID `json:"id,omitempty"`
	ChargeID     *string    `json:"charge_id,omitempty"`
	ReceivedDate time.Time  `json:"received_date" binding:"required"`
	Amount       float64    `json:"amount"`
	Method       string     `json:"method,omitempty"`
}

func (s *ReconciliationService) RecordPayment(ctx context.Context, orgID string, in PaymentInput) (*models.Payment, error) {
	if orgID == "" {
		return nil, &ValidationError{Field: "organization_id", Reason: "required"}
	}
	p := &models.Payment{
		OrganizationID: orgID,
		ChargeID:       in.ChargeID,
		ReceivedDate:   in.ReceivedDate,
		Amount:         in.Amount,
		Method:         in.Method,
	}
	if in.ID != nil {
		p.ID = *in.ID
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}
	return p, nil
}

func (s *ReconciliationService) ListPayments(ctx context.Context, orgID string, start, end time.Time, reconciled *bool) ([]models.Payment, error) {
	if err := validateRange(orgID, start, end); err != nil {
		return nil, err
	}
	return s.payments.ListInRange(ctx, orgID, start, end, reconciled)
}

func (s *ReconciliationService) ListBankTransactions(ctx context.Context, orgID string, start, end time.Time, reconciled *bool) ([]models.BankTransaction, error) {
	if err := validateRange(orgID, start, end); err != nil {
		return nil, err
	}
	return s.transactions.ListInRange(ctx, orgID, start, end, reconciled)
}

func (s *ReconciliationService) ListReconciliations(ctx context.Context, orgID string) ([]models.Reconciliation, error) {
	return s.reconciliations.ListByOrganization(ctx, orgID)
}

// GetReconciliation returns the session with the matches it owns.
func (s *ReconciliationService) GetReconciliation(ctx context.Context, id uuid.UUID) (*models.Reconciliation, error) {
	rec, err := s.reconciliations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Matches, err = s.reconciliations.ListMatches(ctx, id); err != nil {
		return nil, fmt.Errorf("load matches: %w", err)
	}
	return rec, nil
}

func (s *ReconciliationService) ListSuggestedMatches(ctx context.Context, orgID string) ([]models.ReconciliationMatch, error) {
	return s.reconciliations.ListSuggestedMatches(ctx, orgID)
}
