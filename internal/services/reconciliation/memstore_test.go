package reconciliation_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kchowhan/propvestor-sub002/internal/models"
	"github.com/kchowhan/propvestor-sub002/internal/repository"
)

// memDB is an in-memory stand-in for the gorm repositories.
type memDB struct {
	payments     []*models.Payment
	transactions []*models.BankTransaction
	recs         []*models.Reconciliation
	matches      []*models.ReconciliationMatch
	audit        []*models.MatchAuditLog
}

type memPayments struct{ db *memDB }
type memTransactions struct{ db *memDB }
type memReconciliations struct{ db *memDB }

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func (s memPayments) Create(_ context.Context, p *models.Payment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	s.db.payments = append(s.db.payments, &cp)
	return nil
}

func (s memPayments) GetByID(_ context.Context, id uuid.UUID) (*models.Payment, error) {
	for _, p := range s.db.payments {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s memPayments) ListInRange(_ context.Context, orgID string, start, end time.Time, reconciled *bool) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range s.db.payments {
		if p.OrganizationID != orgID || !inRange(p.ReceivedDate, start, end) {
			continue
		}
		if reconciled != nil && p.Reconciled != *reconciled {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s memPayments) CountUnreconciled(ctx context.Context, orgID string, start, end time.Time) (int64, error) {
	open := false
	list, _ := s.ListInRange(ctx, orgID, start, end, &open)
	return int64(len(list)), nil
}

func (s memPayments) MarkReconciled(_ context.Context, id, bankTransactionID uuid.UUID, reconciliationID *uuid.UUID) error {
	for _, p := range s.db.payments {
		if p.ID == id {
			p.Reconciled = true
			txID := bankTransactionID
			p.BankTransactionID = &txID
			if reconciliationID != nil {
				recID := *reconciliationID
				p.ReconciliationID = &recID
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s memTransactions) ExistsDuplicate(_ context.Context, orgID string, date time.Time, amount float64, reference *string) (bool, error) {
	for _, tx := range s.db.transactions {
		if tx.OrganizationID != orgID || !tx.Date.Equal(date) || tx.Amount != amount {
			continue
		}
		if reference != nil && *reference != "" && (tx.Reference == nil || *tx.Reference != *reference) {
			continue
		}
		return true, nil
	}
	return false, nil
}

func (s memTransactions) Create(_ context.Context, tx *models.BankTransaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	cp := *tx
	s.db.transactions = append(s.db.transactions, &cp)
	return nil
}

func (s memTransactions) GetByID(_ context.Context, id uuid.UUID) (*models.BankTransaction, error) {
	for _, tx := range s.db.transactions {
		if tx.ID == id {
			cp := *tx
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s memTransactions) ListInRange(_ context.Context, orgID string, start, end time.Time, reconciled *bool) ([]models.BankTransaction, error) {
	var out []models.BankTransaction
	for _, tx := range s.db.transactions {
		if tx.OrganizationID != orgID || !inRange(tx.Date, start, end) {
			continue
		}
		if reconciled != nil && tx.Reconciled != *reconciled {
			continue
		}
		out = append(out, *tx)
	}
	return out, nil
}

func (s memTransactions) CountUnreconciled(ctx context.Context, orgID string, start, end time.Time) (int64, error) {
	open := false
	list, _ := s.ListInRange(ctx, orgID, start, end, &open)
	return int64(len(list)), nil
}

func (s memTransactions) MarkReconciled(_ context.Context, id, paymentID uuid.UUID, reconciliationID *uuid.UUID) error {
	for _, tx := range s.db.transactions {
		if tx.ID == id {
			tx.Reconciled = true
			pid := paymentID
			tx.PaymentID = &pid
			if reconciliationID != nil {
				recID := *reconciliationID
				tx.ReconciliationID = &recID
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s memReconciliations) Create(_ context.Context, rec *models.Reconciliation) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	cp := *rec
	s.db.recs = append(s.db.recs, &cp)
	return nil
}

func (s memReconciliations) GetByID(_ context.Context, id uuid.UUID) (*models.Reconciliation, error) {
	for _, rec := range s.db.recs {
		if rec.ID == id {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s memReconciliations) ListByOrganization(_ context.Context, orgID string) ([]models.Reconciliation, error) {
	var out []models.Reconciliation
	for _, rec := range s.db.recs {
		if rec.OrganizationID == orgID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (s memReconciliations) CreateMatch(_ context.Context, m *models.ReconciliationMatch) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	cp := *m
	s.db.matches = append(s.db.matches, &cp)
	return nil
}

func (s memReconciliations) ListMatches(_ context.Context, reconciliationID uuid.UUID) ([]models.ReconciliationMatch, error) {
	var out []models.ReconciliationMatch
	for _, m := range s.db.matches {
		if m.ReconciliationID != nil && *m.ReconciliationID == reconciliationID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (s memReconciliations) ClaimUnownedMatches(_ context.Context, orgID string, reconciliationID uuid.UUID) (int64, error) {
	reconciled := make(map[uuid.UUID]bool)
	for _, p := range s.db.payments {
		if p.OrganizationID == orgID && p.Reconciled {
			reconciled[p.ID] = true
		}
	}
	var n int64
	for _, m := range s.db.matches {
		if m.ReconciliationID == nil && reconciled[m.PaymentID] {
			id := reconciliationID
			m.ReconciliationID = &id
			n++
		}
	}
	return n, nil
}

func (s memReconciliations) ListSuggestedMatches(_ context.Context, orgID string) ([]models.ReconciliationMatch, error) {
	open := make(map[uuid.UUID]bool)
	for _, p := range s.db.payments {
		if p.OrganizationID == orgID && !p.Reconciled {
			open[p.ID] = true
		}
	}
	var out []models.ReconciliationMatch
	for _, m := range s.db.matches {
		if m.MatchType == models.MatchTypeSuggested && open[m.PaymentID] {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (s memReconciliations) CreateAuditLog(_ context.Context, entry *models.MatchAuditLog) error {
	cp := *entry
	s.db.audit = append(s.db.audit, &cp)
	return nil
}
