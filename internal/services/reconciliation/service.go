package reconciliation

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/kchowhan/propvestor-sub002/internal/models"
)

const DefaultImportSource = "manual"

type ReconciliationService struct {
	payments        PaymentStore
	transactions    BankTransactionStore
	reconciliations ReconciliationStore
	log             logrus.FieldLogger
}

func NewReconciliationService(
	payments PaymentStore,
	transactions BankTransactionStore,
	reconciliations ReconciliationStore,
	log logrus.FieldLogger,
) *ReconciliationService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ReconciliationService{
		payments:        payments,
		transactions:    transactions,
		reconciliations: reconciliations,
		log:             log,
	}
}

func validateRange(orgID string, start, end time.Time) error {
	if orgID == "" {
		return &ValidationError{Field: "organization_id", Reason: "required"}
	}
	if start.IsZero() || end.IsZero() {
		return &ValidationError{Field: "date range", Reason: "start and end dates are required"}
	}
	if end.Before(start) {
		return &ValidationError{Field: "date range", Reason: "end date is before start date"}
	}
	return nil
}

// Totals are summed as decimals so that long statements do not drift.
func sumPayments(payments []models.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(decimal.NewFromFloat(p.Amount))
	}
	return total
}

func sumTransactions(txs []models.BankTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(decimal.NewFromFloat(tx.Amount))
	}
	return total
}
