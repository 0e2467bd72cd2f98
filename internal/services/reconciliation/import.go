package reconciliation

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/kchowhan/propvestor-sub002/internal/models"
	"github.com/kchowhan/propvestor-sub002/internal/statement"
)

// TransactionInput is one external bank statement line to import.
type TransactionInput struct {
	Date          time.Time `json:"date" binding:"required"`
	Amount        float64   `json:"amount"`
	Description   string    `json:"description"`
	Reference     *string   `json:"reference,omitempty"`
	AccountNumber *string   `json:"account_number,omitempty"`
	AccountName   *string   `json:"account_name,omitempty"`
}

type ImportResult struct {
	Imported   int `json:"imported"`
	Duplicates int `json:"duplicates"`
}

// ImportBankTransactions stores each line unless the organization already
// holds one with the same date, amount and (when given) reference. Each line
// is checked and inserted on its own; duplicates are counted, not reported.
func (s *ReconciliationService) ImportBankTransactions(ctx context.Context, orgID string, inputs []TransactionInput, source string) (ImportResult, error) {
	var result ImportResult
	if orgID == "" {
		return result, &ValidationError{Field: "organization_id", Reason: "required"}
	}
	if source == "" {
		source = DefaultImportSource
	}

	for _, in := range inputs {
		reference := nonEmpty(in.Reference)
		dup, err := s.transactions.ExistsDuplicate(ctx, orgID, in.Date, in.Amount, reference)
		if err != nil {
			return result, fmt.Errorf("check duplicate bank transaction: %w", err)
		}
		if dup {
			result.Duplicates++
			continue
		}

		tx := &models.BankTransaction{
			OrganizationID: orgID,
			Date:           in.Date,
			Amount:         in.Amount,
			Description:    in.Description,
			Reference:      reference,
			AccountNumber:  nonEmpty(in.AccountNumber),
			AccountName:    nonEmpty(in.AccountName),
			ImportSource:   source,
			Reconciled:     false,
		}
		if err := s.transactions.Create(ctx, tx); err != nil {
			return result, fmt.Errorf("create bank transaction: %w", err)
		}
		result.Imported++
	}

	s.log.WithFields(map[string]interface{}{
		"organization_id": orgID,
		"source":          source,
		"imported":        result.Imported,
		"duplicates":      result.Duplicates,
	}).Info("bank transactions imported")
	return result, nil
}

// ImportStatement decodes a CSV statement and imports its lines.
func (s *ReconciliationService) ImportStatement(ctx context.Context, orgID string, r io.Reader, source string) (ImportResult, error) {
	entries, err := statement.Parse(r)
	if err != nil {
		return ImportResult{}, err
	}

	inputs := make([]TransactionInput, 0, len(entries))
	for _, e := range entries {
		inputs = append(inputs, TransactionInput{
			Date:          e.Date,
			Amount:        e.Amount.InexactFloat64(),
			Description:   e.Description,
			Reference:     optional(e.Reference),
			AccountNumber: optional(e.AccountNumber),
			AccountName:   optional(e.AccountName),
		})
	}
	return s.ImportBankTransactions(ctx, orgID, inputs, source)
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
