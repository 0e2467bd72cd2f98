package matching

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kchowhan/propvestor-sub002/internal/models"
)

var day0 = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func tx(amount float64, dayOffset int) models.BankTransaction {
	return models.BankTransaction{ID: uuid.New(), Amount: amount, Date: day0.AddDate(0, 0, dayOffset)}
}

func payment(amount float64) models.Payment {
	return models.Payment{ID: uuid.New(), Amount: amount, ReceivedDate: day0}
}

func TestPool_Match(t *testing.T) {
	tests := []struct {
		name           string
		payment        models.Payment
		txs            []models.BankTransaction
		wantOK         bool
		wantIndex      int
		wantType       models.MatchType
		wantConfidence float64
	}{
		{
			name:           "exact match wins over an earlier fuzzy candidate",
			payment:        payment(100),
			txs:            []models.BankTransaction{tx(101, 5), tx(100, 1)},
			wantOK:         true,
			wantIndex:      1,
			wantType:       models.MatchTypeAuto,
			wantConfidence: 100,
		},
		{
			name:           "exact match within three days before the payment",
			payment:        payment(250.5),
			txs:            []models.BankTransaction{tx(250.505, -3)},
			wantOK:         true,
			wantType:       models.MatchTypeAuto,
			wantConfidence: 100,
		},
		{
			name:           "same amount four days out falls to fuzzy",
			payment:        payment(100),
			txs:            []models.BankTransaction{tx(100, 4)},
			wantOK:         true,
			wantType:       models.MatchTypeSuggested,
			wantConfidence: 80,
		},
		{
			name:           "fuzzy within one percent and seven days",
			payment:        payment(100),
			txs:            []models.BankTransaction{tx(100.9, 5)},
			wantOK:         true,
			wantType:       models.MatchTypeSuggested,
			wantConfidence: 74.1,
		},
		{
			name:    "out of tolerance on both rules",
			payment: payment(100),
			txs:     []models.BankTransaction{tx(105, 10)},
		},
		{
			name:    "amount outside one percent",
			payment: payment(100),
			txs:     []models.BankTransaction{tx(101.5, 0)},
		},
		{
			name:    "eight days apart",
			payment: payment(100),
			txs:     []models.BankTransaction{tx(100.5, 8)},
		},
		{
			name:           "zero amount payment only matches exactly",
			payment:        payment(0),
			txs:            []models.BankTransaction{tx(0, 2)},
			wantOK:         true,
			wantType:       models.MatchTypeAuto,
			wantConfidence: 100,
		},
		{
			name:    "zero amount payment is not fuzzy matched",
			payment: payment(0),
			txs:     []models.BankTransaction{tx(0.001, 6)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(tt.txs)
			got, ok := pool.Match(tt.payment)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.txs[tt.wantIndex].ID, got.Transaction.ID)
			assert.Equal(t, tt.wantType, got.Type)
			assert.InDelta(t, tt.wantConfidence, got.Confidence, 1e-6)
		})
	}
}

func TestPool_ConsumedTransactionIsSkipped(t *testing.T) {
	first := tx(100, 0)
	second := tx(100.5, 2)
	pool := NewPool([]models.BankTransaction{first, second})

	got, ok := pool.Match(payment(100))
	require.True(t, ok)
	assert.Equal(t, first.ID, got.Transaction.ID)
	pool.Consume(got.Transaction.ID)
	assert.Equal(t, 1, pool.Available())

	got, ok = pool.Match(payment(100))
	require.True(t, ok)
	assert.Equal(t, second.ID, got.Transaction.ID)
	assert.Equal(t, models.MatchTypeSuggested, got.Type)
}

func TestPool_SuggestionDoesNotConsume(t *testing.T) {
	only := tx(100.9, 5)
	pool := NewPool([]models.BankTransaction{only})

	_, ok := pool.Match(payment(100))
	require.True(t, ok)
	got, ok := pool.Match(payment(100))
	require.True(t, ok)
	assert.Equal(t, only.ID, got.Transaction.ID)
}

func TestNewPool_SkipsReconciled(t *testing.T) {
	done := tx(100, 0)
	done.Reconciled = true
	pool := NewPool([]models.BankTransaction{done})

	assert.Equal(t, 0, pool.Available())
	_, ok := pool.Match(payment(100))
	assert.False(t, ok)
}

func TestFuzzyConfidence_FloorsAtZero(t *testing.T) {
	assert.Equal(t, 0.0, FuzzyConfidence(1, 25))
	assert.InDelta(t, 64.5, FuzzyConfidence(0.5, 7), 1e-9)
}

func TestDaysBetween(t *testing.T) {
	later := day0.Add(36 * time.Hour)
	assert.InDelta(t, 1.5, DaysBetween(later, day0), 1e-9)
	assert.InDelta(t, -1.5, DaysBetween(day0, later), 1e-9)
}
