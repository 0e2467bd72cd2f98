package matching

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/kchowhan/propvestor-sub002/internal/models"
)

const (
	// ExactAmountTolerance is the absolute amount delta below which a
	// posting is treated as the same amount.
	ExactAmountTolerance = 0.01
	ExactWindowDays      = 3.0

	// FuzzyAmountRatio is the relative amount delta allowed for a suggestion.
	FuzzyAmountRatio = 0.01
	FuzzyWindowDays  = 7.0

	// DayPenalty is the confidence lost per day between payment and posting.
	DayPenalty = 5.0

	ExactConfidence = 100.0

	millisPerDay = 86_400_000
)

// Result describes the candidate chosen for a payment.
type Result struct {
	Transaction *models.BankTransaction
	Type        models.MatchType
	Confidence  float64
	AmountDelta float64
	DaysApart   float64
}

// Pool is the in-memory set of bank transactions a single auto-match pass
// draws from. Transactions consumed by an exact match are never offered again
// during the pass, even though the store is not re-read.
type Pool struct {
	txs      []models.BankTransaction
	consumed map[uuid.UUID]bool
}

// NewPool keeps input order so that ties resolve to the first candidate.
// Transactions already reconciled are excluded up front.
func NewPool(txs []models.BankTransaction) *Pool {
	p := &Pool{consumed: make(map[uuid.UUID]bool, len(txs))}
	for _, tx := range txs {
		if tx.Reconciled {
			continue
		}
		p.txs = append(p.txs, tx)
	}
	return p
}

// Consume removes a transaction from consideration for the rest of the pass.
func (p *Pool) Consume(id uuid.UUID) {
	p.consumed[id] = true
}

// Available returns the number of transactions not yet consumed.
func (p *Pool) Available() int {
	return len(p.txs) - len(p.consumed)
}

// Match applies the exact rule, then the fuzzy rule, to the payment. The
// pool is not modified; callers consume exact matches once they are stored.
func (p *Pool) Match(payment models.Payment) (Result, bool) {
	if r, ok := p.exact(payment); ok {
		return r, true
	}
	return p.fuzzy(payment)
}

func (p *Pool) exact(payment models.Payment) (Result, bool) {
	for i := range p.txs {
		tx := &p.txs[i]
		if p.consumed[tx.ID] {
			continue
		}
		delta := math.Abs(tx.Amount - payment.Amount)
		days := math.Abs(DaysBetween(tx.Date, payment.ReceivedDate))
		if delta < ExactAmountTolerance && days <= ExactWindowDays {
			return Result{
				Transaction: tx,
				Type:        models.MatchTypeAuto,
				Confidence:  ExactConfidence,
				AmountDelta: delta,
				DaysApart:   days,
			}, true
		}
	}
	return Result{}, false
}

// fuzzy never considers zero-amount payments; the relative tolerance is
// undefined for them.
func (p *Pool) fuzzy(payment models.Payment) (Result, bool) {
	base := math.Abs(payment.Amount)
	if base == 0 {
		return Result{}, false
	}
	for i := range p.txs {
		tx := &p.txs[i]
		if p.consumed[tx.ID] {
			continue
		}
		delta := math.Abs(tx.Amount - payment.Amount)
		days := math.Abs(DaysBetween(tx.Date, payment.ReceivedDate))
		if delta/base <= FuzzyAmountRatio && days <= FuzzyWindowDays {
			return Result{
				Transaction: tx,
				Type:        models.MatchTypeSuggested,
				Confidence:  FuzzyConfidence(delta/base*100, days),
				AmountDelta: delta,
				DaysApart:   days,
			}, true
		}
	}
	return Result{}, false
}

// FuzzyConfidence scores a suggestion from its amount error (percent) and
// its distance in days, floored at zero.
func FuzzyConfidence(amountErrorPercent, days float64) float64 {
	return math.Max(0, 100-amountErrorPercent-days*DayPenalty)
}

// DaysBetween is the signed difference a-b in days, computed from
// millisecond timestamps without calendar rounding.
func DaysBetween(a, b time.Time) float64 {
	return float64(a.UnixMilli()-b.UnixMilli()) / millisPerDay
}
