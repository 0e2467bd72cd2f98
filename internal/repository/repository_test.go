package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kchowhan/propvestor-sub002/internal/models"
)

const org = "org-1"

var base = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func strPtr(s string) *string { return &s }

func TestBankTransactionRepository_ExistsDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewBankTransactionRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &models.BankTransaction{
		OrganizationID: org,
		Date:           base,
		Amount:         1200,
		Reference:      strPtr("CHK-1"),
		ImportSource:   "manual",
	}))

	tests := []struct {
		name      string
		orgID     string
		date      time.Time
		amount    float64
		reference *string
		want      bool
	}{
		{"same reference", org, base, 1200, strPtr("CHK-1"), true},
		{"different reference", org, base, 1200, strPtr("CHK-2"), false},
		{"no reference is a wildcard", org, base, 1200, nil, true},
		{"empty reference is a wildcard", org, base, 1200, strPtr(""), true},
		{"different amount", org, base, 1200.01, nil, false},
		{"different date", org, base.AddDate(0, 0, 1), 1200, nil, false},
		{"other organization", "org-2", base, 1200, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ExistsDuplicate(ctx, tt.orgID, tt.date, tt.amount, tt.reference)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBankTransactionRepository_ListAndMark(t *testing.T) {
	ctx := context.Background()
	repo := NewBankTransactionRepository(newTestDB(t))

	inside := &models.BankTransaction{OrganizationID: org, Date: base.AddDate(0, 0, 2), Amount: 50}
	edge := &models.BankTransaction{OrganizationID: org, Date: base.AddDate(0, 0, 5), Amount: 60}
	outside := &models.BankTransaction{OrganizationID: org, Date: base.AddDate(0, 0, 9), Amount: 70}
	for _, tx := range []*models.BankTransaction{edge, outside, inside} {
		require.NoError(t, repo.Create(ctx, tx))
	}

	start, end := base, base.AddDate(0, 0, 5)
	all, err := repo.ListInRange(ctx, org, start, end, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, inside.ID, all[0].ID)
	assert.Equal(t, edge.ID, all[1].ID)

	paymentID := uuid.New()
	require.NoError(t, repo.MarkReconciled(ctx, inside.ID, paymentID, nil))

	unreconciled := false
	open, err := repo.ListInRange(ctx, org, start, end, &unreconciled)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, edge.ID, open[0].ID)

	count, err := repo.CountUnreconciled(ctx, org, start, end)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	got, err := repo.GetByID(ctx, inside.ID)
	require.NoError(t, err)
	assert.True(t, got.Reconciled)
	require.NotNil(t, got.PaymentID)
	assert.Equal(t, paymentID, *got.PaymentID)
	assert.Nil(t, got.ReconciliationID)

	assert.ErrorIs(t, repo.MarkReconciled(ctx, uuid.New(), paymentID, nil), ErrNotFound)
	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaymentRepository_CreateIsIdempotentOnID(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentRepository(newTestDB(t))

	p := &models.Payment{OrganizationID: org, ReceivedDate: base, Amount: 900}
	require.NoError(t, repo.Create(ctx, p))
	replay := &models.Payment{ID: p.ID, OrganizationID: org, ReceivedDate: base, Amount: 1}
	require.NoError(t, repo.Create(ctx, replay))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 900.0, got.Amount)
}

func TestReconciliationRepository_ClaimUnownedMatches(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	payments := NewPaymentRepository(db)
	recs := NewReconciliationRepository(db)

	done := &models.Payment{OrganizationID: org, ReceivedDate: base, Amount: 10}
	pending := &models.Payment{OrganizationID: org, ReceivedDate: base, Amount: 20}
	foreign := &models.Payment{OrganizationID: "org-2", ReceivedDate: base, Amount: 30}
	for _, p := range []*models.Payment{done, pending, foreign} {
		require.NoError(t, payments.Create(ctx, p))
	}
	require.NoError(t, payments.MarkReconciled(ctx, done.ID, uuid.New(), nil))
	require.NoError(t, payments.MarkReconciled(ctx, foreign.ID, uuid.New(), nil))

	earlier := &models.Reconciliation{OrganizationID: org, Status: models.ReconciliationInProgress}
	require.NoError(t, recs.Create(ctx, earlier))

	orphan := &models.ReconciliationMatch{PaymentID: done.ID, BankTransactionID: uuid.New(), MatchType: models.MatchTypeAuto, Confidence: 100}
	owned := &models.ReconciliationMatch{PaymentID: done.ID, BankTransactionID: uuid.New(), MatchType: models.MatchTypeManual, Confidence: 100, ReconciliationID: &earlier.ID}
	suggestion := &models.ReconciliationMatch{PaymentID: pending.ID, BankTransactionID: uuid.New(), MatchType: models.MatchTypeSuggested, Confidence: 80}
	other := &models.ReconciliationMatch{PaymentID: foreign.ID, BankTransactionID: uuid.New(), MatchType: models.MatchTypeAuto, Confidence: 100}
	for _, m := range []*models.ReconciliationMatch{orphan, owned, suggestion, other} {
		require.NoError(t, recs.CreateMatch(ctx, m))
	}

	session := &models.Reconciliation{OrganizationID: org, Status: models.ReconciliationInProgress}
	require.NoError(t, recs.Create(ctx, session))

	claimed, err := recs.ClaimUnownedMatches(ctx, org, session.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claimed)

	matches, err := recs.ListMatches(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, orphan.ID, matches[0].ID)
	assert.True(t, matches[0].Claimed())

	suggested, err := recs.ListSuggestedMatches(ctx, org)
	require.NoError(t, err)
	require.Len(t, suggested, 1)
	assert.Equal(t, suggestion.ID, suggested[0].ID)
	assert.False(t, suggested[0].Claimed())
}

func TestReconciliationRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	recs := NewReconciliationRepository(newTestDB(t))

	_, err := recs.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	rec := &models.Reconciliation{OrganizationID: org, StartDate: base, EndDate: base.AddDate(0, 1, 0), Status: models.ReconciliationInProgress, ExpectedTotal: 10, ActualTotal: 8, Difference: -2}
	require.NoError(t, recs.Create(ctx, rec))

	got, err := recs.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, -2.0, got.Difference)

	list, err := recs.ListByOrganization(ctx, org)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
