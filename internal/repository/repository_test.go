package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/harmonia-school/payments/internal/entity"
	"github.com/harmonia-school/payments/internal/repository"
	"github.com/harmonia-school/payments/pkg/postgres"
)

func TestRepository_CreatePayment(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	now := time.Now().Truncate(time.Millisecond)

	p := entity.Payment{
		ID:          uuid.Must(uuid.NewV4()),
		Amount:      2550,
		Currency:    entity.DefaultCurrency,
		Description: "Lekcja pianina",
		Email:       "a@b.com",
		Meta:        map[string]string{"buyerName": "Anna Kowalska"},
		Status:      entity.PaymentStatusInitiated,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := repo.CreatePayment(context.Background(), p)
	require.NoError(t, err)

	got, err := repo.Payment(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestRepository_MarkPaymentPaid(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	now := time.Now().Truncate(time.Millisecond)

	p := entity.Payment{
		ID:          uuid.Must(uuid.NewV4()),
		Amount:      2550,
		Currency:    entity.DefaultCurrency,
		Description: "Lekcja gitary",
		Email:       "a@b.com",
		Status:      entity.PaymentStatusInitiated,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := repo.CreatePayment(context.Background(), p)
	require.NoError(t, err)

	paidAt := now.Add(time.Minute)

	err = repo.MarkPaymentPaid(context.Background(), p.ID, "TR-1", 2550, paidAt)
	require.NoError(t, err)

	got, err := repo.Payment(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, entity.PaymentStatusPaid, got.Status)
	require.Equal(t, "TR-1", got.TrID)
	require.Equal(t, int64(2550), got.TrAmount)

	// Replay must not flip anything, only report the state.
	err = repo.MarkPaymentPaid(context.Background(), p.ID, "TR-1", 2550, paidAt)
	require.ErrorIs(t, err, entity.ErrAlreadyPaid)

	err = repo.MarkPaymentPaid(context.Background(), uuid.Must(uuid.NewV4()), "TR-2", 1, paidAt)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_CreateInvoice(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	now := time.Now().Truncate(time.Millisecond)

	p := newPaidPayment(t, repo, now)

	inv := entity.Invoice{
		ID:          uuid.Must(uuid.NewV4()),
		Status:      entity.InvoiceStatusPaid,
		Currency:    p.Currency,
		AmountGross: p.Amount,
		IssuedAt:    now,
		PaidAt:      now,
		Items: []entity.InvoiceItem{
			{Name: p.Description, Quantity: 1, UnitPrice: p.Amount, Total: p.Amount},
		},
		Seller:    entity.Party{Name: "Szkola Muzyczna Harmonia"},
		Buyer:     entity.Party{Name: "Anna Kowalska", Email: p.Email},
		PaymentID: p.ID,
	}

	created, err := repo.CreateInvoice(context.Background(), inv, now)
	require.NoError(t, err)
	require.NotEmpty(t, created.Number)
	require.Contains(t, created.Number, entity.InvoicePrefix(now))

	got, err := repo.Invoice(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Number, got.Number)
	require.Equal(t, inv.Items, got.Items)

	// The payment now carries the invoice link.
	gotP, err := repo.Payment(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, gotP.InvoiceID)
	require.Equal(t, created.ID, *gotP.InvoiceID)
}

func TestRepository_CreateInvoice_Idempotent(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	now := time.Now().Truncate(time.Millisecond)

	p := newPaidPayment(t, repo, now)

	inv := entity.Invoice{
		ID:          uuid.Must(uuid.NewV4()),
		Status:      entity.InvoiceStatusPaid,
		Currency:    p.Currency,
		AmountGross: p.Amount,
		IssuedAt:    now,
		PaidAt:      now,
		Items: []entity.InvoiceItem{
			{Name: p.Description, Quantity: 1, UnitPrice: p.Amount, Total: p.Amount},
		},
		Seller:    entity.Party{Name: "Szkola Muzyczna Harmonia"},
		Buyer:     entity.Party{Name: "Anna Kowalska"},
		PaymentID: p.ID,
	}

	first, err := repo.CreateInvoice(context.Background(), inv, now)
	require.NoError(t, err)

	// A second creation for the same payment returns the first invoice
	// and must not have burned a second sequence number.
	second := inv
	second.ID = uuid.Must(uuid.NewV4())

	got, err := repo.CreateInvoice(context.Background(), second, now)
	require.NoError(t, err)
	require.Equal(t, first.ID, got.ID)
	require.Equal(t, first.Number, got.Number)
}

func TestRepository_CreateInvoice_Monotonic(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	now := time.Now().Truncate(time.Millisecond)

	var prev int64 = -1

	for range 3 {
		p := newPaidPayment(t, repo, now)

		inv := entity.Invoice{
			ID:          uuid.Must(uuid.NewV4()),
			Status:      entity.InvoiceStatusPaid,
			Currency:    p.Currency,
			AmountGross: p.Amount,
			IssuedAt:    now,
			PaidAt:      now,
			Items: []entity.InvoiceItem{
				{Name: p.Description, Quantity: 1, UnitPrice: p.Amount, Total: p.Amount},
			},
			Seller:    entity.Party{Name: "S"},
			Buyer:     entity.Party{Name: "B"},
			PaymentID: p.ID,
		}

		created, err := repo.CreateInvoice(context.Background(), inv, now)
		require.NoError(t, err)

		var seq int64
		_, err = fmt.Sscanf(created.Number, entity.InvoicePrefix(now)+"/%03d", &seq)
		require.NoError(t, err)
		require.Greater(t, seq, prev)

		prev = seq
	}
}

func newPaidPayment(t *testing.T, repo *repository.Repository, now time.Time) entity.Payment {
	t.Helper()

	p := entity.Payment{
		ID:          uuid.Must(uuid.NewV4()),
		Amount:      2550,
		Currency:    entity.DefaultCurrency,
		Description: "Lekcja pianina",
		Email:       "a@b.com",
		Status:      entity.PaymentStatusInitiated,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := repo.CreatePayment(context.Background(), p)
	require.NoError(t, err)

	err = repo.MarkPaymentPaid(context.Background(), p.ID, "TR-1", p.Amount, now)
	require.NoError(t, err)

	p.Status = entity.PaymentStatusPaid
	p.TrID = "TR-1"
	p.TrAmount = p.Amount
	p.PaidAt = now
	p.UpdatedAt = now

	return p
}

func newRepository(t *testing.T) *repository.Repository {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	repo := repository.New(pool)

	return repo
}
