package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harmonia-school/payments/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) CreatePayment(ctx context.Context, p entity.Payment) error {
	const q = `
	INSERT INTO payments (
		id,
		amount,
		currency,
		description,
		email,
		meta,
		status,
		tr_id,
		tr_amount,
		invoice_id,
		created_at,
		updated_at,
		paid_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		p.ID,
		p.Amount,
		p.Currency,
		p.Description,
		p.Email,
		p.Meta,
		p.Status,
		zeronull.Text(p.TrID),
		zeronull.Int8(p.TrAmount),
		p.InvoiceID,
		p.CreatedAt,
		p.UpdatedAt,
		zeronull.Timestamptz(p.PaidAt),
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) Payment(ctx context.Context, id uuid.UUID) (entity.Payment, error) {
	q := selectPayment + " WHERE id = $1"
	return scanPayment(r.db.QueryRow(ctx, q, id))
}

// MarkPaymentPaid transitions initiated -> paid. A replayed confirmation
// is reported as ErrAlreadyPaid so callers can continue idempotently.
func (r *Repository) MarkPaymentPaid(ctx context.Context, id uuid.UUID, trID string, trAmount int64, paidAt time.Time) error {
	const q = `
	UPDATE payments
	SET status = $1, tr_id = $2, tr_amount = $3, paid_at = $4, updated_at = $4
	WHERE id = $5 AND status = $6`

	result, err := r.db.Exec(ctx, q, entity.PaymentStatusPaid, trID, trAmount, paidAt, id, entity.PaymentStatusInitiated)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		p, err := r.Payment(ctx, id)
		if err != nil {
			return err
		}

		if p.Status == entity.PaymentStatusPaid {
			return entity.ErrAlreadyPaid
		}

		return entity.ErrNotFound
	}

	return nil
}

// PaidWithoutInvoice lists payments the deferred webhook work left
// without an invoice, for the reconciliation job.
func (r *Repository) PaidWithoutInvoice(ctx context.Context) (ps []entity.Payment, err error) {
	q := selectPayment + " WHERE status = $1 AND invoice_id IS NULL"

	rows, err := r.db.Query(ctx, q, entity.PaymentStatusPaid)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}

		ps = append(ps, p)
	}

	return ps, nil
}

func (r *Repository) Payments(
	ctx context.Context,
	f entity.PaymentFilter,
) ([]entity.Payment, int, error) {
	stmt := sq.Select(
		"id",
		"amount",
		"currency",
		"description",
		"email",
		"meta",
		"status",
		"tr_id",
		"tr_amount",
		"invoice_id",
		"created_at",
		"updated_at",
		"paid_at",
		"COUNT(*) OVER() AS total_count",
	).From("payments").PlaceholderFormat(sq.Dollar)

	stmt = applyPaymentFilter(stmt, f).
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit).
		OrderBy(fmt.Sprintf("%s %s", f.SortBy, f.OrderBy))

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	payments := make([]entity.Payment, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var p entity.Payment

		var count int

		err = rows.Scan(
			&p.ID,
			&p.Amount,
			&p.Currency,
			&p.Description,
			&p.Email,
			&p.Meta,
			&p.Status,
			(*zeronull.Text)(&p.TrID),
			(*zeronull.Int8)(&p.TrAmount),
			&p.InvoiceID,
			&p.CreatedAt,
			&p.UpdatedAt,
			(*zeronull.Timestamptz)(&p.PaidAt),
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		payments = append(payments, p)
	}

	return payments, totalCount, nil
}

func applyPaymentFilter(stmt sq.SelectBuilder, f entity.PaymentFilter) sq.SelectBuilder {
	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"status": *f.Status})
	}

	if f.Email != nil {
		stmt = stmt.Where(sq.Eq{"email": *f.Email})
	}

	if f.CreatedAt != nil {
		stmt = stmt.Where(sq.GtOrEq{"created_at": *f.CreatedAt})
	}

	return stmt
}

// CreateInvoice assigns the next sequence number for the month of now,
// inserts the invoice and links it to its payment, all in one database
// transaction. If the payment is already invoiced (replayed webhook or a
// lost race) everything rolls back, the counter included, and the
// existing invoice is returned instead.
func (r *Repository) CreateInvoice(ctx context.Context, inv entity.Invoice, now time.Time) (entity.Invoice, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("begin: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck

	const qSeq = `
	INSERT INTO invoice_counters (prefix, last_seq, updated_at)
	VALUES ($1, 1, $2)
	ON CONFLICT (prefix) DO UPDATE SET last_seq = invoice_counters.last_seq + 1, updated_at = $2
	RETURNING last_seq`

	var seq int64

	err = tx.QueryRow(ctx, qSeq, entity.InvoicePrefix(now), now).Scan(&seq)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("next sequence: %w", err)
	}

	inv.Number = entity.FormatInvoiceNumber(now, seq)
	inv.CreatedAt = now
	inv.UpdatedAt = now

	const qInv = `
	INSERT INTO invoices (
		id,
		number,
		status,
		currency,
		amount_gross,
		issued_at,
		paid_at,
		items,
		seller,
		buyer,
		payment_id,
		pdf_path,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err = tx.Exec(
		ctx,
		qInv,
		inv.ID,
		inv.Number,
		inv.Status,
		inv.Currency,
		inv.AmountGross,
		inv.IssuedAt,
		inv.PaidAt,
		inv.Items,
		inv.Seller,
		inv.Buyer,
		inv.PaymentID,
		zeronull.Text(inv.PDFPath),
		inv.CreatedAt,
		inv.UpdatedAt,
	)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("insert invoice: %w", err)
	}

	const qLink = `UPDATE payments SET invoice_id = $1, updated_at = $2 WHERE id = $3 AND invoice_id IS NULL`

	result, err := tx.Exec(ctx, qLink, inv.ID, now, inv.PaymentID)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("link payment: %w", err)
	}

	if result.RowsAffected() == 0 {
		err = tx.Rollback(ctx)
		if err != nil {
			return entity.Invoice{}, fmt.Errorf("rollback: %w", err)
		}

		return r.InvoiceByPayment(ctx, inv.PaymentID)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("commit: %w", err)
	}

	return inv, nil
}

func (r *Repository) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	q := selectInvoice + " WHERE id = $1"
	return scanInvoice(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) InvoiceByPayment(ctx context.Context, paymentID uuid.UUID) (entity.Invoice, error) {
	q := selectInvoice + " WHERE payment_id = $1"
	return scanInvoice(r.db.QueryRow(ctx, q, paymentID))
}

func (r *Repository) SetInvoicePDFPath(ctx context.Context, id uuid.UUID, path string, updatedAt time.Time) error {
	const q = `UPDATE invoices SET pdf_path = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, q, path, updatedAt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanPayment(row pgx.Row) (p entity.Payment, err error) {
	err = row.Scan(
		&p.ID,
		&p.Amount,
		&p.Currency,
		&p.Description,
		&p.Email,
		&p.Meta,
		&p.Status,
		(*zeronull.Text)(&p.TrID),
		(*zeronull.Int8)(&p.TrAmount),
		&p.InvoiceID,
		&p.CreatedAt,
		&p.UpdatedAt,
		(*zeronull.Timestamptz)(&p.PaidAt),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Payment{}, entity.ErrNotFound
		}

		return entity.Payment{}, err
	}

	return p, nil
}

func scanInvoice(row pgx.Row) (inv entity.Invoice, err error) {
	err = row.Scan(
		&inv.ID,
		&inv.Number,
		&inv.Status,
		&inv.Currency,
		&inv.AmountGross,
		&inv.IssuedAt,
		&inv.PaidAt,
		&inv.Items,
		&inv.Seller,
		&inv.Buyer,
		&inv.PaymentID,
		(*zeronull.Text)(&inv.PDFPath),
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Invoice{}, entity.ErrNotFound
		}

		return entity.Invoice{}, err
	}

	return inv, nil
}
