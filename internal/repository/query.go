package repository

const (
	selectPayment = `SELECT
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
	FROM payments`

	selectInvoice = `SELECT
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
	FROM invoices`
)
