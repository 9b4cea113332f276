package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/harmonia-school/payments/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

const signedURLTTL = 10 * time.Minute

type Repository interface {
	CreatePayment(ctx context.Context, p entity.Payment) error
	Payment(ctx context.Context, id uuid.UUID) (entity.Payment, error)
	Payments(ctx context.Context, f entity.PaymentFilter) ([]entity.Payment, int, error)
	MarkPaymentPaid(ctx context.Context, id uuid.UUID, trID string, trAmount int64, paidAt time.Time) error
	PaidWithoutInvoice(ctx context.Context) ([]entity.Payment, error)
	CreateInvoice(ctx context.Context, inv entity.Invoice, now time.Time) (entity.Invoice, error)
	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	InvoiceByPayment(ctx context.Context, paymentID uuid.UUID) (entity.Invoice, error)
	SetInvoicePDFPath(ctx context.Context, id uuid.UUID, path string, updatedAt time.Time) error
}

type Gateway interface {
	Configured() bool
	GatewayURL() string
	PaymentFields(p entity.Payment, urls entity.ReturnURLs) map[string]string
}

type Storage interface {
	UploadInvoicePDF(ctx context.Context, path string, pdf []byte) error
	SignedInvoiceURL(ctx context.Context, path string, ttl time.Duration) (string, error)
}

type Renderer interface {
	Invoice(inv entity.Invoice) ([]byte, error)
}

type Producer interface {
	SendPaymentPaid(ctx context.Context, payment entity.Payment, invoice entity.Invoice)
}

type Service struct {
	repo          Repository
	gateway       Gateway
	storage       Storage
	renderer      Renderer
	producer      Producer
	seller        entity.Party
	publicBaseURL string

	wg sync.WaitGroup
}

func New(
	repo Repository,
	gateway Gateway,
	storage Storage,
	renderer Renderer,
	producer Producer,
	seller entity.Party,
	publicBaseURL string,
) *Service {
	return &Service{
		repo:          repo,
		gateway:       gateway,
		storage:       storage,
		renderer:      renderer,
		producer:      producer,
		seller:        seller,
		publicBaseURL: publicBaseURL,
	}
}

func (s *Service) InitiatePayment(ctx context.Context, np entity.NewPayment) (entity.PaymentSession, error) {
	if !s.gateway.Configured() {
		return entity.PaymentSession{}, entity.ErrNotConfigured
	}

	now := time.Now()

	p := entity.Payment{
		ID:          uuid.Must(uuid.NewV4()),
		Amount:      np.Amount,
		Currency:    entity.DefaultCurrency,
		Description: np.Description,
		Email:       np.Email,
		Meta:        np.Meta,
		Status:      entity.PaymentStatusInitiated,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.repo.CreatePayment(ctx, p)
	if err != nil {
		return entity.PaymentSession{}, fmt.Errorf("create payment: %w", err)
	}

	urls := entity.ReturnURLs{
		Success: np.SuccessURL,
		Failure: np.FailureURL,
		Result:  s.publicBaseURL + "/tpay/webhook",
	}

	slog.InfoContext(ctx, fmt.Sprintf("initiated payment %s for %s %s (%s)",
		p.ID, entity.FormatAmount(p.Amount), p.Currency, p.Email))

	return entity.PaymentSession{
		Payment:    p,
		GatewayURL: s.gateway.GatewayURL(),
		Fields:     s.gateway.PaymentFields(p, urls),
	}, nil
}

// ConfirmPaymentAsync runs ConfirmPayment as a detached background task.
// The webhook acknowledgment must not wait for invoice creation, PDF
// rendering or the blob upload, so the task outlives the request scope
// and contains its own failures: errors and panics are logged, never
// surfaced to the gateway.
func (s *Service) ConfirmPaymentAsync(ctx context.Context, paymentID uuid.UUID, trID string, trAmount int64) {
	ctx = context.WithoutCancel(ctx)

	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		defer func() {
			if r := recover(); r != nil {
				slog.ErrorContext(ctx, "confirm payment panic", "error", r, "stack", string(debug.Stack()))
			}
		}()

		err := s.ConfirmPayment(ctx, paymentID, trID, trAmount)
		if err != nil {
			slog.ErrorContext(ctx, "confirm payment", "payment_id", paymentID, "error", err)
		}
	}()
}

// ConfirmPayment marks the payment paid and creates its invoice. Safe to
// replay: a duplicate webhook or the reconcile job re-enters at any step
// without a second invoice or a second sequence increment.
func (s *Service) ConfirmPayment(ctx context.Context, paymentID uuid.UUID, trID string, trAmount int64) error {
	p, err := s.repo.Payment(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("get payment %s: %w", paymentID, err)
	}

	if trAmount != p.Amount {
		slog.WarnContext(ctx, "gateway amount echo differs from payment amount",
			"payment_id", p.ID,
			"amount", entity.FormatAmount(p.Amount),
			"tr_amount", entity.FormatAmount(trAmount))
	}

	now := time.Now()

	if p.Status != entity.PaymentStatusPaid {
		err = s.repo.MarkPaymentPaid(ctx, p.ID, trID, trAmount, now)
		if err != nil && !errors.Is(err, entity.ErrAlreadyPaid) {
			return fmt.Errorf("mark payment %s paid: %w", p.ID, err)
		}

		p.Status = entity.PaymentStatusPaid
		p.TrID = trID
		p.TrAmount = trAmount
		p.PaidAt = now

		slog.InfoContext(ctx, fmt.Sprintf("payment %s paid, gateway tx %q", p.ID, trID))
	}

	return s.invoicePayment(ctx, p)
}

// invoicePayment creates the invoice for a paid payment (or picks up the
// existing one), renders and stores the document if it is still missing,
// and emits the paid event for a newly created invoice.
func (s *Service) invoicePayment(ctx context.Context, p entity.Payment) error {
	var (
		inv     entity.Invoice
		created bool
		err     error
	)

	if p.InvoiceID != nil {
		inv, err = s.repo.Invoice(ctx, *p.InvoiceID)
		if err != nil {
			return fmt.Errorf("get invoice %s: %w", *p.InvoiceID, err)
		}
	} else {
		now := time.Now()

		paidAt := p.PaidAt
		if paidAt.IsZero() {
			paidAt = now
		}

		inv = entity.Invoice{
			ID:          uuid.Must(uuid.NewV4()),
			Status:      entity.InvoiceStatusPaid,
			Currency:    p.Currency,
			AmountGross: p.Amount,
			IssuedAt:    now,
			PaidAt:      paidAt,
			Items: []entity.InvoiceItem{
				{Name: p.Description, Quantity: 1, UnitPrice: p.Amount, Total: p.Amount},
			},
			Seller:    s.seller,
			Buyer:     buyerSnapshot(p),
			PaymentID: p.ID,
		}

		got, err := s.repo.CreateInvoice(ctx, inv, now)
		if err != nil {
			return fmt.Errorf("create invoice for payment %s: %w", p.ID, err)
		}

		created = got.ID == inv.ID
		inv = got

		if created {
			slog.InfoContext(ctx, fmt.Sprintf("issued invoice %s for payment %s", inv.Number, p.ID))
		}
	}

	if inv.PDFPath == "" {
		err = s.renderAndStore(ctx, &inv)
		if err != nil {
			return err
		}
	}

	if created {
		s.producer.SendPaymentPaid(ctx, p, inv)
	}

	return nil
}

func (s *Service) renderAndStore(ctx context.Context, inv *entity.Invoice) error {
	pdf, err := s.renderer.Invoice(*inv)
	if err != nil {
		return fmt.Errorf("render invoice %s: %w", inv.Number, err)
	}

	path := fmt.Sprintf("invoices/%s.pdf", inv.ID)

	err = s.storage.UploadInvoicePDF(ctx, path, pdf)
	if err != nil {
		return fmt.Errorf("upload invoice %s document: %w", inv.Number, err)
	}

	err = s.repo.SetInvoicePDFPath(ctx, inv.ID, path, time.Now())
	if err != nil {
		return fmt.Errorf("set invoice %s pdf path: %w", inv.Number, err)
	}

	inv.PDFPath = path

	return nil
}

// buyerSnapshot captures the buyer block from what the payment knows.
// Parents rarely fill in more than an email, which is a valid invoice
// recipient on its own.
func buyerSnapshot(p entity.Payment) entity.Party {
	name := p.Meta["buyerName"]
	if name == "" {
		name = p.Email
	}

	return entity.Party{
		Name:    name,
		Address: p.Meta["buyerAddress"],
		TaxID:   p.Meta["buyerTaxId"],
		Email:   p.Email,
	}
}

func (s *Service) Payment(ctx context.Context, id uuid.UUID) (entity.Payment, error) {
	p, err := s.repo.Payment(ctx, id)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("get payment %s: %w", id, err)
	}

	return p, nil
}

func (s *Service) Payments(ctx context.Context, filter entity.PaymentFilter) ([]entity.Payment, int, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("get user from context: %w", err)
	}

	if user.Role != entity.RoleAdmin {
		return nil, 0, fmt.Errorf("%w: user %s is not admin", entity.ErrForbidden, user.ID)
	}

	ps, count, err := s.repo.Payments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("get payments: %w", err)
	}

	return ps, count, nil
}

func (s *Service) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, string, error) {
	inv, err := s.repo.Invoice(ctx, id)
	if err != nil {
		return entity.Invoice{}, "", fmt.Errorf("get invoice %s: %w", id, err)
	}

	if inv.PDFPath == "" {
		return inv, "", nil
	}

	url, err := s.storage.SignedInvoiceURL(ctx, inv.PDFPath, signedURLTTL)
	if err != nil {
		return entity.Invoice{}, "", fmt.Errorf("sign invoice %s url: %w", id, err)
	}

	return inv, url, nil
}

// ReconcileMissingInvoices re-attempts invoice creation for payments the
// deferred webhook work left paid but uninvoiced.
func (s *Service) ReconcileMissingInvoices(ctx context.Context) error {
	ps, err := s.repo.PaidWithoutInvoice(ctx)
	if err != nil {
		return fmt.Errorf("get paid payments without invoice: %w", err)
	}

	var errs []error

	for _, p := range ps {
		err = s.invoicePayment(ctx, p)
		if err != nil {
			errs = append(errs, fmt.Errorf("reconcile payment %s: %w", p.ID, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Wait blocks until all detached confirmation tasks have finished.
func (s *Service) Wait() {
	s.wg.Wait()
}
