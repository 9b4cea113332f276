package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/harmonia-school/payments/internal/clients/tpay"
	"github.com/harmonia-school/payments/internal/entity"
)

// @title School Payments API
// @version 1.0
// @description Payment initiation, gateway webhooks and invoice access for the music school.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const (
	gatewayAckOK    = "TRUE"
	gatewayAckError = "ERROR"

	defaultPageLimit uint64 = 10
	maxPageLimit     uint64 = 100
)

type Service interface {
	InitiatePayment(ctx context.Context, np entity.NewPayment) (entity.PaymentSession, error)
	ConfirmPaymentAsync(ctx context.Context, paymentID uuid.UUID, trID string, trAmount int64)
	Payment(ctx context.Context, id uuid.UUID) (entity.Payment, error)
	Payments(ctx context.Context, filter entity.PaymentFilter) ([]entity.Payment, int, error)
	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, string, error)
}

type Handler struct {
	s    Service
	tpay *tpay.Client
}

func NewHandler(s Service, tpayClient *tpay.Client) *Handler {
	return &Handler{
		s:    s,
		tpay: tpayClient,
	}
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

type InitiatePaymentRequest struct {
	Amount       decimal.Decimal   `json:"amount"`
	Description  string            `json:"description"`
	Email        string            `json:"email"`
	SuccessURL   string            `json:"successUrl"`
	FailureURL   string            `json:"failureUrl"`
	BuyerName    string            `json:"buyerName,omitempty"`
	BuyerAddress string            `json:"buyerAddress,omitempty"`
	Meta         map[string]string `json:"meta,omitempty"`
}

// meta folds the dedicated buyer fields into the free-form bag the
// service reads the invoice buyer snapshot from.
func (r InitiatePaymentRequest) meta() map[string]string {
	if r.BuyerName == "" && r.BuyerAddress == "" {
		return r.Meta
	}

	meta := make(map[string]string, len(r.Meta)+2)
	for k, v := range r.Meta {
		meta[k] = v
	}

	if r.BuyerName != "" {
		meta["buyerName"] = r.BuyerName
	}

	if r.BuyerAddress != "" {
		meta["buyerAddress"] = r.BuyerAddress
	}

	return meta
}

type InitiatePaymentResponse struct {
	PaymentID  uuid.UUID         `json:"paymentId"`
	Amount     string            `json:"amount"`
	Currency   string            `json:"currency"`
	GatewayURL string            `json:"gatewayUrl"`
	Fields     map[string]string `json:"fields"`
}

// InitiatePayment creates a payment and returns the signed gateway form
// @Summary Initiate payment
// @Description Creates a payment record and returns the hosted payment page URL with signed form fields
// @Tags payments
// @Accept json
// @Produce json
// @Param InitiatePaymentRequest body InitiatePaymentRequest true "Payment initiation request"
// @Success 201 {object} InitiatePaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 422 {object} ErrorResponse "Invalid amount, description or email"
// @Failure 500 {object} ErrorResponse "Gateway not configured or failed to initiate payment"
// @Router /initiatePayment [post]
func (h *Handler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req InitiatePaymentRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	amount, err := entity.ParseAmount(req.Amount)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Amount must be positive with at most two decimal places")
		return
	}

	if req.Description == "" {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity,
			fmt.Errorf("%w: empty description", entity.ErrInvalidArgument), "Description is required")
		return
	}

	if req.Email == "" {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity,
			fmt.Errorf("%w: empty email", entity.ErrInvalidArgument), "Email is required")
		return
	}

	session, err := h.s.InitiatePayment(ctx, entity.NewPayment{
		Amount:      amount,
		Description: req.Description,
		Email:       req.Email,
		SuccessURL:  req.SuccessURL,
		FailureURL:  req.FailureURL,
		Meta:        req.meta(),
	})
	if err != nil {
		if errors.Is(err, entity.ErrNotConfigured) {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Payment gateway is not configured")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to initiate payment")

		return
	}

	SendJSON(ctx, w, http.StatusCreated, InitiatePaymentResponse{
		PaymentID:  session.Payment.ID,
		Amount:     entity.FormatAmount(session.Payment.Amount),
		Currency:   session.Payment.Currency,
		GatewayURL: session.GatewayURL,
		Fields:     session.Fields,
	})
}

// TpayWebhook handles the gateway payment notification
// @Summary Tpay payment webhook
// @Description Server-to-server payment notification from the gateway. Always answers HTTP 200 with a TRUE or ERROR plain-text body.
// @Tags tpay
// @Accept x-www-form-urlencoded
// @Produce plain
// @Success 200 {string} string "TRUE or ERROR"
// @Router /tpay/webhook [post]
func (h *Handler) TpayWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	n, err := parseNotification(r)
	if err != nil {
		slog.ErrorContext(ctx, "parse webhook form", "error", err)
		SendGatewayAck(ctx, w, gatewayAckError)

		return
	}

	err = h.tpay.VerifyNotification(n)
	if err != nil {
		slog.ErrorContext(ctx, "verify webhook notification", "error", err, "tr_id", n.TrID)
		SendGatewayAck(ctx, w, gatewayAckError)

		return
	}

	// Signature checked; from here the gateway gets TRUE and everything
	// else is this service's problem to chase, not the gateway's.
	if n.TrStatus != tpay.NotificationStatusPaid {
		slog.WarnContext(ctx, fmt.Sprintf("webhook tr_status %q is not %q, acknowledged without processing",
			n.TrStatus, tpay.NotificationStatusPaid), "tr_id", n.TrID, "tr_error", n.TrError)
		SendGatewayAck(ctx, w, gatewayAckOK)

		return
	}

	paymentID, err := uuid.FromString(n.TrCRC)
	if err != nil {
		slog.ErrorContext(ctx, "webhook crc is not a payment id", "error", err, "tr_crc", n.TrCRC)
		SendGatewayAck(ctx, w, gatewayAckError)

		return
	}

	trAmount, err := entity.ParseGatewayAmount(n.TrAmount)
	if err != nil {
		slog.ErrorContext(ctx, "parse webhook tr_amount", "error", err, "tr_id", n.TrID)
		SendGatewayAck(ctx, w, gatewayAckError)

		return
	}

	h.s.ConfirmPaymentAsync(ctx, paymentID, n.TrID, trAmount)

	SendGatewayAck(ctx, w, gatewayAckOK)
}

type ChecksumCheckResponse struct {
	Outbound           string `json:"outbound"`
	Inbound            string `json:"inbound"`
	SecretLength       int    `json:"secretLength"`
	SecretSHA256Prefix string `json:"secretSha256Prefix"`
}

// TpayCheck computes both checksum variants for manual comparison
// @Summary Compute gateway checksums
// @Description Computes the outbound and inbound checksum variants for a given amount and correlation token, for manual comparison against gateway-reported values. Nothing is recorded.
// @Tags tpay
// @Accept x-www-form-urlencoded
// @Produce json
// @Param amount formData string true "Amount, two decimal places"
// @Param crc formData string true "Correlation token"
// @Param tr_id formData string false "Gateway transaction id for the inbound variant"
// @Success 200 {object} ChecksumCheckResponse
// @Failure 400 {object} ErrorResponse "Invalid form payload or amount"
// @Failure 500 {object} ErrorResponse "Payment gateway is not configured"
// @Router /tpay/check [post]
func (h *Handler) TpayCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := r.ParseForm()
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid form payload")
		return
	}

	if !h.tpay.Configured() {
		SendJSONErr(ctx, w, http.StatusInternalServerError, entity.ErrNotConfigured, "Payment gateway is not configured")
		return
	}

	rawAmount := r.PostFormValue("amount")
	crc := r.PostFormValue("crc")
	trID := r.PostFormValue("tr_id")

	minor, err := entity.ParseGatewayAmount(rawAmount)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Amount must be positive with at most two decimal places")
		return
	}

	amount := entity.FormatAmount(minor)
	length, prefix := h.tpay.SecretInfo()

	SendJSON(ctx, w, http.StatusOK, ChecksumCheckResponse{
		Outbound:           h.tpay.OutboundChecksum(amount, crc),
		Inbound:            h.tpay.InboundChecksum(trID, amount, crc),
		SecretLength:       length,
		SecretSHA256Prefix: prefix,
	})
}

type TpayDebugResponse struct {
	Configured         bool   `json:"configured"`
	MerchantID         string `json:"merchantId"`
	Environment        string `json:"environment"`
	GatewayURL         string `json:"gatewayUrl"`
	SecretLength       int    `json:"secretLength"`
	SecretSHA256Prefix string `json:"secretSha256Prefix"`
}

// TpayDebug reports the gateway configuration with the secret masked
// @Summary Gateway configuration diagnostics
// @Description Shows which gateway credentials are loaded. The security code is reported only as its length and a SHA-256 prefix.
// @Tags tpay
// @Produce json
// @Success 200 {object} TpayDebugResponse
// @Failure 500 {object} ErrorResponse "Payment gateway is not configured"
// @Router /tpay/debug [get]
func (h *Handler) TpayDebug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.tpay.Configured() {
		SendJSONErr(ctx, w, http.StatusInternalServerError, entity.ErrNotConfigured, "Payment gateway is not configured")
		return
	}

	length, prefix := h.tpay.SecretInfo()

	SendJSON(ctx, w, http.StatusOK, TpayDebugResponse{
		Configured:         true,
		MerchantID:         h.tpay.MerchantID(),
		Environment:        h.tpay.Environment(),
		GatewayURL:         h.tpay.GatewayURL(),
		SecretLength:       length,
		SecretSHA256Prefix: prefix,
	})
}

type PaymentResponse struct {
	ID          uuid.UUID         `json:"id"`
	Amount      string            `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description"`
	Email       string            `json:"email"`
	Status      string            `json:"status"`
	TrID        string            `json:"trId,omitempty"`
	InvoiceID   *uuid.UUID        `json:"invoiceId,omitempty"`
	Meta        map[string]string `json:"meta,omitempty"`
	CreatedAt   string            `json:"createdAt"`
	PaidAt      string            `json:"paidAt,omitempty"`
}

// Payment returns a single payment
// @Summary Get payment
// @Tags payments
// @Produce json
// @Param paymentId path string true "Payment id"
// @Success 200 {object} PaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid payment id"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 500 {object} ErrorResponse "Failed to get payment"
// @Router /payments/{paymentId} [get]
func (h *Handler) Payment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "paymentId"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid payment id")
		return
	}

	p, err := h.s.Payment(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Payment not found")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to get payment")

		return
	}

	SendJSON(ctx, w, http.StatusOK, paymentResponse(p))
}

type PaymentsResponse struct {
	Payments   []PaymentResponse `json:"payments"`
	TotalCount int               `json:"totalCount"`
}

// Payments lists payments for back-office staff
// @Summary List payments
// @Tags payments
// @Produce json
// @Param status query string false "Filter by status"
// @Param email query string false "Filter by payer email"
// @Param createdAt query string false "Filter by creation date (YYYY-MM-DD)"
// @Param page query int false "Page number, 1-based"
// @Param limit query int false "Page size"
// @Param sortBy query string false "Sort column: id, amount, created_at"
// @Param orderBy query string false "Sort order: asc, desc"
// @Success 200 {object} PaymentsResponse
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 422 {object} ErrorResponse "Invalid filter"
// @Failure 500 {object} ErrorResponse "Failed to list payments"
// @Router /payments [get]
// @Security BearerAuth
func (h *Handler) Payments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := paymentFilter(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid filter")
		return
	}

	ps, count, err := h.s.Payments(ctx, filter)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrUnauthenticated):
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Missing or invalid token")
		case errors.Is(err, entity.ErrForbidden):
			SendJSONErr(ctx, w, http.StatusForbidden, err, "Admin role required")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to list payments")
		}

		return
	}

	resp := PaymentsResponse{
		Payments:   make([]PaymentResponse, 0, len(ps)),
		TotalCount: count,
	}

	for _, p := range ps {
		resp.Payments = append(resp.Payments, paymentResponse(p))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type InvoiceItemResponse struct {
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Total     string `json:"total"`
}

type InvoiceResponse struct {
	ID          uuid.UUID             `json:"id"`
	Number      string                `json:"number"`
	Status      string                `json:"status"`
	Currency    string                `json:"currency"`
	AmountGross string                `json:"amountGross"`
	IssuedAt    string                `json:"issuedAt"`
	PaidAt      string                `json:"paidAt,omitempty"`
	Seller      entity.Party          `json:"seller"`
	Buyer       entity.Party          `json:"buyer"`
	Items       []InvoiceItemResponse `json:"items"`
	PaymentID   uuid.UUID             `json:"paymentId"`
	PDFURL      string                `json:"pdfUrl,omitempty"`
}

// Invoice returns an invoice with a short-lived document link
// @Summary Get invoice
// @Description Returns the invoice data and a signed PDF URL valid for about ten minutes
// @Tags invoices
// @Produce json
// @Param invoiceId path string true "Invoice id"
// @Success 200 {object} InvoiceResponse
// @Failure 400 {object} ErrorResponse "Invalid invoice id"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 500 {object} ErrorResponse "Failed to get invoice"
// @Router /invoices/{invoiceId} [get]
func (h *Handler) Invoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "invoiceId"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	inv, documentURL, err := h.s.Invoice(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Invoice not found")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to get invoice")

		return
	}

	resp := InvoiceResponse{
		ID:          inv.ID,
		Number:      inv.Number,
		Status:      inv.Status.String(),
		Currency:    inv.Currency,
		AmountGross: entity.FormatAmount(inv.AmountGross),
		IssuedAt:    inv.IssuedAt.Format("2006-01-02"),
		Seller:      inv.Seller,
		Buyer:       inv.Buyer,
		Items:       make([]InvoiceItemResponse, 0, len(inv.Items)),
		PaymentID:   inv.PaymentID,
		PDFURL:      documentURL,
	}

	if !inv.PaidAt.IsZero() {
		resp.PaidAt = inv.PaidAt.Format("2006-01-02")
	}

	for _, item := range inv.Items {
		resp.Items = append(resp.Items, InvoiceItemResponse{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: entity.FormatAmount(item.UnitPrice),
			Total:     entity.FormatAmount(item.Total),
		})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

func parseNotification(r *http.Request) (tpay.Notification, error) {
	err := r.ParseForm()
	if err != nil {
		return tpay.Notification{}, fmt.Errorf("parse form: %w", err)
	}

	return tpay.Notification{
		MerchantID: r.PostFormValue("id"),
		TrID:       r.PostFormValue("tr_id"),
		TrDate:     r.PostFormValue("tr_date"),
		TrCRC:      r.PostFormValue("tr_crc"),
		TrAmount:   r.PostFormValue("tr_amount"),
		TrPaid:     r.PostFormValue("tr_paid"),
		TrDesc:     r.PostFormValue("tr_desc"),
		TrStatus:   r.PostFormValue("tr_status"),
		TrError:    r.PostFormValue("tr_error"),
		TrEmail:    r.PostFormValue("tr_email"),
		MD5Sum:     r.PostFormValue("md5sum"),
	}, nil
}

func paymentResponse(p entity.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:          p.ID,
		Amount:      entity.FormatAmount(p.Amount),
		Currency:    p.Currency,
		Description: p.Description,
		Email:       p.Email,
		Status:      p.Status.String(),
		TrID:        p.TrID,
		InvoiceID:   p.InvoiceID,
		Meta:        p.Meta,
		CreatedAt:   p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	if !p.PaidAt.IsZero() {
		resp.PaidAt = p.PaidAt.Format("2006-01-02T15:04:05Z07:00")
	}

	return resp
}

func paymentFilter(r *http.Request) (entity.PaymentFilter, error) {
	q := r.URL.Query()

	filter := entity.PaymentFilter{
		Page:    1,
		Limit:   defaultPageLimit,
		SortBy:  entity.SortByCreatedAt,
		OrderBy: entity.DESC,
	}

	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}

	if v := q.Get("email"); v != "" {
		filter.Email = &v
	}

	if v := q.Get("createdAt"); v != "" {
		filter.CreatedAt = &v
	}

	if v := q.Get("page"); v != "" {
		page, err := strconv.ParseUint(v, 10, 64)
		if err != nil || page == 0 {
			return filter, fmt.Errorf("%w: page %q", entity.ErrInvalidArgument, v)
		}

		filter.Page = page
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.ParseUint(v, 10, 64)
		if err != nil || limit == 0 {
			return filter, fmt.Errorf("%w: limit %q", entity.ErrInvalidArgument, v)
		}

		if limit > maxPageLimit {
			limit = maxPageLimit
		}

		filter.Limit = limit
	}

	if v := q.Get("sortBy"); v != "" {
		filter.SortBy = entity.PaymentSortCol(v)
		if !filter.SortBy.IsValid() {
			return filter, fmt.Errorf("%w: sortBy %q", entity.ErrInvalidArgument, v)
		}
	}

	if v := q.Get("orderBy"); v != "" {
		filter.OrderBy = entity.OrderByCol(v)
		if !filter.OrderBy.IsValid() {
			return filter, fmt.Errorf("%w: orderBy %q", entity.ErrInvalidArgument, v)
		}
	}

	return filter, nil
}
