package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/harmonia-school/payments/internal/api"
	"github.com/harmonia-school/payments/internal/clients/tpay"
	"github.com/harmonia-school/payments/internal/entity"
	"github.com/harmonia-school/payments/internal/mocks"
	"github.com/harmonia-school/payments/pkg/config"
)

const testJWTSecret = "test-secret"

var testTpayConfig = config.Tpay{
	MerchantID:   "1010",
	SecurityCode: "demo",
	Environment:  "sandbox",
}

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockAPIService, *tpay.Client) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockAPIService(ctrl)
	gateway := tpay.NewClient(testTpayConfig)

	h := api.NewHandler(svc, gateway)
	mw := api.NewMiddleware(testJWTSecret, nil)

	return api.NewRouter(h, mw), svc, gateway
}

func TestInitiatePayment(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t)

	paymentID := uuid.Must(uuid.NewV4())

	svc.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, np entity.NewPayment) (entity.PaymentSession, error) {
			require.Equal(t, int64(2550), np.Amount)
			require.Equal(t, "Lekcja pianina", np.Description)
			require.Equal(t, "parent@example.com", np.Email)
			require.Equal(t, "Anna Kowalska", np.Meta["buyerName"])

			return entity.PaymentSession{
				Payment: entity.Payment{
					ID:       paymentID,
					Amount:   np.Amount,
					Currency: entity.DefaultCurrency,
					Status:   entity.PaymentStatusInitiated,
				},
				GatewayURL: "https://secure.sandbox.tpay.com",
				Fields:     map[string]string{"id": "1010", "kwota": "25.50"},
			}, nil
		})

	body := `{"amount":"25.50","description":"Lekcja pianina","email":"parent@example.com","buyerName":"Anna Kowalska"}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/initiatePayment", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp api.InitiatePaymentResponse

	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, paymentID, resp.PaymentID)
	require.Equal(t, "25.50", resp.Amount)
	require.Equal(t, "https://secure.sandbox.tpay.com", resp.GatewayURL)
	require.Equal(t, "1010", resp.Fields["id"])
}

func TestInitiatePayment_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		code int
	}{
		{name: "invalid json", body: `{`, code: http.StatusBadRequest},
		{name: "negative amount", body: `{"amount":"-5","description":"x","email":"a@b"}`, code: http.StatusUnprocessableEntity},
		{name: "too precise amount", body: `{"amount":"10.555","description":"x","email":"a@b"}`, code: http.StatusUnprocessableEntity},
		{name: "empty description", body: `{"amount":"10.00","email":"a@b"}`, code: http.StatusUnprocessableEntity},
		{name: "empty email", body: `{"amount":"10.00","description":"x"}`, code: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, _, _ := newTestRouter(t)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/initiatePayment", strings.NewReader(tt.body)))

			require.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestInitiatePayment_GatewayNotConfigured(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t)

	svc.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return(entity.PaymentSession{}, entity.ErrNotConfigured)

	body := `{"amount":"10.00","description":"x","email":"a@b"}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/initiatePayment", strings.NewReader(body)))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func notificationForm(gateway *tpay.Client, paymentID uuid.UUID, trID, amount string) url.Values {
	form := url.Values{}
	form.Set("id", "1010")
	form.Set("tr_id", trID)
	form.Set("tr_crc", paymentID.String())
	form.Set("tr_amount", amount)
	form.Set("tr_status", "TRUE")
	form.Set("md5sum", gateway.InboundChecksum(trID, amount, paymentID.String()))

	return form
}

func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestTpayWebhook(t *testing.T) {
	t.Parallel()

	router, svc, gateway := newTestRouter(t)

	paymentID := uuid.Must(uuid.NewV4())

	svc.EXPECT().ConfirmPaymentAsync(gomock.Any(), paymentID, "TR-9LX4K3", int64(2550))

	rec := postForm(router, "/tpay/webhook", notificationForm(gateway, paymentID, "TR-9LX4K3", "25.50"))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "TRUE", rec.Body.String())
	require.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

// A tampered checksum gets ERROR at HTTP 200 and triggers no state change.
func TestTpayWebhook_Tampered(t *testing.T) {
	t.Parallel()

	router, _, gateway := newTestRouter(t)

	form := notificationForm(gateway, uuid.Must(uuid.NewV4()), "TR-1", "25.50")
	form.Set("md5sum", "deadbeefdeadbeefdeadbeefdeadbeef")

	rec := postForm(router, "/tpay/webhook", form)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ERROR", rec.Body.String())
}

func TestTpayWebhook_WrongMerchant(t *testing.T) {
	t.Parallel()

	router, _, gateway := newTestRouter(t)

	form := notificationForm(gateway, uuid.Must(uuid.NewV4()), "TR-1", "25.50")
	form.Set("id", "2020")

	rec := postForm(router, "/tpay/webhook", form)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ERROR", rec.Body.String())
}

// tr_status other than TRUE is acknowledged but not processed.
func TestTpayWebhook_NonPaidStatus(t *testing.T) {
	t.Parallel()

	router, _, gateway := newTestRouter(t)

	paymentID := uuid.Must(uuid.NewV4())

	form := notificationForm(gateway, paymentID, "TR-1", "25.50")
	form.Set("tr_status", "CHARGEBACK")
	form.Set("md5sum", gateway.InboundChecksum("TR-1", "25.50", paymentID.String()))

	rec := postForm(router, "/tpay/webhook", form)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "TRUE", rec.Body.String())
}

// Without gateway credentials the webhook still answers HTTP 200, with an
// ERROR body.
func TestTpayWebhook_NotConfigured(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockAPIService(ctrl)

	h := api.NewHandler(svc, tpay.NewClient(config.Tpay{}))
	router := api.NewRouter(h, api.NewMiddleware(testJWTSecret, nil))

	form := url.Values{}
	form.Set("id", "1010")
	form.Set("tr_status", "TRUE")

	rec := postForm(router, "/tpay/webhook", form)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ERROR", rec.Body.String())
}

func TestTpayWebhook_IPWhitelist(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockAPIService(ctrl)
	gateway := tpay.NewClient(testTpayConfig)

	h := api.NewHandler(svc, gateway)
	router := api.NewRouter(h, api.NewMiddleware(testJWTSecret, []string{"40.1.2.3"}))

	form := notificationForm(gateway, uuid.Must(uuid.NewV4()), "TR-1", "25.50")

	// httptest.NewRequest sets RemoteAddr to 192.0.2.1:1234, outside the
	// whitelist.
	rec := postForm(router, "/tpay/webhook", form)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ERROR", rec.Body.String())
}

// Fixed vectors for merchant 1010 / security code "demo", precomputed
// with md5sum.
func TestTpayCheck(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	form := url.Values{}
	form.Set("amount", "10.00")
	form.Set("crc", "ord-7f3a")
	form.Set("tr_id", "TR-9LX4K3")

	rec := postForm(router, "/tpay/check", form)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.ChecksumCheckResponse

	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "ec115cefd932957ff6282f6e59907b19", resp.Outbound)
	require.Equal(t, "0af3852fe5ee422549396cba86561f2d", resp.Inbound)
	require.Equal(t, 4, resp.SecretLength)
	require.Equal(t, "2a97516c", resp.SecretSHA256Prefix)
	require.NotContains(t, rec.Body.String(), "demo")
}

func TestTpayCheck_BadAmount(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	form := url.Values{}
	form.Set("amount", "10.555")
	form.Set("crc", "ord-7f3a")

	rec := postForm(router, "/tpay/check", form)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTpayDebug(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tpay/debug", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.TpayDebugResponse

	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.True(t, resp.Configured)
	require.Equal(t, "1010", resp.MerchantID)
	require.Equal(t, "sandbox", resp.Environment)
	require.Equal(t, 4, resp.SecretLength)
	require.Equal(t, "2a97516c", resp.SecretSHA256Prefix)
	require.NotContains(t, rec.Body.String(), "demo")
}

func TestTpayDebug_NotConfigured(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockAPIService(ctrl)

	h := api.NewHandler(svc, tpay.NewClient(config.Tpay{}))
	router := api.NewRouter(h, api.NewMiddleware(testJWTSecret, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tpay/debug", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp api.ErrorResponse

	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "Payment gateway is not configured", resp.Message)
}

func TestPayment(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t)

	p := entity.Payment{
		ID:        uuid.Must(uuid.NewV4()),
		Amount:    2550,
		Currency:  entity.DefaultCurrency,
		Status:    entity.PaymentStatusPaid,
		TrID:      "TR-1",
		CreatedAt: time.Now(),
		PaidAt:    time.Now(),
	}

	svc.EXPECT().Payment(gomock.Any(), p.ID).Return(p, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payments/"+p.ID.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.PaymentResponse

	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, p.ID, resp.ID)
	require.Equal(t, "25.50", resp.Amount)
	require.Equal(t, "paid", resp.Status)
}

func TestPayment_NotFound(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t)

	id := uuid.Must(uuid.NewV4())
	svc.EXPECT().Payment(gomock.Any(), id).Return(entity.Payment{}, entity.ErrNotFound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payments/"+id.String(), nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPayments_Auth(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t)

	// No token.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payments", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid token, non-admin role rejected by the service.
	svc.EXPECT().
		Payments(gomock.Any(), gomock.Any()).
		Return(nil, 0, entity.ErrForbidden)

	req := httptest.NewRequest(http.MethodGet, "/payments", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, entity.RoleParent))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPayments(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t)

	svc.EXPECT().
		Payments(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, filter entity.PaymentFilter) ([]entity.Payment, int, error) {
			user, err := entity.UserFromCtx(ctx)
			require.NoError(t, err)
			require.Equal(t, entity.RoleAdmin, user.Role)

			require.Equal(t, "paid", *filter.Status)
			require.Equal(t, uint64(2), filter.Page)
			require.Equal(t, uint64(10), filter.Limit)

			return []entity.Payment{{ID: uuid.Must(uuid.NewV4()), Amount: 100, CreatedAt: time.Now()}}, 11, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/payments?status=paid&page=2&limit=10", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, entity.RoleAdmin))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.PaymentsResponse

	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Payments, 1)
	require.Equal(t, 11, resp.TotalCount)
}

func TestPayments_LimitClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		limit uint64
	}{
		{name: "default", query: "", limit: 10},
		{name: "within cap", query: "?limit=25", limit: 25},
		{name: "over cap", query: "?limit=1000000", limit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, svc, _ := newTestRouter(t)

			svc.EXPECT().
				Payments(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, filter entity.PaymentFilter) ([]entity.Payment, int, error) {
					require.Equal(t, tt.limit, filter.Limit)
					return nil, 0, nil
				})

			req := httptest.NewRequest(http.MethodGet, "/payments"+tt.query, nil)
			req.Header.Set("Authorization", "Bearer "+signTestToken(t, entity.RoleAdmin))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestInvoice(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t)

	inv := entity.Invoice{
		ID:          uuid.Must(uuid.NewV4()),
		Number:      "2026/08/001",
		Status:      entity.InvoiceStatusPaid,
		Currency:    entity.DefaultCurrency,
		AmountGross: 2550,
		IssuedAt:    time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		PaidAt:      time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		Items: []entity.InvoiceItem{
			{Name: "Lekcja pianina", Quantity: 1, UnitPrice: 2550, Total: 2550},
		},
		PaymentID: uuid.Must(uuid.NewV4()),
		PDFPath:   "invoices/x.pdf",
	}

	svc.EXPECT().
		Invoice(gomock.Any(), inv.ID).
		Return(inv, "https://blobs.example.com/invoices/x.pdf?sig=abc", nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/invoices/"+inv.ID.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.InvoiceResponse

	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "2026/08/001", resp.Number)
	require.Equal(t, "25.50", resp.AmountGross)
	require.Equal(t, "https://blobs.example.com/invoices/x.pdf?sig=abc", resp.PDFURL)
	require.Len(t, resp.Items, 1)
	require.Equal(t, "25.50", resp.Items[0].Total)
}

func signTestToken(t *testing.T, role entity.Role) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   uuid.Must(uuid.NewV4()).String(),
		"email": "staff@example.com",
		"role":  string(role),
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	return signed
}
