package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/harmonia-school/payments/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.HandleFunc("/health", h.HealthHandler)
	mux.HandleFunc("/swagger/*", httpSwagger.Handler())

	mux.Post("/initiatePayment", h.InitiatePayment)

	mux.Route("/tpay", func(r chi.Router) {
		r.Get("/debug", h.TpayDebug)
		r.Post("/check", h.TpayCheck)

		r.Group(func(r chi.Router) {
			r.Use(mw.TpayIPWL)
			r.Post("/webhook", h.TpayWebhook)
		})
	})

	mux.Route("/payments", func(r chi.Router) {
		r.Get("/{paymentId}", h.Payment)

		r.Group(func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Get("/", h.Payments)
		})
	})

	mux.Get("/invoices/{invoiceId}", h.Invoice)

	return mux
}
