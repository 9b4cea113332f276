package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/harmonia-school/payments/internal/api"
	"github.com/harmonia-school/payments/internal/clients/s3"
	"github.com/harmonia-school/payments/internal/clients/tpay"
	"github.com/harmonia-school/payments/internal/entity"
	"github.com/harmonia-school/payments/internal/pdf"
	"github.com/harmonia-school/payments/internal/repository"
	"github.com/harmonia-school/payments/internal/service"
	"github.com/harmonia-school/payments/pkg/broker"
	"github.com/harmonia-school/payments/pkg/config"
	"github.com/harmonia-school/payments/pkg/job"
	"github.com/harmonia-school/payments/pkg/logger"
	"github.com/harmonia-school/payments/pkg/postgres"
)

const (
	ReadTimeout  = 3 * time.Second
	WriteTimeout = 10 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	tpayClient := tpay.NewClient(cfg.Tpay)
	if !tpayClient.Configured() {
		slog.WarnContext(ctx, "tpay credentials are not configured, payment routes will answer with errors")
	}

	storage, err := s3.NewClient(cfg.S3)
	panicOnErr("create s3 client", err)

	producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.PaymentPaidTopic)
	defer producer.Close()

	seller := entity.Party{
		Name:    cfg.Seller.Name,
		Address: cfg.Seller.Address,
		TaxID:   cfg.Seller.TaxID,
	}

	s := service.New(repo, tpayClient, storage, pdf.NewRenderer(), producer, seller, cfg.HTTP.PublicBaseURL)

	jobs := job.NewRunner().
		Register("reconcile missing invoices", time.Hour, s.ReconcileMissingInvoices)
	jobs.Start(ctx)

	handler := api.NewHandler(s, tpayClient)
	mw := api.NewMiddleware(cfg.HTTP.JWTSecret, cfg.Tpay.CallbackIPWL)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}

		// Let in-flight deferred webhook work land before exiting.
		s.Wait()
		cancel()
		jobs.Wait()
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
