package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/speero/partsbilling/internal/config"
	"github.com/speero/partsbilling/internal/logger"
	"github.com/speero/partsbilling/internal/repository/inmemory"
	"github.com/speero/partsbilling/internal/scheduler"
	"github.com/speero/partsbilling/internal/sentry"
	"github.com/speero/partsbilling/internal/service"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logg, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	reporter, err := sentry.NewReporter(cfg, logg)
	if err != nil {
		logg.Fatalw("failed to initialize error reporter", "error", err)
	}

	// In-memory repositories stand in for the external datastore until the
	// production repository layer is wired in deployment.
	repos := inmemory.NewRepositories()

	invoiceService := service.NewInvoiceService(service.ServiceParams{
		Logger:          logg,
		Config:          cfg,
		ErrorReporter:   reporter,
		OrderRepo:       repos.OrderRepo,
		InvoiceRepo:     repos.InvoiceRepo,
		OrderPartRepo:   repos.OrderPartRepo,
		RequestPartRepo: repos.RequestPartRepo,
		SettingsRepo:    repos.SettingsRepo,
	})

	sched := scheduler.New(logg)
	err = sched.ScheduleDaily(cfg.Billing.CronSpec, func() {
		ctx := context.Background()
		resp, err := invoiceService.CreateInvoices(ctx)
		if err != nil {
			reporter.ReportError(ctx, err)
			return
		}
		logg.Infow("invoicing run report",
			"status", resp.Status,
			"invoice_ids", resp.InvoiceIDs,
			"failures", len(resp.Failures))
	}, cfg.Billing.RunOnStart)
	if err != nil {
		logg.Fatalw("failed to schedule invoicing run", "error", err)
	}

	sched.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	sched.Stop()
	reporter.Flush(2 * time.Second)
}
