package service

import (
	"github.com/speero/partsbilling/internal/config"
	"github.com/speero/partsbilling/internal/domain/invoice"
	"github.com/speero/partsbilling/internal/domain/order"
	"github.com/speero/partsbilling/internal/domain/part"
	"github.com/speero/partsbilling/internal/domain/settings"
	"github.com/speero/partsbilling/internal/logger"
	"github.com/speero/partsbilling/internal/sentry"
)

// ServiceParams holds common dependencies for services.
// Services embed it and pick what they need.
type ServiceParams struct {
	Logger        *logger.Logger
	Config        *config.Configuration
	ErrorReporter *sentry.Reporter

	OrderRepo       order.Repository
	InvoiceRepo     invoice.Repository
	OrderPartRepo   part.OrderPartRepository
	RequestPartRepo part.RequestPartRepository
	SettingsRepo    settings.Repository
}
