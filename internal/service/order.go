// Package service provides the business logic of the parts invoicing run.
package service

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/speero/partsbilling/internal/domain/order"
	"github.com/speero/partsbilling/internal/domain/part"
	"github.com/speero/partsbilling/internal/types"
)

// OrderService fetches unbilled line items and order records for invoicing.
type OrderService interface {
	// GetAllParts returns every billable line item created after fromDate
	// across both physical sources: fulfilled stock/quota order parts and
	// priced request parts. No ordering guarantee on the result.
	GetAllParts(ctx context.Context, fromDate time.Time) ([]*part.Part, error)

	// GetOrderByID fetches a single order projected to the given fields.
	GetOrderByID(ctx context.Context, id string, fields ...string) (*order.Order, error)
}

type orderService struct {
	ServiceParams
}

// NewOrderService creates a new order query service.
func NewOrderService(params ServiceParams) OrderService {
	return &orderService{ServiceParams: params}
}

func (s *orderService) GetAllParts(ctx context.Context, fromDate time.Time) ([]*part.Part, error) {
	type listResult struct {
		parts []*part.Part
		err   error
	}

	// The two sources are independent collections, fetch them concurrently.
	requestCh := make(chan listResult, 1)
	go func() {
		parts, err := s.RequestPartRepo.List(ctx, &part.Filter{
			CreatedAfter: lo.ToPtr(fromDate),
			Priced:       lo.ToPtr(true),
			HasInvoice:   lo.ToPtr(false),
			Classes:      []types.PartClass{types.PartClassRequest},
		})
		requestCh <- listResult{parts: parts, err: err}
	}()

	orderParts, err := s.OrderPartRepo.List(ctx, &part.Filter{
		CreatedAfter:         lo.ToPtr(fromDate),
		FulfillmentCompleted: lo.ToPtr(true),
		HasInvoice:           lo.ToPtr(false),
	})
	requestRes := <-requestCh

	if err != nil {
		return nil, err
	}
	if requestRes.err != nil {
		return nil, requestRes.err
	}

	return append(requestRes.parts, orderParts...), nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id string, fields ...string) (*order.Order, error) {
	return s.OrderRepo.FindOne(ctx, id, fields...)
}
