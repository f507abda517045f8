package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/speero/partsbilling/internal/domain/invoice"
	"github.com/speero/partsbilling/internal/domain/order"
	ierr "github.com/speero/partsbilling/internal/errors"
	"github.com/speero/partsbilling/internal/repository/inmemory"
	"github.com/speero/partsbilling/internal/testutil"
)

type InvoiceEffectsSuite struct {
	testutil.BaseServiceTestSuite
	service InvoiceEffectsService
}

func TestInvoiceEffects(t *testing.T) {
	suite.Run(t, new(InvoiceEffectsSuite))
}

func (s *InvoiceEffectsSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewInvoiceEffectsService(s.params())
}

func (s *InvoiceEffectsSuite) params() ServiceParams {
	return ServiceParams{
		Logger:          s.GetLogger(),
		Config:          s.GetConfig(),
		ErrorReporter:   s.GetReporter(),
		OrderRepo:       s.GetStores().OrderRepo,
		InvoiceRepo:     s.GetStores().InvoiceRepo,
		OrderPartRepo:   s.GetStores().OrderPartRepo,
		RequestPartRepo: s.GetStores().RequestPartRepo,
		SettingsRepo:    s.GetStores().SettingsRepo,
	}
}

func (s *InvoiceEffectsSuite) seedGroup() *invoice.Invoice {
	ctx := s.GetContext()
	s.NoError(s.GetStores().OrderRepo.Create(ctx, &order.Order{ID: "order_1"}))
	s.NoError(s.GetStores().OrderPartRepo.Create(ctx, stockPart("p1", "order_1", "10.00")))
	s.NoError(s.GetStores().RequestPartRepo.Create(ctx, requestPart("rp1", "order_1", "40.00")))

	return &invoice.Invoice{
		ID:               "inv_1",
		OrderID:          "order_1",
		PartIDs:          []string{"p1"},
		RequestPartIDs:   []string{"rp1"},
		TotalPartsAmount: dec("50.00"),
		TotalAmount:      dec("50.00"),
		CreatedAt:        time.Now().UTC(),
	}
}

func (s *InvoiceEffectsSuite) TestPropagatesAllBackReferences() {
	inv := s.seedGroup()
	ctx := s.GetContext()

	s.Require().NoError(s.service.OnInvoiceCreated(ctx, inv))

	ord, err := s.GetStores().OrderRepo.FindOne(ctx, "order_1")
	s.Require().NoError(err)
	s.Equal([]string{"inv_1"}, ord.InvoiceIDs)

	stamped, err := s.GetStores().OrderPartRepo.Get(ctx, "p1")
	s.Require().NoError(err)
	s.Require().NotNil(stamped.InvoiceID)
	s.Equal("inv_1", *stamped.InvoiceID)

	stampedReq, err := s.GetStores().RequestPartRepo.Get(ctx, "rp1")
	s.Require().NoError(err)
	s.Require().NotNil(stampedReq.InvoiceID)
	s.Equal("inv_1", *stampedReq.InvoiceID)
}

func (s *InvoiceEffectsSuite) TestOrderUpdateIsIdempotent() {
	inv := s.seedGroup()
	ctx := s.GetContext()

	s.Require().NoError(s.service.OnInvoiceCreated(ctx, inv))
	s.Require().NoError(s.service.OnInvoiceCreated(ctx, inv))

	ord, err := s.GetStores().OrderRepo.FindOne(ctx, "order_1")
	s.Require().NoError(err)
	s.Equal([]string{"inv_1"}, ord.InvoiceIDs, "set-add must not duplicate")
}

type failingPartRepo struct {
	*inmemory.PartStore
}

func (f *failingPartRepo) StampInvoice(_ context.Context, _, _ string) error {
	return ierr.NewError("simulated stamp failure").Mark(ierr.ErrDatabase)
}

func (s *InvoiceEffectsSuite) TestPartialFailureLeavesOtherUpdates() {
	inv := s.seedGroup()
	ctx := s.GetContext()

	params := s.params()
	params.RequestPartRepo = &failingPartRepo{PartStore: s.GetStores().RequestPartRepo}
	svc := NewInvoiceEffectsService(params)

	err := svc.OnInvoiceCreated(ctx, inv)
	s.Require().Error(err)

	// The independent updates still landed.
	ord, findErr := s.GetStores().OrderRepo.FindOne(ctx, "order_1")
	s.Require().NoError(findErr)
	s.Contains(ord.InvoiceIDs, "inv_1")

	stamped, getErr := s.GetStores().OrderPartRepo.Get(ctx, "p1")
	s.Require().NoError(getErr)
	s.NotNil(stamped.InvoiceID)

	// The failed branch left its part untouched.
	untouched, getErr := s.GetStores().RequestPartRepo.Get(ctx, "rp1")
	s.Require().NoError(getErr)
	s.Nil(untouched.InvoiceID)
}
