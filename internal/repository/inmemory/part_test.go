package inmemory

import (
	"context"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speero/partsbilling/internal/domain/part"
	ierr "github.com/speero/partsbilling/internal/errors"
	"github.com/speero/partsbilling/internal/types"
)

func testPart(id string) *part.Part {
	now := time.Now().UTC()
	return &part.Part{
		ID:                     id,
		OrderID:                "order_1",
		Class:                  types.PartClassStock,
		PriceBeforeDiscount:    decimal.NewFromInt(10),
		CreatedAt:              now,
		FulfillmentCompletedAt: lo.ToPtr(now),
	}
}

func TestPartStore_Create(t *testing.T) {
	ctx := context.Background()
	store := NewPartStore()

	t.Run("successful creation", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, testPart("p1")))

		got, err := store.Get(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "order_1", got.OrderID)
	})

	t.Run("nil part", func(t *testing.T) {
		err := store.Create(ctx, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "part cannot be nil")
	})

	t.Run("invalid class", func(t *testing.T) {
		p := testPart("p_bad")
		p.Class = types.PartClass("MysteryPart")
		err := store.Create(ctx, p)
		assert.True(t, ierr.IsValidation(err))
	})

	t.Run("duplicate id", func(t *testing.T) {
		err := store.Create(ctx, testPart("p1"))
		assert.True(t, ierr.IsAlreadyExists(err))
	})
}

func TestPartStore_ListRespectsFilter(t *testing.T) {
	ctx := context.Background()
	store := NewPartStore()

	eligible := testPart("p1")
	require.NoError(t, store.Create(ctx, eligible))

	invoiced := testPart("p2")
	invoiced.InvoiceID = lo.ToPtr("inv_1")
	require.NoError(t, store.Create(ctx, invoiced))

	parts, err := store.List(ctx, &part.Filter{HasInvoice: lo.ToPtr(false)})
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "p1", parts[0].ID)
}

func TestPartStore_StampInvoice(t *testing.T) {
	ctx := context.Background()
	store := NewPartStore()

	require.NoError(t, store.Create(ctx, testPart("p1")))
	require.NoError(t, store.StampInvoice(ctx, "p1", "inv_1"))

	got, err := store.Get(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, got.InvoiceID)
	assert.Equal(t, "inv_1", *got.InvoiceID)

	err = store.StampInvoice(ctx, "p_missing", "inv_1")
	assert.True(t, ierr.IsNotFound(err))
}

func TestPartStore_CopiesOnReadAndWrite(t *testing.T) {
	ctx := context.Background()
	store := NewPartStore()

	p := testPart("p1")
	require.NoError(t, store.Create(ctx, p))

	// Mutating the seeded value must not leak into the store.
	p.OrderID = "order_other"

	got, err := store.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "order_1", got.OrderID)

	// Mutating a read result must not leak either.
	got.InvoiceID = lo.ToPtr("inv_leak")
	again, err := store.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, again.InvoiceID)
}
