package order_test

import (
	"testing"
	"time"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/core/domain/model/order"
	"arkdumpster/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeLine(t *testing.T, quantity int, unitPrice string) *order.Line {
	t.Helper()
	price, err := decimal.NewFromString(unitPrice)
	require.NoError(t, err)

	line, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), "20 Yard Dumpster", quantity, price)
	require.NoError(t, err)
	return line
}

func makeOrder(t *testing.T, lines ...*order.Line) *order.Order {
	t.Helper()
	if len(lines) == 0 {
		lines = []*order.Line{makeLine(t, 1, "350.00")}
	}

	o, err := order.NewOrder(
		kernel.NewUUID(), nil, "ORD-20260901-A1B2C3",
		"Dana Ford", "dana@example.com", "555-0134", "12 Elm St",
		order.PriorityNormal, lines, nil, time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order and sum line totals", func(t *testing.T) {
		lines := []*order.Line{
			makeLine(t, 2, "100.00"),
			makeLine(t, 1, "49.50"),
		}

		o := makeOrder(t, lines...)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.True(t, o.QuotedPrice().Equal(decimal.RequireFromString("249.50")))
		assert.Len(t, o.Lines(), 2)
		assert.Nil(t, o.CompletedAt())
		assert.False(t, o.HasDriver())
	})

	t.Run("should honor explicit quoted price override", func(t *testing.T) {
		override := decimal.RequireFromString("300.00")

		o, err := order.NewOrder(
			kernel.NewUUID(), nil, "ORD-20260901-B2C3D4",
			"Dana Ford", "dana@example.com", "", "12 Elm St",
			order.PriorityHigh, []*order.Line{makeLine(t, 1, "350.00")}, &override, time.Now().UTC(),
		)

		require.NoError(t, err)
		assert.True(t, o.QuotedPrice().Equal(override))
	})

	t.Run("should reject order without lines", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), nil, "ORD-20260901-C3D4E5",
			"Dana Ford", "dana@example.com", "", "12 Elm St",
			order.PriorityNormal, nil, nil, time.Now().UTC(),
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrNoServicesSelected)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject missing customer name", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), nil, "ORD-20260901-D4E5F6",
			"", "dana@example.com", "", "12 Elm St",
			order.PriorityNormal, []*order.Line{makeLine(t, 1, "350.00")}, nil, time.Now().UTC(),
		)

		require.Error(t, err)
	})
}

func TestOrderChangeStatus(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should stamp actual delivery date on delivered", func(t *testing.T) {
		o := makeOrder(t)

		require.NoError(t, o.ChangeStatus(order.Delivered, now))

		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.ActualDeliveryDate())
		assert.Equal(t, now, *o.ActualDeliveryDate())
	})

	t.Run("should refresh delivery date on re-delivery", func(t *testing.T) {
		o := makeOrder(t)
		later := now.Add(2 * time.Hour)

		require.NoError(t, o.ChangeStatus(order.Delivered, now))
		require.NoError(t, o.ChangeStatus(order.OnWay, now))
		require.NoError(t, o.ChangeStatus(order.Delivered, later))

		assert.Equal(t, later, *o.ActualDeliveryDate())
	})

	t.Run("should stamp completion timestamps on completed", func(t *testing.T) {
		o := makeOrder(t)

		require.NoError(t, o.ChangeStatus(order.Completed, now))

		require.NotNil(t, o.CompletedAt())
		assert.Equal(t, now, *o.CompletedAt())
		require.NotNil(t, o.ActualPickupDate())
		assert.Equal(t, now, *o.ActualPickupDate())
	})

	t.Run("should clear completed_at when leaving completed", func(t *testing.T) {
		o := makeOrder(t)

		require.NoError(t, o.ChangeStatus(order.Completed, now))
		require.NoError(t, o.ChangeStatus(order.Scheduled, now.Add(time.Hour)))

		assert.Nil(t, o.CompletedAt())
		assert.Equal(t, order.Scheduled, o.Status())
	})

	t.Run("should reject values outside the enumeration", func(t *testing.T) {
		o := makeOrder(t)

		err := o.ChangeStatus(order.Status("shipped"), now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrderRecordCompletionDumpster(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should record the audit trail on a completed order", func(t *testing.T) {
		o := makeOrder(t)
		require.NoError(t, o.ChangeStatus(order.Completed, now))

		dumpsterID := kernel.NewUUID()
		require.NoError(t, o.RecordCompletionDumpster(dumpsterID, "Big Green 20"))

		require.NotNil(t, o.CompletedWithDumpsterID())
		assert.True(t, o.CompletedWithDumpsterID().IsEqual(dumpsterID))
		require.NotNil(t, o.CompletedWithDumpsterName())
		assert.Equal(t, "Big Green 20", *o.CompletedWithDumpsterName())
	})

	t.Run("should reject recording on a non-completed order", func(t *testing.T) {
		o := makeOrder(t)

		err := o.RecordCompletionDumpster(kernel.NewUUID(), "Big Green 20")

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderNotCompleted)
	})
}

func TestOrderAssignDriver(t *testing.T) {
	o := makeOrder(t)
	assert.False(t, o.HasDriver())

	require.NoError(t, o.AssignDriver("marcus"))

	assert.True(t, o.HasDriver())
	require.NotNil(t, o.AssignedTo())
	assert.Equal(t, "marcus", *o.AssignedTo())

	require.Error(t, o.AssignDriver(""))
}

func TestOrderLine(t *testing.T) {
	line := makeLine(t, 1, "350.00")
	o := makeOrder(t, line)

	t.Run("should find a line by id", func(t *testing.T) {
		found, err := o.Line(line.ID())
		require.NoError(t, err)
		assert.True(t, found.ID().IsEqual(line.ID()))
	})

	t.Run("should fail for an unknown line", func(t *testing.T) {
		_, err := o.Line(kernel.NewUUID())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestLineSetInvoiceDescription(t *testing.T) {
	line := makeLine(t, 2, "175.00")
	assert.Nil(t, line.InvoiceDescription())
	assert.True(t, line.TotalPrice().Equal(decimal.RequireFromString("350.00")))

	require.NoError(t, line.SetInvoiceDescription("Roll-off container rental, 2 weeks"))
	require.NotNil(t, line.InvoiceDescription())
	assert.Equal(t, "Roll-off container rental, 2 weeks", *line.InvoiceDescription())

	require.Error(t, line.SetInvoiceDescription(""))
}

func TestRestoreOrder(t *testing.T) {
	now := time.Now().UTC()
	line := makeLine(t, 1, "350.00")
	completedAt := now.Add(-time.Hour)
	dumpsterID := kernel.NewUUID()
	dumpsterName := "Big Green 20"
	driver := "marcus"

	o, err := order.RestoreOrder(
		kernel.NewUUID(), nil, "ORD-20260901-E5F6A7",
		"Dana Ford", "dana@example.com", "", "12 Elm St",
		order.Completed, order.PriorityLow,
		decimal.RequireFromString("350.00"), nil,
		&driver,
		nil, nil, nil, nil,
		&completedAt, &dumpsterID, &dumpsterName,
		"paid",
		[]*order.Line{line},
		now.Add(-48*time.Hour),
	)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, o.Status())
	assert.Equal(t, completedAt, *o.CompletedAt())
	assert.Equal(t, "paid", o.InvoiceStatus())
	assert.True(t, o.CompletedWithDumpsterID().IsEqual(dumpsterID))
}
