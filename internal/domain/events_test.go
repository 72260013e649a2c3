package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventTypeTagsStable(t *testing.T) {
	cases := []struct {
		ev  OrderEvent
		tag string
	}{
		{OrderInitialized{}, "OrderInitialized"},
		{OrderDenied{}, "OrderDenied"},
		{OrderSubmitted{}, "OrderSubmitted"},
		{OrderAccepted{}, "OrderAccepted"},
		{OrderRejected{}, "OrderRejected"},
		{OrderCanceled{}, "OrderCanceled"},
		{OrderExpired{}, "OrderExpired"},
		{OrderTriggered{}, "OrderTriggered"},
		{OrderPendingUpdate{}, "OrderPendingUpdate"},
		{OrderPendingCancel{}, "OrderPendingCancel"},
		{OrderModifyRejected{}, "OrderModifyRejected"},
		{OrderCancelRejected{}, "OrderCancelRejected"},
		{OrderUpdated{}, "OrderUpdated"},
		{OrderPartiallyFilled{}, "OrderPartiallyFilled"},
		{OrderFilled{}, "OrderFilled"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.tag, tc.ev.EventType())
	}
}

func TestEventStructuralEquality(t *testing.T) {
	a := canceledEvent(5)
	b := a
	assert.Equal(t, a, b)

	b.VenueOrderID = "V-OTHER"
	assert.NotEqual(t, a, b)
}

func TestEventMetaAccessors(t *testing.T) {
	meta := NewEventMeta(10, 20)
	assert.NotEmpty(t, meta.EventID)
	assert.Equal(t, UnixNanos(10), meta.GetTsEvent())
	assert.Equal(t, UnixNanos(20), meta.GetTsInit())
	assert.False(t, meta.IsReconciliation())

	other := NewEventMeta(10, 20)
	assert.NotEqual(t, meta.EventID, other.EventID)
}

func TestReconciliationFlagShadowsDefault(t *testing.T) {
	ev := canceledEvent(5)
	assert.False(t, ev.IsReconciliation())
	ev.Reconciliation = true
	assert.True(t, ev.IsReconciliation())
}
