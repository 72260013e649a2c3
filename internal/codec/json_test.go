package codec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AwesomeTrading/ordercore/internal/domain"
)

func deniedEvent() domain.OrderDenied {
	return domain.OrderDenied{
		TraderID:      "TRADER-001",
		StrategyID:    "S-001",
		InstrumentID:  "AUD/USD.SIM",
		ClientOrderID: "O-123456789",
		Reason:        "Some reason",
		EventMeta: domain.EventMeta{
			EventID: "91762096-b188-49ea-8562-8d8a4cc22ff2",
			TsEvent: 0,
			TsInit:  0,
		},
	}
}

func filledEvent() domain.OrderFilled {
	usd, _ := domain.CurrencyFromCode("USD")
	return domain.OrderFilled{
		TraderID:      "TRADER-001",
		StrategyID:    "S-001",
		InstrumentID:  "AUD/USD.SIM",
		ClientOrderID: "O-123456789",
		VenueOrderID:  "V-001",
		AccountID:     "SIM-001",
		TradeID:       "T-001",
		OrderSide:     domain.Buy,
		OrderType:     domain.Limit,
		LastQty:       domain.NewQuantity(100_000, 0),
		LastPx:        domain.NewPrice(1.1000, 4),
		Currency:      usd,
		Commission:    domain.NewMoney(2, usd),
		LiquiditySide: domain.Taker,
		EventMeta:     domain.NewEventMeta(1, 2),
	}
}

func allEvents() []domain.OrderEvent {
	price := domain.NewPrice(1.1000, 4)
	trigger := domain.NewPrice(1.2000, 4)
	meta := func(ts domain.UnixNanos) domain.EventMeta { return domain.NewEventMeta(ts, ts) }
	filled := filledEvent()

	return []domain.OrderEvent{
		domain.OrderInitialized{
			TraderID:      "TRADER-001",
			StrategyID:    "S-001",
			InstrumentID:  "AUD/USD.SIM",
			ClientOrderID: "O-123456789",
			OrderSide:     domain.Buy,
			OrderType:     domain.StopLimit,
			Quantity:      domain.NewQuantity(100_000, 0),
			Price:         &price,
			TriggerPrice:  &trigger,
			TriggerType:   domain.TriggerLastTrade,
			TimeInForce:   domain.GTC,
			PostOnly:      true,
			EventMeta:     meta(1),
		},
		deniedEvent(),
		domain.OrderSubmitted{ClientOrderID: "O-123456789", AccountID: "SIM-001", EventMeta: meta(2)},
		domain.OrderAccepted{ClientOrderID: "O-123456789", VenueOrderID: "V-001", EventMeta: meta(3)},
		domain.OrderRejected{ClientOrderID: "O-123456789", Reason: "insufficient margin", EventMeta: meta(4)},
		domain.OrderCanceled{ClientOrderID: "O-123456789", EventMeta: meta(5)},
		domain.OrderExpired{ClientOrderID: "O-123456789", EventMeta: meta(6)},
		domain.OrderTriggered{ClientOrderID: "O-123456789", EventMeta: meta(7)},
		domain.OrderPendingUpdate{ClientOrderID: "O-123456789", EventMeta: meta(8)},
		domain.OrderPendingCancel{ClientOrderID: "O-123456789", EventMeta: meta(9)},
		domain.OrderModifyRejected{ClientOrderID: "O-123456789", Reason: "price outside band", EventMeta: meta(10)},
		domain.OrderCancelRejected{ClientOrderID: "O-123456789", Reason: "too late", EventMeta: meta(11)},
		domain.OrderUpdated{ClientOrderID: "O-123456789", Quantity: domain.NewQuantity(50_000, 0), Price: &price, EventMeta: meta(12)},
		domain.OrderPartiallyFilled{OrderFilled: filled},
		filled,
	}
}

func TestEncodeJSONDeniedFixture(t *testing.T) {
	raw, err := EncodeJSON(deniedEvent())
	require.NoError(t, err)
	want := `{"type":"OrderDenied","trader_id":"TRADER-001","strategy_id":"S-001",` +
		`"instrument_id":"AUD/USD.SIM","client_order_id":"O-123456789","reason":"Some reason",` +
		`"event_id":"91762096-b188-49ea-8562-8d8a4cc22ff2","ts_event":0,"ts_init":0}`
	assert.Equal(t, want, string(raw))
}

func TestJSONRoundTripAllVariants(t *testing.T) {
	for _, ev := range allEvents() {
		t.Run(ev.EventType(), func(t *testing.T) {
			raw, err := EncodeJSON(ev)
			require.NoError(t, err)
			back, err := DecodeJSON(raw)
			require.NoError(t, err)
			assert.Equal(t, ev, back)
		})
	}
}

func TestDecodeJSONPartialVsFullFillDistinct(t *testing.T) {
	filled := filledEvent()
	partial := domain.OrderPartiallyFilled{OrderFilled: filled}

	rawFull, err := EncodeJSON(filled)
	require.NoError(t, err)
	rawPartial, err := EncodeJSON(partial)
	require.NoError(t, err)

	full, err := DecodeJSON(rawFull)
	require.NoError(t, err)
	part, err := DecodeJSON(rawPartial)
	require.NoError(t, err)

	assert.IsType(t, domain.OrderFilled{}, full)
	assert.IsType(t, domain.OrderPartiallyFilled{}, part)
}

func TestDecodeJSONUnknownVariant(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"type":"OrderTeleported","client_order_id":"O-1"}`))
	assert.True(t, IsKind(err, UnknownVariant))
}

func TestDecodeJSONMissingType(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"client_order_id":"O-1"}`))
	assert.True(t, IsKind(err, Malformed))
}

func TestDecodeJSONMalformed(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"type":"OrderDenied"`))
	assert.True(t, IsKind(err, Malformed))
}

func TestDecodeJSONFieldTypeMismatch(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"type":"OrderDenied","ts_event":"not-a-number"}`))
	assert.True(t, IsKind(err, FieldTypeMismatch))
}

func TestDecodeJSONIgnoresUnknownFields(t *testing.T) {
	raw, err := EncodeJSON(deniedEvent())
	require.NoError(t, err)
	patched := []byte(fmt.Sprintf(`{"future_field":42,%s`, raw[1:]))
	back, err := DecodeJSON(patched)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderEvent(deniedEvent()), back)
}
