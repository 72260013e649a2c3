package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Order is the current state of a single order, derived purely by folding its
// event stream in ts_event order. It has no hidden mutable fields: Apply
// returns a new value and leaves the receiver untouched, so replay,
// reconciliation and audit are all just re-folds over the event log.
type Order struct {
	TraderID      TraderID      `json:"trader_id"`
	StrategyID    StrategyID    `json:"strategy_id"`
	InstrumentID  InstrumentID  `json:"instrument_id"`
	ClientOrderID ClientOrderID `json:"client_order_id"`
	VenueOrderID  VenueOrderID  `json:"venue_order_id,omitempty"`
	AccountID     AccountID     `json:"account_id,omitempty"`
	Side          OrderSide     `json:"side"`
	Type          OrderType     `json:"type"`
	TimeInForce   TimeInForce   `json:"time_in_force"`
	Quantity      Quantity      `json:"quantity"`
	Price         *Price        `json:"price,omitempty"`
	TriggerPrice  *Price        `json:"trigger_price,omitempty"`
	Status        OrderStatus   `json:"status"`
	// PriorStatus is the last non-pending status, restored when an in-flight
	// modify or cancel request resolves without closing the order.
	PriorStatus OrderStatus     `json:"prior_status"`
	FilledQty   Quantity        `json:"filled_qty"`
	AvgPx       decimal.Decimal `json:"avg_px"`
	Reason      string          `json:"reason,omitempty"`
	LastEventID UUID4           `json:"last_event_id"`
	LastTsEvent UnixNanos       `json:"last_ts_event"`
	TsInit      UnixNanos       `json:"ts_init"`
	EventCount  int             `json:"event_count"`
}

// NewOrder creates the aggregate from the first event of a stream.
func NewOrder(e OrderInitialized) (Order, error) {
	if e.TsInit < e.TsEvent {
		return Order{}, &TransitionError{
			Code:          TransitionOutOfOrder,
			ClientOrderID: e.ClientOrderID,
			Event:         e.EventType(),
			Detail:        "ts_init precedes ts_event",
		}
	}
	if !e.Quantity.IsPositive() {
		return Order{}, &TransitionError{
			Code:          TransitionIllegal,
			ClientOrderID: e.ClientOrderID,
			Event:         e.EventType(),
			Detail:        "quantity must be positive",
		}
	}
	return Order{
		TraderID:      e.TraderID,
		StrategyID:    e.StrategyID,
		InstrumentID:  e.InstrumentID,
		ClientOrderID: e.ClientOrderID,
		Side:          e.OrderSide,
		Type:          e.OrderType,
		TimeInForce:   e.TimeInForce,
		Quantity:      e.Quantity,
		Price:         e.Price,
		TriggerPrice:  e.TriggerPrice,
		Status:        StatusInitialized,
		PriorStatus:   StatusInitialized,
		FilledQty:     Quantity{Precision: e.Quantity.Precision},
		AvgPx:         decimal.Zero,
		LastEventID:   e.EventID,
		LastTsEvent:   e.TsEvent,
		TsInit:        e.TsInit,
		EventCount:    1,
	}, nil
}

// Replay folds a complete event stream into the order's current state.
// The stream must begin with OrderInitialized.
func Replay(events []OrderEvent) (Order, error) {
	if len(events) == 0 {
		return Order{}, errors.New("empty event stream")
	}
	init, ok := events[0].(OrderInitialized)
	if !ok {
		return Order{}, &TransitionError{
			Code:   TransitionIllegal,
			Event:  events[0].EventType(),
			Detail: "stream must begin with OrderInitialized",
		}
	}
	order, err := NewOrder(init)
	if err != nil {
		return Order{}, err
	}
	for _, ev := range events[1:] {
		order, err = order.Apply(ev)
		if err != nil {
			return Order{}, err
		}
	}
	return order, nil
}

// IsClosed reports whether the order reached a terminal status.
func (o Order) IsClosed() bool { return o.Status.IsTerminal() }

// LeavesQty is the quantity still open at the venue.
func (o Order) LeavesQty() Quantity {
	return Quantity{Raw: o.Quantity.Raw - o.FilledQty.Raw, Precision: o.Quantity.Precision}
}

// Apply folds one event into the order, returning the next state. It never
// mutates the receiver: on any error the caller keeps the prior state.
//
// Duplicate delivery of the last-applied event (same event identifier) is an
// idempotent no-op. Events reaching a terminal order are rejected unless
// flagged as reconciliation, in which case they are ignored as noise. Events
// older than the last-applied ts_event are rejected unless flagged as
// reconciliation.
func (o Order) Apply(ev OrderEvent) (Order, error) {
	if ev.GetClientOrderID() != o.ClientOrderID {
		return o, o.illegal(ev, "client order id mismatch")
	}
	if ev.GetEventID() == o.LastEventID {
		return o, nil
	}
	if ev.GetTsInit() < ev.GetTsEvent() {
		return o, o.refuse(TransitionOutOfOrder, ev, "ts_init precedes ts_event")
	}
	if o.Status.IsTerminal() {
		if ev.IsReconciliation() {
			return o, nil
		}
		return o, o.refuse(TransitionTerminal, ev, "")
	}
	if ev.GetTsEvent() < o.LastTsEvent && !ev.IsReconciliation() {
		return o, o.refuse(TransitionOutOfOrder, ev, "ts_event older than last applied event")
	}

	next := o
	switch e := ev.(type) {
	case OrderInitialized:
		return o, o.illegal(ev, "order already initialized")

	case OrderDenied:
		if o.Status != StatusInitialized {
			return o, o.illegal(ev, "")
		}
		next.Status = StatusDenied
		next.Reason = e.Reason

	case OrderSubmitted:
		if o.Status != StatusInitialized {
			return o, o.illegal(ev, "")
		}
		next.Status = StatusSubmitted
		next.AccountID = e.AccountID

	case OrderAccepted:
		if o.Status != StatusSubmitted {
			return o, o.illegal(ev, "")
		}
		if err := o.requireVenueIdents(ev, e.VenueOrderID, e.AccountID); err != nil {
			return o, err
		}
		next.Status = StatusAccepted
		next.PriorStatus = StatusAccepted
		next.VenueOrderID = e.VenueOrderID
		next.AccountID = e.AccountID

	case OrderRejected:
		if o.Status != StatusSubmitted {
			return o, o.illegal(ev, "")
		}
		if err := o.requireVenueIdents(ev, e.VenueOrderID, e.AccountID); err != nil {
			return o, err
		}
		next.Status = StatusRejected
		next.Reason = e.Reason
		next.VenueOrderID = e.VenueOrderID
		next.AccountID = e.AccountID

	case OrderTriggered:
		if !o.Status.isWorking() {
			return o, o.illegal(ev, "")
		}
		next.Status = StatusTriggered
		next.PriorStatus = StatusTriggered
		next.assignVenue(e.VenueOrderID, e.AccountID)

	case OrderPendingUpdate:
		if !o.Status.isWorking() {
			return o, o.illegal(ev, "")
		}
		if !o.Status.isPending() {
			next.PriorStatus = o.Status
		}
		next.Status = StatusPendingUpdate
		next.assignVenue(e.VenueOrderID, e.AccountID)

	case OrderPendingCancel:
		if !o.Status.isWorking() {
			return o, o.illegal(ev, "")
		}
		if !o.Status.isPending() {
			next.PriorStatus = o.Status
		}
		next.Status = StatusPendingCancel
		next.assignVenue(e.VenueOrderID, e.AccountID)

	case OrderModifyRejected:
		if !o.Status.isWorking() {
			return o, o.illegal(ev, "")
		}
		if o.Status.isPending() {
			next.Status = o.PriorStatus
		}

	case OrderCancelRejected:
		if !o.Status.isWorking() {
			return o, o.illegal(ev, "")
		}
		if o.Status.isPending() {
			next.Status = o.PriorStatus
		}

	case OrderUpdated:
		if !o.Status.isWorking() {
			return o, o.illegal(ev, "")
		}
		if e.Quantity.Decimal().LessThan(o.FilledQty.Decimal()) {
			return o, o.illegal(ev, "quantity "+e.Quantity.String()+
				" below filled quantity "+o.FilledQty.String())
		}
		next.Quantity = e.Quantity
		if e.Price != nil {
			p := *e.Price
			next.Price = &p
		}
		if e.TriggerPrice != nil {
			tp := *e.TriggerPrice
			next.TriggerPrice = &tp
		}
		if o.Status.isPending() {
			next.Status = o.PriorStatus
		}
		next.assignVenue(e.VenueOrderID, e.AccountID)

	case OrderCanceled:
		if !o.Status.isWorking() {
			return o, o.illegal(ev, "")
		}
		next.Status = StatusCanceled
		next.assignVenue(e.VenueOrderID, e.AccountID)

	case OrderExpired:
		if !o.Status.isWorking() {
			return o, o.illegal(ev, "")
		}
		next.Status = StatusExpired
		next.assignVenue(e.VenueOrderID, e.AccountID)

	case OrderPartiallyFilled:
		filled, err := o.applyFill(ev, e.OrderFilled)
		if err != nil {
			return o, err
		}
		next = filled

	case OrderFilled:
		filled, err := o.applyFill(ev, e)
		if err != nil {
			return o, err
		}
		next = filled

	default:
		return o, o.illegal(ev, "unknown event variant")
	}

	next.LastEventID = ev.GetEventID()
	if ts := ev.GetTsEvent(); ts > next.LastTsEvent {
		next.LastTsEvent = ts
	}
	next.EventCount++
	return next, nil
}

// applyFill accumulates an execution into the order, enforcing the overfill
// bound and maintaining the volume-weighted average fill price.
func (o Order) applyFill(ev OrderEvent, e OrderFilled) (Order, error) {
	if !o.Status.isWorking() {
		return o, o.illegal(ev, "")
	}
	if !e.LastQty.IsPositive() {
		return o, o.illegal(ev, "fill quantity must be positive")
	}
	if err := o.requireVenueIdents(ev, e.VenueOrderID, e.AccountID); err != nil {
		return o, err
	}
	filled := o.FilledQty.Decimal().Add(e.LastQty.Decimal())
	total := o.Quantity.Decimal()
	if filled.GreaterThan(total) {
		return o, o.refuse(TransitionOverfill, ev,
			"cumulative "+filled.String()+" exceeds order quantity "+total.String())
	}

	next := o
	notional := o.AvgPx.Mul(o.FilledQty.Decimal()).Add(e.LastPx.Decimal().Mul(e.LastQty.Decimal()))
	next.AvgPx = notional.Div(filled)
	next.FilledQty = QuantityFromDecimal(filled, o.Quantity.Precision)
	next.assignVenue(e.VenueOrderID, e.AccountID)
	if filled.Equal(total) {
		next.Status = StatusFilled
	} else {
		next.Status = StatusPartiallyFilled
		next.PriorStatus = StatusPartiallyFilled
	}
	return next, nil
}

// requireVenueIdents rejects venue responses that arrive without the
// identifiers the venue is obliged to assign. Acceptance, rejection and
// executions stage venue_order_id and account_id onto the order; folding
// them in empty would leave an accepted order unaddressable at the venue.
func (o Order) requireVenueIdents(ev OrderEvent, venueOrderID VenueOrderID, accountID AccountID) *TransitionError {
	if venueOrderID == "" {
		return o.illegal(ev, "venue_order_id must not be empty")
	}
	if accountID == "" {
		return o.illegal(ev, "account_id must not be empty")
	}
	return nil
}

// assignVenue adopts venue identifiers when the event carries them; venues
// may omit them on unsolicited notifications.
func (o *Order) assignVenue(venueOrderID VenueOrderID, accountID AccountID) {
	if venueOrderID != "" {
		o.VenueOrderID = venueOrderID
	}
	if accountID != "" {
		o.AccountID = accountID
	}
}

func (o Order) illegal(ev OrderEvent, detail string) *TransitionError {
	return o.refuse(TransitionIllegal, ev, detail)
}

func (o Order) refuse(code TransitionErrorCode, ev OrderEvent, detail string) *TransitionError {
	return &TransitionError{
		Code:          code,
		ClientOrderID: o.ClientOrderID,
		From:          o.Status,
		Event:         ev.EventType(),
		Detail:        detail,
	}
}

// isWorking reports whether the order is live at the venue and can still
// receive venue notifications.
func (s OrderStatus) isWorking() bool {
	switch s {
	case StatusAccepted, StatusTriggered, StatusPendingUpdate, StatusPendingCancel, StatusPartiallyFilled:
		return true
	}
	return false
}
