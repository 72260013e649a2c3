package domain

// Wire discriminators for every order event variant. The tag set is closed:
// decoders reject tags outside this list.
const (
	TypeOrderInitialized    = "OrderInitialized"
	TypeOrderDenied         = "OrderDenied"
	TypeOrderSubmitted      = "OrderSubmitted"
	TypeOrderAccepted       = "OrderAccepted"
	TypeOrderRejected       = "OrderRejected"
	TypeOrderCanceled       = "OrderCanceled"
	TypeOrderExpired        = "OrderExpired"
	TypeOrderTriggered      = "OrderTriggered"
	TypeOrderPendingUpdate  = "OrderPendingUpdate"
	TypeOrderPendingCancel  = "OrderPendingCancel"
	TypeOrderModifyRejected = "OrderModifyRejected"
	TypeOrderCancelRejected = "OrderCancelRejected"
	TypeOrderUpdated        = "OrderUpdated"
	TypeOrderPartiallyFill  = "OrderPartiallyFilled"
	TypeOrderFilled         = "OrderFilled"
)

// OrderEvent is the closed union of order lifecycle event payloads. Events
// are immutable value objects: every consumer (state machine, codecs, bridge)
// switches exhaustively over the concrete types below.
type OrderEvent interface {
	// EventType returns the wire discriminator of the variant.
	EventType() string
	GetEventID() UUID4
	GetClientOrderID() ClientOrderID
	GetTsEvent() UnixNanos
	GetTsInit() UnixNanos
	// IsReconciliation reports whether the event was synthesized during state
	// reconciliation rather than produced live.
	IsReconciliation() bool
}

// EventMeta carries the fields every order event ends with: the
// process-unique event identifier, the instant the fact occurred upstream
// (ts_event) and the instant this process observed it (ts_init).
type EventMeta struct {
	EventID UUID4     `json:"event_id"`
	TsEvent UnixNanos `json:"ts_event"`
	TsInit  UnixNanos `json:"ts_init"`
}

func (m EventMeta) GetEventID() UUID4     { return m.EventID }
func (m EventMeta) GetTsEvent() UnixNanos { return m.TsEvent }
func (m EventMeta) GetTsInit() UnixNanos  { return m.TsInit }

// IsReconciliation defaults to false; variants that carry the flag shadow it.
func (m EventMeta) IsReconciliation() bool { return false }

// NewEventMeta stamps a fresh event identifier and the two timestamps.
func NewEventMeta(tsEvent, tsInit UnixNanos) EventMeta {
	return EventMeta{EventID: NewUUID4(), TsEvent: tsEvent, TsInit: tsInit}
}

// OrderInitialized records the creation of an order before it is sent
// anywhere. It carries the full parameter set the order was built with.
type OrderInitialized struct {
	TraderID           TraderID        `json:"trader_id"`
	StrategyID         StrategyID      `json:"strategy_id"`
	InstrumentID       InstrumentID    `json:"instrument_id"`
	ClientOrderID      ClientOrderID   `json:"client_order_id"`
	OrderSide          OrderSide       `json:"order_side"`
	OrderType          OrderType       `json:"order_type"`
	Quantity           Quantity        `json:"quantity"`
	Price              *Price          `json:"price,omitempty"`
	TriggerPrice       *Price          `json:"trigger_price,omitempty"`
	TriggerType        TriggerType     `json:"trigger_type,omitempty"`
	TimeInForce        TimeInForce     `json:"time_in_force"`
	ExpireTime         UnixNanos       `json:"expire_time,omitempty"`
	PostOnly           bool            `json:"post_only"`
	ReduceOnly         bool            `json:"reduce_only"`
	DisplayQty         *Quantity       `json:"display_qty,omitempty"`
	LimitOffset        *Price          `json:"limit_offset,omitempty"`
	TrailingOffset     *Price          `json:"trailing_offset,omitempty"`
	TrailingOffsetType TriggerType     `json:"trailing_offset_type,omitempty"`
	EmulationTrigger   TriggerType     `json:"emulation_trigger,omitempty"`
	ContingencyType    ContingencyType `json:"contingency_type,omitempty"`
	OrderListID        OrderListID     `json:"order_list_id,omitempty"`
	LinkedOrderIDs     []ClientOrderID `json:"linked_order_ids,omitempty"`
	ParentOrderID      ClientOrderID   `json:"parent_order_id,omitempty"`
	Tags               string          `json:"tags,omitempty"`
	EventMeta
	Reconciliation bool `json:"reconciliation"`
}

func (e OrderInitialized) EventType() string               { return TypeOrderInitialized }
func (e OrderInitialized) GetClientOrderID() ClientOrderID { return e.ClientOrderID }
func (e OrderInitialized) IsReconciliation() bool          { return e.Reconciliation }

// OrderDenied records an order rejected internally before submission.
type OrderDenied struct {
	TraderID      TraderID      `json:"trader_id"`
	StrategyID    StrategyID    `json:"strategy_id"`
	InstrumentID  InstrumentID  `json:"instrument_id"`
	ClientOrderID ClientOrderID `json:"client_order_id"`
	Reason        string        `json:"reason"`
	EventMeta
}

func (e OrderDenied) EventType() string               { return TypeOrderDenied }
func (e OrderDenied) GetClientOrderID() ClientOrderID { return e.ClientOrderID }

// OrderSubmitted records the order being sent to a venue or broker.
type OrderSubmitted struct {
	TraderID      TraderID      `json:"trader_id"`
	StrategyID    StrategyID    `json:"strategy_id"`
	InstrumentID  InstrumentID  `json:"instrument_id"`
	ClientOrderID ClientOrderID `json:"client_order_id"`
	AccountID     AccountID     `json:"account_id"`
	EventMeta
}

func (e OrderSubmitted) EventType() string               { return TypeOrderSubmitted }
func (e OrderSubmitted) GetClientOrderID() ClientOrderID { return e.ClientOrderID }

// OrderAccepted records the venue acknowledging the order as working.
type OrderAccepted struct {
	TraderID      TraderID      `json:"trader_id"`
	StrategyID    StrategyID    `json:"strategy_id"`
	InstrumentID  InstrumentID  `json:"instrument_id"`
	ClientOrderID ClientOrderID `json:"client_order_id"`
	VenueOrderID  VenueOrderID  `json:"venue_order_id"`
	AccountID     AccountID     `json:"account_id"`
	EventMeta
	Reconciliation bool `json:"reconciliation"`
}

func (e OrderAccepted) EventType() string               { return TypeOrderAccepted }
func (e OrderAccepted) GetClientOrderID() ClientOrderID { return e.ClientOrderID }
func (e OrderAccepted) IsReconciliation() bool          { return e.Reconciliation }

// OrderRejected records the venue refusing the order.
type OrderRejected struct {
	TraderID      TraderID      `json:"trader_id"`
	StrategyID    StrategyID    `json:"strategy_id"`
	InstrumentID  InstrumentID  `json:"instrument_id"`
	ClientOrderID ClientOrderID `json:"client_order_id"`
	VenueOrderID  VenueOrderID  `json:"venue_order_id"`
	AccountID     AccountID     `json:"account_id"`
	Reason        string        `json:"reason"`
	EventMeta
	Reconciliation bool `json:"reconciliation"`
}

func (e OrderRejected) EventType() string               { return TypeOrderRejected }
func (e OrderRejected) GetClientOrderID() ClientOrderID { return e.ClientOrderID }
func (e OrderRejected) IsReconciliation() bool          { return e.Reconciliation }

// OrderCanceled records the order being removed from the venue book.
// The venue may omit its own identifiers on unsolicited notifications.
type OrderCanceled struct {
	TraderID      TraderID      `json:"trader_id"`
	StrategyID    StrategyID    `json:"strategy_id"`
	InstrumentID  InstrumentID  `json:"instrument_id"`
	ClientOrderID ClientOrderID `json:"client_order_id"`
	VenueOrderID  VenueOrderID  `json:"venue_order_id,omitempty"`
	AccountID     AccountID     `json:"account_id,omitempty"`
	EventMeta
	Reconciliation bool `json:"reconciliation"`
}

func (e OrderCanceled) EventType() string               { return TypeOrderCanceled }
func (e OrderCanceled) GetClientOrderID() ClientOrderID { return e.ClientOrderID }
func (e OrderCanceled) IsReconciliation() bool          { return e.Reconciliation }

// OrderExpired records the order lapsing by its time in force.
type OrderExpired struct {
	TraderID      TraderID      `json:"trader_id"`
	StrategyID    StrategyID    `json:"strategy_id"`
	InstrumentID  InstrumentID  `json:"instrument_id"`
	ClientOrderID ClientOrderID `json:"client_order_id"`
	VenueOrderID  VenueOrderID  `json:"venue_order_id,omitempty"`
	AccountID     AccountID     `json:"account_id,omitempty"`
	EventMeta
	Reconciliation bool `json:"reconciliation"`
}

func (e OrderExpired) EventType() string               { return TypeOrderExpired }
func (e OrderExpired) GetClientOrderID() ClientOrderID { return e.ClientOrderID }
func (e OrderExpired) IsReconciliation() bool          { return e.Reconciliation }

// OrderTriggered records a conditional order's trigger condition firing.
type OrderTriggered struct {
	TraderID      TraderID      `json:"trader_id"`
	StrategyID    StrategyID    `json:"strategy_id"`
	InstrumentID  InstrumentID  `json:"instrument_id"`
	ClientOrderID ClientOrderID `json:"client_order_id"`
	VenueOrderID  VenueOrderID  `json:"venue_order_id,omitempty"`
	AccountID     AccountID     `json:"account_id,omitempty"`
	EventMeta
	Reconciliation bool `json:"reconciliation"`
}

func (e OrderTriggered) EventType() string               { return TypeOrderTriggered }
func (e OrderTriggered) GetClientOrderID() ClientOrderID { return e.ClientOrderID }
func (e OrderTriggered) IsReconciliation() bool          { return e.Reconciliation }

// OrderPendingUpdate records a modify request in flight to the venue.
type OrderPendingUpdate struct {
	TraderID      TraderID      `json:"trader_id"`
	StrategyID    StrategyID    `json:"strategy_id"`
	InstrumentID  InstrumentID  `json:"instrument_id"`
	ClientOrderID ClientOrderID `json:"client_order_id"`
	VenueOrderID  VenueOrderID  `json:"venue_order_id,omitempty"`
	AccountID     AccountID     `json:"account_id"`
	EventMeta
	Reconciliation bool `json:"reconciliation"`
}

func (e OrderPendingUpdate) EventType() string               { return TypeOrderPendingUpdate }
func (e OrderPendingUpdate) GetClientOrderID() ClientOrderID { return e.ClientOrderID }
func (e OrderPendingUpdate) IsReconciliation() bool          { return e.Reconciliation }

// OrderPendingCancel records a cancel request in flight to the venue.
type OrderPendingCancel struct {
	TraderID      TraderID      `json:"trader_id"`
	StrategyID    StrategyID    `json:"strategy_id"`
	InstrumentID  InstrumentID  `json:"instrument_id"`
	ClientOrderID ClientOrderID `json:"client_order_id"`
	VenueOrderID  VenueOrderID  `json:"venue_order_id,omitempty"`
	AccountID     AccountID     `json:"account_id"`
	EventMeta
	Reconciliation bool `json:"reconciliation"`
}

func (e OrderPendingCancel) EventType() string               { return TypeOrderPendingCancel }
func (e OrderPendingCancel) GetClientOrderID() ClientOrderID { return e.ClientOrderID }
func (e OrderPendingCancel) IsReconciliation() bool          { return e.Reconciliation }

// OrderModifyRejected records the venue refusing an in-flight modification.
type OrderModifyRejected struct {
	TraderID      TraderID      `json:"trader_id"`
	StrategyID    StrategyID    `json:"strategy_id"`
	InstrumentID  InstrumentID  `json:"instrument_id"`
	ClientOrderID ClientOrderID `json:"client_order_id"`
	VenueOrderID  VenueOrderID  `json:"venue_order_id,omitempty"`
	AccountID     AccountID     `json:"account_id,omitempty"`
	Reason        string        `json:"reason"`
	EventMeta
	Reconciliation bool `json:"reconciliation"`
}

func (e OrderModifyRejected) EventType() string               { return TypeOrderModifyRejected }
func (e OrderModifyRejected) GetClientOrderID() ClientOrderID { return e.ClientOrderID }
func (e OrderModifyRejected) IsReconciliation() bool          { return e.Reconciliation }

// OrderCancelRejected records the venue refusing an in-flight cancel.
type OrderCancelRejected struct {
	TraderID      TraderID      `json:"trader_id"`
	StrategyID    StrategyID    `json:"strategy_id"`
	InstrumentID  InstrumentID  `json:"instrument_id"`
	ClientOrderID ClientOrderID `json:"client_order_id"`
	VenueOrderID  VenueOrderID  `json:"venue_order_id,omitempty"`
	AccountID     AccountID     `json:"account_id,omitempty"`
	Reason        string        `json:"reason"`
	EventMeta
	Reconciliation bool `json:"reconciliation"`
}

func (e OrderCancelRejected) EventType() string               { return TypeOrderCancelRejected }
func (e OrderCancelRejected) GetClientOrderID() ClientOrderID { return e.ClientOrderID }
func (e OrderCancelRejected) IsReconciliation() bool          { return e.Reconciliation }

// OrderUpdated records an amendment of quantity, price or trigger price.
type OrderUpdated struct {
	TraderID      TraderID      `json:"trader_id"`
	StrategyID    StrategyID    `json:"strategy_id"`
	InstrumentID  InstrumentID  `json:"instrument_id"`
	ClientOrderID ClientOrderID `json:"client_order_id"`
	VenueOrderID  VenueOrderID  `json:"venue_order_id,omitempty"`
	AccountID     AccountID     `json:"account_id,omitempty"`
	Quantity      Quantity      `json:"quantity"`
	Price         *Price        `json:"price,omitempty"`
	TriggerPrice  *Price        `json:"trigger_price,omitempty"`
	EventMeta
	Reconciliation bool `json:"reconciliation"`
}

func (e OrderUpdated) EventType() string               { return TypeOrderUpdated }
func (e OrderUpdated) GetClientOrderID() ClientOrderID { return e.ClientOrderID }
func (e OrderUpdated) IsReconciliation() bool          { return e.Reconciliation }

// OrderFilled records an execution. LastQty must be strictly positive;
// whether the fill is partial or completes the order is decided at the union
// level (OrderPartiallyFilled vs OrderFilled), not by the payload shape.
type OrderFilled struct {
	TraderID      TraderID      `json:"trader_id"`
	StrategyID    StrategyID    `json:"strategy_id"`
	InstrumentID  InstrumentID  `json:"instrument_id"`
	ClientOrderID ClientOrderID `json:"client_order_id"`
	VenueOrderID  VenueOrderID  `json:"venue_order_id"`
	AccountID     AccountID     `json:"account_id"`
	TradeID       TradeID       `json:"trade_id"`
	PositionID    PositionID    `json:"position_id,omitempty"`
	OrderSide     OrderSide     `json:"order_side"`
	OrderType     OrderType     `json:"order_type"`
	LastQty       Quantity      `json:"last_qty"`
	LastPx        Price         `json:"last_px"`
	Currency      Currency      `json:"currency"`
	Commission    Money         `json:"commission"`
	LiquiditySide LiquiditySide `json:"liquidity_side"`
	EventMeta
	Reconciliation bool `json:"reconciliation"`
}

func (e OrderFilled) EventType() string               { return TypeOrderFilled }
func (e OrderFilled) GetClientOrderID() ClientOrderID { return e.ClientOrderID }
func (e OrderFilled) IsReconciliation() bool          { return e.Reconciliation }

// OrderPartiallyFilled shares the fill payload shape; it tags executions the
// producer knows leave the order still working.
type OrderPartiallyFilled struct {
	OrderFilled
}

func (e OrderPartiallyFilled) EventType() string { return TypeOrderPartiallyFill }
