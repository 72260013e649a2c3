package domain

// OrderSide is the direction of an order.
type OrderSide string

const (
	Buy  OrderSide = "BUY"
	Sell OrderSide = "SELL"
)

// OrderType is the execution instruction of an order.
type OrderType string

const (
	Market             OrderType = "MARKET"
	Limit              OrderType = "LIMIT"
	StopMarket         OrderType = "STOP_MARKET"
	StopLimit          OrderType = "STOP_LIMIT"
	TrailingStopMarket OrderType = "TRAILING_STOP_MARKET"
	TrailingStopLimit  OrderType = "TRAILING_STOP_LIMIT"
)

// TimeInForce controls how long an order stays working at the venue.
type TimeInForce string

const (
	GTC TimeInForce = "GTC"
	GTD TimeInForce = "GTD"
	Day TimeInForce = "DAY"
	IOC TimeInForce = "IOC"
	FOK TimeInForce = "FOK"
)

// TriggerType selects the price series a conditional order triggers on.
type TriggerType string

const (
	TriggerDefault   TriggerType = "DEFAULT"
	TriggerLastTrade TriggerType = "LAST_TRADE"
	TriggerBidAsk    TriggerType = "BID_ASK"
	TriggerMarkPrice TriggerType = "MARK_PRICE"
)

// ContingencyType links an order to sibling orders in a list.
type ContingencyType string

const (
	OCO ContingencyType = "OCO"
	OTO ContingencyType = "OTO"
	OUO ContingencyType = "OUO"
)

// LiquiditySide records whether a fill made or took liquidity.
type LiquiditySide string

const (
	Maker LiquiditySide = "MAKER"
	Taker LiquiditySide = "TAKER"
)

// OrderStatus is the lifecycle state of an order, derived by folding events.
type OrderStatus string

const (
	StatusInitialized     OrderStatus = "INITIALIZED"
	StatusDenied          OrderStatus = "DENIED"
	StatusSubmitted       OrderStatus = "SUBMITTED"
	StatusAccepted        OrderStatus = "ACCEPTED"
	StatusRejected        OrderStatus = "REJECTED"
	StatusCanceled        OrderStatus = "CANCELED"
	StatusExpired         OrderStatus = "EXPIRED"
	StatusTriggered       OrderStatus = "TRIGGERED"
	StatusPendingUpdate   OrderStatus = "PENDING_UPDATE"
	StatusPendingCancel   OrderStatus = "PENDING_CANCEL"
	StatusPartiallyFilled OrderStatus = "PARTIALLY_FILLED"
	StatusFilled          OrderStatus = "FILLED"
)

// IsTerminal reports whether no further live events are accepted in this status.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case StatusDenied, StatusRejected, StatusCanceled, StatusExpired, StatusFilled:
		return true
	}
	return false
}

// isPending reports whether the status awaits a venue response to an
// in-flight modify or cancel request.
func (s OrderStatus) isPending() bool {
	return s == StatusPendingUpdate || s == StatusPendingCancel
}
