package dto

import "encoding/json"

type ProcessEventResponse struct {
	ClientOrderID string `json:"client_order_id"`
	EventType     string `json:"event_type"`
	Order         Order  `json:"order"`
}

type GetOrderResponse struct {
	Order Order `json:"order"`
}

type GetEventsResponse struct {
	ClientOrderID string            `json:"client_order_id"`
	Events        []json.RawMessage `json:"events"`
}

type ReplayResponse struct {
	ClientOrderID string `json:"client_order_id"`
	EventCount    int    `json:"event_count"`
	Order         Order  `json:"order"`
}

// Order is the wire view of an order's current state. Prices and quantities
// are rendered as canonical fixed-precision strings.
type Order struct {
	TraderID      string `json:"trader_id"`
	StrategyID    string `json:"strategy_id"`
	InstrumentID  string `json:"instrument_id"`
	ClientOrderID string `json:"client_order_id"`
	VenueOrderID  string `json:"venue_order_id,omitempty"`
	AccountID     string `json:"account_id,omitempty"`
	Side          string `json:"side"`
	Type          string `json:"type"`
	TimeInForce   string `json:"time_in_force"`
	Quantity      string `json:"quantity"`
	Price         string `json:"price,omitempty"`
	TriggerPrice  string `json:"trigger_price,omitempty"`
	Status        string `json:"status"`
	FilledQty     string `json:"filled_qty"`
	LeavesQty     string `json:"leaves_qty"`
	AvgPx         string `json:"avg_px"`
	Reason        string `json:"reason,omitempty"`
	LastEventID   string `json:"last_event_id"`
	LastTsEvent   int64  `json:"last_ts_event"`
	TsInit        int64  `json:"ts_init"`
	EventCount    int    `json:"event_count"`
}
