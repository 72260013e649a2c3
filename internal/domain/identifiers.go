package domain

import "github.com/google/uuid"

// Identifier types used across the order lifecycle. All of them are plain
// string types: comparable, hashable as map keys and stable across process
// restarts. The empty string means "not assigned yet" for the identifiers
// that only exist once a venue has acknowledged the order.

type TraderID string

type StrategyID string

type InstrumentID string

// ClientOrderID is the primary key for an order's event stream. It is present
// and immutable across every event of a given order.
type ClientOrderID string

type VenueOrderID string

type AccountID string

type TradeID string

type PositionID string

type OrderListID string

func (id TraderID) String() string     { return string(id) }
func (id StrategyID) String() string   { return string(id) }
func (id InstrumentID) String() string { return string(id) }

func (id ClientOrderID) String() string { return string(id) }
func (id VenueOrderID) String() string  { return string(id) }
func (id AccountID) String() string     { return string(id) }
func (id TradeID) String() string       { return string(id) }
func (id PositionID) String() string    { return string(id) }
func (id OrderListID) String() string   { return string(id) }

// UUID4 is a process-unique event identifier in canonical RFC 4122 string
// form. It doubles as the idempotency key for replayed event streams.
type UUID4 string

// NewUUID4 returns a freshly generated event identifier.
func NewUUID4() UUID4 {
	return UUID4(uuid.NewString())
}

func (u UUID4) String() string { return string(u) }
