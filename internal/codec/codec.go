// Package codec maps order events to and from their external wire
// representations: a self-describing JSON form discriminated by a leading
// "type" field, and a compact msgpack form keyed by the same field names.
// Both encodings are total for well-formed events and round-trip exact:
// Decode(Encode(e)) == e for every constructible event.
package codec

import (
	"errors"
	"fmt"

	"github.com/AwesomeTrading/ordercore/internal/domain"
)

// ErrorKind classifies a codec failure.
type ErrorKind string

const (
	// Malformed means the input is truncated, corrupt or not a valid
	// document in the expected format.
	Malformed ErrorKind = "MALFORMED"
	// UnknownVariant means the type tag is outside the closed event catalog.
	// Unknown optional fields are ignored; unknown variants are not.
	UnknownVariant ErrorKind = "UNKNOWN_VARIANT"
	// FieldTypeMismatch means a field held a value of the wrong type.
	FieldTypeMismatch ErrorKind = "FIELD_TYPE_MISMATCH"
)

// Error reports a decode failure. Decoding never panics and never partially
// mutates state: on error the caller receives no event at all.
type Error struct {
	Kind  ErrorKind
	Field string
	Err   error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Field != "" {
		msg += fmt.Sprintf(" (field %q)", e.Field)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is a codec Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == kind
}

// decodeVariant dispatches a type tag to the concrete payload type and
// decodes into it with the supplied unmarshal function. The catalog is
// closed: tags outside it are rejected.
func decodeVariant(tag string, unmarshal func(any) error) (domain.OrderEvent, error) {
	switch tag {
	case domain.TypeOrderInitialized:
		return decodeAs[domain.OrderInitialized](unmarshal)
	case domain.TypeOrderDenied:
		return decodeAs[domain.OrderDenied](unmarshal)
	case domain.TypeOrderSubmitted:
		return decodeAs[domain.OrderSubmitted](unmarshal)
	case domain.TypeOrderAccepted:
		return decodeAs[domain.OrderAccepted](unmarshal)
	case domain.TypeOrderRejected:
		return decodeAs[domain.OrderRejected](unmarshal)
	case domain.TypeOrderCanceled:
		return decodeAs[domain.OrderCanceled](unmarshal)
	case domain.TypeOrderExpired:
		return decodeAs[domain.OrderExpired](unmarshal)
	case domain.TypeOrderTriggered:
		return decodeAs[domain.OrderTriggered](unmarshal)
	case domain.TypeOrderPendingUpdate:
		return decodeAs[domain.OrderPendingUpdate](unmarshal)
	case domain.TypeOrderPendingCancel:
		return decodeAs[domain.OrderPendingCancel](unmarshal)
	case domain.TypeOrderModifyRejected:
		return decodeAs[domain.OrderModifyRejected](unmarshal)
	case domain.TypeOrderCancelRejected:
		return decodeAs[domain.OrderCancelRejected](unmarshal)
	case domain.TypeOrderUpdated:
		return decodeAs[domain.OrderUpdated](unmarshal)
	case domain.TypeOrderPartiallyFill:
		return decodeAs[domain.OrderPartiallyFilled](unmarshal)
	case domain.TypeOrderFilled:
		return decodeAs[domain.OrderFilled](unmarshal)
	default:
		return nil, &Error{Kind: UnknownVariant, Field: tag}
	}
}

func decodeAs[E domain.OrderEvent](unmarshal func(any) error) (domain.OrderEvent, error) {
	var e E
	if err := unmarshal(&e); err != nil {
		return nil, err
	}
	return e, nil
}
