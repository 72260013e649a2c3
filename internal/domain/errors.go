package domain

import (
	"errors"
	"fmt"
)

// TransitionErrorCode classifies why the state machine refused an event.
type TransitionErrorCode string

const (
	// TransitionIllegal means the event variant is never legal in the
	// order's current status.
	TransitionIllegal TransitionErrorCode = "ILLEGAL_TRANSITION"
	// TransitionOverfill means the fill would push cumulative quantity past
	// the initialized quantity.
	TransitionOverfill TransitionErrorCode = "OVERFILL"
	// TransitionOutOfOrder means the event's timestamps violate the fold
	// ordering and the event is not a reconciliation event.
	TransitionOutOfOrder TransitionErrorCode = "OUT_OF_ORDER"
	// TransitionTerminal means a live event arrived for an order already in
	// a terminal status.
	TransitionTerminal TransitionErrorCode = "TERMINAL_STATE_VIOLATION"
)

// TransitionError reports a refused event application. It is always returned
// as a value and never panics; the caller decides whether to reject the
// upstream action, log and ignore, or alert.
type TransitionError struct {
	Code          TransitionErrorCode
	ClientOrderID ClientOrderID
	From          OrderStatus
	Event         string
	Detail        string
}

func (e *TransitionError) Error() string {
	msg := fmt.Sprintf("%s: cannot apply %s to order %s in status %s",
		e.Code, e.Event, e.ClientOrderID, e.From)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// IsTransitionCode reports whether err is a TransitionError with the code.
func IsTransitionCode(err error, code TransitionErrorCode) bool {
	var te *TransitionError
	return errors.As(err, &te) && te.Code == code
}
