// Package main builds the C ABI shared library for hosts that cannot link Go
// directly. Build with:
//
//	go build -buildmode=c-shared -o libordercore.so ./cabi
//
// Calling convention: every pointer returned by this library is owned by the
// caller. Handles from *_new and *_clone must be released with *_drop exactly
// once; strings from accessors with cstr_free; byte buffers from the
// serializers with buffer_free. Using a handle after drop, or dropping it
// twice, is undefined behavior.
package main

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/AwesomeTrading/ordercore/internal/codec"
	"github.com/AwesomeTrading/ordercore/internal/domain"
)

//export order_denied_new
func order_denied_new(
	traderID, strategyID, instrumentID, clientOrderID, reason, eventID *C.char,
	tsEvent, tsInit C.longlong,
) C.uintptr_t {
	ev := domain.OrderDenied{
		TraderID:      domain.TraderID(C.GoString(traderID)),
		StrategyID:    domain.StrategyID(C.GoString(strategyID)),
		InstrumentID:  domain.InstrumentID(C.GoString(instrumentID)),
		ClientOrderID: domain.ClientOrderID(C.GoString(clientOrderID)),
		Reason:        C.GoString(reason),
		EventMeta: domain.EventMeta{
			EventID: domain.UUID4(C.GoString(eventID)),
			TsEvent: domain.UnixNanos(tsEvent),
			TsInit:  domain.UnixNanos(tsInit),
		},
	}
	return C.uintptr_t(cgo.NewHandle(ev))
}

//export order_denied_clone
func order_denied_clone(h C.uintptr_t) C.uintptr_t {
	ev := cgo.Handle(h).Value().(domain.OrderDenied)
	return C.uintptr_t(cgo.NewHandle(ev))
}

//export order_denied_drop
func order_denied_drop(h C.uintptr_t) {
	cgo.Handle(h).Delete()
}

//export order_denied_reason
func order_denied_reason(h C.uintptr_t) *C.char {
	ev := cgo.Handle(h).Value().(domain.OrderDenied)
	return C.CString(ev.Reason)
}

//export order_denied_to_json
func order_denied_to_json(h C.uintptr_t) *C.char {
	ev := cgo.Handle(h).Value().(domain.OrderDenied)
	raw, err := codec.EncodeJSON(ev)
	if err != nil {
		return nil
	}
	return C.CString(string(raw))
}

//export order_denied_to_msgpack
func order_denied_to_msgpack(h C.uintptr_t, outLen *C.size_t) unsafe.Pointer {
	ev := cgo.Handle(h).Value().(domain.OrderDenied)
	raw, err := codec.EncodeMsgpack(ev)
	if err != nil {
		*outLen = 0
		return nil
	}
	*outLen = C.size_t(len(raw))
	return C.CBytes(raw)
}

//export cstr_free
func cstr_free(s *C.char) {
	C.free(unsafe.Pointer(s))
}

//export buffer_free
func buffer_free(p unsafe.Pointer) {
	C.free(p)
}

func main() {}
