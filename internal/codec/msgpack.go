package codec

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/AwesomeTrading/ordercore/internal/domain"
)

// EncodeMsgpack renders the event as a msgpack map keyed by the same field
// names as the JSON form, with the variant tag under a leading "type" key.
// The payload struct encodes to a map; the tag pair is spliced in by
// rewriting the map header.
func EncodeMsgpack(ev domain.OrderEvent) ([]byte, error) {
	var body bytes.Buffer
	enc := msgpack.NewEncoder(&body)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(ev); err != nil {
		return nil, &Error{Kind: Malformed, Err: err}
	}
	n, headerLen, err := readMapHeader(body.Bytes())
	if err != nil {
		return nil, &Error{Kind: Malformed, Err: err}
	}

	var buf bytes.Buffer
	buf.Grow(body.Len() + len(ev.EventType()) + 10)
	writeMapHeader(&buf, n+1)
	writeStr(&buf, "type")
	writeStr(&buf, ev.EventType())
	buf.Write(body.Bytes()[headerLen:])
	return buf.Bytes(), nil
}

// DecodeMsgpack parses bytes produced by EncodeMsgpack back into the concrete
// event variant named by the "type" key. Unknown keys are skipped.
func DecodeMsgpack(data []byte) (domain.OrderEvent, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := unmarshalMsgpack(data, &head); err != nil {
		return nil, &Error{Kind: Malformed, Err: err}
	}
	if head.Type == "" {
		return nil, &Error{Kind: Malformed, Field: "type", Err: errMissingType}
	}
	return decodeVariant(head.Type, func(v any) error {
		if err := unmarshalMsgpack(data, v); err != nil {
			return &Error{Kind: Malformed, Err: err}
		}
		return nil
	})
}

func unmarshalMsgpack(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}

// Msgpack map headers: fixmap for up to 15 pairs, map16 and map32 beyond.

func readMapHeader(data []byte) (n int, headerLen int, err error) {
	if len(data) == 0 {
		return 0, 0, errors.New("empty msgpack body")
	}
	switch b := data[0]; {
	case b >= 0x80 && b <= 0x8f:
		return int(b & 0x0f), 1, nil
	case b == 0xde:
		if len(data) < 3 {
			return 0, 0, errors.New("truncated map16 header")
		}
		return int(binary.BigEndian.Uint16(data[1:3])), 3, nil
	case b == 0xdf:
		if len(data) < 5 {
			return 0, 0, errors.New("truncated map32 header")
		}
		return int(binary.BigEndian.Uint32(data[1:5])), 5, nil
	default:
		return 0, 0, errors.New("msgpack body is not a map")
	}
}

func writeMapHeader(buf *bytes.Buffer, n int) {
	switch {
	case n < 16:
		buf.WriteByte(0x80 | byte(n))
	case n < 1<<16:
		buf.WriteByte(0xde)
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], uint16(n))
		buf.Write(b[:])
	default:
		buf.WriteByte(0xdf)
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(n))
		buf.Write(b[:])
	}
}

// writeStr emits a msgpack string; variant tags and field names always fit
// the fixstr and str8 forms.
func writeStr(buf *bytes.Buffer, s string) {
	if len(s) < 32 {
		buf.WriteByte(0xa0 | byte(len(s)))
	} else {
		buf.WriteByte(0xd9)
		buf.WriteByte(byte(len(s)))
	}
	buf.WriteString(s)
}
