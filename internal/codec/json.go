package codec

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/AwesomeTrading/ordercore/internal/domain"
)

// EncodeJSON renders the event as a self-describing JSON object. The variant
// tag leads the object as a "type" field, followed by the payload fields in
// their declared order; absent optional fields are omitted.
func EncodeJSON(ev domain.OrderEvent) ([]byte, error) {
	body, err := json.Marshal(ev)
	if err != nil {
		return nil, &Error{Kind: Malformed, Err: err}
	}
	var buf bytes.Buffer
	buf.Grow(len(body) + len(ev.EventType()) + 12)
	buf.WriteString(`{"type":"`)
	buf.WriteString(ev.EventType())
	buf.WriteByte('"')
	if len(body) > 2 {
		buf.WriteByte(',')
		buf.Write(body[1:])
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}

// DecodeJSON parses a JSON document produced by EncodeJSON back into the
// concrete event variant named by its "type" field.
func DecodeJSON(data []byte) (domain.OrderEvent, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, classifyJSON(err)
	}
	if head.Type == "" {
		return nil, &Error{Kind: Malformed, Field: "type", Err: errMissingType}
	}
	return decodeVariant(head.Type, func(v any) error {
		if err := json.Unmarshal(data, v); err != nil {
			return classifyJSON(err)
		}
		return nil
	})
}

var errMissingType = errors.New("missing type discriminator")

func classifyJSON(err error) error {
	if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
		return &Error{Kind: FieldTypeMismatch, Field: typeErr.Field, Err: err}
	}
	return &Error{Kind: Malformed, Err: err}
}
