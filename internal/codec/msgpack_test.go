package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/AwesomeTrading/ordercore/internal/domain"
)

func TestMsgpackRoundTripAllVariants(t *testing.T) {
	for _, ev := range allEvents() {
		t.Run(ev.EventType(), func(t *testing.T) {
			raw, err := EncodeMsgpack(ev)
			require.NoError(t, err)
			back, err := DecodeMsgpack(raw)
			require.NoError(t, err)
			assert.Equal(t, ev, back)
		})
	}
}

func TestEncodeMsgpackLeadsWithTypeKey(t *testing.T) {
	raw, err := EncodeMsgpack(deniedEvent())
	require.NoError(t, err)

	dec := msgpack.NewDecoder(bytes.NewReader(raw))
	n, err := dec.DecodeMapLen()
	require.NoError(t, err)
	require.Greater(t, n, 1)

	key, err := dec.DecodeString()
	require.NoError(t, err)
	assert.Equal(t, "type", key)

	tag, err := dec.DecodeString()
	require.NoError(t, err)
	assert.Equal(t, domain.TypeOrderDenied, tag)
}

func TestEncodeMsgpackValueTypesAreCanonicalStrings(t *testing.T) {
	raw, err := EncodeMsgpack(filledEvent())
	require.NoError(t, err)

	var fields map[string]any
	dec := msgpack.NewDecoder(bytes.NewReader(raw))
	require.NoError(t, dec.Decode(&fields))

	assert.Equal(t, "100000", fields["last_qty"])
	assert.Equal(t, "1.1000", fields["last_px"])
	assert.Equal(t, "USD", fields["currency"])
	assert.Equal(t, "2.00 USD", fields["commission"])
}

func TestDecodeMsgpackUnknownVariant(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	require.NoError(t, enc.Encode(map[string]any{"type": "OrderTeleported"}))

	_, err := DecodeMsgpack(buf.Bytes())
	assert.True(t, IsKind(err, UnknownVariant))
}

func TestDecodeMsgpackMissingType(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	require.NoError(t, enc.Encode(map[string]any{"client_order_id": "O-1"}))

	_, err := DecodeMsgpack(buf.Bytes())
	assert.True(t, IsKind(err, Malformed))
}

func TestDecodeMsgpackTruncated(t *testing.T) {
	raw, err := EncodeMsgpack(deniedEvent())
	require.NoError(t, err)

	_, err = DecodeMsgpack(raw[:len(raw)/2])
	assert.True(t, IsKind(err, Malformed))
}

func TestDecodeMsgpackNotAMap(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	require.NoError(t, enc.Encode([]string{"not", "a", "map"}))

	_, err := DecodeMsgpack(buf.Bytes())
	assert.True(t, IsKind(err, Malformed))
}

func TestMsgpackSmallerThanJSON(t *testing.T) {
	ev := filledEvent()
	mp, err := EncodeMsgpack(ev)
	require.NoError(t, err)
	js, err := EncodeJSON(ev)
	require.NoError(t, err)
	assert.Less(t, len(mp), len(js))
}
