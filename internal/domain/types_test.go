package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceFromString(t *testing.T) {
	p, err := PriceFromString("1.1000")
	require.NoError(t, err)
	assert.Equal(t, int64(11000), p.Raw)
	assert.Equal(t, uint8(4), p.Precision)
	assert.Equal(t, "1.1000", p.String())
}

func TestPriceFromStringNoDecimals(t *testing.T) {
	p, err := PriceFromString("100")
	require.NoError(t, err)
	assert.Equal(t, int64(100), p.Raw)
	assert.Equal(t, uint8(0), p.Precision)
	assert.Equal(t, "100", p.String())
}

func TestPriceFromStringInvalid(t *testing.T) {
	_, err := PriceFromString("not-a-price")
	assert.Error(t, err)
}

func TestPriceFromStringPrecisionTooHigh(t *testing.T) {
	_, err := PriceFromString("0.0000000001")
	assert.Error(t, err)
}

func TestPriceComparable(t *testing.T) {
	a, err := PriceFromString("1.1000")
	require.NoError(t, err)
	b := NewPrice(1.1, 4)
	assert.Equal(t, a, b)
}

func TestPriceJSONRoundTrip(t *testing.T) {
	p := NewPrice(100.50, 2)
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `"100.50"`, string(raw))

	var back Price
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, p, back)
}

func TestQuantityFromString(t *testing.T) {
	q, err := QuantityFromString("100000")
	require.NoError(t, err)
	assert.True(t, q.IsPositive())
	assert.Equal(t, "100000", q.String())
}

func TestQuantityZero(t *testing.T) {
	q := NewQuantity(0, 0)
	assert.True(t, q.IsZero())
	assert.False(t, q.IsPositive())
}

func TestCurrencyFromCode(t *testing.T) {
	usd, err := CurrencyFromCode("USD")
	require.NoError(t, err)
	assert.Equal(t, "USD", usd.Code)
	assert.Equal(t, uint8(2), usd.Precision)

	jpy, err := CurrencyFromCode("JPY")
	require.NoError(t, err)
	assert.Equal(t, uint8(0), jpy.Precision)
}

func TestCurrencyFromCodeUnknown(t *testing.T) {
	_, err := CurrencyFromCode("XXX")
	assert.Error(t, err)
}

func TestMoneyString(t *testing.T) {
	usd, err := CurrencyFromCode("USD")
	require.NoError(t, err)
	m := NewMoney(2, usd)
	assert.Equal(t, "2.00 USD", m.String())
}

func TestMoneyFromString(t *testing.T) {
	m, err := MoneyFromString("2.00 USD")
	require.NoError(t, err)
	assert.Equal(t, int64(200), m.Raw)
	assert.Equal(t, "USD", m.Currency.Code)
}

func TestMoneyFromStringMalformed(t *testing.T) {
	_, err := MoneyFromString("2.00USD")
	assert.Error(t, err)

	_, err = MoneyFromString("2.00 XXX")
	assert.Error(t, err)
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	m, err := MoneyFromString("12.34 USD")
	require.NoError(t, err)
	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `"12.34 USD"`, string(raw))

	var back Money
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, m, back)
}

func TestUnixNanosRoundTrip(t *testing.T) {
	n := UnixNanos(1_700_000_000_000_000_000)
	assert.Equal(t, n, UnixNanosFromTime(n.Time()))
}
