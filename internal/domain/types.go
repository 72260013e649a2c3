package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vmihailenco/msgpack/v5"
)

// UnixNanos is a monotonic nanosecond-resolution instant since the Unix epoch.
type UnixNanos int64

// UnixNanosFromTime converts a time.Time into UnixNanos.
func UnixNanosFromTime(t time.Time) UnixNanos { return UnixNanos(t.UnixNano()) }

// Time converts the instant back into a time.Time in UTC.
func (n UnixNanos) Time() time.Time { return time.Unix(0, int64(n)).UTC() }

// maxFixedPrecision bounds the decimal places representable in the fixed-point
// raw int64 without overflow for realistic trading magnitudes.
const maxFixedPrecision = 9

// Price is a fixed-point decimal price: Raw scaled by 10^Precision.
// It is comparable with == and hashable as a map key; the canonical string
// form always renders exactly Precision decimal places (e.g. "1.1000").
type Price struct {
	Raw       int64
	Precision uint8
}

// NewPrice builds a price from a float at the given precision.
func NewPrice(value float64, precision uint8) Price {
	raw := decimal.NewFromFloat(value).Shift(int32(precision)).Round(0).IntPart()
	return Price{Raw: raw, Precision: precision}
}

// PriceFromString parses the canonical string form; the number of decimal
// places becomes the precision.
func PriceFromString(s string) (Price, error) {
	raw, prec, err := parseFixed(s)
	if err != nil {
		return Price{}, fmt.Errorf("parse price %q: %w", s, err)
	}
	return Price{Raw: raw, Precision: prec}, nil
}

// Decimal returns the arbitrary-precision view used for arithmetic.
func (p Price) Decimal() decimal.Decimal {
	return decimal.New(p.Raw, -int32(p.Precision))
}

func (p Price) IsZero() bool { return p.Raw == 0 }

func (p Price) String() string {
	return p.Decimal().StringFixed(int32(p.Precision))
}

func (p Price) MarshalJSON() ([]byte, error) { return json.Marshal(p.String()) }

func (p *Price) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := PriceFromString(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p Price) EncodeMsgpack(enc *msgpack.Encoder) error { return enc.EncodeString(p.String()) }

func (p *Price) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	parsed, err := PriceFromString(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Quantity is a fixed-point decimal size with the same representation rules
// as Price. Raw is never negative for a well-formed quantity.
type Quantity struct {
	Raw       int64
	Precision uint8
}

// NewQuantity builds a quantity from a float at the given precision.
func NewQuantity(value float64, precision uint8) Quantity {
	raw := decimal.NewFromFloat(value).Shift(int32(precision)).Round(0).IntPart()
	return Quantity{Raw: raw, Precision: precision}
}

// QuantityFromString parses the canonical string form.
func QuantityFromString(s string) (Quantity, error) {
	raw, prec, err := parseFixed(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("parse quantity %q: %w", s, err)
	}
	return Quantity{Raw: raw, Precision: prec}, nil
}

// QuantityFromDecimal converts an arbitrary-precision value at the given
// precision, truncating any extra decimal places.
func QuantityFromDecimal(d decimal.Decimal, precision uint8) Quantity {
	return Quantity{Raw: d.Shift(int32(precision)).IntPart(), Precision: precision}
}

func (q Quantity) Decimal() decimal.Decimal {
	return decimal.New(q.Raw, -int32(q.Precision))
}

func (q Quantity) IsZero() bool     { return q.Raw == 0 }
func (q Quantity) IsPositive() bool { return q.Raw > 0 }

func (q Quantity) String() string {
	return q.Decimal().StringFixed(int32(q.Precision))
}

func (q Quantity) MarshalJSON() ([]byte, error) { return json.Marshal(q.String()) }

func (q *Quantity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := QuantityFromString(s)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

func (q Quantity) EncodeMsgpack(enc *msgpack.Encoder) error { return enc.EncodeString(q.String()) }

func (q *Quantity) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	parsed, err := QuantityFromString(s)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// Currency identifies a settlement currency and its canonical precision.
type Currency struct {
	Code      string
	Precision uint8
}

var currencies = map[string]Currency{
	"AUD":  {Code: "AUD", Precision: 2},
	"EUR":  {Code: "EUR", Precision: 2},
	"GBP":  {Code: "GBP", Precision: 2},
	"JPY":  {Code: "JPY", Precision: 0},
	"USD":  {Code: "USD", Precision: 2},
	"BTC":  {Code: "BTC", Precision: 8},
	"ETH":  {Code: "ETH", Precision: 8},
	"USDT": {Code: "USDT", Precision: 8},
}

// CurrencyFromCode resolves a currency by ISO-style code.
func CurrencyFromCode(code string) (Currency, error) {
	c, ok := currencies[code]
	if !ok {
		return Currency{}, fmt.Errorf("unknown currency code %q", code)
	}
	return c, nil
}

func (c Currency) String() string { return c.Code }

func (c Currency) MarshalJSON() ([]byte, error) { return json.Marshal(c.Code) }

func (c *Currency) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	resolved, err := CurrencyFromCode(code)
	if err != nil {
		return err
	}
	*c = resolved
	return nil
}

func (c Currency) EncodeMsgpack(enc *msgpack.Encoder) error { return enc.EncodeString(c.Code) }

func (c *Currency) DecodeMsgpack(dec *msgpack.Decoder) error {
	code, err := dec.DecodeString()
	if err != nil {
		return err
	}
	resolved, err := CurrencyFromCode(code)
	if err != nil {
		return err
	}
	*c = resolved
	return nil
}

// Money is a fixed-point amount in a concrete currency. The canonical string
// form is "<amount> <code>", e.g. "2.00 USD".
type Money struct {
	Raw      int64
	Currency Currency
}

// NewMoney builds an amount from a float in the currency's precision.
func NewMoney(value float64, currency Currency) Money {
	raw := decimal.NewFromFloat(value).Shift(int32(currency.Precision)).Round(0).IntPart()
	return Money{Raw: raw, Currency: currency}
}

// MoneyFromString parses the canonical "<amount> <code>" form.
func MoneyFromString(s string) (Money, error) {
	amount, code, ok := strings.Cut(s, " ")
	if !ok {
		return Money{}, fmt.Errorf("parse money %q: expected \"<amount> <code>\"", s)
	}
	currency, err := CurrencyFromCode(code)
	if err != nil {
		return Money{}, fmt.Errorf("parse money %q: %w", s, err)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parse money %q: %w", s, err)
	}
	return Money{Raw: d.Shift(int32(currency.Precision)).IntPart(), Currency: currency}, nil
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Raw, -int32(m.Currency.Precision))
}

func (m Money) String() string {
	return m.Decimal().StringFixed(int32(m.Currency.Precision)) + " " + m.Currency.Code
}

func (m Money) MarshalJSON() ([]byte, error) { return json.Marshal(m.String()) }

func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := MoneyFromString(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Money) EncodeMsgpack(enc *msgpack.Encoder) error { return enc.EncodeString(m.String()) }

func (m *Money) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	parsed, err := MoneyFromString(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func parseFixed(s string) (int64, uint8, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, 0, err
	}
	var prec int32
	if d.Exponent() < 0 {
		prec = -d.Exponent()
	}
	if prec > maxFixedPrecision {
		return 0, 0, fmt.Errorf("precision %d exceeds maximum %d", prec, maxFixedPrecision)
	}
	return d.Shift(prec).IntPart(), uint8(prec), nil
}
