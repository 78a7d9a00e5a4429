package crowdfund

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in the project's currency.
//
// The value is held as an exact decimal in major units; rounding to the
// currency's display fraction happens only when formatting. Keeping the
// arithmetic exact matters here: a project accumulates dozens of small
// additions and float rounding would drift by fractional cents.
type Money struct {
	value decimal.Decimal // major unit value
	cur   string
}

// M creates a Money from any numeric value and a currency code.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal(v any) decimal.Decimal {
	switch value := v.(type) {
	case decimal.Decimal:
		return value
	case float32:
		return decimal.NewFromFloat32(value)
	case float64:
		return decimal.NewFromFloat(value)
	case int:
		return decimal.NewFromInt(int64(value))
	case int32:
		return decimal.NewFromInt32(value)
	case int64:
		return decimal.NewFromInt(value)
	case uint:
		return decimal.NewFromUint64(uint64(value))
	case uint32:
		return decimal.NewFromUint64(uint64(value))
	case uint64:
		return decimal.NewFromUint64(value)
	default:
		panic("unsupported numeric type for Money")
	}
}

// currency returns the full currency metadata, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// Currency returns the money's currency code.
func (m Money) Currency() string { return m.cur }

// Decimal returns the exact major-unit value.
func (m Money) Decimal() decimal.Decimal { return m.value }

// String formats the value with the currency's grapheme and display fraction.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String but with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }

// Add returns m+n. Currencies must match; the "" currency is weak and adopts
// the other side, so a zero Money literal composes with anything.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }

// Sub returns m-n under the same currency rules as Add.
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// ShareOf returns the fraction this amount represents of the given total,
// expressed as a percentage. A zero total yields 0%.
func (m Money) ShareOf(total Money) Percent {
	if total.value.IsZero() {
		return 0
	}
	share := m.value.Div(total.value).Mul(decimal.NewFromInt(100))
	return Percent(share.InexactFloat64())
}

// Portion returns p percent of m, exact to the decimal representation.
func (m Money) Portion(p Percent) Money {
	portion := m.value.Mul(decimal.NewFromFloat(float64(p))).Div(decimal.NewFromInt(100))
	return Money{value: portion, cur: m.cur}
}

func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + " != " + b.cur)
	}
	return a.cur
}
