package tracker

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are persisted as bare JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Amount represents a monetary quantity at full precision.
//
// An Amount is currency-agnostic: the transaction that owns it carries the
// currency snapshot, and aggregates never mix currencies.
type Amount struct {
	value decimal.Decimal
}

// A builds an Amount from any numeric value.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	}
	return decimal.Zero
}

// ParseAmount parses a decimal number from its string form.
func ParseAmount(str string) (Amount, error) {
	value, err := decimal.NewFromString(str)
	if err != nil {
		return Amount{}, err
	}
	return Amount{value: value}, nil
}

// String renders the amount with exactly 2 decimal places.
func (a Amount) String() string { return a.value.StringFixed(2) }

// FormatIn renders the amount in the given currency's display convention
// (symbol and minor-unit grouping), e.g. "$1,234.50".
func (a Amount) FormatIn(code string) string {
	cur := *money.New(0, code).Currency()
	shifted := a.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(shifted.IntPart())
}

func (a Amount) Equal(b Amount) bool    { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool           { return a.value.IsZero() }
func (a Amount) IsPositive() bool       { return a.value.IsPositive() }
func (a Amount) LessThan(b Amount) bool { return a.value.LessThan(b.value) }

// binary operators.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }

// PercentOf returns a as a share of total, in percent.
func (a Amount) PercentOf(total Amount) Percent {
	if total.IsZero() {
		return 0
	}
	share := a.value.Div(total.value).Mul(decimal.NewFromInt(100))
	return Percent(share.InexactFloat64())
}

// MarshalJSON implements the json.Marshaler interface for Amount.
// The full precision is persisted; rounding happens at render time only.
func (a Amount) MarshalJSON() ([]byte, error) { return a.value.MarshalJSON() }

// UnmarshalJSON implements the json.Unmarshaler interface for Amount.
func (a *Amount) UnmarshalJSON(data []byte) error { return a.value.UnmarshalJSON(data) }
