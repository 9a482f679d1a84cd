// Package indices computes codon usage statistics from codon, amino
// acid and base tallies. Every function is pure and is safe for
// concurrent use. Statistics with a zero denominator are reported as
// Undefined instead of an error.
package indices

import (
	"bytes"
	"math"
	"strconv"
)

// UndefinedString is the text representation of an undefined result.
const UndefinedString = "*****"

// Result is a value of a statistic, which might be undefined.
type Result struct {
	Value   float64
	Defined bool
}

// Undefined is a result of a statistic which cannot be computed.
var Undefined = Result{}

// Value returns a defined result.
func Value(v float64) Result {
	return Result{Value: v, Defined: true}
}

// ratio returns num/den or Undefined if den is zero.
func ratio(num, den float64) Result {
	if den == 0 {
		return Undefined
	}
	return Value(num / den)
}

// Format formats the value with prec digits after the decimal point.
func (r Result) Format(prec int) string {
	if !r.Defined {
		return UndefinedString
	}
	return strconv.FormatFloat(r.Value, 'f', prec, 64)
}

func (r Result) String() string {
	return r.Format(3)
}

// MarshalJSON encodes undefined and non-finite results as null.
func (r Result) MarshalJSON() ([]byte, error) {
	if !r.Defined || math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, r.Value, 'g', -1, 64), nil
}

// UnmarshalJSON decodes a number or null.
func (r *Result) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*r = Undefined
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*r = Value(v)
	return nil
}
