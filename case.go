package arbnumbra

import (
	"errors"
	"fmt"
)

// InvalidInput is the expected value recorded by [GenerateLenient] for
// literals that cannot be parsed.
const InvalidInput = "Invalid input"

// Case is a single generated test record: the input literal, the requested
// precision, and the canonical fixed-point rendering the input is expected
// to produce. Radix and Base are opaque metadata carried through
// serialization; they do not participate in the rescaling math, and a zero
// value means "unset" and is omitted from serialized output.
//
// A Case is immutable after creation and is safe to copy and compare.
type Case struct {
	Num       string `json:"num_str" toml:"num_str"`
	Precision int    `json:"precision" toml:"precision"`
	Expected  string `json:"expected" toml:"expected"`
	Radix     int    `json:"radix,omitempty" toml:"radix,omitzero"`
	Base      int    `json:"base,omitempty" toml:"base,omitzero"`
}

// Generate renders the canonical fixed-point form of the literal num at the
// given number of fractional digits and returns the resulting record.
// The input string must be a reserved non-finite token, or match the
// following formal EBNF grammar:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	exponent       ::= ('e' | 'E') [sign] digits
//	numeric-string ::= [sign] significand [exponent]
//
// The rendered value is exact: the significand is rescaled by 10^exponent
// without loss, rounded half to even at precision fractional digits, and
// trailing fractional zeros are trimmed down to a single digit after the
// decimal point. Reserved tokens pass through with the token itself as the
// expected value. Generation is a pure function of its arguments.
//
// Generate returns an error:
//   - if precision is negative ([ErrPrecisionRange]);
//   - if num does not represent a valid numeric literal ([ErrInvalidLiteral]);
//   - if the render would need more than [MaxWorkingPrec] significant
//     digits ([ErrPrecisionUnderflow]).
func Generate(num string, precision, radix, base int) (Case, error) {
	if precision < 0 {
		return Case{}, fmt.Errorf("precision %v: %w", precision, ErrPrecisionRange)
	}
	if IsReserved(num) {
		return Case{Num: num, Precision: precision, Expected: num, Radix: radix, Base: base}, nil
	}
	lit, err := parseLiteral(num)
	if err != nil {
		return Case{}, fmt.Errorf("parsing %q: %w", num, err)
	}
	if err := checkWorkingPrec(precision, lit.exponent); err != nil {
		return Case{}, fmt.Errorf("rescaling %q: %w", num, err)
	}
	d, err := parseDecimal(lit)
	if err != nil {
		return Case{}, fmt.Errorf("parsing %q: %w", num, err)
	}
	d = d.mulPow10(lit.exponent)
	expected := trimZeros(d.text(precision))
	return Case{Num: num, Precision: precision, Expected: expected, Radix: radix, Base: base}, nil
}

// GenerateLenient is like [Generate], except that a literal that cannot be
// parsed yields a Case whose Expected is [InvalidInput] instead of an
// error. Batch tooling uses it to record unparseable inputs alongside valid
// ones. Precision and working-precision failures still propagate.
func GenerateLenient(num string, precision, radix, base int) (Case, error) {
	c, err := Generate(num, precision, radix, base)
	if errors.Is(err, ErrInvalidLiteral) {
		return Case{Num: num, Precision: precision, Expected: InvalidInput, Radix: radix, Base: base}, nil
	}
	return c, err
}
