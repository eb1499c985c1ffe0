package arbnumbra

import (
	"errors"
	"fmt"
	"strings"
)

// decimal is an exact finite decimal number of unbounded length.
// It is a struct with three parameters:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Scale: an integer indicating the position of the floating decimal point.
//   - Coefficient: an unbounded integer value of the decimal without the
//     decimal point.
//
// A decimal with a coefficient of 12345 and a scale of 2 represents the
// value 123.45. Construction and rescaling are exact; rounding happens only
// in [decimal.round], at an explicitly requested scale.
//
// Unlike most decimal types, a zero coefficient does not clear the sign:
// the literal "-0" renders as "-0.0", matching the sign-preserving
// behavior of IEEE 754 style negative zero.
//
// The zero value of the type is not usable; decimals are created by
// [parseDecimal].
type decimal struct {
	neg   bool  // indicates whether the decimal is negative
	scale int   // the position of the floating decimal point
	coef  *bint // the coefficient of the decimal
}

var (
	// ErrInvalidLiteral indicates text that cannot be parsed as a numeric
	// literal.
	ErrInvalidLiteral = errors.New("invalid literal")

	// ErrPrecisionRange indicates a precision outside the supported range.
	ErrPrecisionRange = errors.New("precision out of range")

	// ErrExponentRange indicates an exponent outside the supported range.
	ErrExponentRange = errors.New("exponent out of range")

	// ErrPrecisionUnderflow indicates a render whose working precision
	// would exceed [MaxWorkingPrec], so it cannot be performed without
	// losing digits.
	ErrPrecisionUnderflow = errors.New("insufficient working precision")
)

// MaxWorkingPrec is the largest working precision a single render may
// require before generation fails with [ErrPrecisionUnderflow].
const MaxWorkingPrec = 1_000_000

// WorkingPrec returns the number of significant digits needed to render a
// one-integer-digit mantissa scaled by 10^exponent to precision fractional
// digits, which is precision + max(exponent, 0) + 1.
//
// A mantissa with one integer digit shifted left by exponent places has at
// most 1 + exponent integer digits, and the render keeps precision digits
// below the decimal point, so 1 + max(exponent, 0) + precision significant
// digits cover every digit the output can contain. Mantissas with more
// integer digits need proportionally more; the engine stores every
// coefficient digit exactly and widens automatically, so this function is a
// floor on the digits a render touches, never a limit that truncates them.
func WorkingPrec(precision, exponent int) int {
	if exponent < 0 {
		exponent = 0
	}
	return precision + exponent + 1
}

// checkWorkingPrec reports whether a render at the given precision and
// exponent stays within [MaxWorkingPrec] significant digits.
// The bounds on each argument keep the sum from overflowing.
func checkWorkingPrec(precision, exponent int) error {
	if precision <= MaxWorkingPrec && exponent <= MaxWorkingPrec && WorkingPrec(precision, exponent) <= MaxWorkingPrec {
		return nil
	}
	return fmt.Errorf("rendering %v fractional digit(s) with exponent %v needs more than %v significant digit(s): %w", precision, exponent, MaxWorkingPrec, ErrPrecisionUnderflow)
}

// parseDecimal converts a parsed literal's mantissa into an exact decimal.
// The integer part may carry a leading sign; both parts must otherwise be
// plain digit strings, and at least one of them must contain a digit.
// The exponent of the literal is not applied here, see [decimal.mulPow10].
func parseDecimal(lit literal) (decimal, error) {
	var (
		pos     int
		width   int
		neg     bool
		coef    *bint
		hascoef bool
	)

	coef = new(bint)
	width = len(lit.integer)

	// Sign
	switch {
	case pos == width:
		// skip
	case lit.integer[pos] == '-':
		neg = true
		pos++
	case lit.integer[pos] == '+':
		pos++
	}

	// Integer
	for pos < width && lit.integer[pos] >= '0' && lit.integer[pos] <= '9' {
		hascoef = true
		coef.fsa(coef, 1, lit.integer[pos]-'0')
		pos++
	}
	if pos != width {
		return decimal{}, fmt.Errorf("invalid character %q: %w", lit.integer[pos], ErrInvalidLiteral)
	}

	// Fraction
	pos, width = 0, len(lit.fraction)
	for pos < width && lit.fraction[pos] >= '0' && lit.fraction[pos] <= '9' {
		hascoef = true
		coef.fsa(coef, 1, lit.fraction[pos]-'0')
		pos++
	}
	if pos != width {
		return decimal{}, fmt.Errorf("invalid character %q: %w", lit.fraction[pos], ErrInvalidLiteral)
	}

	if !hascoef {
		return decimal{}, fmt.Errorf("no coefficient: %w", ErrInvalidLiteral)
	}

	return decimal{neg: neg, scale: len(lit.fraction), coef: coef}, nil
}

// mulPow10 returns d * 10^exp.
// The result is exact: a negative exp grows the scale, a positive exp
// shrinks it and, once the scale is exhausted, shifts the coefficient left.
func (d decimal) mulPow10(exp int) decimal {
	scale := d.scale - exp
	if scale >= 0 {
		return decimal{neg: d.neg, scale: scale, coef: d.coef}
	}
	z := new(bint)
	z.lsh(d.coef, -scale)
	return decimal{neg: d.neg, scale: 0, coef: z}
}

// round returns d rounded to the specified number of digits after the
// decimal point using the "half to even" rule. If the scale of d is less
// than the specified scale, the result is zero-padded to the right.
// Rounding is applied to the coefficient, so ties break identically for
// both signs.
//
// round panics if the scale is negative.
func (d decimal) round(scale int) decimal {
	if scale < 0 {
		panic(fmt.Sprintf("%q.round(%v) failed: %v", d, scale, ErrPrecisionRange))
	}
	switch {
	case scale == d.scale:
		return d
	case scale < d.scale:
		z := new(bint)
		z.rshHalfEven(d.coef, d.scale-scale)
		return decimal{neg: d.neg, scale: scale, coef: z}
	}
	z := new(bint)
	z.lsh(d.coef, scale-d.scale)
	return decimal{neg: d.neg, scale: scale, coef: z}
}

// text returns d in plain fixed-point form with exactly prec digits after
// the decimal point, rounding half to even when prec is smaller than the
// scale of d. When prec is 0 the result has no decimal point. Values within
// one carry a leading zero, and the sign is kept even for a zero
// coefficient.
func (d decimal) text(prec int) string {
	r := d.round(prec)

	digits := r.coef.string()
	if pad := prec + 1 - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}

	buf := make([]byte, 0, len(digits)+2)
	if d.neg {
		buf = append(buf, '-')
	}
	if prec == 0 {
		buf = append(buf, digits...)
	} else {
		buf = append(buf, digits[:len(digits)-prec]...)
		buf = append(buf, '.')
		buf = append(buf, digits[len(digits)-prec:]...)
	}
	return string(buf)
}

// String implements the [fmt.Stringer] interface and returns d in plain
// fixed-point form at its natural scale.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d decimal) String() string {
	return d.text(d.scale)
}

// trimZeros strips insignificant trailing zeros from a rendered number.
// If stripping consumes the whole fraction, a single zero is restored, so
// the result keeps the form <integer>.<at-least-one-digit>. Strings without
// a decimal point are returned unchanged: integer digits are never
// insignificant.
func trimZeros(s string) string {
	if strings.IndexByte(s, '.') < 0 {
		return s
	}
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}
