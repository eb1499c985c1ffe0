package arbnumbra

import (
	"fmt"
	"strconv"
	"strings"
)

// Reserved non-finite tokens.
// They are recognized verbatim before decimal parsing, so they never reach
// the decimal constructor; generating a case for one of them yields the
// token itself as the expected value.
const (
	TokenInfinity    = "CUSTOM_INFINITY"
	TokenNegInfinity = "-CUSTOM_INFINITY"
	TokenNaN         = "CUSTOM_NAN"
)

// IsReserved reports whether num is one of the reserved non-finite tokens.
func IsReserved(num string) bool {
	switch num {
	case TokenInfinity, TokenNegInfinity, TokenNaN:
		return true
	}
	return false
}

// literal is a numeric literal split into its textual parts.
// The integer part may carry a leading sign.
// The fraction defaults to an empty string when the mantissa has no decimal
// point, and the exponent defaults to 0 when there is no exponent marker.
type literal struct {
	integer  string
	fraction string
	exponent int
}

// parseLiteral splits num on the first exponent marker ('e' or 'E') and then
// splits the mantissa on the first decimal point. The split is purely
// positional: mantissa digits are validated later by [parseDecimal], so a
// second decimal point stays inside the fraction part and is rejected there,
// not silently dropped. The exponent, if present, must be a valid signed
// integer.
func parseLiteral(num string) (literal, error) {
	var lit literal

	// Exponent
	mant := num
	if i := strings.IndexAny(num, "eE"); i >= 0 {
		etext := num[i+1:]
		exp, err := strconv.Atoi(etext)
		if err != nil {
			return literal{}, fmt.Errorf("exponent %q: %w", etext, ErrInvalidLiteral)
		}
		mant = num[:i]
		lit.exponent = exp
	}

	// Mantissa
	if j := strings.IndexByte(mant, '.'); j >= 0 {
		lit.integer = mant[:j]
		lit.fraction = mant[j+1:]
	} else {
		lit.integer = mant
	}

	return lit, nil
}
