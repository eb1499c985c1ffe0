package arbnumbra

// Pi is a 51-digit decimal approximation of π.
const Pi = "3.14159265358979323846264338327950288419716939937510"

// Largest finite and smallest positive subnormal magnitudes of an IEEE 754
// double-precision value.
const (
	maxDouble    = "1.7976931348623157e308"
	minSubnormal = "4.9406564584124654e-324"
)

// SpecialCases returns the reserved non-finite sentinels, each recorded at
// precision 0 with the token itself as the expected value.
func SpecialCases() []Case {
	return []Case{
		MustGenerate(TokenInfinity, 0, 0, 0),
		MustGenerate(TokenNegInfinity, 0, 0, 0),
		MustGenerate(TokenNaN, 0, 0, 0),
	}
}

// EdgeCases returns the largest-magnitude finite double-precision boundary
// values, rendered at precision 308 to expose the full integer expansion.
func EdgeCases() []Case {
	return []Case{
		MustGenerate(maxDouble, 308, 0, 0),
		MustGenerate("-"+maxDouble, 308, 0, 0),
	}
}

// SubnormalCases returns the smallest positive subnormal double-precision
// boundary value, rendered at precision 324 where its leading significant
// digit appears.
func SubnormalCases() []Case {
	return []Case{
		MustGenerate(minSubnormal, 324, 0, 0),
	}
}

// PiCases returns [Pi] rendered at every precision from 1 through max,
// one case per precision level. It returns nil when max is less than 1.
// Successive cases sharpen the rendering one digit at a time, exercising
// the rounding of a long irrational tail.
func PiCases(max int) []Case {
	var cases []Case
	for p := 1; p <= max; p++ {
		cases = append(cases, MustGenerate(Pi, p, 0, 0))
	}
	return cases
}
