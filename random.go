package arbnumbra

import (
	"fmt"
	"math/rand"
	"strconv"
)

// RandomSpec bounds the precision and exponent ranges that [RandomCase]
// draws from. Radix and Base are attached to every generated case
// unchanged.
type RandomSpec struct {
	MinPrecision int
	MaxPrecision int
	MinExponent  int
	MaxExponent  int
	Radix        int
	Base         int
}

func (s RandomSpec) validate() error {
	switch {
	case s.MinPrecision < 0:
		return fmt.Errorf("minimum precision %v: %w", s.MinPrecision, ErrPrecisionRange)
	case s.MaxPrecision < s.MinPrecision:
		return fmt.Errorf("precision range %v..%v: %w", s.MinPrecision, s.MaxPrecision, ErrPrecisionRange)
	case s.MaxExponent < s.MinExponent:
		return fmt.Errorf("exponent range %v..%v: %w", s.MinExponent, s.MaxExponent, ErrExponentRange)
	}
	return nil
}

// RandomCase generates one random case within the bounds of spec.
// The precision and exponent are uniform over their ranges, and the
// mantissa is a uniform value in [0, 1) rendered to the chosen precision,
// so the literal has the shape "0.27182e-42".
//
// The caller owns r: there is no package-level source of randomness, and a
// fixed seed reproduces the same sequence of cases.
func RandomCase(r *rand.Rand, spec RandomSpec) (Case, error) {
	if err := spec.validate(); err != nil {
		return Case{}, err
	}
	precision := spec.MinPrecision + r.Intn(spec.MaxPrecision-spec.MinPrecision+1)
	exponent := spec.MinExponent + r.Intn(spec.MaxExponent-spec.MinExponent+1)
	num := strconv.FormatFloat(r.Float64(), 'f', precision, 64) + "e" + strconv.Itoa(exponent)
	return Generate(num, precision, spec.Radix, spec.Base)
}
