/*
Package arbnumbra generates and verifies test cases for arbitrary-precision
number formatting. Given a numeric literal with an optional base-10 exponent
and a requested decimal precision, it produces the canonical, non-scientific,
fixed-point string of the literal's exact value, records the pair as a
[Case], and later re-derives and compares the recorded value byte for byte.

# Generation

[Generate] runs a three-stage pipeline:

 1. The literal is split into an integer part, a fractional part, and an
    exponent. The split is purely positional; digit validation happens in
    the next stage, so malformed text fails with [ErrInvalidLiteral] rather
    than being silently repaired.

 2. The mantissa is converted to an exact decimal value with an unbounded
    coefficient, then rescaled by 10^exponent. Both steps are exact: no
    digit is lost regardless of the exponent's sign or magnitude.

 3. The exact value is rendered with exactly the requested number of digits
    after the decimal point, rounding half to even, and insignificant
    trailing zeros are trimmed so that at least one fractional digit
    remains. "5.10" is never produced; "5.1" and "5.0" are.

Generation is a pure function of its arguments. There is no process-wide
arithmetic context or other shared mutable state, so concurrent generation
from multiple goroutines is safe.

# Special values

Non-finite values are expressed by three reserved tokens: [TokenInfinity],
[TokenNegInfinity], and [TokenNaN]. A reserved token is a distinct literal
syntax: it is matched verbatim before decimal parsing and passes through
generation with the token itself as the expected value. Any other
non-numeric text, including "inf" and "nan", is an invalid literal.

The package also ships fixed catalogs of boundary inputs: [SpecialCases]
for the reserved tokens, [EdgeCases] for the largest finite IEEE 754 double
magnitudes, [SubnormalCases] for the smallest positive subnormal double,
and [PiCases] for a 51-digit π approximation rendered across a range of
precisions. [RandomCase] draws reproducible random cases from a
caller-seeded source.

# Working precision

Rendering a value scaled by a large positive exponent touches
precision + exponent + 1 significant digits; [WorkingPrec] documents this
floor. The engine stores coefficients exactly, so the floor is provisioned
automatically, and [Generate] fails with [ErrPrecisionUnderflow] when a
render would need more than [MaxWorkingPrec] significant digits instead of
producing silently truncated output. Large negative exponents need no such
guard: digits far below the rendered precision collapse to zero during
rounding without ever being materialized.

# Verification

[Verify] regenerates a recorded case and compares the stored expected value
with the fresh one using exact string equality. [VerifyAll] applies this to
a batch, collecting every mismatch instead of stopping at the first one, so
a verification run always reports the complete pass/fail tally.

# Errors

All functions are panic-free (the Must variants excepted) and return
sentinel errors that callers can test with [errors.Is]:

  - [ErrInvalidLiteral] for text that does not parse as a numeric literal;
  - [ErrPrecisionRange] for a negative or inverted precision range;
  - [ErrExponentRange] for an inverted random exponent range;
  - [ErrPrecisionUnderflow] for renders beyond [MaxWorkingPrec].

[errors.Is]: https://pkg.go.dev/errors#Is
*/
package arbnumbra
