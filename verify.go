package arbnumbra

// Result is the outcome of verifying a single case.
type Result struct {
	Case   Case
	Actual string // the freshly rendered expected value
	Err    error  // non-nil when the case could not be regenerated at all
}

// Pass reports whether the recorded and freshly rendered values match
// byte for byte.
func (r Result) Pass() bool {
	return r.Err == nil && r.Actual == r.Case.Expected
}

// Verify regenerates the expected value for a previously recorded case and
// compares it to the recorded value using exact string equality. There is
// no numeric tolerance: verification is a textual round-trip check.
// Regeneration is lenient, so a recorded [InvalidInput] value verifies
// against an unparseable literal.
func Verify(c Case) Result {
	fresh, err := GenerateLenient(c.Num, c.Precision, c.Radix, c.Base)
	if err != nil {
		return Result{Case: c, Err: err}
	}
	return Result{Case: c, Actual: fresh.Expected}
}

// Report is the aggregate outcome of verifying a batch of cases.
type Report struct {
	Passed   int
	Failed   int
	Failures []Result
}

// VerifyAll verifies every case in the batch and aggregates the outcome.
// A mismatch never aborts the batch: all remaining cases are still
// verified, and every failure is collected in the report. A case whose
// regeneration fails outright counts as a failure carrying the error.
func VerifyAll(cases []Case) Report {
	var rep Report
	for _, c := range cases {
		res := Verify(c)
		if res.Pass() {
			rep.Passed++
			continue
		}
		rep.Failed++
		rep.Failures = append(rep.Failures, res)
	}
	return rep
}
