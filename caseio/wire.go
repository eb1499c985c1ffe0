package caseio

import (
	"github.com/bgorlick/arbnumbra"
)

// csvHeader is the fixed column order of CSV batches.
var csvHeader = []string{"num_str", "precision", "expected", "radix", "base"}

// wireCase is the serialized form of a case. The numeric string marshals
// as "num_str", and "num" is accepted as an alias when reading.
type wireCase struct {
	Num       string `json:"num_str" toml:"num_str"`
	NumAlias  string `json:"num,omitempty" toml:"num,omitempty"`
	Precision int    `json:"precision" toml:"precision"`
	Expected  string `json:"expected" toml:"expected"`
	Radix     int    `json:"radix,omitempty" toml:"radix,omitzero"`
	Base      int    `json:"base,omitempty" toml:"base,omitzero"`
}

// toWire converts a case for writing. A base without a radix is dropped,
// matching the nesting of the optional metadata.
func toWire(c arbnumbra.Case) wireCase {
	w := wireCase{
		Num:       c.Num,
		Precision: c.Precision,
		Expected:  c.Expected,
		Radix:     c.Radix,
		Base:      c.Base,
	}
	if w.Radix == 0 {
		w.Base = 0
	}
	return w
}

func fromWire(w wireCase) arbnumbra.Case {
	num := w.Num
	if num == "" {
		num = w.NumAlias
	}
	return arbnumbra.Case{
		Num:       num,
		Precision: w.Precision,
		Expected:  w.Expected,
		Radix:     w.Radix,
		Base:      w.Base,
	}
}

func fromWires(wires []wireCase) []arbnumbra.Case {
	cases := make([]arbnumbra.Case, 0, len(wires))
	for _, w := range wires {
		cases = append(cases, fromWire(w))
	}
	return cases
}
