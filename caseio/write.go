package caseio

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/bgorlick/arbnumbra"
)

// Write serializes cases to w in the given format.
// Writing [FormatText] fails with [ErrReadOnly].
func Write(w io.Writer, cases []arbnumbra.Case, format Format) error {
	switch format {
	case FormatText:
		return errors.Wrap(ErrReadOnly, "text")
	case FormatJSON:
		return writeJSON(w, cases)
	case FormatCSV:
		return writeCSV(w, cases)
	case FormatTOML:
		return writeTOML(w, cases)
	case FormatYAML:
		return writeYAML(w, cases)
	case FormatC:
		return writeC(w, cases)
	}
	return errors.Wrapf(ErrUnknownFormat, "%d", format)
}

// WriteFile serializes cases to the named file in the given format.
func WriteFile(path string, cases []arbnumbra.Case, format Format) error {
	var buf bytes.Buffer
	if err := Write(&buf, cases, format); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func writeJSON(w io.Writer, cases []arbnumbra.Case) error {
	out := make([]wireCase, 0, len(cases))
	for _, c := range cases {
		out = append(out, toWire(c))
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding json")
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func writeCSV(w io.Writer, cases []arbnumbra.Case) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, c := range cases {
		wc := toWire(c)
		rec := []string{wc.Num, strconv.Itoa(wc.Precision), wc.Expected, itoaCell(wc.Radix), itoaCell(wc.Base)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// itoaCell renders an optional CSV cell, leaving unset values empty.
func itoaCell(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

func writeTOML(w io.Writer, cases []arbnumbra.Case) error {
	doc := struct {
		TestCases []wireCase `toml:"test_cases"`
	}{
		TestCases: make([]wireCase, 0, len(cases)),
	}
	for _, c := range cases {
		doc.TestCases = append(doc.TestCases, toWire(c))
	}
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return errors.Wrap(err, "encoding toml")
	}
	return nil
}

func writeYAML(w io.Writer, cases []arbnumbra.Case) error {
	out := make([]wireCase, 0, len(cases))
	for _, c := range cases {
		out = append(out, toWire(c))
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	_, err = w.Write(data)
	return err
}

// writeC emits a C source fragment. Radix metadata rides along as extra
// initializer fields, with the base nested inside the radix.
func writeC(w io.Writer, cases []arbnumbra.Case) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("struct TestCase test_cases[] = {\n")
	for _, c := range cases {
		fmt.Fprintf(bw, "    {%q, %d, %q", c.Num, c.Precision, c.Expected)
		if c.Radix != 0 {
			fmt.Fprintf(bw, ", %d", c.Radix)
			if c.Base != 0 {
				fmt.Fprintf(bw, ", %d", c.Base)
			}
		}
		bw.WriteString("},\n")
	}
	bw.WriteString("};\n")
	return bw.Flush()
}
