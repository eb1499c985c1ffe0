package caseio

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/bgorlick/arbnumbra"
)

// Read parses cases from r in the given format.
// Reading [FormatC] fails with [ErrWriteOnly].
func Read(r io.Reader, format Format) ([]arbnumbra.Case, error) {
	switch format {
	case FormatText:
		return readText(r)
	case FormatJSON:
		return readJSON(r)
	case FormatCSV:
		return readCSV(r)
	case FormatTOML:
		return readTOML(r)
	case FormatYAML:
		return readYAML(r)
	case FormatC:
		return nil, errors.Wrap(ErrWriteOnly, "c")
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "%d", format)
}

// ReadFile parses cases from the named file, inferring the format from
// the file extension.
func ReadFile(path string) ([]arbnumbra.Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, DetectFormat(path))
}

// readText parses input listings. Lines hold whitespace-separated
// fields, "num precision" with optional radix and base columns. Blank
// lines, comments, and lines with fewer than two fields are skipped,
// and any fields past the fourth are ignored.
func readText(r io.Reader) ([]arbnumbra.Case, error) {
	var cases []arbnumbra.Case
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		c := arbnumbra.Case{Num: fields[0]}
		var err error
		if c.Precision, err = strconv.Atoi(fields[1]); err != nil {
			return nil, errors.Wrapf(err, "line %d: precision", line)
		}
		if len(fields) > 2 {
			if c.Radix, err = strconv.Atoi(fields[2]); err != nil {
				return nil, errors.Wrapf(err, "line %d: radix", line)
			}
		}
		if len(fields) > 3 {
			if c.Base, err = strconv.Atoi(fields[3]); err != nil {
				return nil, errors.Wrapf(err, "line %d: base", line)
			}
		}
		cases = append(cases, c)
	}
	return cases, sc.Err()
}

func readJSON(r io.Reader) ([]arbnumbra.Case, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var wires []wireCase
	if err := json.Unmarshal(data, &wires); err != nil {
		return nil, errors.Wrap(err, "decoding json")
	}
	return fromWires(wires), nil
}

func readCSV(r io.Reader) ([]arbnumbra.Case, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "decoding csv")
	}
	var cases []arbnumbra.Case
	for i, rec := range records {
		if i == 0 && (rec[0] == "num_str" || rec[0] == "num") {
			continue
		}
		c := arbnumbra.Case{Num: rec[0], Expected: rec[2]}
		if c.Precision, err = atoiCell(rec[1]); err != nil {
			return nil, errors.Wrapf(err, "record %d: precision", i+1)
		}
		if c.Radix, err = atoiCell(rec[3]); err != nil {
			return nil, errors.Wrapf(err, "record %d: radix", i+1)
		}
		if c.Base, err = atoiCell(rec[4]); err != nil {
			return nil, errors.Wrapf(err, "record %d: base", i+1)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// atoiCell converts a CSV cell to an int, treating an empty cell as zero.
func atoiCell(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func readTOML(r io.Reader) ([]arbnumbra.Case, error) {
	var doc struct {
		TestCases []wireCase `toml:"test_cases"`
		Testcase  []wireCase `toml:"testcase"`
	}
	if _, err := toml.DecodeReader(r, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding toml")
	}
	return fromWires(append(doc.TestCases, doc.Testcase...)), nil
}

func readYAML(r io.Reader) ([]arbnumbra.Case, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var wires []wireCase
	if err := yaml.Unmarshal(data, &wires); err != nil {
		return nil, errors.Wrap(err, "decoding yaml")
	}
	return fromWires(wires), nil
}
