package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgorlick/arbnumbra"
	"github.com/bgorlick/arbnumbra/caseio"
)

func runGenerateCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewCmdGenerate(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestGenerateRandom(t *testing.T) {
	output := filepath.Join(t.TempDir(), "cases")
	out, err := runGenerateCmd(t,
		"--num-cases", "5",
		"--seed", "42",
		"--output", output,
		"--type", "json",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 5 test cases to "+output+".json")

	cases, err := caseio.ReadFile(output + ".json")
	require.NoError(t, err)
	require.Len(t, cases, 5)
	for _, c := range cases {
		if res := arbnumbra.Verify(c); !res.Pass() {
			t.Errorf("generated case %v does not verify: %v", c, res)
		}
	}
}

func TestGenerateReproducible(t *testing.T) {
	read := func(dir string) []arbnumbra.Case {
		output := filepath.Join(dir, "cases")
		_, err := runGenerateCmd(t,
			"--num-cases", "10",
			"--seed", "7",
			"--output", output,
			"--type", "json",
		)
		require.NoError(t, err)
		cases, err := caseio.ReadFile(output + ".json")
		require.NoError(t, err)
		return cases
	}

	first := read(t.TempDir())
	second := read(t.TempDir())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed produced different cases (-first +second):\n%s", diff)
	}
}

func TestGenerateCatalogs(t *testing.T) {
	output := filepath.Join(t.TempDir(), "cases")
	out, err := runGenerateCmd(t,
		"--include-special",
		"--include-edge",
		"--include-subnormal",
		"--include-pi", "3",
		"--output", output,
		"--type", "json",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 9 test cases")

	cases, err := caseio.ReadFile(output + ".json")
	require.NoError(t, err)
	require.Len(t, cases, 9)
	assert.Equal(t, arbnumbra.TokenInfinity, cases[0].Num)
	assert.Equal(t, arbnumbra.Pi, cases[8].Num)
}

func TestGenerateFromFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "inputs.txt")
	require.NoError(t, os.WriteFile(input, []byte("# listing\n1.23e10 15\nabc 3\n"), 0o644))

	output := filepath.Join(dir, "cases")
	_, err := runGenerateCmd(t,
		"--file", input,
		"--output", output,
		"--type", "json",
	)
	require.NoError(t, err)

	cases, err := caseio.ReadFile(output + ".json")
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, "12300000000.0", cases[0].Expected)
	assert.Equal(t, arbnumbra.InvalidInput, cases[1].Expected)
}

func TestGenerateNothing(t *testing.T) {
	output := filepath.Join(t.TempDir(), "cases")
	_, err := runGenerateCmd(t, "--output", output, "--type", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to generate")
}

func TestGenerateExtensionReplaced(t *testing.T) {
	output := filepath.Join(t.TempDir(), "cases.csv")
	_, err := runGenerateCmd(t,
		"--num-cases", "1",
		"--seed", "1",
		"--output", output,
		"--type", "json",
	)
	require.NoError(t, err)

	want := strings.TrimSuffix(output, ".csv") + ".json"
	if _, err := os.Stat(want); err != nil {
		t.Errorf("expected output at %s: %v", want, err)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("expected no output at %s", output)
	}
}

func TestGenerateRejectsText(t *testing.T) {
	_, err := runGenerateCmd(t, "--num-cases", "1", "--type", "text")
	if !errors.Is(err, caseio.ErrReadOnly) {
		t.Errorf("expected %v, got %v", caseio.ErrReadOnly, err)
	}
}

func TestGenerateUnknownType(t *testing.T) {
	_, err := runGenerateCmd(t, "--num-cases", "1", "--type", "xml")
	if !errors.Is(err, caseio.ErrUnknownFormat) {
		t.Errorf("expected %v, got %v", caseio.ErrUnknownFormat, err)
	}
}

func TestGenerateVerifyReadsBack(t *testing.T) {
	output := filepath.Join(t.TempDir(), "cases")
	out, err := runGenerateCmd(t,
		"--num-cases", "3",
		"--seed", "9",
		"--output", output,
		"--type", "json",
		"--verify",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "3 passed, 0 failed")
}

func TestGenerateCArray(t *testing.T) {
	output := filepath.Join(t.TempDir(), "cases")
	out, err := runGenerateCmd(t,
		"--num-cases", "3",
		"--seed", "9",
		"--output", output,
		"--type", "c",
		"--verify",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "3 passed, 0 failed")

	data, err := os.ReadFile(output + ".c")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "struct TestCase test_cases[] = {\n"))
	assert.True(t, strings.HasSuffix(string(data), "};\n"))
}

func TestGenerateRandomBoundsRejected(t *testing.T) {
	_, err := runGenerateCmd(t,
		"--num-cases", "1",
		"--min-precision", "10",
		"--max-precision", "1",
		"--type", "json",
		"--output", filepath.Join(t.TempDir(), "cases"),
	)
	if !errors.Is(err, arbnumbra.ErrPrecisionRange) {
		t.Errorf("expected %v, got %v", arbnumbra.ErrPrecisionRange, err)
	}
}
