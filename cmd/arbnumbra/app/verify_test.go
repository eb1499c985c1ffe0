package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgorlick/arbnumbra"
	"github.com/bgorlick/arbnumbra/caseio"
)

func runVerifyCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewCmdVerify(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeBatch(t *testing.T, cases []arbnumbra.Case) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test_cases.json")
	require.NoError(t, caseio.WriteFile(path, cases, caseio.FormatJSON))
	return path
}

func TestVerifyCommand(t *testing.T) {
	path := writeBatch(t, []arbnumbra.Case{
		arbnumbra.MustGenerate("1.5", 1, 0, 0),
		arbnumbra.MustGenerate("987.654321", 2, 0, 0),
		{Num: "abc", Precision: 3, Expected: arbnumbra.InvalidInput},
	})

	out, err := runVerifyCmd(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "3 passed, 0 failed")
	assert.NotContains(t, out, "FAIL")
}

func TestVerifyCommandFailure(t *testing.T) {
	cases := []arbnumbra.Case{
		arbnumbra.MustGenerate("1.5", 1, 0, 0),
		arbnumbra.MustGenerate("987.654321", 2, 0, 0),
	}
	cases[1].Expected = "987.66"
	path := writeBatch(t, cases)

	out, err := runVerifyCmd(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 test cases failed verification")
	assert.Contains(t, out, "FAIL: 987.654321")
	assert.Contains(t, out, "Expected: 987.66")
	assert.Contains(t, out, "Actual: 987.65")
	assert.Contains(t, out, "1 passed, 1 failed")
}

func TestVerifyCommandVerbose(t *testing.T) {
	path := writeBatch(t, []arbnumbra.Case{
		arbnumbra.MustGenerate("1.5", 1, 0, 0),
	})

	out, err := runVerifyCmd(t, path, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "PASS: 1.5")
}

func TestVerifyCommandNoExpected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.txt")
	require.NoError(t, os.WriteFile(path, []byte("1.5 1\n"), 0o644))

	_, err := runVerifyCmd(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carries no expected result")
}

func TestVerifyCommandMissingFile(t *testing.T) {
	_, err := runVerifyCmd(t, filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestNewArbnumbraCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewArbnumbraCommand(&buf)

	subs := map[string]bool{}
	for _, sub := range cmd.Commands() {
		subs[sub.Name()] = true
	}
	assert.True(t, subs["generate"], "missing the generate subcommand")
	assert.True(t, subs["verify"], "missing the verify subcommand")
}
