package app

import (
	"fmt"
	"io"

	"github.com/lithammer/dedent"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/bgorlick/arbnumbra"
	"github.com/bgorlick/arbnumbra/caseio"
)

// NewCmdVerify returns the "arbnumbra verify" command.
func NewCmdVerify(out io.Writer) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "verify FILE",
		Short: "Verify a previously generated test case file",
		Long: dedent.Dedent(`
			Verify recomputes the expected result of every test case in a
			file and compares it against the recorded one. The format is
			inferred from the file extension.

			Failures are printed with the recorded and recomputed results,
			and the command exits with a non-zero status if any case fails.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(out, args[0], verbose)
		},
	}

	cmd.PersistentFlags().BoolVar(
		&verbose, "verbose", false,
		"Print a line for every passing case as well")

	return cmd
}

func runVerify(out io.Writer, path string, verbose bool) error {
	cases, err := caseio.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	klog.V(1).Infof("read %d case(s) from %s", len(cases), path)

	for i, c := range cases {
		if c.Expected == "" {
			return errors.Errorf("case %d (%q) carries no expected result", i+1, c.Num)
		}
	}

	rep := arbnumbra.VerifyAll(cases)
	printReport(out, cases, rep, verbose)
	if rep.Failed > 0 {
		return errors.Errorf("%d of %d test cases failed verification", rep.Failed, len(cases))
	}
	return nil
}

// printReport walks the batch in order, interleaving failures from the
// report with the cases that passed.
func printReport(out io.Writer, cases []arbnumbra.Case, rep arbnumbra.Report, verbose bool) {
	next := 0
	for _, c := range cases {
		if next < len(rep.Failures) && rep.Failures[next].Case == c {
			f := rep.Failures[next]
			next++
			if f.Err != nil {
				fmt.Fprintf(out, "FAIL: %s\nError: %v\n", f.Case.Num, f.Err)
				continue
			}
			fmt.Fprintf(out, "FAIL: %s\nExpected: %s\nActual: %s\n", f.Case.Num, f.Case.Expected, f.Actual)
			continue
		}
		if verbose {
			fmt.Fprintf(out, "PASS: %s\n", c.Num)
		}
	}
	fmt.Fprintf(out, "%d passed, %d failed\n", rep.Passed, rep.Failed)
}
