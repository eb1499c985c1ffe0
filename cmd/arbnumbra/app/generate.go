package app

import (
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/lithammer/dedent"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/bgorlick/arbnumbra"
	"github.com/bgorlick/arbnumbra/caseio"
)

// generateOptions holds the settings of the generate command.
type generateOptions struct {
	inputFile        string
	numCases         int
	seed             int64
	output           string
	format           string
	minPrecision     int
	maxPrecision     int
	minExponent      int
	maxExponent      int
	includeSpecial   bool
	includeEdge      bool
	includeSubnormal bool
	includePi        int
	radix            int
	base             int
	verify           bool
}

func newGenerateOptions() *generateOptions {
	return &generateOptions{
		output:       "test_cases",
		format:       "c",
		minPrecision: 1,
		maxPrecision: 324,
		minExponent:  -324,
		maxExponent:  308,
	}
}

// NewCmdGenerate returns the "arbnumbra generate" command.
func NewCmdGenerate(out io.Writer) *cobra.Command {
	opts := newGenerateOptions()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a test case file",
		Long: dedent.Dedent(`
			Generate test cases for arbitrary precision decimal libraries
			and write them to a file.

			Inputs come from three sources that can be combined: a listing
			file with one "num precision" pair per line, the curated
			catalogs of special values, and a seeded random generator.
			Every case records the numeric string, the requested precision,
			and the exactly rounded rendering with trailing zeros trimmed.
		`),
		Example: dedent.Dedent(`
			# Write 100 random cases to test_cases.json
			arbnumbra generate --num-cases 100 --seed 42 --type json

			# Regenerate a listing and add the special value catalogs
			arbnumbra generate --file inputs.txt --include-special --include-edge --type toml --output suite
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(out, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(
		&opts.inputFile, "file", "f", opts.inputFile,
		"Read \"num precision\" inputs from this listing and generate their expected results")
	cmd.PersistentFlags().IntVarP(
		&opts.numCases, "num-cases", "n", opts.numCases,
		"Number of random test cases to generate")
	cmd.PersistentFlags().Int64Var(
		&opts.seed, "seed", opts.seed,
		"Seed for the random generator, 0 derives one from the clock")
	cmd.PersistentFlags().StringVarP(
		&opts.output, "output", "o", opts.output,
		"Output file name, the extension follows the chosen type")
	cmd.PersistentFlags().StringVarP(
		&opts.format, "type", "t", opts.format,
		"Output format, one of json|csv|toml|yaml|c")
	cmd.PersistentFlags().IntVar(
		&opts.minPrecision, "min-precision", opts.minPrecision,
		"Lower bound for random precisions")
	cmd.PersistentFlags().IntVar(
		&opts.maxPrecision, "max-precision", opts.maxPrecision,
		"Upper bound for random precisions")
	cmd.PersistentFlags().IntVar(
		&opts.minExponent, "min-exponent", opts.minExponent,
		"Lower bound for random exponents")
	cmd.PersistentFlags().IntVar(
		&opts.maxExponent, "max-exponent", opts.maxExponent,
		"Upper bound for random exponents")
	cmd.PersistentFlags().BoolVar(
		&opts.includeSpecial, "include-special", false,
		"Include the reserved non-finite tokens")
	cmd.PersistentFlags().BoolVar(
		&opts.includeEdge, "include-edge", false,
		"Include the largest finite double cases")
	cmd.PersistentFlags().BoolVar(
		&opts.includeSubnormal, "include-subnormal", false,
		"Include the smallest subnormal double case")
	cmd.PersistentFlags().IntVar(
		&opts.includePi, "include-pi", opts.includePi,
		"Include pi cases at precisions 1 through this value")
	cmd.PersistentFlags().IntVar(
		&opts.radix, "radix", opts.radix,
		"Radix metadata to attach to generated cases")
	cmd.PersistentFlags().IntVar(
		&opts.base, "base", opts.base,
		"Base metadata to attach to generated cases, requires --radix")
	cmd.PersistentFlags().BoolVar(
		&opts.verify, "verify", false,
		"Verify the written file after generating")

	return cmd
}

func runGenerate(out io.Writer, opts *generateOptions) error {
	format, err := caseio.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if format == caseio.FormatText {
		return errors.Wrap(caseio.ErrReadOnly, "writing text listings")
	}

	cases, err := collectCases(opts)
	if err != nil {
		return err
	}
	if len(cases) == 0 {
		return errors.New("nothing to generate, provide an input file, a catalog flag, or --num-cases")
	}

	path := strings.TrimSuffix(opts.output, filepath.Ext(opts.output)) + format.Ext()
	if err := caseio.WriteFile(path, cases, format); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	fmt.Fprintf(out, "Wrote %d test cases to %s\n", len(cases), path)

	if opts.verify {
		return verifyGenerated(out, path, cases, format)
	}
	return nil
}

// collectCases gathers cases from the input listing, the catalogs, and
// the random generator, in that order.
func collectCases(opts *generateOptions) ([]arbnumbra.Case, error) {
	var cases []arbnumbra.Case

	if opts.inputFile != "" {
		inputs, err := caseio.ReadFile(opts.inputFile)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", opts.inputFile)
		}
		for _, in := range inputs {
			radix, base := in.Radix, in.Base
			if radix == 0 {
				radix = opts.radix
			}
			if base == 0 {
				base = opts.base
			}
			c, err := arbnumbra.GenerateLenient(in.Num, in.Precision, radix, base)
			if err != nil {
				return nil, errors.Wrapf(err, "generating %q", in.Num)
			}
			klog.V(1).Infof("generated %q at precision %d: %s", c.Num, c.Precision, c.Expected)
			cases = append(cases, c)
		}
	}

	if opts.includeSpecial {
		cases = append(cases, arbnumbra.SpecialCases()...)
	}
	if opts.includeEdge {
		cases = append(cases, arbnumbra.EdgeCases()...)
	}
	if opts.includeSubnormal {
		cases = append(cases, arbnumbra.SubnormalCases()...)
	}
	if opts.includePi > 0 {
		cases = append(cases, arbnumbra.PiCases(opts.includePi)...)
	}

	if opts.numCases > 0 {
		seed := opts.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		klog.V(1).Infof("seeding the random generator with %d", seed)
		r := rand.New(rand.NewSource(seed))
		spec := arbnumbra.RandomSpec{
			MinPrecision: opts.minPrecision,
			MaxPrecision: opts.maxPrecision,
			MinExponent:  opts.minExponent,
			MaxExponent:  opts.maxExponent,
			Radix:        opts.radix,
			Base:         opts.base,
		}
		for i := 0; i < opts.numCases; i++ {
			c, err := arbnumbra.RandomCase(r, spec)
			if err != nil {
				return nil, errors.Wrap(err, "generating random cases")
			}
			klog.V(1).Infof("generated %q at precision %d: %s", c.Num, c.Precision, c.Expected)
			cases = append(cases, c)
		}
	}

	return cases, nil
}

// verifyGenerated re-reads the written file and recomputes every expected
// result. C fragments cannot be read back, so for those the batch that
// was just written is checked directly.
func verifyGenerated(out io.Writer, path string, cases []arbnumbra.Case, format caseio.Format) error {
	if format != caseio.FormatC {
		read, err := caseio.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "reading back %s", path)
		}
		cases = read
	}
	rep := arbnumbra.VerifyAll(cases)
	printReport(out, cases, rep, false)
	if rep.Failed > 0 {
		return errors.Errorf("%d of %d test cases failed verification", rep.Failed, len(cases))
	}
	return nil
}
