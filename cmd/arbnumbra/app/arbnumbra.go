// Package app implements the arbnumbra command line tool, which generates
// and verifies test cases for arbitrary precision decimal libraries.
package app

import (
	"flag"
	"io"
	"os"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

// Run creates and executes the arbnumbra command.
func Run() error {
	var allFlags flag.FlagSet
	klog.InitFlags(&allFlags)
	// Only expose the verbosity flag. This prevents new klog flags from
	// being accidentally picked up.
	allFlags.VisitAll(func(f *flag.Flag) {
		switch f.Name {
		case "v":
			flag.CommandLine.Var(f.Value, f.Name, f.Usage)
		}
	})
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)

	cmd := NewArbnumbraCommand(os.Stdout)
	cmd.PersistentFlags().AddFlagSet(pflag.CommandLine)
	return cmd.Execute()
}

// NewArbnumbraCommand returns the root of the arbnumbra command tree.
func NewArbnumbraCommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arbnumbra",
		Short: "Generate and verify test cases for arbitrary precision decimal libraries",
		Long: dedent.Dedent(`
			arbnumbra produces test case batches for exercising arbitrary
			precision decimal implementations. Each case pairs a numeric
			string and a precision with the exactly rounded rendering a
			conforming library is expected to produce.

			Cases can be drawn from an input listing, from curated special
			value catalogs, or from a seeded random generator, and written
			as JSON, CSV, TOML, YAML, or a C array. A generated file can be
			checked later by recomputing every expected result.
		`),
		SilenceUsage: true,
	}
	cmd.AddCommand(NewCmdGenerate(out))
	cmd.AddCommand(NewCmdVerify(out))
	return cmd
}
