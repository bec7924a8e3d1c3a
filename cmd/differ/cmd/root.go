package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/kit/log/level"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTracePinmux/internal/logging"
	"github.com/OpenTraceLab/OpenTracePinmux/internal/output"
	"github.com/OpenTraceLab/OpenTracePinmux/pkg/delta"
	"github.com/OpenTraceLab/OpenTracePinmux/pkg/dtsi"
)

var (
	// Global flags
	verbose bool

	outputPath string
)

var rootCmd = &cobra.Command{
	Use:   "differ <before.dtsi> <after.dtsi>",
	Short: "Write a dtsi holding only the pin blocks that changed",
	Long: `Compare two pinmux dtsi files generated by extractor and write a third
one containing only the pins of the "after" file that are new or whose
configuration changed. Pin comments are taken from "after" and ignored when
comparing.

Pins that only exist in "before" cannot be expressed in the delta; they are
reported as a warning.

Examples:
  differ pinmux-thor-Before.dtsi pinmux-thor-After.dtsi -o pinmux-thor-Delta.dtsi`,
	Version:       "0.9.0",
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDiff,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logging.Error(logging.New(rootCmd.ErrOrStderr(), verbose), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "pinmux-thor-Delta.dtsi",
		"output delta dtsi path")
}

func runDiff(cmd *cobra.Command, args []string) error {
	logger := logging.New(cmd.ErrOrStderr(), verbose)
	beforePath, afterPath := args[0], args[1]

	before, err := dtsi.ReadFile(beforePath)
	if err != nil {
		return err
	}
	level.Debug(logger).Log("msg", "parsed", "path", beforePath, "pins", before.Len())

	after, err := dtsi.ReadFile(afterPath)
	if err != nil {
		return err
	}
	level.Debug(logger).Log("msg", "parsed", "path", afterPath, "pins", after.Len())

	changed, sum, err := delta.Compute(before, after)
	if err != nil {
		return err
	}
	if !changed.Canonical() {
		level.Debug(logger).Log("msg", "delta pins are written grouped by section, common first")
	}
	if len(sum.Removed) > 0 {
		level.Warn(logger).Log("msg", "pins missing from after are not represented in the delta",
			"pins", strings.Join(sum.Removed, ","))
	}

	opts := dtsi.WriteOptions{
		Title:  fmt.Sprintf("Delta of %s against %s", filepath.Base(afterPath), filepath.Base(beforePath)),
		Banner: "Only pins that changed vs. BEFORE",
	}
	err = output.WriteFile(outputPath, func(w io.Writer) error {
		return dtsi.Write(w, changed, opts)
	})
	if err != nil {
		return err
	}

	if changed.Len() == 0 {
		level.Info(logger).Log("msg", "no pinmux differences detected", "output", outputPath)
		return nil
	}
	level.Info(logger).Log("msg", "wrote delta", "output", outputPath,
		"changed", sum.Changed, "added", sum.Added, "unchanged", sum.Unchanged)
	return nil
}
