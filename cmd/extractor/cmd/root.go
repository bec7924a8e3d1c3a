package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/go-kit/kit/log/level"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTracePinmux/internal/logging"
	"github.com/OpenTraceLab/OpenTracePinmux/internal/output"
	"github.com/OpenTraceLab/OpenTracePinmux/pkg/dtsi"
	"github.com/OpenTraceLab/OpenTracePinmux/pkg/extract"
	"github.com/OpenTraceLab/OpenTracePinmux/pkg/sheet"
)

var (
	// Global flags
	verbose bool

	outputPath string
	layoutPath string
	title      string
)

var rootCmd = &cobra.Command{
	Use:   "extractor <spreadsheet>",
	Short: "Generate a pinmux dtsi from the pinmux template spreadsheet",
	Long: `Read the pin rows of the Jetson Thor pinmux template (.xlsm/.xlsx) and
write the device-tree pin-control fragment: one block per pin, pins with an
assigned function under "common", the rest under "unused_lowpower".

Any unrecognized cell value aborts the run; every offending row is reported
and no output file is written.

Examples:
  extractor Jetson_Thor_Series_Modules_Pinmux_Template_v1.4.xlsm -o pinmux-thor-Before.dtsi
  extractor template.xlsm -o after.dtsi --layout layout.yaml -v`,
	Version:       "0.9.0",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runExtract,
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

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "pinmux-thor.dtsi",
		"output dtsi path")
	rootCmd.Flags().StringVar(&layoutPath, "layout", "",
		"YAML file overriding the template layout (sheet, rows, columns, node)")
	rootCmd.Flags().StringVar(&title, "title", "",
		"title of the generated file header (default: source file name)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	logger := logging.New(cmd.ErrOrStderr(), verbose)
	workbook := args[0]

	layout := sheet.DefaultLayout()
	if layoutPath != "" {
		var err error
		if layout, err = sheet.LoadLayout(layoutPath); err != nil {
			return err
		}
		level.Debug(logger).Log("msg", "loaded layout", "path", layoutPath)
	}

	level.Debug(logger).Log("msg", "opening workbook", "path", workbook, "sheet", layout.Sheet,
		"rows", layout.FirstRow, "to", layout.LastRow)
	wb, err := sheet.OpenWorkbook(workbook, layout)
	if err != nil {
		return err
	}
	defer wb.Close()

	res, err := extract.Extract(wb, layout.Node)
	if err != nil {
		return err
	}
	level.Debug(logger).Log("msg", "extracted", "path", wb.Path(), "pins", res.Description.Len())

	opts := dtsi.WriteOptions{
		Title:  title,
		Banner: "SFIO Pin Configuration",
	}
	if opts.Title == "" {
		opts.Title = "Generated from " + filepath.Base(wb.Path())
	}
	err = output.WriteFile(outputPath, func(w io.Writer) error {
		return dtsi.Write(w, res.Description, opts)
	})
	if err != nil {
		return err
	}

	level.Info(logger).Log("msg", "wrote dtsi", "output", outputPath,
		"used", res.Used, "unused", res.Unused, "skipped", res.Skipped)
	return nil
}
