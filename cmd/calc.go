package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anmacmillan/pensionloss/internal/calculation"
	"github.com/anmacmillan/pensionloss/internal/config"
	"github.com/anmacmillan/pensionloss/internal/ogden"
	"github.com/anmacmillan/pensionloss/internal/output"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run a pension loss calculation from a case file",
	Long: `Loads a YAML case file, resolves the actuarial multiplier (manual value
or demo table lookup), runs the selected calculation method and renders
the report.

Examples:
  # Plain text report to stdout
  pensionloss calc --input case.yaml

  # Timestamped HTML report in the working directory
  pensionloss calc --input case.yaml --format html

  # JSON payload to a named file
  pensionloss calc --input case.yaml --format json --output report.json`,
	RunE: runCalc,
}

func init() {
	f := calcCmd.Flags()
	f.StringP("input", "i", "", "path to the YAML case file (required)")
	f.StringP("format", "f", "console", "report format: "+strings.Join(output.AvailableFormatterNames(), ", "))
	f.StringP("output", "o", "", "write the report to this file instead of stdout/timestamped file")
	_ = calcCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("output")

	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		return eris.Wrapf(output.ErrUnsupportedFormat, "%s (available: %s)",
			format, strings.Join(output.AvailableFormatterNames(), ", "))
	}

	cf, err := config.LoadCaseFile(input)
	if err != nil {
		return err
	}
	for _, w := range cf.Warnings() {
		fmt.Fprintln(os.Stderr, "WARNING:", w)
	}

	eng := calculation.NewEngine()
	eng.SetLogger(config.NewEngineLogger())
	tables := ogden.NewDemoProvider()

	res, err := cf.Evaluate(eng, tables)
	if err != nil {
		return eris.Wrap(err, "calculate")
	}

	payload := output.BuildPayload(output.PayloadInput{
		Method:   cf.Method,
		Claimant: cf.Claimant,
		Tax:      cf.Tax,
		Simple:   cf.Simple,
		Complex:  cf.Complex,
		TableRef: cf.TableRef(tables),
	}, res)

	rendered, err := formatter.Format(payload)
	if err != nil {
		return eris.Wrap(err, "render report")
	}

	switch {
	case outPath != "":
		if err := os.WriteFile(outPath, rendered, 0644); err != nil {
			return eris.Wrapf(err, "write %s", outPath)
		}
		fmt.Println("Report written to", outPath)
	case formatter.Name() == "console":
		fmt.Println(string(rendered))
	default:
		name, err := output.WriteFormatted(formatter, payload)
		if err != nil {
			return eris.Wrap(err, "write report")
		}
		fmt.Println("Report written to", name)
	}

	zap.L().Info("calculation complete",
		zap.String("method", string(cf.Method)),
		zap.String("report_id", payload.ReportID),
		zap.String("gross_total", payload.GrossTotal),
	)

	return nil
}
