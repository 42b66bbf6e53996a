package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wgoal/wealth-planner/internal/calculation"
	"github.com/wgoal/wealth-planner/internal/config"
	"github.com/wgoal/wealth-planner/internal/output"
)

var version = "dev"

// stderrLogger routes engine diagnostics to stderr so report output on
// stdout stays clean.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) { fmt.Fprintf(os.Stderr, format+"\n", args...) }
func (stderrLogger) Infof(format string, args ...any)  { fmt.Fprintf(os.Stderr, format+"\n", args...) }
func (stderrLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
func (stderrLogger) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "wealthplan",
		Short:   "Personal-finance goal planning calculator",
		Long:    "wealthplan computes the compound return or the monthly savings required to reach a wealth target, and exports multi-year projections as console, CSV, JSON, HTML or PDF reports.",
		Version: version,
	}
	root.AddCommand(newPlanCmd(), newInitCmd(), newFormatsCmd())
	return root
}

func newPlanCmd() *cobra.Command {
	var (
		planFile     string
		assetsCSV    string
		assetsColumn string
		format       string
		save         bool
		debug        bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Evaluate a goal plan and render the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			input, err := parser.LoadFromFile(planFile)
			if err != nil {
				return err
			}

			// Optional: derive current net worth by summing an asset export.
			// The value column is an explicit mapping, never guessed.
			if assetsCSV != "" {
				importer := &config.AssetImport{ValueColumn: assetsColumn}
				total, err := importer.LoadTotal(assetsCSV)
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "assets import: net worth %s from %s\n", total.StringFixed(2), assetsCSV)
				input.CurrentNetWorth = total
				if err := parser.ValidatePlanInput(input); err != nil {
					return fmt.Errorf("plan validation failed after assets import: %w", err)
				}
			}

			engine := calculation.NewPlanEngine()
			engine.Debug = debug
			if debug {
				engine.SetLogger(stderrLogger{})
			}

			summary, err := engine.RunPlan(cmd.Context(), input)
			if err != nil {
				return err
			}

			if save {
				filename, err := output.GenerateReport(summary, format)
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "report written to %s\n", filename)
				return nil
			}

			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("%w: %q. Try one of: %s", output.ErrUnsupportedFormat, format,
					"console, csv, json, html, pdf")
			}
			data, err := f.Format(summary)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&planFile, "config", "c", "plan.yaml", "plan input file (YAML)")
	cmd.Flags().StringVar(&assetsCSV, "assets-csv", "", "CSV asset export to sum into current net worth")
	cmd.Flags().StringVar(&assetsColumn, "assets-column", "Value", "header of the asset-value column in --assets-csv")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "report format (console, csv, json, html, pdf)")
	cmd.Flags().BoolVar(&save, "save", false, "write the report to a timestamped file instead of stdout")
	cmd.Flags().BoolVar(&debug, "debug", false, "print the calculation breakdown to stderr")
	return cmd
}

func newInitCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example plan file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(out); err == nil {
				return fmt.Errorf("%s already exists, refusing to overwrite", out)
			}
			example := config.NewInputParser().CreateExamplePlan()
			if err := config.SavePlan(example, out); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "example plan written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "plan.yaml", "where to write the example plan")
	return cmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List available report formats",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Formats:")
			for _, name := range output.AvailableFormatterNames() {
				fmt.Println("  " + name)
			}
			fmt.Println("Aliases:")
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Printf("  %s -> %s\n", alias, output.NormalizeFormatName(alias))
			}
		},
	}
}
