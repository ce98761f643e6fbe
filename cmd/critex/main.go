package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/unbound-force/critex/internal/critique"
	"github.com/unbound-force/critex/internal/report"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "critex",
		Short: "Critex — problem critique report exporter",
		Long: `Critex converts a JSON collection of problem critique records
into a LaTeX report document with pass/fail/removed summary
statistics and a section per record.`,
		Version: version,
	}

	root.AddCommand(newExportCmd())
	root.AddCommand(newSummaryCmd())
	root.AddCommand(newSchemaCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// exportParams holds the parsed flags for the export command.
type exportParams struct {
	critiquesFile string
	outputFile    string
	configFile    string
	stdout        io.Writer
	stderr        io.Writer
}

// runExport is the extracted, testable body of the export command.
func runExport(p exportParams) error {
	cfg, err := loadConfig(p.configFile, p.critiquesFile, p.outputFile)
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.CritiquesFile); err != nil {
		return fmt.Errorf("critiques file not found at %q", cfg.CritiquesFile)
	}

	data, err := os.ReadFile(cfg.CritiquesFile)
	if err != nil {
		return fmt.Errorf("reading critiques file: %w", err)
	}

	// Schema mismatches degrade to placeholder text in the report,
	// so validation only warns.
	if err := critique.ValidateSchema(data); err != nil {
		logger.Warn("critiques file does not match the input schema", "err", err)
	}

	records, err := critique.Parse(data)
	if err != nil {
		return err
	}
	logger.Info("loaded critiques", "records", len(records))

	if dir := filepath.Dir(cfg.OutputFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	out, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	if err := report.WriteDocument(out, records); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	logger.Info("report generated", "records", len(records), "path", cfg.OutputFile)
	fmt.Fprintf(p.stdout, "LaTeX critiques report written to %s\n", cfg.OutputFile)
	fmt.Fprintln(p.stdout, "Compile it with a LaTeX distribution (e.g. pdflatex) to produce a PDF.")

	return nil
}

func newExportCmd() *cobra.Command {
	var (
		critiquesFile string
		outputFile    string
		configFile    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export critique records to a LaTeX report",
		Long: `Read a critiques JSON file and write a LaTeX document containing
summary statistics and a detailed section per record.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(exportParams{
				critiquesFile: critiquesFile,
				outputFile:    outputFile,
				configFile:    configFile,
				stdout:        os.Stdout,
				stderr:        os.Stderr,
			})
		},
	}

	cmd.Flags().StringVar(&critiquesFile, "critiques-file", "",
		fmt.Sprintf("path to the critiques JSON file (default %q)", defaultCritiquesFile))
	cmd.Flags().StringVar(&outputFile, "output-tex-file", "",
		fmt.Sprintf("path to the output LaTeX file (default %q)", defaultOutputFile))
	cmd.Flags().StringVar(&configFile, "config", "",
		"path to a config file (default .critex.yaml if present)")

	return cmd
}

// summaryParams holds the parsed flags for the summary command.
type summaryParams struct {
	critiquesFile string
	configFile    string
	format        string
	interactive   bool
	stdout        io.Writer
	stderr        io.Writer
}

// runSummary is the extracted, testable body of the summary command.
func runSummary(p summaryParams) error {
	if p.format != "text" && p.format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", p.format)
	}

	cfg, err := loadConfig(p.configFile, p.critiquesFile, "")
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.CritiquesFile); err != nil {
		return fmt.Errorf("critiques file not found at %q", cfg.CritiquesFile)
	}

	records, err := critique.LoadFile(cfg.CritiquesFile)
	if err != nil {
		return err
	}
	logger.Info("loaded critiques", "records", len(records))

	if p.interactive {
		return runInteractiveSummary(records)
	}

	switch p.format {
	case "json":
		return report.WriteJSON(p.stdout, records)
	default:
		return report.WriteText(p.stdout, records)
	}
}

func newSummaryCmd() *cobra.Command {
	var (
		critiquesFile string
		configFile    string
		format        string
		interactive   bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print critique summary statistics",
		Long: `Tally pass/fail/removed outcomes per critique category and print
the summary table without generating a LaTeX document.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(summaryParams{
				critiquesFile: critiquesFile,
				configFile:    configFile,
				format:        format,
				interactive:   interactive,
				stdout:        os.Stdout,
				stderr:        os.Stderr,
			})
		},
	}

	cmd.Flags().StringVar(&critiquesFile, "critiques-file", "",
		fmt.Sprintf("path to the critiques JSON file (default %q)", defaultCritiquesFile))
	cmd.Flags().StringVar(&configFile, "config", "",
		"path to a config file (default .critex.yaml if present)")
	cmd.Flags().StringVar(&format, "format", "text",
		"output format: text or json")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"launch interactive TUI for browsing records")

	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for the critiques input file",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the expected
structure of the critiques JSON input. Useful for validating
upstream pipeline output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), critique.Schema)
			return err
		},
	}
}
