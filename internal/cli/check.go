package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yildizm/simcheck/internal/checker"
	"github.com/yildizm/simcheck/internal/config"
	"github.com/yildizm/simcheck/internal/corpus"
	"github.com/yildizm/simcheck/internal/report"
	"github.com/yildizm/simcheck/internal/ui"
)

var (
	checkFiles      []string
	checkThreshold  float64
	checkOutputFile string
	checkTUI        bool
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [directory]",
		Short: "Compare submissions and report likely plagiarism",
		Long: `Compare every pair of submissions in a directory (or an explicit file
list) and report their similarity. Pairs scoring strictly above the threshold
are flagged as plagiarized.

The csv format writes the persisted report file; json, text, and markdown
print to stdout unless --output-file is given.

Examples:
  simcheck check assignments
  simcheck check --threshold 0.8 submissions
  simcheck check -f alice.txt bob.txt carol.txt
  simcheck check -o json assignments
  simcheck check --tui assignments`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}

	cmd.Flags().StringSliceVarP(&checkFiles, "files", "f", nil, "explicit submission files instead of a directory")
	cmd.Flags().Float64VarP(&checkThreshold, "threshold", "t", config.DefaultThreshold, "plagiarism threshold in [0,1]")
	cmd.Flags().StringVar(&checkOutputFile, "output-file", "", "report destination file")
	cmd.Flags().BoolVar(&checkTUI, "tui", false, "browse results interactively")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	threshold := resolveThreshold(cmd, cfg)
	format := resolveFormat(cfg)

	documents, err := loadSubmissions(args, cfg)
	if err != nil {
		return err
	}
	if len(documents) == 0 {
		return fmt.Errorf("no supported submission files found")
	}
	verbosef("Loaded %d submissions\n", len(documents))

	result := checker.Run(documents, cfg.Tokenizer.ExtraStopWords...)

	rep := &report.Report{
		Results:       result.Pairs,
		Threshold:     threshold,
		DocumentCount: len(documents),
	}

	if checkTUI {
		return ui.Browse(rep)
	}

	return writeReport(rep, format, resolveOutputFile(format, cfg))
}

// resolveThreshold picks the threshold from flag or config. Values outside
// [0,1] fall back to the default with a warning instead of failing the run.
func resolveThreshold(cmd *cobra.Command, cfg *config.Config) float64 {
	threshold := checkThreshold
	if !cmd.Flag("threshold").Changed {
		threshold = cfg.Report.Threshold
	}
	if threshold < 0.0 || threshold > 1.0 {
		fmt.Fprintf(os.Stderr, "Warning: threshold %v outside [0,1], using default %v\n",
			threshold, config.DefaultThreshold)
		threshold = config.DefaultThreshold
	}
	return threshold
}

func resolveFormat(cfg *config.Config) string {
	if outputFmt != "" {
		return outputFmt
	}
	if cfg.Report.Format != "" {
		return cfg.Report.Format
	}
	return "csv"
}

// resolveOutputFile returns the report destination. The csv format defaults
// to the configured report file; other formats default to stdout.
func resolveOutputFile(format string, cfg *config.Config) string {
	if checkOutputFile != "" {
		return checkOutputFile
	}
	if format == "csv" {
		return cfg.Report.OutputFile
	}
	return ""
}

// loadSubmissions reads documents from the explicit file list, the
// directory argument, or the configured default directory.
func loadSubmissions(args []string, cfg *config.Config) ([]*corpus.Document, error) {
	scanner := corpus.NewScanner(cfg.Input.ExcludeDirs...)

	if len(checkFiles) > 0 {
		return scanner.ScanFiles(checkFiles)
	}

	dir := cfg.Input.Directory
	if len(args) > 0 {
		dir = args[0]
	}
	verbosef("Scanning directory: %s\n", dir)
	return scanner.ScanDirectory(dir)
}

// writeReport renders the report and sends it to a file or stdout. File
// output is paired with a short console summary.
func writeReport(rep *report.Report, format, outputFile string) error {
	formatter, err := report.New(format, colorEnabled() && outputFile == "")
	if err != nil {
		return err
	}

	data, err := formatter.Format(rep)
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}

	if outputFile == "" {
		fmt.Print(string(data))
		return nil
	}

	if err := os.WriteFile(outputFile, data, 0o600); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", outputFile, err)
	}
	fmt.Printf("Report written to: %s (%d pairs, %d flagged)\n",
		outputFile, len(rep.Results), rep.FlaggedCount())
	return nil
}
