package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/yildizm/simcheck/internal/checker"
	"github.com/yildizm/simcheck/internal/config"
	"github.com/yildizm/simcheck/internal/corpus"
	"github.com/yildizm/simcheck/internal/report"
)

var watchThreshold float64

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [directory]",
		Short: "Watch a submissions directory and re-check on changes",
		Long: `Monitor a submissions directory and re-run the comparison whenever a
submission file is added, modified, or removed. Results are printed to the
terminal after every change. Press Ctrl+C to stop watching.

Examples:
  simcheck watch assignments
  simcheck watch --threshold 0.8 submissions`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWatch,
	}

	cmd.Flags().Float64VarP(&watchThreshold, "threshold", "t", config.DefaultThreshold, "plagiarism threshold in [0,1]")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	dir := cfg.Input.Directory
	if len(args) > 0 {
		dir = args[0]
	}

	threshold := watchThreshold
	if !cmd.Flag("threshold").Changed {
		threshold = cfg.Report.Threshold
	}
	if threshold < 0.0 || threshold > 1.0 {
		fmt.Fprintf(os.Stderr, "Warning: threshold %v outside [0,1], using default %v\n",
			threshold, config.DefaultThreshold)
		threshold = config.DefaultThreshold
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer cleanupWatcher(watcher)

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	fmt.Printf("Watching %s (threshold %.0f%%), press Ctrl+C to stop\n", dir, threshold*100)

	// Initial comparison before any change arrives.
	if err := runComparison(dir, threshold, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	return watchLoop(watcher, dir, threshold, cfg)
}

func watchLoop(watcher *fsnotify.Watcher, dir string, threshold float64, cfg *config.Config) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event) {
				continue
			}
			verbosef("Change detected: %s %s\n", event.Op, event.Name)
			if err := runComparison(dir, threshold, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Warning: watcher error: %v\n", err)

		case <-sigChan:
			fmt.Println("\nStopping watch...")
			return nil
		}
	}
}

// relevantEvent filters watcher noise down to changes of submission files.
func relevantEvent(event fsnotify.Event) bool {
	if !corpus.IsSupported(filepath.Base(event.Name)) {
		return false
	}
	return event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Remove) ||
		event.Op.Has(fsnotify.Rename)
}

func runComparison(dir string, threshold float64, cfg *config.Config) error {
	scanner := corpus.NewScanner(cfg.Input.ExcludeDirs...)
	documents, err := scanner.ScanDirectory(dir)
	if err != nil {
		return err
	}
	if len(documents) < 2 {
		fmt.Printf("Waiting for submissions (%d so far)...\n", len(documents))
		return nil
	}

	result := checker.Run(documents, cfg.Tokenizer.ExtraStopWords...)
	rep := &report.Report{
		Results:       result.Pairs,
		Threshold:     threshold,
		DocumentCount: len(documents),
	}

	formatter, err := report.New("text", colorEnabled())
	if err != nil {
		return err
	}
	data, err := formatter.Format(rep)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

// cleanupWatcher safely closes watcher with error logging
func cleanupWatcher(watcher *fsnotify.Watcher) {
	if err := watcher.Close(); err != nil && isVerbose() {
		fmt.Fprintf(os.Stderr, "Warning: failed to close watcher: %v\n", err)
	}
}
