package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/yildizm/simcheck/internal/config"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	outputFmt string

	globalConfig *config.Config
)

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "simcheck",
		Short: "Assignment Plagiarism Detection Tool",
		Long: `simcheck compares a set of text submissions and scores each pair by
textual similarity, flagging pairs whose similarity exceeds a configurable
threshold as likely plagiarism.

Documents are normalized (lowercased, punctuation stripped, stopwords
removed), vectorized with TF-IDF over a shared vocabulary, and scored
pairwise with cosine similarity.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loader := config.NewLoader()
			cfg, err := loader.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flag("verbose").Changed {
				cfg.Output.Verbose = verbose
			} else {
				verbose = cfg.Output.Verbose
			}
			if noColor {
				cfg.Output.ColorMode = "never"
			}
			globalConfig = cfg
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "", "report format (csv, json, text, markdown)")

	// Add subcommands
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			fmt.Printf("simcheck %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// GetGlobalConfig returns the configuration loaded by the root command.
func GetGlobalConfig() *config.Config {
	if globalConfig == nil {
		globalConfig = config.DefaultConfig()
	}
	return globalConfig
}

// Global helpers
func isVerbose() bool {
	return verbose
}

func colorEnabled() bool {
	return GetGlobalConfig().Output.ColorMode != "never"
}

func verbosef(format string, args ...interface{}) {
	if isVerbose() {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
