// Package app contains the Cobra command tree for readmelens.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/readmelens/readmelens/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "readmelens",
	Short: "Onboarding-friendliness scanner for public repositories",
	Long: `readmelens fetches a public GitHub repository, runs a static checklist
over its tree (README sections, LICENSE, CONTRIBUTING, documented
environment variables, build tooling), and produces a 0-100 score with
remediation suggestions. Scan results are cached per commit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.AutoDetect()
		if flagNoColor {
			output.SetNoColor(true)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("readmelens", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  scan        Scan a GitHub URL or local directory")
		fmt.Println("  serve       Run the web UI")
		fmt.Println("  recent      List recently cached scans")
		fmt.Println("  onboarding  Print the generated onboarding doc for a cached scan")
		fmt.Println("  doctor      Check whether the readmelens setup is healthy")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/readmelens/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}
