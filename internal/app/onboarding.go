package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var onboardingFlagSHA string

var onboardingCmd = &cobra.Command{
	Use:   "onboarding <owner>/<repo>",
	Short: "Print the generated onboarding doc for a cached scan",
	Long: `Onboarding renders a starter onboarding checklist document from a cached
scan result. Without --sha the most recent scan of the repository is
used. The repository must have been scanned first.`,
	Args: cobra.ExactArgs(1),
	RunE: runOnboarding,
}

func init() {
	onboardingCmd.Flags().StringVar(&onboardingFlagSHA, "sha", "", "Use the scan of this exact commit")
	rootCmd.AddCommand(onboardingCmd)
}

func runOnboarding(cmd *cobra.Command, args []string) error {
	owner, repo, ok := strings.Cut(args[0], "/")
	if !ok || owner == "" || repo == "" {
		return fmt.Errorf("expected <owner>/<repo>, got %q", args[0])
	}

	svc, _, closeDB, err := openService()
	if err != nil {
		return err
	}
	defer closeDB()

	doc, err := svc.Onboarding(owner, repo, onboardingFlagSHA)
	if err != nil {
		return err
	}

	fmt.Print(doc)
	return nil
}
