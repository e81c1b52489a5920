package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/readmelens/readmelens/internal/lens"
	"github.com/readmelens/readmelens/internal/output"
	"github.com/readmelens/readmelens/internal/scanner"
)

var scanFlagJSON bool

var scanCmd = &cobra.Command{
	Use:   "scan <github-url | local-path>",
	Short: "Scan a repository for onboarding friendliness",
	Long: `Scan fetches a public GitHub repository's default-branch archive (or
reads a local directory), checks it for README sections, doc files,
environment examples, and build tooling, and prints a 0-100 score with
suggestions. GitHub scans are cached per commit; re-scanning an
unchanged repository returns the cached result without a download.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanFlagJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	target := args[0]

	var report *lens.Report
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		svc, _, closeDB, err := openService()
		if err != nil {
			return err
		}
		defer closeDB()

		report, err = svc.ScanRepo(context.Background(), target)
		if err != nil {
			return err
		}
	} else {
		info, err := os.Stat(target)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("%s is neither a repository URL nor a directory", target)
		}
		report = lens.ScanLocal(target)
	}

	if scanFlagJSON || flagJSON {
		return renderReportJSON(report)
	}
	renderReport(report)
	return nil
}

func renderReportJSON(report *lens.Report) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func renderReport(report *lens.Report) {
	name := report.Repo
	if report.Owner != "" {
		name = report.Owner + "/" + report.Repo
	}

	fmt.Println(output.Section("Scan: " + name))
	fmt.Println()

	if report.SHA != "" {
		fmt.Printf(" %s %s@%s\n",
			output.StyleMuted.Render("commit:"),
			report.Branch, shortSHA(report.SHA))
	}
	if report.Cached {
		fmt.Println(output.StyleMuted.Render(" (cached result)"))
	}
	fmt.Printf("\n %s\n", output.ScoreBar(report.Result.Score, 20))

	renderChecklist(report.Result)
	renderSuggestions(report.Result)
}

func renderChecklist(res *scanner.Result) {
	fmt.Println(output.Section("Checklist"))
	fmt.Println()

	tbl := output.NewTable("", "Item", "Found")

	readmePath := ""
	if res.Readme.Path != nil {
		readmePath = *res.Readme.Path
	}
	tbl.AddRow(output.Mark(res.Readme.Path != nil), "README", readmePath)

	for _, key := range []string{
		scanner.KeyLicense, scanner.KeyContributing, scanner.KeyCodeOfConduct,
		scanner.KeySecurity, scanner.KeyChangelog, scanner.KeyEnvExample,
	} {
		path := ""
		if res.Files[key] != nil {
			path = *res.Files[key]
		}
		tbl.AddRow(output.Mark(res.Files[key] != nil), key, path)
	}

	// README sections, sorted for stable output.
	keys := make([]string, 0, len(res.Readme.Sections))
	for key := range res.Readme.Sections {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		tbl.AddRow(output.Mark(res.Readme.Sections[key]), "section: "+key, "")
	}

	tbl.Print()
}

func renderSuggestions(res *scanner.Result) {
	if len(res.Suggestions) == 0 {
		fmt.Println()
		fmt.Println(output.StyleSuccess.Render(" Nothing to suggest. Nice work."))
		return
	}

	fmt.Println(output.Section("Suggestions"))
	fmt.Println()
	for i, s := range res.Suggestions {
		fmt.Printf(" %s %s\n", output.StyleBold.Render(fmt.Sprintf("%d.", i+1)), s)
	}
}

func shortSHA(sha string) string {
	if len(sha) > 12 {
		return sha[:12]
	}
	return sha
}
