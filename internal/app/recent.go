package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/readmelens/readmelens/internal/output"
)

var recentFlagLimit int

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently cached scans",
	RunE:  runRecent,
}

func init() {
	recentCmd.Flags().IntVar(&recentFlagLimit, "limit", 20, "Maximum number of rows")
	rootCmd.AddCommand(recentCmd)
}

func runRecent(cmd *cobra.Command, args []string) error {
	svc, _, closeDB, err := openService()
	if err != nil {
		return err
	}
	defer closeDB()

	recent, err := svc.Recent(recentFlagLimit)
	if err != nil {
		return fmt.Errorf("listing recent scans: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(recent)
	}

	if len(recent) == 0 {
		fmt.Println(output.StyleMuted.Render("No scans cached yet. Run 'readmelens scan <url>' first."))
		return nil
	}

	fmt.Println(output.Section("Recent scans"))
	fmt.Println()

	tbl := output.NewTable("Repository", "Branch", "Commit", "Scanned")
	for _, r := range recent {
		tbl.AddRow(
			r.Owner+"/"+r.Repo,
			r.Branch,
			shortSHA(r.SHA),
			formatRelativeTime(r.ScannedAt),
		)
	}
	tbl.Print()
	return nil
}

// formatRelativeTime converts a unix timestamp to a human-friendly
// relative time string like "2d ago", "12h ago", "just now".
func formatRelativeTime(unix int64) string {
	d := time.Since(time.Unix(unix, 0))
	switch {
	case d < time.Hour:
		return "just now"
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
