package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/readmelens/readmelens/internal/config"
	"github.com/readmelens/readmelens/internal/output"
	"github.com/readmelens/readmelens/internal/store"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check whether the readmelens setup is healthy",
	Long: `Run a series of health checks: configuration loads, the scan cache is
writable, and the GitHub API is reachable. Prints a pass/fail line per
check and a summary.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// doctorCheck holds the result of a single health check.
type doctorCheck struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	checks := []doctorCheck{
		checkDatabase(cfg),
		checkGitHubAPI(cfg),
		checkToken(cfg),
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(checks)
	}

	passed := 0
	fmt.Println(output.Section("Doctor"))
	fmt.Println()
	for _, c := range checks {
		mark := output.Mark(c.Passed)
		if c.Passed {
			passed++
		}
		fmt.Printf(" %s %-18s %s\n", mark, c.Name, output.StyleMuted.Render(c.Message))
	}
	fmt.Printf("\n %d/%d checks passed\n", passed, len(checks))
	return nil
}

// checkDatabase opens (creating if needed) the scan cache.
func checkDatabase(cfg *config.Config) doctorCheck {
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return doctorCheck{Name: "scan cache", Message: err.Error()}
	}
	defer db.Close()

	if _, err := db.ListRecent(1); err != nil {
		return doctorCheck{Name: "scan cache", Message: err.Error()}
	}
	return doctorCheck{Name: "scan cache", Passed: true, Message: cfg.DBPath}
}

// checkGitHubAPI probes the API base for reachability.
func checkGitHubAPI(cfg *config.Config) doctorCheck {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.GitHub.APIBase, nil)
	if err != nil {
		return doctorCheck{Name: "github api", Message: err.Error()}
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return doctorCheck{Name: "github api", Message: err.Error()}
	}
	defer resp.Body.Close()

	return doctorCheck{
		Name:    "github api",
		Passed:  resp.StatusCode < http.StatusInternalServerError,
		Message: fmt.Sprintf("%s -> %d", cfg.GitHub.APIBase, resp.StatusCode),
	}
}

// checkToken reports whether an API token is configured. Not having one
// still passes: it only lowers the rate limit.
func checkToken(cfg *config.Config) doctorCheck {
	if cfg.GitHub.Token == "" {
		return doctorCheck{Name: "github token", Passed: true, Message: "not set (unauthenticated rate limits apply)"}
	}
	return doctorCheck{Name: "github token", Passed: true, Message: "configured"}
}
