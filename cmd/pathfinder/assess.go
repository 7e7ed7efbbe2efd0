package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jonathan/pathfinder/internal/analysis"
	"github.com/jonathan/pathfinder/internal/answers"
	"github.com/jonathan/pathfinder/internal/config"
	"github.com/jonathan/pathfinder/internal/logging"
	"github.com/jonathan/pathfinder/internal/observability"
	"github.com/jonathan/pathfinder/internal/remote"
	"github.com/jonathan/pathfinder/internal/submission"
	"github.com/jonathan/pathfinder/internal/tui"
	"github.com/jonathan/pathfinder/internal/wizard"
)

var (
	assessAPIURL  string
	assessOffline bool
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run the interactive self-assessment",
	Long: `Walk through the PathFinder questionnaire in the terminal and submit it for analysis.
With --offline the answers are analyzed in-process and no API server is needed.`,
	Args: cobra.NoArgs,
	RunE: runAssess,
}

func init() {
	assessCmd.Flags().StringVar(&assessAPIURL, "api-url", "", "Analysis API base URL (overrides client.api_url)")
	assessCmd.Flags().BoolVar(&assessOffline, "offline", false, "Analyze in-process with the fallback recommendation")
	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, _ []string) error {
	analyzer, err := newAnalyzer(appConfig, assessAPIURL, assessOffline)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so the session logs nowhere.
	sessionLog := logging.NewNop()
	status := tui.NewStatus()
	coordinator := submission.New(analyzer,
		submission.WithNotifier(status),
		submission.WithLogger(sessionLog),
	)
	ctrl := wizard.New(answers.New(), coordinator, sessionLog)

	p := tea.NewProgram(tui.New(cmd.Context(), ctrl, status), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}

	if rec := ctrl.Result(); rec != nil {
		observability.NewPrinter(cmd.OutOrStdout()).PrintRecommendation(rec, ctrl.Analysis())
	}
	return nil
}

// newAnalyzer returns the in-process service when offline, otherwise an HTTP
// client for the configured API.
func newAnalyzer(cfg *config.Config, apiURL string, offline bool) (submission.Analyzer, error) {
	if offline {
		return analysis.NewService(nil), nil
	}

	if apiURL == "" {
		apiURL = cfg.Client.APIURL
	}
	client, err := remote.New(apiURL, &remote.Options{Timeout: cfg.Client.Timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return client, nil
}
