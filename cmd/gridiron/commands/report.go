package commands

import (
	"log/slog"
	"os"
	"sort"

	"gridiron-backend/lib/scrapers/espn"
	"gridiron-backend/lib/serviceutil"
	"gridiron-backend/services/analysis"
	"gridiron-backend/services/report"

	"github.com/spf13/cobra"
)

var reportChartsOut *string
var reportHtmlOut *string

func init() {
	reportChartsOut = reportChartsCmd.Flags().StringP("out", "o", "charts.html", "Output charts page.")
	reportHtmlOut = reportHtmlCmd.Flags().StringP("out", "o", "emotions_report.html", "Output report file.")

	reportCmd.AddCommand(reportChartsCmd)
	reportCmd.AddCommand(reportHtmlCmd)
	reportCmd.AddCommand(reportEmailCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(biasCmd)
	rootCmd.AddCommand(logosCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render demographic and emotion reports from a joined CSV.",
}

// readJoinedRows loads a joined CSV and canonicalizes team name
// variants so per-team aggregations don't split.
func readJoinedRows(path string) []analysis.JoinedRow {
	rows, err := analysis.ReadJoined(path)
	if err != nil {
		serviceutil.Fatal("read joined csv", err)
	}
	return report.CanonicalTeamNames(rows)
}

var reportChartsCmd = &cobra.Command{
	Use:   "charts <joined.csv> [-o <charts.html>]",
	Short: "Renders the chart page: emotion bar, team happiness scatter, race pies.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		rows := readJoinedRows(args[0])
		if err := report.RenderCharts(*reportChartsOut, rows); err != nil {
			serviceutil.Fatal("render charts", err)
		}
		slog.InfoContext(ctx, "rendered charts", "path", *reportChartsOut)

		report.WriteRaceCompositionTables(os.Stdout, rows)
	},
}

var reportHtmlCmd = &cobra.Command{
	Use:   "html <joined.csv> [-o <report.html>]",
	Short: "Renders the featured-players HTML report with inlined headshots.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		cfg := readConfig()

		rows := readJoinedRows(args[0])
		scraper, err := espn.NewClient()
		if err != nil {
			serviceutil.Fatal("init espn client", err)
		}

		err = report.WriteHTML(ctx, *reportHtmlOut, rows, scraper, cfg.Paths.ImageDir)
		if err != nil {
			serviceutil.Fatal("render report", err)
		}
		slog.InfoContext(ctx, "rendered report", "path", *reportHtmlOut)
	},
}

var reportEmailCmd = &cobra.Command{
	Use:   "email <report.html>",
	Short: "Emails a rendered report to the configured recipients.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		cfg := readConfig()

		if err := report.Email(ctx, cfg.Email, args[0]); err != nil {
			serviceutil.Fatal("send report email", err)
		}
		slog.InfoContext(ctx, "report emailed", "to", cfg.Email.To)
	},
}

var biasCmd = &cobra.Command{
	Use:   "bias <joined.csv>",
	Short: "Compares inferred emotion distributions across race groups.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rows := readJoinedRows(args[0])

		report.WriteEmotionByRaceTable(os.Stdout, rows)
		report.WriteTeamTables(os.Stdout, rows)
	},
}

var logosCmd = &cobra.Command{
	Use:   "logos",
	Short: "Downloads every team logo into the cache directory.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		cfg := readConfig()

		client, err := espn.NewClient()
		if err != nil {
			serviceutil.Fatal("init espn client", err)
		}

		teams := espn.TeamNames()
		sort.Strings(teams)
		for _, team := range teams {
			if ctx.Err() != nil {
				break
			}
			path, err := client.FetchTeamLogo(ctx, cfg.Paths.LogoCacheDir, team)
			if err != nil {
				slog.ErrorContext(ctx, "logo download failed", "team", team, "err", err)
				continue
			}
			slog.InfoContext(ctx, "cached logo", "team", team, "path", path)
		}
	},
}
