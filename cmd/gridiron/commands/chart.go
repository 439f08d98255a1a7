package commands

import (
	"log/slog"
	"sort"

	"gridiron-backend/lib/scrapers/espn"
	"gridiron-backend/lib/serviceutil"
	"gridiron-backend/services/depthchart"

	"github.com/spf13/cobra"
)

var chartScrapeTeam *string
var chartScrapeOut *string
var chartMergeOut *string

func init() {
	chartScrapeTeam = chartScrapeCmd.Flags().String("team", "", "Scrape a single team instead of the whole league.")
	chartScrapeOut = chartScrapeCmd.Flags().StringP("out", "o", "depth_chart.csv", "Output depth chart CSV.")
	chartMergeOut = chartMergeCmd.Flags().StringP("out", "o", "merged_chart.csv", "Output merged chart CSV.")

	chartCmd.AddCommand(chartScrapeCmd)
	chartCmd.AddCommand(chartMergeCmd)
	rootCmd.AddCommand(chartCmd)
}

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Scrape and reconcile team depth charts.",
}

var chartScrapeCmd = &cobra.Command{
	Use:   "scrape [--team <name>] [-o <chart.csv>]",
	Short: "Scrapes depth charts into a CSV, one row per depth slot.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		client, err := espn.NewClient()
		if err != nil {
			serviceutil.Fatal("init espn client", err)
		}

		teams := espn.TeamNames()
		sort.Strings(teams)
		if *chartScrapeTeam != "" {
			teams = []string{*chartScrapeTeam}
		}

		var rows []depthchart.Row
		for _, team := range teams {
			if ctx.Err() != nil {
				serviceutil.Fatal("interrupted", ctx.Err())
			}
			abbr, ok := espn.TeamLogoMap[team]
			if !ok {
				slog.WarnContext(ctx, "unknown team, skipping", "team", team)
				continue
			}
			slots, err := client.FetchDepthChart(ctx, espn.DepthChartURL(abbr), team)
			if err != nil {
				slog.ErrorContext(ctx, "depth chart scrape failed", "team", team, "err", err)
				continue
			}
			slog.InfoContext(ctx, "scraped depth chart", "team", team, "slots", len(slots))
			rows = append(rows, depthchart.FromSlots(slots)...)
		}

		if err := depthchart.WriteChart(*chartScrapeOut, rows); err != nil {
			serviceutil.Fatal("write depth chart", err)
		}
		slog.InfoContext(ctx, "wrote depth chart", "path", *chartScrapeOut, "rows", len(rows))
	},
}

var chartMergeCmd = &cobra.Command{
	Use:   "merge <base.csv> <overlay.csv> [-o <merged.csv>]",
	Short: "Merges two depth charts, the overlay's rows winning on duplicate players.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		base, err := depthchart.ReadChart(args[0])
		if err != nil {
			serviceutil.Fatal("read base chart", err)
		}
		overlay, err := depthchart.ReadChart(args[1])
		if err != nil {
			serviceutil.Fatal("read overlay chart", err)
		}

		merged := depthchart.MergeCharts(ctx, base, overlay)
		if err := depthchart.WriteChart(*chartMergeOut, merged); err != nil {
			serviceutil.Fatal("write merged chart", err)
		}
		slog.InfoContext(ctx, "merged charts",
			"base", len(base), "overlay", len(overlay), "merged", len(merged))
	},
}
