package commands

import (
	"log/slog"

	"gridiron-backend/lib/serviceutil"
	"gridiron-backend/services/analysis"
	"gridiron-backend/services/depthchart"

	"github.com/spf13/cobra"
)

var resultsMergeOut *string
var resultsJoinChart *string
var resultsJoinOut *string

func init() {
	resultsMergeOut = resultsMergeCmd.Flags().StringP("out", "o", "merged_results.csv", "Output merged results CSV.")
	resultsJoinChart = resultsJoinCmd.Flags().String("chart", "depth_chart.csv", "Master depth chart CSV.")
	resultsJoinOut = resultsJoinCmd.Flags().StringP("out", "o", "master_with_analysis.csv", "Output joined CSV.")

	resultsCmd.AddCommand(resultsMergeCmd)
	resultsCmd.AddCommand(resultsJoinCmd)
	rootCmd.AddCommand(resultsCmd)
}

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Reconcile results CSVs from different runs.",
}

var resultsMergeCmd = &cobra.Command{
	Use:   "merge <results.csv> [more.csv...] [-o <merged.csv>]",
	Short: "Merges results files into one row per player, earlier files taking priority.",
	Long: `Rows are reconciled by PlayerUID. When the same player appears more
than once, the first row with valid inference data wins; a failed row
never replaces a successful one.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		var all []analysis.Row
		for _, path := range args {
			rows, err := analysis.ReadResults(path)
			if err != nil {
				serviceutil.Fatal("read results", err)
			}
			slog.InfoContext(ctx, "loaded results", "path", path, "rows", len(rows))
			all = append(all, rows...)
		}

		merged := analysis.MergeRows(ctx, all)
		if err := analysis.WriteResults(*resultsMergeOut, merged); err != nil {
			serviceutil.Fatal("write merged results", err)
		}
		slog.InfoContext(ctx, "merged results",
			"input_rows", len(all), "merged_rows", len(merged), "path", *resultsMergeOut)
	},
}

var resultsJoinCmd = &cobra.Command{
	Use:   "join <results.csv> [--chart <chart.csv>] [-o <joined.csv>]",
	Short: "Left-joins the master depth chart with analysis results by PlayerUID.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		chart, err := depthchart.ReadChart(*resultsJoinChart)
		if err != nil {
			serviceutil.Fatal("read depth chart", err)
		}
		results, err := analysis.ReadResults(args[0])
		if err != nil {
			serviceutil.Fatal("read results", err)
		}

		joined := analysis.JoinChart(chart, results)
		if err := analysis.WriteJoined(*resultsJoinOut, joined); err != nil {
			serviceutil.Fatal("write joined csv", err)
		}
		slog.InfoContext(ctx, "joined chart with results",
			"chart_rows", len(chart), "result_rows", len(results), "path", *resultsJoinOut)
	},
}
