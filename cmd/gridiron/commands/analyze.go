package commands

import (
	"log/slog"

	"gridiron-backend/lib/faceapi"
	"gridiron-backend/lib/scrapers/espn"
	"gridiron-backend/lib/serviceutil"
	"gridiron-backend/lib/sqliteutil"
	"gridiron-backend/lib/telemetry"
	"gridiron-backend/services/analysis"
	"gridiron-backend/services/analysis/db"
	"gridiron-backend/services/depthchart"

	"github.com/spf13/cobra"
)

var analyzeChart *string
var analyzeResults *string
var analyzeTeam *string
var analyzeFresh *bool

func init() {
	analyzeChart = analyzeCmd.Flags().String("chart", "depth_chart.csv", "Depth chart CSV to analyze.")
	analyzeResults = analyzeCmd.Flags().String("results", "results.csv", "Results CSV, appended to as players finish.")
	analyzeTeam = analyzeCmd.Flags().String("team", "", "Only analyze players on this team.")
	analyzeFresh = analyzeCmd.Flags().Bool("fresh", false, "Discard previous results instead of resuming.")

	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [--chart <chart.csv>] [--results <results.csv>] [--team <name>] [--fresh]",
	Short: "Scrapes profiles and runs face inference for every player on a depth chart.",
	Long: `Walks the depth chart row by row: scrapes the player's profile page for
bio fields and a headshot, sends the headshot to the inference service,
and appends an outcome row to the results CSV. Players whose previous
row is already complete are skipped, so an interrupted run picks up
where it left off.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		cfg := readConfig()

		chart, err := depthchart.ReadChart(*analyzeChart)
		if err != nil {
			serviceutil.Fatal("read depth chart", err)
		}
		if *analyzeTeam != "" {
			chart = depthchart.FilterTeam(chart, *analyzeTeam)
		}

		scraper, err := espn.NewClient()
		if err != nil {
			serviceutil.Fatal("init espn client", err)
		}

		runner := analysis.Runner{
			Scraper:  scraper,
			Faces:    faceapi.NewClient(cfg.FaceApi),
			ImageDir: cfg.Paths.ImageDir,
		}

		if cfg.Paths.Database != "" {
			database, err := sqliteutil.OpenDB(db.Schema, cfg.Paths.Database)
			if err != nil {
				serviceutil.Fatal("open results db", err)
			}
			defer database.Close()
			store := analysis.NewStore(database)
			runner.Store = &store
		}

		// long runs benefit from resource gauges
		telemetry.InstrumentPerfStats(ctx)

		if err := runner.Run(ctx, chart, *analyzeResults, *analyzeFresh); err != nil {
			serviceutil.Fatal("analysis run", err)
		}
		slog.InfoContext(ctx, "analysis run finished", "results", *analyzeResults)
	},
}
