package commands

import (
	"log/slog"
	"os"

	"gridiron-backend/lib/csvkit"
	"gridiron-backend/lib/scrapers/espn"
	"gridiron-backend/lib/serviceutil"
	"gridiron-backend/lib/timezone"
	"gridiron-backend/services/analysis"
	"gridiron-backend/services/biostats"
	"gridiron-backend/services/report"

	"github.com/spf13/cobra"
)

var bioExpandOut *string
var ageDisparityYear *int
var ageDisparityTop *int

func init() {
	bioExpandOut = bioExpandCmd.Flags().StringP("out", "o", "processed_player_data.csv", "Output processed CSV.")
	ageDisparityYear = ageDisparityCmd.Flags().Int("year", 0, "Year to compute actual ages against, defaults to the current season year.")
	ageDisparityTop = ageDisparityCmd.Flags().Int("top", 5, "How many players to show per direction.")

	bioCmd.AddCommand(bioScrapeCmd)
	bioCmd.AddCommand(bioExpandCmd)
	rootCmd.AddCommand(bioCmd)
	rootCmd.AddCommand(ageDisparityCmd)
}

var bioCmd = &cobra.Command{
	Use:   "bio",
	Short: "Scrape and post-process player bio fields.",
}

var bioScrapeCmd = &cobra.Command{
	Use:   "scrape <results.csv>",
	Short: "Re-scrapes bio fields for rows whose bio data is missing or failed.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		rows, err := analysis.ReadResults(args[0])
		if err != nil {
			serviceutil.Fatal("read results", err)
		}

		client, err := espn.NewClient()
		if err != nil {
			serviceutil.Fatal("init espn client", err)
		}

		updated := 0
		for i, row := range rows {
			if ctx.Err() != nil {
				break
			}
			if bioComplete(row) || !analysis.ValidValue(row.PlayerURL) {
				continue
			}

			profile, err := client.FetchProfile(ctx, row.PlayerURL)
			if err != nil || !profile.HasBio {
				slog.WarnContext(ctx, "bio scrape failed",
					"player", row.PlayerName, "err", err)
				continue
			}

			setBio(&rows[i], profile.Bio)
			updated++
			slog.InfoContext(ctx, "updated bio", "player", row.PlayerName)
		}

		if err := analysis.WriteResults(args[0], rows); err != nil {
			serviceutil.Fatal("write results", err)
		}
		slog.InfoContext(ctx, "bio scrape finished", "updated", updated, "rows", len(rows))
	},
}

func bioComplete(row analysis.Row) bool {
	return analysis.ValidValue(row.PlayerHeightWeight) &&
		analysis.ValidValue(row.PlayerBirthdate) &&
		analysis.ValidValue(row.PlayerCollege) &&
		analysis.ValidValue(row.PlayerDraftInfo) &&
		analysis.ValidValue(row.PlayerOverallStatus)
}

func setBio(row *analysis.Row, bio espn.Bio) {
	if bio.HeightWeight != "" {
		row.PlayerHeightWeight = bio.HeightWeight
	}
	if bio.Birthdate != "" {
		row.PlayerBirthdate = bio.Birthdate
	}
	if bio.College != "" {
		row.PlayerCollege = bio.College
	}
	if bio.DraftInfo != "" {
		row.PlayerDraftInfo = bio.DraftInfo
	}
	if bio.Status != "" {
		row.PlayerOverallStatus = bio.Status
	}
}

var bioExpandCmd = &cobra.Command{
	Use:   "expand <results.csv> [-o <processed.csv>]",
	Short: "Splits combined height/weight and draft info columns into numeric ones.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		rows, err := analysis.ReadResults(args[0])
		if err != nil {
			serviceutil.Fatal("read results", err)
		}

		expanded := biostats.Expand(rows)
		if err := csvkit.WriteAll(*bioExpandOut, biostats.ProcessedFields, expanded); err != nil {
			serviceutil.Fatal("write processed csv", err)
		}
		slog.InfoContext(ctx, "expanded bio stats", "rows", len(expanded), "path", *bioExpandOut)
	},
}

var ageDisparityCmd = &cobra.Command{
	Use:   "age-disparity <joined.csv> [--year <yyyy>] [--top <n>]",
	Short: "Shows the players whose inferred age differs most from their actual age.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rows := readJoinedRows(args[0])

		year := *ageDisparityYear
		if year == 0 {
			year = timezone.SeasonYear(timezone.Now())
		}

		older, younger := biostats.AgeDisparity(rows, year, *ageDisparityTop)
		report.WriteAgeDisparityTables(os.Stdout, older, younger, year)
	},
}
