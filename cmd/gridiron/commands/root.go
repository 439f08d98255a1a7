package commands

import (
	"context"
	"fmt"
	"os"

	"gridiron-backend/lib/configutil"
	"gridiron-backend/lib/faceapi"
	"gridiron-backend/lib/serviceutil"
	"gridiron-backend/lib/telemetry"
	"gridiron-backend/services/report"

	"github.com/spf13/cobra"
)

type PathsConfig struct {
	// directory all csv files live under
	DataDir string `json:"data_dir"`
	// scratch space for downloaded headshots
	ImageDir string `json:"image_dir"`
	// downloaded team logos are cached here
	LogoCacheDir string `json:"logo_cache_dir"`
	// sqlite mirror of analysis results
	Database string `json:"database"`
}

type Config struct {
	Paths   PathsConfig        `json:"paths"`
	FaceApi faceapi.Config     `json:"faceapi"`
	Email   report.EmailConfig `json:"email"`
}

var verbose *bool

func init() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging.")
}

var rootCmd = &cobra.Command{
	Use:   "gridiron",
	Short: "gridiron scrapes NFL depth charts, infers player attributes from headshots, and reports on the results.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
	},
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("gridiron.json5")
	if err != nil {
		serviceutil.Fatal("read config", err)
	}
	if cfg.Paths.DataDir == "" {
		cfg.Paths.DataDir = "data"
	}
	if cfg.Paths.ImageDir == "" {
		cfg.Paths.ImageDir = "data/images"
	}
	if cfg.Paths.LogoCacheDir == "" {
		cfg.Paths.LogoCacheDir = "data/team_logos"
	}
	return cfg
}
