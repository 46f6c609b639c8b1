package hub

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/saadjs/habit-hub/internal/config"
	"github.com/saadjs/habit-hub/pkg/logging"
)

var (
	dataPath     string
	sessionsPath string

	cfg    *config.Config
	logger *slog.Logger

	now = time.Now
)

var rootCmd = &cobra.Command{
	Use:   "hub",
	Short: "hub tracks macros, weight, coding sessions and workouts",
	Long: "hub is a local-first personal tracker. Macros and weight live in one JSON document, " +
		"coding sessions in another, and workouts are served over a small HTTP API.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		if dataPath != "" {
			loaded.Data.Path = dataPath
		}
		if sessionsPath != "" {
			loaded.Data.SessionsPath = sessionsPath
		}
		cfg = loaded
		logger = logging.Setup(cmd.ErrOrStderr(), cfg.Log.Level)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Path to the macro tracker JSON file")
	rootCmd.PersistentFlags().StringVar(&sessionsPath, "sessions", "", "Path to the coding session JSON file")
}
