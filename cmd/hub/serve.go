package hub

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/saadjs/habit-hub/internal/workout"
)

var (
	serveHost    string
	servePort    int
	serveBackend string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the workout HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		server := cfg.Server
		if cmd.Flags().Changed("host") {
			server.Host = serveHost
		}
		if cmd.Flags().Changed("port") {
			server.Port = servePort
		}
		workoutCfg := cfg.Workout
		if cmd.Flags().Changed("backend") {
			workoutCfg.Backend = serveBackend
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		storage, closer, err := workout.NewStorage(ctx, workoutCfg)
		if err != nil {
			return err
		}
		defer closer.Close()
		logger.Info("workout storage ready", "backend", workoutCfg.Backend, "db_path", workoutCfg.DBPath)

		ln, err := net.Listen("tcp", server.Addr())
		if err != nil {
			return fmt.Errorf("listen on %s: %w", server.Addr(), err)
		}
		srv := &http.Server{
			Handler:      workout.NewHandler(storage, workout.NewMetrics(), logger).Routes(),
			ReadTimeout:  server.ReadTimeout,
			WriteTimeout: server.WriteTimeout,
		}
		return workout.Serve(ctx, srv, ln, server.ShutdownTimeout, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen host (overrides SERVER_HOST)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (overrides SERVER_PORT)")
	serveCmd.Flags().StringVar(&serveBackend, "backend", "", "Workout storage: memory or sqlite (overrides WORKOUT_BACKEND)")
}
