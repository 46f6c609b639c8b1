package hub

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/saadjs/habit-hub/internal/model"
	"github.com/saadjs/habit-hub/internal/service"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Time coding sessions and track streaks",
}

var sessionMinutes float64

var sessionStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a timed session and stop it with Enter",
	RunE: func(cmd *cobra.Command, args []string) error {
		started := now()
		fmt.Fprintf(cmd.OutOrStdout(), "Session started at %s. Press Enter to stop.\n", started.Format("15:04:05"))
		if _, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read stop signal: %w", err)
		}
		return recordSession(cmd, started, now())
	},
}

var sessionLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a finished session ending now",
	RunE: func(cmd *cobra.Command, args []string) error {
		m := sessionMinutes
		if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
			return fmt.Errorf("--minutes must be a positive number")
		}
		if m*float64(time.Minute) >= math.MaxInt64 {
			return fmt.Errorf("--minutes %g is too large", m)
		}
		ended := now()
		started := ended.Add(-time.Duration(sessionMinutes * float64(time.Minute)))
		return recordSession(cmd, started, ended)
	},
}

func recordSession(cmd *cobra.Command, started, ended time.Time) error {
	var (
		elapsed time.Duration
		stats   model.SessionDocument
	)
	err := withSessions(func(doc model.SessionDocument) (model.SessionDocument, error) {
		next, d, err := service.RecordSession(doc, started, ended)
		elapsed, stats = d, next
		return next, err
	})
	if errors.Is(err, service.ErrSessionTooShort) {
		fmt.Fprintln(cmd.OutOrStdout(), "Session too short to count")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Session length: %s\n", service.FormatDuration(elapsed))
	fmt.Fprintf(cmd.OutOrStdout(), "Streak: %d days (best %d)\n", stats.CurrentStreak, stats.LongestStreak)
	return nil
}

var sessionStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show session totals and streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := loadSessions()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Total sessions: %d\n", doc.TotalSessions)
		fmt.Fprintf(out, "Total time: %s\n", service.FormatDuration(time.Duration(doc.TotalMinutes*float64(time.Minute))))
		fmt.Fprintf(out, "Current streak: %d\n", doc.CurrentStreak)
		fmt.Fprintf(out, "Longest streak: %d\n", doc.LongestStreak)
		last := "never"
		if t := service.ParseSessionTime(doc.LastSession); !t.IsZero() {
			last = t.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(out, "Last session: %s\n", last)
		fmt.Fprintf(out, "Projects: %d\n", len(doc.Projects))
		return nil
	},
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Track coding projects",
}

var (
	projectLanguage    string
	projectDescription string
)

var projectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := withSessions(func(doc model.SessionDocument) (model.SessionDocument, error) {
			return service.AddProject(doc, service.ProjectInput{
				Name:        args[0],
				Language:    projectLanguage,
				Description: projectDescription,
			}, now())
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added project %s\n", args[0])
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		projects := loadSessions().Projects
		if len(projects) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No projects yet")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "NAME\tLANGUAGE\tSTATUS\tCREATED\tDESCRIPTION")
		for _, p := range projects {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n", p.Name, p.Language, p.Status, p.Created, p.Description)
		}
		return nil
	},
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print a motivational quote",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), service.Quote(nil))
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd, projectCmd, quoteCmd)
	sessionCmd.AddCommand(sessionStartCmd, sessionLogCmd, sessionStatsCmd)
	projectCmd.AddCommand(projectAddCmd, projectListCmd)

	sessionLogCmd.Flags().Float64Var(&sessionMinutes, "minutes", 0, "Session length in minutes")
	projectAddCmd.Flags().StringVar(&projectLanguage, "language", "", "Main language")
	projectAddCmd.Flags().StringVar(&projectDescription, "description", "", "Short description")
}
