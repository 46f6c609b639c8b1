package hub

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/habit-hub/internal/service"
)

const barWidth = 20

var dashboardDate string

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show today's macros, weight trend and coding stats at a glance",
	RunE: func(cmd *cobra.Command, args []string) error {
		dateKey, err := resolveDate(dashboardDate)
		if err != nil {
			return err
		}
		doc := loadDocument()
		out := cmd.OutOrStdout()

		s := service.Summarize(doc, dateKey)
		name := s.Name
		if name == "" {
			name = "there"
		}
		fmt.Fprintf(out, "Hi %s, here is %s\n\n", name, dateKey)

		for _, row := range s.Rows {
			fmt.Fprintf(out, "%-9s %s %6.0f / %-6.0f %s\n",
				row.Label, progressBar(row.Consumed, row.Target, barWidth), row.Consumed, row.Target, row.Percent)
		}

		trend := service.WeightTrend(doc.WeightHistory, service.DefaultTrendWindow)
		fmt.Fprintln(out)
		if len(trend) == 0 {
			fmt.Fprintln(out, "Weight: no entries yet")
		} else {
			fmt.Fprintf(out, "Weight: %.1f kg %s (%+.1f kg)\n",
				trend[len(trend)-1].WeightKg, service.Sparkline(service.TrendValues(trend)), service.TrendChange(trend))
		}

		sessions := loadSessions()
		fmt.Fprintf(out, "Coding: %d sessions, %.0f min, streak %d (best %d)\n",
			sessions.TotalSessions, sessions.TotalMinutes, sessions.CurrentStreak, sessions.LongestStreak)
		fmt.Fprintf(out, "\n%q\n", service.Quote(nil))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().StringVar(&dashboardDate, "date", "", "Day as YYYY-MM-DD (default today)")
}
