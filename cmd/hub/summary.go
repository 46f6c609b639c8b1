package hub

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/saadjs/habit-hub/internal/service"
)

var (
	summaryDate string
	summaryJSON bool
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show consumed, target and remaining macros for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		dateKey, err := resolveDate(summaryDate)
		if err != nil {
			return err
		}
		s := service.Summarize(loadDocument(), dateKey)
		if summaryJSON {
			b, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal summary json: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Summary for %s\n", s.Date)
		printMacroRows(cmd.OutOrStdout(), s)
		if !s.HasLog {
			fmt.Fprintln(cmd.OutOrStdout(), "No foods logged")
		}
		return nil
	},
}

func printMacroRows(w io.Writer, s service.DailySummary) {
	fmt.Fprintln(w, "MACRO\tCONSUMED\tTARGET\tREMAINING\tPERCENT")
	for _, row := range s.Rows {
		fmt.Fprintf(w, "%s\t%.1f%s\t%.1f%s\t%.1f%s\t%s\n",
			row.Label, row.Consumed, row.Unit, row.Target, row.Unit, row.Remaining, row.Unit, row.Percent)
	}
}

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List days with logged foods, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := loadDocument()
		days := service.LoggedDays(doc)
		if len(days) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No days logged yet")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "DATE\tFOODS\tKCAL")
		for _, d := range days {
			day := doc.DailyLogs[d]
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%.0f\n", d, len(day.Foods), day.TotalCalories)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd, daysCmd)
	summaryCmd.Flags().StringVar(&summaryDate, "date", "", "Day as YYYY-MM-DD (default today)")
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "Output JSON")
}
