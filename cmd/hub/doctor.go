package hub

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/habit-hub/internal/model"
	"github.com/saadjs/habit-hub/internal/service"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that daily totals match their foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		res := documentStore().Load()
		if res.Recovered() {
			return fmt.Errorf("data file is unreadable (%v); restore a backup with 'hub backup restore'", res.Cause)
		}
		report := service.RunDoctor(res.Document)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Days checked: %d\n", report.DaysChecked)
		fmt.Fprintf(out, "Totals drift: %d\n", len(report.Drifts))
		for _, d := range report.Drifts {
			fmt.Fprintf(out, "  %s stored %.1f kcal, foods sum to %.1f kcal\n", d.Date, d.Stored.Calories, d.Computed.Calories)
		}
		fmt.Fprintf(out, "Invalid weights: %d\n", report.InvalidWeights)
		fmt.Fprintf(out, "Invalid dates: %d\n", report.InvalidDates)

		if doctorFix && len(report.Drifts) > 0 {
			err := withDocument(func(doc model.Document) (model.Document, error) {
				return service.RepairTotals(doc), nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Repaired totals for %d days\n", len(report.Drifts))
			// Re-check after fixes so exit status reflects final state.
			report = service.RunDoctor(loadDocument())
		}
		if !report.Healthy() {
			return fmt.Errorf("doctor found integrity issues")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Rebuild drifted daily totals from their foods")
}
