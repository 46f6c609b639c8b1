package hub

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/habit-hub/internal/model"
	"github.com/saadjs/habit-hub/internal/service"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track body weight",
}

var (
	weightDate   string
	weightUnit   string
	weightLimit  int
	weightWindow int
)

var weightLogCmd = &cobra.Command{
	Use:   "log <weight>",
	Short: "Log a body weight for a day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
		if err != nil {
			return fmt.Errorf("invalid weight %q", args[0])
		}
		dateKey, err := resolveDate(weightDate)
		if err != nil {
			return err
		}
		var logged float64
		err = withDocument(func(doc model.Document) (model.Document, error) {
			next, err := service.LogWeight(doc, dateKey, value, weightUnit)
			logged = next.Profile.WeightKg
			return next, err
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Logged %.1f kg on %s\n", logged, dateKey)
		return nil
	},
}

var weightHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent weight entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := service.RecentWeights(loadDocument().WeightHistory, weightLimit)
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No weight entries yet")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "DATE\tWEIGHT(%s)\n", displayUnit())
		for _, e := range entries {
			v, err := service.WeightFromKg(e.WeightKg, weightUnit)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f\n", e.Date, v)
		}
		return nil
	},
}

var weightTrendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show the weight trend over the most recent entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		trend := service.WeightTrend(loadDocument().WeightHistory, weightWindow)
		if len(trend) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No weight entries yet")
			return nil
		}
		change, err := service.WeightFromKg(service.TrendChange(trend), weightUnit)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s → %s (%d entries)\n", trend[0].Date, trend[len(trend)-1].Date, len(trend))
		fmt.Fprintf(out, "%s\n", service.Sparkline(service.TrendValues(trend)))
		fmt.Fprintf(out, "Change: %+.1f %s\n", change, displayUnit())
		return nil
	},
}

func displayUnit() string {
	if u := strings.ToLower(strings.TrimSpace(weightUnit)); u == "lb" || u == "lbs" {
		return "lb"
	}
	return "kg"
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightLogCmd, weightHistoryCmd, weightTrendCmd)

	for _, c := range []*cobra.Command{weightLogCmd, weightHistoryCmd, weightTrendCmd} {
		c.Flags().StringVar(&weightUnit, "unit", "kg", "Weight unit: kg or lb")
	}
	weightLogCmd.Flags().StringVar(&weightDate, "date", "", "Day as YYYY-MM-DD (default today)")
	weightHistoryCmd.Flags().IntVar(&weightLimit, "limit", 10, "Number of entries to show (0 for all)")
	weightTrendCmd.Flags().IntVar(&weightWindow, "window", service.DefaultTrendWindow, "Number of entries in the trend window")
}
