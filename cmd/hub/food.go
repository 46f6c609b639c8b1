package hub

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/habit-hub/internal/model"
	"github.com/saadjs/habit-hub/internal/service"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Log and list foods",
}

var (
	foodDate     string
	foodName     string
	foodCalories float64
	foodProtein  float64
	foodCarbs    float64
	foodFat      float64
	foodQuantity string
	foodTime     string
	foodBarcode  string
)

var foodLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a food for a day",
	Long:  "Log a food for a day. With --barcode the macros come from Open Food Facts; explicit flags still win.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dateKey, err := resolveDate(foodDate)
		if err != nil {
			return err
		}
		in := service.FoodEntryInput{
			Name:     foodName,
			Calories: foodCalories,
			ProteinG: foodProtein,
			CarbsG:   foodCarbs,
			FatG:     foodFat,
			Quantity: foodQuantity,
			Time:     foodTime,
		}
		if barcode := strings.TrimSpace(foodBarcode); barcode != "" {
			product, err := lookupClient().LookupBarcode(cmd.Context(), barcode)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("name") {
				in.Name = product.Name
			}
			if !flags.Changed("calories") {
				in.Calories = product.Calories
			}
			if !flags.Changed("protein") {
				in.ProteinG = product.ProteinG
			}
			if !flags.Changed("carbs") {
				in.CarbsG = product.CarbsG
			}
			if !flags.Changed("fat") {
				in.FatG = product.FatG
			}
			if !flags.Changed("quantity") {
				in.Quantity = product.Quantity()
			}
		}
		if in.Time == "" {
			in.Time = now().Format("15:04")
		}

		entry, err := service.NewFoodEntry(in)
		if err != nil {
			return err
		}
		var totals model.MacroTotals
		err = withDocument(func(doc model.Document) (model.Document, error) {
			next := service.AddFoodEntry(doc, dateKey, entry)
			totals = service.DailyTotals(next, dateKey)
			return next, nil
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%.0f kcal) on %s\n", entry.Name, entry.Calories, dateKey)
		fmt.Fprintf(cmd.OutOrStdout(), "Day total: %.0f kcal, P %s, C %s, F %s\n",
			totals.Calories, formatGrams(totals.ProteinG), formatGrams(totals.CarbsG), formatGrams(totals.FatG))
		return nil
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the foods logged on a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		dateKey, err := resolveDate(foodDate)
		if err != nil {
			return err
		}
		day, ok := loadDocument().DailyLogs[dateKey]
		if !ok || len(day.Foods) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No foods logged on %s\n", dateKey)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "TIME\tNAME\tQUANTITY\tKCAL\tPROTEIN\tCARBS\tFAT")
		for _, f := range day.Foods {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\n",
				f.Time, f.Name, f.Quantity, f.Calories, f.ProteinG, f.CarbsG, f.FatG)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "TOTAL\t\t\t%.0f\t%.1f\t%.1f\t%.1f\n",
			day.TotalCalories, day.TotalProtein, day.TotalCarbs, day.TotalFat)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodLogCmd, foodListCmd)

	for _, c := range []*cobra.Command{foodLogCmd, foodListCmd} {
		c.Flags().StringVar(&foodDate, "date", "", "Day as YYYY-MM-DD (default today)")
	}
	foodLogCmd.Flags().StringVar(&foodName, "name", "", "Food name (default \"Quick entry\")")
	foodLogCmd.Flags().Float64Var(&foodCalories, "calories", 0, "Calories")
	foodLogCmd.Flags().Float64Var(&foodProtein, "protein", 0, "Protein in grams")
	foodLogCmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "Carbs in grams")
	foodLogCmd.Flags().Float64Var(&foodFat, "fat", 0, "Fat in grams")
	foodLogCmd.Flags().StringVar(&foodQuantity, "quantity", "", "Quantity label (default \"1 serving\")")
	foodLogCmd.Flags().StringVar(&foodTime, "time", "", "Time label HH:MM (default now)")
	foodLogCmd.Flags().StringVar(&foodBarcode, "barcode", "", "Prefill macros from an Open Food Facts barcode")
}
