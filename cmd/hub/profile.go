package hub

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/habit-hub/internal/model"
	"github.com/saadjs/habit-hub/internal/service"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile and daily targets",
}

var (
	profileName     string
	profileAge      int
	profileHeight   float64
	profileWeight   float64
	profileUnit     string
	profileGoal     string
	profileCalories float64
	profileProtein  float64
	profileCarbs    float64
	profileFat      float64
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the profile; targets not given are derived from body weight",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.ProfileInput{
			Name:     profileName,
			Age:      profileAge,
			HeightCm: profileHeight,
			Weight:   profileWeight,
			Unit:     profileUnit,
			Goal:     profileGoal,
		}
		if cmd.Flags().Changed("calories") {
			in.Calories = &profileCalories
		}
		if cmd.Flags().Changed("protein") {
			in.ProteinG = &profileProtein
		}
		if cmd.Flags().Changed("carbs") {
			in.CarbsG = &profileCarbs
		}
		if cmd.Flags().Changed("fat") {
			in.FatG = &profileFat
		}

		var saved model.Profile
		err := withDocument(func(doc model.Document) (model.Document, error) {
			next, err := service.SetProfile(doc, in)
			saved = next.Profile
			return next, err
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved profile for %s\n", saved.Name)
		printTargets(cmd, saved)
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := loadDocument()
		if err := requireProfile(doc); err != nil {
			return err
		}
		p := doc.Profile
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Name: %s\n", p.Name)
		fmt.Fprintf(out, "Age: %d\n", p.Age)
		fmt.Fprintf(out, "Height: %.1f cm\n", p.HeightCm)
		fmt.Fprintf(out, "Weight: %.1f kg\n", p.WeightKg)
		fmt.Fprintf(out, "Goal: %s\n", p.Goal)
		printTargets(cmd, p)
		return nil
	},
}

func printTargets(cmd *cobra.Command, p model.Profile) {
	fmt.Fprintf(cmd.OutOrStdout(), "Targets: %.0f kcal, P %s, C %s, F %s\n",
		p.DailyCalories, formatGrams(p.DailyProtein), formatGrams(p.DailyCarbs), formatGrams(p.DailyFat))
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd)

	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Your name")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Body weight")
	profileSetCmd.Flags().StringVar(&profileUnit, "unit", "kg", "Weight unit: kg or lb")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "maintain", "Goal: lose, maintain or gain (or 1, 2, 3)")
	profileSetCmd.Flags().Float64Var(&profileCalories, "calories", 0, "Daily calorie target")
	profileSetCmd.Flags().Float64Var(&profileProtein, "protein", 0, "Daily protein target in grams")
	profileSetCmd.Flags().Float64Var(&profileCarbs, "carbs", 0, "Daily carbs target in grams")
	profileSetCmd.Flags().Float64Var(&profileFat, "fat", 0, "Daily fat target in grams")
	_ = profileSetCmd.MarkFlagRequired("name")
	_ = profileSetCmd.MarkFlagRequired("weight")
}
