package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/saadjs/habit-hub/internal/model"
)

type ProfileInput struct {
	Name     string
	Age      int
	HeightCm float64
	Weight   float64
	Unit     string
	Goal     string

	// Nil targets are derived from the body weight.
	Calories *float64
	ProteinG *float64
	CarbsG   *float64
	FatG     *float64
}

// ParseGoal accepts a goal name or its menu number (1 lose, 2 maintain, 3 gain).
// An empty value means maintain.
func ParseGoal(value string) (model.Goal, error) {
	switch normalizeName(value) {
	case "", "2", "maintain":
		return model.GoalMaintain, nil
	case "1", "lose":
		return model.GoalLose, nil
	case "3", "gain":
		return model.GoalGain, nil
	default:
		return "", fmt.Errorf("invalid goal %q (use lose, maintain, or gain)", value)
	}
}

// DeriveTargets estimates daily targets from body weight: 30 kcal and 2 g
// protein per kg, with 40% of calories from carbs and 25% from fat.
func DeriveTargets(weightKg float64) model.MacroTotals {
	calories := math.Floor(weightKg * 30)
	return model.MacroTotals{
		Calories: calories,
		ProteinG: math.Floor(weightKg * 2),
		CarbsG:   math.Floor(calories * 0.4 / 4),
		FatG:     math.Floor(calories * 0.25 / 9),
	}
}

// SetProfile replaces the profile wholesale.
func SetProfile(doc model.Document, in ProfileInput) (model.Document, error) {
	if err := validateNonNegativeInt("age", in.Age); err != nil {
		return doc, err
	}
	if err := validateNonNegativeFloat("height", in.HeightCm); err != nil {
		return doc, err
	}
	weightKg, err := convertWeightToKg(in.Weight, in.Unit)
	if err != nil {
		return doc, err
	}
	goal, err := ParseGoal(in.Goal)
	if err != nil {
		return doc, err
	}

	targets := DeriveTargets(weightKg)
	overrides := []struct {
		name  string
		value *float64
		dst   *float64
	}{
		{"calories", in.Calories, &targets.Calories},
		{"protein", in.ProteinG, &targets.ProteinG},
		{"carbs", in.CarbsG, &targets.CarbsG},
		{"fat", in.FatG, &targets.FatG},
	}
	for _, o := range overrides {
		if o.value == nil {
			continue
		}
		if err := validateNonNegativeFloat(o.name, *o.value); err != nil {
			return doc, err
		}
		*o.dst = *o.value
	}

	doc.Profile = model.Profile{
		Name:          strings.TrimSpace(in.Name),
		Age:           in.Age,
		HeightCm:      in.HeightCm,
		WeightKg:      weightKg,
		Goal:          goal,
		DailyCalories: targets.Calories,
		DailyProtein:  targets.ProteinG,
		DailyCarbs:    targets.CarbsG,
		DailyFat:      targets.FatG,
	}
	return doc, nil
}

// HasProfile reports whether a profile has been set up.
func HasProfile(p model.Profile) bool {
	return strings.TrimSpace(p.Name) != ""
}
