package service_test

import (
	"math"
	"testing"

	"github.com/saadjs/habit-hub/internal/model"
	"github.com/saadjs/habit-hub/internal/service"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func mustFood(t *testing.T, name string, calories, protein, carbs, fat float64) model.FoodEntry {
	t.Helper()
	entry, err := service.NewFoodEntry(service.FoodEntryInput{
		Name:     name,
		Calories: calories,
		ProteinG: protein,
		CarbsG:   carbs,
		FatG:     fat,
	})
	if err != nil {
		t.Fatalf("new food entry %s: %v", name, err)
	}
	return entry
}

func profiledDocument(t *testing.T) model.Document {
	t.Helper()
	doc, err := service.SetProfile(service.DefaultDocument(), service.ProfileInput{
		Name:     "Sam",
		Age:      30,
		HeightCm: 180,
		Weight:   80,
		Goal:     "maintain",
	})
	if err != nil {
		t.Fatalf("set profile: %v", err)
	}
	return doc
}
