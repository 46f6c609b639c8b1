package service_test

import (
	"math"
	"testing"

	"github.com/saadjs/habit-hub/internal/model"
	"github.com/saadjs/habit-hub/internal/service"
)

func TestDeriveTargetsFromWeight(t *testing.T) {
	t.Parallel()

	got := service.DeriveTargets(70)
	want := model.MacroTotals{Calories: 2100, ProteinG: 140, CarbsG: 210, FatG: 58}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestSetProfileDerivesAndOverridesTargets(t *testing.T) {
	t.Parallel()

	calories := 1800.0
	doc, err := service.SetProfile(service.DefaultDocument(), service.ProfileInput{
		Name:     "  Alex ",
		Age:      41,
		HeightCm: 170,
		Weight:   154.32,
		Unit:     "lb",
		Goal:     "1",
		Calories: &calories,
	})
	if err != nil {
		t.Fatalf("set profile: %v", err)
	}
	p := doc.Profile
	if p.Name != "Alex" || p.Goal != model.GoalLose {
		t.Fatalf("unexpected profile identity: %+v", p)
	}
	if p.DailyCalories != 1800 {
		t.Fatalf("expected calorie override, got %v", p.DailyCalories)
	}
	if p.DailyProtein != 139 {
		t.Fatalf("expected derived protein 139, got %v", p.DailyProtein)
	}
	if !service.HasProfile(p) {
		t.Fatalf("expected profile to count as set up")
	}
}

func TestSetProfileRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	negative := -5.0
	notANumber := math.NaN()
	cases := map[string]service.ProfileInput{
		"nan weight":      {Name: "x", Weight: math.NaN()},
		"infinite weight": {Name: "x", Weight: math.Inf(1)},
		"infinite height": {Name: "x", Weight: 70, HeightCm: math.Inf(1)},
		"nan target":      {Name: "x", Weight: 70, Calories: &notANumber},
		"negative age":    {Name: "x", Age: -1, Weight: 70},
		"zero weight":     {Name: "x", Weight: 0},
		"unknown goal":    {Name: "x", Weight: 70, Goal: "bulk"},
		"negative target": {Name: "x", Weight: 70, FatG: &negative},
	}
	for name, in := range cases {
		if _, err := service.SetProfile(service.DefaultDocument(), in); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestParseGoal(t *testing.T) {
	t.Parallel()

	cases := map[string]model.Goal{
		"":         model.GoalMaintain,
		"2":        model.GoalMaintain,
		"LOSE":     model.GoalLose,
		" gain ":   model.GoalGain,
		"3":        model.GoalGain,
		"maintain": model.GoalMaintain,
	}
	for in, want := range cases {
		got, err := service.ParseGoal(in)
		if err != nil || got != want {
			t.Fatalf("ParseGoal(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
}
