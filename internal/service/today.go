package service

import "github.com/saadjs/habit-hub/internal/model"

type MacroRow struct {
	Label     string  `json:"label"`
	Unit      string  `json:"unit"`
	Consumed  float64 `json:"consumed"`
	Target    float64 `json:"target"`
	Remaining float64 `json:"remaining"`
	Percent   string  `json:"percent"`
}

type DailySummary struct {
	Date      string            `json:"date"`
	Name      string            `json:"name"`
	Goal      model.Goal        `json:"goal"`
	WeightKg  float64           `json:"weight_kg"`
	HasLog    bool              `json:"has_log"`
	Totals    model.MacroTotals `json:"totals"`
	Targets   model.MacroTotals `json:"targets"`
	Remaining model.MacroTotals `json:"remaining"`
	Rows      []MacroRow        `json:"rows"`
	Foods     []model.FoodEntry `json:"foods"`
}

func Summarize(doc model.Document, dateKey string) DailySummary {
	totals := DailyTotals(doc, dateKey)
	targets := Targets(doc.Profile)
	remaining := Remaining(doc.Profile, totals)

	day, ok := doc.DailyLogs[dateKey]
	foods := day.Foods
	if foods == nil {
		foods = []model.FoodEntry{}
	}

	return DailySummary{
		Date:      dateKey,
		Name:      doc.Profile.Name,
		Goal:      doc.Profile.Goal,
		WeightKg:  doc.Profile.WeightKg,
		HasLog:    ok,
		Totals:    totals,
		Targets:   targets,
		Remaining: remaining,
		Rows: []MacroRow{
			macroRow("Calories", "kcal", totals.Calories, targets.Calories, remaining.Calories),
			macroRow("Protein", "g", totals.ProteinG, targets.ProteinG, remaining.ProteinG),
			macroRow("Carbs", "g", totals.CarbsG, targets.CarbsG, remaining.CarbsG),
			macroRow("Fat", "g", totals.FatG, targets.FatG, remaining.FatG),
		},
		Foods: foods,
	}
}

func macroRow(label, unit string, consumed, target, remaining float64) MacroRow {
	return MacroRow{
		Label:     label,
		Unit:      unit,
		Consumed:  consumed,
		Target:    target,
		Remaining: remaining,
		Percent:   Percent(consumed, target),
	}
}
