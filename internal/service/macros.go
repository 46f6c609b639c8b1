package service

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/saadjs/habit-hub/internal/model"
)

// PercentSentinel is shown instead of a percentage when the target is zero.
const PercentSentinel = "—"

type FoodEntryInput struct {
	Name     string
	Calories float64
	ProteinG float64
	CarbsG   float64
	FatG     float64
	Quantity string
	Time     string
}

// NewFoodEntry validates user input and applies the defaults of the quick-log form.
func NewFoodEntry(in FoodEntryInput) (model.FoodEntry, error) {
	if err := validateNonNegativeFloat("calories", in.Calories); err != nil {
		return model.FoodEntry{}, err
	}
	if err := validateNonNegativeFloat("protein", in.ProteinG); err != nil {
		return model.FoodEntry{}, err
	}
	if err := validateNonNegativeFloat("carbs", in.CarbsG); err != nil {
		return model.FoodEntry{}, err
	}
	if err := validateNonNegativeFloat("fat", in.FatG); err != nil {
		return model.FoodEntry{}, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = "Quick entry"
	}
	quantity := strings.TrimSpace(in.Quantity)
	if quantity == "" {
		quantity = "1 serving"
	}
	return model.FoodEntry{
		Name:     name,
		Calories: in.Calories,
		ProteinG: in.ProteinG,
		CarbsG:   in.CarbsG,
		FatG:     in.FatG,
		Quantity: quantity,
		Time:     strings.TrimSpace(in.Time),
	}, nil
}

// AddFoodEntry returns a copy of doc with entry appended to the day's log
// and the day's totals advanced by the entry. The input document is not modified.
func AddFoodEntry(doc model.Document, dateKey string, entry model.FoodEntry) model.Document {
	logs := make(map[string]model.DayLog, len(doc.DailyLogs)+1)
	maps.Copy(logs, doc.DailyLogs)

	day, ok := logs[dateKey]
	if !ok {
		day = model.DayLog{Foods: []model.FoodEntry{}}
	}
	foods := make([]model.FoodEntry, 0, len(day.Foods)+1)
	foods = append(foods, day.Foods...)
	day.Foods = append(foods, entry)
	day.TotalCalories += entry.Calories
	day.TotalProtein += entry.ProteinG
	day.TotalCarbs += entry.CarbsG
	day.TotalFat += entry.FatG
	logs[dateKey] = day

	doc.DailyLogs = logs
	return doc
}

func DailyTotals(doc model.Document, dateKey string) model.MacroTotals {
	day, ok := doc.DailyLogs[dateKey]
	if !ok {
		return model.MacroTotals{}
	}
	return dayTotals(day)
}

func dayTotals(day model.DayLog) model.MacroTotals {
	return model.MacroTotals{
		Calories: day.TotalCalories,
		ProteinG: day.TotalProtein,
		CarbsG:   day.TotalCarbs,
		FatG:     day.TotalFat,
	}
}

func Targets(p model.Profile) model.MacroTotals {
	return model.MacroTotals{
		Calories: p.DailyCalories,
		ProteinG: p.DailyProtein,
		CarbsG:   p.DailyCarbs,
		FatG:     p.DailyFat,
	}
}

// Remaining clamps each dimension at zero once the target is exceeded.
func Remaining(p model.Profile, consumed model.MacroTotals) model.MacroTotals {
	return model.MacroTotals{
		Calories: remainingOf(p.DailyCalories, consumed.Calories),
		ProteinG: remainingOf(p.DailyProtein, consumed.ProteinG),
		CarbsG:   remainingOf(p.DailyCarbs, consumed.CarbsG),
		FatG:     remainingOf(p.DailyFat, consumed.FatG),
	}
}

func remainingOf(target, consumed float64) float64 {
	return max(target-consumed, 0)
}

// Percent formats consumed as a share of target, or PercentSentinel when target is zero.
func Percent(consumed, target float64) string {
	if target == 0 {
		return PercentSentinel
	}
	return fmt.Sprintf("%.0f%%", consumed/target*100)
}

// LoggedDays returns the dates that have a food log, newest first.
func LoggedDays(doc model.Document) []string {
	days := slices.Collect(maps.Keys(doc.DailyLogs))
	slices.Sort(days)
	slices.Reverse(days)
	return days
}
