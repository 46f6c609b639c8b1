package service

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/saadjs/habit-hub/internal/model"
)

const DefaultTrendWindow = 12

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// LogWeight appends a history entry and makes it the profile's current weight.
func LogWeight(doc model.Document, dateKey string, weight float64, unit string) (model.Document, error) {
	weightKg, err := convertWeightToKg(weight, unit)
	if err != nil {
		return doc, err
	}
	history := make([]model.WeightEntry, 0, len(doc.WeightHistory)+1)
	history = append(history, doc.WeightHistory...)
	doc.WeightHistory = append(history, model.WeightEntry{Date: dateKey, WeightKg: weightKg})
	doc.Profile.WeightKg = weightKg
	return doc, nil
}

// RecentWeights returns the last limit entries in insertion order.
func RecentWeights(history []model.WeightEntry, limit int) []model.WeightEntry {
	if limit <= 0 || limit >= len(history) {
		return slices.Clone(history)
	}
	return slices.Clone(history[len(history)-limit:])
}

// WeightTrend sorts history by date, keeping insertion order among equal
// dates, and returns the last window entries. A window <= 0 means DefaultTrendWindow.
func WeightTrend(history []model.WeightEntry, window int) []model.WeightEntry {
	if window <= 0 {
		window = DefaultTrendWindow
	}
	sorted := slices.Clone(history)
	slices.SortStableFunc(sorted, func(a, b model.WeightEntry) int {
		return cmp.Compare(a.Date, b.Date)
	})
	if len(sorted) > window {
		sorted = sorted[len(sorted)-window:]
	}
	return sorted
}

// TrendChange is the weight difference between the last and first entries.
func TrendChange(trend []model.WeightEntry) float64 {
	if len(trend) < 2 {
		return 0
	}
	return trend[len(trend)-1].WeightKg - trend[0].WeightKg
}

func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minV, maxV := slices.Min(values), slices.Max(values)
	span := max(maxV-minV, 0.1)
	scale := float64(len(sparkBlocks)-1) / span

	var b strings.Builder
	for _, v := range values {
		idx := int((v - minV) * scale)
		idx = min(max(idx, 0), len(sparkBlocks)-1)
		b.WriteRune(sparkBlocks[idx])
	}
	return b.String()
}

func TrendValues(trend []model.WeightEntry) []float64 {
	values := make([]float64, len(trend))
	for i, e := range trend {
		values[i] = e.WeightKg
	}
	return values
}

func convertWeightToKg(value float64, unit string) (float64, error) {
	if err := validateFinite("weight", value); err != nil {
		return 0, err
	}
	if value <= 0 {
		return 0, fmt.Errorf("weight must be > 0")
	}
	u := normalizeName(unit)
	if u == "" {
		u = "kg"
	}
	switch u {
	case "kg":
		return value, nil
	case "lb", "lbs":
		return value * 0.45359237, nil
	default:
		return 0, fmt.Errorf("invalid weight unit %q (use kg or lb)", unit)
	}
}

func WeightFromKg(weightKg float64, unit string) (float64, error) {
	u := normalizeName(unit)
	if u == "" {
		u = "kg"
	}
	switch u {
	case "kg":
		return weightKg, nil
	case "lb", "lbs":
		return weightKg / 0.45359237, nil
	default:
		return 0, fmt.Errorf("invalid weight unit %q (use kg or lb)", unit)
	}
}
