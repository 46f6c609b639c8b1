package model

import "time"

type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

type Profile struct {
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	HeightCm      float64 `json:"height"`
	WeightKg      float64 `json:"weight"`
	Goal          Goal    `json:"goal"`
	DailyCalories float64 `json:"daily_calories"`
	DailyProtein  float64 `json:"daily_protein"`
	DailyCarbs    float64 `json:"daily_carbs"`
	DailyFat      float64 `json:"daily_fat"`
}

type WeightEntry struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weight"`
}

type FoodEntry struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein"`
	CarbsG   float64 `json:"carbs"`
	FatG     float64 `json:"fat"`
	Quantity string  `json:"quantity"`
	Time     string  `json:"time"`
}

// DayLog totals are a cached reduction over Foods and are only ever
// produced by service.AddFoodEntry or service.RepairTotals.
type DayLog struct {
	Foods         []FoodEntry `json:"foods"`
	TotalCalories float64     `json:"total_calories"`
	TotalProtein  float64     `json:"total_protein"`
	TotalCarbs    float64     `json:"total_carbs"`
	TotalFat      float64     `json:"total_fat"`
}

type Document struct {
	Profile       Profile           `json:"profile"`
	WeightHistory []WeightEntry     `json:"weight_history"`
	DailyLogs     map[string]DayLog `json:"daily_logs"`
}

type MacroTotals struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

type Project struct {
	Name        string `json:"name"`
	Language    string `json:"language"`
	Description string `json:"description"`
	Created     string `json:"created"`
	Status      string `json:"status"`
}

type SessionDocument struct {
	TotalSessions int       `json:"total_sessions"`
	TotalMinutes  float64   `json:"total_time"`
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
	LastSession   string    `json:"last_session"`
	Projects      []Project `json:"projects"`
	Achievements  []string  `json:"achievements"`
}

type Workout struct {
	ID        string    `json:"id"`
	Exercise  string    `json:"exercise"`
	Sets      int       `json:"sets"`
	Reps      int       `json:"reps"`
	Weight    float64   `json:"weight"`
	Date      string    `json:"date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
