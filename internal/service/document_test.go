package service_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/saadjs/habit-hub/internal/model"
	"github.com/saadjs/habit-hub/internal/service"
)

func TestDocumentStoreReadsLegacyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".macro_tracker.json")
	legacy := `{
  "profile": {"name": "Robin", "age": 28, "height": 165, "weight": 60, "goal": "cut",
              "daily_calories": 1800, "daily_protein": 120, "daily_carbs": 180, "daily_fat": 50},
  "weight_history": [{"date": "2024-01-01", "weight": 60}],
  "daily_logs": {"2024-01-01": {"foods": null, "total_calories": 0}}
}`
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatalf("write legacy file: %v", err)
	}

	res := service.NewDocumentStore(path, nil).Load()
	if res.Recovered() {
		t.Fatalf("expected legacy file to load, got %v", res.Cause)
	}
	doc := res.Document
	if doc.Profile.Name != "Robin" || doc.Profile.DailyCalories != 1800 {
		t.Fatalf("unexpected profile: %+v", doc.Profile)
	}
	if doc.Profile.Goal != model.GoalMaintain {
		t.Fatalf("expected unknown goal to normalize to maintain, got %q", doc.Profile.Goal)
	}
	if doc.DailyLogs["2024-01-01"].Foods == nil {
		t.Fatalf("expected nil foods to normalize to empty")
	}
}

func TestDocumentStoreCanonicalizesGoal(t *testing.T) {
	t.Parallel()

	cases := map[string]model.Goal{
		`"2"`:      model.GoalMaintain,
		`" LOSE "`: model.GoalLose,
		`"3"`:      model.GoalGain,
		`""`:       model.GoalMaintain,
		`"shred"`:  model.GoalMaintain,
		`"gain"`:   model.GoalGain,
	}
	for raw, want := range cases {
		path := filepath.Join(t.TempDir(), "doc.json")
		if err := os.WriteFile(path, []byte(`{"profile": {"name": "Ana", "goal": `+raw+`}}`), 0o644); err != nil {
			t.Fatalf("write file: %v", err)
		}
		res := service.NewDocumentStore(path, nil).Load()
		if res.Recovered() {
			t.Fatalf("goal %s: unexpected recovery: %v", raw, res.Cause)
		}
		if res.Document.Profile.Goal != want {
			t.Fatalf("goal %s: expected %q, got %q", raw, want, res.Document.Profile.Goal)
		}
	}
}

func TestSessionStoreReadsLegacyTimestamp(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".coding_dashboard.json")
	legacy := `{"total_sessions": 3, "total_time": 95.5, "current_streak": 2, "longest_streak": 4,
"last_session": "2024-01-02T15:04:05.123456", "projects": null}`
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatalf("write legacy file: %v", err)
	}

	res := service.NewSessionStore(path, nil).Load()
	if res.Recovered() {
		t.Fatalf("expected legacy file to load, got %v", res.Cause)
	}
	doc := res.Document
	if doc.TotalSessions != 3 || doc.Projects == nil || doc.Achievements == nil {
		t.Fatalf("unexpected session document: %+v", doc)
	}
	if service.ParseSessionTime(doc.LastSession).IsZero() {
		t.Fatalf("expected last session to parse")
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	t.Parallel()

	doc := profiledDocument(t)
	doc = service.AddFoodEntry(doc, "2024-01-01", mustFood(t, "Oats", 389, 16.9, 66.3, 6.9))
	doc = service.AddFoodEntry(doc, "2024-01-01", mustFood(t, "Milk", 122, 8.1, 11.7, 4.8))
	doc = service.AddFoodEntry(doc, "2024-01-02", mustFood(t, "Rice", 206, 4.3, 44.5, 0.4))
	var err error
	if doc, err = service.LogWeight(doc, "2024-01-02", 165.3, "lb"); err != nil {
		t.Fatalf("log weight: %v", err)
	}

	s := service.NewDocumentStore(filepath.Join(t.TempDir(), "doc.json"), nil)
	if err := s.Save(doc); err != nil {
		t.Fatalf("save: %v", err)
	}
	first := s.Load()
	if err := s.Save(first.Document); err != nil {
		t.Fatalf("save again: %v", err)
	}
	second := s.Load()
	if !reflect.DeepEqual(doc, first.Document) || !reflect.DeepEqual(first.Document, second.Document) {
		t.Fatalf("round trip mismatch:\nsaved  %+v\nloaded %+v\nagain  %+v", doc, first.Document, second.Document)
	}
}
