package service_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/saadjs/habit-hub/internal/model"
	"github.com/saadjs/habit-hub/internal/service"
)

func TestDoctorFindsAndRepairsDrift(t *testing.T) {
	t.Parallel()

	doc := service.DefaultDocument()
	doc = service.AddFoodEntry(doc, "2024-01-01", mustFood(t, "Apple", 95, 0.5, 25, 0.3))
	doc = service.AddFoodEntry(doc, "2024-01-01", mustFood(t, "Cheese", 113, 7, 0.4, 9))

	broken := doc
	broken.DailyLogs = map[string]model.DayLog{}
	for k, v := range doc.DailyLogs {
		v.TotalCalories = 9999
		broken.DailyLogs[k] = v
	}
	broken.DailyLogs["yesterday"] = model.DayLog{Foods: []model.FoodEntry{}}
	broken.WeightHistory = []model.WeightEntry{{Date: "2024-01-01", WeightKg: -3}}

	report := service.RunDoctor(broken)
	if report.Healthy() {
		t.Fatalf("expected unhealthy report")
	}
	if len(report.Drifts) != 1 || report.Drifts[0].Date != "2024-01-01" || report.Drifts[0].Computed.Calories != 208 {
		t.Fatalf("unexpected drifts: %+v", report.Drifts)
	}
	if report.InvalidWeights != 1 || report.InvalidDates != 1 {
		t.Fatalf("unexpected invalid counts: %+v", report)
	}

	repaired := service.RepairTotals(broken)
	if drifts := service.CheckTotals(repaired); len(drifts) != 0 {
		t.Fatalf("expected repaired document to be consistent, got %+v", drifts)
	}
	if repaired.DailyLogs["2024-01-01"].TotalCalories != 208 {
		t.Fatalf("expected repaired calories 208, got %v", repaired.DailyLogs["2024-01-01"].TotalCalories)
	}
	if broken.DailyLogs["2024-01-01"].TotalCalories != 9999 {
		t.Fatalf("expected repair to leave input untouched")
	}
}

func TestBackupCreateListRestore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dataPath := filepath.Join(dir, "data.json")
	s := service.NewDocumentStore(dataPath, nil)
	doc := service.AddFoodEntry(profiledDocument(t), "2024-01-01", mustFood(t, "Soup", 150, 8, 12, 6))
	if err := s.Save(doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	backupDir := filepath.Join(dir, "backups")
	info, err := service.CreateBackup(dataPath, filepath.Join(backupDir, "b1.json"))
	if err != nil {
		t.Fatalf("create backup: %v", err)
	}
	if info.Checksum == "" || info.SizeBytes == 0 {
		t.Fatalf("unexpected backup info: %+v", info)
	}
	list, err := service.ListBackups(backupDir)
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one backup, got %v (%v)", list, err)
	}

	if err := service.RestoreBackup(info.Path, dataPath, false); err == nil {
		t.Fatalf("expected restore without force to refuse existing file")
	}
	if err := os.WriteFile(dataPath, []byte("garbage"), 0o644); err != nil {
		t.Fatalf("corrupt data: %v", err)
	}
	if err := service.RestoreBackup(info.Path, dataPath, true); err != nil {
		t.Fatalf("restore: %v", err)
	}
	res := s.Load()
	if res.Recovered() || res.Document.Profile.Name != "Sam" || len(res.Document.DailyLogs["2024-01-01"].Foods) != 1 {
		t.Fatalf("unexpected restored document: %+v", res)
	}
}

func TestRestoreRejectsTamperedBackup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dataPath := filepath.Join(dir, "data.json")
	if err := os.WriteFile(dataPath, []byte(`{"profile":{}}`), 0o644); err != nil {
		t.Fatalf("write data: %v", err)
	}
	backup := filepath.Join(dir, "b.json")
	if _, err := service.CreateBackup(dataPath, backup); err != nil {
		t.Fatalf("create backup: %v", err)
	}
	if err := os.WriteFile(backup, []byte(`{"profile":{"name":"x"}}`), 0o644); err != nil {
		t.Fatalf("tamper: %v", err)
	}
	if err := service.RestoreBackup(backup, filepath.Join(dir, "restored.json"), false); err == nil {
		t.Fatalf("expected checksum mismatch")
	}
}
