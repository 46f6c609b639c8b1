package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/saadjs/habit-hub/internal/model"
)

const totalsTolerance = 1e-6

type BackupInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
}

type TotalsDrift struct {
	Date     string            `json:"date"`
	Stored   model.MacroTotals `json:"stored"`
	Computed model.MacroTotals `json:"computed"`
}

type DoctorReport struct {
	DaysChecked    int           `json:"days_checked"`
	Drifts         []TotalsDrift `json:"drifts"`
	InvalidWeights int           `json:"invalid_weights"`
	InvalidDates   int           `json:"invalid_dates"`
}

func (r DoctorReport) Healthy() bool {
	return len(r.Drifts) == 0 && r.InvalidWeights == 0 && r.InvalidDates == 0
}

// RunDoctor checks that every day's totals match its foods and that weight
// history entries are usable.
func RunDoctor(doc model.Document) DoctorReport {
	report := DoctorReport{DaysChecked: len(doc.DailyLogs), Drifts: CheckTotals(doc)}
	for _, w := range doc.WeightHistory {
		if w.WeightKg <= 0 {
			report.InvalidWeights++
		}
		if _, err := time.Parse(dateLayout, w.Date); err != nil {
			report.InvalidDates++
		}
	}
	for key := range doc.DailyLogs {
		if _, err := time.Parse(dateLayout, key); err != nil {
			report.InvalidDates++
		}
	}
	return report
}

func CheckTotals(doc model.Document) []TotalsDrift {
	drifts := make([]TotalsDrift, 0)
	for _, key := range LoggedDays(doc) {
		stored := dayTotals(doc.DailyLogs[key])
		computed := rebuildDay(doc.DailyLogs[key].Foods)
		if !totalsClose(stored, computed) {
			drifts = append(drifts, TotalsDrift{Date: key, Stored: stored, Computed: dayTotals(computed)})
		}
	}
	sort.Slice(drifts, func(i, j int) bool { return drifts[i].Date < drifts[j].Date })
	return drifts
}

// RepairTotals rebuilds every day by replaying its foods through AddFoodEntry.
func RepairTotals(doc model.Document) model.Document {
	rebuilt := doc
	rebuilt.DailyLogs = map[string]model.DayLog{}
	for key, day := range doc.DailyLogs {
		rebuilt.DailyLogs[key] = model.DayLog{Foods: []model.FoodEntry{}}
		for _, food := range day.Foods {
			rebuilt = AddFoodEntry(rebuilt, key, food)
		}
	}
	return rebuilt
}

func rebuildDay(foods []model.FoodEntry) model.DayLog {
	doc := model.Document{DailyLogs: map[string]model.DayLog{}}
	for _, food := range foods {
		doc = AddFoodEntry(doc, "", food)
	}
	return doc.DailyLogs[""]
}

func totalsClose(a model.MacroTotals, b model.DayLog) bool {
	return math.Abs(a.Calories-b.TotalCalories) <= totalsTolerance &&
		math.Abs(a.ProteinG-b.TotalProtein) <= totalsTolerance &&
		math.Abs(a.CarbsG-b.TotalCarbs) <= totalsTolerance &&
		math.Abs(a.FatG-b.TotalFat) <= totalsTolerance
}

func CreateBackup(dataPath, outPath string) (BackupInfo, error) {
	if strings.TrimSpace(dataPath) == "" {
		return BackupInfo{}, fmt.Errorf("data path is required")
	}
	if strings.TrimSpace(outPath) == "" {
		return BackupInfo{}, fmt.Errorf("backup output path is required")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("create backup directory: %w", err)
	}
	if err := copyFile(dataPath, outPath); err != nil {
		return BackupInfo{}, err
	}
	checksum, err := fileSHA256(outPath)
	if err != nil {
		return BackupInfo{}, err
	}
	if err := os.WriteFile(outPath+".sha256", []byte(checksum+"\n"), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	st, err := os.Stat(outPath)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("stat backup: %w", err)
	}
	return BackupInfo{Path: outPath, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()}, nil
}

// RestoreBackup copies a verified backup over the data file. Backups that
// are not valid JSON are refused so a restore never installs a file that
// would only load as the default document.
func RestoreBackup(backupPath, dataPath string, force bool) error {
	if strings.TrimSpace(backupPath) == "" || strings.TrimSpace(dataPath) == "" {
		return fmt.Errorf("backup path and data path are required")
	}
	if !force {
		if _, err := os.Stat(dataPath); err == nil {
			return fmt.Errorf("target data file already exists; use --force to overwrite")
		}
	}
	checksumFile := backupPath + ".sha256"
	if expected, err := os.ReadFile(checksumFile); err == nil {
		actual, err := fileSHA256(backupPath)
		if err != nil {
			return err
		}
		if strings.TrimSpace(string(expected)) != actual {
			return fmt.Errorf("backup checksum mismatch")
		}
	}
	raw, err := os.ReadFile(backupPath)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}
	if !json.Valid(raw) {
		return fmt.Errorf("backup %s is not valid JSON", backupPath)
	}
	if err := os.MkdirAll(filepath.Dir(dataPath), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return copyFile(backupPath, dataPath)
}

func ListBackups(dir string) ([]BackupInfo, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}
	out := make([]BackupInfo, 0)
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		full := filepath.Join(dir, f.Name())
		st, err := os.Stat(full)
		if err != nil {
			continue
		}
		checksum := ""
		if b, err := os.ReadFile(full + ".sha256"); err == nil {
			checksum = strings.TrimSpace(string(b))
		}
		out = append(out, BackupInfo{Path: full, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination file: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy file: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close destination file: %w", err)
	}
	return nil
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for checksum: %w", err)
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
