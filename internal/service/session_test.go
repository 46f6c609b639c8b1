package service_test

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/saadjs/habit-hub/internal/service"
)

func day(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		panic(err)
	}
	return t.Add(10 * time.Hour)
}

func TestStreak(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		state service.StreakState
		last  time.Time
		today time.Time
		want  service.StreakState
	}{
		{"first session", service.StreakState{}, time.Time{}, day("2024-01-01"), service.StreakState{Current: 1, Longest: 1}},
		{"consecutive day", service.StreakState{Current: 1, Longest: 1}, day("2024-01-01"), day("2024-01-02"), service.StreakState{Current: 2, Longest: 2}},
		{"gap resets", service.StreakState{Current: 2, Longest: 2}, day("2024-01-02"), day("2024-01-05"), service.StreakState{Current: 1, Longest: 2}},
		{"same day unchanged", service.StreakState{Current: 3, Longest: 5}, day("2024-01-05"), day("2024-01-05").Add(5 * time.Hour), service.StreakState{Current: 3, Longest: 5}},
		{"month boundary", service.StreakState{Current: 4, Longest: 4}, day("2024-01-31"), day("2024-02-01"), service.StreakState{Current: 5, Longest: 5}},
	}
	for _, tc := range cases {
		if got := service.Streak(tc.state, tc.last, tc.today); got != tc.want {
			t.Fatalf("%s: expected %+v, got %+v", tc.name, tc.want, got)
		}
	}
}

func TestRecordSessionAdvancesStats(t *testing.T) {
	t.Parallel()

	doc := service.DefaultSessionDocument()
	start := day("2024-01-01")
	doc, elapsed, err := service.RecordSession(doc, start, start.Add(90*time.Minute+500*time.Millisecond))
	if err != nil {
		t.Fatalf("record first session: %v", err)
	}
	if elapsed != 90*time.Minute {
		t.Fatalf("expected elapsed truncated to 90m, got %s", elapsed)
	}

	start = day("2024-01-02")
	doc, _, err = service.RecordSession(doc, start, start.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("record second session: %v", err)
	}
	if doc.TotalSessions != 2 || !approx(doc.TotalMinutes, 120) {
		t.Fatalf("unexpected totals: %+v", doc)
	}
	if doc.CurrentStreak != 2 || doc.LongestStreak != 2 {
		t.Fatalf("expected streak 2/2, got %d/%d", doc.CurrentStreak, doc.LongestStreak)
	}
	if !service.ParseSessionTime(doc.LastSession).Equal(start.Add(30 * time.Minute)) {
		t.Fatalf("unexpected last session %q", doc.LastSession)
	}
}

func TestRecordSessionRejectsShortSessions(t *testing.T) {
	t.Parallel()

	doc := service.DefaultSessionDocument()
	start := day("2024-01-01")
	got, _, err := service.RecordSession(doc, start, start.Add(400*time.Millisecond))
	if !errors.Is(err, service.ErrSessionTooShort) {
		t.Fatalf("expected ErrSessionTooShort, got %v", err)
	}
	if got.TotalSessions != 0 || got.LastSession != "" {
		t.Fatalf("expected stats untouched, got %+v", got)
	}
}

func TestRecordSessionRejectsOutOfRangeSpan(t *testing.T) {
	t.Parallel()

	doc := service.DefaultSessionDocument()
	got, _, err := service.RecordSession(doc, time.Time{}, day("2024-01-01"))
	if !errors.Is(err, service.ErrSessionTooLong) {
		t.Fatalf("expected ErrSessionTooLong, got %v", err)
	}
	if got.TotalSessions != 0 || got.TotalMinutes != 0 {
		t.Fatalf("expected stats untouched, got %+v", got)
	}
}

func TestParseSessionTimeAcceptsLegacyFormats(t *testing.T) {
	t.Parallel()

	for _, value := range []string{
		"2024-01-02T15:04:05.123456",
		"2024-01-02T15:04:05",
		"2024-01-02T15:04:05+02:00",
		"2024-01-02",
	} {
		if got := service.ParseSessionTime(value); got.IsZero() {
			t.Fatalf("expected %q to parse", value)
		}
	}
	if got := service.ParseSessionTime("not a time"); !got.IsZero() {
		t.Fatalf("expected garbage to yield zero time, got %v", got)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	if got := service.FormatDuration(65 * time.Second); got != "01:05" {
		t.Fatalf("expected 01:05, got %s", got)
	}
	if got := service.FormatDuration(2*time.Hour + 3*time.Minute + 4*time.Second); got != "02:03:04" {
		t.Fatalf("expected 02:03:04, got %s", got)
	}
}

func TestAddProject(t *testing.T) {
	t.Parallel()

	now := day("2024-06-01")
	doc, err := service.AddProject(service.DefaultSessionDocument(), service.ProjectInput{Name: " cli ", Language: "Go"}, now)
	if err != nil {
		t.Fatalf("add project: %v", err)
	}
	if len(doc.Projects) != 1 || doc.Projects[0].Name != "cli" || doc.Projects[0].Status != "In Progress" {
		t.Fatalf("unexpected projects: %+v", doc.Projects)
	}
	if _, err := service.AddProject(doc, service.ProjectInput{Name: "  "}, now); err == nil {
		t.Fatalf("expected empty name to fail")
	}
}

func TestQuoteIsDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	a := service.Quote(rand.New(rand.NewPCG(7, 7)))
	b := service.Quote(rand.New(rand.NewPCG(7, 7)))
	if a == "" || a != b {
		t.Fatalf("expected identical non-empty quotes, got %q and %q", a, b)
	}
}
