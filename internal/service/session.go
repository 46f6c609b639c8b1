package service

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/saadjs/habit-hub/internal/model"
)

var (
	ErrSessionTooShort = errors.New("session too short to count")
	ErrSessionTooLong  = errors.New("session length out of range")
)

type StreakState struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// Streak advances the streak counters for a session on today. A zero
// lastSession is the first session ever. Only the most recent session date is
// considered, so a second session on the same day leaves the streak unchanged.
func Streak(state StreakState, lastSession, today time.Time) StreakState {
	if lastSession.IsZero() {
		state.Current = 1
	} else {
		switch gap := daysBetween(lastSession, today); {
		case gap == 1:
			state.Current++
		case gap > 1:
			state.Current = 1
		}
	}
	state.Longest = max(state.Longest, state.Current)
	return state
}

var sessionTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseSessionTime reads last_session values, including the zone-less
// timestamps written by older versions. Empty or unreadable values yield the zero time.
func ParseSessionTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range sessionTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}

// RecordSession adds a finished session to the stats and advances the streak.
func RecordSession(doc model.SessionDocument, started, ended time.Time) (model.SessionDocument, time.Duration, error) {
	raw := ended.Sub(started)
	if raw == math.MaxInt64 {
		// Sub saturates when the span does not fit in a Duration.
		return doc, raw, ErrSessionTooLong
	}
	elapsed := raw.Truncate(time.Second)
	if elapsed < time.Second {
		return doc, elapsed, ErrSessionTooShort
	}

	streak := Streak(StreakState{Current: doc.CurrentStreak, Longest: doc.LongestStreak}, ParseSessionTime(doc.LastSession), ended)
	doc.TotalSessions++
	doc.TotalMinutes += elapsed.Seconds() / 60
	doc.CurrentStreak = streak.Current
	doc.LongestStreak = streak.Longest
	doc.LastSession = ended.Format(time.RFC3339)
	return doc, elapsed, nil
}

// FormatDuration renders HH:MM:SS, or MM:SS below one hour.
func FormatDuration(d time.Duration) string {
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

type ProjectInput struct {
	Name        string
	Language    string
	Description string
}

func AddProject(doc model.SessionDocument, in ProjectInput, now time.Time) (model.SessionDocument, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return doc, fmt.Errorf("project name is required")
	}
	projects := make([]model.Project, 0, len(doc.Projects)+1)
	projects = append(projects, doc.Projects...)
	doc.Projects = append(projects, model.Project{
		Name:        name,
		Language:    strings.TrimSpace(in.Language),
		Description: strings.TrimSpace(in.Description),
		Created:     now.Format(time.RFC3339),
		Status:      "In Progress",
	})
	return doc, nil
}

var quotes = []string{
	"Code is like humor. When you have to explain it, it's bad.",
	"First, solve the problem. Then, write the code.",
	"Experience is the name everyone gives to their mistakes.",
	"In order to be irreplaceable, one must always be different.",
	"Java is to JavaScript what car is to carpet.",
	"Sometimes it pays to stay in bed on Monday, rather than spending the rest of the week debugging Monday's code.",
	"Perfection is achieved not when there is nothing more to add, but rather when there is nothing more to take away.",
	"Code never lies, comments sometimes do.",
	"Simplicity is the ultimate sophistication.",
	"Make it work, make it right, make it fast.",
}

// Quote picks a motivational quote. A nil rng uses the global source.
func Quote(rng *rand.Rand) string {
	if rng == nil {
		return quotes[rand.IntN(len(quotes))]
	}
	return quotes[rng.IntN(len(quotes))]
}
