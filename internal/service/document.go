package service

import (
	"log/slog"

	"github.com/saadjs/habit-hub/internal/model"
	"github.com/saadjs/habit-hub/internal/store"
)

// DefaultDocument is the document used when no readable file exists.
func DefaultDocument() model.Document {
	return model.Document{
		Profile:       model.Profile{Goal: model.GoalMaintain},
		WeightHistory: []model.WeightEntry{},
		DailyLogs:     map[string]model.DayLog{},
	}
}

// NormalizeDocument fills in defaults for fields absent from older files.
func NormalizeDocument(doc *model.Document) {
	if doc.WeightHistory == nil {
		doc.WeightHistory = []model.WeightEntry{}
	}
	if doc.DailyLogs == nil {
		doc.DailyLogs = map[string]model.DayLog{}
	}
	if goal, err := ParseGoal(string(doc.Profile.Goal)); err == nil {
		doc.Profile.Goal = goal
	} else {
		doc.Profile.Goal = model.GoalMaintain
	}
	for key, day := range doc.DailyLogs {
		if day.Foods == nil {
			day.Foods = []model.FoodEntry{}
			doc.DailyLogs[key] = day
		}
	}
}

func NewDocumentStore(path string, logger *slog.Logger) *store.Store[model.Document] {
	return store.New(path, DefaultDocument,
		store.WithNormalizer(NormalizeDocument),
		store.WithLogger[model.Document](logger),
	)
}

func DefaultSessionDocument() model.SessionDocument {
	return model.SessionDocument{
		Projects:     []model.Project{},
		Achievements: []string{},
	}
}

func NormalizeSessionDocument(doc *model.SessionDocument) {
	if doc.Projects == nil {
		doc.Projects = []model.Project{}
	}
	if doc.Achievements == nil {
		doc.Achievements = []string{}
	}
}

func NewSessionStore(path string, logger *slog.Logger) *store.Store[model.SessionDocument] {
	return store.New(path, DefaultSessionDocument,
		store.WithNormalizer(NormalizeSessionDocument),
		store.WithLogger[model.SessionDocument](logger),
	)
}
