package hub

import (
	"fmt"
	"strings"

	"github.com/saadjs/habit-hub/internal/app"
	"github.com/saadjs/habit-hub/internal/model"
	"github.com/saadjs/habit-hub/internal/service"
	"github.com/saadjs/habit-hub/internal/store"
)

func documentStore() *store.Store[model.Document] {
	return service.NewDocumentStore(cfg.Data.Path, logger)
}

func sessionStore() *store.Store[model.SessionDocument] {
	return service.NewSessionStore(cfg.Data.SessionsPath, logger)
}

func loadDocument() model.Document {
	return documentStore().Load().Document
}

func loadSessions() model.SessionDocument {
	return sessionStore().Load().Document
}

// withDocument runs one load, mutate, save cycle on the macro document.
func withDocument(mutate func(model.Document) (model.Document, error)) error {
	s := documentStore()
	next, err := mutate(s.Load().Document)
	if err != nil {
		return err
	}
	return s.Save(next)
}

func withSessions(mutate func(model.SessionDocument) (model.SessionDocument, error)) error {
	s := sessionStore()
	next, err := mutate(s.Load().Document)
	if err != nil {
		return err
	}
	return s.Save(next)
}

func resolveDate(value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return service.DateKey(now()), nil
	}
	return service.ParseDateKey(value)
}

func resolveBackupDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg.Data.BackupDir != "" {
		return cfg.Data.BackupDir
	}
	return app.DefaultBackupDir(cfg.Data.Path)
}

func requireProfile(doc model.Document) error {
	if !service.HasProfile(doc.Profile) {
		return fmt.Errorf("no profile set; run 'hub profile set' first")
	}
	return nil
}

func formatGrams(v float64) string {
	return fmt.Sprintf("%.1fg", v)
}

// progressBar renders consumed/target as a fixed-width bar, full when the target is met.
func progressBar(consumed, target float64, width int) string {
	filled := 0
	if target > 0 {
		filled = min(int(consumed/target*float64(width)), width)
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
