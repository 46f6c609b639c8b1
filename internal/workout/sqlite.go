package workout

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/saadjs/habit-hub/internal/db"
	"github.com/saadjs/habit-hub/internal/model"
)

const workoutsTable = "workouts"

var workoutColumns = []string{"id", "exercise", "sets", "reps", "weight", "date", "created_at"}

// SQLiteStorage persists workouts in a migrated SQLite database.
type SQLiteStorage struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLiteStorage opens the database at path and applies pending migrations.
func OpenSQLiteStorage(ctx context.Context, path string) (*SQLiteStorage, error) {
	sqldb, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.ApplyMigrations(ctx, sqldb); err != nil {
		sqldb.Close()
		return nil, err
	}
	return &SQLiteStorage{db: sqldb, now: time.Now}, nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *SQLiteStorage) Create(ctx context.Context, in Input) (model.Workout, error) {
	in = in.normalized()
	if err := in.Validate(); err != nil {
		return model.Workout{}, err
	}
	w := model.Workout{
		ID:        uuid.NewString(),
		Exercise:  in.Exercise,
		Sets:      in.Sets,
		Reps:      in.Reps,
		Weight:    in.Weight,
		Date:      in.Date,
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
	}

	query, args, err := sq.Insert(workoutsTable).
		Columns(workoutColumns...).
		Values(w.ID, w.Exercise, w.Sets, w.Reps, w.Weight, w.Date, w.CreatedAt.Format(time.RFC3339Nano)).
		ToSql()
	if err != nil {
		return model.Workout{}, fmt.Errorf("build insert workout: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return model.Workout{}, fmt.Errorf("insert workout: %w", err)
	}
	return w, nil
}

func (s *SQLiteStorage) List(ctx context.Context) ([]model.Workout, error) {
	query, args, err := sq.Select(workoutColumns...).
		From(workoutsTable).
		OrderBy("rowid ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list workouts: %w", err)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	out := make([]model.Workout, 0)
	for rows.Next() {
		var (
			w       model.Workout
			created string
		)
		if err := rows.Scan(&w.ID, &w.Exercise, &w.Sets, &w.Reps, &w.Weight, &w.Date, &created); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		if w.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("parse workout %s created_at: %w", w.ID, err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workouts: %w", err)
	}
	return out, nil
}
