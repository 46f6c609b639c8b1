package workout

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/saadjs/habit-hub/internal/model"
)

// MemoryStorage keeps workouts in process memory; they are lost on restart.
type MemoryStorage struct {
	mu       sync.RWMutex
	workouts []model.Workout
	now      func() time.Time
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{workouts: []model.Workout{}, now: time.Now}
}

func (s *MemoryStorage) Create(_ context.Context, in Input) (model.Workout, error) {
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
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.workouts = append(s.workouts, w)
	return w, nil
}

func (s *MemoryStorage) List(_ context.Context) ([]model.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.workouts), nil
}
