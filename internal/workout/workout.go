// Package workout serves the workout log over HTTP.
package workout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/saadjs/habit-hub/internal/model"
)

const dateLayout = "2006-01-02"

var ErrInvalidWorkout = errors.New("invalid workout")

// Storage persists workouts. List returns them in creation order and never nil.
type Storage interface {
	Create(ctx context.Context, in Input) (model.Workout, error)
	List(ctx context.Context) ([]model.Workout, error)
}

// Input is the request body of POST /workouts.
type Input struct {
	Exercise string  `json:"exercise"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
	Date     string  `json:"date,omitempty"`
}

func (in Input) Validate() error {
	if strings.TrimSpace(in.Exercise) == "" {
		return fmt.Errorf("%w: exercise is required", ErrInvalidWorkout)
	}
	if in.Sets <= 0 {
		return fmt.Errorf("%w: sets must be > 0", ErrInvalidWorkout)
	}
	if in.Reps <= 0 {
		return fmt.Errorf("%w: reps must be > 0", ErrInvalidWorkout)
	}
	if in.Weight < 0 {
		return fmt.Errorf("%w: weight must be >= 0", ErrInvalidWorkout)
	}
	if in.Date != "" {
		if _, err := time.Parse(dateLayout, in.Date); err != nil {
			return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidWorkout)
		}
	}
	return nil
}

func (in Input) normalized() Input {
	in.Exercise = strings.TrimSpace(in.Exercise)
	in.Date = strings.TrimSpace(in.Date)
	return in
}
