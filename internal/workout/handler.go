package workout

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	storage Storage
	metrics *Metrics
	logger  *slog.Logger
}

func NewHandler(storage Storage, metrics *Metrics, logger *slog.Logger) *Handler {
	if metrics == nil {
		metrics = NewMetrics()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{storage: storage, metrics: metrics, logger: logger}
}

// Routes returns the API mux wrapped in request logging and metrics.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.health)
	mux.HandleFunc("POST /workouts", h.createWorkout)
	mux.HandleFunc("GET /workouts", h.listWorkouts)
	mux.Handle("GET /metrics", h.metrics.Handler())
	return instrument(h.logger, h.metrics, mux)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Workout API Running"})
}

func (h *Handler) createWorkout(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	created, err := h.storage.Create(r.Context(), in)
	if err != nil {
		if errors.Is(err, ErrInvalidWorkout) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.ErrorContext(r.Context(), "create workout failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not store workout")
		return
	}
	h.metrics.created.Inc()
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) listWorkouts(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.storage.List(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "list workouts failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not list workouts")
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
