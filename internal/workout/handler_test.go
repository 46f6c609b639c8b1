package workout

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/saadjs/habit-hub/internal/model"
)

func newTestServer(t *testing.T, storage Storage) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := httptest.NewServer(NewHandler(storage, NewMetrics(), logger).Routes())
	t.Cleanup(ts.Close)
	return ts
}

func TestHealth(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, NewMemoryStorage())

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Workout API Running", body["message"])
}

func TestListWorkoutsEmptyIsArray(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, NewMemoryStorage())

	resp, err := http.Get(ts.URL + "/workouts")
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "[]", strings.TrimSpace(string(raw)))
}

func TestCreateThenListWorkout(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, NewMemoryStorage())

	resp, err := http.Post(ts.URL+"/workouts", "application/json",
		strings.NewReader(`{"exercise":"Bench","sets":3,"reps":8,"weight":60.5,"date":"2024-05-02"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created model.Workout
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Bench", created.Exercise)

	listResp, err := http.Get(ts.URL + "/workouts")
	require.NoError(t, err)
	defer listResp.Body.Close()
	var list []model.Workout
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&list))
	require.Len(t, list, 1)
	require.Equal(t, created.ID, list[0].ID)
	require.Equal(t, 60.5, list[0].Weight)
}

func TestCreateWorkoutValidation(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, NewMemoryStorage())

	for _, body := range []string{
		`{"sets":3,"reps":8}`,
		`{"exercise":"Bench","sets":0,"reps":8}`,
		`{"exercise":"Bench","sets":3,"reps":8,"date":"yesterday"}`,
		`not json`,
	} {
		resp, err := http.Post(ts.URL+"/workouts", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		var payload map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		require.NotEmpty(t, payload["error"], body)
	}
}

type failingStorage struct{}

func (failingStorage) Create(context.Context, Input) (model.Workout, error) {
	return model.Workout{}, errors.New("disk full")
}

func (failingStorage) List(context.Context) ([]model.Workout, error) {
	return nil, errors.New("disk full")
}

func TestStorageFailureIsInternalError(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, failingStorage{})

	resp, err := http.Post(ts.URL+"/workouts", "application/json", strings.NewReader(`{"exercise":"Row","sets":1,"reps":1}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/workouts")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestMetricsExposeRequestCounts(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, NewMemoryStorage())

	resp, err := http.Get(ts.URL + "/workouts")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(raw), `habit_hub_http_requests_total{code="200",method="GET",route="GET /workouts"} 1`)
	require.Contains(t, string(raw), "habit_hub_workouts_created_total 0")
}

func TestServeShutsDownOnCancel(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := &http.Server{Handler: NewHandler(NewMemoryStorage(), nil, logger).Routes()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, srv, ln, time.Second, logger) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
