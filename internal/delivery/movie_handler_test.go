package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/moodflix/internal/movies"
	"go.uber.org/zap"
)

type fakeMovieService struct {
	rec *movies.Recommendation
	err error
}

func (f *fakeMovieService) Recommend(_ context.Context, mood movies.Mood) (*movies.Recommendation, error) {
	if f.err != nil {
		return nil, f.err
	}
	rec := *f.rec
	rec.Mood = mood
	return &rec, nil
}

func newTestRouter(svc movies.Service) http.Handler {
	zl := logger.NewZapLogger(zap.NewNop().Sugar())
	return NewRouter(NewMovieHandler(svc, zl))
}

func TestPing(t *testing.T) {
	router := newTestRouter(&fakeMovieService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Fatalf("GET /ping = %d %q", rec.Code, rec.Body.String())
	}
}

func TestListMoods(t *testing.T) {
	router := newTestRouter(&fakeMovieService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/moods", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got []moodDTO
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := []moodDTO{
		{Mood: "happy", Label: "Happy", GenreID: 35},
		{Mood: "sad", Label: "Sad", GenreID: 18},
		{Mood: "excited", Label: "Excited", GenreID: 28},
		{Mood: "scared", Label: "Scared", GenreID: 27},
		{Mood: "romantic", Label: "Romantic", GenreID: 10749},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("moods[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRecommend(t *testing.T) {
	svc := &fakeMovieService{rec: &movies.Recommendation{
		Genre:  28,
		Movies: []movies.Movie{{Title: "Heat", Year: "1995", Rating: 7.9}},
	}}
	router := newTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recommendations/excited", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var got recommendationDTO
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Mood != "excited" || got.GenreID != 28 {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if len(got.Movies) != 1 || got.Movies[0].Title != "Heat" || got.Movies[0].Year != "1995" {
		t.Fatalf("movies = %+v", got.Movies)
	}
}

func TestRecommendMoodIsCaseInsensitive(t *testing.T) {
	svc := &fakeMovieService{rec: &movies.Recommendation{Genre: 35}}
	router := newTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recommendations/HAPPY", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var got recommendationDTO
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Mood != "happy" {
		t.Fatalf("Mood = %q, want happy", got.Mood)
	}
}

func TestRecommendErrors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		svc        *fakeMovieService
		wantStatus int
	}{
		{
			name:       "unknown mood",
			path:       "/recommendations/bored",
			svc:        &fakeMovieService{},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "fetch error",
			path:       "/recommendations/happy",
			svc:        &fakeMovieService{err: &movies.FetchError{Genre: 35, Err: errors.New("status 503")}},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "other error",
			path:       "/recommendations/sad",
			svc:        &fakeMovieService{err: errors.New("boom")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(tt.svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if strings.Contains(rec.Body.String(), "status 503") {
				t.Fatalf("upstream error leaked: %q", rec.Body.String())
			}
		})
	}
}
