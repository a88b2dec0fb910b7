package delivery

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/moodflix/internal/movies"
	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
)

type MovieHandler struct {
	svc movies.Service
	log *logger.ZapLogger
}

func NewMovieHandler(svc movies.Service, log *logger.ZapLogger) *MovieHandler {
	return &MovieHandler{svc: svc, log: log}
}

type moodDTO struct {
	Mood    string         `json:"mood"`
	Label   string         `json:"label"`
	GenreID movies.GenreID `json:"genre_id"`
}

type recommendationDTO struct {
	Mood    string         `json:"mood"`
	GenreID movies.GenreID `json:"genre_id"`
	Movies  []movies.Movie `json:"movies"`
}

// GET /moods
func (h *MovieHandler) ListMoods(w http.ResponseWriter, r *http.Request) {
	out := make([]moodDTO, 0, len(movies.Moods()))
	for _, m := range movies.Moods() {
		genre, err := movies.GenreFor(m)
		if err != nil {
			h.log.Log(logger.LogEntry{Level: "error", Message: "mood table broken", Error: err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		out = append(out, moodDTO{Mood: m.String(), Label: m.Label(), GenreID: genre})
	}

	writeJSON(w, http.StatusOK, out)
}

// GET /recommendations/{mood}
func (h *MovieHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	// в URL регистр не важен: /recommendations/Happy == /recommendations/happy
	mood, err := movies.ParseMood(strings.ToLower(chi.URLParam(r, "mood")))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	rec, err := h.svc.Recommend(r.Context(), mood)
	if err != nil {
		var fetchErr *movies.FetchError
		if errors.As(err, &fetchErr) {
			h.log.Log(logger.LogEntry{Level: "warn", Message: "tmdb fetch failed", Error: err})
			http.Error(w, "movie database unavailable", http.StatusBadGateway)
			return
		}
		h.log.Log(logger.LogEntry{Level: "error", Message: "recommend failed", Error: err})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	movieList := rec.Movies
	if movieList == nil {
		movieList = []movies.Movie{}
	}

	writeJSON(w, http.StatusOK, recommendationDTO{
		Mood:    rec.Mood.String(),
		GenreID: rec.Genre,
		Movies:  movieList,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
