package movies

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const (
	DefaultTMDBBaseURL = "https://api.themoviedb.org"

	// сколько фильмов показываем на одно настроение
	maxRecommendations = 5
)

// FetchError — любая ошибка запроса или разбора ответа TMDB
type FetchError struct {
	Genre GenreID
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("tmdb fetch genre=%d: %v", e.Genre, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

type TMDBClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewTMDBClient(baseURL, apiKey string, timeout time.Duration) *TMDBClient {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultTMDBBaseURL
	}
	return &TMDBClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type discoverResponse struct {
	Results *[]discoverMovie `json:"results"`
}

type discoverMovie struct {
	Title       *string  `json:"title"`
	ReleaseDate *string  `json:"release_date"`
	VoteAverage *float64 `json:"vote_average"`
}

// Fetch — GET /3/discover/movie, первые 5 результатов в порядке TMDB (popularity.desc).
func (c *TMDBClient) Fetch(ctx context.Context, genre GenreID) ([]Movie, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("with_genres", strconv.Itoa(int(genre)))
	q.Set("sort_by", "popularity.desc")

	endpoint := c.baseURL + "/3/discover/movie?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &FetchError{Genre: genre, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &FetchError{Genre: genre, Err: fmt.Errorf("request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{Genre: genre, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var parsed discoverResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &FetchError{Genre: genre, Err: fmt.Errorf("decode: %w", err)}
	}
	if parsed.Results == nil {
		return nil, &FetchError{Genre: genre, Err: fmt.Errorf("missing results")}
	}

	results := *parsed.Results
	if len(results) > maxRecommendations {
		results = results[:maxRecommendations]
	}

	out := make([]Movie, 0, len(results))
	for i, r := range results {
		if r.Title == nil || r.ReleaseDate == nil || r.VoteAverage == nil {
			return nil, &FetchError{Genre: genre, Err: fmt.Errorf("result %d: missing field", i)}
		}
		out = append(out, Movie{
			Title:  *r.Title,
			Year:   yearOf(*r.ReleaseDate),
			Rating: *r.VoteAverage,
		})
	}

	return out, nil
}

// "2014-11-05" -> "2014"; короткие даты (у анонсов бывает "") отдаём как есть
func yearOf(date string) string {
	if len(date) < 4 {
		return date
	}
	return date[:4]
}
