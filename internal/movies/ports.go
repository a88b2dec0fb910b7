package movies

import "context"

// GenreID — числовой код жанра в TMDB
type GenreID int

type Movie struct {
	Title  string  `json:"title"`
	Year   string  `json:"year"`
	Rating float64 `json:"rating"`
}

// Fetcher — источник рекомендаций по жанру (TMDB discover)
type Fetcher interface {
	Fetch(ctx context.Context, genre GenreID) ([]Movie, error)
}

type Service interface {
	Recommend(ctx context.Context, mood Mood) (*Recommendation, error)
}
