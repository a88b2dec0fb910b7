package movies

import (
	"context"
	"fmt"
	"html"
	"strconv"
	"strings"
)

type Recommendation struct {
	Mood   Mood
	Genre  GenreID
	Movies []Movie
}

type service struct {
	fetcher Fetcher
}

func NewService(fetcher Fetcher) Service {
	return &service{fetcher: fetcher}
}

func (s *service) Recommend(ctx context.Context, mood Mood) (*Recommendation, error) {
	genre, err := GenreFor(mood)
	if err != nil {
		return nil, err
	}

	list, err := s.fetcher.Fetch(ctx, genre)
	if err != nil {
		return nil, err
	}

	return &Recommendation{Mood: mood, Genre: genre, Movies: list}, nil
}

// Line — строка для Telegram (parse mode HTML), название подчёркнуто курсивом.
func (m Movie) Line() string {
	return fmt.Sprintf("<u><i>%s</i></u> (%s), rate: %s",
		html.EscapeString(m.Title), html.EscapeString(m.Year), formatScore(m.Rating))
}

func (r *Recommendation) Lines() []string {
	out := make([]string, 0, len(r.Movies))
	for _, m := range r.Movies {
		out = append(out, m.Line())
	}
	return out
}

// Text — итоговое сообщение, которым заменяется меню.
func (r *Recommendation) Text() string {
	return fmt.Sprintf("Here are some %s movies:\n", r.Mood) + strings.Join(r.Lines(), "\n")
}

// 7.25 -> "7.25", 8 -> "8.0"
func formatScore(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
