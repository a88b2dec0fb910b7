package movies

import "fmt"

type Mood int

const (
	MoodHappy Mood = iota
	MoodSad
	MoodExcited
	MoodScared
	MoodRomantic
)

type moodEntry struct {
	name  string
	label string
	genre GenreID
}

// порядок совпадает с порядком кнопок в меню.
// 35 Comedy, 18 Drama, 28 Action, 27 Horror, 10749 Romance
var moodTable = [...]moodEntry{
	MoodHappy:    {name: "happy", label: "Happy", genre: 35},
	MoodSad:      {name: "sad", label: "Sad", genre: 18},
	MoodExcited:  {name: "excited", label: "Excited", genre: 28},
	MoodScared:   {name: "scared", label: "Scared", genre: 27},
	MoodRomantic: {name: "romantic", label: "Romantic", genre: 10749},
}

// UnknownMoodError — настроение вне фиксированного набора (например, устаревшая кнопка)
type UnknownMoodError struct {
	Value string
}

func (e *UnknownMoodError) Error() string {
	return fmt.Sprintf("unknown mood: %q", e.Value)
}

func (m Mood) valid() bool {
	return m >= 0 && int(m) < len(moodTable)
}

func (m Mood) String() string {
	if !m.valid() {
		return fmt.Sprintf("Mood(%d)", int(m))
	}
	return moodTable[m].name
}

// Label — подпись кнопки
func (m Mood) Label() string {
	if !m.valid() {
		return m.String()
	}
	return moodTable[m].label
}

func Moods() []Mood {
	out := make([]Mood, 0, len(moodTable))
	for i := range moodTable {
		out = append(out, Mood(i))
	}
	return out
}

func GenreFor(m Mood) (GenreID, error) {
	if !m.valid() {
		return 0, &UnknownMoodError{Value: m.String()}
	}
	return moodTable[m].genre, nil
}

// ParseMood разбирает callback data кнопки меню. Совпадение только точное:
// кнопки шлют имя в нижнем регистре, всё остальное считается подделкой.
func ParseMood(s string) (Mood, error) {
	for i, e := range moodTable {
		if e.name == s {
			return Mood(i), nil
		}
	}
	return 0, &UnknownMoodError{Value: s}
}
