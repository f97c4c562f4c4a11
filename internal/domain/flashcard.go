package domain

// Difficulty grades how hard a flashcard is.
type Difficulty string

// Supported difficulty levels.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists every difficulty in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Valid reports whether d is one of the supported levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Flashcard is a single question/answer pair. Cards are immutable once
// retrieved; a loaded set is always replaced as a whole.
type Flashcard struct {
	ID         string     `json:"id"`
	Question   string     `json:"question"`
	Answer     string     `json:"answer"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
}

// InCategory reports whether the card belongs to category. CategoryAll matches every card.
func (f Flashcard) InCategory(category string) bool {
	return category == CategoryAll || f.Category == category
}

// FilterByCategory returns the cards matching category, preserving order.
func FilterByCategory(cards []Flashcard, category string) []Flashcard {
	out := make([]Flashcard, 0, len(cards))
	for _, c := range cards {
		if c.InCategory(category) {
			out = append(out, c)
		}
	}
	return out
}

// FilterByDifficulty returns the cards with exactly the given difficulty, preserving order.
func FilterByDifficulty(cards []Flashcard, level Difficulty) []Flashcard {
	out := make([]Flashcard, 0, len(cards))
	for _, c := range cards {
		if c.Difficulty == level {
			out = append(out, c)
		}
	}
	return out
}
