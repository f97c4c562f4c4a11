package domain

// FlashcardStats summarizes a flashcard set.
type FlashcardStats struct {
	Total        int                `json:"total"`
	ByCategory   map[string]int     `json:"byCategory"`
	ByDifficulty map[Difficulty]int `json:"byDifficulty"`
}

// ComputeStats counts cards by category and difficulty in a single pass.
// Only categories and difficulties that occur appear in the maps.
func ComputeStats(cards []Flashcard) FlashcardStats {
	stats := FlashcardStats{
		Total:        len(cards),
		ByCategory:   make(map[string]int),
		ByDifficulty: make(map[Difficulty]int),
	}
	for _, c := range cards {
		stats.ByCategory[c.Category]++
		stats.ByDifficulty[c.Difficulty]++
	}
	return stats
}

// ProgressStats is the study summary shown on a user's profile.
// Cards graded easy count as completed.
type ProgressStats struct {
	TotalFlashcards     int `json:"totalFlashcards"`
	CompletedFlashcards int `json:"completedFlashcards"`
	CategoriesCount     int `json:"categoriesCount"`
	Progress            int `json:"progress"`
}

// ComputeProgress derives ProgressStats from a flashcard set. Progress is a
// rounded percentage and is 0 for an empty set.
func ComputeProgress(cards []Flashcard) ProgressStats {
	categories := make(map[string]struct{})
	completed := 0
	for _, c := range cards {
		categories[c.Category] = struct{}{}
		if c.Difficulty == DifficultyEasy {
			completed++
		}
	}

	progress := 0
	if len(cards) > 0 {
		progress = (completed*100 + len(cards)/2) / len(cards)
	}

	return ProgressStats{
		TotalFlashcards:     len(cards),
		CompletedFlashcards: completed,
		CategoriesCount:     len(categories),
		Progress:            progress,
	}
}

// CountInCategory returns the number of cards in category. CategoryAll counts every card.
func CountInCategory(cards []Flashcard, category string) int {
	if category == CategoryAll {
		return len(cards)
	}
	n := 0
	for _, c := range cards {
		if c.Category == category {
			n++
		}
	}
	return n
}
