package content

import "github.com/phrazzld/flashdeck/internal/domain"

var fallbackCards = []domain.Flashcard{
	{ID: "1", Question: "What is 2 + 2?", Answer: "4", Category: domain.CategoryMath, Difficulty: domain.DifficultyEasy},
	{ID: "2", Question: "What is 5 × 3?", Answer: "15", Category: domain.CategoryMath, Difficulty: domain.DifficultyEasy},
	{ID: "3", Question: "What is the quadratic formula (Bhaskara's formula)?", Answer: "x = [-b ± √(b² - 4ac)] / 2a", Category: domain.CategoryMath, Difficulty: domain.DifficultyHard},
	{ID: "4", Question: "What is the capital of Brazil?", Answer: "Brasília", Category: domain.CategoryGeography, Difficulty: domain.DifficultyMedium},
	{ID: "5", Question: "Which is the largest country in the world by area?", Answer: "Russia", Category: domain.CategoryGeography, Difficulty: domain.DifficultyMedium},
	{ID: "6", Question: `Who wrote "Dom Casmurro"?`, Answer: "Machado de Assis", Category: domain.CategoryLiterature, Difficulty: domain.DifficultyMedium},
	{ID: "7", Question: "Which chemical element has the symbol O?", Answer: "Oxygen", Category: domain.CategoryScience, Difficulty: domain.DifficultyEasy},
	{ID: "8", Question: "What is photosynthesis?", Answer: "The process by which plants convert sunlight into energy", Category: domain.CategoryScience, Difficulty: domain.DifficultyMedium},
	{ID: "9", Question: "In what year did humans first walk on the Moon?", Answer: "1969", Category: domain.CategoryHistory, Difficulty: domain.DifficultyHard},
	{ID: "10", Question: "Who was the first president of Brazil?", Answer: "Marshal Deodoro da Fonseca", Category: domain.CategoryHistory, Difficulty: domain.DifficultyMedium},
	{ID: "11", Question: `What is the plural of the Portuguese word "cidadão"?`, Answer: "Cidadãos", Category: domain.CategoryLiterature, Difficulty: domain.DifficultyEasy},
	{ID: "12", Question: "What is a metaphor?", Answer: `A figure of speech that compares two things without using "like" or "as"`, Category: domain.CategoryLiterature, Difficulty: domain.DifficultyHard},
}

// Fallback returns a copy of the fixed 12-card set served when the remote
// source is unavailable or not used.
func Fallback() []domain.Flashcard {
	out := make([]domain.Flashcard, len(fallbackCards))
	copy(out, fallbackCards)
	return out
}
