package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCards() []Flashcard {
	return []Flashcard{
		{ID: "1", Category: CategoryMath, Difficulty: DifficultyEasy},
		{ID: "2", Category: CategoryScience, Difficulty: DifficultyMedium},
		{ID: "3", Category: CategoryMath, Difficulty: DifficultyHard},
		{ID: "4", Category: CategoryHistory, Difficulty: DifficultyEasy},
	}
}

func TestFilterByCategory(t *testing.T) {
	t.Parallel()

	cards := sampleCards()

	math := FilterByCategory(cards, CategoryMath)
	require.Len(t, math, 2)
	assert.Equal(t, "1", math[0].ID)
	assert.Equal(t, "3", math[1].ID)

	assert.Equal(t, cards, FilterByCategory(cards, CategoryAll))
	assert.Empty(t, FilterByCategory(cards, "astronomy"))
	assert.NotNil(t, FilterByCategory(nil, CategoryMath))
}

func TestFilterByDifficulty(t *testing.T) {
	t.Parallel()

	easy := FilterByDifficulty(sampleCards(), DifficultyEasy)
	require.Len(t, easy, 2)
	assert.Equal(t, "1", easy[0].ID)
	assert.Equal(t, "4", easy[1].ID)
}

func TestDifficultyValid(t *testing.T) {
	t.Parallel()

	for _, d := range Difficulties {
		assert.True(t, d.Valid(), d)
	}
	assert.False(t, Difficulty("extreme").Valid())
	assert.False(t, Difficulty("").Valid())
}

func TestComputeStats(t *testing.T) {
	t.Parallel()

	stats := ComputeStats(sampleCards())
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, map[string]int{CategoryMath: 2, CategoryScience: 1, CategoryHistory: 1}, stats.ByCategory)
	assert.Equal(t, map[Difficulty]int{DifficultyEasy: 2, DifficultyMedium: 1, DifficultyHard: 1}, stats.ByDifficulty)

	empty := ComputeStats(nil)
	assert.Zero(t, empty.Total)
	assert.NotNil(t, empty.ByCategory)
	assert.NotNil(t, empty.ByDifficulty)
}

func TestComputeProgress(t *testing.T) {
	t.Parallel()

	p := ComputeProgress(sampleCards())
	assert.Equal(t, ProgressStats{
		TotalFlashcards:     4,
		CompletedFlashcards: 2,
		CategoriesCount:     3,
		Progress:            50,
	}, p)

	assert.Equal(t, ProgressStats{}, ComputeProgress(nil))

	third := ComputeProgress([]Flashcard{
		{Category: CategoryMath, Difficulty: DifficultyEasy},
		{Category: CategoryMath, Difficulty: DifficultyHard},
		{Category: CategoryMath, Difficulty: DifficultyHard},
	})
	assert.Equal(t, 33, third.Progress)
}

func TestCountInCategory(t *testing.T) {
	t.Parallel()

	cards := sampleCards()
	assert.Equal(t, 2, CountInCategory(cards, CategoryMath))
	assert.Equal(t, 4, CountInCategory(cards, CategoryAll))
	assert.Zero(t, CountInCategory(cards, CategoryLiterature))
}

func TestKnownCategoriesOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"math", "science", "history", "geography", "literature", "all"}, KnownCategories())
	assert.Equal(t, KnownCategories()[:5], RemoteCategoryCycle())
}

func TestIsKnownCategory(t *testing.T) {
	t.Parallel()

	assert.True(t, IsKnownCategory(CategoryLiterature))
	assert.True(t, IsKnownCategory(CategoryAll))
	assert.False(t, IsKnownCategory("astronomy"))
	assert.False(t, IsKnownCategory(""))
}
