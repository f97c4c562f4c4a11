package content

import (
	"strconv"

	"github.com/phrazzld/flashdeck/internal/domain"
)

const (
	// DefaultMaxItems caps how many remote items become cards.
	DefaultMaxItems = 12

	// remoteIDOffset keeps remote card IDs clear of the fallback IDs.
	remoteIDOffset = 100

	answerPreviewLength = 60
	remotePrefix        = "[API] "
)

// MapRemoteItems converts at most maxItems remote items into flashcards.
// Categories and difficulties are assigned by cycling through fixed lists
// using the item's position.
func MapRemoteItems(items []RemoteItem, maxItems int) []domain.Flashcard {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	if len(items) > maxItems {
		items = items[:maxItems]
	}

	categories := domain.RemoteCategoryCycle()
	out := make([]domain.Flashcard, 0, len(items))
	for i, item := range items {
		out = append(out, domain.Flashcard{
			ID:         strconv.Itoa(item.ID + remoteIDOffset),
			Question:   remotePrefix + item.Title,
			Answer:     remotePrefix + truncateRunes(item.Body, answerPreviewLength) + "...",
			Category:   categories[i%len(categories)],
			Difficulty: domain.Difficulties[i%len(domain.Difficulties)],
		})
	}
	return out
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
