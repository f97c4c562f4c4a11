package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/flashdeck/internal/api/shared"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/platform/i18n"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
)

// FlashcardHandler serves the card catalogue straight from the content
// provider, independent of the session.
type FlashcardHandler struct {
	provider FlashcardProvider
	logger   *slog.Logger
}

// NewFlashcardHandler creates a new FlashcardHandler.
func NewFlashcardHandler(provider FlashcardProvider, logger *slog.Logger) *FlashcardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for FlashcardHandler")
	}
	return &FlashcardHandler{
		provider: provider,
		logger:   logger.With(slog.String("component", "flashcard_handler")),
	}
}

// List handles GET /flashcards?category=&difficulty=. Both filters are
// optional and combine.
func (h *FlashcardHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	level, byDifficulty, err := parseDifficulty(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	category := r.URL.Query().Get("category")

	var cards []domain.Flashcard
	switch {
	case category != "":
		cards = h.provider.GetFlashcardsByCategory(r.Context(), category)
		if byDifficulty {
			cards = domain.FilterByDifficulty(cards, level)
		}
	case byDifficulty:
		cards = h.provider.GetFlashcardsByDifficulty(r.Context(), level)
	default:
		cards = h.provider.GetFlashcards(r.Context())
	}

	log.Debug("listed flashcards",
		slog.String("category", category),
		slog.String("difficulty", string(level)),
		slog.Int("count", len(cards)))

	shared.RespondWithJSON(w, r, http.StatusOK, FlashcardsResponse{
		Flashcards: cards,
		Count:      len(cards),
	})
}

// Stats handles GET /flashcards/stats.
func (h *FlashcardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.provider.GetFlashcardsStats(r.Context()))
}

// Categories handles GET /categories?lang=. Names are localized and counts
// cover the full card set.
func (h *FlashcardHandler) Categories(w http.ResponseWriter, r *http.Request) {
	tag := i18n.ResolveTag(r)
	cards := h.provider.GetFlashcards(r.Context())

	shared.RespondWithJSON(w, r, http.StatusOK, CategoriesResponse{
		Language:   tag.String(),
		Categories: i18n.Categories(tag, cards),
	})
}
