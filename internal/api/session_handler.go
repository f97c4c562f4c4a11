package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/flashdeck/internal/api/shared"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
	"github.com/phrazzld/flashdeck/internal/session"
)

// SessionHandler exposes the session store over HTTP.
type SessionHandler struct {
	session  SessionStore
	provider FlashcardProvider
	logger   *slog.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionStore SessionStore, provider FlashcardProvider, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SessionHandler")
	}
	return &SessionHandler{
		session:  sessionStore,
		provider: provider,
		logger:   logger.With(slog.String("component", "session_handler")),
	}
}

// Get handles GET /session.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	if _, ok := requireSessionOwner(w, r, h.session, log); !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, sessionToResponse(h.session.State()))
}

// ReloadFlashcards handles POST /session/flashcards/reload. It fetches the
// full card set and replaces the session's cards with it.
func (h *SessionHandler) ReloadFlashcards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, ok := requireSessionOwner(w, r, h.session, log)
	if !ok {
		return
	}

	cards := h.provider.GetFlashcards(r.Context())
	state := h.session.Dispatch(r.Context(), session.SetFlashcards{Flashcards: cards})

	log.Info("reloaded session flashcards",
		slog.String("user_id", userID),
		slog.Int("count", len(cards)))
	shared.RespondWithJSON(w, r, http.StatusOK, sessionToResponse(state))
}

// ClearFlashcards handles DELETE /session/flashcards. Emptying the card set
// resets study progress.
func (h *SessionHandler) ClearFlashcards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, ok := requireSessionOwner(w, r, h.session, log)
	if !ok {
		return
	}

	state := h.session.Dispatch(r.Context(), session.SetFlashcards{})

	log.Info("cleared session flashcards", slog.String("user_id", userID))
	shared.RespondWithJSON(w, r, http.StatusOK, sessionToResponse(state))
}

// SetCategory handles PUT /session/category.
func (h *SessionHandler) SetCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	if _, ok := requireSessionOwner(w, r, h.session, log); !ok {
		return
	}

	var req SetCategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if !domain.IsKnownCategory(req.Category) {
		HandleAPIError(w, r, domain.NewValidationError("category", "is not a known category", nil), "")
		return
	}

	state := h.session.Dispatch(r.Context(), session.SetCategory{Category: req.Category})
	shared.RespondWithJSON(w, r, http.StatusOK, sessionToResponse(state))
}

// Progress handles GET /session/progress.
func (h *SessionHandler) Progress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	if _, ok := requireSessionOwner(w, r, h.session, log); !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, h.session.Progress())
}
