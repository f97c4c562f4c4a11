package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/platform/i18n"
	"github.com/phrazzld/flashdeck/internal/session"
)

// study loads the full card set into the session, selects a category and
// walks through its cards. Entering q stops early; entering c clears the
// session's cards, resetting progress, and stops.
func (a *App) study(ctx context.Context, args []string) error {
	fs := a.newFlagSet("study")
	category := fs.String("category", domain.CategoryAll, "category to study")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if !domain.IsKnownCategory(*category) {
		return domain.NewValidationError("category", "is not a known category", nil)
	}

	state := a.session.State()
	if !state.LoggedIn() {
		return fmt.Errorf("%w: run 'flashcards login' first", ErrNotLoggedIn)
	}

	a.session.Dispatch(ctx, session.SetFlashcards{Flashcards: a.provider.GetFlashcards(ctx)})
	a.session.Dispatch(ctx, session.SetCategory{Category: *category})
	deck := a.session.CurrentFlashcards()

	fmt.Fprintf(a.out, "Studying %s as %s: %d cards\n",
		i18n.CategoryName(a.lang, *category), state.User.Name, len(deck))

	reviewed := 0
	cleared := false
	for i, card := range deck {
		fmt.Fprintf(a.out, "\n[%d/%d] %s (%s)\n%s\n", i+1, len(deck),
			i18n.CategoryName(a.lang, card.Category), card.Difficulty, card.Question)

		answer, err := a.prompt("Press Enter to reveal the answer, q to quit, c to clear progress")
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if strings.EqualFold(answer, "q") {
			break
		}
		if strings.EqualFold(answer, "c") {
			a.session.Dispatch(ctx, session.SetFlashcards{})
			cleared = true
			break
		}

		fmt.Fprintf(a.out, "Answer: %s\n", card.Answer)
		reviewed++
	}

	progress := a.session.Progress()
	if cleared {
		a.logger.InfoContext(ctx, "cleared study progress", "user_id", state.User.ID)
		fmt.Fprintln(a.out, "\nProgress cleared.")
	}
	fmt.Fprintf(a.out, "\nReviewed %d of %d cards.\n", reviewed, len(deck))
	fmt.Fprintf(a.out, "Progress: %d%% (%d of %d flashcards completed across %d categories)\n",
		progress.Progress, progress.CompletedFlashcards, progress.TotalFlashcards, progress.CategoriesCount)
	return nil
}
