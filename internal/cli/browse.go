package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/platform/i18n"
)

// newFlagSet returns a flag set that reports errors instead of exiting.
func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func (a *App) categories(ctx context.Context) error {
	cards := a.provider.GetFlashcards(ctx)

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, c := range i18n.Categories(a.lang, cards) {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", c.ID, c.Name, c.Count)
	}
	return tw.Flush()
}

func (a *App) cards(ctx context.Context, args []string) error {
	fs := a.newFlagSet("cards")
	category := fs.String("category", "", "only show cards in this category")
	difficulty := fs.String("difficulty", "", "only show cards of this difficulty (easy, medium, hard)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	level := domain.Difficulty(*difficulty)
	if *difficulty != "" && !level.Valid() {
		return domain.NewValidationError("difficulty", "must be one of easy, medium, hard", nil)
	}

	var cards []domain.Flashcard
	switch {
	case *category != "":
		cards = a.provider.GetFlashcardsByCategory(ctx, *category)
		if *difficulty != "" {
			cards = domain.FilterByDifficulty(cards, level)
		}
	case *difficulty != "":
		cards = a.provider.GetFlashcardsByDifficulty(ctx, level)
	default:
		cards = a.provider.GetFlashcards(ctx)
	}

	if len(cards) == 0 {
		fmt.Fprintln(a.out, "No flashcards found.")
		return nil
	}
	return a.printCards(cards)
}

func (a *App) printCards(cards []domain.Flashcard) error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, c := range cards {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID, i18n.CategoryName(a.lang, c.Category), c.Difficulty, c.Question)
	}
	return tw.Flush()
}

func (a *App) stats(ctx context.Context) error {
	st := a.provider.GetFlashcardsStats(ctx)

	fmt.Fprintf(a.out, "Total: %d\n\nBy category:\n", st.Total)
	writeCounts(a.out, st.ByCategory, func(id string) string { return i18n.CategoryName(a.lang, id) })

	fmt.Fprintln(a.out, "\nBy difficulty:")
	byDifficulty := make(map[string]int, len(st.ByDifficulty))
	for level, n := range st.ByDifficulty {
		byDifficulty[string(level)] = n
	}
	writeCounts(a.out, byDifficulty, func(s string) string { return s })
	return nil
}

// writeCounts prints counts sorted by key.
func writeCounts(w io.Writer, counts map[string]int, label func(string) string) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, k := range keys {
		fmt.Fprintf(tw, "  %s\t%d\n", label(k), counts[k])
	}
	_ = tw.Flush()
}
