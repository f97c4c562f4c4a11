package content

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/flashdeck/internal/config"
	"github.com/phrazzld/flashdeck/internal/domain"
)

// DefaultPacingDelay is how long the provider waits before serving the
// fallback set.
const DefaultPacingDelay = 800 * time.Millisecond

// Options configures a Provider.
type Options struct {
	Strategy    Strategy
	Merge       MergePolicy
	PacingDelay time.Duration
	MaxItems    int
}

// OptionsFromConfig converts the content configuration into Options.
func OptionsFromConfig(cfg config.ContentConfig) (Options, error) {
	strategy, err := ParseStrategy(cfg.Strategy)
	if err != nil {
		return Options{}, err
	}
	merge, err := ParseMergePolicy(cfg.Merge)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Strategy:    strategy,
		Merge:       merge,
		PacingDelay: cfg.PacingDelay(),
		MaxItems:    cfg.MaxItems,
	}, nil
}

// Provider serves flashcards from a remote Source with a fixed fallback set.
// It is safe for concurrent use; every call performs its own fetch.
type Provider struct {
	source Source
	opts   Options
	logger *slog.Logger
}

// NewProvider creates a Provider. A nil source is only valid with StrategyOffline.
func NewProvider(source Source, opts Options, logger *slog.Logger) (*Provider, error) {
	if opts.Strategy == "" {
		opts.Strategy = StrategyRemote
	}
	if opts.Merge == "" {
		opts.Merge = MergeCombine
	}
	if opts.MaxItems <= 0 {
		opts.MaxItems = DefaultMaxItems
	}
	if opts.PacingDelay < 0 {
		opts.PacingDelay = 0
	}
	if opts.Strategy == StrategyRemote && source == nil {
		return nil, fmt.Errorf("remote content strategy requires a source")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		source: source,
		opts:   opts,
		logger: logger.With("component", "content_provider"),
	}, nil
}

// GetFlashcards returns the full card set. It never fails: remote errors and
// context cancellation both result in the fallback set.
func (p *Provider) GetFlashcards(ctx context.Context) []domain.Flashcard {
	if p.opts.Strategy == StrategyOffline {
		p.logger.DebugContext(ctx, "offline strategy, serving fallback set")
		return p.fallbackAfterDelay(ctx)
	}

	items, err := p.source.FetchItems(ctx)
	if err == nil && len(items) == 0 {
		err = NewNetworkError(KindEmpty, ErrEmptyResponse)
	}
	if err != nil {
		p.logger.WarnContext(ctx, "remote content unavailable, serving fallback set",
			"kind", KindOf(err),
			"error", err)
		return p.fallbackAfterDelay(ctx)
	}

	mapped := MapRemoteItems(items, p.opts.MaxItems)
	p.logger.DebugContext(ctx, "mapped remote items",
		"count", len(mapped),
		"merge", p.opts.Merge)

	if p.opts.Merge == MergeReplace {
		return mapped
	}
	return append(Fallback(), mapped...)
}

// GetFlashcardsByCategory returns the cards in category, preserving order.
// domain.CategoryAll matches every card.
func (p *Provider) GetFlashcardsByCategory(ctx context.Context, category string) []domain.Flashcard {
	cards := domain.FilterByCategory(p.GetFlashcards(ctx), category)
	p.logger.DebugContext(ctx, "filtered flashcards by category",
		"category", category,
		"count", len(cards))
	return cards
}

// GetFlashcardsByDifficulty returns the cards with the given difficulty.
func (p *Provider) GetFlashcardsByDifficulty(ctx context.Context, level domain.Difficulty) []domain.Flashcard {
	return domain.FilterByDifficulty(p.GetFlashcards(ctx), level)
}

// GetFlashcardsStats summarizes the full card set.
func (p *Provider) GetFlashcardsStats(ctx context.Context) domain.FlashcardStats {
	return domain.ComputeStats(p.GetFlashcards(ctx))
}

// Fallback returns a copy of the fixed fallback set without any delay.
func (p *Provider) Fallback() []domain.Flashcard {
	return Fallback()
}

// fallbackAfterDelay waits for the pacing delay or ctx, whichever ends
// first, and returns the fallback set in both cases.
func (p *Provider) fallbackAfterDelay(ctx context.Context) []domain.Flashcard {
	if p.opts.PacingDelay > 0 {
		timer := time.NewTimer(p.opts.PacingDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
		}
	}
	return Fallback()
}
