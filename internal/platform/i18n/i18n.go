// Package i18n resolves the display language for a request and prints
// localized category names.
package i18n

import (
	"net/http"
	"strings"

	"github.com/phrazzld/flashdeck/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam is the query parameter used to select a language.
const LangParam = "lang"

var supported = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Match returns the supported tag closest to the given preferences, or the
// default when none is close enough.
func Match(tags ...language.Tag) language.Tag {
	if len(tags) == 0 {
		return Default()
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default()
	}
	return supported[idx]
}

// ParseTag parses value and matches it against the supported languages.
func ParseTag(value string) (language.Tag, bool) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return Default(), false
	}
	return Match(tag), true
}

// ResolveTag picks the language for r: the lang query parameter first, then
// Accept-Language, then the default.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}

	if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
		if tag, ok := ParseTag(langValue); ok {
			return tag
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return Match(tags...)
		}
	}

	return Default()
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// CategoryName returns the display name of a category in the given language.
// Unknown categories are returned unchanged.
func CategoryName(tag language.Tag, id string) string {
	key := categoryKey(id)
	name := Printer(Match(tag)).Sprintf(key)
	if name == key {
		return id
	}
	return name
}

// Categories returns the known categories with localized names and the
// number of cards in each.
func Categories(tag language.Tag, cards []domain.Flashcard) []domain.Category {
	ids := domain.KnownCategories()
	out := make([]domain.Category, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Category{
			ID:    id,
			Name:  CategoryName(tag, id),
			Count: domain.CountInCategory(cards, id),
		})
	}
	return out
}

func categoryKey(id string) string {
	return "category." + id
}
