package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestResolveTagPrecedence(t *testing.T) {
	t.Run("query param wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=pt-BR", nil)
		req.Header.Set("Accept-Language", "en")
		assert.Equal(t, language.BrazilianPortuguese, ResolveTag(req))
	})

	t.Run("accept language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en;q=0.5")
		assert.Equal(t, language.BrazilianPortuguese, ResolveTag(req))
	})

	t.Run("invalid query falls through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=!!", nil)
		req.Header.Set("Accept-Language", "pt-BR")
		assert.Equal(t, language.BrazilianPortuguese, ResolveTag(req))
	})

	t.Run("default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		assert.Equal(t, Default(), ResolveTag(req))
		assert.Equal(t, Default(), ResolveTag(nil))
	})

	t.Run("unsupported language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=ja", nil)
		assert.Equal(t, Default(), ResolveTag(req))
	})
}

func TestCategoryName(t *testing.T) {
	tests := []struct {
		tag  language.Tag
		id   string
		want string
	}{
		{language.English, domain.CategoryMath, "Mathematics"},
		{language.English, domain.CategoryAll, "All"},
		{language.BrazilianPortuguese, domain.CategoryMath, "Matemática"},
		{language.BrazilianPortuguese, domain.CategoryScience, "Ciências"},
		{language.BrazilianPortuguese, domain.CategoryAll, "Todos"},
		{language.English, "astronomy", "astronomy"},
	}

	for _, tc := range tests {
		t.Run(tc.tag.String()+"/"+tc.id, func(t *testing.T) {
			assert.Equal(t, tc.want, CategoryName(tc.tag, tc.id))
		})
	}
}

func TestCategories(t *testing.T) {
	cards := []domain.Flashcard{
		{ID: "1", Category: domain.CategoryMath},
		{ID: "2", Category: domain.CategoryMath},
		{ID: "3", Category: domain.CategoryHistory},
	}

	got := Categories(language.English, cards)
	assert.Len(t, got, len(domain.KnownCategories()))
	assert.Equal(t, domain.Category{ID: "math", Name: "Mathematics", Count: 2}, got[0])
	assert.Equal(t, domain.Category{ID: "all", Name: "All", Count: 3}, got[len(got)-1])
}
