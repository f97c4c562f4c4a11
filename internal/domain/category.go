package domain

// Known category identifiers. CategoryAll is synthetic and matches every card.
const (
	CategoryMath       = "math"
	CategoryScience    = "science"
	CategoryHistory    = "history"
	CategoryGeography  = "geography"
	CategoryLiterature = "literature"
	CategoryAll        = "all"
)

// Category is a study category as presented to users.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// KnownCategories returns the category identifiers offered for browsing, in
// display order. The result is a fresh slice.
func KnownCategories() []string {
	return []string{
		CategoryMath,
		CategoryScience,
		CategoryHistory,
		CategoryGeography,
		CategoryLiterature,
		CategoryAll,
	}
}

// RemoteCategoryCycle is the order in which categories are assigned to
// remotely fetched items.
func RemoteCategoryCycle() []string {
	return []string{
		CategoryMath,
		CategoryScience,
		CategoryHistory,
		CategoryGeography,
		CategoryLiterature,
	}
}

// IsKnownCategory reports whether id is one of KnownCategories.
func IsKnownCategory(id string) bool {
	for _, c := range KnownCategories() {
		if c == id {
			return true
		}
	}
	return false
}
