package usecase

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"storefront-backend/internal/catalog/domain"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortTitle     SortKey = "title"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

// ViewMode is a pure presentation choice, independent of filtering. Both
// renderers share one callback set by construction.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// CategoryAll is the sentinel that disables the category predicate.
const CategoryAll = "all"

// Query is the full set of filter/sort selections.
type Query struct {
	Search   string
	Category string
	MinPrice float64
	MaxPrice float64
	SortBy   SortKey
}

// Pipeline derives the visible product sequence from the fetched set and the
// current selections. It is pure: products is never mutated and no re-fetch
// happens on filter changes.
func Pipeline(products []domain.Product, q Query) []domain.Product {
	search := strings.ToLower(q.Search)

	// Collators carry internal buffers, so one is built per call rather
	// than shared across requests.
	collator := collate.New(language.English, collate.IgnoreCase)

	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !matchesSearch(&p, search) {
			continue
		}
		if q.Category != "" && q.Category != CategoryAll && p.Category != q.Category {
			continue
		}
		if p.Price < q.MinPrice || p.Price > q.MaxPrice {
			continue
		}
		result = append(result, p)
	}

	// Stable sort keeps the fetched order for equal keys.
	sort.SliceStable(result, func(i, j int) bool {
		a, b := &result[i], &result[j]
		switch q.SortBy {
		case SortPriceLow:
			return a.Price < b.Price
		case SortPriceHigh:
			return a.Price > b.Price
		case SortRating:
			return a.Rating > b.Rating
		default:
			return collator.CompareString(a.Title, b.Title) < 0
		}
	})

	return result
}

func matchesSearch(p *domain.Product, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), search) ||
		strings.Contains(strings.ToLower(p.Description), search)
}

// PriceBounds returns the observed min/max prices, used to initialize the
// price-range selection on load.
func PriceBounds(products []domain.Product) (min, max float64) {
	if len(products) == 0 {
		return 0, 0
	}
	min, max = products[0].Price, products[0].Price
	for _, p := range products[1:] {
		if p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}
	return min, max
}

// Categories returns "all" followed by the distinct categories in fetched
// order.
func Categories(products []domain.Product) []string {
	seen := make(map[string]struct{})
	categories := []string{CategoryAll}
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}
