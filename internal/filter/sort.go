package filter

import (
	"sort"

	"github.com/shopspring/decimal"

	"agriconnect/internal/model"
)

// SortKey is the closed set of orderings for solution listings.
// Anything unrecognized falls back to SortByName.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPriceAsc  SortKey = "price_asc"
	SortByPriceDesc SortKey = "price_desc"
	SortByCategory  SortKey = "category"
	SortByProvider  SortKey = "provider"
	SortByNewest    SortKey = "newest"
)

// ParseSortKey maps a query parameter to a SortKey, defaulting to name
// ascending for unknown or empty input.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortByName, SortByPriceAsc, SortByPriceDesc, SortByCategory, SortByProvider, SortByNewest:
		return SortKey(s)
	}
	return SortByName
}

// SortSolutions orders items by the given key. Sorting is stable and
// operates in place on the given slice, returning it for chaining.
// Nil price bounds sort before any priced solution.
func SortSolutions(items []model.EnergySolution, key SortKey) []model.EnergySolution {
	switch key {
	case SortByPriceAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return lessPrice(items[i].PriceRangeMin, items[j].PriceRangeMin)
		})
	case SortByPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return lessPrice(items[j].PriceRangeMax, items[i].PriceRangeMax)
		})
	case SortByCategory:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Category.Name < items[j].Category.Name
		})
	case SortByProvider:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Provider.CompanyName < items[j].Provider.CompanyName
		})
	case SortByNewest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Name < items[j].Name
		})
	}
	return items
}

// SortProducts orders a product listing; only name and newest apply.
func SortProducts(items []model.Product, key SortKey) []model.Product {
	switch key {
	case SortByNewest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Name < items[j].Name
		})
	}
	return items
}

func lessPrice(a, b *decimal.Decimal) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	return a.LessThan(*b)
}
