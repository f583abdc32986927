// Package filter applies composable predicate and ordering rules over
// product and energy solution listings. All functions are pure: they
// never touch storage and never mutate their input beyond ordering.
package filter

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"agriconnect/internal/model"
)

// ProductFilter narrows a product listing. Nil/empty fields impose no
// constraint; provided fields combine with logical AND.
type ProductFilter struct {
	FarmerID      *uint
	CategoryID    *uint
	Name          string
	Start         *time.Time
	End           *time.Time
	AvailableOnly bool
}

// Products returns the subset of items matching every provided predicate.
func Products(items []model.Product, f ProductFilter) []model.Product {
	out := make([]model.Product, 0, len(items))
	for _, p := range items {
		if f.FarmerID != nil && p.FarmerID != *f.FarmerID {
			continue
		}
		if f.CategoryID != nil && p.CategoryID != *f.CategoryID {
			continue
		}
		if f.Name != "" && !containsFold(p.Name, f.Name) {
			continue
		}
		if f.Start != nil && p.ProductionDate.Before(*f.Start) {
			continue
		}
		if f.End != nil && p.ProductionDate.After(*f.End) {
			continue
		}
		if f.AvailableOnly && !p.Available {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SolutionFilter narrows an energy solution listing. Search matches
// case-insensitively against name, description, and application areas.
type SolutionFilter struct {
	CategoryID      *uint
	ProviderID      *uint
	MinPrice        *decimal.Decimal
	MaxPrice        *decimal.Decimal
	Search          string
	ApplicationArea string
	AvailableOnly   bool
}

// Solutions returns the subset of items matching every provided predicate.
func Solutions(items []model.EnergySolution, f SolutionFilter) []model.EnergySolution {
	out := make([]model.EnergySolution, 0, len(items))
	for _, s := range items {
		if f.CategoryID != nil && s.CategoryID != *f.CategoryID {
			continue
		}
		if f.ProviderID != nil && s.ProviderID != *f.ProviderID {
			continue
		}
		if f.MinPrice != nil && (s.PriceRangeMin == nil || s.PriceRangeMin.LessThan(*f.MinPrice)) {
			continue
		}
		if f.MaxPrice != nil && (s.PriceRangeMax == nil || s.PriceRangeMax.GreaterThan(*f.MaxPrice)) {
			continue
		}
		if f.Search != "" && !matchesSearch(s, f.Search) {
			continue
		}
		if f.ApplicationArea != "" && !containsFold(s.ApplicationAreas, f.ApplicationArea) {
			continue
		}
		if f.AvailableOnly && !s.Available {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matchesSearch(s model.EnergySolution, term string) bool {
	return containsFold(s.Name, term) ||
		containsFold(s.Description, term) ||
		containsFold(s.ApplicationAreas, term)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Page slices items for one page. Pages are 1-based; out-of-range
// pages yield an empty slice, a non-positive size falls back to the
// default page size.
func Page[T any](items []T, page, size int) []T {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// DefaultPageSize matches the public solution listing default.
const DefaultPageSize = 12
