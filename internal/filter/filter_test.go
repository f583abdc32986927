package filter

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"agriconnect/internal/model"
)

func uintPtr(v uint) *uint { return &v }

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func sampleSolutions() []model.EnergySolution {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []model.EnergySolution{
		{
			ID: 1, CategoryID: 1, ProviderID: 10, Name: "Solar Array 5kW",
			Description: "Rooftop photovoltaic system", ApplicationAreas: "Irrigation pumps",
			PriceRangeMin: decPtr("50000"), PriceRangeMax: decPtr("80000"),
			Available: true, CreatedAt: base,
			Category: model.EnergySolutionCategory{ID: 1, Name: "Solar"},
			Provider: model.EnergySolutionProvider{ID: 10, CompanyName: "SunWorks"},
		},
		{
			ID: 2, CategoryID: 2, ProviderID: 11, Name: "Biogas Digester",
			Description: "Converts livestock waste to fuel", ApplicationAreas: "Heating, cooking",
			PriceRangeMin: decPtr("120000"), PriceRangeMax: decPtr("200000"),
			Available: true, CreatedAt: base.AddDate(0, 1, 0),
			Category: model.EnergySolutionCategory{ID: 2, Name: "Biogas"},
			Provider: model.EnergySolutionProvider{ID: 11, CompanyName: "AgriGas"},
		},
		{
			ID: 3, CategoryID: 1, ProviderID: 11, Name: "Solar Water Heater",
			Description: "Thermal collector for dairies", ApplicationAreas: "Dairy cleaning",
			PriceRangeMin: decPtr("15000"), PriceRangeMax: decPtr("30000"),
			Available: false, CreatedAt: base.AddDate(0, 2, 0),
			Category: model.EnergySolutionCategory{ID: 1, Name: "Solar"},
			Provider: model.EnergySolutionProvider{ID: 11, CompanyName: "AgriGas"},
		},
		{
			ID: 4, CategoryID: 3, ProviderID: 12, Name: "Wind Turbine 10kW",
			Description: "Small scale turbine", ApplicationAreas: "Borehole pumping, irrigation",
			Available: true, CreatedAt: base.AddDate(0, 3, 0),
			Category: model.EnergySolutionCategory{ID: 3, Name: "Wind"},
			Provider: model.EnergySolutionProvider{ID: 12, CompanyName: "WindCo"},
		},
	}
}

func TestSolutions_Filtering(t *testing.T) {
	all := sampleSolutions()

	tests := []struct {
		name    string
		filter  SolutionFilter
		wantIDs []uint
	}{
		{
			name:    "no constraints returns everything",
			filter:  SolutionFilter{},
			wantIDs: []uint{1, 2, 3, 4},
		},
		{
			name:    "category",
			filter:  SolutionFilter{CategoryID: uintPtr(1)},
			wantIDs: []uint{1, 3},
		},
		{
			name:    "provider",
			filter:  SolutionFilter{ProviderID: uintPtr(11)},
			wantIDs: []uint{2, 3},
		},
		{
			name:    "price range excludes unpriced",
			filter:  SolutionFilter{MinPrice: decPtr("20000"), MaxPrice: decPtr("100000")},
			wantIDs: []uint{1},
		},
		{
			name:    "search is case-insensitive across fields",
			filter:  SolutionFilter{Search: "IRRIGATION"},
			wantIDs: []uint{1, 4},
		},
		{
			name:    "application area substring",
			filter:  SolutionFilter{ApplicationArea: "dairy"},
			wantIDs: []uint{3},
		},
		{
			name:    "available only",
			filter:  SolutionFilter{AvailableOnly: true},
			wantIDs: []uint{1, 2, 4},
		},
		{
			name:    "filters combine with AND",
			filter:  SolutionFilter{CategoryID: uintPtr(1), AvailableOnly: true},
			wantIDs: []uint{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Solutions(all, tt.filter)
			ids := make([]uint, 0, len(got))
			for _, s := range got {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)

			// Every filtered result is a subset of the input.
			assert.LessOrEqual(t, len(got), len(all))
		})
	}
}

func TestSolutions_Idempotent(t *testing.T) {
	all := sampleSolutions()
	f := SolutionFilter{CategoryID: uintPtr(1), AvailableOnly: true}

	once := Solutions(all, f)
	twice := Solutions(once, f)
	assert.Equal(t, once, twice)
}

func TestSolutions_PriceRangeThenSortAscending(t *testing.T) {
	all := sampleSolutions()
	min, max := decPtr("10000"), decPtr("250000")

	got := SortSolutions(Solutions(all, SolutionFilter{MinPrice: min, MaxPrice: max}), SortByPriceAsc)

	assert.NotEmpty(t, got)
	for i, s := range got {
		assert.True(t, s.PriceRangeMin.GreaterThanOrEqual(*min))
		assert.True(t, s.PriceRangeMax.LessThanOrEqual(*max))
		if i > 0 {
			prev := got[i-1].PriceRangeMin
			assert.False(t, s.PriceRangeMin.LessThan(*prev), "prices must be non-decreasing")
		}
	}
}

func TestSortSolutions(t *testing.T) {
	tests := []struct {
		name    string
		key     SortKey
		wantIDs []uint
	}{
		{"name ascending", SortByName, []uint{2, 1, 3, 4}},
		{"price descending by max", SortByPriceDesc, []uint{2, 1, 3, 4}},
		{"category name", SortByCategory, []uint{2, 1, 3, 4}},
		{"provider name", SortByProvider, []uint{2, 3, 1, 4}},
		{"newest first", SortByNewest, []uint{4, 3, 2, 1}},
		{"unknown falls back to name", SortKey("bogus"), []uint{2, 1, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortSolutions(sampleSolutions(), tt.key)
			ids := make([]uint, 0, len(got))
			for _, s := range got {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortByPriceAsc, ParseSortKey("price_asc"))
	assert.Equal(t, SortByName, ParseSortKey(""))
	assert.Equal(t, SortByName, ParseSortKey("nonsense"))
}

func TestProducts_Filtering(t *testing.T) {
	jan := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	all := []model.Product{
		{ID: 1, FarmerID: 1, CategoryID: 5, Name: "Heirloom Tomatoes", ProductionDate: jan, Available: true},
		{ID: 2, FarmerID: 1, CategoryID: 6, Name: "Free Range Eggs", ProductionDate: mar, Available: true},
		{ID: 3, FarmerID: 2, CategoryID: 5, Name: "Roma Tomatoes", ProductionDate: mar, Available: false},
	}

	t.Run("category subset", func(t *testing.T) {
		got := Products(all, ProductFilter{CategoryID: uintPtr(5)})
		assert.Len(t, got, 2)
		for _, p := range got {
			assert.Equal(t, uint(5), p.CategoryID)
		}
	})

	t.Run("farmer", func(t *testing.T) {
		got := Products(all, ProductFilter{FarmerID: uintPtr(1)})
		assert.Len(t, got, 2)
	})

	t.Run("name substring case-insensitive", func(t *testing.T) {
		got := Products(all, ProductFilter{Name: "tomato"})
		assert.Len(t, got, 2)
	})

	t.Run("date bounds independently optional", func(t *testing.T) {
		feb := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
		onlyStart := Products(all, ProductFilter{Start: &feb})
		assert.Len(t, onlyStart, 2)
		onlyEnd := Products(all, ProductFilter{End: &feb})
		assert.Len(t, onlyEnd, 1)
	})

	t.Run("filter order independence", func(t *testing.T) {
		a := Products(Products(all, ProductFilter{CategoryID: uintPtr(5)}), ProductFilter{AvailableOnly: true})
		b := Products(Products(all, ProductFilter{AvailableOnly: true}), ProductFilter{CategoryID: uintPtr(5)})
		assert.Equal(t, a, b)
	})
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Page(items, 1, 2))
	assert.Equal(t, []int{3, 4}, Page(items, 2, 2))
	assert.Equal(t, []int{5}, Page(items, 3, 2))
	assert.Empty(t, Page(items, 4, 2))
	// Non-positive size falls back to the default; page 1 holds all five.
	assert.Equal(t, items, Page(items, 1, 0))
	// Page below 1 clamps to the first page.
	assert.Equal(t, []int{1, 2}, Page(items, 0, 2))
}
