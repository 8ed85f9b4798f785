package catalog

import (
	"slices"
	"sort"
	"strings"
)

// Apply filters listings by criteria and sorts the result. The input slice is
// never mutated; ties under any sort key keep their relative input order.
func Apply(listings []Listing, criteria Criteria) []Listing {
	result := make([]Listing, 0, len(listings))

	for _, listing := range listings {
		if matches(listing, criteria) {
			result = append(result, listing)
		}
	}

	switch criteria.Sort {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	default:
		// newest first
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Year > result[j].Year
		})
	}

	return result
}

func matches(listing Listing, criteria Criteria) bool {
	if criteria.Query != "" {
		query := strings.ToLower(criteria.Query)
		brand := strings.ToLower(listing.Brand)
		model := strings.ToLower(listing.Model)

		if !strings.Contains(brand, query) && !strings.Contains(model, query) {
			return false
		}
	}

	if len(criteria.Brands) > 0 && !slices.Contains(criteria.Brands, listing.Brand) {
		return false
	}

	if len(criteria.Movements) > 0 && !slices.Contains(criteria.Movements, listing.MovementType) {
		return false
	}

	if len(criteria.Conditions) > 0 && !slices.Contains(criteria.Conditions, listing.Condition) {
		return false
	}

	if criteria.PriceMin != nil && listing.Price < *criteria.PriceMin {
		return false
	}

	if criteria.PriceMax != nil && listing.Price > *criteria.PriceMax {
		return false
	}

	return true
}
