package handler

import (
	"net/url"
	"strconv"

	"github.com/lesrhabilleurs/atelier-backend/internal/catalog"
	"github.com/lesrhabilleurs/atelier-backend/pkg/utils"
)

type WatchesResponse struct {
	Watches []catalog.Listing `json:"watches"`
	Total   int               `json:"total"`
}

type WatchResponse struct {
	Watch catalog.Listing `json:"watch"`
}

type BrandsResponse struct {
	Brands []string `json:"brands"`
}

// ParseCriteria builds filter criteria from boutique query parameters.
// A price bound that does not parse as a number counts as absent, the same
// as not sending it at all.
func ParseCriteria(query url.Values) catalog.Criteria {
	criteria := catalog.Criteria{
		Query: query.Get("q"),
		Sort:  catalog.SortNewest,
	}

	criteria.Brands = utils.RemoveDuplicates(query["brand"])

	for _, movement := range utils.RemoveDuplicates(query["movement"]) {
		criteria.Movements = append(criteria.Movements, catalog.Movement(movement))
	}

	for _, condition := range utils.RemoveDuplicates(query["condition"]) {
		criteria.Conditions = append(criteria.Conditions, catalog.Condition(condition))
	}

	criteria.PriceMin = parseBound(query.Get("price_min"))
	criteria.PriceMax = parseBound(query.Get("price_max"))

	switch sort := catalog.SortKey(query.Get("sort")); sort {
	case catalog.SortPriceAsc, catalog.SortPriceDesc:
		criteria.Sort = sort
	}

	return criteria
}

func parseBound(raw string) *int {
	if raw == "" {
		return nil
	}

	bound, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}

	return &bound
}
