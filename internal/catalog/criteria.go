package catalog

// SortKey selects the ordering of boutique results.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
)

// Criteria is the active set of search, filter and sort parameters for one
// boutique view. Empty slices and strings mean "no constraint"; price bounds
// are absent when nil.
type Criteria struct {
	Query      string
	Brands     []string
	Movements  []Movement
	Conditions []Condition
	PriceMin   *int
	PriceMax   *int
	Sort       SortKey
}
