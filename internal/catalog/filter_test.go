package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() []Listing {
	return []Listing{
		{ID: "omega", Brand: "Omega", Model: "Speedmaster Professional", Year: 1969, MovementType: MovementAutomatic, Condition: ConditionGood, Price: 8500},
		{ID: "rolex", Brand: "Rolex", Model: "Datejust", Year: 2015, MovementType: MovementAutomatic, Condition: ConditionExcellent, Price: 9200},
		{ID: "tudor", Brand: "Tudor", Model: "Black Bay 58", Year: 2015, MovementType: MovementAutomatic, Condition: ConditionExcellent, Price: 3800},
		{ID: "jlc", Brand: "Jaeger-LeCoultre", Model: "Reverso", Year: 2018, MovementType: MovementMechanical, Condition: ConditionVeryGood, Price: 6800},
		{ID: "longines", Brand: "Longines", Model: "Conquest", Year: 1972, MovementType: MovementQuartz, Condition: ConditionGood, Price: 1500},
	}
}

func ids(listings []Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func intPtr(v int) *int {
	return &v
}

func TestApplyEmptyCriteriaReturnsEverythingNewestFirst(t *testing.T) {
	result := Apply(fixture(), Criteria{})

	require.Len(t, result, 5)
	assert.Equal(t, []string{"jlc", "rolex", "tudor", "longines", "omega"}, ids(result))
}

func TestApplyIsIdempotent(t *testing.T) {
	criteria := Criteria{
		Query:    "a",
		PriceMax: intPtr(9000),
		Sort:     SortPriceAsc,
	}

	first := Apply(fixture(), criteria)
	second := Apply(fixture(), criteria)

	assert.Equal(t, first, second)
}

func TestApplySortIsStable(t *testing.T) {
	// rolex and tudor share the same year and must keep input order
	result := Apply(fixture(), Criteria{Sort: SortNewest})

	require.Len(t, result, 5)
	assert.Equal(t, "rolex", result[1].ID)
	assert.Equal(t, "tudor", result[2].ID)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	input := fixture()

	Apply(input, Criteria{Sort: SortPriceAsc})

	assert.Equal(t, []string{"omega", "rolex", "tudor", "jlc", "longines"}, ids(input))
}

func TestApplyFilters(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		expected []string
	}{
		{
			name:     "query matches brand",
			criteria: Criteria{Query: "ome"},
			expected: []string{"omega"},
		},
		{
			name:     "query matches model",
			criteria: Criteria{Query: "reverso"},
			expected: []string{"jlc"},
		},
		{
			name:     "query is case-insensitive",
			criteria: Criteria{Query: "ROLEX"},
			expected: []string{"rolex"},
		},
		{
			name:     "query with no match",
			criteria: Criteria{Query: "zenith"},
			expected: []string{},
		},
		{
			name:     "brand set",
			criteria: Criteria{Brands: []string{"Omega", "Tudor"}},
			expected: []string{"tudor", "omega"},
		},
		{
			name:     "movement set",
			criteria: Criteria{Movements: []Movement{MovementMechanical}},
			expected: []string{"jlc"},
		},
		{
			name:     "condition set",
			criteria: Criteria{Conditions: []Condition{ConditionExcellent}},
			expected: []string{"rolex", "tudor"},
		},
		{
			name:     "minimum price is inclusive",
			criteria: Criteria{PriceMin: intPtr(8500)},
			expected: []string{"rolex", "omega"},
		},
		{
			name:     "maximum price is inclusive",
			criteria: Criteria{PriceMax: intPtr(1500)},
			expected: []string{"longines"},
		},
		{
			name:     "both bounds",
			criteria: Criteria{PriceMin: intPtr(3000), PriceMax: intPtr(7000)},
			expected: []string{"jlc", "tudor"},
		},
		{
			name:     "min above max yields empty result",
			criteria: Criteria{PriceMin: intPtr(9000), PriceMax: intPtr(4000)},
			expected: []string{},
		},
		{
			name:     "combined constraints",
			criteria: Criteria{Movements: []Movement{MovementAutomatic}, PriceMax: intPtr(9000)},
			expected: []string{"tudor", "omega"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Apply(fixture(), tt.criteria)

			assert.Equal(t, tt.expected, ids(result))
		})
	}
}

func TestApplyNarrowsMonotonically(t *testing.T) {
	all := Apply(fixture(), Criteria{})

	criteria := Criteria{Brands: []string{"Omega", "Rolex", "Tudor"}}
	narrowed := Apply(fixture(), criteria)
	assert.LessOrEqual(t, len(narrowed), len(all))

	criteria.PriceMin = intPtr(4000)
	tighter := Apply(fixture(), criteria)
	assert.LessOrEqual(t, len(tighter), len(narrowed))

	criteria.Query = "date"
	tightest := Apply(fixture(), criteria)
	assert.LessOrEqual(t, len(tightest), len(tighter))
}

func TestApplySortKeys(t *testing.T) {
	tests := []struct {
		name     string
		sort     SortKey
		expected []string
	}{
		{
			name:     "price ascending",
			sort:     SortPriceAsc,
			expected: []string{"longines", "tudor", "jlc", "omega", "rolex"},
		},
		{
			name:     "price descending",
			sort:     SortPriceDesc,
			expected: []string{"rolex", "omega", "jlc", "tudor", "longines"},
		},
		{
			name:     "newest first",
			sort:     SortNewest,
			expected: []string{"jlc", "rolex", "tudor", "longines", "omega"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Apply(fixture(), Criteria{Sort: tt.sort})

			assert.Equal(t, tt.expected, ids(result))
		})
	}
}

func TestApplyConcreteScenario(t *testing.T) {
	listings := []Listing{
		{ID: "a", Brand: "Omega", Price: 8500, Year: 1969},
		{ID: "b", Brand: "Rolex", Price: 9200, Year: 2015},
	}

	byPrice := Apply(listings, Criteria{Sort: SortPriceAsc})
	require.Len(t, byPrice, 2)
	assert.Equal(t, "Omega", byPrice[0].Brand)
	assert.Equal(t, "Rolex", byPrice[1].Brand)

	expensive := Apply(listings, Criteria{PriceMin: intPtr(9000)})
	require.Len(t, expensive, 1)
	assert.Equal(t, "Rolex", expensive[0].Brand)
}
