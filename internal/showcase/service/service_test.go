package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/lesrhabilleurs/atelier-backend/internal/catalog"
	catalogdb "github.com/lesrhabilleurs/atelier-backend/internal/catalog/db"
	"github.com/lesrhabilleurs/atelier-backend/internal/gallery"
	gallerydb "github.com/lesrhabilleurs/atelier-backend/internal/gallery/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func makeListings(count int) []catalog.Listing {
	listings := make([]catalog.Listing, 0, count)
	for i := 0; i < count; i++ {
		listings = append(listings, catalog.Listing{ID: fmt.Sprintf("w%d", i+1), Brand: "Omega"})
	}

	return listings
}

func makeCases(count int) []gallery.Case {
	cases := make([]gallery.Case, 0, count)
	for i := 0; i < count; i++ {
		cases = append(cases, gallery.Case{ID: fmt.Sprintf("c%d", i+1), RepairType: gallery.RepairRepair})
	}

	return cases
}

func TestFeatured(t *testing.T) {
	tests := []struct {
		name            string
		listingCount    int
		caseCount       int
		expectedWatches int
		expectedCases   int
	}{
		{
			name:            "large collections are capped",
			listingCount:    6,
			caseCount:       6,
			expectedWatches: 4,
			expectedCases:   3,
		},
		{
			name:            "small collections pass through",
			listingCount:    2,
			caseCount:       1,
			expectedWatches: 2,
			expectedCases:   1,
		},
		{
			name:            "empty collections",
			listingCount:    0,
			caseCount:       0,
			expectedWatches: 0,
			expectedCases:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := zap.NewNop()

			service := New(
				catalogdb.New(makeListings(tt.listingCount), log),
				gallerydb.New(makeCases(tt.caseCount), log),
				log,
			)

			watches, cases, err := service.Featured(context.Background())
			require.NoError(t, err)

			assert.Len(t, watches, tt.expectedWatches)
			assert.Len(t, cases, tt.expectedCases)
		})
	}
}

func TestFeaturedKeepsCollectionOrder(t *testing.T) {
	log := zap.NewNop()

	service := New(
		catalogdb.New(makeListings(6), log),
		gallerydb.New(makeCases(4), log),
		log,
	)

	watches, cases, err := service.Featured(context.Background())
	require.NoError(t, err)

	require.Len(t, watches, 4)
	assert.Equal(t, "w1", watches[0].ID)
	assert.Equal(t, "w4", watches[3].ID)

	require.Len(t, cases, 3)
	assert.Equal(t, "c1", cases[0].ID)
	assert.Equal(t, "c3", cases[2].ID)
}
