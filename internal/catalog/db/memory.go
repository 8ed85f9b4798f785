package db

import (
	"context"
	"errors"
	"slices"

	"github.com/lesrhabilleurs/atelier-backend/internal/catalog"
	"github.com/lesrhabilleurs/atelier-backend/pkg/utils"
	"go.uber.org/zap"
)

var ErrListingNotFound = errors.New("listing not found")

// repository serves the boutique catalog from memory. The collection is
// fixed at construction and never written afterwards, so it is safe for
// concurrent readers without locking.
type repository struct {
	listings []catalog.Listing
	logger   *zap.Logger
}

func New(listings []catalog.Listing, logger *zap.Logger) *repository {
	return &repository{
		listings: listings,
		logger:   logger,
	}
}

func (r *repository) GetAll(ctx context.Context) ([]catalog.Listing, error) {
	// callers sort and filter their own copy
	return slices.Clone(r.listings), nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*catalog.Listing, error) {
	for _, listing := range r.listings {
		if listing.ID == id {
			return &listing, nil
		}
	}

	return nil, ErrListingNotFound
}

func (r *repository) Brands(ctx context.Context) ([]string, error) {
	brands := make([]string, 0, len(r.listings))
	for _, listing := range r.listings {
		brands = append(brands, listing.Brand)
	}

	return utils.RemoveDuplicates(brands), nil
}
