package service

import (
	"context"

	"github.com/lesrhabilleurs/atelier-backend/internal/catalog"
	"github.com/lesrhabilleurs/atelier-backend/internal/gallery"
	"go.uber.org/zap"
)

// Home page picks: leading listings and cases in collection order.
const (
	featuredWatchCount = 4
	featuredCaseCount  = 3
)

type ListingRepository interface {
	GetAll(ctx context.Context) ([]catalog.Listing, error)
}

type CaseRepository interface {
	GetAll(ctx context.Context) ([]gallery.Case, error)
}

type service struct {
	listings ListingRepository
	cases    CaseRepository
	logger   *zap.Logger
}

func New(
	listings ListingRepository,
	cases CaseRepository,
	logger *zap.Logger,
) *service {
	return &service{
		listings: listings,
		cases:    cases,
		logger:   logger,
	}
}

// Featured returns the home-page selection: the first watches and gallery
// cases of their collections.
func (s *service) Featured(ctx context.Context) ([]catalog.Listing, []gallery.Case, error) {
	listings, err := s.listings.GetAll(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching featured listings", zap.Error(err))

		return nil, nil, err
	}

	cases, err := s.cases.GetAll(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching featured cases", zap.Error(err))

		return nil, nil, err
	}

	if len(listings) > featuredWatchCount {
		listings = listings[:featuredWatchCount]
	}
	if len(cases) > featuredCaseCount {
		cases = cases[:featuredCaseCount]
	}

	return listings, cases, nil
}
