package service

import (
	"context"
	"errors"

	"github.com/lesrhabilleurs/atelier-backend/internal/apperror"
	"github.com/lesrhabilleurs/atelier-backend/internal/catalog"
	"github.com/lesrhabilleurs/atelier-backend/internal/catalog/db"
	"go.uber.org/zap"
)

type Repository interface {
	GetAll(ctx context.Context) ([]catalog.Listing, error)
	GetByID(ctx context.Context, id string) (*catalog.Listing, error)
	Brands(ctx context.Context) ([]string, error)
}

type service struct {
	repository Repository
	logger     *zap.Logger
}

func New(
	repository Repository,
	logger *zap.Logger,
) *service {
	return &service{
		repository: repository,
		logger:     logger,
	}
}

// Search returns the listings matching criteria, ordered by its sort key.
func (s *service) Search(ctx context.Context, criteria catalog.Criteria) ([]catalog.Listing, error) {
	listings, err := s.repository.GetAll(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching listings", zap.Error(err))

		return nil, err
	}

	return catalog.Apply(listings, criteria), nil
}

func (s *service) GetByID(ctx context.Context, id string) (*catalog.Listing, error) {
	listing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrListingNotFound) {
			return nil, apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when fetching listing by id", zap.Error(err))

		return nil, err
	}

	return listing, nil
}

func (s *service) Brands(ctx context.Context) ([]string, error) {
	brands, err := s.repository.Brands(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching brands", zap.Error(err))

		return nil, err
	}

	return brands, nil
}
