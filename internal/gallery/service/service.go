package service

import (
	"context"

	"github.com/lesrhabilleurs/atelier-backend/internal/gallery"
	"go.uber.org/zap"
)

type Repository interface {
	GetAll(ctx context.Context) ([]gallery.Case, error)
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

// Search returns the showcased cases, narrowed to one repair type when
// repairType is non-empty. An unknown value simply matches nothing.
func (s *service) Search(ctx context.Context, repairType gallery.RepairType) ([]gallery.Case, error) {
	cases, err := s.repository.GetAll(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching gallery cases", zap.Error(err))

		return nil, err
	}

	if repairType == "" {
		return cases, nil
	}

	filtered := make([]gallery.Case, 0, len(cases))
	for _, c := range cases {
		if c.RepairType == repairType {
			filtered = append(filtered, c)
		}
	}

	return filtered, nil
}

// RepairTypes lists the filterable repair categories with display labels.
func (s *service) RepairTypes(ctx context.Context) ([]gallery.RepairTypeInfo, error) {
	infos := make([]gallery.RepairTypeInfo, 0, len(gallery.Types))
	for _, t := range gallery.Types {
		infos = append(infos, gallery.RepairTypeInfo{Value: t, Label: gallery.Labels[t]})
	}

	return infos, nil
}
