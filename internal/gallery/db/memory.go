package db

import (
	"context"
	"slices"

	"github.com/lesrhabilleurs/atelier-backend/internal/gallery"
	"go.uber.org/zap"
)

// repository serves the before/after showcase from memory; fixed at
// construction, read-only afterwards.
type repository struct {
	cases  []gallery.Case
	logger *zap.Logger
}

func New(cases []gallery.Case, logger *zap.Logger) *repository {
	return &repository{
		cases:  cases,
		logger: logger,
	}
}

func (r *repository) GetAll(ctx context.Context) ([]gallery.Case, error) {
	return slices.Clone(r.cases), nil
}
