package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/lesrhabilleurs/atelier-backend/internal/apperror"
	"github.com/lesrhabilleurs/atelier-backend/internal/catalog"
	"github.com/lesrhabilleurs/atelier-backend/internal/gallery"
	"github.com/lesrhabilleurs/atelier-backend/internal/handlers"
	"go.uber.org/zap"
)

type Service interface {
	Featured(ctx context.Context) ([]catalog.Listing, []gallery.Case, error)
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func New(service Service, logger *zap.Logger) handlers.Handler {
	return &handler{
		service: service,
		logger:  logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Get("/featured", apperror.Middleware(h.featuredHandler))
}

//	@Tags		showcase
//	@Success	200		{object}	FeaturedResponse
//	@Failure	400,500	{object}	apperror.AppError
//	@Router		/featured [get]
func (h *handler) featuredHandler(w http.ResponseWriter, r *http.Request) error {
	watches, cases, err := h.service.Featured(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, FeaturedResponse{Watches: watches, Cases: cases})

	return nil
}

type FeaturedResponse struct {
	Watches []catalog.Listing `json:"watches"`
	Cases   []gallery.Case    `json:"cases"`
}
