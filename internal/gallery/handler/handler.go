package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/lesrhabilleurs/atelier-backend/internal/apperror"
	"github.com/lesrhabilleurs/atelier-backend/internal/gallery"
	"github.com/lesrhabilleurs/atelier-backend/internal/handlers"
	"go.uber.org/zap"
)

type Service interface {
	Search(ctx context.Context, repairType gallery.RepairType) ([]gallery.Case, error)
	RepairTypes(ctx context.Context) ([]gallery.RepairTypeInfo, error)
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
	router.Route("/gallery", func(galleryRouter chi.Router) {
		galleryRouter.Get("/", apperror.Middleware(h.searchHandler))
		galleryRouter.Get("/repair-types", apperror.Middleware(h.repairTypesHandler))
	})
}

//	@Tags		gallery
//	@Param		type	query		string	false	"repair type filter"
//	@Success	200		{object}	CasesResponse
//	@Failure	400,500	{object}	apperror.AppError
//	@Router		/gallery [get]
func (h *handler) searchHandler(w http.ResponseWriter, r *http.Request) error {
	repairType := gallery.RepairType(r.URL.Query().Get("type"))

	cases, err := h.service.Search(r.Context(), repairType)
	if err != nil {
		return err
	}

	render.JSON(w, r, CasesResponse{Cases: cases, Total: len(cases)})

	return nil
}

//	@Tags		gallery
//	@Success	200		{object}	RepairTypesResponse
//	@Failure	400,500	{object}	apperror.AppError
//	@Router		/gallery/repair-types [get]
func (h *handler) repairTypesHandler(w http.ResponseWriter, r *http.Request) error {
	types, err := h.service.RepairTypes(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, RepairTypesResponse{RepairTypes: types})

	return nil
}
