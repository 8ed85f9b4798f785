package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/lesrhabilleurs/atelier-backend/internal/apperror"
	"github.com/lesrhabilleurs/atelier-backend/internal/catalog"
	"github.com/lesrhabilleurs/atelier-backend/internal/handlers"
	"go.uber.org/zap"
)

type Service interface {
	Search(ctx context.Context, criteria catalog.Criteria) ([]catalog.Listing, error)
	GetByID(ctx context.Context, id string) (*catalog.Listing, error)
	Brands(ctx context.Context) ([]string, error)
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
	router.Route("/watches", func(watchRouter chi.Router) {
		watchRouter.Get("/", apperror.Middleware(h.searchHandler))
		watchRouter.Get("/brands", apperror.Middleware(h.brandsHandler))
		watchRouter.Get("/{id}", apperror.Middleware(h.detailHandler))
	})
}

//	@Tags		catalog
//	@Param		q			query		string	false	"substring match on brand or model"
//	@Param		brand		query		[]string	false	"brand filter, repeatable"
//	@Param		movement	query		[]string	false	"movement filter, repeatable"
//	@Param		condition	query		[]string	false	"condition filter, repeatable"
//	@Param		price_min	query		int		false	"inclusive lower price bound"
//	@Param		price_max	query		int		false	"inclusive upper price bound"
//	@Param		sort		query		string	false	"newest, price_asc or price_desc"
//	@Success	200			{object}	WatchesResponse
//	@Failure	400,500		{object}	apperror.AppError
//	@Router		/watches [get]
func (h *handler) searchHandler(w http.ResponseWriter, r *http.Request) error {
	criteria := ParseCriteria(r.URL.Query())

	watches, err := h.service.Search(r.Context(), criteria)
	if err != nil {
		return err
	}

	render.JSON(w, r, WatchesResponse{Watches: watches, Total: len(watches)})

	return nil
}

//	@Tags		catalog
//	@Param		id		path		string	true	"listing id"
//	@Success	200		{object}	WatchResponse
//	@Failure	400,404,500	{object}	apperror.AppError
//	@Router		/watches/{id} [get]
func (h *handler) detailHandler(w http.ResponseWriter, r *http.Request) error {
	watch, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	render.JSON(w, r, WatchResponse{Watch: *watch})

	return nil
}

//	@Tags		catalog
//	@Success	200		{object}	BrandsResponse
//	@Failure	400,500	{object}	apperror.AppError
//	@Router		/watches/brands [get]
func (h *handler) brandsHandler(w http.ResponseWriter, r *http.Request) error {
	brands, err := h.service.Brands(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, BrandsResponse{Brands: brands})

	return nil
}
