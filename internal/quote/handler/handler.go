package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/lesrhabilleurs/atelier-backend/internal/apperror"
	"github.com/lesrhabilleurs/atelier-backend/internal/handlers"
	"github.com/lesrhabilleurs/atelier-backend/internal/quote"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockquotehandler
type Service interface {
	Submit(ctx context.Context, req quote.Request) (*quote.Receipt, error)
	ValidateStep(ctx context.Context, step int, req quote.Request) error
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
	router.Route("/quotes", func(quoteRouter chi.Router) {
		quoteRouter.Post("/", apperror.Middleware(h.submitHandler))
		quoteRouter.Post("/steps/{step}", apperror.Middleware(h.validateStepHandler))
	})
}

//	@Tags		quote
//	@Param		request	body		QuoteRequest	true	"request body"
//	@Success	200		{object}	QuoteResponse
//	@Failure	400,500	{object}	apperror.AppError
//	@Failure	502		{object}	apperror.AppError
//	@Router		/quotes [post]
func (h *handler) submitHandler(w http.ResponseWriter, r *http.Request) error {
	var dto QuoteRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	receipt, err := h.service.Submit(r.Context(), *dto.ToDomain())
	if err != nil {
		return err
	}

	render.JSON(w, r, QuoteResponse{Quote: *receipt})

	return nil
}

//	@Tags		quote
//	@Param		step	path		int				true	"wizard step (1..3)"
//	@Param		request	body		QuoteRequest	true	"request body"
//	@Success	200		{object}	StepValidResponse
//	@Failure	400,500	{object}	apperror.AppError
//	@Router		/quotes/steps/{step} [post]
func (h *handler) validateStepHandler(w http.ResponseWriter, r *http.Request) error {
	step, err := strconv.Atoi(chi.URLParam(r, "step"))
	if err != nil || step < 1 || step > 3 {
		return quote.ErrUnknownStep
	}

	var dto QuoteRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := h.service.ValidateStep(r.Context(), step, *dto.ToDomain()); err != nil {
		return err
	}

	render.JSON(w, r, StepValidResponse{Step: step, Valid: true})

	return nil
}
