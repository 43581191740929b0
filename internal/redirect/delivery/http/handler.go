package http

import (
	"errors"
	"net/http"

	"go-affiliate/internal/redirect/domain"
	"go-affiliate/internal/redirect/usecase"
	"go-affiliate/pkg/problemdetails"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the tracked redirect entry points.
type Handler struct {
	service *usecase.RedirectService
	logger  *zap.Logger
}

// NewHandler creates a new Handler
func NewHandler(service *usecase.RedirectService, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Redirect handles GET /redirect/{offerId}?src=&p=
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := usecase.RedirectRequest{
		OfferID:   chi.URLParam(r, "offerId"),
		Source:    q.Get("src"),
		Position:  q.Get("p"),
		ClientIP:  ClientIP(r),
		UserAgent: r.UserAgent(),
		Referer:   r.Referer(),
	}

	// The soft policy always yields a location.
	result, err := h.service.Resolve(r.Context(), usecase.RedirectPolicy, req)
	if err != nil {
		h.logger.Error("redirect resolution failed", zap.String("offer_id", req.OfferID), zap.Error(err))
		writeProblem(w, problemdetails.New(
			http.StatusInternalServerError,
			problemdetails.TypeInternalError,
			"Internal Server Error",
			"Internal server error",
		))
		return
	}

	writeTrackingRedirect(w, result.Location)
}

// Click handles GET /click?offerId=&productId=&src=
func (h *Handler) Click(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := usecase.RedirectRequest{
		OfferID:   q.Get("offerId"),
		ProductID: q.Get("productId"),
		Source:    q.Get("src"),
		ClientIP:  ClientIP(r),
		UserAgent: r.UserAgent(),
		Referer:   r.Referer(),
	}

	result, err := h.service.Resolve(r.Context(), usecase.ClickPolicy, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingOfferID):
			writeProblem(w, problemdetails.New(
				http.StatusBadRequest,
				problemdetails.TypeInvalidRequest,
				"Invalid Request",
				"offerId is required",
			))
		case errors.Is(err, domain.ErrOfferNotFound), errors.Is(err, domain.ErrOfferNotRedirectable):
			writeProblem(w, problemdetails.New(
				http.StatusNotFound,
				problemdetails.TypeOfferNotFound,
				"Offer Not Found",
				"Offer not found: "+req.OfferID,
			))
		default:
			h.logger.Error("click resolution failed", zap.String("offer_id", req.OfferID), zap.Error(err))
			writeProblem(w, problemdetails.New(
				http.StatusInternalServerError,
				problemdetails.TypeInternalError,
				"Internal Server Error",
				"Internal server error",
			))
		}
		return
	}

	writeTrackingRedirect(w, result.Location)
}
