package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go-affiliate/internal/analytics/usecase"
	"go-affiliate/pkg/problemdetails"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// DefaultWindow is the reporting window when start is omitted.
const DefaultWindow = 30 * 24 * time.Hour

const dateLayout = "2006-01-02"

type Handler struct {
	aggregator *usecase.ClickAggregator
	logger     *zap.Logger
	now        func() time.Time
}

func NewHandler(aggregator *usecase.ClickAggregator, logger *zap.Logger) *Handler {
	return &Handler{
		aggregator: aggregator,
		logger:     logger,
		now:        time.Now,
	}
}

// BucketResponse is one row of the clicks over time report.
type BucketResponse struct {
	Bucket string `json:"bucket"`
	Clicks int64  `json:"clicks"`
}

// ClicksOverTime handles GET /admin/clicks
func (h *Handler) ClicksOverTime(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	start, end, ok := h.parseWindow(w, r)
	if !ok {
		return
	}

	buckets, err := h.aggregator.ClicksOverTime(r.Context(), usecase.TimeQuery{
		Start:       start,
		End:         end,
		Granularity: lo.CoalesceOrEmpty(q.Get("granularity"), usecase.GranularityDay),
		ProductID:   q.Get("productId"),
	})
	if err != nil {
		h.writeQueryError(w, err)
		return
	}

	writeData(w, lo.Map(buckets, func(b usecase.BucketCount, _ int) BucketResponse {
		return BucketResponse{Bucket: b.Bucket.Format(time.RFC3339), Clicks: b.Clicks}
	}))
}

// TopProducts handles GET /admin/clicks/by-product
func (h *Handler) TopProducts(w http.ResponseWriter, r *http.Request) {
	start, end, ok := h.parseWindow(w, r)
	if !ok {
		return
	}

	limit := usecase.DefaultTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeProblem(w, problemdetails.NewValidation([]problemdetails.FieldError{
				{Field: "limit", Message: "must be an integer"},
			}))
			return
		}
		limit = n
	}

	rows, err := h.aggregator.TopProducts(r.Context(), usecase.TopQuery{
		Start: start,
		End:   end,
		Limit: limit,
	})
	if err != nil {
		h.writeQueryError(w, err)
		return
	}

	writeData(w, rows)
}

// parseWindow reads start and end. Both accept YYYY-MM-DD, taken as local
// midnight in the reporting zone, or RFC 3339. end defaults to now and start
// to end minus DefaultWindow.
func (h *Handler) parseWindow(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	q := r.URL.Query()
	loc := h.aggregator.Location()

	end := h.now().In(loc)
	if raw := q.Get("end"); raw != "" {
		t, err := parseTime(raw, loc)
		if err != nil {
			writeProblem(w, timeProblem("end"))
			return time.Time{}, time.Time{}, false
		}
		end = t
	}

	start := end.Add(-DefaultWindow)
	if raw := q.Get("start"); raw != "" {
		t, err := parseTime(raw, loc)
		if err != nil {
			writeProblem(w, timeProblem("start"))
			return time.Time{}, time.Time{}, false
		}
		start = t
	}

	return start, end, true
}

func (h *Handler) writeQueryError(w http.ResponseWriter, err error) {
	if errors.Is(err, usecase.ErrInvalidQuery) {
		writeProblem(w, problemdetails.FromValidation(err))
		return
	}

	h.logger.Error("analytics query failed", zap.Error(err))
	writeProblem(w, problemdetails.New(
		http.StatusInternalServerError,
		problemdetails.TypeInternalError,
		"Internal Server Error",
		"Failed to compute click analytics",
	))
}

func parseTime(raw string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(dateLayout, raw, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q: %w", raw, err)
	}
	return t.In(loc), nil
}

func timeProblem(field string) *problemdetails.ProblemDetail {
	return problemdetails.NewValidation([]problemdetails.FieldError{
		{Field: field, Message: "must be a date (YYYY-MM-DD) or an RFC 3339 timestamp"},
	})
}
