package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"gastos/internal/domain/stats"
)

// Reviewer produces a plain-text analysis from the rendered period data.
type Reviewer interface {
	Review(ctx context.Context, periodContext string) (string, error)
}

type StatsHandler struct {
	stats    *stats.Service
	reviewer Reviewer
	now      func() time.Time
}

// NewStatsHandler creates a handler. reviewer may be nil when no AI backend
// is configured; the review endpoint then reports itself unavailable.
func NewStatsHandler(statsService *stats.Service, reviewer Reviewer) *StatsHandler {
	return &StatsHandler{stats: statsService, reviewer: reviewer, now: time.Now}
}

type ReviewRequest struct {
	Period    string `json:"period,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

type ReviewResponse struct {
	Review string `json:"review"`
}

// HandleStats serves the aggregate overview on GET and the AI period review
// on POST.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleOverview(w, r)
	case http.MethodPost:
		h.handleReview(w, r)
	default:
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *StatsHandler) handleOverview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	period, err := h.resolvePeriod(q.Get("period"), q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	overview, err := h.stats.Overview(r.Context(), period)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if overview.ByCategory == nil {
		overview.ByCategory = []stats.CategoryExpense{}
	}
	if overview.ByDay == nil {
		overview.ByDay = []stats.DayTotals{}
	}
	if overview.Wallets == nil {
		overview.Wallets = []stats.WalletBalance{}
	}

	respondData(w, http.StatusOK, overview)
}

func (h *StatsHandler) handleReview(w http.ResponseWriter, r *http.Request) {
	if h.reviewer == nil {
		respondError(w, http.StatusServiceUnavailable, "AI review is not configured")
		return
	}

	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	period, err := h.resolvePeriod(req.Period, req.StartDate, req.EndDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	periodContext, count, err := h.stats.BuildReviewContext(r.Context(), period)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if count == 0 {
		respondData(w, http.StatusOK, ReviewResponse{
			Review: "There are no transactions in this period to analyze. Start recording your movements!",
		})
		return
	}

	review, err := h.reviewer.Review(r.Context(), periodContext)
	if err != nil {
		log.Printf("Error generating period review: %v", err)
		respondError(w, http.StatusBadGateway, "failed to generate review")
		return
	}

	respondData(w, http.StatusOK, ReviewResponse{Review: review})
}

// resolvePeriod turns the period selector into date bounds. "month" (the
// default) is the current calendar month and ignores any startDate/endDate
// sent alongside it, "all" is unbounded, and a custom range uses startDate
// with endDate defaulting to today.
func (h *StatsHandler) resolvePeriod(period, startDate, endDate string) (stats.Period, error) {
	if period == "" || period == "month" {
		return stats.MonthPeriod(h.now().UTC()), nil
	}
	if period == "all" {
		return stats.Period{}, nil
	}

	if startDate == "" {
		return stats.Period{}, nil
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return stats.Period{}, errInvalidDate("startDate")
	}

	end := h.now().UTC().Truncate(24 * time.Hour)
	if endDate != "" {
		end, err = time.Parse("2006-01-02", endDate)
		if err != nil {
			return stats.Period{}, errInvalidDate("endDate")
		}
	}

	return stats.Period{Start: &start, End: &end}, nil
}

type errInvalidDate string

func (e errInvalidDate) Error() string { return "invalid " + string(e) + ", expected YYYY-MM-DD" }
