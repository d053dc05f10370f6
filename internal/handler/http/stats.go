package http

import (
	"net/http"
	"time"

	"github.com/employeems/ems-backend-go/internal/handler/http/response"
	statsService "github.com/employeems/ems-backend-go/internal/service/stats"
	"github.com/go-chi/chi/v5"
)

type StatsHandler interface {
	EmployeeStats(w http.ResponseWriter, r *http.Request)
	FleetStats(w http.ResponseWriter, r *http.Request)
	AttendanceAnalytics(w http.ResponseWriter, r *http.Request)
	EmployeeAnalytics(w http.ResponseWriter, r *http.Request)
	PublicStats(w http.ResponseWriter, r *http.Request)
}

type statsHandlerImpl struct {
	statsService statsService.StatsService
}

func NewStatsHandler(svc statsService.StatsService) StatsHandler {
	return &statsHandlerImpl{
		statsService: svc,
	}
}

// parseRange reads optional start_date / end_date query params. A malformed
// date reports back through ok=false after writing the error response.
func parseRange(w http.ResponseWriter, r *http.Request) (start, end *time.Time, ok bool) {
	if s := r.URL.Query().Get("start_date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			response.BadRequest(w, "start_date must be in YYYY-MM-DD format", nil)
			return nil, nil, false
		}
		start = &parsed
	}
	if e := r.URL.Query().Get("end_date"); e != "" {
		parsed, err := time.Parse("2006-01-02", e)
		if err != nil {
			response.BadRequest(w, "end_date must be in YYYY-MM-DD format", nil)
			return nil, nil, false
		}
		end = &parsed
	}
	return start, end, true
}

// EmployeeStats implements StatsHandler.
func (h *statsHandlerImpl) EmployeeStats(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	start, end, ok := parseRange(w, r)
	if !ok {
		return
	}

	result, err := h.statsService.EmployeeStats(r.Context(), id, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// FleetStats implements StatsHandler.
func (h *statsHandlerImpl) FleetStats(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseRange(w, r)
	if !ok {
		return
	}

	result, err := h.statsService.FleetStats(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AttendanceAnalytics implements StatsHandler.
func (h *statsHandlerImpl) AttendanceAnalytics(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseRange(w, r)
	if !ok {
		return
	}

	result, err := h.statsService.AttendanceAnalytics(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EmployeeAnalytics implements StatsHandler.
func (h *statsHandlerImpl) EmployeeAnalytics(w http.ResponseWriter, r *http.Request) {
	result, err := h.statsService.EmployeeAnalytics(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PublicStats implements StatsHandler. Served without authentication.
func (h *statsHandlerImpl) PublicStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.statsService.PublicStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
