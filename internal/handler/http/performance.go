package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/employeems/ems-backend-go/internal/domain/performance"
	"github.com/employeems/ems-backend-go/internal/handler/http/response"
	performanceService "github.com/employeems/ems-backend-go/internal/service/performance"
	"github.com/go-chi/chi/v5"
)

type PerformanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type performanceHandlerImpl struct {
	performanceService performanceService.PerformanceService
}

func NewPerformanceHandler(svc performanceService.PerformanceService) PerformanceHandler {
	return &performanceHandlerImpl{
		performanceService: svc,
	}
}

// Create implements PerformanceHandler.
func (h *performanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req performance.CreatePerformanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.performanceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Performance record created successfully", result)
}

// Get implements PerformanceHandler.
func (h *performanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.performanceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements PerformanceHandler.
func (h *performanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := performance.PerformanceFilter{
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
	}

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if rating := r.URL.Query().Get("rating"); rating != "" {
		if parsed, err := strconv.Atoi(rating); err == nil {
			filter.Rating = &parsed
		}
	}
	if reviewDate := r.URL.Query().Get("review_date"); reviewDate != "" {
		filter.ReviewDate = &reviewDate
	}
	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}
	if page := r.URL.Query().Get("page"); page != "" {
		if parsed, err := strconv.Atoi(page); err == nil {
			filter.Page = parsed
		}
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		if parsed, err := strconv.Atoi(limit); err == nil {
			filter.Limit = parsed
		}
	}

	results, total, err := h.performanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	response.SuccessWithMeta(w, results, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// Update implements PerformanceHandler.
func (h *performanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req performance.UpdatePerformanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.performanceService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance record updated successfully", result)
}

// Delete implements PerformanceHandler.
func (h *performanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.performanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance record deleted successfully", nil)
}
