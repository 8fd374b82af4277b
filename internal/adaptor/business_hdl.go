package adaptor

import (
	"encoding/json"
	"net/http"

	"garagehub/internal/data/entity"
	"garagehub/internal/dto/request"
	"garagehub/internal/usecase"
	"garagehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BusinessHandler struct {
	service usecase.BusinessService
	stats   usecase.StatsService
	log     *zap.Logger
}

func NewBusinessHandler(service usecase.BusinessService, stats usecase.StatsService, log *zap.Logger) *BusinessHandler {
	return &BusinessHandler{
		service: service,
		stats:   stats,
		log:     log,
	}
}

// CreateBusiness handles POST /api/business
func (h *BusinessHandler) CreateBusiness(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	var req request.CreateBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateBusiness(r.Context(), userID, entity.UserRole(role), &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "Business created", resp)
}

// GetStats handles GET /api/business/stats?businessId=
func (h *BusinessHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.stats.GetBusinessStats(r.Context(), userID, r.URL.Query().Get("businessId"))
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Statistics retrieved", resp)
}

// GetBookings handles GET /api/business/bookings?businessId=&limit=
func (h *BusinessHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	limit := utils.ParseInt(r.URL.Query().Get("limit"), 10)

	resp, err := h.service.GetBusinessBookings(r.Context(), userID, r.URL.Query().Get("businessId"), limit)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", resp)
}

// GetCustomers handles GET /api/business/customers?businessId=
func (h *BusinessHandler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.GetBusinessCustomers(r.Context(), userID, r.URL.Query().Get("businessId"))
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Customers retrieved", resp)
}

// CreateService handles POST /api/business/services
func (h *BusinessHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateService(r.Context(), userID, &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "Service created", resp)
}

// ListServices handles GET /api/services?businessId= (public)
func (h *BusinessHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListServices(r.Context(), r.URL.Query().Get("businessId"))
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Services retrieved", resp)
}

// Verify handles PATCH /api/admin/businesses/{id}/verify
func (h *BusinessHandler) Verify(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "id")

	if err := h.service.VerifyBusiness(r.Context(), businessID); err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Business verified", nil)
}
