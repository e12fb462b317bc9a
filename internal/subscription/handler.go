package subscription

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/swiff-app/swiff/pkg/response"
)

// Handler handles HTTP requests for subscription operations
type Handler struct {
	service *Service
}

// NewHandler creates a new subscription handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for subscription endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/upcoming", h.Upcoming)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

func (h *Handler) writeValidation(w http.ResponseWriter, err error) bool {
	if errors.Is(err, ErrNameRequired) || errors.Is(err, ErrInvalidPrice) || errors.Is(err, ErrInvalidCycle) {
		response.UnprocessableEntity(w, err.Error())
		return true
	}
	return false
}

// Create handles POST /subscriptions
// @Summary      Create a subscription
// @Description  Track a new recurring charge
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        request body CreateSubscriptionRequest true "Subscription creation request"
// @Success      201 {object} response.APIResponse{data=SubscriptionResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /subscriptions [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	subscription, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if h.writeValidation(w, err) {
			return
		}
		response.InternalError(w, "Failed to create subscription")
		return
	}

	response.JSON(w, http.StatusCreated, subscription.ToResponse(time.Now()))
}

// List handles GET /subscriptions
// @Summary      List subscriptions
// @Description  Get all tracked subscriptions with their next renewal dates
// @Tags         subscriptions
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]SubscriptionResponse}
// @Router       /subscriptions [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	subscriptions, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list subscriptions")
		return
	}

	now := time.Now()
	responses := make([]*SubscriptionResponse, len(subscriptions))
	for i, subscription := range subscriptions {
		responses[i] = subscription.ToResponse(now)
	}

	response.JSON(w, http.StatusOK, responses)
}

// Upcoming handles GET /subscriptions/upcoming
// @Summary      Upcoming renewals
// @Description  Get active subscriptions renewing within the given number of days
// @Tags         subscriptions
// @Produce      json
// @Param        days query int false "Window in days" default(30)
// @Success      200 {object} response.APIResponse{data=[]SubscriptionResponse}
// @Router       /subscriptions/upcoming [get]
func (h *Handler) Upcoming(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))

	subscriptions, err := h.service.Upcoming(r.Context(), days)
	if err != nil {
		response.InternalError(w, "Failed to list upcoming renewals")
		return
	}

	now := time.Now()
	responses := make([]*SubscriptionResponse, len(subscriptions))
	for i, subscription := range subscriptions {
		responses[i] = subscription.ToResponse(now)
	}

	response.JSON(w, http.StatusOK, responses)
}

// GetByID handles GET /subscriptions/{id}
// @Summary      Get a subscription
// @Description  Get a single subscription by its ID
// @Tags         subscriptions
// @Produce      json
// @Param        id path int true "Subscription ID"
// @Success      200 {object} response.APIResponse{data=SubscriptionResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /subscriptions/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid subscription ID")
		return
	}

	subscription, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrSubscriptionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get subscription")
		return
	}

	response.JSON(w, http.StatusOK, subscription.ToResponse(time.Now()))
}

// Update handles PUT /subscriptions/{id}
// @Summary      Update a subscription
// @Description  Update a subscription's details or toggle it active
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        id path int true "Subscription ID"
// @Param        request body UpdateSubscriptionRequest true "Subscription update request"
// @Success      200 {object} response.APIResponse{data=SubscriptionResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /subscriptions/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid subscription ID")
		return
	}

	var req UpdateSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	subscription, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrSubscriptionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if h.writeValidation(w, err) {
			return
		}
		response.InternalError(w, "Failed to update subscription")
		return
	}

	response.JSON(w, http.StatusOK, subscription.ToResponse(time.Now()))
}

// Delete handles DELETE /subscriptions/{id}
// @Summary      Delete a subscription
// @Description  Delete a subscription by its ID
// @Tags         subscriptions
// @Produce      json
// @Param        id path int true "Subscription ID"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /subscriptions/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid subscription ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrSubscriptionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete subscription")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Subscription deleted successfully"})
}
