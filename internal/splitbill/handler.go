package splitbill

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/swiff-app/swiff/internal/ledger"
	"github.com/swiff-app/swiff/pkg/response"
)

// Handler handles HTTP requests for split bill operations
type Handler struct {
	service *Service
}

// NewHandler creates a new split bill handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for split bill endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Post("/preview", h.Preview)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)

	return r
}

// Create handles POST /splits
// @Summary      Create a split bill
// @Description  Compute shares for the chosen strategy, persist the bill and apply all balance changes atomically
// @Tags         splits
// @Accept       json
// @Produce      json
// @Param        request body CreateSplitBillRequest true "Split bill creation request"
// @Success      201 {object} response.APIResponse{data=SplitBillResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /splits [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSplitBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	bill, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrParticipantNotFound):
			response.Conflict(w, "Participant not found - refresh and retry")
		case IsValidationError(err):
			response.UnprocessableEntity(w, humanize(err))
		default:
			response.InternalError(w, "Failed to create split bill")
		}
		return
	}

	response.JSON(w, http.StatusCreated, bill.ToResponse())
}

// Preview handles POST /splits/preview
// @Summary      Preview a split configuration
// @Description  Compute shares and the live validity message for a bill-in-progress without persisting anything
// @Tags         splits
// @Accept       json
// @Produce      json
// @Param        request body CreateSplitBillRequest true "Split bill in progress"
// @Success      200 {object} response.APIResponse{data=PreviewResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /splits/preview [post]
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	var req CreateSplitBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	response.JSON(w, http.StatusOK, h.service.Preview(&req))
}

// List handles GET /splits
// @Summary      List split bills
// @Description  Get a paginated list of split bills, newest first
// @Tags         splits
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]SplitBillResponse}
// @Router       /splits [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	bills, total, err := h.service.List(r.Context(), page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list split bills")
		return
	}

	billResponses := make([]*SplitBillResponse, len(bills))
	for i, bill := range bills {
		billResponses[i] = bill.ToResponse()
	}

	totalPages := (total + perPage - 1) / perPage
	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}

	response.JSONWithMeta(w, http.StatusOK, billResponses, meta)
}

// GetByID handles GET /splits/{id}
// @Summary      Get a split bill
// @Description  Get a split bill with its participants and their shares
// @Tags         splits
// @Produce      json
// @Param        id path int true "Split bill ID"
// @Success      200 {object} response.APIResponse{data=SplitBillResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /splits/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid split bill ID")
		return
	}

	bill, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrSplitBillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get split bill")
		return
	}

	response.JSON(w, http.StatusOK, bill.ToResponse())
}
