package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/swiff-app/swiff/pkg/response"
)

// Handler handles HTTP requests for transaction operations
type Handler struct {
	service *Service
}

// NewHandler creates a new transaction handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for transaction endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/summary", h.Summary)
	r.Get("/{id}", h.GetByID)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /transactions
// @Summary      Create a transaction
// @Description  Add a plain entry to the activity feed. Negative amounts are expenses, positive amounts income.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        request body CreateTransactionRequest true "Transaction creation request"
// @Success      201 {object} response.APIResponse{data=TransactionResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /transactions [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	transaction, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrTitleRequired) || errors.Is(err, ErrInvalidAmount) {
			response.UnprocessableEntity(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create transaction")
		return
	}

	response.JSON(w, http.StatusCreated, transaction.ToResponse())
}

// List handles GET /transactions
// @Summary      List transactions
// @Description  Get a paginated list of transactions, newest first, optionally filtered by category
// @Tags         transactions
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Param        category query string false "Category filter"
// @Success      200 {object} response.APIResponse{data=[]TransactionResponse}
// @Router       /transactions [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	category := r.URL.Query().Get("category")

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	transactions, total, err := h.service.List(r.Context(), category, page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list transactions")
		return
	}

	transactionResponses := make([]*TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		transactionResponses[i] = transaction.ToResponse()
	}

	totalPages := (total + perPage - 1) / perPage
	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}

	response.JSONWithMeta(w, http.StatusOK, transactionResponses, meta)
}

// Summary handles GET /transactions/summary
// @Summary      Spending summary
// @Description  Get expenses grouped by category over a date range (default: trailing 30 days)
// @Tags         transactions
// @Produce      json
// @Param        from query string false "Range start (YYYY-MM-DD)"
// @Param        to query string false "Range end (YYYY-MM-DD)"
// @Success      200 {object} response.APIResponse{data=SummaryResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /transactions/summary [get]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	var from, to time.Time
	var err error

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err = time.Parse("2006-01-02", fromStr)
		if err != nil {
			response.BadRequest(w, "Invalid from date, expected YYYY-MM-DD")
			return
		}
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err = time.Parse("2006-01-02", toStr)
		if err != nil {
			response.BadRequest(w, "Invalid to date, expected YYYY-MM-DD")
			return
		}
	}

	summary, err := h.service.Summarize(r.Context(), from, to)
	if err != nil {
		response.InternalError(w, "Failed to summarize transactions")
		return
	}

	response.JSON(w, http.StatusOK, summary)
}

// GetByID handles GET /transactions/{id}
// @Summary      Get a transaction
// @Description  Get a single transaction by its ID
// @Tags         transactions
// @Produce      json
// @Param        id path int true "Transaction ID"
// @Success      200 {object} response.APIResponse{data=TransactionResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /transactions/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid transaction ID")
		return
	}

	transaction, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get transaction")
		return
	}

	response.JSON(w, http.StatusOK, transaction.ToResponse())
}

// Delete handles DELETE /transactions/{id}
// @Summary      Delete a transaction
// @Description  Delete a transaction by its ID
// @Tags         transactions
// @Produce      json
// @Param        id path int true "Transaction ID"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /transactions/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid transaction ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete transaction")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Transaction deleted successfully"})
}
