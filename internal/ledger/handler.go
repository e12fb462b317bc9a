package ledger

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/swiff-app/swiff/pkg/response"
)

// Handler handles HTTP requests for balances and settlements
type Handler struct {
	service *Service
}

// NewHandler creates a new ledger handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// BalanceRoutes returns the router for balance endpoints
func (h *Handler) BalanceRoutes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListBalances)
	r.Get("/{personID}", h.GetBalance)

	return r
}

// SettlementRoutes returns the router for settlement endpoints
func (h *Handler) SettlementRoutes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListSettlements)

	return r
}

// balanceMessage phrases a balance the way the app shows it
func balanceMessage(b *Balance) string {
	switch {
	case b.Amount > 0:
		return fmt.Sprintf("%s is owed $%.2f", b.Name, b.Amount)
	case b.Amount < 0:
		return fmt.Sprintf("%s owes $%.2f", b.Name, -b.Amount)
	default:
		return fmt.Sprintf("%s is settled up", b.Name)
	}
}

// ListBalances handles GET /balances
// @Summary      List all balances
// @Description  Get every person's current ledger balance
// @Tags         balances
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]BalanceResponse}
// @Router       /balances [get]
func (h *Handler) ListBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.service.ListBalances(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list balances")
		return
	}

	responses := make([]*BalanceResponse, len(balances))
	for i, b := range balances {
		responses[i] = &BalanceResponse{
			PersonID: b.PersonID,
			Name:     b.Name,
			Amount:   b.Amount,
			Message:  balanceMessage(b),
		}
	}

	response.JSON(w, http.StatusOK, responses)
}

// GetBalance handles GET /balances/{personID}
// @Summary      Get a person's balance
// @Description  Get one person's current ledger balance
// @Tags         balances
// @Produce      json
// @Param        personID path int true "Person ID"
// @Success      200 {object} response.APIResponse{data=BalanceResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /balances/{personID} [get]
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "personID")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid person ID")
		return
	}

	balance, err := h.service.GetBalance(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPersonNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get balance")
		return
	}

	response.JSON(w, http.StatusOK, &BalanceResponse{
		PersonID: balance.PersonID,
		Name:     balance.Name,
		Amount:   balance.Amount,
		Message:  balanceMessage(balance),
	})
}

// Settle handles POST /people/{id}/settle
// @Summary      Settle a person
// @Description  Reset a person's balance to zero and record the reset. Idempotent.
// @Tags         balances
// @Produce      json
// @Param        id path int true "Person ID"
// @Success      200 {object} response.APIResponse{data=SettlementResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /people/{id}/settle [post]
func (h *Handler) Settle(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid person ID")
		return
	}

	settlement, err := h.service.Settle(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPersonNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to settle balance")
		return
	}

	response.JSON(w, http.StatusOK, settlement.ToResponse())
}

// ListSettlements handles GET /settlements
// @Summary      List settlements
// @Description  Get the settlement audit trail, newest first
// @Tags         settlements
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]SettlementResponse}
// @Router       /settlements [get]
func (h *Handler) ListSettlements(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	settlements, total, err := h.service.ListSettlements(r.Context(), page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list settlements")
		return
	}

	responses := make([]*SettlementResponse, len(settlements))
	for i, s := range settlements {
		responses[i] = s.ToResponse()
	}

	totalPages := (total + perPage - 1) / perPage
	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}

	response.JSONWithMeta(w, http.StatusOK, responses, meta)
}
