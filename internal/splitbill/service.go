package splitbill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/swiff-app/swiff/internal/ledger"
	"github.com/swiff-app/swiff/internal/splitbill/split"
	"github.com/swiff-app/swiff/internal/transaction"
)

// Common errors
var (
	ErrSplitBillNotFound = errors.New("split bill not found")
	ErrSharesMismatch    = errors.New("computed shares do not sum to the total")
)

// Service handles split bill business logic. Creating a bill is the only
// path that moves balances, and it follows a strict stage-everything,
// mutate-on-commit order: nothing persists until every check has passed.
type Service struct {
	repo         *Repository
	splitFactory *split.Factory
	ledger       *ledger.Service
	transactions *transaction.Repository
}

// NewService creates a new split bill service with dependencies injected
func NewService(repo *Repository, splitFactory *split.Factory, ledgerService *ledger.Service, transactions *transaction.Repository) *Service {
	return &Service{
		repo:         repo,
		splitFactory: splitFactory,
		ledger:       ledgerService,
		transactions: transactions,
	}
}

// Create validates, computes, persists and applies one split bill.
//
// Order matters: form checks, then share computation, then the sum
// invariant, then participant resolution - all before the first write. If
// the balance commit fails after the bill row landed, the bill is deleted
// again so the ledger and the bill history cannot diverge.
func (s *Service) Create(ctx context.Context, req *CreateSplitBillRequest) (*SplitBill, error) {
	if err := ValidateForm(req); err != nil {
		return nil, err
	}

	strategy, err := s.splitFactory.CreateFromString(req.SplitType)
	if err != nil {
		return nil, err
	}

	inputs := make([]split.Input, len(req.Participants))
	for i, p := range req.Participants {
		inputs[i] = p.ToSplitInput()
	}

	shares, err := strategy.Calculate(req.TotalAmount, inputs)
	if err != nil {
		return nil, err
	}

	// Sum invariant, re-checked at commit time
	var sum float64
	for _, share := range shares {
		sum += share.Amount
	}
	if math.Abs(sum-req.TotalAmount) > split.AmountEpsilon {
		return nil, fmt.Errorf("%w: got %.2f, expected %.2f", ErrSharesMismatch, sum, req.TotalAmount)
	}

	// Stage the balance changes and resolve every participant before any
	// write. A stale participant id aborts here with nothing persisted.
	ledgerShares := make([]ledger.Share, len(shares))
	for i, share := range shares {
		ledgerShares[i] = ledger.Share{PersonID: share.PersonID, Amount: share.Amount}
	}
	deltas := ledger.StageDeltas(req.PaidByID, ledgerShares)
	resolve := deltas
	if len(resolve) == 0 {
		// Payer-only bill stages no deltas, but the payer still has to exist
		resolve = []ledger.Delta{{PersonID: req.PaidByID}}
	}
	if err := s.ledger.Resolve(ctx, resolve); err != nil {
		return nil, err
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	bill, err := s.repo.CreateBill(ctx, req, date, shares)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.Apply(ctx, deltas); err != nil {
		// Compensate: without the balance changes the bill must not exist
		if delErr := s.repo.Delete(ctx, bill.ID); delErr != nil {
			slog.Error("failed to roll back split bill after ledger error",
				"bill_id", bill.ID, "error", delErr)
		}
		return nil, err
	}

	// Summary transaction for the dashboard feed. The ledger is already
	// consistent at this point, so a failure here is logged, not fatal.
	subtitle := fmt.Sprintf("Split with %d people", len(bill.Participants))
	if _, err := s.transactions.Create(ctx, &transaction.CreateTransactionRequest{
		Title:       req.Title,
		Subtitle:    &subtitle,
		Amount:      -req.TotalAmount,
		Category:    req.Category,
		Date:        &date,
		SplitBillID: &bill.ID,
	}); err != nil {
		slog.Warn("failed to create summary transaction for split bill",
			"bill_id", bill.ID, "error", err)
	}

	return bill, nil
}

// Preview computes what a bill-in-progress would produce without touching
// storage: the live validity flag, the inline message, and the shares.
func (s *Service) Preview(req *CreateSplitBillRequest) *PreviewResponse {
	valid, message := CheckConfiguration(s.splitFactory, req)
	resp := &PreviewResponse{Valid: valid, Message: message}
	if !valid {
		return resp
	}

	strategy, err := s.splitFactory.CreateFromString(req.SplitType)
	if err != nil {
		resp.Valid = false
		resp.Message = humanize(err)
		return resp
	}

	inputs := make([]split.Input, len(req.Participants))
	for i, p := range req.Participants {
		inputs[i] = p.ToSplitInput()
	}

	shares, err := strategy.Calculate(req.TotalAmount, inputs)
	if err != nil {
		resp.Valid = false
		resp.Message = humanize(err)
		return resp
	}

	for _, share := range shares {
		resp.Shares = append(resp.Shares, &PreviewShare{PersonID: share.PersonID, Amount: share.Amount})
	}
	return resp
}

// GetByID retrieves a bill with its participants
func (s *Service) GetByID(ctx context.Context, id int64) (*SplitBill, error) {
	bill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, ErrSplitBillNotFound
	}
	return bill, nil
}

// List retrieves bills with pagination
func (s *Service) List(ctx context.Context, page, perPage int) ([]*SplitBill, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.List(ctx, perPage, offset)
}
