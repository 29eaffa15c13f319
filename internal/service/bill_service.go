package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/abdoachhoubi/billsplitter/internal/calculator"
	"github.com/abdoachhoubi/billsplitter/internal/metrics"
	"github.com/abdoachhoubi/billsplitter/internal/models"
	"github.com/abdoachhoubi/billsplitter/internal/storage"
	"github.com/abdoachhoubi/billsplitter/pkg/api"
	"github.com/abdoachhoubi/billsplitter/pkg/api/apiconnect"
)

var _ apiconnect.BillServiceHandler = (*BillService)(nil)

// BillService implements the Connect BillService.
type BillService struct {
	store storage.Store
	opts  Options
}

// NewBillService creates a new BillService with the given storage backend.
func NewBillService(store storage.Store, opts Options) *BillService {
	return &BillService{store: store, opts: opts}
}

// buildBill resolves the owner and participants, then computes every share.
// The caller owns the bill unless in.OwnerContactID names the contact who
// paid, in which case the caller is the first participant. The result is
// not validated.
func (s *BillService) buildBill(ctx context.Context, userID string, in api.BillInput) (*models.Bill, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, storageError(err)
	}

	paidByContact := in.OwnerContactID != ""
	if !paidByContact && in.YourSplit != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("your_split requires owner_contact_id"))
	}
	if paidByContact && in.YourSplit == nil {
		return nil, requiredError("your_split")
	}

	ids := make([]string, 0, len(in.Participants)+1)
	seen := make(map[string]bool, len(in.Participants)+1)
	if paidByContact {
		ids = append(ids, in.OwnerContactID)
		seen[in.OwnerContactID] = true
	}
	for _, p := range in.Participants {
		if p.ContactID == "" {
			return nil, requiredError("participant contact_id")
		}
		if seen[p.ContactID] {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("contact %s appears more than once", p.ContactID))
		}
		seen[p.ContactID] = true
		ids = append(ids, p.ContactID)
	}

	contacts, err := s.store.GetContactsByIDs(ctx, userID, ids)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	for _, id := range ids {
		if _, ok := contacts[id]; !ok {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown contact %s", id))
		}
	}

	participants := make([]models.BillParticipant, 0, len(in.Participants)+1)
	owner := &models.BillParticipant{User: user.Snapshot()}
	if paidByContact {
		owner.User = contacts[in.OwnerContactID].Snapshot()
		participants = append(participants, models.BillParticipant{User: user.Snapshot(), Split: *in.YourSplit})
	}
	for _, p := range in.Participants {
		participants = append(participants, models.BillParticipant{User: contacts[p.ContactID].Snapshot(), Split: p.Split})
	}
	if in.OwnerSplit != nil {
		owner.Split = *in.OwnerSplit
	}

	bill := &models.Bill{
		Title:        in.Title,
		Description:  in.Description,
		CategoryID:   in.CategoryID,
		TotalAmount:  in.TotalAmount,
		SplitType:    in.SplitType,
		Owner:        owner,
		Participants: participants,
		Status:       models.BillStatusPending,
		CreatedBy:    userID,
	}
	calculator.FinalizeSplits(bill)
	return bill, nil
}

// validateBill returns an InvalidArgument error listing every problem, or nil.
func validateBill(bill *models.Bill) error {
	problems := calculator.ValidateBill(bill)
	if len(problems) == 0 {
		return nil
	}
	for _, p := range problems {
		metrics.BillValidationFailures.WithLabelValues(p).Inc()
	}
	return validationError(problems)
}

// ownedBill loads a bill the caller may change: one they own or recorded.
func (s *BillService) ownedBill(ctx context.Context, userID, billID string) (*models.Bill, error) {
	if billID == "" {
		return nil, requiredError("bill_id")
	}
	bill, err := s.store.GetBill(ctx, billID)
	if err != nil {
		return nil, storageError(err)
	}
	if !bill.CanEdit(userID) {
		return nil, connect.NewError(connect.CodePermissionDenied, errNotOwner)
	}
	return bill, nil
}

// PreviewSplit computes the owner remainder and every share without saving.
// Validation problems are returned as data.
func (s *BillService) PreviewSplit(ctx context.Context, req *connect.Request[api.PreviewSplitRequest]) (*connect.Response[api.PreviewSplitResponse], error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	bill, err := s.buildBill(ctx, userID, req.Msg.Bill)
	if err != nil {
		slog.Error("PreviewSplit failed", "user_id", userID, "error", err)
		return nil, err
	}

	problems := calculator.ValidateBill(bill)
	slog.Debug("Previewed split",
		"user_id", userID,
		"split_type", bill.SplitType,
		"owner_amount", bill.Owner.AmountToPay,
		"participants", len(bill.Participants),
		"problems", len(problems),
	)

	return connect.NewResponse(&api.PreviewSplitResponse{
		Bill:   bill,
		Valid:  len(problems) == 0,
		Errors: problems,
	}), nil
}

// CreateBill creates a new bill owned by the caller and persists it to storage.
func (s *BillService) CreateBill(ctx context.Context, req *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	bill, err := s.buildBill(ctx, userID, req.Msg.Bill)
	if err != nil {
		slog.Error("CreateBill failed", "user_id", userID, "error", err)
		return nil, err
	}
	if err := validateBill(bill); err != nil {
		slog.Warn("CreateBill validation failed", "user_id", userID, "error", err)
		return nil, err
	}

	// Save to storage (generates ID and CreatedAt)
	if err := s.store.CreateBill(ctx, bill); err != nil {
		slog.Error("CreateBill failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Bill created",
		"bill_id", bill.ID,
		"title", bill.Title,
		"total", bill.TotalAmount,
		"split_type", bill.SplitType,
		"participants", len(bill.Participants),
	)
	return connect.NewResponse(&api.CreateBillResponse{Bill: bill}), nil
}

// GetBill retrieves a bill visible to the caller.
func (s *BillService) GetBill(ctx context.Context, req *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.BillID == "" {
		return nil, requiredError("bill_id")
	}

	bill, err := s.store.GetBill(ctx, req.Msg.BillID)
	if err != nil {
		slog.Error("GetBill failed", "bill_id", req.Msg.BillID, "error", err)
		return nil, storageError(err)
	}
	if !bill.Involves(userID) {
		return nil, connect.NewError(connect.CodePermissionDenied, errNoAccess)
	}

	return connect.NewResponse(&api.GetBillResponse{Bill: bill}), nil
}

// UpdateBill replaces the title, amounts and participants of a bill the
// caller owns. Status and creation fields are kept.
func (s *BillService) UpdateBill(ctx context.Context, req *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.ownedBill(ctx, userID, req.Msg.BillID)
	if err != nil {
		return nil, err
	}

	bill, err := s.buildBill(ctx, userID, req.Msg.Bill)
	if err != nil {
		slog.Error("UpdateBill failed", "bill_id", existing.ID, "error", err)
		return nil, err
	}
	bill.ID = existing.ID
	bill.Status = existing.Status

	if err := validateBill(bill); err != nil {
		slog.Warn("UpdateBill validation failed", "bill_id", bill.ID, "error", err)
		return nil, err
	}

	if err := s.store.UpdateBill(ctx, bill); err != nil {
		slog.Error("UpdateBill failed", "bill_id", bill.ID, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Bill updated", "bill_id", bill.ID, "total", bill.TotalAmount)
	return connect.NewResponse(&api.UpdateBillResponse{Bill: bill}), nil
}

// UpdateBillStatus marks a bill the caller owns as pending, paid or cancelled.
func (s *BillService) UpdateBillStatus(ctx context.Context, req *connect.Request[api.UpdateBillStatusRequest]) (*connect.Response[api.UpdateBillStatusResponse], error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	if !req.Msg.Status.Valid() {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown status %q", req.Msg.Status))
	}

	bill, err := s.ownedBill(ctx, userID, req.Msg.BillID)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateBillStatus(ctx, bill.ID, req.Msg.Status); err != nil {
		slog.Error("UpdateBillStatus failed", "bill_id", bill.ID, "error", err)
		return nil, storageError(err)
	}

	updated, err := s.store.GetBill(ctx, bill.ID)
	if err != nil {
		return nil, storageError(err)
	}

	slog.Info("Bill status updated", "bill_id", bill.ID, "from", bill.Status, "to", updated.Status)
	return connect.NewResponse(&api.UpdateBillStatusResponse{Bill: updated}), nil
}

// DeleteBill deletes a bill the caller owns.
func (s *BillService) DeleteBill(ctx context.Context, req *connect.Request[api.DeleteBillRequest]) (*connect.Response[api.DeleteBillResponse], error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	bill, err := s.ownedBill(ctx, userID, req.Msg.BillID)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeleteBill(ctx, bill.ID); err != nil {
		slog.Error("DeleteBill failed", "bill_id", bill.ID, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Bill deleted", "bill_id", bill.ID)
	return connect.NewResponse(&api.DeleteBillResponse{}), nil
}

// ListBills returns the caller's bills, filtered and sorted.
func (s *BillService) ListBills(ctx context.Context, req *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	status := req.Msg.Status
	if status != "" && status != calculator.StatusAll && !models.BillStatus(status).Valid() {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown status %q", status))
	}
	sortBy := calculator.BillSort(req.Msg.SortBy)
	switch sortBy {
	case "":
		sortBy = calculator.SortBillsByDate
	case calculator.SortBillsByDate, calculator.SortBillsByAmount, calculator.SortBillsByTitle:
	default:
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown sort %q", req.Msg.SortBy))
	}

	snapshot, err := s.store.SnapshotBills(ctx, userID)
	if err != nil {
		slog.Error("ListBills failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	bills := calculator.FilterBills(snapshot.Bills, status, req.Msg.Search)
	bills = calculator.SortBills(bills, sortBy, s.opts.Locale)

	slog.Debug("Listed bills", "user_id", userID, "count", len(bills), "version", snapshot.Version)
	return connect.NewResponse(&api.ListBillsResponse{Bills: bills, Version: snapshot.Version}), nil
}

// SuggestSettlements returns everyone's balance across the caller's pending
// bills and the transfers that would settle them.
func (s *BillService) SuggestSettlements(ctx context.Context, req *connect.Request[api.SuggestSettlementsRequest]) (*connect.Response[api.SuggestSettlementsResponse], error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.store.SnapshotBills(ctx, userID)
	if err != nil {
		slog.Error("SuggestSettlements failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	balances, transfers := calculator.CalculateLedger(snapshot.Bills)

	slog.Info("Suggested settlements", "user_id", userID, "members", len(balances), "transfers", len(transfers))
	return connect.NewResponse(&api.SuggestSettlementsResponse{
		Balances:  balances,
		Transfers: transfers,
	}), nil
}
