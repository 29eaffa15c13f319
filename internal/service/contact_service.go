package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/abdoachhoubi/billsplitter/internal/calculator"
	"github.com/abdoachhoubi/billsplitter/internal/export"
	"github.com/abdoachhoubi/billsplitter/internal/models"
	"github.com/abdoachhoubi/billsplitter/internal/storage"
	"github.com/abdoachhoubi/billsplitter/pkg/api"
	"github.com/abdoachhoubi/billsplitter/pkg/api/apiconnect"
)

var _ apiconnect.ContactServiceHandler = (*ContactService)(nil)

// ContactService implements the Connect ContactService. Stats are derived
// from the caller's bills through a shared StatsCache.
type ContactService struct {
	store storage.Store
	cache *calculator.StatsCache
	opts  Options
}

// NewContactService creates a new ContactService.
func NewContactService(store storage.Store, cache *calculator.StatsCache, opts Options) *ContactService {
	return &ContactService{store: store, cache: cache, opts: opts}
}

func contactFromInput(in api.ContactInput) models.Contact {
	return models.Contact{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Phone:        strings.TrimSpace(in.Phone),
		Email:        strings.TrimSpace(in.Email),
		ProfileImage: in.ProfileImage,
	}
}

// ownedContact loads a contact kept by the caller.
func (s *ContactService) ownedContact(ctx context.Context, userID, contactID string) (*models.Contact, error) {
	if contactID == "" {
		return nil, requiredError("contact_id")
	}
	contact, err := s.store.GetContact(ctx, contactID)
	if err != nil {
		return nil, storageError(err)
	}
	if contact.OwnerID != userID {
		return nil, connect.NewError(connect.CodePermissionDenied, errNotYourContact)
	}
	return contact, nil
}

// ledger returns the caller's classified bills with one contact.
func (s *ContactService) ledger(ctx context.Context, userID, contactID string) (calculator.ContactLedger, error) {
	snapshot, err := s.store.SnapshotBills(ctx, userID)
	if err != nil {
		return calculator.ContactLedger{}, connect.NewError(connect.CodeInternal, err)
	}
	return s.cache.Ledger(snapshot, contactID, userID), nil
}

// CreateContact adds a contact to the caller's list.
func (s *ContactService) CreateContact(ctx context.Context, req *connect.Request[api.CreateContactRequest]) (*connect.Response[api.CreateContactResponse], error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	contact := contactFromInput(req.Msg.Contact)
	contact.OwnerID = userID
	if problems := calculator.ValidateContact(&contact); len(problems) > 0 {
		return nil, validationError(problems)
	}

	if err := s.store.CreateContact(ctx, &contact); err != nil {
		slog.Error("CreateContact failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Contact created", "contact_id", contact.ID, "user_id", userID)
	return connect.NewResponse(&api.CreateContactResponse{Contact: &contact}), nil
}

// GetContact returns a contact together with its stats.
func (s *ContactService) GetContact(ctx context.Context, req *connect.Request[api.GetContactRequest]) (*connect.Response[api.GetContactResponse], error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	contact, err := s.ownedContact(ctx, userID, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}
	ledger, err := s.ledger(ctx, userID, contact.ID)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.GetContactResponse{
		Contact: models.ContactWithStats{Contact: *contact, Stats: ledger.Stats},
	}), nil
}

// UpdateContact edits a contact. Existing bills keep the snapshot taken when
// the contact was added to them.
func (s *ContactService) UpdateContact(ctx context.Context, req *connect.Request[api.UpdateContactRequest]) (*connect.Response[api.UpdateContactResponse], error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.ownedContact(ctx, userID, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}

	contact := contactFromInput(req.Msg.Contact)
	contact.ID = existing.ID
	contact.OwnerID = existing.OwnerID
	contact.LastActivityAt = existing.LastActivityAt
	contact.CreatedAt = existing.CreatedAt
	if problems := calculator.ValidateContact(&contact); len(problems) > 0 {
		return nil, validationError(problems)
	}

	if err := s.store.UpdateContact(ctx, &contact); err != nil {
		slog.Error("UpdateContact failed", "contact_id", contact.ID, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Contact updated", "contact_id", contact.ID)
	return connect.NewResponse(&api.UpdateContactResponse{Contact: &contact}), nil
}

// DeleteContact removes a contact from the caller's list.
func (s *ContactService) DeleteContact(ctx context.Context, req *connect.Request[api.DeleteContactRequest]) (*connect.Response[api.DeleteContactResponse], error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	contact, err := s.ownedContact(ctx, userID, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeleteContact(ctx, contact.ID); err != nil {
		slog.Error("DeleteContact failed", "contact_id", contact.ID, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Contact deleted", "contact_id", contact.ID)
	return connect.NewResponse(&api.DeleteContactResponse{}), nil
}

// ListContacts returns the caller's contacts with stats, filtered by balance
// and sorted. Defaults are filter "all" and sort "name".
func (s *ContactService) ListContacts(ctx context.Context, req *connect.Request[api.ListContactsRequest]) (*connect.Response[api.ListContactsResponse], error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	filter := calculator.BalanceFilter(req.Msg.Filter)
	switch filter {
	case "":
		filter = calculator.FilterAll
	case calculator.FilterAll, calculator.FilterOwesYou, calculator.FilterYouOwe, calculator.FilterSettled, calculator.FilterActive:
	default:
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown filter %q", req.Msg.Filter))
	}
	sortBy := calculator.ContactSort(req.Msg.SortBy)
	switch sortBy {
	case "":
		sortBy = calculator.SortByName
	case calculator.SortByName, calculator.SortByBalance, calculator.SortByActivity, calculator.SortByBillsCount, calculator.SortByRecent:
	default:
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown sort %q", req.Msg.SortBy))
	}

	contacts, err := s.store.ListContacts(ctx, userID)
	if err != nil {
		slog.Error("ListContacts failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	snapshot, err := s.store.SnapshotBills(ctx, userID)
	if err != nil {
		slog.Error("ListContacts failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	list := make([]models.ContactWithStats, len(contacts))
	for i, c := range contacts {
		list[i] = models.ContactWithStats{Contact: c, Stats: s.cache.Stats(snapshot, c.ID, userID)}
	}
	list = calculator.FilterContactsByBalance(list, filter)
	list = calculator.SortContacts(list, sortBy, s.opts.Locale)

	slog.Debug("Listed contacts", "user_id", userID, "count", len(list), "filter", filter, "sort", sortBy)
	return connect.NewResponse(&api.ListContactsResponse{Contacts: list}), nil
}

// GetContactStats returns a contact's balances with display strings.
func (s *ContactService) GetContactStats(ctx context.Context, req *connect.Request[api.GetContactStatsRequest]) (*connect.Response[api.GetContactStatsResponse], error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	contact, err := s.ownedContact(ctx, userID, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}
	ledger, err := s.ledger(ctx, userID, contact.ID)
	if err != nil {
		return nil, err
	}

	stats := ledger.Stats
	format := func(v float64) string { return calculator.FormatAmountIn(s.opts.Locale, v, s.opts.Currency) }
	return connect.NewResponse(&api.GetContactStatsResponse{
		Stats:               stats,
		FormattedNetBalance: format(stats.NetBalance),
		FormattedOwedToYou:  format(stats.BalanceOwedToYou),
		FormattedYouOwe:     format(stats.BalanceYouOwe),
	}), nil
}

// GetContactHistory returns one record per bill shared with a contact,
// newest first, optionally limited to one status.
func (s *ContactService) GetContactHistory(ctx context.Context, req *connect.Request[api.GetContactHistoryRequest]) (*connect.Response[api.GetContactHistoryResponse], error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	status := req.Msg.Status
	if status != "" && status != calculator.StatusAll && !models.BillStatus(status).Valid() {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown status %q", status))
	}

	contact, err := s.ownedContact(ctx, userID, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}
	ledger, err := s.ledger(ctx, userID, contact.ID)
	if err != nil {
		return nil, err
	}

	// Cached relationships are shared; build a new slice.
	rels := make([]models.BillRelationship, 0, len(ledger.Relationships))
	for _, r := range ledger.Relationships {
		if status != "" && status != calculator.StatusAll && string(r.BillStatus) != status {
			continue
		}
		rels = append(rels, r)
	}

	return connect.NewResponse(&api.GetContactHistoryResponse{Relationships: rels}), nil
}

// ExportContactHistory renders a contact's history as CSV.
func (s *ContactService) ExportContactHistory(ctx context.Context, req *connect.Request[api.ExportContactHistoryRequest]) (*connect.Response[api.ExportContactHistoryResponse], error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	contact, err := s.ownedContact(ctx, userID, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}
	ledger, err := s.ledger(ctx, userID, contact.ID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := export.WriteContactHistory(&buf, contact, ledger.Stats, ledger.Relationships, s.opts.Currency); err != nil {
		slog.Error("ExportContactHistory failed", "contact_id", contact.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Exported contact history", "contact_id", contact.ID, "bills", len(ledger.Relationships))
	return connect.NewResponse(&api.ExportContactHistoryResponse{
		Filename: export.Filename(contact),
		CSV:      buf.String(),
	}), nil
}
