// Package api defines the request and response messages of the
// billsplitter.v1 Connect services. Messages are plain Go structs encoded as
// JSON by apiconnect.Codec.
package api

import (
	"github.com/abdoachhoubi/billsplitter/internal/calculator"
	"github.com/abdoachhoubi/billsplitter/internal/models"
)

// ===== AuthService =====

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar,omitempty"`
}

type RegisterResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User *models.User `json:"user"`
}

// ===== BillService =====

// ParticipantInput adds one of the caller's contacts to a bill.
type ParticipantInput struct {
	ContactID string            `json:"contactId"`
	Split     models.SplitValue `json:"split"`
}

// BillInput is the editable part of a bill. When OwnerSplit is nil the
// owner's share is whatever the participants leave.
//
// The caller owns the bill unless OwnerContactID names the contact who
// paid. In that case the caller joins as a participant with YourSplit, and
// OwnerSplit is the paying contact's share.
type BillInput struct {
	Title          string             `json:"title"`
	Description    string             `json:"description,omitempty"`
	CategoryID     string             `json:"categoryId,omitempty"`
	TotalAmount    float64            `json:"totalAmount"`
	SplitType      models.SplitType   `json:"splitType"`
	OwnerContactID string             `json:"ownerContactId,omitempty"`
	OwnerSplit     *models.SplitValue `json:"ownerSplit,omitempty"`
	YourSplit      *models.SplitValue `json:"yourSplit,omitempty"`
	Participants   []ParticipantInput `json:"participants"`
}

type PreviewSplitRequest struct {
	Bill BillInput `json:"bill"`
}

// PreviewSplitResponse carries the computed bill even when it is invalid,
// so a form can show amounts and errors together.
type PreviewSplitResponse struct {
	Bill   *models.Bill `json:"bill"`
	Valid  bool         `json:"valid"`
	Errors []string     `json:"errors,omitempty"`
}

type CreateBillRequest struct {
	Bill BillInput `json:"bill"`
}

type CreateBillResponse struct {
	Bill *models.Bill `json:"bill"`
}

type GetBillRequest struct {
	BillID string `json:"billId"`
}

type GetBillResponse struct {
	Bill *models.Bill `json:"bill"`
}

type UpdateBillRequest struct {
	BillID string    `json:"billId"`
	Bill   BillInput `json:"bill"`
}

type UpdateBillResponse struct {
	Bill *models.Bill `json:"bill"`
}

type UpdateBillStatusRequest struct {
	BillID string            `json:"billId"`
	Status models.BillStatus `json:"status"`
}

type UpdateBillStatusResponse struct {
	Bill *models.Bill `json:"bill"`
}

type DeleteBillRequest struct {
	BillID string `json:"billId"`
}

type DeleteBillResponse struct{}

// ListBillsRequest filters by status ("all" or empty for every status) and
// a case-insensitive search over title and description.
type ListBillsRequest struct {
	Status string `json:"status,omitempty"`
	Search string `json:"search,omitempty"`
	SortBy string `json:"sortBy,omitempty"`
}

type ListBillsResponse struct {
	Bills   []models.Bill `json:"bills"`
	Version int64         `json:"version"`
}

type SuggestSettlementsRequest struct{}

type SuggestSettlementsResponse struct {
	Balances  []calculator.MemberBalance `json:"balances"`
	Transfers []calculator.DebtEdge      `json:"transfers"`
}

// ===== ContactService =====

type ContactInput struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

type CreateContactRequest struct {
	Contact ContactInput `json:"contact"`
}

type CreateContactResponse struct {
	Contact *models.Contact `json:"contact"`
}

type GetContactRequest struct {
	ContactID string `json:"contactId"`
}

type GetContactResponse struct {
	Contact models.ContactWithStats `json:"contact"`
}

type UpdateContactRequest struct {
	ContactID string       `json:"contactId"`
	Contact   ContactInput `json:"contact"`
}

type UpdateContactResponse struct {
	Contact *models.Contact `json:"contact"`
}

type DeleteContactRequest struct {
	ContactID string `json:"contactId"`
}

type DeleteContactResponse struct{}

type ListContactsRequest struct {
	Filter string `json:"filter,omitempty"`
	SortBy string `json:"sortBy,omitempty"`
}

type ListContactsResponse struct {
	Contacts []models.ContactWithStats `json:"contacts"`
}

type GetContactStatsRequest struct {
	ContactID string `json:"contactId"`
}

// GetContactStatsResponse adds display strings in the server's currency and
// locale to the raw stats.
type GetContactStatsResponse struct {
	Stats               models.ContactStats `json:"stats"`
	FormattedNetBalance string              `json:"formattedNetBalance"`
	FormattedOwedToYou  string              `json:"formattedOwedToYou"`
	FormattedYouOwe     string              `json:"formattedYouOwe"`
}

type GetContactHistoryRequest struct {
	ContactID string `json:"contactId"`
	Status    string `json:"status,omitempty"`
}

type GetContactHistoryResponse struct {
	Relationships []models.BillRelationship `json:"relationships"`
}

type ExportContactHistoryRequest struct {
	ContactID string `json:"contactId"`
}

// ExportContactHistoryResponse carries a CSV document.
type ExportContactHistoryResponse struct {
	Filename string `json:"filename"`
	CSV      string `json:"csv"`
}
