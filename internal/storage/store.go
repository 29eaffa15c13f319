// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/abdoachhoubi/billsplitter/internal/models"
)

// ErrNotFound is returned (wrapped) when a record does not exist.
var ErrNotFound = errors.New("not found")

// BillStore persists bills. Every mutation bumps the bills version so
// derived values can be cached per version.
type BillStore interface {
	// CreateBill persists a new bill. ID, CreatedAt and UpdatedAt are
	// filled in when empty.
	CreateBill(ctx context.Context, bill *models.Bill) error

	// GetBill retrieves a bill by its ID.
	GetBill(ctx context.Context, billID string) (*models.Bill, error)

	// UpdateBill replaces an existing bill and its participants.
	UpdateBill(ctx context.Context, bill *models.Bill) error

	// UpdateBillStatus changes only the status of a bill.
	UpdateBillStatus(ctx context.Context, billID string, status models.BillStatus) error

	// DeleteBill removes a bill and its participants.
	DeleteBill(ctx context.Context, billID string) error

	// SnapshotBills returns every bill involving personID (as owner or
	// participant) together with the bills version they were read at.
	SnapshotBills(ctx context.Context, personID string) (*models.BillSnapshot, error)

	// ListBillsByStatus returns every bill with the given status.
	ListBillsByStatus(ctx context.Context, status models.BillStatus) ([]models.Bill, error)
}

// ContactStore persists contacts.
type ContactStore interface {
	CreateContact(ctx context.Context, contact *models.Contact) error
	GetContact(ctx context.Context, contactID string) (*models.Contact, error)
	UpdateContact(ctx context.Context, contact *models.Contact) error
	DeleteContact(ctx context.Context, contactID string) error

	// ListContacts returns the contacts kept by ownerID, ordered by name.
	ListContacts(ctx context.Context, ownerID string) ([]models.Contact, error)

	// GetContactsByIDs returns the requested contacts kept by ownerID,
	// keyed by ID. Unknown IDs are omitted.
	GetContactsByIDs(ctx context.Context, ownerID string, ids []string) (map[string]*models.Contact, error)
}

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Store defines the interface for every storage operation.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	BillStore
	ContactStore
	UserStore

	// Close releases any resources held by the store.
	Close() error
}
