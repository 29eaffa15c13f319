package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abdoachhoubi/billsplitter/internal/models"
)

const contactColumns = "id, owner_id, first_name, last_name, phone, email, profile_image, last_activity_at, created_at, updated_at"

type scanner interface {
	Scan(dest ...any) error
}

func scanContact(row scanner) (*models.Contact, error) {
	c := &models.Contact{}
	err := row.Scan(&c.ID, &c.OwnerID, &c.FirstName, &c.LastName, &c.Phone, &c.Email,
		&c.ProfileImage, &c.LastActivityAt, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// CreateContact persists a new contact to the database.
func (s *SQLiteStore) CreateContact(ctx context.Context, contact *models.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if contact.CreatedAt == 0 {
		contact.CreatedAt = now
	}
	contact.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO contacts ("+contactColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		contact.ID, contact.OwnerID, contact.FirstName, contact.LastName, contact.Phone, contact.Email,
		contact.ProfileImage, contact.LastActivityAt, contact.CreatedAt, contact.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}

	return nil
}

// GetContact retrieves a contact by ID.
func (s *SQLiteStore) GetContact(ctx context.Context, contactID string) (*models.Contact, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+contactColumns+" FROM contacts WHERE id = ?", contactID)
	contact, err := scanContact(row)
	if isNoRows(err) {
		return nil, notFound("contact", contactID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return contact, nil
}

// UpdateContact saves the editable fields of a contact.
// OwnerID, CreatedAt and LastActivityAt are not changed.
func (s *SQLiteStore) UpdateContact(ctx context.Context, contact *models.Contact) error {
	contact.UpdatedAt = time.Now().Unix()

	result, err := s.db.ExecContext(ctx,
		`UPDATE contacts SET first_name = ?, last_name = ?, phone = ?, email = ?, profile_image = ?, updated_at = ?
		 WHERE id = ?`,
		contact.FirstName, contact.LastName, contact.Phone, contact.Email, contact.ProfileImage,
		contact.UpdatedAt, contact.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	return expectRow(result, "contact", contact.ID)
}

// DeleteContact removes a contact by ID. Bills keep their snapshot of the
// contact.
func (s *SQLiteStore) DeleteContact(ctx context.Context, contactID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM contacts WHERE id = ?", contactID)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return expectRow(result, "contact", contactID)
}

// ListContacts returns every contact kept by ownerID, ordered by name.
func (s *SQLiteStore) ListContacts(ctx context.Context, ownerID string) ([]models.Contact, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+contactColumns+" FROM contacts WHERE owner_id = ? ORDER BY first_name, last_name, id",
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, *contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}

	return contacts, nil
}

// GetContactsByIDs retrieves multiple contacts kept by ownerID.
// Returns a map of contact ID to Contact; unknown IDs are omitted.
func (s *SQLiteStore) GetContactsByIDs(ctx context.Context, ownerID string, ids []string) (map[string]*models.Contact, error) {
	contacts := make(map[string]*models.Contact)
	if len(ids) == 0 {
		return contacts, nil
	}

	args := make([]any, 0, len(ids)+1)
	args = append(args, ownerID)
	for _, id := range ids {
		args = append(args, id)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+contactColumns+" FROM contacts WHERE owner_id = ? AND id IN ("+placeholders(len(ids))+")",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get contacts by IDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts[contact.ID] = contact
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contacts: %w", err)
	}

	return contacts, nil
}
