package models

// Contact is a person the user splits bills with.
// Contacts belong to the user that created them.
type Contact struct {
	// ID is the unique identifier for the contact (UUID format).
	// Bills reference contacts through BillParticipant.User.ID.
	ID string `json:"id"`

	// OwnerID is the user who keeps this contact.
	OwnerID string `json:"ownerId"`

	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage,omitempty"`

	// LastActivityAt is the Unix timestamp of the last bill created or
	// edited with this contact. Zero if there has been none.
	LastActivityAt int64 `json:"lastActivityAt,omitempty"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// Snapshot returns the denormalized form stored on bills.
func (c *Contact) Snapshot() UserSnapshot {
	return UserSnapshot{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Avatar:    c.ProfileImage,
	}
}
