package models

// SplitType tells how a bill's cost is divided.
type SplitType string

const (
	// SplitTypePercentage divides the total by percentage shares (0-100).
	SplitTypePercentage SplitType = "percentage"
	// SplitTypeAmount divides the total by fixed currency amounts.
	SplitTypeAmount SplitType = "amount"
)

// Valid reports whether t is a known split type.
func (t SplitType) Valid() bool {
	return t == SplitTypePercentage || t == SplitTypeAmount
}

// BillStatus is the lifecycle state of a bill.
type BillStatus string

const (
	BillStatusPending   BillStatus = "pending"
	BillStatusPaid      BillStatus = "paid"
	BillStatusCancelled BillStatus = "cancelled"
)

// Valid reports whether s is a known bill status.
func (s BillStatus) Valid() bool {
	switch s {
	case BillStatusPending, BillStatusPaid, BillStatusCancelled:
		return true
	}
	return false
}

// SplitValue is the raw split input for one person.
// Kind says how Value is interpreted: a percentage of the total or a
// currency amount. Build values with Percentage or Amount.
type SplitValue struct {
	Kind  SplitType `json:"kind"`
	Value float64   `json:"value"`
}

// Percentage returns a split value of v percent.
func Percentage(v float64) SplitValue {
	return SplitValue{Kind: SplitTypePercentage, Value: v}
}

// Amount returns a split value of a fixed currency amount.
func Amount(v float64) SplitValue {
	return SplitValue{Kind: SplitTypeAmount, Value: v}
}

// IsSet reports whether the split value carries a kind.
func (s SplitValue) IsSet() bool {
	return s.Kind != ""
}

// UserSnapshot is a denormalized copy of a person taken when they were
// added to a bill. Later edits to the contact or user do not change it.
type UserSnapshot struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar,omitempty"`
}

// FullName joins first and last name.
func (u UserSnapshot) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// BillParticipant is one person's share of a bill.
type BillParticipant struct {
	// User identifies the person. For contacts, User.ID is the contact ID.
	User UserSnapshot `json:"user"`

	// Split is the raw input value.
	Split SplitValue `json:"split"`

	// AmountToPay is always a currency amount, derived from Split.
	AmountToPay float64 `json:"amountToPay"`
}

// Bill represents an expense split between its owner and participants.
//
// Once finalized, Owner.AmountToPay plus every participant's AmountToPay
// equals TotalAmount within 0.01. That holds by construction when the bill
// is created and is not re-checked afterwards.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string `json:"id"`

	// Title is the human-readable name for the bill.
	Title string `json:"title"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`

	// CategoryID optionally groups bills ("food", "rent", ...).
	CategoryID string `json:"categoryId,omitempty"`

	// TotalAmount is the full amount being split. Must be positive.
	TotalAmount float64 `json:"totalAmount"`

	// SplitType is how the total is divided.
	SplitType SplitType `json:"splitType"`

	// Owner is the bill's creator, a special participant whose share is
	// usually whatever remains after the others.
	Owner *BillParticipant `json:"owner,omitempty"`

	// Participants excludes the owner. Order is preserved.
	Participants []BillParticipant `json:"participants"`

	// Status is pending until the bill is paid or cancelled.
	Status BillStatus `json:"status"`

	// CreatedBy is the user ID that created the record.
	CreatedBy string `json:"createdBy,omitempty"`

	// CreatedAt is the Unix timestamp when the bill was created.
	CreatedAt int64 `json:"createdAt"`

	// UpdatedAt is the Unix timestamp of the last modification.
	UpdatedAt int64 `json:"updatedAt"`
}

// Involves reports whether id is the owner or one of the participants.
func (b *Bill) Involves(id string) bool {
	if b.Owner != nil && b.Owner.User.ID == id {
		return true
	}
	return b.Participant(id) != nil
}

// Participant returns the participant with the given ID, or nil.
// The owner is not considered.
func (b *Bill) Participant(id string) *BillParticipant {
	for i := range b.Participants {
		if b.Participants[i].User.ID == id {
			return &b.Participants[i]
		}
	}
	return nil
}

// IsOwner reports whether id owns the bill.
func (b *Bill) IsOwner(id string) bool {
	return b.Owner != nil && b.Owner.User.ID == id
}

// CanEdit reports whether id may change or delete the bill: the user who
// recorded it, or its owner.
func (b *Bill) CanEdit(id string) bool {
	return (b.CreatedBy != "" && b.CreatedBy == id) || b.IsOwner(id)
}

// BillSnapshot is a versioned, read-only view of a bill collection.
// Version changes whenever any bill is created, edited or deleted, so it
// can be used as a cache key.
type BillSnapshot struct {
	Version int64
	Bills   []Bill
}
