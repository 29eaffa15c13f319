package models

// ContactStats is the derived summary of every bill shared with a contact,
// seen from the current user's side. It is never stored.
type ContactStats struct {
	TotalBills          int     `json:"totalBills"`
	ActiveBills         int     `json:"activeBills"`
	TotalAmountInvolved float64 `json:"totalAmountInvolved"`

	// BalanceOwedToYou sums what the contact owes on pending bills you own.
	BalanceOwedToYou float64 `json:"balanceOwedToYou"`

	// BalanceYouOwe sums what you owe on pending bills the contact owns.
	BalanceYouOwe float64 `json:"balanceYouOwe"`

	// NetBalance is BalanceOwedToYou - BalanceYouOwe.
	NetBalance float64 `json:"netBalance"`

	// LastBillDate is the latest bill CreatedAt, zero if there are no bills.
	LastBillDate int64 `json:"lastBillDate,omitempty"`

	AverageBillAmount float64 `json:"averageBillAmount"`
}

// RelationshipKind classifies how the current user and a contact meet on
// one bill.
type RelationshipKind string

const (
	// RelationshipContactOwns: the contact owns the bill and you participate.
	RelationshipContactOwns RelationshipKind = "contact_owns"
	// RelationshipYouOwn: you own the bill and the contact participates.
	RelationshipYouOwn RelationshipKind = "you_own"
	// RelationshipShared: a third party owns the bill and you both participate.
	RelationshipShared RelationshipKind = "shared"
	// RelationshipContactOnly: the contact is on the bill but you are not
	// on the other side of it.
	RelationshipContactOnly RelationshipKind = "contact_only"
)

// BillRelationship is one bill involving a contact, classified once and
// used for both the stats summary and the itemized history.
type BillRelationship struct {
	BillID    string           `json:"billId"`
	BillTitle string           `json:"billTitle"`
	Kind      RelationshipKind `json:"kind"`

	// AmountOwed is what you owe the contact on this bill.
	AmountOwed float64 `json:"amountOwed"`

	// AmountTheyOwe is what the contact owes you on this bill.
	AmountTheyOwe float64 `json:"amountTheyOwe"`

	// SharedAmount is the approximate shared portion when a third party
	// owns the bill: abs(contact's amount - your amount).
	SharedAmount float64 `json:"sharedAmount,omitempty"`

	// IsOwner reports whether the contact owns the bill.
	IsOwner bool `json:"isOwner"`

	// IsParticipant reports whether the contact is a (non-owner) participant.
	IsParticipant bool `json:"isParticipant"`

	BillStatus  BillStatus `json:"billStatus"`
	BillDate    int64      `json:"billDate"`
	TotalAmount float64    `json:"totalAmount"`
}

// Involved is the amount this bill adds to ContactStats.TotalAmountInvolved.
func (r BillRelationship) Involved() float64 {
	switch r.Kind {
	case RelationshipContactOwns:
		return r.AmountOwed
	case RelationshipYouOwn:
		return r.AmountTheyOwe
	case RelationshipShared:
		return r.SharedAmount
	}
	return 0
}

// ContactWithStats pairs a contact with its derived stats for list views.
type ContactWithStats struct {
	Contact Contact      `json:"contact"`
	Stats   ContactStats `json:"stats"`
}
