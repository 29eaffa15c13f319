package calculator

import (
	"math"

	"github.com/abdoachhoubi/billsplitter/internal/models"
)

// GetBillsWithContact returns the bills where contactID is the owner or a
// participant, in their original order.
func GetBillsWithContact(bills []models.Bill, contactID string) []models.Bill {
	var out []models.Bill
	for i := range bills {
		if bills[i].Involves(contactID) {
			out = append(out, bills[i])
		}
	}
	return out
}

// ClassifyBills walks the bills once and describes how userID and contactID
// meet on each bill that involves the contact. Both the stats summary and
// the itemized history are derived from this result.
//
// When a third party owns the bill and both of you participate, the shared
// portion is approximated as abs(contact's amount - your amount) and does
// not count towards either balance. Multi-party debt chains are not
// modelled.
func ClassifyBills(bills []models.Bill, contactID, userID string) []models.BillRelationship {
	var rels []models.BillRelationship
	for i := range bills {
		bill := &bills[i]
		if !bill.Involves(contactID) {
			continue
		}
		rels = append(rels, classify(bill, contactID, userID))
	}
	return rels
}

func classify(bill *models.Bill, contactID, userID string) models.BillRelationship {
	contact := bill.Participant(contactID)
	you := bill.Participant(userID)

	rel := models.BillRelationship{
		BillID:        bill.ID,
		BillTitle:     bill.Title,
		Kind:          models.RelationshipContactOnly,
		IsOwner:       bill.IsOwner(contactID),
		IsParticipant: contact != nil,
		BillStatus:    bill.Status,
		BillDate:      bill.CreatedAt,
		TotalAmount:   bill.TotalAmount,
	}

	switch {
	case rel.IsOwner:
		if you != nil {
			rel.Kind = models.RelationshipContactOwns
			rel.AmountOwed = you.AmountToPay
		}
	case bill.IsOwner(userID):
		rel.Kind = models.RelationshipYouOwn
		rel.AmountTheyOwe = contact.AmountToPay
	case you != nil:
		rel.Kind = models.RelationshipShared
		rel.SharedAmount = math.Abs(contact.AmountToPay - you.AmountToPay)
	}

	return rel
}

// GetContactBillRelationships returns one record per bill involving the
// contact, for itemized history views.
func GetContactBillRelationships(bills []models.Bill, contactID, userID string) []models.BillRelationship {
	return ClassifyBills(bills, contactID, userID)
}
