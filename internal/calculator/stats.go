package calculator

import "github.com/abdoachhoubi/billsplitter/internal/models"

// ContactLedger is everything derived about one contact from a bill
// collection: the summary and the itemized records it was built from.
type ContactLedger struct {
	Stats         models.ContactStats
	Relationships []models.BillRelationship
}

// AnalyzeContact classifies the bills once and summarizes the result.
func AnalyzeContact(bills []models.Bill, contactID, userID string) ContactLedger {
	rels := ClassifyBills(bills, contactID, userID)
	return ContactLedger{
		Stats:         SummarizeRelationships(rels),
		Relationships: rels,
	}
}

// CalculateContactStats computes the balance summary between userID and
// contactID over every bill that involves the contact.
//
// Balances only include pending bills; totals and counts include every
// status. This is O(bills x participants) and recomputed on each call; use
// StatsCache to memoize.
func CalculateContactStats(bills []models.Bill, contactID, userID string) models.ContactStats {
	return SummarizeRelationships(ClassifyBills(bills, contactID, userID))
}

// SummarizeRelationships rolls classified bills up into ContactStats.
func SummarizeRelationships(rels []models.BillRelationship) models.ContactStats {
	var stats models.ContactStats

	for _, r := range rels {
		stats.TotalBills++
		stats.TotalAmountInvolved += r.Involved()

		if r.BillStatus == models.BillStatusPending {
			stats.ActiveBills++
			stats.BalanceYouOwe += r.AmountOwed
			stats.BalanceOwedToYou += r.AmountTheyOwe
		}

		if r.BillDate > stats.LastBillDate {
			stats.LastBillDate = r.BillDate
		}
	}

	stats.NetBalance = stats.BalanceOwedToYou - stats.BalanceYouOwe
	if stats.TotalBills > 0 {
		stats.AverageBillAmount = stats.TotalAmountInvolved / float64(stats.TotalBills)
	}

	return stats
}
