package calculator

import (
	"sort"

	"github.com/abdoachhoubi/billsplitter/internal/models"
)

// MemberBalance is one person's position across a set of bills.
type MemberBalance struct {
	Person     models.UserSnapshot `json:"person"`
	NetBalance float64             `json:"netBalance"` // Positive = owed money, Negative = owes money
	TotalPaid  float64             `json:"totalPaid"`  // Total amount paid up front as bill owner
	TotalOwed  float64             `json:"totalOwed"`  // Total share of the bills
}

// DebtEdge is a suggested transfer from one person to another.
type DebtEdge struct {
	From   models.UserSnapshot `json:"from"`   // Person who owes
	To     models.UserSnapshot `json:"to"`     // Person who is owed
	Amount float64             `json:"amount"` // Amount to transfer
}

// CalculateLedger computes balances across pending bills and suggests the
// transfers that settle them.
//
// Algorithm:
//   - For each pending bill: the owner paid the total, and every entity
//     (owner included) owes its AmountToPay
//   - net_balance = total_paid - total_owed
//   - Transfers: greedy matching of the largest debtor with the largest
//     creditor until everyone is within Tolerance of zero
//
// Paid and cancelled bills are ignored. Balances are sorted by person ID.
func CalculateLedger(bills []models.Bill) ([]MemberBalance, []DebtEdge) {
	balances := make(map[string]*MemberBalance)

	member := func(p models.UserSnapshot) *MemberBalance {
		b, ok := balances[p.ID]
		if !ok {
			b = &MemberBalance{Person: p}
			balances[p.ID] = b
		}
		return b
	}

	for i := range bills {
		bill := &bills[i]
		// Skip settled bills and bills without owner (no one to pay back)
		if bill.Status != models.BillStatusPending || bill.Owner == nil {
			continue
		}

		// Owner paid the full amount and owes their own share
		owner := member(bill.Owner.User)
		owner.TotalPaid += bill.TotalAmount
		owner.TotalOwed += bill.Owner.AmountToPay

		// Each participant owes their share
		for _, p := range bill.Participants {
			member(p.User).TotalOwed += p.AmountToPay
		}
	}

	memberBalances := make([]MemberBalance, 0, len(balances))
	for _, bal := range balances {
		bal.NetBalance = bal.TotalPaid - bal.TotalOwed
		memberBalances = append(memberBalances, *bal)
	}
	sort.Slice(memberBalances, func(i, j int) bool {
		return memberBalances[i].Person.ID < memberBalances[j].Person.ID
	})

	return memberBalances, simplifyDebts(memberBalances)
}

// simplifyDebts matches debtors with creditors to minimize transfers.
func simplifyDebts(balances []MemberBalance) []DebtEdge {
	type position struct {
		person models.UserSnapshot
		amount float64 // always positive
	}

	var creditors, debtors []position
	for _, bal := range balances {
		switch {
		case bal.NetBalance > Tolerance:
			creditors = append(creditors, position{bal.Person, bal.NetBalance})
		case bal.NetBalance < -Tolerance:
			debtors = append(debtors, position{bal.Person, -bal.NetBalance})
		}
	}

	// Largest first; ID breaks ties so the result is deterministic
	byAmount := func(list []position) {
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].amount != list[j].amount {
				return list[i].amount > list[j].amount
			}
			return list[i].person.ID < list[j].person.ID
		})
	}
	byAmount(creditors)
	byAmount(debtors)

	var edges []DebtEdge
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor, creditor := &debtors[i], &creditors[j]

		// Amount to settle is minimum of what debtor owes and creditor is owed
		amount := debtor.amount
		if creditor.amount < amount {
			amount = creditor.amount
		}

		if amount > Tolerance { // Avoid floating point noise
			edges = append(edges, DebtEdge{From: debtor.person, To: creditor.person, Amount: amount})
		}

		debtor.amount -= amount
		creditor.amount -= amount

		// Move to next debtor/creditor if fully settled
		if debtor.amount < Tolerance {
			i++
		}
		if creditor.amount < Tolerance {
			j++
		}
	}

	return edges
}
