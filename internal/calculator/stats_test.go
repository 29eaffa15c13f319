package calculator

import (
	"math"
	"testing"

	"github.com/abdoachhoubi/billsplitter/internal/models"
)

const (
	me      = "user-me"
	contact = "contact-c"
	other   = "contact-x"
)

func share(id string, amount float64) models.BillParticipant {
	return models.BillParticipant{
		User:        models.UserSnapshot{ID: id},
		Split:       models.Amount(amount),
		AmountToPay: amount,
	}
}

func bill(id string, status models.BillStatus, createdAt int64, owner models.BillParticipant, participants ...models.BillParticipant) models.Bill {
	total := owner.AmountToPay
	for _, p := range participants {
		total += p.AmountToPay
	}
	return models.Bill{
		ID:           id,
		Title:        "Bill " + id,
		TotalAmount:  total,
		SplitType:    models.SplitTypeAmount,
		Owner:        &owner,
		Participants: participants,
		Status:       status,
		CreatedAt:    createdAt,
	}
}

func TestCalculateContactStats_PendingAndPaid(t *testing.T) {
	bills := []models.Bill{
		// Contact owns, pending, you owe 40
		bill("b1", models.BillStatusPending, 100, share(contact, 60), share(me, 40)),
		// You own, paid, contact owed 25
		bill("b2", models.BillStatusPaid, 200, share(me, 25), share(contact, 25)),
	}

	stats := CalculateContactStats(bills, contact, me)

	if stats.BalanceYouOwe != 40 {
		t.Errorf("BalanceYouOwe = %v, want 40", stats.BalanceYouOwe)
	}
	if stats.BalanceOwedToYou != 0 {
		t.Errorf("BalanceOwedToYou = %v, want 0 (paid bills excluded)", stats.BalanceOwedToYou)
	}
	if stats.NetBalance != -40 {
		t.Errorf("NetBalance = %v, want -40", stats.NetBalance)
	}
	if stats.TotalBills != 2 {
		t.Errorf("TotalBills = %d, want 2", stats.TotalBills)
	}
	if stats.ActiveBills != 1 {
		t.Errorf("ActiveBills = %d, want 1", stats.ActiveBills)
	}
	if stats.TotalAmountInvolved != 65 {
		t.Errorf("TotalAmountInvolved = %v, want 65", stats.TotalAmountInvolved)
	}
	if stats.AverageBillAmount != 32.5 {
		t.Errorf("AverageBillAmount = %v, want 32.5", stats.AverageBillAmount)
	}
	if stats.LastBillDate != 200 {
		t.Errorf("LastBillDate = %v, want 200", stats.LastBillDate)
	}
}

func TestCalculateContactStats_ThirdPartyOwner(t *testing.T) {
	bills := []models.Bill{
		bill("b1", models.BillStatusPending, 10, share(other, 50), share(contact, 30), share(me, 20)),
	}

	stats := CalculateContactStats(bills, contact, me)

	// Shared portion counts towards involvement only
	if math.Abs(stats.TotalAmountInvolved-10) > 0.001 {
		t.Errorf("TotalAmountInvolved = %v, want 10", stats.TotalAmountInvolved)
	}
	if stats.BalanceOwedToYou != 0 || stats.BalanceYouOwe != 0 {
		t.Errorf("balances = %v/%v, want 0/0", stats.BalanceOwedToYou, stats.BalanceYouOwe)
	}
	if stats.ActiveBills != 1 || stats.TotalBills != 1 {
		t.Errorf("bills = %d active of %d, want 1 of 1", stats.ActiveBills, stats.TotalBills)
	}
}

func TestCalculateContactStats_NoBills(t *testing.T) {
	bills := []models.Bill{
		bill("b1", models.BillStatusPending, 10, share(me, 50), share(other, 50)),
	}

	stats := CalculateContactStats(bills, contact, me)

	if stats != (models.ContactStats{}) {
		t.Errorf("stats = %+v, want zero value", stats)
	}
}

func TestCalculateContactStats_OwedToYou(t *testing.T) {
	bills := []models.Bill{
		bill("b1", models.BillStatusPending, 10, share(me, 10), share(contact, 15), share(other, 5)),
		bill("b2", models.BillStatusPending, 20, share(me, 10), share(contact, 5)),
		bill("b3", models.BillStatusCancelled, 30, share(me, 10), share(contact, 100)),
	}

	stats := CalculateContactStats(bills, contact, me)

	if stats.BalanceOwedToYou != 20 {
		t.Errorf("BalanceOwedToYou = %v, want 20", stats.BalanceOwedToYou)
	}
	if stats.NetBalance != 20 {
		t.Errorf("NetBalance = %v, want 20", stats.NetBalance)
	}
	if stats.TotalAmountInvolved != 120 {
		t.Errorf("TotalAmountInvolved = %v, want 120", stats.TotalAmountInvolved)
	}
	if stats.ActiveBills != 2 {
		t.Errorf("ActiveBills = %d, want 2", stats.ActiveBills)
	}
}

func TestGetContactBillRelationships(t *testing.T) {
	bills := []models.Bill{
		bill("b1", models.BillStatusPending, 100, share(contact, 60), share(me, 40)),
		bill("b2", models.BillStatusPaid, 200, share(me, 25), share(contact, 25)),
		bill("b3", models.BillStatusPending, 300, share(other, 1), share(me, 2)),
		bill("b4", models.BillStatusPending, 400, share(contact, 9), share(other, 1)),
	}

	rels := GetContactBillRelationships(bills, contact, me)
	if len(rels) != 3 {
		t.Fatalf("got %d relationships, want 3", len(rels))
	}

	tests := []struct {
		billID        string
		kind          models.RelationshipKind
		amountOwed    float64
		amountTheyOwe float64
		isOwner       bool
		isParticipant bool
		status        models.BillStatus
		date          int64
	}{
		{"b1", models.RelationshipContactOwns, 40, 0, true, false, models.BillStatusPending, 100},
		{"b2", models.RelationshipYouOwn, 0, 25, false, true, models.BillStatusPaid, 200},
		{"b4", models.RelationshipContactOnly, 0, 0, true, false, models.BillStatusPending, 400},
	}

	for i, tt := range tests {
		r := rels[i]
		if r.BillID != tt.billID || r.Kind != tt.kind {
			t.Errorf("rels[%d] = %s/%s, want %s/%s", i, r.BillID, r.Kind, tt.billID, tt.kind)
		}
		if r.AmountOwed != tt.amountOwed || r.AmountTheyOwe != tt.amountTheyOwe {
			t.Errorf("%s amounts = %v/%v, want %v/%v", tt.billID, r.AmountOwed, r.AmountTheyOwe, tt.amountOwed, tt.amountTheyOwe)
		}
		if r.IsOwner != tt.isOwner || r.IsParticipant != tt.isParticipant {
			t.Errorf("%s owner/participant = %v/%v, want %v/%v", tt.billID, r.IsOwner, r.IsParticipant, tt.isOwner, tt.isParticipant)
		}
		if r.BillStatus != tt.status || r.BillDate != tt.date {
			t.Errorf("%s status/date = %s/%d, want %s/%d", tt.billID, r.BillStatus, r.BillDate, tt.status, tt.date)
		}
	}
}

func TestAnalyzeContact_StatsMatchRelationships(t *testing.T) {
	bills := []models.Bill{
		bill("b1", models.BillStatusPending, 100, share(contact, 60), share(me, 40)),
		bill("b2", models.BillStatusPending, 200, share(me, 25), share(contact, 25)),
	}

	ledger := AnalyzeContact(bills, contact, me)

	if ledger.Stats != CalculateContactStats(bills, contact, me) {
		t.Errorf("AnalyzeContact stats = %+v, differs from CalculateContactStats", ledger.Stats)
	}
	if len(ledger.Relationships) != ledger.Stats.TotalBills {
		t.Errorf("relationships = %d, TotalBills = %d", len(ledger.Relationships), ledger.Stats.TotalBills)
	}
}

func TestGetBillsWithContact(t *testing.T) {
	bills := []models.Bill{
		bill("b1", models.BillStatusPending, 1, share(contact, 1), share(me, 1)),
		bill("b2", models.BillStatusPending, 2, share(me, 1), share(other, 1)),
		bill("b3", models.BillStatusPaid, 3, share(other, 1), share(contact, 1)),
	}

	got := GetBillsWithContact(bills, contact)
	if len(got) != 2 || got[0].ID != "b1" || got[1].ID != "b3" {
		t.Errorf("GetBillsWithContact() = %v, want b1, b3", got)
	}
}
