package calculator

import (
	"math"
	"testing"

	"github.com/abdoachhoubi/billsplitter/internal/models"
)

func TestCalculateLedger(t *testing.T) {
	bills := []models.Bill{
		// Alice paid 90, everyone owes 30
		bill("b1", models.BillStatusPending, 1, share("alice", 30), share("bob", 30), share("carol", 30)),
		// Bob paid 40, Alice owes 20
		bill("b2", models.BillStatusPending, 2, share("bob", 20), share("alice", 20)),
		// Paid bills are ignored
		bill("b3", models.BillStatusPaid, 3, share("carol", 500), share("alice", 500)),
	}

	balances, edges := CalculateLedger(bills)

	want := map[string]float64{
		"alice": 90 - 50, // paid 90, owes 30 + 20
		"bob":   40 - 50, // paid 40, owes 30 + 20
		"carol": -30,
	}
	if len(balances) != len(want) {
		t.Fatalf("got %d balances, want %d", len(balances), len(want))
	}
	for _, b := range balances {
		if math.Abs(b.NetBalance-want[b.Person.ID]) > 0.01 {
			t.Errorf("%s net = %v, want %v", b.Person.ID, b.NetBalance, want[b.Person.ID])
		}
	}
	if balances[0].Person.ID != "alice" || balances[2].Person.ID != "carol" {
		t.Errorf("balances not sorted by ID: %v", balances)
	}

	// carol (30) and bob (10) both pay alice (40)
	if len(edges) != 2 {
		t.Fatalf("got %d edges, want 2: %+v", len(edges), edges)
	}
	if edges[0].From.ID != "carol" || edges[0].To.ID != "alice" || math.Abs(edges[0].Amount-30) > 0.01 {
		t.Errorf("edge 0 = %+v, want carol->alice 30", edges[0])
	}
	if edges[1].From.ID != "bob" || edges[1].To.ID != "alice" || math.Abs(edges[1].Amount-10) > 0.01 {
		t.Errorf("edge 1 = %+v, want bob->alice 10", edges[1])
	}
}

func TestCalculateLedger_SettledBillsProduceNoEdges(t *testing.T) {
	bills := []models.Bill{
		bill("b1", models.BillStatusCancelled, 1, share("alice", 10), share("bob", 10)),
	}

	balances, edges := CalculateLedger(bills)
	if len(balances) != 0 || len(edges) != 0 {
		t.Errorf("got %d balances and %d edges, want none", len(balances), len(edges))
	}
}
