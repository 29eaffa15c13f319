package calculator

import (
	"slices"
	"testing"

	"github.com/abdoachhoubi/billsplitter/internal/models"
)

func percentageBill(owner float64, others ...float64) *models.Bill {
	bill := &models.Bill{
		Title:       "Dinner",
		TotalAmount: 120,
		SplitType:   models.SplitTypePercentage,
		Owner:       &models.BillParticipant{User: models.UserSnapshot{ID: "alice"}, Split: models.Percentage(owner)},
	}
	for i, v := range others {
		bill.Participants = append(bill.Participants, participant(string(rune('b'+i)), models.Percentage(v)))
	}
	return bill
}

func amountBill(total, owner float64, others ...float64) *models.Bill {
	bill := &models.Bill{
		Title:       "Taxi",
		TotalAmount: total,
		SplitType:   models.SplitTypeAmount,
		Owner:       &models.BillParticipant{User: models.UserSnapshot{ID: "alice"}, Split: models.Amount(owner)},
	}
	for i, v := range others {
		bill.Participants = append(bill.Participants, participant(string(rune('b'+i)), models.Amount(v)))
	}
	return bill
}

func TestValidateBill(t *testing.T) {
	tests := []struct {
		name    string
		bill    *models.Bill
		want    []string
		wantNot []string
	}{
		{
			name: "valid percentage bill",
			bill: percentageBill(40, 30, 30),
		},
		{
			name: "percentages within tolerance pass",
			bill: percentageBill(39.995, 30, 30),
		},
		{
			name: "percentages summing to 98 fail",
			bill: percentageBill(38, 30, 30),
			want: []string{MsgPercentageSum},
		},
		{
			name: "percentages summing above 100 fail",
			bill: percentageBill(50, 30, 30),
			want: []string{MsgPercentageSum},
		},
		{
			name: "amounts equal to total pass",
			bill: amountBill(100, 70, 30),
		},
		{
			name: "under-allocated amounts pass",
			bill: amountBill(100, 20, 30),
		},
		{
			name: "amounts exceeding total fail",
			bill: amountBill(100, 70.01, 30),
			want: []string{MsgAmountSumExceeds},
		},
		{
			name: "owner alone at 100 percent still needs participants",
			bill: percentageBill(100),
			want: []string{MsgParticipantsRequired},
			wantNot: []string{MsgPercentageSum},
		},
		{
			name: "owner alone below 100 percent reports both",
			bill: percentageBill(60),
			want: []string{MsgParticipantsRequired, MsgPercentageSum},
		},
		{
			name: "every failing rule is reported",
			bill: &models.Bill{Title: "   ", TotalAmount: 0},
			want: []string{
				MsgTitleRequired,
				MsgTotalAmountInvalid,
				MsgSplitTypeRequired,
				MsgOwnerRequired,
				MsgParticipantsRequired,
			},
		},
		{
			name: "unknown split type",
			bill: &models.Bill{Title: "x", TotalAmount: 1, SplitType: "shares"},
			want: []string{MsgSplitTypeInvalid},
		},
		{
			name: "split kind must match bill type",
			bill: func() *models.Bill {
				b := percentageBill(50, 50)
				b.Participants[0].Split = models.Amount(50)
				return b
			}(),
			want: []string{MsgSplitKindMismatch},
		},
		{
			name: "negative values are rejected",
			bill: percentageBill(110, -10),
			want: []string{MsgNegativeSplit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateBill(tt.bill)
			if len(tt.want) == 0 && len(got) != 0 {
				t.Fatalf("ValidateBill() = %v, want no errors", got)
			}
			for _, w := range tt.want {
				if !slices.Contains(got, w) {
					t.Errorf("ValidateBill() = %v, missing %q", got, w)
				}
			}
			for _, w := range tt.wantNot {
				if slices.Contains(got, w) {
					t.Errorf("ValidateBill() = %v, unexpected %q", got, w)
				}
			}
		})
	}
}

func TestValidateBill_FinalizedPercentageBillSumsTo100(t *testing.T) {
	bill := percentageBill(0, 33.33, 33.33)
	bill.Owner.Split = models.SplitValue{}
	FinalizeSplits(bill)

	if errs := ValidateBill(bill); len(errs) != 0 {
		t.Fatalf("ValidateBill() = %v, want no errors", errs)
	}

	sum := bill.Owner.AmountToPay
	for _, p := range bill.Participants {
		sum += p.AmountToPay
	}
	if diff := sum - bill.TotalAmount; diff > Tolerance || diff < -Tolerance {
		t.Errorf("amounts sum to %v, want %v", sum, bill.TotalAmount)
	}
}

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name    string
		contact models.Contact
		want    []string
	}{
		{"valid", models.Contact{FirstName: "Bob", Email: "bob@example.com", Phone: "+1 (555) 010-2030"}, nil},
		{"only first name", models.Contact{FirstName: "Bob"}, nil},
		{"missing first name", models.Contact{LastName: "Smith"}, []string{MsgFirstNameRequired}},
		{"bad email", models.Contact{FirstName: "Bob", Email: "bob@"}, []string{MsgEmailInvalid}},
		{"bad phone", models.Contact{FirstName: "Bob", Phone: "call me"}, []string{MsgPhoneInvalid}},
		{"short phone", models.Contact{FirstName: "Bob", Phone: "12345"}, []string{MsgPhoneInvalid}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateContact(&tt.contact)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ValidateContact() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name string
		user models.User
		want []string
	}{
		{"valid", models.User{FirstName: "Alice", LastName: "Doe", Email: "alice@example.com"}, nil},
		{"missing everything", models.User{}, []string{MsgFirstNameRequired, MsgLastNameRequired, MsgEmailRequired}},
		{"bad email", models.User{FirstName: "Alice", LastName: "Doe", Email: "Alice <alice@example.com>"}, []string{MsgEmailInvalid}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateUser(&tt.user)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ValidateUser() = %v, want %v", got, tt.want)
			}
		})
	}
}
