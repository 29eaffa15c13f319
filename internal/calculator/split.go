package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/abdoachhoubi/billsplitter/internal/models"
)

// Tolerance is the largest difference treated as equal when comparing
// currency amounts or percentage sums.
const Tolerance = 0.01

// AmountToPay converts a split value into the currency amount it stands for.
// Percentages are taken of total; amounts are returned as is.
func AmountToPay(split models.SplitValue, total float64) float64 {
	if split.Kind == models.SplitTypePercentage {
		return (split.Value / 100) * total
	}
	return split.Value
}

// CalculateAmountsToPay fills in AmountToPay for every participant and the
// owner based on their split values.
//
// It never rejects input: negative values or percentages above 100 are
// converted like any other and left for ValidateBill to report. The inputs
// are not modified; updated copies are returned.
func CalculateAmountsToPay(participants []models.BillParticipant, owner models.BillParticipant, total float64) ([]models.BillParticipant, models.BillParticipant) {
	updated := make([]models.BillParticipant, len(participants))
	for i, p := range participants {
		p.AmountToPay = AmountToPay(p.Split, total)
		updated[i] = p
	}
	owner.AmountToPay = AmountToPay(owner.Split, total)
	return updated, owner
}

// OwnerRemainder returns the owner's split when it was not entered by hand:
// whatever the participants leave, never below zero.
//
//	percentage: max(0, 100 - sum(participant percentages))
//	amount:     max(0, total - sum(participant amounts))
func OwnerRemainder(splitType models.SplitType, total float64, participants []models.BillParticipant) models.SplitValue {
	var whole decimal.Decimal
	switch splitType {
	case models.SplitTypePercentage:
		whole = decimal.NewFromInt(100)
	default:
		whole = decimal.NewFromFloat(total)
	}

	rest := whole.Sub(sumSplits(participants))
	if rest.IsNegative() {
		rest = decimal.Zero
	}

	value := rest.InexactFloat64()
	if splitType == models.SplitTypePercentage {
		return models.Percentage(value)
	}
	return models.Amount(value)
}

// FinalizeSplits prepares a bill's shares for saving: the owner's split is
// filled with OwnerRemainder when unset, then every AmountToPay is computed.
func FinalizeSplits(bill *models.Bill) {
	if bill.Owner == nil {
		return
	}
	owner := *bill.Owner
	if !owner.Split.IsSet() {
		owner.Split = OwnerRemainder(bill.SplitType, bill.TotalAmount, bill.Participants)
	}
	participants, owner := CalculateAmountsToPay(bill.Participants, owner, bill.TotalAmount)
	bill.Participants = participants
	bill.Owner = &owner
}

// sumSplits adds up raw split values exactly.
func sumSplits(participants []models.BillParticipant) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range participants {
		sum = sum.Add(decimal.NewFromFloat(p.Split.Value))
	}
	return sum
}
