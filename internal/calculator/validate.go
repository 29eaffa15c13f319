package calculator

import (
	"net/mail"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/abdoachhoubi/billsplitter/internal/models"
)

// Validation messages. They are shown to users as is.
const (
	MsgTitleRequired        = "Bill title is required"
	MsgTotalAmountInvalid   = "Total amount must be greater than 0"
	MsgSplitTypeRequired    = "Split type is required"
	MsgSplitTypeInvalid     = "Split type must be percentage or amount"
	MsgOwnerRequired        = "Bill owner is required"
	MsgParticipantsRequired = "At least one participant is required"
	MsgPercentageSum        = "Percentages must add up to 100%"
	MsgAmountSumExceeds     = "Split amounts cannot exceed the total amount"
	MsgSplitKindMismatch    = "Every split must use the bill's split type"
	MsgNegativeSplit        = "Split values cannot be negative"

	MsgFirstNameRequired = "First name is required"
	MsgLastNameRequired  = "Last name is required"
	MsgEmailRequired     = "Email is required"
	MsgEmailInvalid      = "Email address is invalid"
	MsgPhoneInvalid      = "Phone number is invalid"
)

// ValidateBill checks that a bill can be created and returns every problem
// found. An empty result means the bill is valid.
//
// All rules run independently so a form can show every problem at once.
// Split checks only run when the split type is known.
func ValidateBill(bill *models.Bill) []string {
	var errs []string

	if strings.TrimSpace(bill.Title) == "" {
		errs = append(errs, MsgTitleRequired)
	}
	if bill.TotalAmount <= 0 {
		errs = append(errs, MsgTotalAmountInvalid)
	}
	switch {
	case bill.SplitType == "":
		errs = append(errs, MsgSplitTypeRequired)
	case !bill.SplitType.Valid():
		errs = append(errs, MsgSplitTypeInvalid)
	}
	if bill.Owner == nil {
		errs = append(errs, MsgOwnerRequired)
	}
	if len(bill.Participants) == 0 {
		errs = append(errs, MsgParticipantsRequired)
	}

	if !bill.SplitType.Valid() {
		return errs
	}

	entries := splitEntries(bill)
	if hasKindMismatch(entries, bill.SplitType) {
		errs = append(errs, MsgSplitKindMismatch)
	}
	if hasNegative(entries) {
		errs = append(errs, MsgNegativeSplit)
	}

	switch bill.SplitType {
	case models.SplitTypePercentage:
		if !validatePercentageSplits(entries) {
			errs = append(errs, MsgPercentageSum)
		}
	case models.SplitTypeAmount:
		if !validateAmountSplits(entries, bill.TotalAmount) {
			errs = append(errs, MsgAmountSumExceeds)
		}
	}

	return errs
}

// validatePercentageSplits reports whether the percentages of the owner and
// every participant add up to 100 within Tolerance. With no participants
// this is the owner's value alone.
func validatePercentageSplits(entries []models.BillParticipant) bool {
	diff := sumSplits(entries).Sub(decimal.NewFromInt(100)).Abs()
	return diff.LessThanOrEqual(decimal.NewFromFloat(Tolerance))
}

// validateAmountSplits reports whether the amounts do not exceed the total.
// Allocating less than the total is accepted; the remainder stays
// unassigned.
func validateAmountSplits(entries []models.BillParticipant, total float64) bool {
	return !sumSplits(entries).GreaterThan(decimal.NewFromFloat(total))
}

// splitEntries returns the owner (when present) followed by participants.
func splitEntries(bill *models.Bill) []models.BillParticipant {
	entries := make([]models.BillParticipant, 0, len(bill.Participants)+1)
	if bill.Owner != nil {
		entries = append(entries, *bill.Owner)
	}
	return append(entries, bill.Participants...)
}

func hasKindMismatch(entries []models.BillParticipant, splitType models.SplitType) bool {
	for _, e := range entries {
		if e.Split.Kind != splitType {
			return true
		}
	}
	return false
}

func hasNegative(entries []models.BillParticipant) bool {
	for _, e := range entries {
		if e.Split.Value < 0 {
			return true
		}
	}
	return false
}

// ValidateContact checks a contact form. Only the first name is required;
// email and phone are checked when present.
func ValidateContact(contact *models.Contact) []string {
	var errs []string
	if strings.TrimSpace(contact.FirstName) == "" {
		errs = append(errs, MsgFirstNameRequired)
	}
	if email := strings.TrimSpace(contact.Email); email != "" && !validEmail(email) {
		errs = append(errs, MsgEmailInvalid)
	}
	if phone := strings.TrimSpace(contact.Phone); phone != "" && !validPhone(phone) {
		errs = append(errs, MsgPhoneInvalid)
	}
	return errs
}

// ValidateUser checks a registration or profile form.
func ValidateUser(user *models.User) []string {
	var errs []string
	if strings.TrimSpace(user.FirstName) == "" {
		errs = append(errs, MsgFirstNameRequired)
	}
	if strings.TrimSpace(user.LastName) == "" {
		errs = append(errs, MsgLastNameRequired)
	}
	switch email := strings.TrimSpace(user.Email); {
	case email == "":
		errs = append(errs, MsgEmailRequired)
	case !validEmail(email):
		errs = append(errs, MsgEmailInvalid)
	}
	return errs
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// validPhone accepts digits with an optional leading "+" and the usual
// separators, and needs at least 7 digits.
func validPhone(phone string) bool {
	digits := 0
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			return false
		}
	}
	return digits >= 7
}
