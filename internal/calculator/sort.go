package calculator

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/abdoachhoubi/billsplitter/internal/models"
)

// BalanceFilter selects contacts by the state of their balance.
type BalanceFilter string

const (
	FilterAll     BalanceFilter = "all"
	FilterOwesYou BalanceFilter = "owes-you"
	FilterYouOwe  BalanceFilter = "you-owe"
	FilterSettled BalanceFilter = "settled"
	FilterActive  BalanceFilter = "active"
)

// ContactSort is an ordering for contact lists.
type ContactSort string

const (
	SortByName       ContactSort = "name"
	SortByBalance    ContactSort = "balance"
	SortByActivity   ContactSort = "activity"
	SortByBillsCount ContactSort = "bills-count"
	SortByRecent     ContactSort = "recent"
)

// BillSort is an ordering for bill lists.
type BillSort string

const (
	SortBillsByDate   BillSort = "date"
	SortBillsByAmount BillSort = "amount"
	SortBillsByTitle  BillSort = "title"
)

// StatusAll matches bills of any status in FilterBills.
const StatusAll = "all"

// zeroBalance is the largest net balance treated as settled. It absorbs
// floating point residue below half a cent.
const zeroBalance = 0.005

// FilterContactsByBalance returns the contacts matching filter, keeping
// their order. Unknown filters behave like FilterAll.
func FilterContactsByBalance(contacts []models.ContactWithStats, filter BalanceFilter) []models.ContactWithStats {
	var keep func(s models.ContactStats) bool
	switch filter {
	case FilterOwesYou:
		keep = func(s models.ContactStats) bool { return s.NetBalance > zeroBalance }
	case FilterYouOwe:
		keep = func(s models.ContactStats) bool { return s.NetBalance < -zeroBalance }
	case FilterSettled:
		keep = func(s models.ContactStats) bool {
			return math.Abs(s.NetBalance) <= zeroBalance && s.TotalBills > 0
		}
	case FilterActive:
		keep = func(s models.ContactStats) bool { return s.ActiveBills > 0 }
	default:
		return append([]models.ContactWithStats(nil), contacts...)
	}

	out := make([]models.ContactWithStats, 0, len(contacts))
	for _, c := range contacts {
		if keep(c.Stats) {
			out = append(out, c)
		}
	}
	return out
}

// SortContacts returns a sorted copy of contacts. The sort is stable, so
// ties keep their original relative order. Unknown orderings return the
// input order.
func SortContacts(contacts []models.ContactWithStats, by ContactSort, lang language.Tag) []models.ContactWithStats {
	out := append([]models.ContactWithStats(nil), contacts...)

	var less func(a, b *models.ContactWithStats) bool
	switch by {
	case SortByName:
		col := collate.New(lang, collate.Loose)
		less = func(a, b *models.ContactWithStats) bool {
			return col.CompareString(a.Contact.FirstName, b.Contact.FirstName) < 0
		}
	case SortByBalance:
		less = func(a, b *models.ContactWithStats) bool {
			return math.Abs(a.Stats.NetBalance) > math.Abs(b.Stats.NetBalance)
		}
	case SortByActivity:
		less = func(a, b *models.ContactWithStats) bool {
			return newerFirst(a.Stats.LastBillDate, b.Stats.LastBillDate)
		}
	case SortByBillsCount:
		less = func(a, b *models.ContactWithStats) bool {
			return a.Stats.TotalBills > b.Stats.TotalBills
		}
	case SortByRecent:
		less = func(a, b *models.ContactWithStats) bool {
			return newerFirst(a.Contact.LastActivityAt, b.Contact.LastActivityAt)
		}
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(&out[i], &out[j]) })
	return out
}

// newerFirst orders timestamps descending with unset (zero) values last.
func newerFirst(a, b int64) bool {
	if a == 0 || b == 0 {
		return a != 0 && b == 0
	}
	return a > b
}

// FilterBills keeps bills with the given status (or any status for
// StatusAll or "") whose title or description contains search, ignoring
// case.
func FilterBills(bills []models.Bill, status string, search string) []models.Bill {
	search = strings.ToLower(strings.TrimSpace(search))

	out := make([]models.Bill, 0, len(bills))
	for _, b := range bills {
		if status != "" && status != StatusAll && string(b.Status) != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(b.Title), search) &&
			!strings.Contains(strings.ToLower(b.Description), search) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// SortBills returns a sorted copy of bills: newest first by date, largest
// first by amount, or alphabetical by title.
func SortBills(bills []models.Bill, by BillSort, lang language.Tag) []models.Bill {
	out := append([]models.Bill(nil), bills...)

	var less func(a, b *models.Bill) bool
	switch by {
	case SortBillsByDate:
		less = func(a, b *models.Bill) bool { return a.CreatedAt > b.CreatedAt }
	case SortBillsByAmount:
		less = func(a, b *models.Bill) bool { return a.TotalAmount > b.TotalAmount }
	case SortBillsByTitle:
		col := collate.New(lang, collate.Loose)
		less = func(a, b *models.Bill) bool { return col.CompareString(a.Title, b.Title) < 0 }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(&out[i], &out[j]) })
	return out
}
