// Package export renders contact history reports.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/abdoachhoubi/billsplitter/internal/models"
)

// Filename returns a download name for a contact's history report.
func Filename(contact *models.Contact) string {
	name := strings.ToLower(strings.TrimSpace(contact.FirstName + "-" + contact.LastName))
	name = strings.Trim(strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		}
		return '-'
	}, name), "-")
	if name == "" {
		name = contact.ID
	}
	return "history-" + name + ".csv"
}

// WriteContactHistory writes a CSV report of every bill shared with a
// contact: a summary block followed by one row per bill. Amounts are plain
// decimals in the given currency so spreadsheets can sum them.
func WriteContactHistory(w io.Writer, contact *models.Contact, stats models.ContactStats, rels []models.BillRelationship, currency string) error {
	csvWriter := csv.NewWriter(w)

	header := [][]string{
		{"Contact History Report"},
		{"Contact", textCell(strings.TrimSpace(contact.FirstName + " " + contact.LastName))},
		{"Currency", currency},
		{"Generated", time.Now().UTC().Format("2006-01-02 15:04:05")},
		{},
		{"SUMMARY"},
		{"Total Bills", strconv.Itoa(stats.TotalBills)},
		{"Active Bills", strconv.Itoa(stats.ActiveBills)},
		{"Total Amount Involved", money(stats.TotalAmountInvolved)},
		{"Owed To You", money(stats.BalanceOwedToYou)},
		{"You Owe", money(stats.BalanceYouOwe)},
		{"Net Balance", money(stats.NetBalance)},
		{"Average Bill Amount", money(stats.AverageBillAmount)},
		{},
	}

	for _, row := range header {
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	if len(rels) > 0 {
		if err := csvWriter.Write([]string{"BILLS"}); err != nil {
			return err
		}
		columns := []string{"Date", "Bill", "Status", "Relationship", "Total", "You Owe", "They Owe", "Shared"}
		if err := csvWriter.Write(columns); err != nil {
			return err
		}

		for _, r := range rels {
			row := []string{
				date(r.BillDate),
				textCell(r.BillTitle),
				string(r.BillStatus),
				string(r.Kind),
				money(r.TotalAmount),
				money(r.AmountOwed),
				money(r.AmountTheyOwe),
				money(r.SharedAmount),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	return nil
}

// textCell neutralizes user text that a spreadsheet would evaluate as a
// formula by prefixing it with a single quote.
func textCell(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func date(unix int64) string {
	if unix == 0 {
		return ""
	}
	return time.Unix(unix, 0).UTC().Format("2006-01-02")
}
