package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/abdoachhoubi/billsplitter/internal/models"
)

type fakeLister struct {
	bills []models.Bill
	err   error
	calls int
}

func (f *fakeLister) ListBillsByStatus(_ context.Context, status models.BillStatus) ([]models.Bill, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Bill
	for _, b := range f.bills {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pendingBill(createdAt int64, shares ...float64) models.Bill {
	b := models.Bill{Status: models.BillStatusPending, CreatedAt: createdAt}
	for _, s := range shares {
		b.Participants = append(b.Participants, models.BillParticipant{AmountToPay: s})
	}
	return b
}

func TestDigest_Run(t *testing.T) {
	paid := pendingBill(50, 99)
	paid.Status = models.BillStatusPaid

	lister := &fakeLister{bills: []models.Bill{
		pendingBill(300, 10, 15.5),
		pendingBill(200, 4.5),
		paid,
	}}
	digest := NewDigest(lister, discardLogger(), time.Second)

	summary, err := digest.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if summary.PendingBills != 2 {
		t.Errorf("PendingBills = %d, want 2", summary.PendingBills)
	}
	if math.Abs(summary.Outstanding-30) > 0.001 {
		t.Errorf("Outstanding = %v, want 30", summary.Outstanding)
	}
	if summary.OldestPending != 200 {
		t.Errorf("OldestPending = %d, want 200", summary.OldestPending)
	}
}

func TestDigest_RunError(t *testing.T) {
	lister := &fakeLister{err: errors.New("database is locked")}
	digest := NewDigest(lister, discardLogger(), time.Second)

	if _, err := digest.Run(context.Background()); err == nil {
		t.Error("expected error")
	}

	// Scheduled runs log instead of returning
	digest.runScheduled()
	if lister.calls != 2 {
		t.Errorf("calls = %d, want 2", lister.calls)
	}
}

func TestNewScheduler(t *testing.T) {
	digest := NewDigest(&fakeLister{}, discardLogger(), time.Second)

	if _, err := NewScheduler("not a schedule", digest, discardLogger()); err == nil {
		t.Error("expected error for invalid spec")
	}

	scheduler, err := NewScheduler("@every 1h", digest, discardLogger())
	if err != nil {
		t.Fatalf("NewScheduler failed: %v", err)
	}
	scheduler.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := scheduler.Stop(ctx); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
}
