// Package jobs runs scheduled background work.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/abdoachhoubi/billsplitter/internal/metrics"
	"github.com/abdoachhoubi/billsplitter/internal/models"
)

// PendingBillLister is the storage the digest reads from.
type PendingBillLister interface {
	ListBillsByStatus(ctx context.Context, status models.BillStatus) ([]models.Bill, error)
}

// Summary is the result of one digest run.
type Summary struct {
	PendingBills int
	// Outstanding is what participants still owe bill owners.
	Outstanding float64
	// OldestPending is the CreatedAt of the oldest pending bill, zero if none.
	OldestPending int64
}

// Digest summarizes pending bills and publishes the result as gauges.
type Digest struct {
	bills   PendingBillLister
	logger  *slog.Logger
	timeout time.Duration
}

// NewDigest creates a digest job. Each scheduled run is cancelled after
// timeout.
func NewDigest(bills PendingBillLister, logger *slog.Logger, timeout time.Duration) *Digest {
	return &Digest{bills: bills, logger: logger, timeout: timeout}
}

// Run loads every pending bill and updates metrics.PendingBills and
// metrics.OutstandingAmount.
func (d *Digest) Run(ctx context.Context) (Summary, error) {
	bills, err := d.bills.ListBillsByStatus(ctx, models.BillStatusPending)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to list pending bills: %w", err)
	}

	summary := Summary{PendingBills: len(bills)}
	for _, b := range bills {
		for _, p := range b.Participants {
			summary.Outstanding += p.AmountToPay
		}
		if summary.OldestPending == 0 || b.CreatedAt < summary.OldestPending {
			summary.OldestPending = b.CreatedAt
		}
	}

	metrics.PendingBills.Set(float64(summary.PendingBills))
	metrics.OutstandingAmount.Set(summary.Outstanding)

	d.logger.Info("Outstanding bills digest",
		"pending_bills", summary.PendingBills,
		"outstanding", summary.Outstanding,
		"oldest_pending", summary.OldestPending,
	)
	return summary, nil
}

// runScheduled is the cron entry point.
func (d *Digest) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if _, err := d.Run(ctx); err != nil {
		d.logger.Error("Digest run failed", "error", err)
	}
}

// Scheduler owns the cron runner for background jobs.
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler creates a scheduler running digest on spec. Overlapping runs
// are skipped and panics are recovered and logged.
func NewScheduler(spec string, digest *Digest, logger *slog.Logger) (*Scheduler, error) {
	cl := cronLogger{logger: logger}
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	if _, err := c.AddFunc(spec, digest.runScheduled); err != nil {
		return nil, fmt.Errorf("failed to add digest job: %w", err)
	}
	return &Scheduler{cron: c}, nil
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduling and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append([]any{"error", err}, keysAndValues...)...)
}
