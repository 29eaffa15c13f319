package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abdoachhoubi/billsplitter/internal/models"
)

const billColumns = "id, title, description, category_id, total_amount, split_type, status, created_by, created_at, updated_at"

const participantColumns = "bill_id, position, person_id, first_name, last_name, email, avatar, split_kind, split_value, amount_to_pay"

// CreateBill persists a new bill to the database.
func (s *SQLiteStore) CreateBill(ctx context.Context, bill *models.Bill) error {
	if bill.Owner == nil {
		return fmt.Errorf("bill owner is required")
	}

	// Generate IDs if not set
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if bill.CreatedAt == 0 {
		bill.CreatedAt = now
	}
	bill.UpdatedAt = now
	if bill.Status == "" {
		bill.Status = models.BillStatusPending
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Insert bill
	_, err = tx.ExecContext(ctx,
		"INSERT INTO bills ("+billColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		bill.ID, bill.Title, bill.Description, bill.CategoryID, bill.TotalAmount,
		string(bill.SplitType), string(bill.Status), bill.CreatedBy, bill.CreatedAt, bill.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill: %w", err)
	}

	if err := insertParticipants(ctx, tx, bill); err != nil {
		return err
	}
	if err := touchContacts(ctx, tx, bill, now); err != nil {
		return err
	}
	if err := bumpBillsVersion(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetBill retrieves a bill by ID, including owner and participants.
func (s *SQLiteStore) GetBill(ctx context.Context, billID string) (*models.Bill, error) {
	bills, err := queryBills(ctx, s.db, "id = ?", billID)
	if err != nil {
		return nil, err
	}
	if len(bills) == 0 {
		return nil, notFound("bill", billID)
	}
	return &bills[0], nil
}

// UpdateBill replaces an existing bill's fields and participants.
// CreatedAt and CreatedBy are kept from the stored row.
func (s *SQLiteStore) UpdateBill(ctx context.Context, bill *models.Bill) error {
	if bill.Owner == nil {
		return fmt.Errorf("bill owner is required")
	}
	now := time.Now().Unix()
	bill.UpdatedAt = now
	if bill.Status == "" {
		bill.Status = models.BillStatusPending
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE bills SET title = ?, description = ?, category_id = ?, total_amount = ?,
		 split_type = ?, status = ?, updated_at = ? WHERE id = ?`,
		bill.Title, bill.Description, bill.CategoryID, bill.TotalAmount,
		string(bill.SplitType), string(bill.Status), bill.UpdatedAt, bill.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update bill: %w", err)
	}
	if err := expectRow(result, "bill", bill.ID); err != nil {
		return err
	}

	// Replace participants
	if _, err := tx.ExecContext(ctx, "DELETE FROM bill_participants WHERE bill_id = ?", bill.ID); err != nil {
		return fmt.Errorf("failed to delete participants: %w", err)
	}
	if err := insertParticipants(ctx, tx, bill); err != nil {
		return err
	}
	if err := touchContacts(ctx, tx, bill, now); err != nil {
		return err
	}
	if err := bumpBillsVersion(ctx, tx); err != nil {
		return err
	}

	// Read back fields the update does not touch
	err = tx.QueryRowContext(ctx, "SELECT created_by, created_at FROM bills WHERE id = ?", bill.ID).
		Scan(&bill.CreatedBy, &bill.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to read bill: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// UpdateBillStatus changes the status of a bill.
func (s *SQLiteStore) UpdateBillStatus(ctx context.Context, billID string, status models.BillStatus) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"UPDATE bills SET status = ?, updated_at = ? WHERE id = ?",
		string(status), time.Now().Unix(), billID,
	)
	if err != nil {
		return fmt.Errorf("failed to update bill status: %w", err)
	}
	if err := expectRow(result, "bill", billID); err != nil {
		return err
	}
	if err := bumpBillsVersion(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteBill removes a bill by ID. Participants are removed by cascade.
func (s *SQLiteStore) DeleteBill(ctx context.Context, billID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, "DELETE FROM bills WHERE id = ?", billID)
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	if err := expectRow(result, "bill", billID); err != nil {
		return err
	}
	if err := bumpBillsVersion(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// SnapshotBills reads every bill involving personID and the bills version
// in one transaction, so the version matches the returned bills.
func (s *SQLiteStore) SnapshotBills(ctx context.Context, personID string) (*models.BillSnapshot, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	snapshot := &models.BillSnapshot{}
	err = tx.QueryRowContext(ctx, "SELECT value FROM counters WHERE name = 'bills_version'").Scan(&snapshot.Version)
	if err != nil {
		return nil, fmt.Errorf("failed to read bills version: %w", err)
	}

	snapshot.Bills, err = queryBills(ctx, tx,
		"id IN (SELECT bill_id FROM bill_participants WHERE person_id = ?)", personID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return snapshot, nil
}

// ListBillsByStatus returns every bill with the given status, newest first.
func (s *SQLiteStore) ListBillsByStatus(ctx context.Context, status models.BillStatus) ([]models.Bill, error) {
	return queryBills(ctx, s.db, "status = ?", string(status))
}

// queryBills loads the bills matching where, newest first, with their
// owner and participants.
func queryBills(ctx context.Context, q querier, where string, args ...any) ([]models.Bill, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT "+billColumns+" FROM bills WHERE "+where+" ORDER BY created_at DESC, id",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query bills: %w", err)
	}
	defer rows.Close()

	var bills []models.Bill
	index := make(map[string]int)
	for rows.Next() {
		var b models.Bill
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.CategoryID, &b.TotalAmount,
			&b.SplitType, &b.Status, &b.CreatedBy, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		index[b.ID] = len(bills)
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}
	rows.Close()

	if len(bills) == 0 {
		return nil, nil
	}

	// Load participants for all matched bills in one query
	pRows, err := q.QueryContext(ctx,
		"SELECT "+participantColumns+" FROM bill_participants WHERE bill_id IN (SELECT id FROM bills WHERE "+where+") ORDER BY bill_id, position",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer pRows.Close()

	for pRows.Next() {
		var (
			billID   string
			position int
			p        models.BillParticipant
		)
		if err := pRows.Scan(&billID, &position, &p.User.ID, &p.User.FirstName, &p.User.LastName,
			&p.User.Email, &p.User.Avatar, &p.Split.Kind, &p.Split.Value, &p.AmountToPay); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}

		i, ok := index[billID]
		if !ok {
			continue
		}
		if position == 0 {
			owner := p
			bills[i].Owner = &owner
		} else {
			bills[i].Participants = append(bills[i].Participants, p)
		}
	}
	if err := pRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return bills, nil
}

// insertParticipants writes the owner at position 0 and participants after.
func insertParticipants(ctx context.Context, tx *sql.Tx, bill *models.Bill) error {
	entries := append([]models.BillParticipant{*bill.Owner}, bill.Participants...)
	for position, p := range entries {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO bill_participants ("+participantColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			bill.ID, position, p.User.ID, p.User.FirstName, p.User.LastName, p.User.Email, p.User.Avatar,
			string(p.Split.Kind), p.Split.Value, p.AmountToPay,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}
	return nil
}

// touchContacts records activity on every contact that appears on the bill.
// IDs that are not contacts (users) match no rows.
func touchContacts(ctx context.Context, tx *sql.Tx, bill *models.Bill, at int64) error {
	args := make([]any, 0, len(bill.Participants)+2)
	args = append(args, at, bill.Owner.User.ID)
	for _, p := range bill.Participants {
		args = append(args, p.User.ID)
	}

	_, err := tx.ExecContext(ctx,
		"UPDATE contacts SET last_activity_at = ? WHERE id IN ("+placeholders(len(args)-1)+")",
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to record contact activity: %w", err)
	}
	return nil
}

// expectRow turns a zero-row result into a not-found error.
func expectRow(result sql.Result, kind, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return notFound(kind, id)
	}
	return nil
}

// isNoRows reports whether err means the query matched nothing.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
