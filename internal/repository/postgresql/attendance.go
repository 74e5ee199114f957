package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chronotrack/chronotrack-backend-go/internal/domain/attendance"
	"github.com/chronotrack/chronotrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const recordColumns = `
	a.id, a.user_id, a.occurred_at, a.day, a.type, a.status,
	a.latitude, a.longitude, a.address,
	a.device, a.ip_address, a.note, a.meta,
	a.is_manually_added, a.added_by,
	a.created_at, a.updated_at`

// scanRecord reads one attendance_records row. Latitude and longitude
// are nullable together; a row without them has no Location.
func scanRecord(row pgx.Row, withUser bool) (attendance.Record, error) {
	var rec attendance.Record
	var latitude, longitude *float64
	var address *string

	dest := []interface{}{
		&rec.ID, &rec.UserID, &rec.OccurredAt, &rec.Day, &rec.Type, &rec.Status,
		&latitude, &longitude, &address,
		&rec.Device, &rec.IPAddress, &rec.Note, &rec.Meta,
		&rec.IsManuallyAdded, &rec.AddedBy,
		&rec.CreatedAt, &rec.UpdatedAt,
	}
	if withUser {
		dest = append(dest, &rec.UserName, &rec.EmployeeNumber)
	}

	if err := row.Scan(dest...); err != nil {
		return attendance.Record{}, err
	}

	if latitude != nil && longitude != nil {
		rec.Location = &attendance.Location{
			Latitude:  *latitude,
			Longitude: *longitude,
		}
		if address != nil {
			rec.Location.Address = *address
		}
	}

	return rec, nil
}

// Create implements attendance.Repository.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	var latitude, longitude *float64
	var address *string
	if record.Location != nil {
		latitude = &record.Location.Latitude
		longitude = &record.Location.Longitude
		if record.Location.Address != "" {
			address = &record.Location.Address
		}
	}

	query := `
		INSERT INTO attendance_records (
			user_id, occurred_at, day, type, status,
			latitude, longitude, address,
			device, ip_address, note, meta,
			is_manually_added, added_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.UserID,
		record.OccurredAt,
		record.Day,
		record.Type,
		record.Status,
		latitude,
		longitude,
		address,
		record.Device,
		record.IPAddress,
		record.Note,
		record.Meta,
		record.IsManuallyAdded,
		record.AddedBy,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		// The partial unique index on (user_id, type, day) rejects a
		// second non-manual punch of the same type on the same day.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Record{}, attendance.DuplicateError(record.Type)
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.Repository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT` + recordColumns + `,
			u.name AS user_name,
			u.employee_number
		FROM attendance_records a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.id = $1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record by ID: %w", err)
	}

	return rec, nil
}

// FindByUserTypeWithin implements attendance.Repository.
func (a *attendanceRepository) FindByUserTypeWithin(ctx context.Context, userID string, recordType attendance.Type, from, to time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT` + recordColumns + `
		FROM attendance_records a
		WHERE a.user_id = $1
		  AND a.type = $2
		  AND a.occurred_at BETWEEN $3 AND $4
		  AND NOT a.is_manually_added
		ORDER BY a.occurred_at ASC
		LIMIT 1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, userID, recordType, from, to), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find attendance record: %w", err)
	}

	return &rec, nil
}

// ListByUserWithin implements attendance.Repository.
func (a *attendanceRepository) ListByUserWithin(ctx context.Context, userID string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT` + recordColumns + `
		FROM attendance_records a
		WHERE a.user_id = $1
		  AND a.occurred_at BETWEEN $2 AND $3
		ORDER BY a.occurred_at ASC
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows, false)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// List implements attendance.Repository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.QueryFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != "" {
		baseWhere += fmt.Sprintf(" AND a.user_id = $%d", argIdx)
		args = append(args, filter.UserID)
		argIdx++
	}
	if filter.DepartmentID != "" {
		baseWhere += fmt.Sprintf(" AND u.department_id = $%d", argIdx)
		args = append(args, filter.DepartmentID)
		argIdx++
	}
	if filter.Type != "" {
		baseWhere += fmt.Sprintf(" AND a.type = $%d", argIdx)
		args = append(args, filter.Type)
		argIdx++
	}
	if filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.day >= $%d", argIdx)
		args = append(args, filter.StartDate)
		argIdx++
	}
	if filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.day <= $%d", argIdx)
		args = append(args, filter.EndDate)
		argIdx++
	}

	countQuery := `
		SELECT COUNT(*)
		FROM attendance_records a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT`+recordColumns+`,
			u.name AS user_name,
			u.employee_number
		FROM attendance_records a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE %s
		ORDER BY a.occurred_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, rows.Err()
}

// Delete implements attendance.Repository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	query := `DELETE FROM attendance_records WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}
