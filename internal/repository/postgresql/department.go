package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/chronotrack/chronotrack-backend-go/internal/domain/user"
	"github.com/chronotrack/chronotrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) user.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

func scanDepartment(row pgx.Row) (user.Department, error) {
	var dept user.Department
	var latitude, longitude, radius *float64
	var address *string

	err := row.Scan(
		&dept.ID, &dept.Name, &dept.Description, &dept.ManagerID, &dept.IsActive,
		&latitude, &longitude, &address, &radius,
		&dept.CreatedAt, &dept.UpdatedAt,
	)
	if err != nil {
		return user.Department{}, err
	}

	// A department without coordinates has no geofence.
	if latitude != nil && longitude != nil {
		dept.Zone = &user.GeoZone{
			Latitude:  *latitude,
			Longitude: *longitude,
		}
		if address != nil {
			dept.Zone.Address = *address
		}
		if radius != nil {
			dept.Zone.RadiusMeters = *radius
		}
	}

	return dept, nil
}

// GetByID implements user.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (user.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, manager_id, is_active,
			   zone_latitude, zone_longitude, zone_address, zone_radius_meters,
			   created_at, updated_at
		FROM departments
		WHERE id = $1
	`

	dept, err := scanDepartment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Department{}, user.ErrDepartmentNotFound
		}
		return user.Department{}, fmt.Errorf("failed to get department by ID: %w", err)
	}

	return dept, nil
}

// List implements user.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]user.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, manager_id, is_active,
			   zone_latitude, zone_longitude, zone_address, zone_radius_meters,
			   created_at, updated_at
		FROM departments
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	var departments []user.Department
	for rows.Next() {
		dept, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, dept)
	}

	return departments, rows.Err()
}

// Create implements user.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, dept user.Department) (user.Department, error) {
	q := GetQuerier(ctx, r.db)

	var latitude, longitude, radius *float64
	var address *string
	if dept.Zone != nil {
		latitude = &dept.Zone.Latitude
		longitude = &dept.Zone.Longitude
		radius = &dept.Zone.RadiusMeters
		if dept.Zone.Address != "" {
			address = &dept.Zone.Address
		}
	}

	query := `
		INSERT INTO departments (
			name, description, manager_id, is_active,
			zone_latitude, zone_longitude, zone_address, zone_radius_meters
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		dept.Name,
		dept.Description,
		dept.ManagerID,
		dept.IsActive,
		latitude,
		longitude,
		address,
		radius,
	).Scan(&dept.ID, &dept.CreatedAt, &dept.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.Department{}, user.ErrDepartmentNameExists
		}
		return user.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return dept, nil
}
