package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, can backfill and delete records
	RoleManager  Role = "manager"  // Can view department attendance
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID             string
	Name           string
	Email          string
	EmployeeNumber string
	PasswordHash   string
	Phone          *string
	AvatarURL      *string
	Role           Role
	DepartmentID   *string
	ManagerID      *string
	IsActive       bool
	LastLoginAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO / Join
	DepartmentName *string
}

// IsAdmin checks if user has administrator privileges
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user is manager or admin
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// GeoZone is a department's geofence: a center point plus an allowed
// radius. A department without a zone imposes no location restriction.
type GeoZone struct {
	Latitude     float64
	Longitude    float64
	Address      string
	RadiusMeters float64 // 0 means use the configured default
}

type Department struct {
	ID          string
	Name        string
	Description *string
	ManagerID   *string
	IsActive    bool
	Zone        *GeoZone
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
