package user

import (
	"github.com/chronotrack/chronotrack-backend-go/internal/pkg/validator"
)

// ========================================
// USER DTOs
// ========================================

type CreateUserRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	EmployeeNumber string  `json:"employee_number"`
	Phone          *string `json:"phone,omitempty"`
	Role           Role    `json:"role,omitempty"`
	DepartmentID   *string `json:"department_id,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if validator.IsEmpty(r.EmployeeNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_number",
			Message: "employee_number is required",
		})
	}

	if r.Role != "" && r.Role != RoleAdmin && r.Role != RoleManager && r.Role != RoleEmployee {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be employee, manager or admin",
		})
	}

	if r.DepartmentID != nil && !validator.IsValidUUID(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a valid uuid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateUserRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Role         *Role   `json:"role,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid uuid",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if r.Role != nil && *r.Role != RoleAdmin && *r.Role != RoleManager && *r.Role != RoleEmployee {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be employee, manager or admin",
		})
	}

	if r.DepartmentID != nil && *r.DepartmentID != "" && !validator.IsValidUUID(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a valid uuid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ChangePasswordRequest struct {
	UserID      string `json:"-"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OldPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "old_password",
			Message: "old_password is required",
		})
	}

	if len(r.NewPassword) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password must be at least 6 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateDepartmentRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	ManagerID   *string  `json:"manager_id,omitempty"`
	Zone        *GeoZone `json:"zone,omitempty"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Zone != nil {
		if !validator.IsValidLatitude(r.Zone.Latitude) {
			errs = append(errs, validator.ValidationError{
				Field:   "zone.latitude",
				Message: "latitude must be between -90 and 90",
			})
		}
		if !validator.IsValidLongitude(r.Zone.Longitude) {
			errs = append(errs, validator.ValidationError{
				Field:   "zone.longitude",
				Message: "longitude must be between -180 and 180",
			})
		}
		if r.Zone.RadiusMeters < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "zone.radius_meters",
				Message: "radius_meters must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UserFilter struct {
	DepartmentID string
	Role         string
	Search       string // matches name, email or employee number
	Page         int
	Limit        int
}

// Normalize applies the default pagination window.
func (f *UserFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
}

type UserResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	EmployeeNumber string  `json:"employee_number"`
	Phone          *string `json:"phone,omitempty"`
	AvatarURL      *string `json:"avatar_url,omitempty"`
	Role           Role    `json:"role"`
	DepartmentID   *string `json:"department_id,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	IsActive       bool    `json:"is_active"`
	CreatedAt      string  `json:"created_at"`
}

// NewUserResponse maps a User entity to its response shape.
func NewUserResponse(u User) UserResponse {
	resp := UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		EmployeeNumber: u.EmployeeNumber,
		Phone:          u.Phone,
		AvatarURL:      u.AvatarURL,
		Role:           u.Role,
		DepartmentID:   u.DepartmentID,
		DepartmentName: u.DepartmentName,
		IsActive:       u.IsActive,
	}
	if !u.CreatedAt.IsZero() {
		resp.CreatedAt = u.CreatedAt.Format("2006-01-02 15:04:05")
	}
	return resp
}

type ListUsersResponse struct {
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
	Users      []UserResponse `json:"users"`
}

type DepartmentResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	ManagerID   *string  `json:"manager_id,omitempty"`
	IsActive    bool     `json:"is_active"`
	Zone        *GeoZone `json:"zone,omitempty"`
}
