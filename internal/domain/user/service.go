package user

import (
	"context"
)

// Service defines the user and department directory operations
type Service interface {
	// CreateUser registers a new user (admin)
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// GetUser retrieves a user by id
	GetUser(ctx context.Context, id string) (UserResponse, error)

	// ListUsers retrieves users with filters and pagination
	ListUsers(ctx context.Context, filter UserFilter) (ListUsersResponse, error)

	// UpdateUser updates user fields (admin)
	UpdateUser(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	// ChangePassword verifies the old password and stores a new hash
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error

	// DeleteUser removes a user (admin)
	DeleteUser(ctx context.Context, id string) error

	// ListDepartments retrieves all departments
	ListDepartments(ctx context.Context) ([]DepartmentResponse, error)

	// CreateDepartment registers a new department (admin)
	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
}
