package user

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/chronotrack/chronotrack-backend-go/internal/domain/user"
	"github.com/chronotrack/chronotrack-backend-go/internal/pkg/database"
	"github.com/chronotrack/chronotrack-backend-go/internal/pkg/validator"
	"github.com/chronotrack/chronotrack-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
	deptRepo user.DepartmentRepository
}

func NewUserService(db *database.DB, userRepository user.UserRepository, departmentRepository user.DepartmentRepository) user.Service {
	return &UserServiceImpl{
		db:             db,
		UserRepository: userRepository,
		deptRepo:       departmentRepository,
	}
}

// CreateUser implements user.Service.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if req.DepartmentID != nil {
		if _, err := s.deptRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			if errors.Is(err, user.ErrDepartmentNotFound) {
				return user.UserResponse{}, user.ErrDepartmentNotFound
			}
			return user.UserResponse{}, fmt.Errorf("failed to get department: %w", err)
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = user.RoleEmployee
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Name:           req.Name,
		Email:          req.Email,
		EmployeeNumber: req.EmployeeNumber,
		PasswordHash:   string(hashed),
		Phone:          req.Phone,
		Role:           role,
		DepartmentID:   req.DepartmentID,
		IsActive:       true,
	})
	if err != nil {
		if errors.Is(err, user.ErrUserEmailExists) || errors.Is(err, user.ErrEmployeeNumberExists) {
			return user.UserResponse{}, err
		}
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user.NewUserResponse(created), nil
}

// GetUser implements user.Service.
func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	if !validator.IsValidUUID(id) {
		return user.UserResponse{}, user.ErrInvalidUserID
	}

	found, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user.NewUserResponse(found), nil
}

// ListUsers implements user.Service.
func (s *UserServiceImpl) ListUsers(ctx context.Context, filter user.UserFilter) (user.ListUsersResponse, error) {
	filter.Normalize()

	users, total, err := s.UserRepository.List(ctx, filter)
	if err != nil {
		return user.ListUsersResponse{}, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.NewUserResponse(u))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return user.ListUsersResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Users:      responses,
	}, nil
}

// UpdateUser implements user.Service.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if req.DepartmentID != nil && *req.DepartmentID != "" {
		if _, err := s.deptRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			if errors.Is(err, user.ErrDepartmentNotFound) {
				return user.UserResponse{}, user.ErrDepartmentNotFound
			}
			return user.UserResponse{}, fmt.Errorf("failed to get department: %w", err)
		}
	}

	if err := s.UserRepository.Update(ctx, req); err != nil {
		if errors.Is(err, user.ErrUserNotFound) || errors.Is(err, user.ErrUserEmailExists) {
			return user.UserResponse{}, err
		}
		return user.UserResponse{}, fmt.Errorf("failed to update user: %w", err)
	}

	return s.GetUser(ctx, req.ID)
}

// ChangePassword implements user.Service. The old-password check and
// the hash update run in one transaction.
func (s *UserServiceImpl) ChangePassword(ctx context.Context, req user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		found, err := s.UserRepository.GetByID(txCtx, req.UserID)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return user.ErrUserNotFound
			}
			return fmt.Errorf("failed to get user: %w", err)
		}

		if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.OldPassword)); err != nil {
			return user.ErrWrongPassword
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		if err := s.UserRepository.UpdatePassword(txCtx, req.UserID, string(hashed)); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}

		return nil
	})
}

// DeleteUser implements user.Service.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return user.ErrInvalidUserID
	}

	if err := s.UserRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// ListDepartments implements user.Service.
func (s *UserServiceImpl) ListDepartments(ctx context.Context) ([]user.DepartmentResponse, error) {
	departments, err := s.deptRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]user.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, mapDepartmentToResponse(dept))
	}

	return responses, nil
}

// CreateDepartment implements user.Service.
func (s *UserServiceImpl) CreateDepartment(ctx context.Context, req user.CreateDepartmentRequest) (user.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return user.DepartmentResponse{}, err
	}

	if req.ManagerID != nil {
		if _, err := s.UserRepository.GetByID(ctx, *req.ManagerID); err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return user.DepartmentResponse{}, user.ErrUserNotFound
			}
			return user.DepartmentResponse{}, fmt.Errorf("failed to get manager: %w", err)
		}
	}

	created, err := s.deptRepo.Create(ctx, user.Department{
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   req.ManagerID,
		IsActive:    true,
		Zone:        req.Zone,
	})
	if err != nil {
		if errors.Is(err, user.ErrDepartmentNameExists) {
			return user.DepartmentResponse{}, user.ErrDepartmentNameExists
		}
		return user.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	return mapDepartmentToResponse(created), nil
}

func mapDepartmentToResponse(dept user.Department) user.DepartmentResponse {
	return user.DepartmentResponse{
		ID:          dept.ID,
		Name:        dept.Name,
		Description: dept.Description,
		ManagerID:   dept.ManagerID,
		IsActive:    dept.IsActive,
		Zone:        dept.Zone,
	}
}
