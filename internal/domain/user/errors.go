package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrEmployeeNumberExists    = errors.New("employee number already registered")
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentNameExists    = errors.New("department name already exists")
	ErrInvalidUserID           = errors.New("invalid user id")
	ErrWrongPassword           = errors.New("current password is incorrect")
	ErrAdminPrivilegeRequired  = errors.New("admin privilege required")
	ErrManagerAccessRequired   = errors.New("manager access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
