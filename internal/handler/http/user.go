package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/chronotrack/chronotrack-backend-go/internal/domain/user"
	"github.com/chronotrack/chronotrack-backend-go/internal/handler/http/response"
	"github.com/chronotrack/chronotrack-backend-go/internal/service/file"
	"github.com/go-chi/chi/v5"
)

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
	UploadAvatar(w http.ResponseWriter, r *http.Request)
	Avatar(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	CreateDepartment(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.Service
	fileService file.FileService
}

func NewUserHandler(userService user.Service, fileService file.FileService) UserHandler {
	return &userHandlerImpl{
		userService: userService,
		fileService: fileService,
	}
}

// Create implements UserHandler.
func (h *userHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateUser decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.userService.CreateUser(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created", result)
}

// Get implements UserHandler.
func (h *userHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.userService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements UserHandler.
func (h *userHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := user.UserFilter{
		DepartmentID: query.Get("department_id"),
		Role:         query.Get("role"),
		Search:       query.Get("search"),
	}
	if p := query.Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil {
			filter.Page = pageNum
		}
	}
	if l := query.Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil {
			filter.Limit = limitNum
		}
	}

	result, err := h.userService.ListUsers(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements UserHandler.
func (h *userHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateUser decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.userService.UpdateUser(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User updated", result)
}

// Delete implements UserHandler.
func (h *userHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User deleted", nil)
}

// ChangePassword implements UserHandler. Users change their own
// password only.
func (h *userHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req user.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ChangePassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = userID

	if err := h.userService.ChangePassword(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password changed", nil)
}

// UploadAvatar implements UserHandler.
func (h *userHandlerImpl) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Max 5MB
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		slog.Error("UploadAvatar parse form error", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	formFile, fileHeader, err := r.FormFile("avatar")
	if err != nil {
		response.BadRequest(w, "Field 'avatar' is required", nil)
		return
	}
	defer formFile.Close()

	current, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	path, err := h.fileService.UploadAvatar(r.Context(), userID, formFile, fileHeader.Filename)
	if err != nil {
		slog.Error("UploadAvatar upload error", "error", err)
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.userService.UpdateUser(r.Context(), user.UpdateUserRequest{
		ID:        userID,
		AvatarURL: &path,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// The replaced object is orphaned once the row points at the new
	// path; cleanup failure only leaks storage, never the request.
	if current.AvatarURL != nil && *current.AvatarURL != path {
		if err := h.fileService.DeleteAvatar(r.Context(), *current.AvatarURL); err != nil {
			slog.Error("UploadAvatar old avatar cleanup error", "error", err)
		}
	}

	if url, err := h.fileService.AvatarURL(r.Context(), path); err == nil {
		result.AvatarURL = &url
	}

	response.SuccessWithMessage(w, "Avatar uploaded", result)
}

// Avatar implements UserHandler.
func (h *userHandlerImpl) Avatar(w http.ResponseWriter, r *http.Request) {
	usr, err := h.userService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if usr.AvatarURL == nil || *usr.AvatarURL == "" {
		response.NotFound(w, "User has no avatar")
		return
	}

	reader, contentType, err := h.fileService.OpenAvatar(r.Context(), *usr.AvatarURL)
	if err != nil {
		slog.Error("Avatar open error", "error", err)
		response.NotFound(w, "Avatar not found")
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", contentType)
	if _, err := io.Copy(w, reader); err != nil {
		slog.Error("Avatar stream error", "error", err)
	}
}

// ListDepartments implements UserHandler.
func (h *userHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	result, err := h.userService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateDepartment implements UserHandler.
func (h *userHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req user.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.userService.CreateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created", result)
}
