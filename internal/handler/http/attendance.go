package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/chronotrack/chronotrack-backend-go/internal/domain/attendance"
	"github.com/chronotrack/chronotrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Clock(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetDaily(w http.ResponseWriter, r *http.Request)
	GetWeekly(w http.ResponseWriter, r *http.Request)
	GetMonthly(w http.ResponseWriter, r *http.Request)
	GetMyStats(w http.ResponseWriter, r *http.Request)
	GetUserStats(w http.ResponseWriter, r *http.Request)
	AddManual(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Clock implements AttendanceHandler.
func (h *attendanceHandlerImpl) Clock(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.ClockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Clock decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	ipAddress := r.RemoteAddr
	req.IPAddress = &ipAddress

	result, err := h.attendanceService.Clock(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock event recorded", result)
}

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := attendance.QueryFilter{
		UserID:       query.Get("user_id"),
		DepartmentID: query.Get("department_id"),
		Type:         query.Get("type"),
		Status:       query.Get("status"),
		StartDate:    query.Get("start_date"),
		EndDate:      query.Get("end_date"),
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

	result, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// dateFromQuery reads the optional "date" query parameter, defaulting
// to today.
func dateFromQuery(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now(), nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}

func (h *attendanceHandlerImpl) getRange(
	w http.ResponseWriter,
	r *http.Request,
	fetch func(userID string, date time.Time) ([]attendance.RecordResponse, error),
) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	date, err := dateFromQuery(r)
	if err != nil {
		response.BadRequest(w, "date must be formatted YYYY-MM-DD", nil)
		return
	}

	records, err := fetch(userID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// GetDaily implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetDaily(w http.ResponseWriter, r *http.Request) {
	h.getRange(w, r, func(userID string, date time.Time) ([]attendance.RecordResponse, error) {
		return h.attendanceService.GetDaily(r.Context(), userID, date)
	})
}

// GetWeekly implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetWeekly(w http.ResponseWriter, r *http.Request) {
	h.getRange(w, r, func(userID string, date time.Time) ([]attendance.RecordResponse, error) {
		return h.attendanceService.GetWeekly(r.Context(), userID, date)
	})
}

// GetMonthly implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	h.getRange(w, r, func(userID string, date time.Time) ([]attendance.RecordResponse, error) {
		return h.attendanceService.GetMonthly(r.Context(), userID, date)
	})
}

func (h *attendanceHandlerImpl) stats(w http.ResponseWriter, r *http.Request, userID string) {
	stats, err := h.attendanceService.GetStats(
		r.Context(),
		userID,
		r.URL.Query().Get("start_date"),
		r.URL.Query().Get("end_date"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// GetMyStats implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyStats(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.stats(w, r, userID)
}

// GetUserStats implements AttendanceHandler. Manager view of another
// user's statistics.
func (h *attendanceHandlerImpl) GetUserStats(w http.ResponseWriter, r *http.Request) {
	h.stats(w, r, chi.URLParam(r, "id"))
}

// AddManual implements AttendanceHandler.
func (h *attendanceHandlerImpl) AddManual(w http.ResponseWriter, r *http.Request) {
	adminID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.ManualAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddManual decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.AddManual(r.Context(), adminID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance record added", result)
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.attendanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}
