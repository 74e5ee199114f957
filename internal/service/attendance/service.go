package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/chronotrack/chronotrack-backend-go/internal/config"
	"github.com/chronotrack/chronotrack-backend-go/internal/domain/attendance"
	"github.com/chronotrack/chronotrack-backend-go/internal/domain/user"
	"github.com/chronotrack/chronotrack-backend-go/internal/pkg/datetime"
	"github.com/chronotrack/chronotrack-backend-go/internal/pkg/lock"
	"github.com/chronotrack/chronotrack-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.Repository
	userRepo user.UserRepository
	deptRepo user.DepartmentRepository

	schedule      config.WorkScheduleConfig
	defaultRadius float64

	// clockGuard serializes the duplicate check-then-insert per
	// (user, type, day); the partial unique index on the records table
	// is the authoritative constraint.
	clockGuard *lock.KeyedMutex

	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	userRepo user.UserRepository,
	deptRepo user.DepartmentRepository,
	schedule config.WorkScheduleConfig,
	geofence config.GeofenceConfig,
) attendance.Service {
	return &AttendanceServiceImpl{
		Repository:    attendanceRepo,
		userRepo:      userRepo,
		deptRepo:      deptRepo,
		schedule:      schedule,
		defaultRadius: geofence.DefaultRadiusMeters,
		clockGuard:    lock.NewKeyedMutex(),
		now:           time.Now,
	}
}

// timeToString formats a timestamp for responses.
func timeToString(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// Clock implements attendance.Service.
func (a *AttendanceServiceImpl) Clock(ctx context.Context, userID string, req attendance.ClockRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	usr, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return attendance.RecordResponse{}, user.ErrUserNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	zone, err := a.resolveZone(ctx, usr)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if err := ValidateGeofence(zone, req.Location, a.defaultRadius); err != nil {
		return attendance.RecordResponse{}, err
	}

	now := a.now()

	key := userID + ":" + string(req.Type) + ":" + datetime.DayKey(now)
	a.clockGuard.Lock(key)
	defer a.clockGuard.Unlock(key)

	existing, err := a.Repository.FindByUserTypeWithin(ctx, userID, req.Type, datetime.DayStart(now), datetime.DayEnd(now))
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to check for existing record: %w", err)
	}
	if existing != nil {
		return attendance.RecordResponse{}, attendance.DuplicateError(req.Type)
	}

	status := Classify(req.Type, now, a.schedule)

	loc := req.Location
	data := attendance.Record{
		UserID:     userID,
		OccurredAt: now,
		Day:        datetime.DayStart(now),
		Type:       req.Type,
		Status:     status,
		Location:   &loc,
		Device:     req.Device,
		IPAddress:  req.IPAddress,
		Note:       req.Note,
		Meta: map[string]interface{}{
			"use_face_recognition": req.UseFaceRecognition,
			"use_fingerprint":      req.UseFingerprint,
		},
	}

	created, err := a.Repository.Create(ctx, data)
	if err != nil {
		// The unique index closes the race the pre-check cannot.
		if errors.Is(err, attendance.ErrAlreadyClockedIn) || errors.Is(err, attendance.ErrAlreadyClockedOut) {
			return attendance.RecordResponse{}, err
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapRecordToResponse(created), nil
}

// resolveZone looks up the geofence zone of the user's department. A
// user without a department, or a department without coordinates, has
// no restriction.
func (a *AttendanceServiceImpl) resolveZone(ctx context.Context, usr user.User) (*user.GeoZone, error) {
	if usr.DepartmentID == nil {
		return nil, nil
	}

	dept, err := a.deptRepo.GetByID(ctx, *usr.DepartmentID)
	if err != nil {
		if errors.Is(err, user.ErrDepartmentNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	return dept.Zone, nil
}

// Get implements attendance.Service.
func (a *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.RecordResponse, error) {
	if !validator.IsValidUUID(id) {
		return attendance.RecordResponse{}, attendance.ErrInvalidRecordID
	}

	rec, err := a.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.RecordResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return mapRecordToResponse(rec), nil
}

// List implements attendance.Service.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.QueryFilter) (attendance.ListResponse, error) {
	filter.Normalize()
	if err := filter.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}

	records, total, err := a.Repository.List(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return attendance.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Records:    responses,
	}, nil
}

// GetDaily implements attendance.Service.
func (a *AttendanceServiceImpl) GetDaily(ctx context.Context, userID string, date time.Time) ([]attendance.RecordResponse, error) {
	return a.listRange(ctx, userID, datetime.DayStart(date), datetime.DayEnd(date))
}

// GetWeekly implements attendance.Service.
func (a *AttendanceServiceImpl) GetWeekly(ctx context.Context, userID string, date time.Time) ([]attendance.RecordResponse, error) {
	return a.listRange(ctx, userID, datetime.WeekStart(date), datetime.WeekEnd(date))
}

// GetMonthly implements attendance.Service.
func (a *AttendanceServiceImpl) GetMonthly(ctx context.Context, userID string, date time.Time) ([]attendance.RecordResponse, error) {
	return a.listRange(ctx, userID, datetime.MonthStart(date), datetime.MonthEnd(date))
}

func (a *AttendanceServiceImpl) listRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.RecordResponse, error) {
	if !validator.IsValidUUID(userID) {
		return nil, validator.ValidationErrors{{Field: "user_id", Message: "user_id must be a valid uuid"}}
	}

	records, err := a.Repository.ListByUserWithin(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}
	return responses, nil
}

// GetStats implements attendance.Service.
func (a *AttendanceServiceImpl) GetStats(ctx context.Context, userID string, startDate, endDate string) (attendance.Stats, error) {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(userID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id must be a valid uuid"})
	}

	start, err := time.ParseInLocation("2006-01-02", startDate, time.Local)
	if err != nil {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be formatted YYYY-MM-DD"})
	}
	end, err := time.ParseInLocation("2006-01-02", endDate, time.Local)
	if err != nil {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be formatted YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return attendance.Stats{}, errs
	}

	records, err := a.Repository.ListByUserWithin(ctx, userID, datetime.DayStart(start), datetime.DayEnd(end))
	if err != nil {
		return attendance.Stats{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return Aggregate(records, start, end, a.schedule), nil
}

// AddManual implements attendance.Service. Administrator backfill:
// the geofence and duplicate checks are skipped and the supplied
// status is stored as-is.
func (a *AttendanceServiceImpl) AddManual(ctx context.Context, adminID string, req attendance.ManualAddRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	if _, err := a.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return attendance.RecordResponse{}, user.ErrUserNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	occurredAt := a.now()
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02 15:04:05", req.Date, time.Local)
		if err != nil {
			parsed, err = time.ParseInLocation("2006-01-02", req.Date, time.Local)
		}
		if err != nil {
			return attendance.RecordResponse{}, validator.ValidationErrors{{
				Field:   "date",
				Message: "date must be formatted YYYY-MM-DD or YYYY-MM-DD HH:MM:SS",
			}}
		}
		occurredAt = parsed
	}

	status := req.Status
	if status == "" {
		status = attendance.StatusNormal
	}

	data := attendance.Record{
		UserID:          req.UserID,
		OccurredAt:      occurredAt,
		Day:             datetime.DayStart(occurredAt),
		Type:            req.Type,
		Status:          status,
		Location:        req.Location,
		Note:            req.Note,
		IsManuallyAdded: true,
		AddedBy:         &adminID,
	}

	created, err := a.Repository.Create(ctx, data)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to create manual attendance record: %w", err)
	}

	return mapRecordToResponse(created), nil
}

// Delete implements attendance.Service.
func (a *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return attendance.ErrInvalidRecordID
	}

	if err := a.Repository.Delete(ctx, id); err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	return nil
}

// mapRecordToResponse converts a Record entity to RecordResponse
func mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:              rec.ID,
		UserID:          rec.UserID,
		UserName:        rec.UserName,
		EmployeeNumber:  rec.EmployeeNumber,
		OccurredAt:      timeToString(rec.OccurredAt),
		Type:            rec.Type,
		Status:          rec.Status,
		Location:        rec.Location,
		Device:          rec.Device,
		Note:            rec.Note,
		IsManuallyAdded: rec.IsManuallyAdded,
		AddedBy:         rec.AddedBy,
	}
	if !rec.CreatedAt.IsZero() {
		resp.CreatedAt = timeToString(rec.CreatedAt)
	}
	return resp
}
