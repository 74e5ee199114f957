package attendance

import (
	"time"
)

type Type string

const (
	TypeClockIn  Type = "clock_in"
	TypeClockOut Type = "clock_out"
)

// IsValid reports whether t is a known clock type.
func (t Type) IsValid() bool {
	return t == TypeClockIn || t == TypeClockOut
}

type Status string

const (
	StatusNormal     Status = "normal"
	StatusLate       Status = "late"
	StatusEarlyLeave Status = "early_leave"
	StatusAbsent     Status = "absent"
	StatusException  Status = "exception"
)

// IsValid reports whether s is a known attendance status.
func (s Status) IsValid() bool {
	switch s {
	case StatusNormal, StatusLate, StatusEarlyLeave, StatusAbsent, StatusException:
		return true
	}
	return false
}

// Location is the reported position of a self-service clock event.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// Record is a persisted clock event. It is created once and never
// mutated; administrators may delete it.
type Record struct {
	ID         string
	UserID     string
	OccurredAt time.Time
	Day        time.Time // local calendar-day bucket of OccurredAt
	Type       Type
	Status     Status
	Location   *Location
	Device     *string
	IPAddress  *string
	Note       *string
	Meta       map[string]interface{}
	IsManuallyAdded bool
	AddedBy         *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / join
	UserName       *string
	EmployeeNumber *string
}
