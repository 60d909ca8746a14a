package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	FirstName        string
	LastName         string
	Address          *string
	Login            string
	PasswordHash     *string
	Role             Role
	Specialization   string
	NFCCardID        string
	IsActive         bool
	PersonalSchedule *PersonalSchedule
	SalaryPerMonth   decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PersonalSchedule is an optional per-employee override of the clinic-wide
// work schedule. It carries no thresholds; those always come from the
// clinic's attendance settings.
type PersonalSchedule struct {
	Enabled   bool
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
	WorkDays  []string
}

// HasScheduleOverride reports whether the personal schedule takes effect:
// it must be enabled and carry a non-empty work-day list.
func (e Employee) HasScheduleOverride() bool {
	return e.PersonalSchedule != nil &&
		e.PersonalSchedule.Enabled &&
		len(e.PersonalSchedule.WorkDays) > 0
}

// FullName returns the display name used in attendance responses.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleDirector Role = "director"
	RoleDoctor   Role = "doctor"
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleDirector),
	string(RoleDoctor),
}
