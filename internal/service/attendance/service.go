package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/clinicops/clinic-backend-go/internal/domain/attendance"
	"github.com/clinicops/clinic-backend-go/internal/domain/clinic"
	"github.com/clinicops/clinic-backend-go/internal/domain/employee"
	domainschedule "github.com/clinicops/clinic-backend-go/internal/domain/schedule"
	"github.com/clinicops/clinic-backend-go/internal/pkg/clock"
	"github.com/clinicops/clinic-backend-go/internal/pkg/dedup"
	"github.com/clinicops/clinic-backend-go/internal/pkg/sse"
	"github.com/clinicops/clinic-backend-go/internal/service/schedule"
)

// Config carries the engine's policy knobs.
type Config struct {
	// MinimumDwell rejects a check-out issued sooner than this after the
	// check-in. Zero disables the rule.
	MinimumDwell time.Duration
}

type AttendanceServiceImpl struct {
	ledger *Ledger
	employee.EmployeeRepository
	clinicRepo clinic.SettingsRepository
	resolver   *schedule.Resolver
	guard      *dedup.Guard
	hub        *sse.Hub
	clock      clock.Clock
	cfg        Config
}

func NewAttendanceService(
	ledger *Ledger,
	employeeRepo employee.EmployeeRepository,
	clinicRepo clinic.SettingsRepository,
	resolver *schedule.Resolver,
	guard *dedup.Guard,
	hub *sse.Hub,
	clk clock.Clock,
	cfg Config,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		ledger:             ledger,
		EmployeeRepository: employeeRepo,
		clinicRepo:         clinicRepo,
		resolver:           resolver,
		guard:              guard,
		hub:                hub,
		clock:              clk,
		cfg:                cfg,
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}
	if !emp.IsActive {
		return attendance.CheckInResponse{}, employee.ErrEmployeeInactive
	}

	sched, err := a.resolver.Resolve(ctx, emp)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	now := a.at(req.Now)
	if !sched.IsWorkday(now) {
		return attendance.CheckInResponse{}, attendance.ErrNotWorkday
	}

	if a.guard.IsDuplicate(emp.NFCCardID, dedup.ActionCheckIn, now) {
		return attendance.CheckInResponse{}, attendance.ErrDuplicateScan
	}

	record, err := a.ledger.Mutate(ctx, emp.ID, dateOf(now), func(existing *attendance.Attendance) (*attendance.Attendance, error) {
		return buildCheckIn(existing, emp.ID, sched, now)
	})
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	a.guard.Record(emp.NFCCardID, dedup.ActionCheckIn, now)
	a.publish("checkin", emp, record)

	return attendance.CheckInResponse{
		Message:       fmt.Sprintf("%s checked in", emp.FullName()),
		Attendance:    mapAttendanceToResponse(record, emp),
		LateInfo:      lateInfo(record.LateMinutes),
		WorkStartTime: sched.StartTime,
		GracePeriod:   sched.GracePeriodMinutes,
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckOutResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	sched, err := a.resolver.Resolve(ctx, emp)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	now := a.at(req.Now)

	if a.guard.IsDuplicate(emp.NFCCardID, dedup.ActionCheckOut, now) {
		return attendance.CheckOutResponse{}, attendance.ErrDuplicateScan
	}

	record, err := a.ledger.Mutate(ctx, emp.ID, dateOf(now), func(existing *attendance.Attendance) (*attendance.Attendance, error) {
		return buildCheckOut(existing, sched, now, a.cfg.MinimumDwell)
	})
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	a.guard.Record(emp.NFCCardID, dedup.ActionCheckOut, now)
	a.publish("checkout", emp, record)

	return attendance.CheckOutResponse{
		Message:     "Checked out successfully",
		Attendance:  mapAttendanceToResponse(record, emp),
		WorkSummary: buildWorkSummary(record, sched.EndTime),
	}, nil
}

// Scan implements attendance.AttendanceService. It derives the required
// action from today's record and executes it inside a single ledger
// mutation, so two racing taps cannot resolve into different branches.
func (a *AttendanceServiceImpl) Scan(ctx context.Context, req attendance.ScanRequest) (attendance.ScanResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ScanResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByCard(ctx, req.CardID)
	if err != nil {
		return attendance.ScanResponse{}, err
	}

	settings, err := a.clinicRepo.Get(ctx)
	if err != nil {
		return attendance.ScanResponse{}, err
	}
	if !settings.IsActive {
		return attendance.ScanResponse{}, clinic.ErrClinicInactive
	}

	sched, err := a.resolver.Resolve(ctx, emp)
	if err != nil {
		return attendance.ScanResponse{}, err
	}

	now := a.at(req.Now)

	var action attendance.ScanAction
	record, err := a.ledger.Mutate(ctx, emp.ID, dateOf(now), func(existing *attendance.Attendance) (*attendance.Attendance, error) {
		switch action = decideAction(existing); action {
		case attendance.ScanActionCheckIn:
			if !sched.IsWorkday(now) {
				return nil, attendance.ErrNotWorkday
			}
			if a.guard.IsDuplicate(emp.NFCCardID, dedup.ActionCheckIn, now) {
				return nil, attendance.ErrDuplicateScan
			}
			return buildCheckIn(existing, emp.ID, sched, now)
		case attendance.ScanActionCheckOut:
			if a.guard.IsDuplicate(emp.NFCCardID, dedup.ActionCheckOut, now) {
				return nil, attendance.ErrDuplicateScan
			}
			return buildCheckOut(existing, sched, now, a.cfg.MinimumDwell)
		default:
			// Terminal for the day; leave the record untouched.
			return nil, nil
		}
	})
	if err != nil {
		return attendance.ScanResponse{}, err
	}

	resp := attendance.ScanResponse{
		Action:     action,
		Attendance: mapAttendanceToResponse(record, emp),
	}

	switch action {
	case attendance.ScanActionCheckIn:
		a.guard.Record(emp.NFCCardID, dedup.ActionCheckIn, now)
		a.publish("checkin", emp, record)
		resp.Message = fmt.Sprintf("%s checked in", emp.FullName())
		resp.LateInfo = lateInfo(record.LateMinutes)
		resp.WorkStartTime = sched.StartTime
		resp.GracePeriod = sched.GracePeriodMinutes
	case attendance.ScanActionCheckOut:
		a.guard.Record(emp.NFCCardID, dedup.ActionCheckOut, now)
		a.publish("checkout", emp, record)
		resp.Message = "Checked out successfully"
		summary := buildWorkSummary(record, sched.EndTime)
		resp.WorkSummary = &summary
	default:
		resp.Message = "Attendance already fully recorded for today"
		summary := buildWorkSummary(record, sched.EndTime)
		resp.WorkSummary = &summary
	}

	return resp, nil
}

// decideAction maps today's record to the transition an NFC tap requires.
func decideAction(existing *attendance.Attendance) attendance.ScanAction {
	switch {
	case existing == nil || existing.CheckInTime == nil:
		return attendance.ScanActionCheckIn
	case existing.IsComplete():
		return attendance.ScanActionComplete
	default:
		return attendance.ScanActionCheckOut
	}
}

// buildCheckIn computes the NoRecord -> CheckedIn transition. An existing
// record with a check-in is rejected with the record attached; an existing
// record without one (an absence created by the nightly job) is overwritten.
func buildCheckIn(existing *attendance.Attendance, employeeID string, sched domainschedule.Resolved, now time.Time) (*attendance.Attendance, error) {
	if existing != nil && existing.CheckInTime != nil {
		return nil, attendance.NewConflict(attendance.ErrAlreadyCheckedIn, existing)
	}

	workStart := sched.StartOn(now)
	graceDeadline := sched.GraceDeadlineOn(now)

	lateMinutes := 0
	status := attendance.StatusPresent
	if now.After(graceDeadline) {
		// Measured from the scheduled start, not the grace deadline.
		lateMinutes = wholeMinutes(now.Sub(workStart))
		status = attendance.StatusLate
	}

	checkIn := now
	record := attendance.Attendance{
		EmployeeID:  employeeID,
		Date:        dateOf(now),
		CheckInTime: &checkIn,
		LateMinutes: lateMinutes,
		Status:      status,
	}
	return &record, nil
}

// buildCheckOut computes the CheckedIn -> Complete transition.
// Classification order: early leave, then overtime, else the status set at
// check-in stands.
func buildCheckOut(existing *attendance.Attendance, sched domainschedule.Resolved, now time.Time, minimumDwell time.Duration) (*attendance.Attendance, error) {
	if existing == nil || existing.CheckInTime == nil {
		return nil, attendance.NewConflict(attendance.ErrNotCheckedIn, existing)
	}
	if existing.CheckOutTime != nil {
		return nil, attendance.NewConflict(attendance.ErrAlreadyCheckedOut, existing)
	}
	if minimumDwell > 0 && now.Sub(*existing.CheckInTime) < minimumDwell {
		return nil, attendance.NewConflict(attendance.ErrCheckOutTooSoon, existing)
	}

	workEnd := sched.EndOn(now)
	earlyThreshold := workEnd.Add(-time.Duration(sched.EarlyLeaveThresholdMinutes) * time.Minute)
	overtimeThreshold := workEnd.Add(time.Duration(sched.OvertimeThresholdMinutes) * time.Minute)

	record := *existing
	record.EarlyLeaveMinutes = 0
	record.OvertimeMinutes = 0

	if now.Before(earlyThreshold) {
		record.EarlyLeaveMinutes = wholeMinutes(workEnd.Sub(now))
		record.Status = attendance.StatusEarlyLeave
	} else if now.After(overtimeThreshold) {
		overtime := wholeMinutes(now.Sub(workEnd))
		record.OvertimeMinutes = overtime
		if overtime > 0 {
			record.Status = attendance.StatusOvertime
		}
	}

	checkOut := now
	record.CheckOutTime = &checkOut
	record.TotalWorkMinutes = wholeMinutes(now.Sub(*existing.CheckInTime))
	return &record, nil
}

func (a *AttendanceServiceImpl) at(override *time.Time) time.Time {
	if override != nil {
		return *override
	}
	return a.clock.Now()
}

// publish is fire-and-forget: a full or absent hub never fails a transition.
func (a *AttendanceServiceImpl) publish(eventType string, emp employee.Employee, record attendance.Attendance) {
	if a.hub == nil {
		return
	}
	a.hub.Publish(sse.Event{
		Type:       eventType,
		EmployeeID: emp.ID,
		Data:       mapAttendanceToResponse(record, emp),
	})
}

func dateOf(now time.Time) string {
	return now.Format("2006-01-02")
}

// wholeMinutes floors an interval to whole minutes. Negative intervals
// (clock skew) are reported signed, not clamped.
func wholeMinutes(d time.Duration) int {
	return int(math.Floor(d.Minutes()))
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func lateInfo(lateMinutes int) *string {
	if lateMinutes <= 0 {
		return nil
	}
	info := fmt.Sprintf("%d minutes late", lateMinutes)
	return &info
}

func formatHoursMinutes(totalMinutes int) string {
	return fmt.Sprintf("%d hours %d minutes", totalMinutes/60, totalMinutes%60)
}

func buildWorkSummary(record attendance.Attendance, workEndTime string) attendance.WorkSummary {
	summary := attendance.WorkSummary{
		TotalWorkTime: formatHoursMinutes(record.TotalWorkMinutes),
		WorkEndTime:   workEndTime,
	}
	if record.OvertimeMinutes > 0 {
		s := formatHoursMinutes(record.OvertimeMinutes) + " overtime"
		summary.Overtime = &s
	}
	if record.EarlyLeaveMinutes > 0 {
		s := formatHoursMinutes(record.EarlyLeaveMinutes) + " early"
		summary.EarlyLeave = &s
	}
	return summary
}

func mapAttendanceToResponse(att attendance.Attendance, emp employee.Employee) attendance.AttendanceResponse {
	name := emp.FullName()
	role := string(emp.Role)
	return attendance.AttendanceResponse{
		ID:                att.ID,
		EmployeeID:        att.EmployeeID,
		EmployeeName:      &name,
		EmployeeRole:      &role,
		Date:              att.Date,
		CheckInTime:       timePtrToString(att.CheckInTime),
		CheckOutTime:      timePtrToString(att.CheckOutTime),
		LateMinutes:       att.LateMinutes,
		EarlyLeaveMinutes: att.EarlyLeaveMinutes,
		OvertimeMinutes:   att.OvertimeMinutes,
		TotalWorkMinutes:  att.TotalWorkMinutes,
		Status:            string(att.Status),
	}
}
