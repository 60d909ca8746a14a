package attendance

import "context"

// AttendanceService is the attendance engine: it validates a scan, resolves
// the required transition, computes lateness/early-leave/overtime and keeps
// the single daily record per employee consistent under concurrent scans.
type AttendanceService interface {
	// CheckIn records the start of today's attendance for an employee
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)

	// CheckOut closes today's attendance and computes the work summary
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckOutResponse, error)

	// Scan is the combined NFC entry point: it derives the required action
	// from today's record and executes it under the same atomicity guarantee
	Scan(ctx context.Context, req ScanRequest) (ScanResponse, error)
}
