package attendance

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/clinicops/clinic-backend-go/internal/domain/attendance"
	"github.com/clinicops/clinic-backend-go/internal/pkg/database"
	"github.com/clinicops/clinic-backend-go/internal/repository/postgresql"
)

// Ledger owns the one-record-per-employee-per-day invariant. Every
// read-check-mutate-write cycle runs under a mutex keyed by (employee, date),
// so two scans for the same employee on the same day can never interleave.
// Scans for different employees proceed independently.
type Ledger struct {
	repo attendance.AttendanceRepository
	db   *database.DB

	mu    sync.Mutex
	locks map[string]*dayLock
}

type dayLock struct {
	mu   sync.Mutex
	refs int
}

// NewLedger creates a Ledger over the given store. A nil db runs mutations
// without a surrounding transaction.
func NewLedger(repo attendance.AttendanceRepository, db *database.DB) *Ledger {
	return &Ledger{
		repo:  repo,
		db:    db,
		locks: make(map[string]*dayLock),
	}
}

// Day returns the record for (employeeID, date), or nil when none exists.
func (l *Ledger) Day(ctx context.Context, employeeID, date string) (*attendance.Attendance, error) {
	return l.repo.GetByEmployeeAndDate(ctx, employeeID, date)
}

// Mutate runs fn with the day's current record under the per-day lock.
// fn returns the record to persist: a create when no record existed, an
// update otherwise. Returning (nil, err) rejects the transition; returning
// (nil, nil) leaves the day untouched and yields the existing record.
func (l *Ledger) Mutate(ctx context.Context, employeeID, date string, fn func(existing *attendance.Attendance) (*attendance.Attendance, error)) (attendance.Attendance, error) {
	key := employeeID + "|" + date
	dl := l.acquire(key)
	defer l.release(key, dl)

	if l.db == nil {
		return l.mutate(ctx, employeeID, date, fn)
	}

	var result attendance.Attendance
	err := postgresql.WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		var err error
		result, err = l.mutate(postgresql.ContextWithTx(ctx, tx), employeeID, date, fn)
		return err
	})
	return result, err
}

func (l *Ledger) mutate(ctx context.Context, employeeID, date string, fn func(existing *attendance.Attendance) (*attendance.Attendance, error)) (attendance.Attendance, error) {
	existing, err := l.repo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to read day record: %w", err)
	}

	record, err := fn(existing)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if record == nil {
		if existing == nil {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return *existing, nil
	}

	if existing == nil {
		created, err := l.repo.Create(ctx, *record)
		if err != nil {
			return attendance.Attendance{}, err
		}
		return created, nil
	}

	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt
	if err := l.repo.Update(ctx, *record); err != nil {
		return attendance.Attendance{}, err
	}
	return *record, nil
}

func (l *Ledger) acquire(key string) *dayLock {
	l.mu.Lock()
	dl, ok := l.locks[key]
	if !ok {
		dl = &dayLock{}
		l.locks[key] = dl
	}
	dl.refs++
	l.mu.Unlock()

	dl.mu.Lock()
	return dl
}

func (l *Ledger) release(key string, dl *dayLock) {
	dl.mu.Unlock()

	l.mu.Lock()
	dl.refs--
	if dl.refs == 0 {
		delete(l.locks, key)
	}
	l.mu.Unlock()
}
