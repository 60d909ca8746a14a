package clinic

import "context"

// SettingsRepository exposes the clinic configuration store at its boundary.
// Configuration CRUD lives elsewhere; the core only reads the one row.
type SettingsRepository interface {
	// Get retrieves the clinic settings, or ErrClinicNotFound
	Get(ctx context.Context) (Settings, error)
}
