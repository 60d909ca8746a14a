package clinic

import "errors"

// Clinic domain errors
var (
	ErrClinicNotFound = errors.New("clinic configuration not found")
	ErrClinicInactive = errors.New("clinic is not active")
)
