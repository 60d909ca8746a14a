package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrCardNotFound     = errors.New("nfc card is not registered or employee is inactive")
	ErrEmployeeInactive = errors.New("employee is not active")
)
