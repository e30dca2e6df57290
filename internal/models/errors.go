package models

import "errors"

// Error constants for CV record operations
var (
	ErrCVNotFound  = errors.New("cv not found")
	ErrEmptyCVID   = errors.New("cv id is required")
	ErrNilCVRecord = errors.New("cv record is nil")
)
