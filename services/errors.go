package services

import "errors"

// Sentinel errors shared between services and controllers. Controllers
// translate them to HTTP statuses with errors.Is.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrQuotaExceeded      = errors.New("ai quota exceeded")
	ErrAnalysisFailed     = errors.New("ai analysis failed")
)
