package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeInvalidSubmission = "DON001"
	ErrCodeStorageFailure    = "DON002"
	ErrCodeStatsIncrement    = "DON003"
)

// Errors
var (
	ErrInvalidSubmission  = errors.New("invalid donor submission")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// DonorError custom error type
type DonorError struct {
	Code    string
	Message string
	Err     error
}

func (e *DonorError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DonorError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewValidationError(err error) *DonorError {
	return &DonorError{
		Code:    ErrCodeInvalidSubmission,
		Message: err.Error(),
		Err:     ErrInvalidSubmission,
	}
}

func NewStorageError(message string, err error) *DonorError {
	return &DonorError{
		Code:    ErrCodeStorageFailure,
		Message: message,
		Err:     err,
	}
}

// NewStatsIncrementError marks the half-committed registration: the donor
// row exists but the counter was not bumped. The caller sees a server
// error; sync-stats is the repair path.
func NewStatsIncrementError(err error) *DonorError {
	return &DonorError{
		Code:    ErrCodeStatsIncrement,
		Message: "donor saved but stats update failed, run sync-stats to repair",
		Err:     err,
	}
}
