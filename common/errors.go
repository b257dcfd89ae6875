package common

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

const (
	ErrTypeValidation = "HandleValidationError"
	ErrTypeRelease    = "HandleReleaseError"
)

var (
	ErrNilHandle    = errors.New("handle must not be nil")
	ErrReleasePanic = errors.New("release panicked")
)

type RegistryError struct {
	Message string
	Type    string
	Err     error
}

func (e *RegistryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *RegistryError) Unwrap() error {
	return e.Err
}

func NewRegistryError(message, errType string, err error) *RegistryError {
	return &RegistryError{
		Message: message,
		Type:    errType,
		Err:     err,
	}
}

// ReleaseError is a single release fault raised while a registry released its
// handles. Index is the handle's position in registration order for that pass.
type ReleaseError struct {
	Registry string
	Index    int
	Err      error
}

func (e *ReleaseError) Error() string {
	return fmt.Sprintf("%s: registry %s: handle #%d: %v", ErrTypeRelease, e.Registry, e.Index, e.Err)
}

func (e *ReleaseError) Unwrap() error {
	return e.Err
}

func newPanicError(r interface{}) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("%w: %w", ErrReleasePanic, err)
	}
	return fmt.Errorf("%w: %v", ErrReleasePanic, r)
}

// ReleaseErrors returns the individual release faults contained in err, in the
// order they were raised. Errors that are not release faults are skipped.
func ReleaseErrors(err error) []*ReleaseError {
	if err == nil {
		return nil
	}

	var faults []*ReleaseError
	for _, e := range multierr.Errors(err) {
		var releaseErr *ReleaseError
		if errors.As(e, &releaseErr) {
			faults = append(faults, releaseErr)
		}
	}
	return faults
}
