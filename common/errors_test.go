package common

import (
	"errors"
	"testing"

	"go.uber.org/multierr"
)

func TestNewRegistryError(t *testing.T) {
	message := "test error message"
	errorType := ErrTypeValidation
	cause := errors.New("underlying error")

	err := NewRegistryError(message, errorType, cause)

	if err == nil {
		t.Fatal("NewRegistryError returned nil")
	}

	if err.Message != message {
		t.Errorf("Expected message '%s', got '%s'", message, err.Message)
	}

	if err.Type != errorType {
		t.Errorf("Expected type '%s', got '%s'", errorType, err.Type)
	}

	if !errors.Is(err, cause) {
		t.Error("Expected error to unwrap to its cause")
	}
}

func TestRegistryErrorError(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		errorType   string
		cause       error
		expectedStr string
	}{
		{
			name:        "without cause",
			message:     "cannot register handle",
			errorType:   ErrTypeValidation,
			cause:       nil,
			expectedStr: "HandleValidationError: cannot register handle",
		},
		{
			name:        "with cause",
			message:     "cannot register handle",
			errorType:   ErrTypeValidation,
			cause:       ErrNilHandle,
			expectedStr: "HandleValidationError: cannot register handle (caused by: handle must not be nil)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegistryError(tt.message, tt.errorType, tt.cause)
			if err.Error() != tt.expectedStr {
				t.Errorf("Expected error string '%s', got '%s'", tt.expectedStr, err.Error())
			}
		})
	}
}

func TestReleaseErrorError(t *testing.T) {
	err := &ReleaseError{Registry: "panel", Index: 2, Err: errors.New("stream reset")}

	expected := "HandleReleaseError: registry panel: handle #2: stream reset"
	if err.Error() != expected {
		t.Errorf("Expected error string '%s', got '%s'", expected, err.Error())
	}
}

func TestReleaseErrors(t *testing.T) {
	first := &ReleaseError{Registry: "r", Index: 0, Err: errors.New("a")}
	second := &ReleaseError{Registry: "r", Index: 3, Err: errors.New("b")}
	combined := multierr.Combine(first, errors.New("unrelated"), second)

	faults := ReleaseErrors(combined)
	if len(faults) != 2 {
		t.Fatalf("Expected 2 release faults, got %d", len(faults))
	}
	if faults[0] != first || faults[1] != second {
		t.Error("Expected release faults in the order they were combined")
	}

	if ReleaseErrors(nil) != nil {
		t.Error("Expected nil faults for a nil error")
	}
}

func TestNewPanicError(t *testing.T) {
	cause := errors.New("send on closed channel")

	err := newPanicError(cause)
	if !errors.Is(err, ErrReleasePanic) || !errors.Is(err, cause) {
		t.Errorf("Expected panic error to wrap both sentinel and cause, got: %v", err)
	}

	err = newPanicError(42)
	if err.Error() != "release panicked: 42" {
		t.Errorf("Unexpected panic error message: %s", err.Error())
	}
}
