package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrObjectNotFound is the sentinel for all not-found errors.
	ErrObjectNotFound = errors.New("object not found")

	// ErrBusinessRule is the sentinel for all business-rule violations.
	ErrBusinessRule = errors.New("business rule violated")

	// ErrStorage is the sentinel for all storage failures.
	ErrStorage = errors.New("storage failure")
)

// ObjectNotFoundError reports that an operation referenced an entity
// identifier that does not resolve in the relevant repository.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping
// the underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s %v", ErrObjectNotFound, e.ParamName, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// BusinessRuleError reports that the referenced entities exist but the
// requested relationship between them is invalid.
type BusinessRuleError struct {
	Rule  string
	Cause error
}

// NewBusinessRuleError creates a BusinessRuleError without a cause.
func NewBusinessRuleError(rule string) *BusinessRuleError {
	return &BusinessRuleError{Rule: rule}
}

// NewBusinessRuleErrorWithCause creates a BusinessRuleError wrapping the
// underlying cause.
func NewBusinessRuleErrorWithCause(rule string, cause error) *BusinessRuleError {
	return &BusinessRuleError{Rule: rule, Cause: cause}
}

func (e *BusinessRuleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrBusinessRule, e.Rule, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrBusinessRule, e.Rule)
}

func (e *BusinessRuleError) Unwrap() error {
	return ErrBusinessRule
}

// StorageError reports that a persistence backend could not complete an
// operation. It is propagated to the caller, never retried.
type StorageError struct {
	Op    string
	Cause error
}

// NewStorageError creates a StorageError without a cause.
func NewStorageError(op string) *StorageError {
	return &StorageError{Op: op}
}

// NewStorageErrorWithCause creates a StorageError wrapping the underlying
// cause.
func NewStorageErrorWithCause(op string, cause error) *StorageError {
	return &StorageError{Op: op, Cause: cause}
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrStorage, e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStorage, e.Op)
}

func (e *StorageError) Unwrap() error {
	return ErrStorage
}
