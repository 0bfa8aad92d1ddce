package ledger

import "fmt"

// ValidationError reports malformed or missing input. The operation was
// rejected before any persistence attempt.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a trade id with no stored record.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("trade %d not found", e.ID)
}

// StorageError wraps an underlying I/O or transaction failure. The failed
// operation had no effect: the transaction rolled back and prior state is
// unchanged.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
