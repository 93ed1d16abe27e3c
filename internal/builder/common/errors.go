package common

import "fmt"

// ContextCancelError type of event that is generated when run context is closed.
type ContextCancelError struct{}

// Error function returns text of error.
func (e *ContextCancelError) Error() string {
	return "context canceled"
}

// InvalidRequestError is returned for malformed build parameters.
// It is always raised before any output file is created.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid build request: %s", e.Reason)
}

func NewInvalidRequestError(format string, args ...any) error {
	return &InvalidRequestError{Reason: fmt.Sprintf(format, args...)}
}

// IOFailureError wraps a write failure scoped to a single partition.
// Sibling partitions are not affected by it.
type IOFailureError struct {
	Partition int
	Err       error
}

func (e *IOFailureError) Error() string {
	return fmt.Sprintf("partition %d: %s", e.Partition, e.Err.Error())
}

func (e *IOFailureError) Unwrap() error {
	return e.Err
}

func NewIOFailureError(partition int, err error) error {
	return &IOFailureError{Partition: partition, Err: err}
}
