package store

import "fmt"

// StorageError reports a fatal persistence failure: the backing file exists
// but cannot be read or parsed, or a write failed. Callers must abort the
// invocation; the document may not be usable.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error on %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// InvalidOperationError reports a business-rule violation detected during a
// single operation: unknown label, duplicate label, session not found, and
// so on. The operation has not changed the document; the process need not
// abort.
type InvalidOperationError struct {
	Reason string
}

func (e *InvalidOperationError) Error() string { return e.Reason }

func invalidf(format string, args ...any) error {
	return &InvalidOperationError{Reason: fmt.Sprintf(format, args...)}
}
