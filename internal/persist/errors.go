package persist

import "fmt"

// WriteError is a serialization or store failure during Save.
type WriteError struct {
	Key   string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to save %q: %v", e.Key, e.Cause)
}

func (e *WriteError) Unwrap() error { return e.Cause }

// ReadError is a store or deserialization failure during Load.
type ReadError struct {
	Key   string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to load %q: %v", e.Key, e.Cause)
}

func (e *ReadError) Unwrap() error { return e.Cause }
