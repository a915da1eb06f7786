package repository

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("entry not found")
	ErrInvalidKey = errors.New("invalid entry key")
)

// CorruptRecordError is returned when a record file exists but cannot be decoded.
// It matches ErrNotFound so single-entry lookups treat it as a missing entry.
type CorruptRecordError struct {
	Path string
	Err  error
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("corrupt record %s: %v", e.Path, e.Err)
}

func (e *CorruptRecordError) Unwrap() error {
	return e.Err
}

func (e *CorruptRecordError) Is(target error) bool {
	return target == ErrNotFound
}
