package service

import (
	"errors"
	"fmt"

	"github.com/nasrallahilyass/Personal-Diary-APP/internal/repository"
)

var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid")
)

// fromRepository maps store errors onto service errors. The store error
// stays in the chain so callers can still inspect it with errors.As.
func fromRepository(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrInvalidKey):
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	case errors.Is(err, repository.ErrNotFound):
		var corrupt *repository.CorruptRecordError
		if errors.As(err, &corrupt) {
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return ErrNotFound
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
