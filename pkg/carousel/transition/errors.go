package transition

import (
	"errors"
	"fmt"
)

// ErrInvalidScreenIndex indicates a switch request for a screen that does not exist.
var ErrInvalidScreenIndex = errors.New("invalid screen index")

// InvalidScreenIndexError carries the rejected index and the number of screens.
// It matches ErrInvalidScreenIndex with errors.Is.
type InvalidScreenIndexError struct {
	Index int
	Count int
}

func (e *InvalidScreenIndexError) Error() string {
	return fmt.Sprintf("transition: %v: %d (have %d screens)", ErrInvalidScreenIndex, e.Index, e.Count)
}

func (e *InvalidScreenIndexError) Is(target error) bool {
	return target == ErrInvalidScreenIndex
}

func checkIndex(index, count int) error {
	if index < 0 || index >= count {
		return &InvalidScreenIndexError{Index: index, Count: count}
	}
	return nil
}
