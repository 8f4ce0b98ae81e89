package gamedata

import (
	"errors"
	"fmt"
)

var (
	// ErrDataUnavailable means the definition source could not be read or parsed.
	ErrDataUnavailable = errors.New("definition data unavailable")

	// ErrDefinitionNotFound means no record matches the requested identity.
	ErrDefinitionNotFound = errors.New("definition not found")
)

// LookupError reports a failed lookup for one identity.
// It unwraps to ErrDataUnavailable or ErrDefinitionNotFound.
type LookupError struct {
	Identity string
	Err      error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup %q: %v", e.Identity, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
