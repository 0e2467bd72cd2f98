package reconciliation

import (
	"fmt"

	"github.com/kchowhan/propvestor-sub002/internal/repository"
)

// ErrNotFound is returned when a referenced reconciliation, payment or bank
// transaction does not exist.
var ErrNotFound = repository.ErrNotFound

// ValidationError reports caller input the service refuses to act on.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
