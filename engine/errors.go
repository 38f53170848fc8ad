package engine

import (
	"errors"
	"fmt"

	"github.com/MarcinKacperek/space-ships/core"
)

// ErrInvalidEntity is returned (or carried by an invariant panic) when a handle is null,
// stale, or was never issued by the world
var ErrInvalidEntity = errors.New("invalid entity")

func invalidEntity(e core.Entity) error {
	return fmt.Errorf("%w: %v", ErrInvalidEntity, e)
}
