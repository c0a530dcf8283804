package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDate marks a date string that does not parse under DateLayout.
	ErrMalformedDate = errors.New("malformed date")

	// ErrUnknownGateway marks a gateway identifier outside D0-D4.
	ErrUnknownGateway = errors.New("unknown gateway")

	// ErrDuplicateIdentity marks two entities sharing an ID, or two projects
	// sharing a name where name is the merge key. Caught at load and import time.
	ErrDuplicateIdentity = errors.New("duplicate identity")

	// ErrDerivedActual marks a direct write to an actual date that the rollup
	// engine owns because the entity has children.
	ErrDerivedActual = errors.New("actual date is derived from children")

	// ErrNotFound marks a lookup by name that matched no entity.
	ErrNotFound = errors.New("not found")
)

func errUnknownGateway(s string) error {
	return fmt.Errorf("%w: %q (expected one of D0-D4)", ErrUnknownGateway, s)
}
