package registry

import "errors"

var (
	// ErrNilPayload indicates New was called with a nil payload map.
	ErrNilPayload = errors.New("registry: payload must be non-nil")
	// ErrNilRecord indicates Append was called with a nil record.
	ErrNilRecord = errors.New("registry: record must be non-nil")
	// ErrDuplicateID indicates the store already holds a record with the
	// same id; the store is append-only and never overwrites.
	ErrDuplicateID = errors.New("registry: duplicate record id")
)
