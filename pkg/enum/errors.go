package enum

import "errors"

// Registration and lookup errors. Call sites wrap these sentinels with the
// set name, the member text, and the offending number; match with errors.Is.
var (
	// ErrDuplicateValue indicates an explicit numeric value is already held
	// by another member of the same set.
	ErrDuplicateValue = errors.New("duplicate value")

	// ErrDuplicateIndex indicates an explicit sort index is already held by
	// another member of the same set.
	ErrDuplicateIndex = errors.New("duplicate index")

	// ErrValueSpaceExhausted indicates automatic value assignment ran past
	// the top of the int32 range.
	ErrValueSpaceExhausted = errors.New("value space exhausted")

	// ErrIndexSpaceExhausted indicates automatic index assignment ran past
	// the top of the int32 range.
	ErrIndexSpaceExhausted = errors.New("index space exhausted")

	// ErrNotFound indicates a strict lookup matched no member.
	ErrNotFound = errors.New("member not found")

	// ErrInvalidArgument indicates malformed registration or lookup input,
	// such as blank text passed to a strict text lookup.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDefaultAlreadySet indicates a second attempt to set a set's default
	// member.
	ErrDefaultAlreadySet = errors.New("default member already set")
)
