package services

import "errors"

var (
	// ErrNotFound means the target id does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrNotAuthorized is returned for owner-only mutations. It is
	// deliberately generic so non-owners cannot probe whether an
	// entity exists.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrSelfFollow rejects a user following themselves.
	ErrSelfFollow = errors.New("you cannot follow yourself")

	// ErrProviderFailure is the generic message surfaced when every AI
	// provider fails. The underlying cause is logged, not returned.
	ErrProviderFailure = errors.New("generation failed")
)
