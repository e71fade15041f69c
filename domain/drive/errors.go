package drive

import "errors"

// Domain errors for drive operations. The graph client maps remote error
// codes onto these so callers can branch with errors.Is.
var (
	// ErrAuthRequired indicates a missing or rejected credential.
	ErrAuthRequired = errors.New("authentication required")

	// ErrNotFound indicates the path does not resolve to a drive item.
	ErrNotFound = errors.New("item not found")

	// ErrConflict indicates the name collides with an existing item.
	ErrConflict = errors.New("name conflict")

	// ErrInvalidRequest indicates the remote service rejected the request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrQuotaExceeded indicates the drive is out of storage quota.
	ErrQuotaExceeded = errors.New("quota exceeded")

	// ErrRetryLater indicates throttling or a transient service failure.
	ErrRetryLater = errors.New("retry later")
)
