package conversation

import "errors"

// Error taxonomy surfaced to callers. Every turn either completes and
// persists fully or fails with one of these and leaves no partial
// write.
var (
	// ErrValidation marks a malformed or oversized message, rejected
	// before any state is touched.
	ErrValidation = errors.New("conversation: invalid message")

	// ErrNotFound marks a supplied conversation id that resolves to no
	// live state (unknown or expired).
	ErrNotFound = errors.New("conversation: not found")

	// ErrStoreUnavailable marks a storage timeout or failure. The turn
	// made no state change and can be retried safely.
	ErrStoreUnavailable = errors.New("conversation: store unavailable")

	// ErrConflict marks concurrent-update contention that persisted
	// through the internal retries.
	ErrConflict = errors.New("conversation: concurrent update conflict")
)
