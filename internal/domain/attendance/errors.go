package attendance

import "errors"

var (
	// ErrSessionAlreadyOpen: check-in attempted while an open session
	// exists somewhere. The UI disables the button, but the ledger
	// re-validates against storage.
	ErrSessionAlreadyOpen = errors.New("an open attendance session already exists")

	// ErrNoOpenSession: check-out attempted with nothing to close.
	ErrNoOpenSession = errors.New("no open attendance session found")

	// ErrSessionNotFound: an indexed update addressed a slot that does
	// not exist in the store.
	ErrSessionNotFound = errors.New("attendance session not found")
)
