package store

import "errors"

var (
	// ErrCapacityExceeded is returned when creating a rule in a full store.
	ErrCapacityExceeded = errors.New("rule store is full")
	// ErrNotFound is returned when the requested rule id does not exist.
	ErrNotFound = errors.New("rule not found")
	// ErrLockTimeout is returned when the store could not be locked before the context expired.
	ErrLockTimeout = errors.New("timed out waiting for rule store")
	// ErrNoDocument is returned by a Backend when no rules have been stored yet.
	ErrNoDocument = errors.New("no stored rules")
	// ErrCorruptDocument is returned when the stored rules can't be decoded.
	ErrCorruptDocument = errors.New("stored rules are corrupt")
)
