package store

import "errors"

var (
	// ErrNotFound is returned when a key doesn't exist or its TTL has passed.
	ErrNotFound = errors.New("arbor: key not found")

	// ErrEmptyKey is returned when an operation is given an empty key.
	ErrEmptyKey = errors.New("arbor: empty key")

	// ErrUnprocessed is returned when DynamoDB keeps rejecting batch items
	// after every retry.
	ErrUnprocessed = errors.New("arbor: batch items left unprocessed")
)
