package domain

import "errors"

var (
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrSecretNotFound   = errors.New("secret not found")
	ErrSnapshotNotFound = errors.New("snapshot not found")
)
