package services

import "errors"

var (
	errNilList       = errors.New("list is nil")
	errNilComparator = errors.New("comparator is nil")

	// ErrTokenRevoked: токен отозван через Logout.
	ErrTokenRevoked = errors.New("token revoked")
)
