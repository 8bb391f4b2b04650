// Package common defines shared sentinel errors and small helpers used across
// the JobHunt stores, repositories and CLI. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Input rejected before any state change.
	ErrorValidation = errors.New("validation error")

	// Account errors.
	ErrDuplicateIdentifier = errors.New("an account with this identifier already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials, please try again")

	// Session token errors.
	ErrInvalidToken = errors.New("invalid token")
)
