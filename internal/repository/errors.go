// Package repository holds the sentinel errors shared by every data
// source. The source interfaces themselves live with their domain
// packages (project.Source, document.Source); both the remote API
// client and the local demo store implement them and translate their
// own failures onto these sentinels so callers can errors.Is without
// knowing which side answered.
package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist in
	// the answering source.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
)
