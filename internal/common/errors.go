// Package common defines shared constants and sentinel errors used across
// the Konarr client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrNetwork = errors.New("network error")

	// Authentication errors.
	ErrUnauthorized = errors.New("unauthorized")

	// Cache/lookup errors.
	ErrNotFound = errors.New("not found")

	// Upload validation errors. Raised before any network call is made.
	ErrFileTooLarge    = errors.New("file size exceeds the 5MB limit")
	ErrInvalidFileType = errors.New("invalid file type, only .json and .xml files are allowed")
)
