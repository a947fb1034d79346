package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrStorage indicates the key-value persistence layer failed a read or write
	ErrStorage = errors.New("persistence failure")

	// ErrMalformedData indicates a persisted value could not be decoded
	ErrMalformedData = errors.New("malformed stored data")

	// ErrDownloadFailed indicates the download transport failed or returned a non-200 status
	ErrDownloadFailed = errors.New("download failed")

	// ErrInvalidProfile indicates a profile failed validation
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrNotFound indicates the requested item does not exist
	ErrNotFound = errors.New("not found")
)
