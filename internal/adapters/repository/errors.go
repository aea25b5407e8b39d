package repository

import "errors"

// Sentinel kinds for record store errors.
var (
	ErrNotFound = errors.New("client not found")
	ErrStore    = errors.New("record store failure")
)
