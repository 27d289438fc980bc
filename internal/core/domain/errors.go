package domain

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidHistory marks failures to read or decode the watch-history file.
	ErrInvalidHistory = errors.New("invalid watch history")
	// ErrProvider marks failures talking to the video metadata provider.
	ErrProvider = errors.New("video provider failure")
	// ErrReport marks failures persisting the merged records.
	ErrReport = errors.New("report failure")
)
