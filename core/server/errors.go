package server

import "errors"

var (
	// ErrServerAlreadyRunning is returned by Start when called twice.
	ErrServerAlreadyRunning = errors.New("server is already running")

	// ErrNoPortAvailable is returned when every candidate port is taken.
	ErrNoPortAvailable = errors.New("no candidate port available")
)
