package launcher

import "errors"

// Every failure that aborts a launch wraps exactly one of these.
var (
	ErrRuntimeNotFound      = errors.New("runtime not found")
	ErrConfigurationInvalid = errors.New("configuration invalid")
	ErrPortOutOfRange       = errors.New("port out of range")
	ErrSpawnFailure         = errors.New("failed to run server")
)

// ErrInterrupted is returned by a Runner when the user interrupted the child.
// The launcher treats it as a normal way to finish.
var ErrInterrupted = errors.New("interrupted by user")
