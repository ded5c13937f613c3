package builder

import "errors"

// Fatal error classes exposed upward. The cmd boundary maps any of these to
// exit status 1; nothing in this package terminates the process.
var (
	ErrToolMissing     = errors.New("required tool not found")
	ErrBuildFailed     = errors.New("build failed")
	ErrTestsFailed     = errors.New("tests failed")
	ErrArtifactMissing = errors.New("binary not found, build may have failed")
)
