package template

import "errors"

// Sentinel errors for the two template build failure modes.
// Callers should use errors.Is() to check for these.
var (
	// ErrAssembly indicates a structural invariant was violated while
	// constructing or serializing the template (bad tag identifier,
	// unbalanced section markers, illegal nesting).
	ErrAssembly = errors.New("template: assembly invariant violated")

	// ErrWrite indicates the assembled template could not be persisted
	// to the target path.
	ErrWrite = errors.New("template: write failed")
)
