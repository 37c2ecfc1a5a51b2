package service

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// compareOpts treats nil and empty maps or slices as equal, since JSON
// omitempty makes the two indistinguishable on the wire.
var compareOpts = []cmp.Option{cmpopts.EquateEmpty()}

// IsOutOfSync reports whether local differs from remote field by field. A nil
// remote means the remote copy is missing and is always out of sync.
func IsOutOfSync[D any](local D, remote *D) bool {
	if remote == nil {
		return true
	}
	return !cmp.Equal(local, *remote, compareOpts...)
}

// driftDiff renders the difference between two DTOs for logs.
func driftDiff[D any](want, got D) string {
	return cmp.Diff(want, got, compareOpts...)
}
