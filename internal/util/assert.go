// Package assert holds tiny helpers for errors that cannot reasonably
// be handled at the call site.
package assert

import "log"

// Success returns v, aborting the program if err is non-nil. Reserved
// for writes to already-validated outputs.
func Success[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}
