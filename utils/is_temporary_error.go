package utils

import "errors"

// IsTemporaryErr reports whether a failed request is worth retrying.
// Errors exposing Temporary() get the final say; everything else is
// treated as a transient network-level issue.
func IsTemporaryErr(err error) bool {
	var netErr interface{ Temporary() bool }
	if errors.As(err, &netErr) {
		return netErr.Temporary()
	}
	return true
}
