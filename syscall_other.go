//go:build !windows

package fsredirect

import "errors"

// WOW64 file system redirection only exists on Windows. These stubs keep
// the package compiling everywhere; Disable reports ErrUnsupported.

func disableRedirection() (uintptr, error) {
	return 0, errors.ErrUnsupported
}

func revertRedirection(uintptr) error {
	return errors.ErrUnsupported
}
