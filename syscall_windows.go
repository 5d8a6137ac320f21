//go:build windows

package fsredirect

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procWow64DisableWow64FsRedirection = modkernel32.NewProc("Wow64DisableWow64FsRedirection")
	procWow64RevertWow64FsRedirection  = modkernel32.NewProc("Wow64RevertWow64FsRedirection")
)

// disableRedirection calls Wow64DisableWow64FsRedirection and returns the
// old-state value the platform hands back. The value is meaningful only to
// revertRedirection. Find is checked first so a kernel32 without the export
// surfaces the loader's error instead of panicking inside Call.
func disableRedirection() (uintptr, error) {
	if err := procWow64DisableWow64FsRedirection.Find(); err != nil {
		return 0, err
	}
	var old uintptr
	r1, _, errno := procWow64DisableWow64FsRedirection.Call(uintptr(unsafe.Pointer(&old)))
	if r1 == 0 {
		return 0, errno
	}
	return old, nil
}

// revertRedirection passes a value from disableRedirection back to
// Wow64RevertWow64FsRedirection.
func revertRedirection(token uintptr) error {
	if err := procWow64RevertWow64FsRedirection.Find(); err != nil {
		return err
	}
	r1, _, errno := procWow64RevertWow64FsRedirection.Call(token)
	if r1 == 0 {
		return errno
	}
	return nil
}
