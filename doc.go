// Package fsredirect suspends WOW64 file system redirection for a guarded
// region of code.
//
// 64-bit Windows runs 32-bit programs through a compatibility layer called
// Windows-on-Windows (WOW64). One of its features is file system redirection:
// when a 32-bit process opens certain paths, the operating system silently
// hands it an architecture-appropriate file instead. A 32-bit process asking
// for
//
//	C:\Windows\System32\kernel32.dll
//
// actually receives
//
//	C:\Windows\SysWOW64\kernel32.dll
//
// since the 64-bit library under System32 would be useless to it. That is
// usually what you want, until it isn't: tooling that inspects the real
// System32, backs it up, or hashes it gets handles to different files than
// the paths it named.
//
// This package wraps the Wow64DisableWow64FsRedirection family of calls so
// that the window with redirection suspended is scoped and always closed:
//
//	err := fsredirect.Do(func() error {
//		fi, err := os.Stat(`C:\Windows\System32\kernel32.dll`)
//		if err != nil {
//			return err
//		}
//		fmt.Println("real size:", fi.Size()) // the 64-bit binary
//		return nil
//	})
//
// For regions that don't fit in a closure, Disable returns a Guard to be
// released with defer:
//
//	g, err := fsredirect.Disable()
//	if err != nil {
//		return err
//	}
//	defer g.Release()
//
// The suspended state is a property of the calling OS thread, so Disable
// pins the goroutine to its thread and Release unpins it; the pair must run
// on the same goroutine. Guards on different threads are independent.
// Stacking two guards on one thread is not supported: the platform does not
// document what a second disable call does to the first one's restore point.
//
// On hosts without WOW64 the platform decides whether the disable call
// succeeds as a no-op or fails; this package passes that through. On
// non-Windows builds Disable always fails with errors.ErrUnsupported.
package fsredirect
