package fsredirect

import (
	"runtime"
	"sync/atomic"

	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

// Error wraps every failure to suspend file system redirection.
var Error = errs.Class("fsredirect")

// The two platform entry points sit behind variables so that tests can run
// the guard against a fake platform on any OS. The real bindings are in
// syscall_windows.go; everywhere else they report ErrUnsupported.
var (
	suspendFsRedirection = disableRedirection
	restoreFsRedirection = revertRedirection
)

// Guard owns the opaque redirection state captured when file system
// redirection was suspended. It must be Released, from the goroutine that
// called Disable; only the first Release restores anything.
type Guard struct {
	token    uintptr
	released atomic.Bool
}

// Disable suspends WOW64 file system redirection for the calling thread and
// returns a Guard that restores it. The calling goroutine is pinned to its
// OS thread until Release, since the suspended state belongs to the thread
// and goroutines migrate.
//
// On failure the platform diagnostic is returned, the thread is unpinned,
// and no Guard exists; there is nothing to release. Calling Disable again
// before releasing an earlier Guard on the same thread has no defined
// platform behavior and is unsupported.
func Disable() (*Guard, error) {
	runtime.LockOSThread()
	token, err := suspendFsRedirection()
	if err != nil {
		runtime.UnlockOSThread()
		return nil, Error.Wrap(err)
	}
	return &Guard{token: token}, nil
}

// Release restores the redirection state captured by Disable and unpins the
// goroutine. Calls after the first do nothing. A failed restore is reported
// through the package logger rather than returned: Release typically runs
// in a defer, where a competing error would mask whatever made the guarded
// region exit.
func (g *Guard) Release() {
	if !g.released.CompareAndSwap(false, true) {
		return
	}
	err := restoreFsRedirection(g.token)
	runtime.UnlockOSThread()
	if err != nil {
		logger.Load().Error("revert of file system redirection failed", zap.Error(err))
	}
}

// Do runs fn with file system redirection suspended, restoring it on every
// way out including a panic. The error from fn, or from suspending, comes
// back unchanged.
func Do(fn func() error) error {
	g, err := Disable()
	if err != nil {
		return err
	}
	defer g.Release()
	return fn()
}
