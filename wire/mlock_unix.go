//go:build linux || darwin || freebsd || netbsd || openbsd

package wire

import "golang.org/x/sys/unix"

// mlock pins b against swap, best-effort. Failure (e.g. RLIMIT_MEMLOCK) is
// not fatal: the secret is still zeroed on Wipe, it just may have touched
// swap in the meantime. This reflects the stance that secure
// memory handling degrades gracefully outside of strict/FIPS deployments
// (node/keymgr.go's strict-vs-fallback split).
func mlock(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	return unix.Mlock(b) == nil
}

func munlock(b []byte) {
	if len(b) == 0 {
		return
	}
	_ = unix.Munlock(b)
}
