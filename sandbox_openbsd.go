//go:build openbsd

// OpenBSD privilege reduction. The query tool drops to "stdio" once the
// database is mapped; the builder keeps only filesystem promises.
package ftsearch

import "golang.org/x/sys/unix"

// Pledge restricts the process to the given promises.
func Pledge(promises string) error {
	return unix.PledgePromises(promises)
}

// Unveil limits filesystem visibility to path with perms.
func Unveil(path, perms string) error {
	return unix.Unveil(path, perms)
}
