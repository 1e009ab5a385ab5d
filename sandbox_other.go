//go:build !openbsd

package ftsearch

// Pledge is a no-op on platforms without pledge(2).
func Pledge(promises string) error { return nil }

// Unveil is a no-op on platforms without unveil(2).
func Unveil(path, perms string) error { return nil }
