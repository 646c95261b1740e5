//go:build !linux && !darwin

package scan

import "io/fs"

// diskUsage falls back to apparent size on platforms without a
// syscall.Stat_t block count.
func diskUsage(info fs.FileInfo) uint64 {
	return uint64(info.Size())
}
