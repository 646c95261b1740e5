//go:build linux || darwin

package scan

import (
	"io/fs"
	"syscall"
)

// diskUsage reports the actual blocks-on-disk size of a file rather
// than its apparent size, the way `du` does. Sparse files and
// filesystems with large block sizes make this diverge from
// info.Size().
func diskUsage(info fs.FileInfo) uint64 {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return uint64(stat.Blocks) * 512
	}
	return uint64(info.Size())
}
