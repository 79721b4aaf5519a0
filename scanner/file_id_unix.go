//go:build !windows

package scanner

import (
	"fmt"
	"os"
	"syscall"
)

// getFileID returns a device/inode identity so hardlinked paths can be
// collapsed onto a single underlying file. Empty when the platform data is
// unavailable.
func getFileID(path string, info os.FileInfo) string {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok || stat == nil {
		return ""
	}
	return fmt.Sprintf("dev=%d,inode=%d", stat.Dev, stat.Ino)
}
