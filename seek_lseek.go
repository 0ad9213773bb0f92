//go:build linux && (amd64 || arm64 || riscv64)

package linuxfd

import (
	"github.com/linuxfd/linuxfd/internal/rawcall"
	"github.com/linuxfd/linuxfd/internal/sysnum"
)

// Wide-offset realization of the seek contract: the native lseek offset
// is already 64 bits, so the new position comes back in the return slot.
func seekFd(fd int32, offset int64, whence uintptr) (int64, Errno) {
	raw := rawcall.Syscall3(sysnum.SYS_LSEEK, uintptr(fd), uintptr(offset), whence)
	pos, errno := rawcall.Decode(raw)
	if errno != 0 {
		return 0, Errno(errno)
	}
	return int64(pos), 0
}
