//go:build linux && (386 || arm)

package linuxfd

import (
	"unsafe"

	"github.com/linuxfd/linuxfd/internal/rawcall"
	"github.com/linuxfd/linuxfd/internal/sysnum"
)

// Narrow-offset realization of the seek contract: the native lseek
// offset is only 32 bits here, so seeking goes through _llseek, which
// takes the offset split into high and low words and writes the
// resulting 64-bit position through an out-parameter. The return slot
// carries only the status.
func seekFd(fd int32, offset int64, whence uintptr) (int64, Errno) {
	var result int64
	raw := rawcall.Syscall5(sysnum.SYS__LLSEEK, uintptr(fd),
		uintptr(uint32(uint64(offset)>>32)), uintptr(uint32(uint64(offset))),
		uintptr(unsafe.Pointer(&result)), whence)
	if _, errno := rawcall.Decode(raw); errno != 0 {
		return 0, Errno(errno)
	}
	return result, 0
}
