//go:build linux && arm

package linuxfd

import (
	"unsafe"

	"github.com/linuxfd/linuxfd/internal/rawcall"
	"github.com/linuxfd/linuxfd/internal/sysnum"
)

// Positional I/O and truncation on linux/arm: the EABI aligns 64-bit
// call arguments to even/odd register pairs, so the split offset is
// preceded by an unused padding word, low word first.

func preadFd(fd int32, p []byte, offset int64) (int, Errno) {
	raw := rawcall.Syscall6(sysnum.SYS_PREAD64, uintptr(fd),
		uintptr(unsafe.Pointer(unsafe.SliceData(p))), uintptr(len(p)), 0,
		uintptr(uint32(uint64(offset))), uintptr(uint32(uint64(offset)>>32)))
	n, errno := rawcall.Decode(raw)
	if errno != 0 {
		return 0, Errno(errno)
	}
	return int(n), 0
}

func pwriteFd(fd int32, p []byte, offset int64) (int, Errno) {
	raw := rawcall.Syscall6(sysnum.SYS_PWRITE64, uintptr(fd),
		uintptr(unsafe.Pointer(unsafe.SliceData(p))), uintptr(len(p)), 0,
		uintptr(uint32(uint64(offset))), uintptr(uint32(uint64(offset)>>32)))
	n, errno := rawcall.Decode(raw)
	if errno != 0 {
		return 0, Errno(errno)
	}
	return int(n), 0
}

func truncFd(fd int32, size int64) Errno {
	return errnoOnly(rawcall.Syscall4(sysnum.SYS_FTRUNCATE64, uintptr(fd), 0,
		uintptr(uint32(uint64(size))), uintptr(uint32(uint64(size)>>32))))
}
