//go:build linux && (amd64 || arm64 || riscv64)

package linuxfd

import (
	"unsafe"

	"github.com/linuxfd/linuxfd/internal/rawcall"
	"github.com/linuxfd/linuxfd/internal/sysnum"
)

// Positional I/O and truncation on architectures where a 64-bit offset
// fits one argument word.

func preadFd(fd int32, p []byte, offset int64) (int, Errno) {
	raw := rawcall.Syscall4(sysnum.SYS_PREAD64, uintptr(fd),
		uintptr(unsafe.Pointer(unsafe.SliceData(p))), uintptr(len(p)), uintptr(offset))
	n, errno := rawcall.Decode(raw)
	if errno != 0 {
		return 0, Errno(errno)
	}
	return int(n), 0
}

func pwriteFd(fd int32, p []byte, offset int64) (int, Errno) {
	raw := rawcall.Syscall4(sysnum.SYS_PWRITE64, uintptr(fd),
		uintptr(unsafe.Pointer(unsafe.SliceData(p))), uintptr(len(p)), uintptr(offset))
	n, errno := rawcall.Decode(raw)
	if errno != 0 {
		return 0, Errno(errno)
	}
	return int(n), 0
}

func truncFd(fd int32, size int64) Errno {
	return errnoOnly(rawcall.Syscall2(sysnum.SYS_FTRUNCATE, uintptr(fd), uintptr(size)))
}
