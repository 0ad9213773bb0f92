//go:build linux && amd64

package sysnum

// Call numbers for linux/amd64.
const (
	SYS_READ      uintptr = 0
	SYS_WRITE     uintptr = 1
	SYS_CLOSE     uintptr = 3
	SYS_LSEEK     uintptr = 8
	SYS_PREAD64   uintptr = 17
	SYS_PWRITE64  uintptr = 18
	SYS_FLOCK     uintptr = 73
	SYS_FSYNC     uintptr = 74
	SYS_FDATASYNC uintptr = 75
	SYS_FTRUNCATE uintptr = 77
	SYS_OPENAT    uintptr = 257
	SYS_SYNCFS    uintptr = 306
)
