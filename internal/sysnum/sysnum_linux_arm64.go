//go:build linux && arm64

package sysnum

// Call numbers for linux/arm64 (generic table; no open or creat here,
// everything goes through openat).
const (
	SYS_FLOCK     uintptr = 32
	SYS_FTRUNCATE uintptr = 46
	SYS_OPENAT    uintptr = 56
	SYS_CLOSE     uintptr = 57
	SYS_LSEEK     uintptr = 62
	SYS_READ      uintptr = 63
	SYS_WRITE     uintptr = 64
	SYS_PREAD64   uintptr = 67
	SYS_PWRITE64  uintptr = 68
	SYS_FSYNC     uintptr = 82
	SYS_FDATASYNC uintptr = 83
	SYS_SYNCFS    uintptr = 267
)
