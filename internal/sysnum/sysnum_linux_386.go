//go:build linux && 386

package sysnum

// Call numbers for linux/386. The native lseek offset is 32 bits wide
// here, so 64-bit seeks go through _llseek and truncation through
// ftruncate64.
const (
	SYS_READ        uintptr = 3
	SYS_WRITE       uintptr = 4
	SYS_CLOSE       uintptr = 6
	SYS_FSYNC       uintptr = 118
	SYS__LLSEEK     uintptr = 140
	SYS_FLOCK       uintptr = 143
	SYS_FDATASYNC   uintptr = 148
	SYS_PREAD64     uintptr = 180
	SYS_PWRITE64    uintptr = 181
	SYS_FTRUNCATE64 uintptr = 194
	SYS_OPENAT      uintptr = 295
	SYS_SYNCFS      uintptr = 344
)
