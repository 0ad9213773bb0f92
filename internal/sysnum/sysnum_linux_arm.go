//go:build linux && arm

package sysnum

// Call numbers for linux/arm (EABI). Like 386 this is a narrow-offset
// architecture; the EABI additionally pads 64-bit call arguments onto
// even/odd register pairs, which the pread64/pwrite64/ftruncate64 call
// sites account for.
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
	SYS_OPENAT      uintptr = 322
	SYS_SYNCFS      uintptr = 373
)
