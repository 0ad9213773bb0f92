//go:build linux

// Package sysnum holds the per-architecture system call numbers and the
// few flag bits the core needs. Only the numeric values matter here;
// symbolic meaning for error codes and the full flag vocabulary are the
// caller's concern.
package sysnum

// AtFDCWD is the openat dirfd meaning "relative to the current working
// directory", -100 sign-extended to the native word.
const AtFDCWD = ^uintptr(99)

// Flag bits used by Create. Identical on every supported architecture.
const (
	O_WRONLY = 0x1
	O_CREAT  = 0x40
	O_TRUNC  = 0x200
)
