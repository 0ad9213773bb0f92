//go:build linux && (amd64 || arm64 || riscv64 || 386 || arm)

// Package rawcall transfers control to the Linux kernel for a numbered
// system call with up to six machine-word arguments, and decodes raw
// result words that follow the standard error-return convention.
//
// This layer performs no validation and no interpretation of arguments
// or results: it is transparent to whatever the invoked kernel function
// does, including arbitrary side effects. Which call numbers are valid,
// and what the result word means on success, is entirely the caller's
// concern.
package rawcall

import (
	_ "unsafe" // for go:linkname
)

// syscall6 is the per-architecture kernel entry, implemented in
// sys_linux_GOARCH.s. The register each slot maps to is fixed by the
// architecture's call convention and reproduced exactly there; unused
// trailing slots are passed as zero, which the Linux convention ignores.
func syscall6(num, a1, a2, a3, a4, a5, a6 uintptr) uintptr

//go:linkname entersyscall runtime.entersyscall
func entersyscall()

//go:linkname exitsyscall runtime.exitsyscall
func exitsyscall()

// Syscall0 invokes call number num with no arguments and returns the raw
// result word.
//
// Any of these wrappers may block for as long as the kernel call blocks;
// the runtime is notified around the trap so a blocked call does not
// stall unrelated goroutines.
//
//go:uintptrescapes
func Syscall0(num uintptr) uintptr {
	entersyscall()
	r := syscall6(num, 0, 0, 0, 0, 0, 0)
	exitsyscall()
	return r
}

// Syscall1 invokes call number num with one argument.
//
//go:uintptrescapes
func Syscall1(num, a1 uintptr) uintptr {
	entersyscall()
	r := syscall6(num, a1, 0, 0, 0, 0, 0)
	exitsyscall()
	return r
}

// Syscall2 invokes call number num with two arguments.
//
//go:uintptrescapes
func Syscall2(num, a1, a2 uintptr) uintptr {
	entersyscall()
	r := syscall6(num, a1, a2, 0, 0, 0, 0)
	exitsyscall()
	return r
}

// Syscall3 invokes call number num with three arguments.
//
//go:uintptrescapes
func Syscall3(num, a1, a2, a3 uintptr) uintptr {
	entersyscall()
	r := syscall6(num, a1, a2, a3, 0, 0, 0)
	exitsyscall()
	return r
}

// Syscall4 invokes call number num with four arguments.
//
//go:uintptrescapes
func Syscall4(num, a1, a2, a3, a4 uintptr) uintptr {
	entersyscall()
	r := syscall6(num, a1, a2, a3, a4, 0, 0)
	exitsyscall()
	return r
}

// Syscall5 invokes call number num with five arguments.
//
//go:uintptrescapes
func Syscall5(num, a1, a2, a3, a4, a5 uintptr) uintptr {
	entersyscall()
	r := syscall6(num, a1, a2, a3, a4, a5, 0)
	exitsyscall()
	return r
}

// Syscall6 invokes call number num with six arguments.
//
//go:uintptrescapes
func Syscall6(num, a1, a2, a3, a4, a5, a6 uintptr) uintptr {
	entersyscall()
	r := syscall6(num, a1, a2, a3, a4, a5, a6)
	exitsyscall()
	return r
}

// maxErrno bounds the reserved error window of the standard result
// convention: raw words in [-4095, -1] encode an error.
const maxErrno = 4095

// Decode classifies a raw result word from a call that follows the
// standard error-return convention. It returns the word unchanged with
// errno 0 on success, or 0 with the positive error code when the word,
// read as the native signed width, falls in [-4095, -1].
//
// A small number of kernel calls signal errors differently (out-parameter
// results, always-negative values). Decode must not be applied to those;
// knowing which convention a call number uses is the caller's job.
func Decode(raw uintptr) (uintptr, int32) {
	if raw > ^uintptr(maxErrno) { // raw >= -4095 as the native signed width
		return 0, -int32(raw)
	}
	return raw, 0
}
