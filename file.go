//go:build linux

// Package linuxfd is a lightweight, dependency-free layer over the Linux
// system calls that operate on file descriptors. It trades the comfort of
// the os package for full control over when kernel calls happen and how
// their raw error codes surface.
//
// # Errors
//
// Every fallible operation returns an Errno, which is zero on success and
// otherwise carries the raw kernel error code unchanged. No retries are
// performed anywhere, including on EINTR; retry policy belongs to the
// caller.
//
// # Ownership
//
// A File owns its descriptor exclusively. Two live Files over the same
// descriptor value have no defined behavior and cannot be detected here;
// Adopt and Release are the only sanctioned ways to move a descriptor
// across that boundary.
package linuxfd

import (
	"runtime"
	"unsafe"

	"github.com/linuxfd/linuxfd/internal/rawcall"
	"github.com/linuxfd/linuxfd/internal/sysnum"
)

// File is an owned Linux file descriptor with byte-stream and seek
// semantics.
//
// If a File becomes unreachable without Close, a finalizer closes the
// descriptor and discards the result. Callers who must observe
// close-time failures, such as deferred write-back errors, call Close
// explicitly.
type File struct {
	fd int32
}

// Adopt constructs a File that assumes ownership of an externally
// obtained descriptor. The caller must guarantee that fd names a valid
// open resource and that no other owner will close or reuse it; neither
// is checked.
func Adopt(fd int32) *File {
	f := &File{fd: fd}
	runtime.SetFinalizer(f, (*File).finalize)
	return f
}

// Open issues openat relative to the current directory with the given
// raw flag and mode bits, passed through uninterpreted.
//
// path must be NUL-terminated by the caller. An unterminated path is
// undefined behavior at the kernel boundary and is not caught here.
func Open(path []byte, flags int32, mode uint32) (*File, Errno) {
	raw := rawcall.Syscall4(sysnum.SYS_OPENAT, sysnum.AtFDCWD,
		uintptr(unsafe.Pointer(unsafe.SliceData(path))), uintptr(flags), uintptr(mode))
	fd, errno := rawcall.Decode(raw)
	if errno != 0 {
		return nil, Errno(errno)
	}
	return Adopt(int32(fd)), 0
}

// Create opens path for writing, creating it if absent and truncating it
// otherwise, with the given raw mode bits. Equivalent to the historical
// creat call, expressed through openat since not every architecture has
// creat.
func Create(path []byte, mode uint32) (*File, Errno) {
	return Open(path, sysnum.O_WRONLY|sysnum.O_CREAT|sysnum.O_TRUNC, mode)
}

// Read transfers up to len(p) bytes into p from the current position and
// advances it by the count transferred. The count may be smaller than
// requested; zero with a non-empty p means end of stream, not an error.
func (f *File) Read(p []byte) (int, Errno) {
	raw := rawcall.Syscall3(sysnum.SYS_READ, uintptr(f.fd),
		uintptr(unsafe.Pointer(unsafe.SliceData(p))), uintptr(len(p)))
	runtime.KeepAlive(f)
	n, errno := rawcall.Decode(raw)
	if errno != 0 {
		return 0, Errno(errno)
	}
	return int(n), 0
}

// Write transfers bytes from p at the current position and advances it
// by the count accepted, which may be less than len(p). Callers needing
// full delivery loop themselves; nothing here retries.
func (f *File) Write(p []byte) (int, Errno) {
	raw := rawcall.Syscall3(sysnum.SYS_WRITE, uintptr(f.fd),
		uintptr(unsafe.Pointer(unsafe.SliceData(p))), uintptr(len(p)))
	runtime.KeepAlive(f)
	n, errno := rawcall.Decode(raw)
	if errno != 0 {
		return 0, Errno(errno)
	}
	return int(n), 0
}

// Pread reads like Read but from the given absolute offset, leaving the
// current position untouched.
func (f *File) Pread(p []byte, offset int64) (int, Errno) {
	n, errno := preadFd(f.fd, p, offset)
	runtime.KeepAlive(f)
	return n, errno
}

// Pwrite writes like Write but at the given absolute offset, leaving the
// current position untouched.
func (f *File) Pwrite(p []byte, offset int64) (int, Errno) {
	n, errno := pwriteFd(f.fd, p, offset)
	runtime.KeepAlive(f)
	return n, errno
}

// Seek repositions the stream and returns the new absolute position,
// 64-bit regardless of the native word width. Architectures whose native
// seek offset is narrower use the _llseek variant; the choice is made at
// build time, never at run time.
func (f *File) Seek(pos SeekFrom) (int64, Errno) {
	n, errno := seekFd(f.fd, pos.offset, pos.whence)
	runtime.KeepAlive(f)
	return n, errno
}

// Sync asks the filesystem that owns this descriptor to commit buffered
// data to stable storage (syncfs). This is filesystem-scoped, not
// descriptor-scoped: it can flush more or less than this file's own
// pending data. Fsync gives the per-file guarantee.
func (f *File) Sync() Errno {
	errno := errnoOnly(rawcall.Syscall1(sysnum.SYS_SYNCFS, uintptr(f.fd)))
	runtime.KeepAlive(f)
	return errno
}

// Fsync commits this file's data and metadata to stable storage.
func (f *File) Fsync() Errno {
	errno := errnoOnly(rawcall.Syscall1(sysnum.SYS_FSYNC, uintptr(f.fd)))
	runtime.KeepAlive(f)
	return errno
}

// Fdatasync commits this file's data, and only the metadata needed to
// read it back, to stable storage.
func (f *File) Fdatasync() Errno {
	errno := errnoOnly(rawcall.Syscall1(sysnum.SYS_FDATASYNC, uintptr(f.fd)))
	runtime.KeepAlive(f)
	return errno
}

// Truncate sets the file's length to size.
func (f *File) Truncate(size int64) Errno {
	errno := truncFd(f.fd, size)
	runtime.KeepAlive(f)
	return errno
}

// Flock applies or removes an advisory lock. op is the raw flock
// operation word, passed through uninterpreted.
func (f *File) Flock(op int32) Errno {
	errno := errnoOnly(rawcall.Syscall2(sysnum.SYS_FLOCK, uintptr(f.fd), uintptr(op)))
	runtime.KeepAlive(f)
	return errno
}

// Close issues the close call exactly once and surfaces its result. The
// File is dead afterwards: the descriptor field is poisoned so any later
// operation reaches the kernel with an invalid descriptor and comes back
// EBADF. The kernel may reuse the descriptor value immediately.
func (f *File) Close() Errno {
	runtime.SetFinalizer(f, nil)
	fd := f.fd
	f.fd = -1
	return closeFd(fd)
}

// Release relinquishes ownership and returns the raw descriptor without
// closing it, for handoff to code outside this package. The File is dead
// afterwards, as with Close.
func (f *File) Release() int32 {
	runtime.SetFinalizer(f, nil)
	fd := f.fd
	f.fd = -1
	return fd
}

// finalize is the implicit-destruction path: the same close call, with
// the result discarded. Close exists for callers who need to see it.
func (f *File) finalize() {
	closeFd(f.fd)
}

func closeFd(fd int32) Errno {
	return errnoOnly(rawcall.Syscall1(sysnum.SYS_CLOSE, uintptr(fd)))
}

// errnoOnly decodes the result of a call whose success value carries no
// information.
func errnoOnly(raw uintptr) Errno {
	_, errno := rawcall.Decode(raw)
	return Errno(errno)
}
