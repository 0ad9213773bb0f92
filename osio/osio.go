//go:build linux

// Package osio adapts linuxfd files to the standard io interfaces and
// the x/sys error vocabulary. It only forwards; the core works without
// it.
package osio

import (
	"io"

	"golang.org/x/sys/unix"

	"github.com/linuxfd/linuxfd"
)

// File forwards io.Reader, io.Writer, io.Seeker and io.Closer to a
// linuxfd.File, translating raw error codes into unix.Errno values.
type File struct {
	f *linuxfd.File
}

var (
	_ io.ReadWriteSeeker = (*File)(nil)
	_ io.Closer          = (*File)(nil)
)

// Wrap adapts an existing file. Ownership stays with the wrapped
// linuxfd.File; closing the wrapper closes it.
func Wrap(f *linuxfd.File) *File {
	return &File{f: f}
}

// Unwrap returns the underlying file.
func (w *File) Unwrap() *linuxfd.File {
	return w.f
}

// Open opens name with raw flag and mode bits, appending the NUL
// terminator the kernel interface requires.
func Open(name string, flags int, mode uint32) (*File, error) {
	f, errno := linuxfd.Open(terminate(name), int32(flags), mode)
	if errno != 0 {
		return nil, unix.Errno(errno)
	}
	return Wrap(f), nil
}

// Create creates or truncates name for writing.
func Create(name string, mode uint32) (*File, error) {
	f, errno := linuxfd.Create(terminate(name), mode)
	if errno != 0 {
		return nil, unix.Errno(errno)
	}
	return Wrap(f), nil
}

func terminate(name string) []byte {
	return append([]byte(name), 0)
}

// Read implements io.Reader: a zero-byte transfer at end of stream
// becomes io.EOF.
func (w *File) Read(p []byte) (int, error) {
	n, errno := w.f.Read(p)
	if errno != 0 {
		return 0, unix.Errno(errno)
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Write implements io.Writer, which requires a non-nil error whenever
// n < len(p). A short kernel write therefore comes back as
// io.ErrShortWrite rather than as a bare short count.
func (w *File) Write(p []byte) (int, error) {
	n, errno := w.f.Write(p)
	if errno != 0 {
		return n, unix.Errno(errno)
	}
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// Seek implements io.Seeker.
func (w *File) Seek(offset int64, whence int) (int64, error) {
	var pos linuxfd.SeekFrom
	switch whence {
	case io.SeekStart:
		pos = linuxfd.SeekStart(uint64(offset))
	case io.SeekCurrent:
		pos = linuxfd.SeekCurrent(offset)
	case io.SeekEnd:
		pos = linuxfd.SeekEnd(offset)
	default:
		return 0, unix.EINVAL
	}
	n, errno := w.f.Seek(pos)
	if errno != 0 {
		return 0, unix.Errno(errno)
	}
	return n, nil
}

// Sync forwards to the filesystem-scoped sync.
func (w *File) Sync() error {
	if errno := w.f.Sync(); errno != 0 {
		return unix.Errno(errno)
	}
	return nil
}

// Close implements io.Closer.
func (w *File) Close() error {
	if errno := w.f.Close(); errno != 0 {
		return unix.Errno(errno)
	}
	return nil
}
