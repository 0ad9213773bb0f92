//go:build linux

// Package billyfs exposes linuxfd files through the go-billy File
// interface, so code written against billy can run on raw descriptors.
// Pure forwarding; the core works without it.
package billyfs

import (
	"io"

	"github.com/go-git/go-billy/v5"
	"golang.org/x/sys/unix"

	"github.com/linuxfd/linuxfd"
)

// File implements billy.File over a linuxfd.File.
type File struct {
	f    *linuxfd.File
	name string
}

var _ billy.File = (*File)(nil)

// OpenFile opens name with raw flag and mode bits and wraps it for
// billy consumers. The NUL terminator is appended here.
func OpenFile(name string, flags int, mode uint32) (*File, error) {
	f, errno := linuxfd.Open(append([]byte(name), 0), int32(flags), mode)
	if errno != 0 {
		return nil, unix.Errno(errno)
	}
	return &File{f: f, name: name}, nil
}

// Name implements billy.File.
func (b *File) Name() string {
	return b.name
}

// Read implements io.Reader.
func (b *File) Read(p []byte) (int, error) {
	n, errno := b.f.Read(p)
	if errno != 0 {
		return 0, unix.Errno(errno)
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

// ReadAt implements io.ReaderAt, which wants either the full slice or a
// reason it stopped, so partial positional reads are looped here.
func (b *File) ReadAt(p []byte, off int64) (int, error) {
	n := 0
	for n < len(p) {
		m, errno := b.f.Pread(p[n:], off+int64(n))
		if errno != 0 {
			return n, unix.Errno(errno)
		}
		if m == 0 {
			return n, io.EOF
		}
		n += m
	}
	return n, nil
}

// Write implements io.Writer.
func (b *File) Write(p []byte) (int, error) {
	n, errno := b.f.Write(p)
	if errno != 0 {
		return n, unix.Errno(errno)
	}
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// Seek implements io.Seeker.
func (b *File) Seek(offset int64, whence int) (int64, error) {
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
	n, errno := b.f.Seek(pos)
	if errno != 0 {
		return 0, unix.Errno(errno)
	}
	return n, nil
}

// Truncate implements billy.File.
func (b *File) Truncate(size int64) error {
	if errno := b.f.Truncate(size); errno != 0 {
		return unix.Errno(errno)
	}
	return nil
}

// Lock implements billy.File with an exclusive advisory flock.
func (b *File) Lock() error {
	if errno := b.f.Flock(unix.LOCK_EX); errno != 0 {
		return unix.Errno(errno)
	}
	return nil
}

// Unlock implements billy.File.
func (b *File) Unlock() error {
	if errno := b.f.Flock(unix.LOCK_UN); errno != 0 {
		return unix.Errno(errno)
	}
	return nil
}

// Close implements io.Closer.
func (b *File) Close() error {
	if errno := b.f.Close(); errno != 0 {
		return unix.Errno(errno)
	}
	return nil
}
