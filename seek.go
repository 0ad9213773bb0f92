//go:build linux

package linuxfd

// Seek origin codes shared by lseek and _llseek.
const (
	seekSet uintptr = 0
	seekCur uintptr = 1
	seekEnd uintptr = 2
)

// SeekFrom names the reference point and offset for File.Seek. Build one
// with SeekStart, SeekEnd or SeekCurrent.
type SeekFrom struct {
	whence uintptr
	offset int64
}

// SeekStart seeks to an absolute offset from the beginning of the file.
func SeekStart(offset uint64) SeekFrom {
	return SeekFrom{whence: seekSet, offset: int64(offset)}
}

// SeekEnd seeks relative to the end of the file; offset is usually zero
// or negative.
func SeekEnd(offset int64) SeekFrom {
	return SeekFrom{whence: seekEnd, offset: offset}
}

// SeekCurrent seeks relative to the current position. SeekCurrent(0)
// reads the position without moving it.
func SeekCurrent(offset int64) SeekFrom {
	return SeekFrom{whence: seekCur, offset: offset}
}
