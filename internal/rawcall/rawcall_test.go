package rawcall_test

import (
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/linuxfd/linuxfd/internal/rawcall"
)

// openRaw opens a path through the layer under test so the arity tests
// stay independent of the os package's fd handling.
func openRaw(t *testing.T, name string, flags int, mode uint32) uintptr {
	t.Helper()
	path := append([]byte(name), 0)
	dirfd := unix.AT_FDCWD
	raw := rawcall.Syscall4(uintptr(unix.SYS_OPENAT), uintptr(dirfd),
		uintptr(unsafe.Pointer(&path[0])), uintptr(flags), uintptr(mode))
	fd, errno := rawcall.Decode(raw)
	require.Zero(t, errno)
	t.Cleanup(func() {
		rawcall.Syscall1(uintptr(unix.SYS_CLOSE), fd)
	})
	return fd
}

func TestSyscall0(t *testing.T) {
	raw := rawcall.Syscall0(uintptr(unix.SYS_GETPID))
	pid, errno := rawcall.Decode(raw)
	require.Zero(t, errno)
	require.Equal(t, os.Getpid(), int(pid))
}

func TestSyscall1(t *testing.T) {
	// close on an invalid descriptor has a deterministic error result.
	raw := rawcall.Syscall1(uintptr(unix.SYS_CLOSE), ^uintptr(0))
	_, errno := rawcall.Decode(raw)
	require.Equal(t, int32(unix.EBADF), errno)
}

func TestSyscall2(t *testing.T) {
	name := filepath.Join(t.TempDir(), "lock")
	fd := openRaw(t, name, unix.O_CREAT|unix.O_RDWR, 0o600)

	raw := rawcall.Syscall2(uintptr(unix.SYS_FLOCK), fd, unix.LOCK_EX)
	_, errno := rawcall.Decode(raw)
	require.Zero(t, errno)

	raw = rawcall.Syscall2(uintptr(unix.SYS_FLOCK), fd, unix.LOCK_UN)
	_, errno = rawcall.Decode(raw)
	require.Zero(t, errno)
}

func TestSyscall3(t *testing.T) {
	name := filepath.Join(t.TempDir(), "w")
	fd := openRaw(t, name, unix.O_CREAT|unix.O_WRONLY, 0o600)

	payload := []byte("distinct bytes")
	raw := rawcall.Syscall3(uintptr(unix.SYS_WRITE), fd,
		uintptr(unsafe.Pointer(&payload[0])), uintptr(len(payload)))
	n, errno := rawcall.Decode(raw)
	require.Zero(t, errno)
	require.Equal(t, len(payload), int(n))

	got, err := os.ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestSyscall4(t *testing.T) {
	name := filepath.Join(t.TempDir(), "o")
	require.NoError(t, os.WriteFile(name, []byte("x"), 0o600))
	// openRaw is itself the four-argument openat.
	fd := openRaw(t, name, unix.O_RDONLY, 0)
	require.NotZero(t, fd)
}

func TestSyscall5(t *testing.T) {
	name := filepath.Join(t.TempDir(), "sized")
	payload := []byte("exactly twenty bytes")
	require.NoError(t, os.WriteFile(name, payload, 0o600))

	path := append([]byte(name), 0)
	dirfd := unix.AT_FDCWD
	var stx unix.Statx_t
	raw := rawcall.Syscall5(uintptr(unix.SYS_STATX), uintptr(dirfd),
		uintptr(unsafe.Pointer(&path[0])), 0, unix.STATX_SIZE,
		uintptr(unsafe.Pointer(&stx)))
	_, errno := rawcall.Decode(raw)
	require.Zero(t, errno)
	require.Equal(t, uint64(len(payload)), stx.Size)
}

func TestSyscall6(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	payload := []byte("copied across descriptors")
	require.NoError(t, os.WriteFile(src, payload, 0o600))

	srcFd := openRaw(t, src, unix.O_RDONLY, 0)
	dstFd := openRaw(t, dst, unix.O_CREAT|unix.O_WRONLY, 0o600)

	raw := rawcall.Syscall6(uintptr(unix.SYS_COPY_FILE_RANGE),
		srcFd, 0, dstFd, 0, uintptr(len(payload)), 0)
	n, errno := rawcall.Decode(raw)
	require.Zero(t, errno)
	require.Equal(t, len(payload), int(n))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestDecode(t *testing.T) {
	maxPositive := ^uintptr(0) >> 1
	tests := []struct {
		name  string
		raw   uintptr
		want  uintptr
		errno int32
	}{
		{"minus one", ^uintptr(0), 0, 1},
		{"minus 4095", ^uintptr(4094), 0, 4095},
		{"minus 4096 is a value", ^uintptr(4095), ^uintptr(4095), 0},
		{"zero", 0, 0, 0},
		{"one", 1, 1, 0},
		{"max positive", maxPositive, maxPositive, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, errno := rawcall.Decode(tc.raw)
			require.Equal(t, tc.errno, errno)
			require.Equal(t, tc.want, got)
		})
	}
}
