package billyfs_test

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/linuxfd/linuxfd/billyfs"
)

func create(t *testing.T, name string) *billyfs.File {
	t.Helper()
	f, err := billyfs.OpenFile(name, unix.O_CREAT|unix.O_RDWR, 0o600)
	require.NoError(t, err)
	return f
}

func TestBillyFileContract(t *testing.T) {
	name := filepath.Join(t.TempDir(), "billy")
	var f billy.File = create(t, name)
	defer f.Close()

	require.Equal(t, name, f.Name())

	payload := []byte("speaks the billy interface")
	n, err := f.Write(payload)
	require.NoError(t, err)
	require.Equal(t, len(payload), n)

	pos, err := f.Seek(0, io.SeekStart)
	require.NoError(t, err)
	require.Zero(t, pos)
	got, err := io.ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestReadAt(t *testing.T) {
	name := filepath.Join(t.TempDir(), "readat")
	f := create(t, name)
	defer f.Close()

	_, err := f.Write([]byte("0123456789"))
	require.NoError(t, err)

	buf := make([]byte, 4)
	n, err := f.ReadAt(buf, 3)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []byte("3456"), buf)

	// Reading past the end returns what exists plus io.EOF.
	n, err = f.ReadAt(buf, 8)
	require.Equal(t, io.EOF, err)
	require.Equal(t, 2, n)
	require.Equal(t, []byte("89"), buf[:n])
}

func TestTruncate(t *testing.T) {
	name := filepath.Join(t.TempDir(), "trunc")
	f := create(t, name)
	defer f.Close()

	_, err := f.Write([]byte("0123456789"))
	require.NoError(t, err)
	require.NoError(t, f.Truncate(3))

	buf := make([]byte, 10)
	n, err := f.ReadAt(buf, 0)
	require.Equal(t, io.EOF, err)
	require.Equal(t, []byte("012"), buf[:n])
}

func TestLockUnlock(t *testing.T) {
	name := filepath.Join(t.TempDir(), "lock")
	f := create(t, name)
	defer f.Close()

	require.NoError(t, f.Lock())
	require.NoError(t, f.Unlock())

	// The lock is free again; a second open file description can take it.
	g, err := billyfs.OpenFile(name, unix.O_RDONLY, 0)
	require.NoError(t, err)
	defer g.Close()
	require.NoError(t, g.Lock())
	require.NoError(t, g.Unlock())
}
