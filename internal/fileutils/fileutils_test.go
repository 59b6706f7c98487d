package fileutils_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/voice-expense/internal/fileutils"
	"fjacquet/voice-expense/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogger(t *testing.T) {
	mockLogger := logging.NewMockLogger()
	fileutils.SetLogger(mockLogger)
	fileutils.SetLogger(nil)
	t.Cleanup(func() { fileutils.SetLogger(logging.GetLogger()) })

	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("coffee $3"), 0600))

	in, err := fileutils.OpenInput(path)
	require.NoError(t, err)
	require.NoError(t, in.Close())
	assert.True(t, mockLogger.HasEntry("DEBUG", "Opened input file"), "nil must not replace the logger")
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("test"), 0600))

	assert.True(t, fileutils.FileExists(testFile))
	assert.False(t, fileutils.FileExists(filepath.Join(tmpDir, "nonexistent.txt")))
	assert.False(t, fileutils.FileExists(tmpDir))
}

func TestDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("test"), 0600))

	assert.True(t, fileutils.DirectoryExists(tmpDir))
	assert.False(t, fileutils.DirectoryExists(filepath.Join(tmpDir, "nonexistent")))
	assert.False(t, fileutils.DirectoryExists(testFile))
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, fileutils.EnsureDirectoryExists(dir))
	assert.True(t, fileutils.DirectoryExists(dir))
	// existing directory is fine
	assert.NoError(t, fileutils.EnsureDirectoryExists(dir))
}

func TestOpenInput(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "transcripts.txt")
	require.NoError(t, os.WriteFile(path, []byte("lunch $12\n"), 0600))

	in, err := fileutils.OpenInput(path)
	require.NoError(t, err)
	data, err := io.ReadAll(in)
	require.NoError(t, err)
	require.NoError(t, in.Close())
	assert.Equal(t, "lunch $12\n", string(data))

	_, err = fileutils.OpenInput(filepath.Join(tmpDir, "missing.txt"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "file does not exist")

	for _, p := range []string{"", fileutils.StdStream} {
		stdin, err := fileutils.OpenInput(p)
		require.NoError(t, err)
		assert.NoError(t, stdin.Close())
	}
}

func TestCreateOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "out.csv")

	out, err := fileutils.CreateOutput(path)
	require.NoError(t, err)
	_, err = out.Write([]byte("id,transcript\n"))
	require.NoError(t, err)
	require.NoError(t, out.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id,transcript\n", string(data))

	// truncates on reuse
	out, err = fileutils.CreateOutput(path)
	require.NoError(t, err)
	require.NoError(t, out.Close())
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)

	stdout, err := fileutils.CreateOutput(fileutils.StdStream)
	require.NoError(t, err)
	assert.NoError(t, stdout.Close())
}

func TestReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.txt")
	require.NoError(t, os.WriteFile(path, []byte("taxi 20 bucks"), 0600))

	data, err := fileutils.ReadAll(path)
	require.NoError(t, err)
	assert.Equal(t, "taxi 20 bucks", string(data))

	_, err = fileutils.ReadAll(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
