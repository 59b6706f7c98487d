// Package fileutils provides the file operations used by the command line:
// opening transcript inputs and creating report outputs, with "-" standing
// for stdin and stdout.
package fileutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/voice-expense/internal/logging"
	"fjacquet/voice-expense/internal/models"
)

// StdStream is the path that selects stdin or stdout.
const StdStream = "-"

var log = logging.GetLogger()

// SetLogger sets a custom logger for this package
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, models.PermissionDirectory); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// OpenInput opens a file for reading. An empty path or "-" returns stdin,
// which closing leaves open.
func OpenInput(filePath string) (io.ReadCloser, error) {
	if filePath == "" || filePath == StdStream {
		return io.NopCloser(os.Stdin), nil
	}
	if !FileExists(filePath) {
		return nil, fmt.Errorf("file does not exist: %s", filePath)
	}

	file, err := os.Open(filePath) // #nosec G304 -- path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	log.Debug("Opened input file", logging.Field{Key: logging.FieldInputFile, Value: filePath})
	return file, nil
}

// CreateOutput creates or truncates a file for writing, creating parent
// directories as needed. An empty path or "-" returns stdout, which closing
// leaves open.
func CreateOutput(filePath string) (io.WriteCloser, error) {
	if filePath == "" || filePath == StdStream {
		return nopWriteCloser{os.Stdout}, nil
	}

	if err := EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, models.PermissionReportFile) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	log.Debug("Created output file", logging.Field{Key: logging.FieldOutputFile, Value: filePath})
	return file, nil
}

// ReadAll reads a whole input, stdin included.
func ReadAll(filePath string) ([]byte, error) {
	in, err := OpenInput(filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := in.Close(); cerr != nil {
			log.WithError(cerr).Warn("Failed to close input", logging.Field{Key: logging.FieldInputFile, Value: filePath})
		}
	}()

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
