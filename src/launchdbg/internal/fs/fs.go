package fs

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"go.uber.org/fx"
)

// FirstLineLimit bounds how much of a file FirstLine reads. Longer lines are truncated.
const FirstLineLimit = 256

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// LaunchFS wraps the filesystem operations used while resolving launch descriptions.
type LaunchFS interface {
	FileExists(path string) (bool, error)
	// Readable returns an error if the file cannot be opened for reading.
	Readable(path string) error
	// Executable returns an error if the file cannot be executed by the current user.
	Executable(path string) error
	// FirstLine returns the first line of a file without its line terminator. At most FirstLineLimit bytes are read.
	FirstLine(path string) (string, error)
	MkdirAll(path string) error
	WriteFile(name string, data []byte) error
	TempFile(dir, pattern string) (*os.File, error)
	Remove(name string) error
}

type fsImpl struct{}

// New creates a new LaunchFS.
func New() LaunchFS {
	return fsImpl{}
}

func (fsImpl) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// Readable opens and immediately closes the file.
func (fsImpl) Readable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}

func (fsImpl) Executable(path string) error {
	return executable(path)
}

func (fsImpl) FirstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	line, err := bufio.NewReader(io.LimitReader(f, FirstLineLimit)).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// MkdirAll creates a directory and all its parents.
func (fsImpl) MkdirAll(path string) error { return os.MkdirAll(path, os.ModePerm) }

func (fsImpl) WriteFile(name string, data []byte) error {
	return os.WriteFile(name, data, 0644)
}

func (fsImpl) TempFile(dir, pattern string) (*os.File, error) {
	return os.CreateTemp(dir, pattern)
}

func (fsImpl) Remove(name string) error {
	return os.Remove(name)
}
