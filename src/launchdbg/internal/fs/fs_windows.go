//go:build windows

package fs

import (
	"fmt"
	"os"
)

// Windows has no execute permission bit; any existing regular file is considered runnable.
func executable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
