// Package filex holds small filesystem helpers shared by the client.
package filex

import (
	"fmt"
	"os"
)

// OpenWithSize opens path for reading and returns the handle together with
// the file size. Directories are rejected.
func OpenWithSize(path string) (*os.File, int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, err
	}
	if info.IsDir() {
		return nil, 0, fmt.Errorf("%s is a directory", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	return f, info.Size(), nil
}
