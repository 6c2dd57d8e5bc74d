package misc

import (
	"os"

	"github.com/pkg/errors"
)

func IsFileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || os.IsExist(err)
}

// EnsureDir creates dir and its parents when missing.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "Create folder ["+dir+"] failed")
	}
	return nil
}
