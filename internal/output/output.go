// Package output writes generated files without ever leaving a partial
// result behind.
package output

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteFile renders into a temporary file next to path and renames it into
// place once render and the close succeed. On any failure path is untouched.
func WriteFile(path string, render func(io.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "creating temporary output")
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err = render(f); err != nil {
		return err
	}
	if err = f.Chmod(0o644); err != nil {
		return errors.Wrap(err, "setting output mode")
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
