// Package permissions holds the small permission-bit primitives.
package permissions

import (
	"github.com/arthur-debert/emplace/pkg/errors"
	"github.com/arthur-debert/emplace/pkg/types"
)

// MakeExecutable ors the execute bits onto a file's current mode.
func MakeExecutable(fs types.FS, path string) error {
	info, err := fs.Stat(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileNotFound, "failed to stat %s", path)
	}
	if err := fs.Chmod(path, info.Mode().Perm()|0111); err != nil {
		return errors.Wrapf(err, errors.ErrPermission, "failed to make %s executable", path)
	}
	return nil
}
