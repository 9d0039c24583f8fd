//go:build !windows

package archive

import (
	"io/fs"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/arthur-debert/emplace/pkg/logging"
)

// normalizeOwnership re-owns every regular file under root to uid 0 /
// gid 0 when the process runs as the superuser. Extracting as root would
// otherwise preserve whatever owner the archive recorded, leaving files
// owned by a uid unrelated to the installing administrator. Directories
// and symlinks are left untouched.
func normalizeOwnership(root string) error {
	if unix.Geteuid() != 0 {
		return nil
	}

	logger := logging.GetLogger("archive")
	logger.Debug().Str("root", root).Msg("normalizing ownership to root")

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return unix.Lchown(path, 0, 0)
	})
}
