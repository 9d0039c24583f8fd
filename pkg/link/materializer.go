package link

import (
	"io/fs"
	"runtime"
	"strings"

	"github.com/arthur-debert/emplace/pkg/errors"
	"github.com/arthur-debert/emplace/pkg/logging"
	"github.com/arthur-debert/emplace/pkg/types"
)

// Materializer places individual files into a target environment.
type Materializer struct {
	fs     types.FS
	linker types.Linker
}

// New creates a Materializer backed by the given filesystem and native
// link capability.
func New(fs types.FS, linker types.Linker) *Materializer {
	return &Materializer{
		fs:     fs,
		linker: linker,
	}
}

// Materialize executes a single link operation.
//
// For LinkTypeDirectory the destination directory (and any missing
// ancestors) is created; an existing directory is treated as success and
// the clobber policy does not apply.
//
// For every other link type an existing destination fails with a CLOBBER
// error unless op.Force is set, in which case the destination is
// recursively deleted first. The existence check uses Lstat, so a
// dangling symlink at the destination counts as existing.
func (m *Materializer) Materialize(op types.LinkOperation) error {
	logger := logging.GetLogger("link")

	if op.LinkType == types.LinkTypeDirectory {
		// A directory is technically not a link, so LinkType is a
		// misnomer here. Naming is hard.
		if err := m.fs.MkdirAll(op.Destination, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", op.Destination)
		}
		return nil
	}

	if _, err := m.fs.Lstat(op.Destination); err == nil {
		if !op.Force {
			return errors.NewClobberError(op.Destination, op.Source, op.LinkType)
		}
		logger.Info().Str("path", op.Destination).Msg("file exists, but clobbering")
		if err := m.fs.RemoveAll(op.Destination); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to remove existing %s", op.Destination)
		}
	}

	switch op.LinkType {
	case types.LinkTypeHardLink:
		if err := m.linker.HardLink(op.Source, op.Destination); err != nil {
			return errors.NewOsLinkError(err, "hard link", op.Source, op.Destination)
		}
	case types.LinkTypeSoftLink:
		if err := m.linker.SymLink(op.Source, op.Destination); err != nil {
			return errors.NewOsLinkError(err, "soft link", op.Source, op.Destination)
		}
	case types.LinkTypeCopy:
		if err := m.copy(op.Source, op.Destination); err != nil {
			return err
		}
	default:
		return errors.NewUnsupportedLinkTypeError(op.LinkType)
	}

	logger.Trace().
		Str("source", op.Source).
		Str("destination", op.Destination).
		Stringer("linkType", op.LinkType).
		Msg("materialized")
	return nil
}

// HardLinkOrCopy creates dst as a hard link to src, falling back to a
// full copy when the link fails. The fallback is logged, not surfaced.
// Symlink sources are refused outright: silently copying one would turn
// "identical inode" into "independent file" behind the caller's back.
func (m *Materializer) HardLinkOrCopy(src, dst string) error {
	logger := logging.GetLogger("link")

	if info, err := m.fs.Lstat(src); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		return errors.Newf(errors.ErrOsLink,
			"cannot hard link a soft link\n  source: %s\n  destination: %s", src, dst).
			WithDetail("source", src).
			WithDetail("destination", dst)
	}

	logger.Trace().Str("source", src).Str("destination", dst).Msg("creating hard link")
	if err := m.linker.HardLink(src, dst); err != nil {
		logger.Info().
			Err(err).
			Str("source", src).
			Str("destination", dst).
			Msg("hard link failed, so copying")
		return m.copyWithMetadata(src, dst)
	}
	return nil
}

// copy implements the copy link type. Relative symlinks inside a package
// tree are recreated as symlinks rather than dereferenced, so the
// relocatable structure of the package survives. Absolute symlinks and
// regular files get a full content-and-metadata copy.
func (m *Materializer) copy(src, dst string) error {
	if runtime.GOOS != "windows" {
		if info, err := m.fs.Lstat(src); err == nil && info.Mode()&fs.ModeSymlink != 0 {
			target, err := m.fs.Readlink(src)
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "failed to read symlink %s", src)
			}
			if !strings.HasPrefix(target, "/") {
				if err := m.fs.Symlink(target, dst); err != nil {
					return errors.NewOsLinkError(err, "symlink copy", src, dst)
				}
				return nil
			}
		}
	}
	return m.copyWithMetadata(src, dst)
}

// copyWithMetadata copies file content plus permission bits and the
// modification time, the shutil.copy2 equivalent.
func (m *Materializer) copyWithMetadata(src, dst string) error {
	info, err := m.fs.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileNotFound, "failed to stat %s", src)
	}

	data, err := m.fs.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", src)
	}
	if err := m.fs.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dst)
	}

	// WriteFile's perm only applies on creation; force the bits in case
	// dst pre-existed with a different mode.
	if err := m.fs.Chmod(dst, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to chmod %s", dst)
	}
	if err := m.fs.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to set times on %s", dst)
	}
	return nil
}
