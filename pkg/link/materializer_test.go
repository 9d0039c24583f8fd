// pkg/link/materializer_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (ALLOWED for link package)
// PURPOSE: Test link materialization, clobber policy, and fallback behavior

package link_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/emplace/pkg/errors"
	"github.com/arthur-debert/emplace/pkg/filesystem"
	"github.com/arthur-debert/emplace/pkg/link"
	"github.com/arthur-debert/emplace/pkg/types"
)

// brokenLinker simulates native hard link failure, e.g. a destination on
// a different volume.
type brokenLinker struct{}

func (brokenLinker) HardLink(src, dst string) error {
	return fmt.Errorf("link %s %s: invalid cross-device link", src, dst)
}

func (brokenLinker) SymLink(src, dst string) error {
	return fmt.Errorf("symlink %s %s: operation not supported", src, dst)
}

func newMaterializer() *link.Materializer {
	return link.New(filesystem.NewOS(), link.NewNativeLinker())
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestMaterialize_LinkTypes(t *testing.T) {
	tests := []struct {
		name     string
		linkType types.LinkType
		validate func(t *testing.T, src, dst string)
	}{
		{
			name:     "hardlink_shares_inode",
			linkType: types.LinkTypeHardLink,
			validate: func(t *testing.T, src, dst string) {
				srcInfo, err := os.Stat(src)
				require.NoError(t, err)
				dstInfo, err := os.Stat(dst)
				require.NoError(t, err)
				assert.True(t, os.SameFile(srcInfo, dstInfo), "hard link should share the inode")
			},
		},
		{
			name:     "softlink_points_at_source",
			linkType: types.LinkTypeSoftLink,
			validate: func(t *testing.T, src, dst string) {
				target, err := os.Readlink(dst)
				require.NoError(t, err)
				assert.Equal(t, src, target)
			},
		},
		{
			name:     "copy_is_independent_file",
			linkType: types.LinkTypeCopy,
			validate: func(t *testing.T, src, dst string) {
				dstInfo, err := os.Lstat(dst)
				require.NoError(t, err)
				assert.True(t, dstInfo.Mode().IsRegular())

				content, err := os.ReadFile(dst)
				require.NoError(t, err)
				assert.Equal(t, "payload", string(content))

				srcInfo, err := os.Stat(src)
				require.NoError(t, err)
				assert.False(t, os.SameFile(srcInfo, dstInfo), "copy should not share the inode")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			src := writeSource(t, tempDir, "source.txt", "payload")
			dst := filepath.Join(tempDir, "dest.txt")

			m := newMaterializer()
			require.NoError(t, m.Materialize(types.LinkOperation{
				Source:      src,
				Destination: dst,
				LinkType:    tt.linkType,
			}))
			tt.validate(t, src, dst)
		})
	}
}

func TestMaterialize_Directory(t *testing.T) {
	tempDir := t.TempDir()
	dst := filepath.Join(tempDir, "env", "bin", "deep")

	m := newMaterializer()
	require.NoError(t, m.Materialize(types.LinkOperation{
		Destination: dst,
		LinkType:    types.LinkTypeDirectory,
	}))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent: an existing directory is success, force not required.
	require.NoError(t, m.Materialize(types.LinkOperation{
		Destination: dst,
		LinkType:    types.LinkTypeDirectory,
	}))
}

func TestMaterialize_ClobberPolicy(t *testing.T) {
	linkTypes := []types.LinkType{
		types.LinkTypeHardLink,
		types.LinkTypeSoftLink,
		types.LinkTypeCopy,
	}

	for _, lt := range linkTypes {
		t.Run(lt.String()+"_without_force_fails", func(t *testing.T) {
			tempDir := t.TempDir()
			src := writeSource(t, tempDir, "source.txt", "new content")
			dst := writeSource(t, tempDir, "dest.txt", "original content")

			m := newMaterializer()
			err := m.Materialize(types.LinkOperation{
				Source:      src,
				Destination: dst,
				LinkType:    lt,
			})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrClobber))

			// Destination must be untouched.
			content, readErr := os.ReadFile(dst)
			require.NoError(t, readErr)
			assert.Equal(t, "original content", string(content))
		})

		t.Run(lt.String()+"_with_force_replaces", func(t *testing.T) {
			tempDir := t.TempDir()
			src := writeSource(t, tempDir, "source.txt", "new content")
			dst := writeSource(t, tempDir, "dest.txt", "original content")

			m := newMaterializer()
			require.NoError(t, m.Materialize(types.LinkOperation{
				Source:      src,
				Destination: dst,
				LinkType:    lt,
				Force:       true,
			}))

			content, err := os.ReadFile(dst)
			require.NoError(t, err)
			assert.Equal(t, "new content", string(content))
		})
	}
}

func TestMaterialize_DanglingSymlinkCountsAsExisting(t *testing.T) {
	tempDir := t.TempDir()
	src := writeSource(t, tempDir, "source.txt", "payload")
	dst := filepath.Join(tempDir, "dest.txt")
	require.NoError(t, os.Symlink(filepath.Join(tempDir, "gone"), dst))

	m := newMaterializer()
	err := m.Materialize(types.LinkOperation{
		Source:      src,
		Destination: dst,
		LinkType:    types.LinkTypeCopy,
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrClobber),
		"a dangling symlink at the destination is still a clobber")
}

func TestMaterialize_CopyPreservesRelativeSymlink(t *testing.T) {
	tempDir := t.TempDir()
	writeSource(t, tempDir, "real.txt", "payload")
	src := filepath.Join(tempDir, "source-link")
	require.NoError(t, os.Symlink("real.txt", src))
	dst := filepath.Join(tempDir, "dest-link")

	m := newMaterializer()
	require.NoError(t, m.Materialize(types.LinkOperation{
		Source:      src,
		Destination: dst,
		LinkType:    types.LinkTypeCopy,
	}))

	target, err := os.Readlink(dst)
	require.NoError(t, err)
	assert.Equal(t, "real.txt", target, "relative symlink should be recreated, not dereferenced")
}

func TestMaterialize_CopyDereferencesAbsoluteSymlink(t *testing.T) {
	tempDir := t.TempDir()
	real := writeSource(t, tempDir, "real.txt", "payload")
	src := filepath.Join(tempDir, "source-link")
	require.NoError(t, os.Symlink(real, src))
	dst := filepath.Join(tempDir, "dest.txt")

	m := newMaterializer()
	require.NoError(t, m.Materialize(types.LinkOperation{
		Source:      src,
		Destination: dst,
		LinkType:    types.LinkTypeCopy,
	}))

	info, err := os.Lstat(dst)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular(), "absolute symlink should be copied as content")

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))
}

func TestMaterialize_UnsupportedLinkType(t *testing.T) {
	tempDir := t.TempDir()
	src := writeSource(t, tempDir, "source.txt", "payload")

	m := newMaterializer()
	err := m.Materialize(types.LinkOperation{
		Source:      src,
		Destination: filepath.Join(tempDir, "dest.txt"),
		LinkType:    types.LinkType(42),
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLinkType))
}

func TestMaterialize_HardLinkFailureSurfaces(t *testing.T) {
	tempDir := t.TempDir()
	src := writeSource(t, tempDir, "source.txt", "payload")
	dst := filepath.Join(tempDir, "dest.txt")

	m := link.New(filesystem.NewOS(), brokenLinker{})
	err := m.Materialize(types.LinkOperation{
		Source:      src,
		Destination: dst,
		LinkType:    types.LinkTypeHardLink,
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrOsLink),
		"the strict path must surface link failures, never fall back")

	_, statErr := os.Lstat(dst)
	assert.True(t, os.IsNotExist(statErr))
}

func TestHardLinkOrCopy_RefusesSymlinkSource(t *testing.T) {
	tempDir := t.TempDir()
	writeSource(t, tempDir, "real.txt", "payload")
	src := filepath.Join(tempDir, "source-link")
	require.NoError(t, os.Symlink("real.txt", src))
	dst := filepath.Join(tempDir, "dest.txt")

	m := newMaterializer()
	err := m.HardLinkOrCopy(src, dst)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrOsLink))
	assert.Contains(t, err.Error(), "cannot hard link a soft link")

	// Never falls back to copying a symlink source.
	_, statErr := os.Lstat(dst)
	assert.True(t, os.IsNotExist(statErr))
}

func TestHardLinkOrCopy_FallsBackToCopy(t *testing.T) {
	tempDir := t.TempDir()
	src := writeSource(t, tempDir, "source.txt", "payload")
	dst := filepath.Join(tempDir, "dest.txt")

	m := link.New(filesystem.NewOS(), brokenLinker{})
	require.NoError(t, m.HardLinkOrCopy(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))

	srcInfo, err := os.Stat(src)
	require.NoError(t, err)
	dstInfo, err := os.Stat(dst)
	require.NoError(t, err)
	assert.False(t, os.SameFile(srcInfo, dstInfo), "fallback must produce an independent file")
}

func TestHardLinkOrCopy_PrefersHardLink(t *testing.T) {
	tempDir := t.TempDir()
	src := writeSource(t, tempDir, "source.txt", "payload")
	dst := filepath.Join(tempDir, "dest.txt")

	m := newMaterializer()
	require.NoError(t, m.HardLinkOrCopy(src, dst))

	srcInfo, err := os.Stat(src)
	require.NoError(t, err)
	dstInfo, err := os.Stat(dst)
	require.NoError(t, err)
	assert.True(t, os.SameFile(srcInfo, dstInfo))
}
