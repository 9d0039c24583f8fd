//go:build windows

package link

import (
	"os"

	"github.com/arthur-debert/emplace/pkg/errors"
	"github.com/arthur-debert/emplace/pkg/types"
	"golang.org/x/sys/windows"
)

// windowsLinker implements types.Linker with the win32 kernel calls.
// The raw APIs signal failure through a boolean result; the x/sys
// wrappers translate that into an error, which we wrap with the paths
// involved so callers get a structured OS-link failure.
type windowsLinker struct{}

// NewNativeLinker returns the link capability of the host platform.
func NewNativeLinker() types.Linker {
	return &windowsLinker{}
}

func (windowsLinker) HardLink(src, dst string) error {
	srcp, err := windows.UTF16PtrFromString(src)
	if err != nil {
		return errors.NewOsLinkError(err, "win32 hard link", src, dst)
	}
	dstp, err := windows.UTF16PtrFromString(dst)
	if err != nil {
		return errors.NewOsLinkError(err, "win32 hard link", src, dst)
	}
	if err := windows.CreateHardLink(dstp, srcp, 0); err != nil {
		return errors.NewOsLinkError(err, "win32 hard link", src, dst)
	}
	return nil
}

func (windowsLinker) SymLink(src, dst string) error {
	srcp, err := windows.UTF16PtrFromString(src)
	if err != nil {
		return errors.NewOsLinkError(err, "win32 soft link", src, dst)
	}
	dstp, err := windows.UTF16PtrFromString(dst)
	if err != nil {
		return errors.NewOsLinkError(err, "win32 soft link", src, dst)
	}

	var flags uint32 = windows.SYMBOLIC_LINK_FLAG_ALLOW_UNPRIVILEGED_CREATE
	if info, statErr := os.Stat(src); statErr == nil && info.IsDir() {
		flags |= windows.SYMBOLIC_LINK_FLAG_DIRECTORY
	}
	if err := windows.CreateSymbolicLink(dstp, srcp, flags); err != nil {
		return errors.NewOsLinkError(err, "win32 soft link", src, dst)
	}
	return nil
}
