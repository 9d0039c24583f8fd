//go:build !windows

package link

import (
	"os"

	"github.com/arthur-debert/emplace/pkg/types"
)

// unixLinker implements types.Linker with the POSIX link calls.
type unixLinker struct{}

// NewNativeLinker returns the link capability of the host platform.
func NewNativeLinker() types.Linker {
	return &unixLinker{}
}

func (unixLinker) HardLink(src, dst string) error {
	return os.Link(src, dst)
}

func (unixLinker) SymLink(src, dst string) error {
	return os.Symlink(src, dst)
}
