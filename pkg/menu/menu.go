// Package menu provides the host-platform menu installer capability.
//
// The real installer (Windows Start Menu registration) lives outside this
// codebase; this package only supplies the no-op used everywhere else so
// callers can depend on types.MenuInstaller unconditionally.
package menu

import "github.com/arthur-debert/emplace/pkg/types"

// noop ignores every menu request.
type noop struct{}

// NewNoop returns a MenuInstaller that does nothing.
func NewNoop() types.MenuInstaller {
	return noop{}
}

func (noop) Install(prefix, filePath string, remove bool) error {
	return nil
}
