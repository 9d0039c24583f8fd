package types

import (
	"io/fs"
	"time"
)

// FS is the filesystem interface required for emplace operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Metadata operations
	Chmod(name string, mode fs.FileMode) error
	Chtimes(name string, atime, mtime time.Time) error

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error

	// Optional operations - implementations should check for support
	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}

// Linker exposes the native link primitives of the host platform. There is
// one implementation per platform, selected at build time: POSIX builds map
// directly onto the OS link calls, Windows builds wrap the kernel APIs and
// translate their boolean failure convention into errors.
type Linker interface {
	// HardLink creates dst as a second directory entry for src's inode.
	HardLink(src, dst string) error

	// SymLink creates dst as a symbolic link to src.
	SymLink(src, dst string) error
}

// MenuInstaller registers or removes host-platform menu items for an
// installed package. The implementation lives outside this core; off
// Windows a no-op is used.
type MenuInstaller interface {
	Install(prefix, filePath string, remove bool) error
}

// Compiler byte-compiles an installed script with an external interpreter
// process, surfacing nonzero exits with captured output.
type Compiler interface {
	Compile(interpreterPath, scriptPath string) error
}
