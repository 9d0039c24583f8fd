// Package paths provides centralized path handling for emplace.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/emplace/pkg/errors"
)

// Environment variable names
const (
	// EnvRootPrefix is the primary environment variable for the root
	// environment prefix
	EnvRootPrefix = "EMPLACE_ROOT_PREFIX"

	// EnvDataDir overrides the XDG data directory for emplace
	EnvDataDir = "EMPLACE_DATA_DIR"
)

// Default directories and files
// IMPORTANT: These constants define the on-disk layout shared with the
// installer and are NOT user-configurable. The meta directory name is a
// storage convention shared with the installed-package record writer.
const (
	// EmplaceDirName is the directory name for emplace-specific files
	EmplaceDirName = "emplace"

	// MetaDirName is the per-environment metadata subdirectory
	MetaDirName = "conda-meta"

	// PrivateEnvsFileName is the private environment registry file,
	// stored inside the root prefix's meta directory
	PrivateEnvsFileName = "private_envs"

	// EnvsDirName is the subdirectory of the root prefix holding
	// private environment prefixes
	EnvsDirName = "envs"

	// LogFileName is the name of the log file
	LogFileName = "emplace.log"
)

// Paths provides centralized path management for emplace
type Paths interface {
	// RootPrefix returns the root environment prefix
	RootPrefix() string

	// MetaDir returns the metadata directory for an environment prefix
	MetaDir(prefix string) string

	// PrivateEnvsPath returns the path of the private environment registry
	PrivateEnvsPath() string

	// PrivateEnvPrefix returns the install prefix for a private environment
	PrivateEnvPrefix(envName string) string

	// DataDir returns the XDG data directory for emplace
	DataDir() string

	// LogFilePath returns the path of the log file
	LogFilePath() string
}

type paths struct {
	rootPrefix       string
	registryFilename string
	xdgData          string
	xdgState         string
}

// New creates a new Paths instance with the given root prefix.
// If rootPrefix is empty, it is determined from EMPLACE_ROOT_PREFIX or
// defaults to the XDG data directory.
func New(rootPrefix string) (Paths, error) {
	return NewWithRegistryFilename(rootPrefix, PrivateEnvsFileName)
}

// NewWithRegistryFilename is New with the private environment registry
// filename overridden, as configured by registry.filename. An empty
// filename keeps the default.
func NewWithRegistryFilename(rootPrefix, registryFilename string) (Paths, error) {
	p := &paths{}

	if registryFilename == "" {
		registryFilename = PrivateEnvsFileName
	}
	p.registryFilename = registryFilename

	if rootPrefix == "" {
		if root := os.Getenv(EnvRootPrefix); root != "" {
			p.rootPrefix = expandHome(root)
		} else {
			p.rootPrefix = filepath.Join(xdg.DataHome, EmplaceDirName)
		}
	} else {
		p.rootPrefix = expandHome(rootPrefix)
	}

	absRoot, err := filepath.Abs(p.rootPrefix)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for root prefix")
	}
	p.rootPrefix = absRoot

	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		p.xdgData = expandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, EmplaceDirName)
	}

	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, EmplaceDirName)
	} else {
		homeDir, _ := os.UserHomeDir()
		p.xdgState = filepath.Join(homeDir, ".local", "state", EmplaceDirName)
	}

	return p, nil
}

func (p *paths) RootPrefix() string {
	return p.rootPrefix
}

func (p *paths) MetaDir(prefix string) string {
	return filepath.Join(prefix, MetaDirName)
}

func (p *paths) PrivateEnvsPath() string {
	return filepath.Join(p.MetaDir(p.rootPrefix), p.registryFilename)
}

func (p *paths) PrivateEnvPrefix(envName string) string {
	return filepath.Join(p.rootPrefix, EnvsDirName, envName)
}

func (p *paths) DataDir() string {
	return p.xdgData
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// expandHome expands a leading ~/ to the user's home directory
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
