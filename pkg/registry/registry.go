// Package registry maintains the persistent mapping from package names
// to private environment prefixes.
//
// The registry is a single JSON file at a fixed path. Every operation
// re-reads it from disk, mutates the mapping in memory and rewrites the
// whole file; there is no in-memory caching between calls and no file
// locking. A missing or corrupt file reads as an empty mapping so that a
// damaged registry never blocks package operations. When the last entry
// is removed the file is deleted rather than written as "{}".
package registry

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/arthur-debert/emplace/pkg/errors"
	"github.com/arthur-debert/emplace/pkg/logging"
	"github.com/arthur-debert/emplace/pkg/paths"
	"github.com/arthur-debert/emplace/pkg/types"
)

// Registry is a JSON-file-backed map of package name to environment
// prefix path.
type Registry struct {
	fs   types.FS
	path string
}

// New creates a Registry stored at path.
func New(fs types.FS, path string) *Registry {
	return &Registry{fs: fs, path: path}
}

// NewDefault creates the Registry at its fixed, well-known location: the
// private_envs file inside the root prefix's metadata directory.
func NewDefault(fs types.FS, p paths.Paths) *Registry {
	return New(fs, p.PrivateEnvsPath())
}

// Read returns the current mapping. A missing file or one containing
// invalid JSON yields an empty mapping, never an error.
func (r *Registry) Read() map[string]string {
	content := map[string]string{}

	data, err := r.fs.ReadFile(r.path)
	if err != nil {
		return content
	}
	if err := json.Unmarshal(data, &content); err != nil {
		logger := logging.GetLogger("registry")
		logger.Warn().
			Err(err).
			Str("path", r.path).
			Msg("registry file is not valid JSON, treating as empty")
		return map[string]string{}
	}
	return content
}

// Upsert records envPrefix as the private environment of pkgName.
func (r *Registry) Upsert(pkgName, envPrefix string) error {
	content := r.Read()
	content[pkgName] = envPrefix
	return r.write(content)
}

// Remove deletes pkgName from the registry. Removing an absent key is a
// no-op. When the mapping becomes empty the registry file is deleted.
func (r *Registry) Remove(pkgName string) error {
	content := r.Read()
	if _, ok := content[pkgName]; !ok {
		return nil
	}
	delete(content, pkgName)

	if len(content) == 0 {
		if err := r.fs.RemoveAll(r.path); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrRegistryWrite, "failed to delete registry %s", r.path)
		}
		return nil
	}
	return r.write(content)
}

func (r *Registry) write(content map[string]string) error {
	data, err := json.Marshal(content)
	if err != nil {
		return errors.Wrap(err, errors.ErrRegistryWrite, "failed to encode registry")
	}
	// First insert into a fresh root prefix: the metadata directory may
	// not exist yet.
	if err := r.fs.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create registry directory for %s", r.path)
	}
	if err := r.fs.WriteFile(r.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrRegistryWrite, "failed to write registry %s", r.path)
	}
	return nil
}
