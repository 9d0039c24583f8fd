// Package meta writes the per-package installed-file records.
package meta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/emplace/pkg/errors"
	"github.com/arthur-debert/emplace/pkg/paths"
	"github.com/arthur-debert/emplace/pkg/types"
)

// Dist is the canonical identifier of an installed package.
type Dist struct {
	Name    string
	Version string
	Build   string
}

// String returns the canonical name-version-build form.
func (d Dist) String() string {
	return fmt.Sprintf("%s-%s-%s", d.Name, d.Version, d.Build)
}

// Filename returns the identifier with a suffix appended, e.g. ".json".
func (d Dist) Filename(suffix string) string {
	return d.String() + suffix
}

// WriteRecord writes the installed-package record for dist into the
// environment's metadata directory as pretty-printed JSON with sorted
// keys. The metadata directory is created if missing.
func WriteRecord(fs types.FS, prefix string, dist Dist, record map[string]interface{}) error {
	metaDir := filepath.Join(prefix, paths.MetaDirName)
	if err := fs.MkdirAll(metaDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", metaDir)
	}

	// json.Marshal emits map keys in sorted order.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(record); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to encode record for %s", dist)
	}

	target := filepath.Join(metaDir, dist.Filename(".json"))
	if err := fs.WriteFile(target, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write record %s", target)
	}
	return nil
}
