// Package entrypoint generates executable launcher scripts for installed
// console tools.
package entrypoint

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/arthur-debert/emplace/pkg/errors"
	"github.com/arthur-debert/emplace/pkg/logging"
	"github.com/arthur-debert/emplace/pkg/permissions"
	"github.com/arthur-debert/emplace/pkg/types"
)

// entryPointTemplate is the launcher body shared by the Unix and Windows
// renderings: invoke the console function and exit with its return value.
var entryPointTemplate = template.Must(template.New("entrypoint").Parse(`# -*- coding: utf-8 -*-
if __name__ == '__main__':
    from sys import exit
    from {{.Module}} import {{.Func}}
    exit({{.Func}}())
`))

// privateEntryPointTemplate delegates to a payload executable living in a
// private environment, replacing the current process image and keeping
// the original argument vector.
var privateEntryPointTemplate = template.Must(template.New("private").Parse(`import os
import sys
if __name__ == '__main__':
    os.execv({{printf "%q" .Executable}}, sys.argv)
`))

// Generator writes entry-point scripts through a filesystem capability.
type Generator struct {
	fs types.FS
}

// New creates a Generator backed by the given filesystem.
func New(fs types.FS) *Generator {
	return &Generator{fs: fs}
}

// Write renders and writes the launcher described by spec. The Unix
// rendering prepends a shebang line naming spec.Interpreter and marks the
// result executable; the Windows rendering does neither, since dispatch
// there goes through a separate native launcher.
func (g *Generator) Write(spec types.EntryPointSpec) error {
	logger := logging.GetLogger("entrypoint")

	var buf bytes.Buffer
	if !spec.Windows {
		fmt.Fprintf(&buf, "#!%s\n", spec.Interpreter)
	}
	if err := entryPointTemplate.Execute(&buf, spec); err != nil {
		return errors.Wrapf(err, errors.ErrEntryPoint, "failed to render entry point for %s:%s", spec.Module, spec.Func)
	}

	if err := g.fs.WriteFile(spec.Target, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write entry point %s", spec.Target)
	}
	if !spec.Windows {
		if err := permissions.MakeExecutable(g.fs, spec.Target); err != nil {
			return err
		}
	}

	logger.Debug().
		Str("target", spec.Target).
		Str("module", spec.Module).
		Str("func", spec.Func).
		Bool("windows", spec.Windows).
		Msg("wrote entry point")
	return nil
}

// WritePrivate writes a delegating entry point whose body execs the real
// payload executable inside a private environment.
func (g *Generator) WritePrivate(targetPath, interpreterPath, executablePath string) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "#!%s\n", interpreterPath)
	data := struct{ Executable string }{Executable: executablePath}
	if err := privateEntryPointTemplate.Execute(&buf, data); err != nil {
		return errors.Wrapf(err, errors.ErrEntryPoint, "failed to render private entry point for %s", executablePath)
	}

	if err := g.fs.WriteFile(targetPath, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write entry point %s", targetPath)
	}
	return permissions.MakeExecutable(g.fs, targetPath)
}
