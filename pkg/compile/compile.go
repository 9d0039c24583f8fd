// Package compile byte-compiles installed scripts with an external
// interpreter process.
package compile

import (
	"bytes"
	"os/exec"

	"github.com/arthur-debert/emplace/pkg/errors"
	"github.com/arthur-debert/emplace/pkg/logging"
)

// Invoker runs the interpreter's own byte-compilation module on a file.
// It implements types.Compiler.
type Invoker struct{}

// Compile runs "<interpreter> -Wi -m py_compile <script>". A nonzero exit
// is surfaced with the captured stdout, stderr and exit code so the
// caller can diagnose the failure.
func (Invoker) Compile(interpreterPath, scriptPath string) error {
	logger := logging.GetLogger("compile")

	cmd := exec.Command(interpreterPath, "-Wi", "-m", "py_compile", scriptPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Trace().Str("interpreter", interpreterPath).Str("script", scriptPath).Msg("byte-compiling")
	if err := cmd.Run(); err != nil {
		rc := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			rc = exitErr.ExitCode()
		}
		logger.Error().
			Str("script", scriptPath).
			Str("stdout", stdout.String()).
			Str("stderr", stderr.String()).
			Int("rc", rc).
			Msg("byte-compilation failed")
		return errors.Wrapf(err, errors.ErrCompile, "byte-compilation of %s failed", scriptPath).
			WithDetail("stdout", stdout.String()).
			WithDetail("stderr", stderr.String()).
			WithDetail("rc", rc)
	}
	return nil
}
