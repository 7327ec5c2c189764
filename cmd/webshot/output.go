package main

import (
	"errors"
	"fmt"
	"os"
)

// ErrWriteOutput reports a failure to persist the rendered artifact.
var ErrWriteOutput = errors.New("failed to write output")

// filePermissions: rw-r--r--, artifacts are meant to be readable.
const filePermissions = 0o644

// writeArtifact routes the rendered bytes to the named file, or to
// stdout when no path is given. The two sinks are mutually exclusive:
// nothing is ever written to stdout when a path is present.
func writeArtifact(env *Environment, path string, data []byte) error {
	if path == "" {
		if _, err := env.Stdout.Write(data); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	// #nosec G306 -- rendered artifacts are meant to be readable
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
