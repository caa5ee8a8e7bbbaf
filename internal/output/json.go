// Package output handles the JSON boundary of the CLI: record arrays on
// stdout and error objects on stderr.
package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONTo writes data as JSON indented with two spaces. The command layer
// passes its stdout here; tests pass a buffer.
func JSONTo(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// errorJSON is the machine-readable error envelope.
type errorJSON struct {
	Error string `json:"error"`
}

// JSONErrorTo writes err as a single-line {"error": ...} object.
func JSONErrorTo(w io.Writer, err error) error {
	if encErr := json.NewEncoder(w).Encode(errorJSON{Error: err.Error()}); encErr != nil {
		return fmt.Errorf("encoding JSON error: %w", encErr)
	}
	return nil
}
