// Package reportexport persists report results to JSON files. It replaces
// the implicit write-on-return behavior reports used to have with an
// explicit wrapper: run the report, dump the result, hand the result back
// unchanged.
package reportexport

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
)

// DefaultFilename is used when no target path is given.
const DefaultFilename = "report.json"

// ReportFunc produces a report result of any shape.
type ReportFunc[T any] func() (T, error)

// ToFile runs fn, writes its result to path and returns the result
// unchanged. An empty path falls back to DefaultFilename. The write is
// best-effort and not atomic; a failed write is reported but the computed
// result is still returned.
func ToFile[T any](fn ReportFunc[T], path string) (T, error) {
	result, err := fn()
	if err != nil {
		return result, err
	}

	if path == "" {
		path = DefaultFilename
	}
	if err := Write(path, result); err != nil {
		return result, fmt.Errorf("writing report to %s: %w", path, err)
	}
	return result, nil
}

// Write serializes v to path: sequence results as line-delimited JSON (one
// object per line), scalar and mapping results as indented JSON. The file
// is closed on every path.
func Write(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice {
		for i := 0; i < rv.Len(); i++ {
			if err := enc.Encode(rv.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	}

	enc.SetIndent("", "    ")
	return enc.Encode(v)
}
