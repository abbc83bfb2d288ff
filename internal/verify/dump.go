package verify

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Dumper writes failing reports into Dir as <name>-ought.json and
// <name>-is.json.
type Dumper struct {
	Dir string
}

// Dump writes both sequences of r.
func (d *Dumper) Dump(r *Report) error {
	if err := os.MkdirAll(d.Dir, dumpDirPerm); err != nil {
		return fmt.Errorf("failed to create dump directory: %w", err)
	}
	if err := writeJSON(filepath.Join(d.Dir, r.Name+dumpOughtSuffix), r.Ought); err != nil {
		return err
	}
	return writeJSON(filepath.Join(d.Dir, r.Name+dumpIsSuffix), r.Is)
}

func writeJSON(path string, values []float64) error {
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, dumpFilePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// CleanStale removes the *.json files directly inside dir, left over from
// earlier runs. Subdirectories are not entered. A missing dir is not an
// error.
func CleanStale(dir string) (removed int, err error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read dump directory: %w", err)
	}

	var errs []error
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), dumpExt) {
			continue
		}
		if rmErr := os.Remove(filepath.Join(dir, e.Name())); rmErr != nil {
			errs = append(errs, fmt.Errorf("could not delete %s: %w", e.Name(), rmErr))
			continue
		}
		removed++
	}
	return removed, errors.Join(errs...)
}
