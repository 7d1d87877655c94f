// Package fs provides file-based storage for cached pages, word counts
// and extracted tables.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/wikiscraper"
)

// writeFileAtomic writes data to a temporary file next to path and
// renames it over path, so readers never observe a partial write.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// removeMatching deletes the files in dir whose names end with suffix.
// A missing directory is not an error.
func removeMatching(dir, suffix string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// countMatching returns the number of files in dir whose names end with suffix.
func countMatching(dir, suffix string) (int, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	n := 0
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			n++
		}
	}
	return n, nil
}

// validateName rejects names that would escape their directory.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return wikiscraper.Errorf(wikiscraper.EINVALID, "invalid file name %q", name)
	}
	return nil
}
