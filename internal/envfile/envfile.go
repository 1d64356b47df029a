// Package envfile reads and updates the deployment's .env file. The
// file is owned by the operator, so updates preserve comments, blank
// lines and the order of unrelated entries; only the targeted key is
// touched. Writes go through a temp file plus rename in the same
// directory.
package envfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File is a parsed env file. Lines are kept verbatim so the file can
// be written back without disturbing operator formatting.
type File struct {
	Path  string
	lines []string
}

// Load reads and parses the env file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading env file: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	// Drop a single trailing empty element from the final newline so
	// appends don't introduce blank lines mid-file.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return &File{Path: path, lines: lines}, nil
}

// Get returns the value for key and whether the key is present.
// Values are returned with surrounding quotes stripped.
func (f *File) Get(key string) (string, bool) {
	for _, line := range f.lines {
		k, v, ok := splitLine(line)
		if ok && k == key {
			return unquote(v), true
		}
	}
	return "", false
}

// Set assigns value to key, replacing an existing assignment in place
// or appending a new one at the end of the file.
func (f *File) Set(key, value string) {
	for i, line := range f.lines {
		k, _, ok := splitLine(line)
		if ok && k == key {
			f.lines[i] = key + "=" + value
			return
		}
	}
	f.lines = append(f.lines, key+"="+value)
}

// Keys returns all assignment keys in file order.
func (f *File) Keys() []string {
	var keys []string
	for _, line := range f.lines {
		if k, _, ok := splitLine(line); ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// Write persists the file atomically: content is written to a temp
// file in the same directory and renamed over the original.
func (f *File) Write() error {
	dir := filepath.Dir(f.Path)
	tmp, err := os.CreateTemp(dir, ".env-*")
	if err != nil {
		return fmt.Errorf("creating temp env file: %w", err)
	}

	content := strings.Join(f.lines, "\n") + "\n"
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing temp env file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp env file: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing env file: %w", err)
	}
	return nil
}

// splitLine parses a KEY=VALUE assignment. Comments and blank lines
// are not assignments.
func splitLine(line string) (key, value string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	key, value, found := strings.Cut(trimmed, "=")
	if !found || key == "" {
		return "", "", false
	}
	return strings.TrimSpace(key), value, true
}

func unquote(v string) string {
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}
