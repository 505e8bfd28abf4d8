package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// EnsureDefaultFiles bootstraps files that have a template: when the environment
// file is missing and its template exists, the template is copied byte for byte.
// It returns the absolute paths of the files it created. A missing template is
// not an error here; Validate reports the still-missing environment file.
func EnsureDefaultFiles(root string, l Layout) ([]string, error) {
	envPath := Abs(root, l.EnvFile)
	if exists(envPath) {
		return nil, nil
	}

	templatePath := Abs(root, l.EnvTemplate)
	if !exists(templatePath) {
		return nil, nil
	}

	if err := copyFile(templatePath, envPath); err != nil {
		return nil, fmt.Errorf("failed to create %s from %s: %w", l.EnvFile, l.EnvTemplate, err)
	}
	return []string{envPath}, nil
}

// Requirement is one file the server needs before it can start.
type Requirement struct {
	Name string // Human label, e.g. "environment file"
	Path string // Layout-relative path
}

// Validation is the outcome of a pure existence check over the required files.
type Validation struct {
	Missing []Requirement
}

// Valid reports whether every required file exists.
func (v Validation) Valid() bool {
	return len(v.Missing) == 0
}

// Requirements lists the files that must exist to launch mode.
func Requirements(l Layout, mode Mode) []Requirement {
	return []Requirement{
		{Name: "environment file", Path: l.EnvFile},
		{Name: "entity configuration", Path: l.EntitiesFile},
		{Name: "server entry", Path: l.ServerEntry(mode)},
	}
}

// Validate checks that every requirement for mode exists under root.
// It never modifies the filesystem.
func Validate(root string, l Layout, mode Mode) Validation {
	var v Validation
	for _, req := range Requirements(l, mode) {
		if !exists(Abs(root, req.Path)) {
			v.Missing = append(v.Missing, req)
		}
	}
	return v
}

// Exists reports whether a layout-relative path exists under root.
func Exists(root, rel string) bool {
	return exists(Abs(root, rel))
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// copyFile copies src to dst, creating missing parent directories.
// The destination keeps the source's permissions.
func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source failed: %w", err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("mkdir failed: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create target failed: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}

	if stat, serr := os.Stat(src); serr == nil {
		return os.Chmod(dst, stat.Mode())
	}
	return nil
}
