package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"
)

// LoadLayout reads an optional YAML layout file and overlays it onto DefaultLayout.
// An empty path returns the defaults. Keys absent from the file keep their defaults.
//
// Example launcher.yaml:
//
//	runtime: deno
//	env_file: .env
//	entities_file: config/entities.json
//	server_dir: api
//	default_port: 8000
func LoadLayout(path string) (Layout, error) {
	layout := DefaultLayout()
	if path == "" {
		return layout, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}

	// Unknown keys are an error.
	var override Layout
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&override); err != nil && !errors.Is(err, io.EOF) {
		return Layout{}, fmt.Errorf("failed to unmarshal layout file %s: %w", path, err)
	}

	merge(&layout, override)
	if err := ValidatePort(layout.DefaultPort); err != nil {
		return Layout{}, fmt.Errorf("layout file %s: default_port: %w", path, err)
	}
	return layout, nil
}

// merge copies every non-zero field of src onto dst.
func merge(dst *Layout, src Layout) {
	dv := reflect.ValueOf(dst).Elem()
	sv := reflect.ValueOf(src)
	for i := 0; i < sv.NumField(); i++ {
		if f := sv.Field(i); !f.IsZero() {
			dv.Field(i).Set(f)
		}
	}
}
