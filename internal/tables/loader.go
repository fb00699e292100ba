package tables

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultTables []byte

// Default returns a fresh copy of the embedded default tables.
func Default() (*File, error) {
	f, err := Parse(defaultTables)
	if err != nil {
		return nil, fmt.Errorf("embedded tables: %w", err)
	}

	return f, nil
}

// Load loads the tables at path, or the embedded defaults when path is empty.
func Load(path string) (*File, error) {
	if path == "" {
		return Default()
	}

	return LoadFile(path)
}

// LoadFile loads and parses a YAML tables file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tables YAML: %w", err)
	}

	applyDefaults(&f)

	if f.Version != CurrentVersion {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, f.Version)
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields and trims
// the hand-written names.
func applyDefaults(f *File) {
	f.Version = strings.TrimSpace(f.Version)
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	for i := range f.Categories {
		c := &f.Categories[i]
		c.Name = strings.ToLower(strings.TrimSpace(c.Name))
	}

	for i := range f.Skills {
		s := &f.Skills[i]
		s.Name = strings.TrimSpace(s.Name)
		s.Category = strings.ToLower(strings.TrimSpace(s.Category))
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal tables: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write tables file %s: %w", path, err)
	}

	return nil
}
