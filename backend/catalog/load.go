// ABOUTME: Catalog file loading for JSON and YAML sources
// ABOUTME: Merges per-category files into one catalog and writes merged output

package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for files that are neither JSON nor YAML
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// toJSON converts YAML or JSON bytes into JSON so one decoder handles both
func toJSON(path string, data []byte) ([]byte, error) {
	switch {
	case isYAML(path):
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		out, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("converting %s: %w", path, err)
		}
		return out, nil
	case strings.EqualFold(filepath.Ext(path), ".json"):
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Load reads a merged catalog file (.json, .yaml or .yml)
func Load(path string) (*models.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes catalog bytes; path only selects the format
func Parse(path string, data []byte) (*models.Catalog, error) {
	raw, err := toJSON(path, data)
	if err != nil {
		return nil, err
	}
	var c models.Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decoding catalog %s: %w", path, err)
	}
	return &c, nil
}

// categoryFile finds the file for a category in dir, trying json then yaml
func categoryFile(dir string, category models.Category) (string, bool) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		p := filepath.Join(dir, string(category)+ext)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// LoadDir merges <category>.json|yaml files from dir. A missing or blank file
// yields an empty category.
func LoadDir(dir string) (*models.Catalog, error) {
	merged := make(map[models.Category]json.RawMessage, len(models.AllCategories))
	for _, category := range models.AllCategories {
		merged[category] = json.RawMessage("[]")

		path, ok := categoryFile(dir, category)
		if !ok {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if len(bytes.TrimSpace(data)) == 0 {
			continue
		}
		raw, err := toJSON(path, data)
		if err != nil {
			return nil, err
		}
		if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
			return nil, fmt.Errorf("%s: expected a list of %s records", path, category)
		}
		merged[category] = raw
	}

	data, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("merging catalog: %w", err)
	}
	var c models.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding merged catalog: %w", err)
	}
	return &c, nil
}

// Encode renders a catalog as indented JSON, or YAML when path ends in .yaml/.yml
func Encode(path string, c *models.Catalog) ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	if !isYAML(path) {
		return append(data, '\n'), nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding catalog as yaml: %w", err)
	}
	return out, nil
}

// Write saves a catalog to path
func Write(path string, c *models.Catalog) error {
	data, err := Encode(path, c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	return nil
}
