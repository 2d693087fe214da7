package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Save writes the project to path as indented JSON, replacing any existing
// file atomically.
func Save(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}
	tmp := filepath.Join(filepath.Dir(path), fmt.Sprintf(".project-%s.tmp", uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write project: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace project file: %w", err)
	}
	return nil
}

// Load reads a project file. The second return value reports whether the
// strict decode failed and the result was rebuilt through field salvage;
// callers can use it to surface a diagnostic. Load fails only when the file
// cannot be read or is not parseable JSON at all.
func Load(path string) (*Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("read project: %w", err)
	}

	strict := New()
	if err := json.Unmarshal(data, strict); err == nil {
		return strict, false, nil
	}

	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, false, fmt.Errorf("parse project: %w", err)
	}

	cfg := salvage(tree)
	return cfg, true, nil
}
