package preset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SaveCustom writes a single preset to path as indented JSON. The write is
// atomic: a temp file in the destination directory is renamed into place.
func SaveCustom(p EncodingPreset, path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode preset: %w", err)
	}
	tmp := filepath.Join(filepath.Dir(path), fmt.Sprintf(".preset-%s.tmp", uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write preset: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace preset file: %w", err)
	}
	return nil
}

// LoadCustom reads one preset from path. Malformed files are hard errors;
// a single bad custom preset is not worth salvage machinery.
func LoadCustom(path string) (EncodingPreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EncodingPreset{}, fmt.Errorf("read preset: %w", err)
	}
	var p EncodingPreset
	if err := json.Unmarshal(data, &p); err != nil {
		return EncodingPreset{}, fmt.Errorf("parse preset %s: %w", filepath.Base(path), err)
	}
	return p, nil
}
