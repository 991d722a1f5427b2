package yieldmodel

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// WriteModelFile validates the model and writes it as indented json to path. The file is written
// to a temporary file in the same directory and renamed into place so readers never observe a
// partial artifact.
func WriteModelFile(path string, m Model) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("refusing to write invalid model, %w", err)
	}

	bytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to encode model, %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("unable to create model directory %s, %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("unable to create temporary model file, %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(bytes); err != nil {
		tmp.Close()
		return fmt.Errorf("unable to write model to %s, %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("unable to sync model file %s, %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("unable to close model file %s, %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("unable to set model file permissions, %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("unable to move model into %s, %w", path, err)
	}
	return nil
}

// ReadModelFile reads and validates a model previously written with WriteModelFile
func ReadModelFile(path string) (Model, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Model{}, fmt.Errorf("unable to read model file, %w", err)
	}

	var m Model
	if err := json.Unmarshal(bytes, &m); err != nil {
		return Model{}, fmt.Errorf("unable to decode model file %s, %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return Model{}, fmt.Errorf("invalid model file %s, %w", path, err)
	}
	return m, nil
}
