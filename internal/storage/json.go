package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"utest/internal/config"
)

// JSONStorage stores results in a JSON file under the configured
// results path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's
// results JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// Save writes the run output to the configured JSON file.
func (s *JSONStorage) Save(out *RunOutput) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.ResultsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Load reads the last run output from the configured JSON file.
func (s *JSONStorage) Load() (*RunOutput, error) {
	data, err := os.ReadFile(s.cfg.ResultsPath())
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var out RunOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &out, nil
}
