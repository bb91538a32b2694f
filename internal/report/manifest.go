package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/tabshield/tabshield-cli/internal/files"
)

const manifestFileName = "manifest.yaml"

// Manifest records one report run: which datasets were processed, where
// their reports landed, and which failed. It is the only state persisted
// beyond the rendered reports themselves.
type Manifest struct {
	ID          string    `yaml:"id"`
	GeneratedAt time.Time `yaml:"generated_at"`
	Datasets    []Outcome `yaml:"datasets"`
}

// Outcome is the per-dataset result. Exactly one of Output and Error is set.
type Outcome struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Output string `yaml:"output,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

// NewManifest starts a manifest for a fresh run.
func NewManifest() *Manifest {
	return &Manifest{ID: uuid.NewString(), GeneratedAt: time.Now().UTC()}
}

// Add records one dataset outcome.
func (m *Manifest) Add(o Outcome) {
	m.Datasets = append(m.Datasets, o)
}

// Write persists the manifest into the output directory using an atomic
// write.
func (m *Manifest) Write(dir string) error {
	b, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	return files.SafeWriteFile(filepath.Join(dir, manifestFileName), b)
}
