package main

import (
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/synthlab/tabsynth/internal/dataset"
)

// Manifest records one generation or augmentation run next to its
// output, so runs can be identified and outputs checked for tampering.
type Manifest struct {
	RunID       string            `yaml:"run_id"`
	CreatedAt   string            `yaml:"created_at"`
	Command     string            `yaml:"command"`
	Seed        uint64            `yaml:"seed"`
	Rows        int               `yaml:"rows"`
	Fingerprint string            `yaml:"fingerprint"`
	Columns     map[string]string `yaml:"columns"`
}

// newManifest fingerprints the dataset and fills in run metadata.
func newManifest(command string, seed uint64, ds *dataset.Dataset) (*Manifest, error) {
	fp, err := dataset.ComputeFingerprint(ds)
	if err != nil {
		return nil, err
	}

	cols := make(map[string]string, len(fp.Columns))
	for name, hash := range fp.Columns {
		cols[name] = hash
	}

	return &Manifest{
		RunID:       uuid.NewString(),
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		Command:     command,
		Seed:        seed,
		Rows:        ds.Rows(),
		Fingerprint: fp.Root,
		Columns:     cols,
	}, nil
}

// write saves the manifest as YAML.
func (m *Manifest) write(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
