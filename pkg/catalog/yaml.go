package catalog

import (
	"github.com/goccy/go-yaml"

	"github.com/RolandGoud/bikescaper/internal/fileutil"
	"github.com/RolandGoud/bikescaper/pkg/errors"
)

// SaveYAML writes a structured sidecar of the snapshot next to the CSV
// master store. The sidecar carries the same data in a format friendlier
// to downstream tooling than positional columns.
func SaveYAML(snap *Snapshot, path string) error {
	entries := snap.Entries()
	data, err := yaml.MarshalWithOptions(entries,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return errors.WrapParse("yaml", path, err)
	}
	if err := fileutil.WriteFileAtomic(path, data); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// LoadYAML reads a sidecar written by SaveYAML.
func LoadYAML(data []byte) (*Snapshot, error) {
	var entries []*Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, errors.WrapParse("yaml", "", err)
	}
	snap := NewSnapshot()
	for _, e := range entries {
		snap.Add(e)
	}
	return snap, nil
}
