package govsa

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// vendorFile is the on-disk dictionary document: one or more vendor
// definitions under a top-level "vendors" key.
type vendorFile struct {
	Vendors []*VendorDefinition `yaml:"vendors" json:"vendors"`
}

// LoadVendorFile parses vendor definitions from a YAML or JSON file.
// The format is chosen by extension (.json is JSON, everything else YAML).
func LoadVendorFile(path string) ([]*VendorDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file %s: %w", path, err)
	}

	var doc vendorFile

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON dictionary %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML dictionary %s: %w", path, err)
		}
	}

	if len(doc.Vendors) == 0 {
		return nil, fmt.Errorf("dictionary file %s defines no vendors", path)
	}

	return doc.Vendors, nil
}

// LoadFile loads vendor definitions from a file into the dictionary.
// Validation happens in AddVendor; the first invalid vendor aborts the load.
func (d *Dictionary) LoadFile(path string) error {
	vendors, err := LoadVendorFile(path)
	if err != nil {
		return err
	}

	for _, vendor := range vendors {
		if err := d.AddVendor(vendor); err != nil {
			return fmt.Errorf("dictionary file %s: %w", path, err)
		}
	}

	return nil
}

// LoadDir loads every dictionary file (*.yml, *.yaml, *.json) in dir,
// in lexical order so merges are deterministic.
func (d *Dictionary) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to scan directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yml", ".yaml", ".json":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	if len(paths) == 0 {
		return fmt.Errorf("no dictionary files found in %s", dir)
	}

	sort.Strings(paths)

	for _, path := range paths {
		if err := d.LoadFile(path); err != nil {
			return err
		}
	}

	return nil
}
