package offsets

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads an offset table from a YAML file. Stations and samples
// are sorted into generation order; missing units default to meters.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading offset table %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes an offset table from YAML bytes.
func Parse(data []byte) (*Table, error) {
	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing offset table: %w", err)
	}

	switch table.Units {
	case "", UnitsMeters, UnitsFeet, UnitsInches:
		if table.Units == "" {
			table.Units = UnitsMeters
		}
	default:
		return nil, fmt.Errorf("unknown units %q", table.Units)
	}

	table.sortGeometry()
	return &table, nil
}
