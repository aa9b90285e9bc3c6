package blocks

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads a block definition file (a JSON array of blocks, as fetched
// by cmd/blockdata) and builds a Registry from it.
func LoadFile(path string) (Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read block definitions: %w", err)
	}

	var list []Block
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse block definitions %s: %w", path, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("block definitions %s: empty block list", path)
	}

	for i, b := range list {
		if b.RedLight < 0 || b.GreenLight < 0 || b.BlueLight < 0 {
			return nil, fmt.Errorf("block definitions %s: block %d (%s) has negative emission", path, i, b.Name)
		}
	}

	return NewRegistry(list), nil
}
