package config

// Config holds the lighting engine configuration.
type Config struct {
	ChunkSize     int    `json:"chunk_size"`
	MaxHeight     int    `json:"max_height"`
	MaxLightLevel int    `json:"max_light_level"`
	Margin        int    `json:"margin"` // padding voxels around a chunk for cross-chunk bleed
	Seed          int64  `json:"seed"`
	GeneratorType string `json:"generator_type"` // "noise" or "flat"
	Radius        int    `json:"radius"`         // chunk grid radius to light
	Workers       int    `json:"workers"`        // parallel lighting jobs
	DataDir       string `json:"data_dir"`
	BlockFile     string `json:"block_file"` // optional block definition JSON
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ChunkSize:     16,
		MaxHeight:     256,
		MaxLightLevel: 15,
		Margin:        4,
		GeneratorType: "noise",
		Radius:        4,
		Workers:       8,
		DataDir:       "data",
	}
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["chunk-size"] {
		cfg.ChunkSize = fromFile.ChunkSize
	}
	if !explicitFlags["max-height"] {
		cfg.MaxHeight = fromFile.MaxHeight
	}
	if !explicitFlags["max-light"] {
		cfg.MaxLightLevel = fromFile.MaxLightLevel
	}
	if !explicitFlags["margin"] {
		cfg.Margin = fromFile.Margin
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["generator"] {
		cfg.GeneratorType = fromFile.GeneratorType
	}
	if !explicitFlags["radius"] {
		cfg.Radius = fromFile.Radius
	}
	if !explicitFlags["workers"] {
		cfg.Workers = fromFile.Workers
	}
	if !explicitFlags["data-dir"] {
		cfg.DataDir = fromFile.DataDir
	}
	if !explicitFlags["blocks"] {
		cfg.BlockFile = fromFile.BlockFile
	}
}
