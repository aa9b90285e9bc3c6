package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/voxelworks/voxlight/internal/blocks"
	"github.com/voxelworks/voxlight/internal/config"
	"github.com/voxelworks/voxlight/internal/storage"
	"github.com/voxelworks/voxlight/internal/world"
	"github.com/voxelworks/voxlight/internal/world/gen"
	"github.com/voxelworks/voxlight/internal/world/light"
)

func main() {
	cfg := config.DefaultConfig()

	flag.IntVar(&cfg.ChunkSize, "chunk-size", cfg.ChunkSize, "horizontal chunk extent in voxels")
	flag.IntVar(&cfg.MaxHeight, "max-height", cfg.MaxHeight, "vertical world extent")
	flag.IntVar(&cfg.MaxLightLevel, "max-light", cfg.MaxLightLevel, "light channel ceiling")
	flag.IntVar(&cfg.Margin, "margin", cfg.Margin, "padding voxels around each chunk")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "terrain seed")
	flag.StringVar(&cfg.GeneratorType, "generator", cfg.GeneratorType, "terrain generator: noise or flat")
	flag.IntVar(&cfg.Radius, "radius", cfg.Radius, "chunk grid radius to light")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel lighting jobs")
	flag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory for config and snapshots")
	flag.StringVar(&cfg.BlockFile, "blocks", cfg.BlockFile, "block definition JSON (empty = built-in set)")
	save := flag.Bool("save", false, "persist light snapshots to the data dir")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	store, err := storage.New(cfg.DataDir, log)
	if err != nil {
		log.Error("open storage", "error", err)
		os.Exit(1)
	}

	// File config fills in everything not explicitly set on the command line.
	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	fileCfg := config.DefaultConfig()
	if err := store.LoadConfig(fileCfg); err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}
	config.Merge(cfg, fileCfg, explicit)

	params := world.Params{
		ChunkSize:     cfg.ChunkSize,
		MaxHeight:     cfg.MaxHeight,
		MaxLightLevel: cfg.MaxLightLevel,
		Margin:        cfg.Margin,
	}
	if err := params.Validate(); err != nil {
		log.Error("invalid world parameters", "error", err)
		os.Exit(1)
	}

	registry := blocks.Default()
	if cfg.BlockFile != "" {
		registry, err = blocks.LoadFile(cfg.BlockFile)
		if err != nil {
			log.Error("load block definitions", "error", err)
			os.Exit(1)
		}
	}

	var generator gen.Generator
	switch cfg.GeneratorType {
	case "flat":
		generator = gen.NewFlatGenerator(cfg.ChunkSize, cfg.MaxHeight)
	default:
		generator = gen.NewNoiseGenerator(cfg.Seed, cfg.ChunkSize, cfg.MaxHeight)
	}

	w := world.NewWorld(generator, registry, params)

	var coords []world.ChunkPos
	for cx := -cfg.Radius; cx <= cfg.Radius; cx++ {
		for cz := -cfg.Radius; cz <= cfg.Radius; cz++ {
			coords = append(coords, world.ChunkPos{X: cx, Z: cz})
		}
	}

	log.Info("lighting chunk grid",
		"chunks", len(coords),
		"radius", cfg.Radius,
		"workers", cfg.Workers,
		"generator", cfg.GeneratorType,
		"seed", cfg.Seed,
	)

	start := time.Now()
	results := light.NewPool(w, cfg.Workers, log).LightChunks(coords)
	elapsed := time.Since(start)

	var slowest time.Duration
	for _, r := range results {
		if r.Elapsed > slowest {
			slowest = r.Elapsed
		}
	}
	log.Info("lighting complete",
		"chunks", len(results),
		"elapsed", elapsed,
		"slowest_chunk", slowest,
	)

	if *save {
		for _, r := range results {
			if err := store.SaveChunkLight(r.Light); err != nil {
				log.Error("save light snapshot", "chunk_x", r.Coords.X, "chunk_z", r.Coords.Z, "error", err)
				os.Exit(1)
			}
		}
		log.Info("snapshots saved", "count", len(results), "dir", cfg.DataDir)
	}
}
