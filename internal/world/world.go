package world

import (
	"sync"

	"github.com/voxelworks/voxlight/internal/blocks"
	"github.com/voxelworks/voxlight/internal/world/gen"
)

// World caches generated chunks and hands out padded Space snapshots for
// lighting computations.
type World struct {
	mu        sync.RWMutex
	generator gen.Generator
	registry  blocks.Registry
	params    Params
	chunks    map[ChunkPos]*Chunk
}

// NewWorld creates a World backed by the given generator and block registry.
func NewWorld(generator gen.Generator, registry blocks.Registry, params Params) *World {
	return &World{
		generator: generator,
		registry:  registry,
		params:    params,
		chunks:    make(map[ChunkPos]*Chunk),
	}
}

// Params returns the world parameters.
func (w *World) Params() Params {
	return w.params
}

// Registry returns the block registry the world was built with.
func (w *World) Registry() blocks.Registry {
	return w.registry
}

// GetOrGenerateChunk returns the chunk at the given chunk coordinates,
// generating and caching it if needed.
func (w *World) GetOrGenerateChunk(cx, cz int) *Chunk {
	pos := ChunkPos{X: cx, Z: cz}

	w.mu.RLock()
	if c, ok := w.chunks[pos]; ok {
		w.mu.RUnlock()
		return c
	}
	w.mu.RUnlock()

	c := newChunk(pos, w.generator.Generate(cx, cz), w.registry)

	w.mu.Lock()
	// Double-check after acquiring write lock.
	if existing, ok := w.chunks[pos]; ok {
		w.mu.Unlock()
		return existing
	}
	w.chunks[pos] = c
	w.mu.Unlock()
	return c
}

// GetBlock returns the block id at a world coordinate.
func (w *World) GetBlock(x, y, z int) uint16 {
	if y < 0 || y >= w.params.MaxHeight {
		return 0
	}
	size := w.params.ChunkSize
	c := w.GetOrGenerateChunk(FloorDiv(x, size), FloorDiv(z, size))
	return c.Block(Mod(x, size), y, Mod(z, size))
}

// SetChunkLight attaches finalized light data to its chunk. The chunk is
// generated first if a caller lights a chunk it never read.
func (w *World) SetChunkLight(l *ChunkLight) {
	c := w.GetOrGenerateChunk(l.Coords.X, l.Coords.Z)

	w.mu.Lock()
	c.Light = l
	w.mu.Unlock()
}

// ChunkLightAt returns the stored light data for a chunk, nil if the chunk has
// not been lit.
func (w *World) ChunkLightAt(coords ChunkPos) *ChunkLight {
	w.mu.RLock()
	defer w.mu.RUnlock()

	c, ok := w.chunks[coords]
	if !ok {
		return nil
	}
	return c.Light
}
