package light

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/voxelworks/voxlight/internal/world"
)

// Result reports one finished lighting job.
type Result struct {
	JobID   string
	Coords  world.ChunkPos
	Light   *world.ChunkLight
	Elapsed time.Duration
}

// Pool runs per-chunk lighting jobs across worker goroutines. Every job gets
// its own Space snapshot, so jobs share no mutable state and need no locking
// beyond what the world's chunk cache already does.
type Pool struct {
	world   *world.World
	workers int
	log     *slog.Logger
}

// NewPool creates a Pool with the given parallelism. workers < 1 is treated
// as 1.
func NewPool(w *world.World, workers int, log *slog.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{world: w, workers: workers, log: log}
}

type job struct {
	id     string
	idx    int
	coords world.ChunkPos
}

// LightChunks computes lighting for every listed chunk, attaches the results
// to the world, and returns them in input order.
func (p *Pool) LightChunks(coords []world.ChunkPos) []Result {
	jobs := make(chan job)
	results := make([]Result, len(coords))

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.idx] = p.run(j)
			}
		}()
	}

	for i, c := range coords {
		jobs <- job{id: uuid.NewString(), idx: i, coords: c}
	}
	close(jobs)
	wg.Wait()

	return results
}

func (p *Pool) run(j job) Result {
	start := time.Now()

	space := p.world.BuildSpace(j.coords)
	l := Propagate(space, p.world.Registry(), p.world.Params())
	p.world.SetChunkLight(l)

	elapsed := time.Since(start)
	p.log.Debug("chunk lit",
		"job", j.id,
		"chunk_x", j.coords.X,
		"chunk_z", j.coords.Z,
		"digest", l.Digest(),
		"elapsed", elapsed,
	)

	return Result{JobID: j.id, Coords: j.coords, Light: l, Elapsed: elapsed}
}
