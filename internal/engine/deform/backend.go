package deform

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/Faultbox/seaswell/internal/engine/mesh"
)

// Backend evaluates all vertices for one frame into out. Implementations
// must be order-independent: each vertex's result depends only on its
// static record and the frame parameters.
type Backend interface {
	Dispatch(p *Params, s *Sampler, snap *mesh.Snapshot, out []Output) error
}

// CPUBackend evaluates vertices on worker goroutines, each owning a
// contiguous chunk of the vertex range. No cross-chunk state is shared.
type CPUBackend struct {
	// Workers bounds the goroutine count; 0 means GOMAXPROCS.
	Workers int
}

// Dispatch evaluates every vertex of the snapshot into out.
func (b *CPUBackend) Dispatch(p *Params, s *Sampler, snap *mesh.Snapshot, out []Output) error {
	count := snap.Count()
	if len(out) < count {
		return fmt.Errorf("output buffer too small: %d slots for %d vertices", len(out), count)
	}

	workers := b.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > count {
		workers = count
	}
	if workers <= 1 {
		for i := 0; i < count; i++ {
			out[i] = EvaluateVertex(&snap.Vertices[i], p, s)
		}
		return nil
	}

	chunk := (count + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > count {
			hi = count
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				out[i] = EvaluateVertex(&snap.Vertices[i], p, s)
			}
		}(lo, hi)
	}
	wg.Wait()
	return nil
}
