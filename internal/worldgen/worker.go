package worldgen

import (
	"sync"

	"starforge/internal/automaton"
)

// Pool runs chunk generation on a fixed set of worker goroutines. Requests
// are validated synchronously at submit time; generation itself is pure, so
// no result ever depends on ordering and a caller may simply ignore results
// it no longer wants. There is no cancellation: a stale request costs one
// cheap computation.
type Pool struct {
	requests chan Request
	results  chan *Chunk
	wg       sync.WaitGroup
}

// NewPool starts workers goroutines ready to serve chunk requests.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{
		requests: make(chan Request, workers*4),
		results:  make(chan *Chunk, workers*4),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.serve()
	}
	return p
}

func (p *Pool) serve() {
	defer p.wg.Done()
	for req := range p.requests {
		// Submit already validated; both calls cannot fail here.
		gen, err := NewGenerator(req.Seed, req.Rule, req.MoistureRule)
		if err != nil {
			continue
		}
		chunk, err := gen.GenerateChunk(req.ChunkX, req.ChunkY, req.ChunkSize)
		if err != nil {
			continue
		}
		p.results <- chunk
	}
}

// Submit validates req and queues it for generation. Validation failures
// surface here, synchronously; the results channel only ever carries
// well-formed chunks.
func (p *Pool) Submit(req Request) error {
	if _, err := automaton.NewRule(req.Rule); err != nil {
		return err
	}
	if req.MoistureRule >= 0 {
		if _, err := automaton.NewRule(req.MoistureRule); err != nil {
			return err
		}
	}
	if req.ChunkSize < 1 {
		return ErrInvalidChunkSize
	}
	p.requests <- req
	return nil
}

// Results delivers finished chunks in completion order.
func (p *Pool) Results() <-chan *Chunk {
	return p.results
}

// Close stops accepting requests, waits for in-flight work, and closes the
// results channel. Callers must drain Results concurrently with, or before,
// Close: the results channel is bounded, and workers block on it once it
// fills, which in turn blocks Close.
func (p *Pool) Close() {
	close(p.requests)
	p.wg.Wait()
	close(p.results)
}
