// Package streaming loads and unloads named level segments in the background.
//
// Requests are processed by a single worker goroutine in submission order, so
// requests for the same segment never overtake each other. Reading happens on
// the worker; attaching and detaching happen on the caller's thread in Poll.
package streaming

import (
	"log"
	"sync"
	"sync/atomic"
)

// Source reads a segment by name. Read runs on the worker goroutine.
type Source[T any] interface {
	Read(name string) (T, error)
}

// Sink receives finished segments. Its methods are only called from Poll.
type Sink[T any] interface {
	Attach(name string, segment T)
	Detach(name string)
}

type op int

const (
	opLoad op = iota
	opUnload
)

func (o op) String() string {
	if o == opUnload {
		return "unload"
	}
	return "load"
}

type request struct {
	name string
	op   op
}

type result[T any] struct {
	request
	segment T
	err     error
}

type Streamer[T any] struct {
	source Source[T]
	sink   Sink[T]

	mu     sync.Mutex
	queue  []request
	done   []result[T]
	closed bool

	wake chan struct{}
	quit chan struct{}
	wg   sync.WaitGroup

	pending atomic.Int32

	// loaded is owned by the Poll caller.
	loaded map[string]bool
}

// New starts the worker. Call Close to stop it.
func New[T any](source Source[T], sink Sink[T]) *Streamer[T] {
	s := &Streamer[T]{
		source: source,
		sink:   sink,
		wake:   make(chan struct{}, 1),
		quit:   make(chan struct{}),
		loaded: make(map[string]bool),
	}
	s.wg.Add(1)
	go s.run()
	return s
}

// Load requests that name be read and attached. It never blocks.
func (s *Streamer[T]) Load(name string) {
	s.enqueue(request{name: name, op: opLoad})
}

// Unload requests that name be detached once earlier requests are done.
func (s *Streamer[T]) Unload(name string) {
	s.enqueue(request{name: name, op: opUnload})
}

// IsLoaded reports whether name is attached as of the last Poll.
func (s *Streamer[T]) IsLoaded(name string) bool {
	return s.loaded[name]
}

// Loaded returns the attached segment names.
func (s *Streamer[T]) Loaded() []string {
	names := make([]string, 0, len(s.loaded))
	for name := range s.loaded {
		names = append(names, name)
	}
	return names
}

// Pending returns the number of requests not yet applied by Poll.
func (s *Streamer[T]) Pending() int {
	return int(s.pending.Load())
}

func (s *Streamer[T]) enqueue(req request) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		log.Printf("Streaming: %s %q dropped, streamer closed", req.op, req.name)
		return
	}
	s.queue = append(s.queue, req)
	s.pending.Add(1)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Streamer[T]) next() (request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return request{}, false
	}
	req := s.queue[0]
	s.queue = s.queue[1:]
	return req, true
}

func (s *Streamer[T]) run() {
	defer s.wg.Done()
	for {
		req, ok := s.next()
		if !ok {
			select {
			case <-s.wake:
				continue
			case <-s.quit:
				return
			}
		}

		res := result[T]{request: req}
		if req.op == opLoad {
			res.segment, res.err = s.source.Read(req.name)
		}

		s.mu.Lock()
		s.done = append(s.done, res)
		s.mu.Unlock()
	}
}

// Poll applies every finished request in submission order and returns how
// many were applied. Call it from the thread that owns the sink.
func (s *Streamer[T]) Poll() int {
	s.mu.Lock()
	done := s.done
	s.done = nil
	s.mu.Unlock()

	for _, res := range done {
		s.apply(res)
		s.pending.Add(-1)
	}
	return len(done)
}

func (s *Streamer[T]) apply(res result[T]) {
	switch res.op {
	case opLoad:
		if res.err != nil {
			log.Printf("Streaming: load %q failed: %v", res.name, res.err)
			return
		}
		if s.loaded[res.name] {
			return
		}
		s.sink.Attach(res.name, res.segment)
		s.loaded[res.name] = true
		log.Printf("Streaming: loaded %q", res.name)
	case opUnload:
		if !s.loaded[res.name] {
			return
		}
		s.sink.Detach(res.name)
		delete(s.loaded, res.name)
		log.Printf("Streaming: unloaded %q", res.name)
	}
}

// Close stops the worker. Requests still queued are discarded; results
// already read stay available to Poll.
func (s *Streamer[T]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	dropped := len(s.queue)
	s.queue = nil
	s.pending.Add(int32(-dropped))
	s.mu.Unlock()

	close(s.quit)
	s.wg.Wait()
}
