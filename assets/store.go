package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sync"
	"time"

	"github.com/google/uuid"
)

// AssetID identifies a loaded asset for the lifetime of its store entry.
type AssetID string

// Handle is returned immediately by Load; its data resolves on a later Poll.
type Handle struct {
	ID   AssetID
	Path string
}

func (h Handle) IsZero() bool {
	return h.ID == ""
}

// State of a handle
type State int

const (
	StatePending State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "Pending"
	case StateReady:
		return "Ready"
	case StateFailed:
		return "Failed"
	}
	return "Unknown"
}

// DecodeFunc turns raw file bytes into an asset. It runs off the frame goroutine
// and must not touch shared state.
type DecodeFunc[T any] func(path string, data []byte) (T, error)

// FinishFunc post-processes a decoded asset on the frame goroutine, during Poll.
type FinishFunc[T any] func(path string, value T) (T, error)

type entry[T any] struct {
	handle  Handle
	state   State
	value   T
	err     error
	modTime time.Time
	loading bool
}

type result[T any] struct {
	id      AssetID
	value   T
	err     error
	modTime time.Time
}

// Store deduplicates loads by path and tracks each handle's state.
// Every method except the background decode must be called from the frame goroutine.
type Store[T any] struct {
	name   string
	fsys   fs.FS
	decode DecodeFunc[T]
	finish FinishFunc[T]

	entries  map[AssetID]*entry[T]
	paths    map[string]AssetID
	pending  []Event
	requests int

	mu       sync.Mutex
	done     []result[T]
	inflight sync.WaitGroup
}

func NewStore[T any](name string, fsys fs.FS, decode DecodeFunc[T]) *Store[T] {
	return &Store[T]{
		name:    name,
		fsys:    fsys,
		decode:  decode,
		entries: make(map[AssetID]*entry[T]),
		paths:   make(map[string]AssetID),
	}
}

// SetFinish installs a step run on the frame goroutine before a decoded value
// becomes Ready.
func (s *Store[T]) SetFinish(f FinishFunc[T]) {
	s.finish = f
}

func (s *Store[T]) Name() string {
	return s.name
}

// Load requests the asset at p. Repeated requests for the same path return the
// existing handle without touching the filesystem again.
func (s *Store[T]) Load(p string) Handle {
	p = path.Clean(p)
	if id, ok := s.paths[p]; ok {
		return s.entries[id].handle
	}

	h := Handle{ID: AssetID(uuid.NewString()), Path: p}
	s.entries[h.ID] = &entry[T]{handle: h, state: StatePending}
	s.paths[p] = h.ID
	s.requests++
	s.start(s.entries[h.ID])
	return h
}

// Requests reports how many distinct loads were issued.
func (s *Store[T]) Requests() int {
	return s.requests
}

func (s *Store[T]) start(e *entry[T]) {
	e.loading = true
	h := e.handle
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		r := s.read(h)
		s.mu.Lock()
		s.done = append(s.done, r)
		s.mu.Unlock()
	}()
}

func (s *Store[T]) read(h Handle) result[T] {
	r := result[T]{id: h.ID}
	if info, err := fs.Stat(s.fsys, h.Path); err == nil {
		r.modTime = info.ModTime()
	}
	data, err := fs.ReadFile(s.fsys, h.Path)
	if err != nil {
		r.err = fmt.Errorf("read %s %s: %w", s.name, h.Path, err)
		return r
	}
	r.value, r.err = s.decode(h.Path, data)
	return r
}

// Poll applies finished loads and returns the events produced since the last
// call. It never blocks on I/O.
func (s *Store[T]) Poll() []Event {
	s.mu.Lock()
	done := s.done
	s.done = nil
	s.mu.Unlock()

	for _, r := range done {
		e, ok := s.entries[r.id]
		if !ok {
			// Unloaded while the read was in flight
			continue
		}
		e.loading = false
		e.modTime = r.modTime

		if r.err == nil && s.finish != nil {
			r.value, r.err = s.finish(e.handle.Path, r.value)
		}
		if r.err != nil {
			if e.state == StateReady {
				log.Printf("Warning: reload of %s %s failed, keeping previous version: %v", s.name, e.handle.Path, r.err)
				continue
			}
			e.state = StateFailed
			e.err = r.err
			log.Printf("Warning: could not load %s %s: %v", s.name, e.handle.Path, r.err)
			continue
		}

		kind := EventAdded
		if e.state == StateReady {
			kind = EventModified
		}
		e.state = StateReady
		e.value = r.value
		e.err = nil
		s.pending = append(s.pending, Event{Kind: kind, ID: e.handle.ID, Path: e.handle.Path})
	}

	events := s.pending
	s.pending = nil
	return events
}

// Flush waits for in-flight loads and then polls.
func (s *Store[T]) Flush() []Event {
	s.inflight.Wait()
	return s.Poll()
}

// Get returns the asset if its handle is Ready.
func (s *Store[T]) Get(id AssetID) (T, bool) {
	var zero T
	e, ok := s.entries[id]
	if !ok || e.state != StateReady {
		return zero, false
	}
	return e.value, true
}

// State reports a handle's state. Unknown ids are Failed.
func (s *Store[T]) State(id AssetID) State {
	e, ok := s.entries[id]
	if !ok {
		return StateFailed
	}
	return e.state
}

// Err returns the error that left a handle Failed.
func (s *Store[T]) Err(id AssetID) error {
	if e, ok := s.entries[id]; ok {
		return e.err
	}
	return nil
}

// Stats counts handles per state.
func (s *Store[T]) Stats() (pending, ready, failed int) {
	for _, e := range s.entries {
		switch e.state {
		case StatePending:
			pending++
		case StateReady:
			ready++
		case StateFailed:
			failed++
		}
	}
	return pending, ready, failed
}

// Reload re-reads a handle's file. The next successful Poll emits Modified.
func (s *Store[T]) Reload(id AssetID) {
	e, ok := s.entries[id]
	if !ok || e.loading {
		return
	}
	s.start(e)
}

// Unload forgets a handle and queues a Removed event if it was Ready.
func (s *Store[T]) Unload(id AssetID) {
	e, ok := s.entries[id]
	if !ok {
		return
	}
	delete(s.entries, id)
	delete(s.paths, e.handle.Path)
	if e.state == StateReady {
		s.pending = append(s.pending, Event{Kind: EventRemoved, ID: id, Path: e.handle.Path})
	}
}

// CheckModified restarts loads for files whose modification time changed and
// unloads files that disappeared. Filesystems without modification times
// (embedded assets) never reload.
func (s *Store[T]) CheckModified() {
	for id, e := range s.entries {
		if e.loading {
			continue
		}
		info, err := fs.Stat(s.fsys, e.handle.Path)
		if errors.Is(err, fs.ErrNotExist) {
			if e.state == StateReady {
				log.Printf("[assets] %s %s was removed", s.name, e.handle.Path)
				s.Unload(id)
			}
			continue
		}
		if err != nil || info.ModTime().IsZero() || info.ModTime().Equal(e.modTime) {
			continue
		}
		log.Printf("[assets] reloading %s %s", s.name, e.handle.Path)
		s.start(e)
	}
}
