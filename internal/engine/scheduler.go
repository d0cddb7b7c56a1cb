package engine

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/worklist"
)

// scheduler hands the entries of a parallel run to workers. It is the
// queue those workers spawn entries into.
type scheduler struct {
	log     *slog.Logger
	workers int
	// halted is set once any worker was told to stop; the others stop at
	// their next poll.
	halted atomic.Bool

	totalPixels    int
	finishedPixels int

	unstarted []worklist.Entry
	inProcess int
	m         sync.Mutex
}

func newScheduler(e *Engine, entries []worklist.Entry) *scheduler {
	s := &scheduler{log: e.log}
	for _, ent := range entries {
		// Symmetric entries must stay whole to keep their axis.
		if ent.Fresh() && ent.Sym == 0 && e.cfg.TileSize > 0 {
			for _, t := range worklist.Split(ent.Rect(), e.cfg.TileSize, e.cfg.TileSize, ent.Pass, 0) {
				s.push(t)
			}
			continue
		}
		s.push(ent)
	}
	return s
}

func area(ent worklist.Entry) int {
	r := ent.Rect()
	return r.Dx() * r.Dy()
}

func (s *scheduler) push(ent worklist.Entry) {
	s.unstarted = append(s.unstarted, ent)
	s.totalPixels += area(ent)
}

func (s *scheduler) add(ent worklist.Entry) error {
	s.m.Lock()
	defer s.m.Unlock()
	s.push(ent)
	return nil
}

func (s *scheduler) pending() int {
	s.m.Lock()
	defer s.m.Unlock()
	return len(s.unstarted)
}

func (s *scheduler) room() bool { return true }

func (s *scheduler) popEntry() (ent worklist.Entry, found bool) {
	if s.halted.Load() {
		return worklist.Entry{}, false
	}
	s.m.Lock()
	defer s.m.Unlock()
	if len(s.unstarted) == 0 {
		return worklist.Entry{}, false
	}
	ent = s.unstarted[0]
	s.unstarted = s.unstarted[1:]
	s.inProcess++
	return ent, true
}

func (s *scheduler) finished() float32 {
	s.m.Lock()
	defer s.m.Unlock()
	return float32(s.finishedPixels) / float32(s.totalPixels)
}

func (s *scheduler) entryFinished(ent worklist.Entry, stopped bool) {
	s.m.Lock()
	s.inProcess--
	if !stopped {
		s.finishedPixels += area(ent)
	}
	s.m.Unlock()
	s.log.Debug("entry finished", "rect", ent.Rect(), "stopped", stopped, "finished", s.finished())
}

// remaining returns the entries left once every worker returned.
func (s *scheduler) remaining() []worklist.Entry {
	s.m.Lock()
	defer s.m.Unlock()
	return append([]worklist.Entry(nil), s.unstarted...)
}

func (s *scheduler) incActiveWorker() {
	s.m.Lock()
	s.workers++
	w := s.workers
	s.m.Unlock()

	s.log.Debug("worker started", "workers", w)
}

func (s *scheduler) decActiveWorkers() {
	s.m.Lock()
	s.workers--
	w := s.workers
	s.m.Unlock()

	s.log.Debug("worker stopped", "workers", w)
}

// render works on entries until none are left or the run is halted. It is
// called from one goroutine per worker.
func (s *scheduler) render(w *worker) {
	s.incActiveWorker()
	defer s.decActiveWorkers()

	for {
		ent, found := s.popEntry()
		if !found {
			return
		}
		stopped := w.perform(s, ent)
		s.entryFinished(ent, stopped)
		if stopped {
			s.halted.Store(true)
			return
		}
	}
}
