package engine

import (
	"cmp"
	"errors"
	"fmt"
	"image"
	"slices"

	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/period"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/worklist"
)

// ResumeVersion is the layout version written by Suspend.
const ResumeVersion = 2

// maxPoints bounds the resume points read back from a blob.
const maxPoints = 1 << 16

var (
	ErrResumeVersion  = errors.New("engine: unsupported resume version")
	ErrResumeMismatch = errors.New("engine: resume state belongs to another calculation")
	ErrNotSuspended   = errors.New("engine: calculation is not suspended")
	ErrStarted        = errors.New("engine: calculation already started")
)

// resumePoint is what continues an entry exactly at the pixel where it
// stopped.
type resumePoint struct {
	period period.State
	// tracing is set when a boundary trace stopped; trail and pending then
	// restore its cursor.
	tracing bool
	trail   int
	pending bool
}

// fingerprint is the part of the configuration a blob must agree with. It
// is written in 64 bits so large iteration limits stay distinct.
func (e *Engine) fingerprint() []int {
	c := &e.cfg
	return []int{
		c.Width, c.Height, c.MaxIter, int(c.Formula), int(e.prec.Kind), int(c.Mode), c.Periodicity, c.TileSize,
		e.bounds.Min.X, e.bounds.Min.Y, e.bounds.Max.X, e.bounds.Max.Y,
	}
}

// Suspend saves the unfinished work of a suspended engine. The blob resumes
// the calculation bit for bit in a new engine built from the same
// configuration and plotting into a grid that holds what this one plotted.
func (e *Engine) Suspend() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status != Suspended {
		return nil, fmt.Errorf("%w: %v", ErrNotSuspended, e.status)
	}
	w := worklist.NewWriter(ResumeVersion)
	for _, v := range e.fingerprint() {
		w.Int64(int64(v))
	}

	keys := make([]image.Point, 0, len(e.points))
	for p := range e.points {
		keys = append(keys, p)
	}
	slices.SortFunc(keys, func(a, b image.Point) int {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	})
	w.Int(len(keys))
	for _, p := range keys {
		rp := e.points[p]
		w.Int(p.X)
		w.Int(p.Y)
		w.Int64(int64(rp.period.Threshold))
		w.Bool(rp.period.Reset)
		w.Bool(rp.tracing)
		w.Int(rp.trail)
		w.Bool(rp.pending)
	}

	e.list.Encode(w)
	e.log.Info("calculation saved", "entries", e.list.Len(), "points", len(keys), "bytes", len(w.Bytes()))
	return w.Bytes(), nil
}

// Resume loads a blob written by Suspend into an idle engine, which is then
// Suspended and continues on the next Run. A blob that does not fit leaves
// the engine Idle.
func (e *Engine) Resume(blob []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status != Idle {
		return fmt.Errorf("%w: %v", ErrStarted, e.status)
	}
	r := worklist.NewReader(blob)
	if err := r.Err(); err != nil {
		return err
	}
	if v := r.Version(); v != ResumeVersion {
		return fmt.Errorf("%w: %d", ErrResumeVersion, v)
	}
	for i, want := range e.fingerprint() {
		got := r.Int64()
		if err := r.Err(); err != nil {
			return err
		}
		if got != int64(want) {
			return fmt.Errorf("%w: field %d is %d, want %d", ErrResumeMismatch, i, got, want)
		}
	}

	n := r.Int()
	if err := r.Err(); err != nil {
		return err
	}
	if n < 0 || n > maxPoints {
		return fmt.Errorf("%w: %d resume points", ErrResumeMismatch, n)
	}
	points := make(map[image.Point]resumePoint, n)
	for range n {
		p := image.Pt(r.Int(), r.Int())
		var rp resumePoint
		rp.period.Threshold = int(r.Int64())
		rp.period.Reset = r.Bool()
		rp.tracing = r.Bool()
		rp.trail = r.Int()
		rp.pending = r.Bool()
		if err := r.Err(); err != nil {
			return err
		}
		points[p] = rp
	}

	decoded, err := worklist.Decode(r, 0)
	if err != nil {
		return err
	}
	if err := r.Close(); err != nil {
		return err
	}
	entries := decoded.Entries()
	for _, ent := range entries {
		if !ent.Rect().In(e.bounds) {
			return fmt.Errorf("%w: entry %v outside %v", ErrResumeMismatch, ent.Rect(), e.bounds)
		}
	}
	list, err := worklist.FromEntries(e.listCap(len(entries)), entries)
	if err != nil {
		return err
	}
	e.list = list
	e.points = points
	e.status = Suspended
	e.log.Info("calculation resumed", "entries", list.Len(), "points", len(points))
	return nil
}
