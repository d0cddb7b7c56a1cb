package engine

import (
	"image"

	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/trace"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/worklist"
)

// Sym bits of a work entry.
const (
	symXAxis   = 0x01
	symDecided = 0x10
)

// queue takes the entries a worker spawns: halves split off for symmetry,
// deferred second passes and the residue of an interrupted entry.
type queue interface {
	add(worklist.Entry) error
	pending() int
	// room reports whether a symmetry split may add an entry.
	room() bool
}

type listQueue struct{ l *worklist.List }

func (q listQueue) add(e worklist.Entry) error { return q.l.Add(e) }
func (q listQueue) pending() int               { return q.l.Len() }
func (q listQueue) room() bool                 { return q.l.Cap() <= 0 || q.l.Len() < q.l.Cap()-1 }

type scanKind int

const (
	scanEvery scanKind = iota
	// scanRest skips the pixels the guess pass calculated.
	scanRest
	// scanGaps only calculates pixels still holding the background colour.
	scanGaps
)

// worker calculates work entries one at a time on its own pixelCalc.
type worker struct {
	e      *Engine
	calc   pixelCalc
	halt   func() bool
	budget int

	// The entry being worked on. Its YStop shrinks when symmetry splits it.
	ent worklist.Entry
	// iyStop is the last row calculated; rows past it are mirrored.
	iyStop int
	mirror bool
}

func (e *Engine) newWorker(calc pixelCalc, halt func() bool) *worker {
	calc.setPoll(e.cfg.PollEvery, halt)
	return &worker{e: e, calc: calc, halt: halt, budget: e.cfg.CheckInterval}
}

// perform works on ent until it is done or a poll stops it, in which case
// the unfinished part goes back on q and perform reports true.
func (w *worker) perform(q queue, ent worklist.Entry) bool {
	w.ent = ent
	w.iyStop = ent.YStop
	w.mirror = false

	from := trace.Cursor{Col: ent.XBegin, Row: ent.YBegin, Trail: trace.Background}
	rp, ok := w.e.takePoint(image.Pt(ent.XBegin, ent.YBegin))
	if ok && !ent.Fresh() {
		w.calc.restorePeriod(rp.period)
		if rp.tracing {
			from.Trail, from.Pending = rp.trail, rp.pending
		}
	}
	w.splitSymmetry(q)

	cfg := &w.e.cfg
	switch {
	case cfg.Mode == BoundaryTrace:
		return w.boundaryTrace(q, from)
	case cfg.Mode == TwoPass && w.ent.Pass == 0:
		return w.guessPass(q)
	case cfg.Mode == TwoPass:
		return w.scan(q, scanRest)
	}
	return w.scan(q, scanEvery)
}

// splitSymmetry decides whether the entry is mirrored about the real axis.
// When the axis is off centre the entry is cut so that the part calculated
// now is symmetric, and the rest goes back on q.
func (w *worker) splitSymmetry(q queue) {
	ax := w.e.axis
	if !ax.on {
		return
	}
	ent := &w.ent
	if ent.Sym&symDecided != 0 {
		if ent.Sym&symXAxis != 0 {
			w.iyStop = (ent.YStart + ent.YStop) / 2
			w.mirror = true
		}
		return
	}
	ent.Sym |= symDecided
	if ax.row <= ent.YStart || ax.row >= ent.YStop {
		return
	}
	i := ax.row + (ax.row - ent.YStart)
	if ax.between {
		i++
	}
	switch {
	case i > ent.YStop:
		// The bottom part holds the mirror image; this part has none.
		if !q.room() {
			return
		}
		j := ax.row - (ent.YStop - ax.row)
		if !ax.between {
			j--
		}
		w.spawn(q, worklist.Entry{
			XStart: ent.XStart, XStop: ent.XStop, XBegin: ent.XStart,
			YStart: j + 1, YStop: ent.YStop, YBegin: j + 1, Pass: ent.Pass,
		})
		ent.YStop = j
		w.iyStop = j
		return
	case i < ent.YStop:
		if !q.room() {
			return
		}
		w.spawn(q, worklist.Entry{
			XStart: ent.XStart, XStop: ent.XStop, XBegin: ent.XStart,
			YStart: i + 1, YStop: ent.YStop, YBegin: i + 1, Pass: ent.Pass,
		})
		ent.YStop = i
	}
	w.iyStop = ax.row
	ent.Sym |= symXAxis
	w.mirror = true
}

func (w *worker) spawn(q queue, ent worklist.Entry) {
	if err := q.add(ent); err != nil {
		w.e.warnf("dropped work %v: %v", ent.Rect(), err)
	}
}

// pixel calculates and plots (x, y). ok is false when a poll stopped the
// calculation first.
func (w *worker) pixel(x, y int) (color int, ok bool) {
	if w.budget <= 0 {
		if w.halt() {
			return 0, false
		}
		w.budget = w.e.cfg.CheckInterval
	}
	r := w.calc.run(x, y)
	if r.Interrupted {
		return 0, false
	}
	w.budget -= r.Iterations
	color = w.e.cfg.color(r)
	w.plot(x, y, color)
	return color, true
}

func (w *worker) plot(x, y, color int) {
	w.e.put(x, y, color)
	if !w.mirror {
		return
	}
	if i := w.ent.YStop - (y - w.ent.YStart); i > w.iyStop && i < w.e.bounds.Max.Y {
		w.e.put(x, i, color)
	}
}

// residual is what is left of the entry when it stops at (col, row) of a
// scan. Under symmetry the bottom is cut by as many rows as the top so the
// axis stays put.
func (w *worker) residual(col, row, pass int) worklist.Entry {
	ent := w.ent
	ystop := ent.YStop
	if w.iyStop != ent.YStop {
		ystop -= row - ent.YStart
	}
	return worklist.Entry{
		XStart: ent.XStart, XStop: ent.XStop, XBegin: col,
		YStart: row, YStop: ystop, YBegin: row,
		Pass: pass, Sym: ent.Sym,
	}
}

// suspend queues the residue of an interrupted entry and remembers the
// state needed to continue it exactly.
func (w *worker) suspend(q queue, rest worklist.Entry, rp resumePoint) {
	rp.period = w.calc.periodState()
	w.e.savePoint(image.Pt(rest.XBegin, rest.YBegin), rp)
	w.spawn(q, rest)
}

// restartAt resets the periodicity state carried along a row at the left
// edge of the entry and at every tile column, so the state reaching a pixel
// does not depend on how the row was cut into entries.
func (w *worker) restartAt(col int) {
	t := w.e.cfg.TileSize
	if col == w.ent.XStart || t > 0 && col%t == 0 {
		w.calc.resetRow()
	}
}

func (w *worker) scan(q queue, kind scanKind) bool {
	ent := &w.ent
	col := ent.XBegin
	for row := ent.YBegin; row <= w.iyStop; row++ {
		for ; col <= ent.XStop; col++ {
			w.restartAt(col)
			switch kind {
			case scanRest:
				if row&1 == 0 && col&1 == 0 {
					continue
				}
			case scanGaps:
				if w.e.grid.At(col, row) != trace.Background {
					continue
				}
			}
			if _, ok := w.pixel(col, row); !ok {
				w.suspend(q, w.residual(col, row, ent.Pass), resumePoint{})
				return true
			}
		}
		col = ent.XStart
	}
	return false
}

// guessPass calculates the even pixels of even rows and paints each into
// the 2x2 block it starts. The second pass either follows right away or,
// when other entries are waiting, is queued behind them.
func (w *worker) guessPass(q queue) bool {
	ent := &w.ent
	col, row := ent.XBegin, ent.YBegin
	for row <= w.iyStop {
		for ; col <= ent.XStop; col++ {
			w.restartAt(col)
			color, ok := w.pixel(col, row)
			if !ok {
				w.suspend(q, worklist.Entry{
					XStart: ent.XStart, XStop: ent.XStop, XBegin: col,
					YStart: ent.YStart, YStop: ent.YStop, YBegin: row,
					Pass: 0, Sym: ent.Sym,
				}, resumePoint{})
				return true
			}
			if row&1 == 0 && row < w.iyStop {
				w.plot(col, row+1, color)
				if col&1 == 0 && col < ent.XStop {
					w.plot(col+1, row+1, color)
				}
			}
			if col&1 == 0 && col < ent.XStop {
				col++
				w.plot(col, row, color)
			}
		}
		col = ent.XStart
		if row&1 == 0 {
			row++
		}
		row++
	}
	if q.pending() > 0 {
		w.spawn(q, worklist.Entry{
			XStart: ent.XStart, XStop: ent.XStop, XBegin: ent.XStart,
			YStart: ent.YStart, YStop: ent.YStop, YBegin: ent.YStart,
			Pass: 1, Sym: ent.Sym,
		})
		return false
	}
	ent.Pass = 1
	ent.XBegin, ent.YBegin = ent.XStart, ent.YStart
	return w.scan(q, scanRest)
}

// traceSurface lets the tracer read the grid and calculate through the
// worker.
type traceSurface struct{ w *worker }

func (s traceSurface) Color(x, y int) int           { return s.w.e.grid.At(x, y) }
func (s traceSurface) Compute(x, y int) (int, bool) { return s.w.pixel(x, y) }
func (s traceSurface) ResetPeriodicity()            { s.w.calc.resetRow() }
func (s traceSurface) FillRow(y, left, right, color int) {
	for x := left; x <= right; x++ {
		s.w.plot(x, y, color)
	}
}

func (w *worker) boundaryTrace(q queue, from trace.Cursor) bool {
	ent := &w.ent
	bounds := image.Rect(ent.XStart, ent.YStart, ent.XStop+1, w.iyStop+1)
	out, err := trace.Trace(traceSurface{w}, bounds, from, trace.Options{
		FillColor: w.e.cfg.FillColor,
		MaxSteps:  w.e.cfg.TraceSteps,
	})
	if err != nil {
		w.e.warnf("%v; calculating the rest of %v pixel by pixel", err, bounds)
		ent.XBegin, ent.YBegin = ent.XStart, ent.YStart
		return w.scan(q, scanGaps)
	}
	if !out.Interrupted {
		return false
	}
	at := out.At
	w.suspend(q, w.residual(at.Col, at.Row, 0), resumePoint{
		tracing: true,
		trail:   at.Trail,
		pending: at.Pending,
	})
	return true
}
