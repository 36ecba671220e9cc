package inkpad

import (
	"fmt"

	"github.com/google/uuid"
)

// Document is an ordered collection of drawable elements together with the pen used for new elements and the canvas they are drawn on. A Document is not safe for concurrent use, its passes fan out internally.
type Document struct {
	pen     Pen
	canvas  Canvas
	workers int

	list   elementList
	bounds boundsCache
}

// New returns an empty document. Passing nil uses DefaultOptions.
func New(opts *Options) *Document {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	d := &Document{}
	d.SetWorkers(opts.Workers)
	d.Clear()
	return d
}

// Clear removes all elements and resets the pen and canvas to their defaults.
func (d *Document) Clear() {
	d.pen = DefaultPen
	d.canvas = Canvas{Background: White}
	d.list.clear()
	d.bounds.invalidate()
}

// SetPen sets the pen that is copied into elements created from now on.
func (d *Document) SetPen(pen Pen) {
	d.pen = pen
}

// Pen returns the current pen.
func (d *Document) Pen() Pen {
	return d.pen
}

// SetCanvas sets the canvas extent and background.
func (d *Document) SetCanvas(canvas Canvas) {
	d.canvas = canvas
}

// Canvas returns the canvas extent and background.
func (d *Document) Canvas() Canvas {
	return d.canvas
}

// SetWorkers sets the number of partitions used by the transformation and optimization passes.
func (d *Document) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	d.workers = n
}

// Workers returns the number of partitions used by the passes.
func (d *Document) Workers() int {
	return d.workers
}

////////////////////////////////////////////////////////////////

// Insert inserts a copy of e before the element at h, or at the end for the zero Handle, and returns its handle. The width and colors of the given pen are copied into the element. A new ID is assigned if e has none.
func (d *Document) Insert(pen Pen, e Element, at Handle) Handle {
	f := e.Copy()
	f.setPen(pen)
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	h := d.list.insertBefore(&f, at)
	d.bounds.invalidate()
	return h
}

// AddPoint appends a point.
func (d *Document) AddPoint(x, y float64) Handle {
	return d.InsertPoint(x, y, Handle{})
}

// InsertPoint inserts a point before the element at h.
func (d *Document) InsertPoint(x, y float64, at Handle) Handle {
	return d.Insert(d.pen, Element{Kind: PointKind, Coords: []float64{x, y}}, at)
}

// AddPolyline appends a polyline with coordinates x0,y0,x1,y1,...
func (d *Document) AddPolyline(coords []float64) Handle {
	return d.InsertPolyline(coords, Handle{})
}

// InsertPolyline inserts a polyline before the element at h.
func (d *Document) InsertPolyline(coords []float64, at Handle) Handle {
	return d.Insert(d.pen, Element{Kind: PolylineKind, Coords: coords}, at)
}

// AddPolyBezier appends a poly-Bézier with coordinates of the start point followed by control1, control2 and end point for each segment.
func (d *Document) AddPolyBezier(coords []float64) Handle {
	return d.InsertPolyBezier(coords, Handle{})
}

// InsertPolyBezier inserts a poly-Bézier before the element at h.
func (d *Document) InsertPolyBezier(coords []float64, at Handle) Handle {
	return d.Insert(d.pen, Element{Kind: PolyBezierKind, Coords: coords}, at)
}

// Set replaces the element at h in place by a copy of e, keeping its handle. The ID of the replaced element is kept when e has none, and so are its width and colors when e has zero width and colors.
func (d *Document) Set(h Handle, e Element) error {
	old, ok := d.list.get(h)
	if !ok {
		return &Error{"document", "set", fmt.Sprintf("invalid handle %v", h), ErrInvalidParameter}
	}
	f := e.Copy()
	if f.ID == uuid.Nil {
		f.ID = old.ID
	}
	if f.pen() == (Pen{}) {
		f.setPen(old.pen())
	}
	d.list.set(h, &f)
	d.bounds.invalidate()
	return nil
}

// Remove removes the element at h. It returns false if h does not refer to an element.
func (d *Document) Remove(h Handle) bool {
	if !d.list.remove(h) {
		return false
	}
	d.bounds.invalidate()
	return true
}

// Get returns the element at h. The element may be modified, but callers that change its coordinates must call Touch afterwards.
func (d *Document) Get(h Handle) (*Element, bool) {
	return d.list.get(h)
}

// Touch marks the bounds as outdated after elements were modified through Get or Walk.
func (d *Document) Touch() {
	d.bounds.invalidate()
}

// Front returns the handle of the first element, or the zero Handle if the document is empty.
func (d *Document) Front() Handle {
	return d.list.front()
}

// Next returns the handle following h, or the zero Handle at the end.
func (d *Document) Next(h Handle) Handle {
	return d.list.next(h)
}

// Walk calls fn for every element in order and stops at the first error.
func (d *Document) Walk(fn func(Handle, *Element) error) error {
	for h := d.list.front(); !h.IsZero(); h = d.list.next(h) {
		e, _ := d.list.get(h)
		if err := fn(h, e); err != nil {
			return err
		}
	}
	return nil
}

// Elements returns a copy of all elements in order.
func (d *Document) Elements() []Element {
	_, es := d.list.snapshot()
	elements := make([]Element, len(es))
	for i, e := range es {
		elements[i] = e.Copy()
	}
	return elements
}

// Len returns the number of elements.
func (d *Document) Len() int {
	return d.list.len()
}

// ParameterCount returns the number of scalar values stored over all elements: two for a point and two per coordinate pair for polylines and poly-Béziers.
func (d *Document) ParameterCount() int {
	n := 0
	for idx := d.list.head; idx != 0; idx = d.list.nodes[idx-1].next {
		e := d.list.nodes[idx-1].e
		switch e.Kind {
		case PointKind:
			n += 2
		case PolylineKind, PolyBezierKind:
			n += 2 * e.Pairs()
		}
	}
	return n
}

// checkKinds returns an error for the first element of unknown kind.
func checkKinds(component, op string, es []*Element) error {
	for _, e := range es {
		if !e.Kind.Valid() {
			return UnsupportedKindError(component, op, e.Kind)
		}
	}
	return nil
}

// each runs fn on every element, split over the document's workers. Each element is visited by exactly one worker. All kinds are checked before fn runs, so an unknown kind leaves the document untouched.
func (d *Document) each(component, op string, fn func(*Element)) error {
	_, es := d.list.snapshot()
	if err := checkKinds(component, op, es); err != nil {
		return err
	}
	return forkJoin(Partition(len(es), d.workers), func(r Range) error {
		for _, e := range es[r.Start:r.End] {
			fn(e)
		}
		return nil
	})
}
