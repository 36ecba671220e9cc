package inkpad

func mergeable(e *Element) bool {
	return e.Kind == PointKind || e.Kind == PolylineKind
}

// MergePolylines joins points and polylines whose first point exactly equals the last point of an earlier point or polyline, without losing any coordinates. Elements are taken in order as anchors. Each following element that starts where the anchor's chain currently ends is absorbed in a forward scan, and the scan is repeated until it absorbs nothing. Absorbed elements are removed and an anchor that grew is replaced in place by a polyline. Poly-Béziers are never merged.
//
// With more than one worker every worker only merges elements within its own partition, so chains crossing a partition boundary stay split.
func (d *Document) MergePolylines() error {
	n := d.Len()

	// partitions are frozen before any worker removes elements
	hs, es := d.list.snapshot()
	if err := checkKinds("optimize", "merge", es); err != nil {
		return err
	}
	err := forkJoin(Partition(len(es), d.workers), func(r Range) error {
		d.mergeRange(hs[r.Start:r.End], es[r.Start:r.End])
		return nil
	})
	d.bounds.invalidate()
	if err != nil {
		return err
	}
	Logger().Debug("merge polylines", "before", n, "after", d.Len(), "workers", d.workers)
	return nil
}

// mergeRange merges within a single partition. It only removes elements of hs.
func (d *Document) mergeRange(hs []Handle, es []*Element) {
	removed := make([]bool, len(es))
	for i, e := range es {
		if removed[i] || !mergeable(e) {
			continue
		}

		chain := append([]float64(nil), e.Coords...)
		n := len(chain)
		for absorbed := true; absorbed; {
			// forward passes continue after each absorbed element and repeat until one absorbs nothing
			absorbed = false
			for j := i + 1; j < len(es); j++ {
				f := es[j]
				x, y := chain[len(chain)-2], chain[len(chain)-1]
				if removed[j] || !mergeable(f) || f.Coords[0] != x || f.Coords[1] != y {
					continue
				}
				if f.Kind == PolylineKind {
					chain = append(chain, f.Coords[2:]...)
				}
				d.list.remove(hs[j])
				removed[j] = true
				absorbed = true
			}
		}
		if len(chain) != n {
			e.Kind = PolylineKind
			e.Coords = chain
		}
	}
}

// SimplifyPolylines removes points from polylines that are within radius of the line between the points that are kept. The first and last point of every polyline are kept, a larger radius never keeps more points.
func (d *Document) SimplifyPolylines(radius float64) error {
	n := d.ParameterCount()
	err := d.each("optimize", "simplify", func(e *Element) {
		if e.Kind == PolylineKind {
			e.Coords = simplifyPolyline(e.Coords, radius)
		}
	})
	d.bounds.invalidate()
	if err != nil {
		return err
	}
	Logger().Debug("simplify polylines", "radius", radius, "parameters", n, "remaining", d.ParameterCount(), "workers", d.workers)
	return nil
}

// SmoothPolylines replaces every polyline by a poly-Bézier through the same points, with control points offset horizontally by the segment's width divided by tension. A tension of zero is invalid.
func (d *Document) SmoothPolylines(tension float64) error {
	if tension == 0.0 {
		return invalidParameterError("optimize", "smooth", "tension must be non-zero")
	}

	err := d.each("optimize", "smooth", func(e *Element) {
		if e.Kind == PolylineKind {
			e.Coords = smoothPolyline(e.Coords, tension)
			e.Kind = PolyBezierKind
		}
	})
	d.bounds.invalidate()
	if err != nil {
		return err
	}
	Logger().Debug("smooth polylines", "tension", tension, "elements", d.Len(), "workers", d.workers)
	return nil
}
