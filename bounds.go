package inkpad

// boundsCache holds the bounding box over all element coordinates. While dirty is false, rect equals a full recomputation over the current elements.
type boundsCache struct {
	dirty bool
	rect  Rect
}

func (c *boundsCache) invalidate() {
	c.dirty = true
}

// get returns the cached rectangle, recomputing it first if the cache is dirty. A failed computation leaves the cache dirty.
func (c *boundsCache) get(compute func() (Rect, error)) (Rect, error) {
	if !c.dirty {
		return c.rect, nil
	}
	rect, err := compute()
	if err != nil {
		return Rect{}, err
	}
	c.rect = rect
	c.dirty = false
	return rect, nil
}

// Bounds returns the bounding box over all coordinate pairs of all elements, including Bézier control points. An empty document has zero bounds.
func (d *Document) Bounds() (Rect, error) {
	return d.bounds.get(d.computeBounds)
}

func (d *Document) computeBounds() (Rect, error) {
	rect := Rect{}
	first := true
	for idx := d.list.head; idx != 0; idx = d.list.nodes[idx-1].next {
		e := d.list.nodes[idx-1].e
		if !e.Kind.Valid() {
			return Rect{}, UnsupportedKindError("document", "bounds", e.Kind)
		}
		for i := 0; i+1 < len(e.Coords); i += 2 {
			p := Point{e.Coords[i], e.Coords[i+1]}
			if first {
				rect = Rect{p.X, p.Y, p.X, p.Y}
				first = false
			} else {
				rect = rect.AddPoint(p)
			}
		}
	}
	return rect, nil
}
