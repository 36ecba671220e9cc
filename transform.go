package inkpad

import "math"

// Rotate rotates all elements by rot degrees counter clockwise around the canvas center and then crops the canvas to the rotated elements.
func (d *Document) Rotate(rot float64) error {
	sintheta, costheta := math.Sincos(rot * math.Pi / 180.0)
	cx, cy := d.canvas.W/2.0, d.canvas.H/2.0
	err := d.each("transform", "rotate", func(e *Element) {
		for i := 0; i+1 < len(e.Coords); i += 2 {
			x, y := e.Coords[i]-cx, e.Coords[i+1]-cy
			e.Coords[i] = x*costheta - y*sintheta + cx
			e.Coords[i+1] = x*sintheta + y*costheta + cy
		}
	})
	d.bounds.invalidate()
	if err != nil {
		return err
	}
	Logger().Debug("rotate", "degrees", rot, "elements", d.Len(), "workers", d.workers)
	return d.Autocrop()
}

// Translate moves all elements by (dx,dy). Integer offsets keep integer coordinates exact.
func (d *Document) Translate(dx, dy int) error {
	return d.translate("translate", float64(dx), float64(dy))
}

func (d *Document) translate(op string, dx, dy float64) error {
	err := d.each("transform", op, func(e *Element) {
		for i := 0; i+1 < len(e.Coords); i += 2 {
			e.Coords[i] += dx
			e.Coords[i+1] += dy
		}
	})
	d.bounds.invalidate()
	return err
}

// Autocrop moves all elements so that their bounds start at the origin and sets the canvas extent to the size of the bounds.
func (d *Document) Autocrop() error {
	rect, err := d.Bounds()
	if err != nil {
		return err
	}
	if err := d.translate("autocrop", -rect.X0, -rect.Y0); err != nil {
		return err
	}
	d.canvas.W = rect.W()
	d.canvas.H = rect.H()
	d.bounds.invalidate()
	return nil
}
