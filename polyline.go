package inkpad

import "math"

// simplifyPolyline returns the coordinates of a polyline without the points that lie within radius of the line between the points that are kept. Starting at the first point as anchor, candidates are taken in order and stay provisional as long as all points strictly between anchor and candidate are within radius of the line anchor-candidate. At the first point that is not, the previous candidate is kept and becomes the new anchor. The first and last points are always kept.
func simplifyPolyline(coords []float64, radius float64) []float64 {
	n := len(coords) / 2
	if n < 3 {
		return coords
	}

	q := make([]float64, 0, len(coords))
	q = append(q, coords[0], coords[1])
	anchor := 0
	for i := 2; i < n; i++ {
		if !withinRadius(coords, anchor, i, radius) {
			anchor = i - 1
			q = append(q, coords[2*anchor], coords[2*anchor+1])
		}
	}
	return append(q, coords[2*n-2], coords[2*n-1])
}

// withinRadius returns true if all points strictly between i and j lie within radius of the line through points i and j.
func withinRadius(coords []float64, i, j int, radius float64) bool {
	a := Point{coords[2*i], coords[2*i+1]}
	line := Point{coords[2*j], coords[2*j+1]}.Sub(a)
	length := line.Length()
	for k := i + 1; k < j; k++ {
		p := Point{coords[2*k], coords[2*k+1]}.Sub(a)
		var dist float64
		if length == 0.0 {
			dist = p.Length()
		} else {
			dist = math.Abs(p.PerpDot(line)) / length
		}
		if radius < dist {
			return false
		}
	}
	return true
}

// smoothPolyline returns the poly-Bézier coordinates that replace a polyline. Each segment P[i-1]-P[i] becomes a cubic Bézier with horizontal control points offset by (P[i].x-P[i-1].x)/tension from its end points.
func smoothPolyline(coords []float64, tension float64) []float64 {
	if len(coords) < 4 {
		return append([]float64(nil), coords...)
	}

	q := make([]float64, 0, 2+3*(len(coords)-2))
	q = append(q, coords[0], coords[1])
	for i := 2; i+1 < len(coords); i += 2 {
		offset := (coords[i] - coords[i-2]) / tension
		q = append(q,
			coords[i-2]+offset, coords[i-1],
			coords[i]-offset, coords[i+1],
			coords[i], coords[i+1],
		)
	}
	return q
}
