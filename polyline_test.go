package inkpad

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestSimplifyPolyline(t *testing.T) {
	var tts = []struct {
		coords []float64
		radius float64
		q      []float64
	}{
		{[]float64{0, 0, 1, 1}, 100.0, []float64{0, 0, 1, 1}},
		{[]float64{0, 0, 1, 2, 2, 0, 3, 3, 4, 0}, 0.0, []float64{0, 0, 1, 2, 2, 0, 3, 3, 4, 0}},
		{[]float64{0, 0, 1, 0, 2, 0, 3, 0}, 0.0, []float64{0, 0, 3, 0}},
		{[]float64{0, 0, 1, 0.5, 2, 0, 3, 5, 4, 0}, 1.0, []float64{0, 0, 2, 0, 3, 5, 4, 0}},
		{[]float64{0, 0, 1, 0.5, 2, 0, 3, 5, 4, 0}, 10.0, []float64{0, 0, 4, 0}},
		{[]float64{0, 0, 5, 5, 0, 0}, 1.0, []float64{0, 0, 5, 5, 0, 0}},
		{[]float64{0, 0, 0.5, 0, 0, 0}, 1.0, []float64{0, 0, 0, 0}},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.coords, tt.radius), func(t *testing.T) {
			test.T(t, simplifyPolyline(tt.coords, tt.radius), tt.q)
		})
	}
}

func TestSimplifyPolylineMonotone(t *testing.T) {
	coords := []float64{}
	for i := 0; i < 50; i++ {
		y := float64((i*7)%11) - 5.0
		coords = append(coords, float64(i), y)
	}

	prev := len(coords)
	for _, radius := range []float64{0.0, 0.5, 1.0, 2.0, 4.0, 8.0, 16.0} {
		q := simplifyPolyline(coords, radius)
		test.That(t, len(q) <= prev, "more points kept for radius", radius)
		test.T(t, q[:2], coords[:2])
		test.T(t, q[len(q)-2:], coords[len(coords)-2:])
		prev = len(q)
	}
}

func TestSmoothPolyline(t *testing.T) {
	q := smoothPolyline([]float64{0, 0, 10, 0, 10, 10}, 2.0)
	test.T(t, q, []float64{0, 0, 5, 0, 5, 0, 10, 0, 10, 0, 10, 10, 10, 10})
	test.T(t, len(q)/2, 1+3*2)

	q = smoothPolyline([]float64{0, 0, 8, 4}, -4.0)
	test.T(t, q, []float64{0, 0, -2, 0, 10, 4, 8, 4})
}
