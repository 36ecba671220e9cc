package inkpad

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
)

func randomElements(n int) []Element {
	r := rand.New(rand.NewPCG(1, 2))
	elements := make([]Element, n)
	for i := range elements {
		e := Element{ID: uuid.New()}
		switch i % 3 {
		case 0:
			e.Kind = PointKind
			e.Coords = []float64{r.Float64() * 100.0, r.Float64() * 100.0}
		case 1:
			e.Kind = PolylineKind
			for j := 0; j < 2+r.IntN(10); j++ {
				e.Coords = append(e.Coords, r.Float64()*100.0, r.Float64()*100.0)
			}
		case 2:
			e.Kind = PolyBezierKind
			for j := 0; j < 1+3*(1+r.IntN(3)); j++ {
				e.Coords = append(e.Coords, r.Float64()*100.0, r.Float64()*100.0)
			}
		}
		elements[i] = e
	}
	return elements
}

func TestParallelEquivalence(t *testing.T) {
	elements := randomElements(101)
	var tts = []struct {
		name string
		fn   func(*Document) error
	}{
		{"rotate", func(d *Document) error { return d.Rotate(33.0) }},
		{"translate", func(d *Document) error { return d.Translate(-12, 40) }},
		{"autocrop", func(d *Document) error { return d.Autocrop() }},
		{"simplify", func(d *Document) error { return d.SimplifyPolylines(15.0) }},
		{"smooth", func(d *Document) error { return d.SmoothPolylines(3.0) }},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			serial := New(&Options{Workers: 1})
			parallel := New(&Options{Workers: 7})
			for _, d := range []*Document{serial, parallel} {
				d.SetCanvas(Canvas{W: 100, H: 100, Background: White})
				for _, e := range elements {
					d.Insert(DefaultPen, e, Handle{})
				}
				if err := tt.fn(d); err != nil {
					t.Fatal(err)
				}
			}
			if diff := cmp.Diff(serial.Elements(), parallel.Elements(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("serial and parallel results differ (-serial +parallel):\n%s", diff)
			}
			if diff := cmp.Diff(serial.Canvas(), parallel.Canvas(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("serial and parallel canvas differ (-serial +parallel):\n%s", diff)
			}
		})
	}
}
