package inkpad

import (
	"testing"

	"github.com/tdewolff/test"
)

func listValues(l *elementList) []float64 {
	_, es := l.snapshot()
	xs := []float64{}
	for _, e := range es {
		xs = append(xs, e.Coords[0])
	}
	return xs
}

func TestElementList(t *testing.T) {
	l := &elementList{}
	h1 := l.insertBefore(&Element{Coords: []float64{1, 0}}, Handle{})
	h3 := l.insertBefore(&Element{Coords: []float64{3, 0}}, Handle{})
	h2 := l.insertBefore(&Element{Coords: []float64{2, 0}}, h3)
	h0 := l.insertBefore(&Element{Coords: []float64{0, 0}}, h1)
	test.T(t, listValues(l), []float64{0, 1, 2, 3})
	test.T(t, l.len(), 4)
	test.T(t, l.front(), h0)

	// removing ahead keeps the other handles valid
	test.That(t, l.remove(h2))
	test.That(t, !l.remove(h2))
	test.T(t, l.next(h1), h3)
	e, ok := l.get(h3)
	test.That(t, ok)
	test.T(t, e.Coords[0], 3.0)
	test.T(t, listValues(l), []float64{0, 1, 3})

	// reused slot does not revive the old handle
	h4 := l.insertBefore(&Element{Coords: []float64{4, 0}}, Handle{})
	test.That(t, h4 != h2)
	_, ok = l.get(h2)
	test.That(t, !ok)
	test.T(t, listValues(l), []float64{0, 1, 3, 4})

	test.That(t, l.remove(h0))
	test.That(t, l.remove(h4))
	test.T(t, l.front(), h1)
	test.T(t, listValues(l), []float64{1, 3})
	test.T(t, l.next(h3), Handle{})

	l.clear()
	test.T(t, l.len(), 0)
	test.T(t, l.front(), Handle{})
	_, ok = l.get(h1)
	test.That(t, !ok)
	h5 := l.insertBefore(&Element{Coords: []float64{5, 0}}, h1)
	test.T(t, listValues(l), []float64{5})
	test.T(t, l.front(), h5)
}
