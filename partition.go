package inkpad

import "golang.org/x/sync/errgroup"

// Range is a half-open range [Start,End) of indices.
type Range struct {
	Start, End int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Partition splits n items into p contiguous ranges in order. The first n%p ranges hold n/p+1 items and the others n/p, so that together they cover [0,n) exactly once. A p of less than one is taken as one. When p exceeds n the trailing ranges are empty.
func Partition(n, p int) []Range {
	if p < 1 {
		p = 1
	}
	if n < 0 {
		n = 0
	}
	quotient, remainder := n/p, n%p
	ranges := make([]Range, p)
	start := 0
	for i := range ranges {
		size := quotient
		if i < remainder {
			size++
		}
		ranges[i] = Range{start, start + size}
		start += size
	}
	return ranges
}

// forkJoin runs fn for every range, each in its own goroutine, and waits for all of them. It returns the first error. A single range runs on the calling goroutine.
func forkJoin(ranges []Range, fn func(Range) error) error {
	if len(ranges) == 1 {
		return fn(ranges[0])
	}

	var g errgroup.Group
	for _, r := range ranges {
		if r.Len() == 0 {
			continue
		}
		r := r
		g.Go(func() error {
			return fn(r)
		})
	}
	return g.Wait()
}
