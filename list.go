package inkpad

import "sync"

// Handle refers to the position of an element in a Document. A handle stays valid until its element is removed, insertions and removals elsewhere do not affect it. The zero Handle refers to the end of the document.
type Handle struct {
	idx int32 // slot index plus one
	gen uint32
}

// IsZero returns true for the zero Handle.
func (h Handle) IsZero() bool {
	return h.idx == 0
}

type listNode struct {
	e          *Element
	prev, next int32 // slot index plus one, zero is none
	gen        uint32
	used       bool
}

// elementList is a doubly linked list backed by an arena of slots and a free list. Removing a slot only touches its neighbours, so concurrent removals of non-adjacent slots by different workers never observe each other as long as mu is held.
type elementList struct {
	mu         sync.Mutex
	nodes      []listNode
	free       []int32
	head, tail int32
	n          int
}

func (l *elementList) valid(h Handle) bool {
	return 0 < h.idx && int(h.idx) <= len(l.nodes) && l.nodes[h.idx-1].used && l.nodes[h.idx-1].gen == h.gen
}

func (l *elementList) get(h Handle) (*Element, bool) {
	if !l.valid(h) {
		return nil, false
	}
	return l.nodes[h.idx-1].e, true
}

func (l *elementList) set(h Handle, e *Element) bool {
	if !l.valid(h) {
		return false
	}
	l.nodes[h.idx-1].e = e
	return true
}

// insertBefore inserts e before at, or at the end if at is not a valid handle.
func (l *elementList) insertBefore(e *Element, at Handle) Handle {
	atEnd := !l.valid(at)
	var idx int32
	if n := len(l.free); 0 < n {
		idx = l.free[n-1]
		l.free = l.free[:n-1]
	} else {
		l.nodes = append(l.nodes, listNode{})
		idx = int32(len(l.nodes))
	}
	node := &l.nodes[idx-1]
	node.e = e
	node.used = true
	node.gen++

	if atEnd {
		node.prev, node.next = l.tail, 0
		if l.tail != 0 {
			l.nodes[l.tail-1].next = idx
		} else {
			l.head = idx
		}
		l.tail = idx
	} else {
		next := at.idx
		prev := l.nodes[next-1].prev
		node.prev, node.next = prev, next
		l.nodes[next-1].prev = idx
		if prev != 0 {
			l.nodes[prev-1].next = idx
		} else {
			l.head = idx
		}
	}
	l.n++
	return Handle{idx, node.gen}
}

// remove unlinks the element at h. It is safe to call from concurrent workers removing distinct elements.
func (l *elementList) remove(h Handle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.valid(h) {
		return false
	}
	node := &l.nodes[h.idx-1]
	if node.prev != 0 {
		l.nodes[node.prev-1].next = node.next
	} else {
		l.head = node.next
	}
	if node.next != 0 {
		l.nodes[node.next-1].prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.e = nil
	node.used = false
	node.prev, node.next = 0, 0
	l.free = append(l.free, h.idx)
	l.n--
	return true
}

func (l *elementList) handle(idx int32) Handle {
	if idx == 0 {
		return Handle{}
	}
	return Handle{idx, l.nodes[idx-1].gen}
}

func (l *elementList) front() Handle {
	return l.handle(l.head)
}

func (l *elementList) next(h Handle) Handle {
	if !l.valid(h) {
		return Handle{}
	}
	return l.handle(l.nodes[h.idx-1].next)
}

// snapshot returns the handles and elements in order.
func (l *elementList) snapshot() ([]Handle, []*Element) {
	hs := make([]Handle, 0, l.n)
	es := make([]*Element, 0, l.n)
	for idx := l.head; idx != 0; idx = l.nodes[idx-1].next {
		hs = append(hs, Handle{idx, l.nodes[idx-1].gen})
		es = append(es, l.nodes[idx-1].e)
	}
	return hs, es
}

func (l *elementList) len() int {
	return l.n
}

// clear removes all elements, slots are kept with their generation so that old handles stay invalid.
func (l *elementList) clear() {
	l.free = l.free[:0]
	for i := len(l.nodes) - 1; 0 <= i; i-- {
		l.nodes[i] = listNode{gen: l.nodes[i].gen}
		l.free = append(l.free, int32(i+1))
	}
	l.head, l.tail = 0, 0
	l.n = 0
}
