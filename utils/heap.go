package utils

// Heap is a max-priority queue ordered by greater. For element n of xs,
// xs[n] is not less than either child.
type Heap[T any] struct {
	xs      []T
	greater func(a, b T) bool
}

func NewHeap[T any](greater func(a, b T) bool) *Heap[T] {
	return &Heap[T]{greater: greater}
}

func (h *Heap[T]) Len() int { return len(h.xs) }

func (h *Heap[T]) IsEmpty() bool { return len(h.xs) == 0 }

// Peek returns the greatest element without removing it.
func (h *Heap[T]) Peek() T {
	if len(h.xs) == 0 {
		panic("cannot peek into an empty heap")
	}
	return h.xs[0]
}

func (h *Heap[T]) Push(x T) {
	h.xs = append(h.xs, x)

	// sift up
	i := len(h.xs) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !h.greater(h.xs[i], h.xs[parent]) {
			break
		}
		h.xs[i], h.xs[parent] = h.xs[parent], h.xs[i]
		i = parent
	}
}

// Pop removes and returns the greatest element.
func (h *Heap[T]) Pop() T {
	l := len(h.xs)
	if l == 0 {
		panic("cannot pop from an empty heap")
	}

	top := h.xs[0]
	h.xs[0] = h.xs[l-1]
	var zero T
	h.xs[l-1] = zero
	h.xs = h.xs[:l-1]
	h.siftDown(0)
	return top
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.xs)
	for {
		largest := i
		if l := 2*i + 1; l < n && h.greater(h.xs[l], h.xs[largest]) {
			largest = l
		}
		if r := 2*i + 2; r < n && h.greater(h.xs[r], h.xs[largest]) {
			largest = r
		}
		if largest == i {
			return
		}
		h.xs[i], h.xs[largest] = h.xs[largest], h.xs[i]
		i = largest
	}
}
