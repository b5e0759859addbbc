package game

// body is a ring buffer of segments, head at logical index 0.
// It grows by doubling when full, so steps never shift the whole snake.
type body struct {
	buf  []Position
	head int // physical index of the head
	n    int
}

func newBody(capacity int) *body {
	if capacity < 4 {
		capacity = 4
	}
	return &body{buf: make([]Position, capacity)}
}

func (b *body) Len() int {
	return b.n
}

// At returns the i-th segment counting from the head.
func (b *body) At(i int) Position {
	return b.buf[(b.head+i)%len(b.buf)]
}

func (b *body) Head() Position {
	return b.At(0)
}

func (b *body) Tail() Position {
	return b.At(b.n - 1)
}

func (b *body) PushFront(p Position) {
	if b.n == len(b.buf) {
		b.grow()
	}
	b.head = (b.head - 1 + len(b.buf)) % len(b.buf)
	b.buf[b.head] = p
	b.n++
}

func (b *body) PushBack(p Position) {
	if b.n == len(b.buf) {
		b.grow()
	}
	b.buf[(b.head+b.n)%len(b.buf)] = p
	b.n++
}

// PopBack removes and returns the tail.
func (b *body) PopBack() Position {
	tail := b.Tail()
	b.n--
	return tail
}

func (b *body) Reset() {
	b.head = 0
	b.n = 0
}

// Slice copies the segments head first.
func (b *body) Slice() []Position {
	out := make([]Position, b.n)
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}

func (b *body) grow() {
	next := make([]Position, len(b.buf)*2)
	for i := 0; i < b.n; i++ {
		next[i] = b.At(i)
	}
	b.buf = next
	b.head = 0
}
