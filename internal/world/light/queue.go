package light

import "github.com/voxelworks/voxlight/internal/world"

// Node is one unit of pending propagation work: a voxel and the light level
// it carries outward.
type Node struct {
	Voxel world.Vec3
	Level int
}

// Queue is a FIFO of propagation nodes backed by a growable ring buffer, so
// dequeue is O(1) rather than a front-removal on a slice.
type Queue struct {
	buf   []Node
	head  int
	count int
}

// Len returns the number of queued nodes.
func (q *Queue) Len() int {
	return q.count
}

// Push appends a node to the back of the queue.
func (q *Queue) Push(n Node) {
	if q.count == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.count)%len(q.buf)] = n
	q.count++
}

// Pop removes and returns the front node. ok is false on an empty queue.
func (q *Queue) Pop() (n Node, ok bool) {
	if q.count == 0 {
		return Node{}, false
	}
	n = q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	return n, true
}

func (q *Queue) grow() {
	next := make([]Node, max(len(q.buf)*2, 64))
	for i := 0; i < q.count; i++ {
		next[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = next
	q.head = 0
}
