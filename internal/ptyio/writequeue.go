package ptyio

// WriteQueue buffers outbound bytes in fixed-size blocks so a caller doing
// non-blocking writes to a PTY master can push arbitrarily large amounts of
// data without blocking, then drain it in whatever chunks the underlying
// fd will currently accept. Grounded on the original prototype's
// WriteQueue<N>.
type WriteQueue struct {
	blockSize int
	blocks    [][]byte
	start     int // read offset within blocks[0]
	limit     int // write offset within the last block
}

// NewWriteQueue returns an empty queue that buffers in blockSize chunks.
func NewWriteQueue(blockSize int) *WriteQueue {
	return &WriteQueue{
		blockSize: blockSize,
		blocks:    [][]byte{make([]byte, blockSize)},
	}
}

// Push appends data to the queue, allocating new blocks as needed.
func (q *WriteQueue) Push(data []byte) {
	for len(data) > 0 {
		last := len(q.blocks) - 1
		count := q.blockSize - q.limit
		if count > len(data) {
			count = len(data)
		}
		copy(q.blocks[last][q.limit:], data[:count])
		q.limit += count
		data = data[count:]
		if q.limit == q.blockSize {
			q.limit = 0
			q.blocks = append(q.blocks, make([]byte, q.blockSize))
		}
	}
}

// HasBlock reports whether there is any unread data in the queue.
func (q *WriteQueue) HasBlock() bool {
	return len(q.blocks) > 1 || q.start != q.limit
}

// Block returns the next contiguous run of unread bytes. The caller must
// call Shift with however many of those bytes it actually consumed.
func (q *WriteQueue) Block() []byte {
	if len(q.blocks) == 1 {
		return q.blocks[0][q.start:q.limit]
	}
	return q.blocks[0][q.start:q.blockSize]
}

// Shift marks n bytes as consumed, freeing the first block once it has
// been fully drained.
func (q *WriteQueue) Shift(n int) {
	q.start += n
	if q.start == q.blockSize {
		q.start = 0
		q.blocks = q.blocks[1:]
	}
}
