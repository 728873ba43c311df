// Package buffer provides the fixed-capacity write arena used to amortize
// sink writes in binary mode.
//
// A WriteBuffer is owned by the caller and borrowed by every encode or flush
// call; flint never allocates or frees one on its own. It performs no
// locking: concurrent use of one buffer must be serialized by the caller, or
// each producer can own its own buffer.
//
//	buf := buffer.New(64 << 10)
//	_ = ctx.Begin(buf, now(), "frame")
//	_ = ctx.End(buf, now())
//	_ = ctx.Flush(buf)
package buffer

import (
	"fmt"
	"io"

	"github.com/arloliu/flint/errs"
)

// DefaultSize is the capacity of buffers built by NewDefault.
const DefaultSize = 1 << 16 // 64KiB

// WriteBuffer accumulates encoded bytes in a fixed-capacity arena and writes
// them to a sink on overflow or explicit Flush.
//
// The cursor is always strictly below the capacity between calls: an arena
// that fills exactly is flushed before the call returns.
//
// A nil *WriteBuffer behaves as a zero-capacity buffer: every Write goes
// straight to the sink and Flush has nothing to do.
type WriteBuffer struct {
	data []byte
	head int
}

// New creates a WriteBuffer with the given capacity in bytes. A capacity of
// zero or less yields a buffer that never holds data.
func New(capacity int) *WriteBuffer {
	return &WriteBuffer{data: make([]byte, max(capacity, 0))}
}

// NewDefault creates a WriteBuffer of DefaultSize bytes.
func NewDefault() *WriteBuffer {
	return New(DefaultSize)
}

// Cap returns the fixed capacity of the arena.
func (b *WriteBuffer) Cap() int {
	if b == nil {
		return 0
	}

	return len(b.data)
}

// Len returns the number of pending bytes.
func (b *WriteBuffer) Len() int {
	if b == nil {
		return 0
	}

	return b.head
}

// Available returns how many more bytes fit before the arena is full.
func (b *WriteBuffer) Available() int {
	return b.Cap() - b.Len()
}

// Bytes returns the pending bytes, or nil when nothing is pending. The slice
// aliases the arena and is only valid until the next Write, Flush or Reset.
func (b *WriteBuffer) Bytes() []byte {
	if b == nil || b.head == 0 {
		return nil
	}

	return b.data[:b.head]
}

// Reset discards pending bytes without writing them.
func (b *WriteBuffer) Reset() {
	if b != nil {
		b.head = 0
	}
}

// Write appends p to the arena.
//
// If p does not fit behind the pending bytes, the pending bytes are flushed to
// w first. A payload at least as large as the whole capacity is then written
// to w directly instead of being buffered. A payload that fills the arena
// exactly is buffered and flushed immediately.
//
// Returns:
//   - error: wraps errs.ErrWriteFault if a sink write failed. Bytes already
//     handed to w are not recoverable and p is not buffered.
func (b *WriteBuffer) Write(w io.Writer, p []byte) error {
	capacity := b.Cap()

	if b.Len()+len(p) > capacity {
		if err := b.Flush(w); err != nil {
			return err
		}
	}

	if len(p) >= capacity {
		return writeFull(w, p)
	}

	b.head += copy(b.data[b.head:], p)
	if b.head == capacity {
		return b.Flush(w)
	}

	return nil
}

// Flush writes all pending bytes to w and resets the cursor.
//
// The cursor is reset even when the write fails: a failed sink write may have
// emitted part of the pending bytes already, and writing them again would
// duplicate data in the stream.
func (b *WriteBuffer) Flush(w io.Writer) error {
	if b.Len() == 0 {
		return nil
	}

	pending := b.data[:b.head]
	b.head = 0

	return writeFull(w, pending)
}

func writeFull(w io.Writer, p []byte) error {
	if len(p) == 0 {
		return nil
	}

	n, err := w.Write(p)
	if err == nil && n != len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return fmt.Errorf("%w: wrote %d of %d bytes: %w", errs.ErrWriteFault, n, len(p), err)
	}

	return nil
}
