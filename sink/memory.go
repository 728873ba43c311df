package sink

import (
	"errors"
	"io"
)

// Memory is an in-memory Sink with a seekable write cursor. Writes at the
// cursor overwrite existing bytes and extend the stream past its end.
//
// The zero value is an empty, open sink.
type Memory struct {
	buf    []byte
	off    int
	closed bool
}

var (
	_ Sink      = (*Memory)(nil)
	_ io.Seeker = (*Memory)(nil)
)

// NewMemory creates an empty in-memory sink.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Write(p []byte) (int, error) {
	if m.closed {
		return 0, ErrClosed
	}

	end := m.off + len(p)
	if end > len(m.buf) {
		m.buf = append(m.buf[:m.off], p...)
	} else {
		copy(m.buf[m.off:], p)
	}
	m.off = end

	return len(p), nil
}

func (m *Memory) Flush() error {
	if m.closed {
		return ErrClosed
	}

	return nil
}

func (m *Memory) Seek(offset int64, whence int) (int64, error) {
	if m.closed {
		return 0, ErrClosed
	}

	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = int64(m.off)
	case io.SeekEnd:
		base = int64(len(m.buf))
	default:
		return 0, errors.New("sink: invalid whence")
	}

	pos := base + offset
	if pos < 0 || pos > int64(len(m.buf)) {
		return 0, errors.New("sink: seek out of range")
	}
	m.off = int(pos)

	return pos, nil
}

// Close marks the sink closed. The stream contents stay readable.
func (m *Memory) Close() error {
	if m.closed {
		return ErrClosed
	}
	m.closed = true

	return nil
}

// Bytes returns the stream contents. The slice aliases the sink's storage.
func (m *Memory) Bytes() []byte {
	return m.buf
}

// String returns the stream contents as a string.
func (m *Memory) String() string {
	return string(m.buf)
}

// Len returns the size of the stream in bytes.
func (m *Memory) Len() int {
	return len(m.buf)
}

// Closed reports whether Close was called.
func (m *Memory) Closed() bool {
	return m.closed
}
