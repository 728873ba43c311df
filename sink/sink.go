// Package sink provides the output destinations a trace stream writes to.
//
// A Sink is an open, appendable destination exclusively owned by one stream
// context. File writes to an OS file through a userspace buffer, Memory keeps
// the stream in memory. JSON streams additionally need io.Seeker to rewrite
// their trailing separator on close; both built-in sinks implement it.
//
// Guard wraps a Sink for the stream context and keeps the state the encoder
// checks before every call: the first write error (sticky), whether the sink
// reached end-of-stream, and how many bytes went out.
package sink

import (
	"errors"
	"io"
)

// ErrClosed is returned by built-in sinks used after Close.
var ErrClosed = errors.New("sink: closed")

// Sink is an open, appendable output destination.
type Sink interface {
	io.Writer
	// Flush pushes any bytes held in userspace down to the destination.
	Flush() error
	// Close flushes and releases the destination.
	Close() error
}
