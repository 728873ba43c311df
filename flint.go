// Package flint records begin/end trace events into a compact binary stream
// or a Chrome Trace Event Format JSON document.
//
// A stream is written by one Context that owns its output sink. Every event
// carries a raw float64 timestamp, a thread id and a process id; begin events
// also carry a name of at most 255 bytes, longer names are truncated.
//
// # Core Features
//
//   - Packed binary records in host byte order behind a 25-byte header
//   - Chrome Trace Event Format output loadable by timeline viewers
//   - Caller-owned fixed-capacity write buffers, no hidden global state
//   - Sticky sink fault tracking and an xxHash64 digest of the stream
//   - No allocations on the binary encode path
//
// # Basic Usage
//
// Recording a binary trace:
//
//	import "github.com/arloliu/flint"
//
//	ctx, err := flint.Open("trace.bin", 1e-6)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	buf := flint.NewDefaultWriteBuffer()
//	flint.BufferInit(buf)
//
//	_ = ctx.BeginTidPid(buf, 100, "load", 1, 1)
//	_ = ctx.EndTidPid(buf, 200, 1, 1)
//
//	_ = flint.BufferQuit(ctx, buf)
//	_ = ctx.Close()
//
// Recording a JSON trace:
//
//	ctx, err := flint.OpenJSON("trace.json", 1e-3)
//	_ = ctx.Begin(nil, 0, "frame")
//	_ = ctx.End(nil, 16)
//	_ = ctx.Close()
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the stream and
// buffer packages. For custom sinks, loggers or name strategies use the
// stream package directly.
package flint

import (
	"slices"

	"github.com/arloliu/flint/buffer"
	"github.com/arloliu/flint/stream"
)

// Context is an open trace stream.
type Context = stream.Context

// WriteBuffer is a caller-owned write arena for binary streams.
type WriteBuffer = buffer.WriteBuffer

// Open creates the file at path and starts a binary trace stream in it.
//
// The returned Context is never nil. On failure it is closed and the error
// is returned alongside.
//
// Parameters:
//   - path: file to create or truncate
//   - timestampUnit: factor converting raw timestamps to the reader's unit,
//     recorded in the header
//   - opts: additional stream options (see stream.Option)
//
// Example:
//
//	ctx, err := flint.Open("trace.bin", 1e-9,
//	    stream.WithNameStrategy(format.NameBorrow),
//	)
func Open(path string, timestampUnit float64, opts ...stream.Option) (*Context, error) {
	return stream.Open(path, timestampUnit, opts...)
}

// OpenJSON creates the file at path and starts a Chrome Trace Event Format
// document in it. Every ts value is the raw timestamp multiplied by
// timestampUnit.
func OpenJSON(path string, timestampUnit float64, opts ...stream.Option) (*Context, error) {
	return stream.Open(path, timestampUnit, slices.Concat(opts, []stream.Option{stream.WithJSON()})...)
}

// NewWriteBuffer creates a write buffer holding up to capacity bytes.
func NewWriteBuffer(capacity int) *WriteBuffer {
	return buffer.New(capacity)
}

// NewDefaultWriteBuffer creates a write buffer of buffer.DefaultSize bytes.
func NewDefaultWriteBuffer() *WriteBuffer {
	return buffer.NewDefault()
}

// BufferInit prepares buf for a new stream by discarding pending bytes.
func BufferInit(buf *WriteBuffer) {
	_ = Flush(nil, buf)
}

// BufferQuit drains buf into ctx and flushes the sink. Call it before
// closing a binary stream; Close does not drain caller buffers.
func BufferQuit(ctx *Context, buf *WriteBuffer) error {
	return Flush(ctx, buf)
}

// Flush writes the pending bytes of buf to the stream and flushes the sink.
// A nil ctx discards the pending bytes and succeeds.
func Flush(ctx *Context, buf *WriteBuffer) error {
	return ctx.Flush(buf)
}
