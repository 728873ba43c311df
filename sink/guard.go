package sink

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/flint/errs"
	"github.com/cespare/xxhash/v2"
)

// errEndOfStream marks a guard whose sink was closed.
var errEndOfStream = errors.New("end of stream")

// Guard tracks the health of a Sink on behalf of a stream context.
//
// The first failed write, flush or seek is kept; once faulted, every later
// call returns that error without touching the sink. Guard also counts the
// bytes and write calls that reached the sink and keeps an xxHash64 digest
// of those bytes in order.
//
// Guard is not safe for concurrent use.
type Guard struct {
	sink    Sink
	err     error
	eos     bool
	written int64
	writes  int64
	digest  *xxhash.Digest
}

var _ io.Writer = (*Guard)(nil)

// NewGuard wraps s. The guard does not take ownership until Close is called.
func NewGuard(s Sink) *Guard {
	return &Guard{sink: s, digest: xxhash.New()}
}

// Check reports whether the sink can accept more data.
//
// Returns:
//   - error: nil when healthy, otherwise wraps errs.ErrSinkFault together with
//     the recorded cause
func (g *Guard) Check() error {
	if g.eos {
		return fmt.Errorf("%w: %w", errs.ErrSinkFault, errEndOfStream)
	}
	if g.err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSinkFault, g.err)
	}

	return nil
}

// Err returns the first recorded failure, if any.
func (g *Guard) Err() error {
	return g.err
}

// EndOfStream reports whether the guarded sink was closed.
func (g *Guard) EndOfStream() bool {
	return g.eos
}

func (g *Guard) Write(p []byte) (int, error) {
	if err := g.unusable(); err != nil {
		return 0, err
	}

	n, err := g.sink.Write(p)
	g.writes++
	if n > 0 {
		g.written += int64(n)
		_, _ = g.digest.Write(p[:n])
	}
	if err == nil && n != len(p) {
		err = io.ErrShortWrite
	}

	return n, g.record(err)
}

// Flush flushes the guarded sink.
func (g *Guard) Flush() error {
	if err := g.unusable(); err != nil {
		return err
	}

	return g.record(g.sink.Flush())
}

// Seekable reports whether the guarded sink can move its write cursor.
func (g *Guard) Seekable() bool {
	_, ok := g.sink.(io.Seeker)
	return ok
}

// Rewind moves the write cursor n bytes back so the next write overwrites
// them. Rewound bytes stay counted in Written and the digest.
func (g *Guard) Rewind(n int64) error {
	if err := g.unusable(); err != nil {
		return err
	}

	seeker, ok := g.sink.(io.Seeker)
	if !ok {
		return errors.New("sink: not seekable")
	}

	_, err := seeker.Seek(-n, io.SeekCurrent)

	return g.record(err)
}

// Close closes the guarded sink and marks the end of the stream. Only the
// first call reaches the sink.
func (g *Guard) Close() error {
	if g.eos {
		return nil
	}
	g.eos = true

	return g.sink.Close()
}

// Written returns the number of bytes accepted by the sink.
func (g *Guard) Written() int64 {
	return g.written
}

// Writes returns the number of write calls issued to the sink.
func (g *Guard) Writes() int64 {
	return g.writes
}

// Sum64 returns the xxHash64 digest of every byte accepted by the sink, in
// the order it was written.
func (g *Guard) Sum64() uint64 {
	return g.digest.Sum64()
}

func (g *Guard) unusable() error {
	if g.err != nil {
		return g.err
	}
	if g.eos {
		return errEndOfStream
	}

	return nil
}

func (g *Guard) record(err error) error {
	if err != nil && g.err == nil {
		g.err = err
	}

	return err
}
