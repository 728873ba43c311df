package stream

import (
	"errors"
	"fmt"

	"github.com/arloliu/flint/buffer"
	"github.com/arloliu/flint/encoding"
	"github.com/arloliu/flint/errs"
	"github.com/arloliu/flint/format"
	"github.com/arloliu/flint/section"
	"github.com/arloliu/flint/sink"
	"go.uber.org/zap"
)

// State is the lifecycle state of a Context.
type State uint8

const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "Closed"
	case StateOpen:
		return "Open"
	default:
		return "Unknown"
	}
}

// Context is an open trace stream. It exclusively owns its sink.
//
// The zero value is a closed context. Contexts are not safe for concurrent
// use.
type Context struct {
	guard  *sink.Guard
	enc    encoding.Encoder
	unit   float64
	mode   format.Mode
	names  format.NameStrategy
	logger *zap.Logger
	stats  Stats

	// scratch holds one binary record while it is handed to the buffer.
	scratch [section.MaxBeginEventSize]byte
}

// Open creates the file at path and starts a trace stream in it.
//
// Open always returns a non-nil Context. On failure the context is closed,
// the file (if created) is closed, and the error is returned alongside.
//
// Parameters:
//   - path: file to create or truncate
//   - timestampUnit: factor converting raw timestamps to the reader's unit
//   - opts: stream options, binary mode with copied names by default
//
// Returns:
//   - *Context: the stream context, StateOpen on success
//   - error: wraps errs.ErrInvalidArgument for bad options,
//     errs.ErrSinkUnavailable if the file cannot be created, or
//     errs.ErrWriteFault if the header cannot be written
func Open(path string, timestampUnit float64, opts ...Option) (*Context, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return &Context{logger: cfg.logger}, err
	}

	f, err := sink.Create(path)
	if err != nil {
		cfg.logger.Warn("trace file unavailable", zap.String("path", path), zap.Error(err))
		return &Context{logger: cfg.logger}, fmt.Errorf("%w: %w", errs.ErrSinkUnavailable, err)
	}

	return open(f, timestampUnit, cfg)
}

// OpenSink starts a trace stream in an already open sink. The context takes
// ownership of s, also on failure, in which case s is closed before OpenSink
// returns.
func OpenSink(s sink.Sink, timestampUnit float64, opts ...Option) (*Context, error) {
	if s == nil {
		return &Context{logger: zap.NewNop()}, fmt.Errorf("%w: sink is absent", errs.ErrSinkUnavailable)
	}

	cfg, err := newConfig(opts...)
	if err != nil {
		_ = s.Close()
		return &Context{logger: cfg.logger}, err
	}

	return open(s, timestampUnit, cfg)
}

func open(s sink.Sink, timestampUnit float64, cfg *Config) (*Context, error) {
	enc, err := encoding.ForMode(cfg.mode, timestampUnit)
	if err != nil {
		_ = s.Close()
		return &Context{logger: cfg.logger}, err
	}

	c := &Context{
		guard:  sink.NewGuard(s),
		enc:    enc,
		unit:   timestampUnit,
		mode:   cfg.mode,
		names:  cfg.names,
		logger: cfg.logger,
	}

	if err := c.writeLeader(); err != nil {
		c.logger.Warn("trace stream open failed", zap.Stringer("mode", c.mode), zap.Error(err))
		_ = c.guard.Close()
		c.reset()

		return c, err
	}

	if c.mode == format.ModeJSON && !c.guard.Seekable() {
		c.logger.Warn("json trace sink is not seekable, close cannot terminate the document")
	}

	c.logger.Debug("trace stream opened",
		zap.Stringer("mode", c.mode),
		zap.Float64("timestamp_unit", c.unit),
		zap.Stringer("names", c.names),
	)

	return c, nil
}

// writeLeader writes the header in binary mode, or the document prologue
// followed by a sink flush in JSON mode.
func (c *Context) writeLeader() error {
	if c.mode == format.ModeJSON {
		if _, err := c.guard.Write([]byte(encoding.JSONPrologue)); err != nil {
			return fmt.Errorf("%w: write prologue: %w", errs.ErrWriteFault, err)
		}
		if err := c.guard.Flush(); err != nil {
			return fmt.Errorf("%w: flush prologue: %w", errs.ErrWriteFault, err)
		}

		return nil
	}

	header := section.NewHeader(c.unit).AppendTo(c.scratch[:0])
	if _, err := c.guard.Write(header); err != nil {
		return fmt.Errorf("%w: write header: %w", errs.ErrWriteFault, err)
	}

	return nil
}

// State reports whether the context has an open sink.
func (c *Context) State() State {
	if c == nil || c.guard == nil {
		return StateClosed
	}

	return StateOpen
}

// Mode returns the output format of the stream. A closed context reports
// zero.
func (c *Context) Mode() format.Mode {
	if c == nil {
		return 0
	}

	return c.mode
}

// TimestampUnit returns the factor applied to raw timestamps in JSON output
// and recorded in the binary header.
func (c *Context) TimestampUnit() float64 {
	if c == nil {
		return 0
	}

	return c.unit
}

// Stats returns the counters of the stream. After Close the counters of the
// finished stream remain available.
func (c *Context) Stats() Stats {
	if c == nil {
		return Stats{}
	}

	stats := c.stats
	if c.guard != nil {
		stats.BytesWritten = c.guard.Written()
		stats.SinkWrites = c.guard.Writes()
		stats.Digest = c.guard.Sum64()
	}

	return stats
}

// Flush writes the pending bytes of buf to the sink and then flushes the
// sink.
//
// buf may be nil, in which case only the sink is flushed. On a nil context
// buf is reset and Flush succeeds since there is nothing to write to. On a
// closed context buf is reset as well.
//
// Returns:
//   - error: wraps errs.ErrSinkUnavailable on a closed context,
//     errs.ErrSinkFault if the sink already failed, or errs.ErrWriteFault if
//     a write or the sink flush fails
func (c *Context) Flush(buf *buffer.WriteBuffer) error {
	if c == nil {
		buf.Reset()
		return nil
	}

	if err := c.writable(); err != nil {
		buf.Reset()
		return err
	}

	if err := buf.Flush(c.guard); err != nil {
		return c.fault(err)
	}

	if err := c.guard.Flush(); err != nil {
		return c.fault(fmt.Errorf("%w: flush sink: %w", errs.ErrWriteFault, err))
	}
	c.stats.Flushes++

	return nil
}

// Close terminates the stream and closes the sink.
//
// In JSON mode the trailing separator of the last record is overwritten with
// the closing brackets; a stream without records is closed with "]}\n"
// only. Pending bytes in caller buffers are not written, flush them first.
//
// The context is closed even when an error is returned. Closing a closed
// context is a no-op.
//
// Returns:
//   - error: wraps errs.ErrSinkFault if the sink failed before Close, or
//     errs.ErrWriteFault if terminating the document or closing the sink
//     fails
func (c *Context) Close() error {
	if c == nil || c.guard == nil {
		return nil
	}

	var termErr error
	if c.mode == format.ModeJSON {
		termErr = c.terminateJSON()
		if termErr != nil {
			c.logger.Warn("json trace left unterminated", zap.Error(termErr))
		}
	}

	var closeErr error
	if err := c.guard.Close(); err != nil {
		closeErr = fmt.Errorf("%w: close sink: %w", errs.ErrWriteFault, err)
		c.logger.Warn("trace sink close failed", zap.Error(err))
	}

	c.stats = c.Stats()
	c.logger.Debug("trace stream closed", zap.Stringer("mode", c.mode), zap.Object("stats", c.stats))
	c.reset()

	return errors.Join(termErr, closeErr)
}

func (c *Context) terminateJSON() error {
	if err := c.guard.Check(); err != nil {
		return err
	}

	if c.stats.Events() == 0 {
		if _, err := c.guard.Write([]byte(encoding.JSONEmptyEpilogue)); err != nil {
			return fmt.Errorf("%w: write epilogue: %w", errs.ErrWriteFault, err)
		}

		return nil
	}

	if err := c.guard.Rewind(int64(len(encoding.JSONSeparator))); err != nil {
		return fmt.Errorf("%w: rewind separator: %w", errs.ErrWriteFault, err)
	}
	if _, err := c.guard.Write([]byte(encoding.JSONEpilogue)); err != nil {
		return fmt.Errorf("%w: write epilogue: %w", errs.ErrWriteFault, err)
	}

	return nil
}

// reset returns the context to the closed state. Counters and the logger
// survive so that Stats and later no-op calls keep working.
func (c *Context) reset() {
	*c = Context{logger: c.logger, stats: c.stats}
}

// writable reports whether encode and flush calls may reach the sink.
func (c *Context) writable() error {
	if c.guard == nil {
		return fmt.Errorf("%w: stream is closed", errs.ErrSinkUnavailable)
	}

	return c.guard.Check()
}

func (c *Context) fault(err error) error {
	if err != nil {
		c.log().Warn("trace write failed", zap.Stringer("mode", c.mode), zap.Error(err))
	}

	return err
}

func (c *Context) log() *zap.Logger {
	if c.logger == nil {
		return zap.NewNop()
	}

	return c.logger
}
