package stream

import (
	"fmt"
	"unsafe"

	"github.com/arloliu/flint/buffer"
	"github.com/arloliu/flint/encoding"
	"github.com/arloliu/flint/errs"
	"github.com/arloliu/flint/format"
	"github.com/arloliu/flint/internal/pool"
	"github.com/arloliu/flint/section"
	"go.uber.org/zap"
)

var errNoContext = fmt.Errorf("%w: context is absent", errs.ErrInvalidArgument)

// Begin records the start of an interval named name on thread 0 of process 0.
// See BeginLenTidPid.
func (c *Context) Begin(buf *buffer.WriteBuffer, when float64, name string) error {
	return c.BeginLenTidPid(buf, when, stringBytes(name), len(name), 0, 0)
}

// BeginTid records the start of an interval on thread tid of process 0.
func (c *Context) BeginTid(buf *buffer.WriteBuffer, when float64, name string, tid uint32) error {
	return c.BeginLenTidPid(buf, when, stringBytes(name), len(name), tid, 0)
}

// BeginTidPid records the start of an interval on thread tid of process pid.
func (c *Context) BeginTidPid(buf *buffer.WriteBuffer, when float64, name string, tid, pid uint32) error {
	return c.BeginLenTidPid(buf, when, stringBytes(name), len(name), tid, pid)
}

// BeginLen records the start of an interval named by the first n bytes of
// name on thread 0 of process 0.
func (c *Context) BeginLen(buf *buffer.WriteBuffer, when float64, name []byte, n int) error {
	return c.BeginLenTidPid(buf, when, name, n, 0, 0)
}

// BeginLenTid records the start of an interval named by the first n bytes of
// name on thread tid of process 0.
func (c *Context) BeginLenTid(buf *buffer.WriteBuffer, when float64, name []byte, n int, tid uint32) error {
	return c.BeginLenTidPid(buf, when, name, n, tid, 0)
}

// BeginLenTidPid records the start of an interval named by the first n bytes
// of name on thread tid of process pid.
//
// In binary mode the record is handed to buf, which may be nil to write
// straight to the sink. In JSON mode buf is ignored and the record is
// written to the sink directly.
//
// A length above section.MaxNameLength is clamped to it; the truncation is
// counted in Stats and is not an error.
//
// Returns:
//   - error: wraps errs.ErrInvalidArgument for a nil context, an absent name
//     or a length of zero or less, errs.ErrSinkUnavailable if the stream is
//     closed, errs.ErrSinkFault if the sink failed earlier, or
//     errs.ErrWriteFault if the sink write fails
func (c *Context) BeginLenTidPid(buf *buffer.WriteBuffer, when float64, name []byte, n int, tid, pid uint32) error {
	if c == nil {
		return errNoContext
	}

	name, truncated, err := encoding.ResolveName(name, n)
	if err != nil {
		return err
	}

	if err := c.writable(); err != nil {
		return err
	}

	if truncated {
		c.stats.TruncatedNames++
		c.logger.Debug("event name truncated",
			zap.Int("length", n),
			zap.Int("max_length", section.MaxNameLength),
		)
	}

	ev := section.BeginEvent{Pid: pid, Tid: tid, When: when, Name: name}
	if c.mode == format.ModeJSON {
		err = c.writeJSONBegin(ev)
	} else {
		err = c.writeBinaryBegin(buf, &ev)
	}
	if err != nil {
		return c.fault(err)
	}
	c.stats.BeginEvents++

	return nil
}

// End records the end of the innermost open interval on thread 0 of
// process 0.
func (c *Context) End(buf *buffer.WriteBuffer, when float64) error {
	return c.EndTidPid(buf, when, 0, 0)
}

// EndTid records the end of the innermost open interval on thread tid of
// process 0.
func (c *Context) EndTid(buf *buffer.WriteBuffer, when float64, tid uint32) error {
	return c.EndTidPid(buf, when, tid, 0)
}

// EndTidPid records the end of the innermost open interval on thread tid of
// process pid. Buffering and errors follow BeginLenTidPid.
func (c *Context) EndTidPid(buf *buffer.WriteBuffer, when float64, tid, pid uint32) error {
	if c == nil {
		return errNoContext
	}

	if err := c.writable(); err != nil {
		return err
	}

	ev := section.EndEvent{Pid: pid, Tid: tid, When: when}

	var err error
	if c.mode == format.ModeJSON {
		err = c.writeJSONEnd(ev)
	} else {
		err = buf.Write(c.guard, ev.AppendTo(c.scratch[:0]))
	}
	if err != nil {
		return c.fault(err)
	}
	c.stats.EndEvents++

	return nil
}

// writeBinaryBegin hands the record to buf. The event stays on the caller's
// stack: it is only read through section's append helpers.
func (c *Context) writeBinaryBegin(buf *buffer.WriteBuffer, ev *section.BeginEvent) error {
	if c.names == format.NameBorrow {
		if err := buf.Write(c.guard, ev.AppendPrefix(c.scratch[:0])); err != nil {
			return err
		}

		return buf.Write(c.guard, ev.Name)
	}

	return buf.Write(c.guard, ev.AppendTo(c.scratch[:0]))
}

// JSON events are taken by value; only the copy passed to the encoder
// escapes.
func (c *Context) writeJSONBegin(ev section.BeginEvent) error {
	rec := pool.GetRecord()
	defer pool.PutRecord(rec)

	rec.B = c.enc.AppendBegin(rec.B, &ev)

	return c.writeDirect(rec)
}

func (c *Context) writeJSONEnd(ev section.EndEvent) error {
	rec := pool.GetRecord()
	defer pool.PutRecord(rec)

	rec.B = c.enc.AppendEnd(rec.B, &ev)

	return c.writeDirect(rec)
}

func (c *Context) writeDirect(rec *pool.Record) error {
	if _, err := rec.WriteTo(c.guard); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrWriteFault, err)
	}

	return nil
}

// stringBytes returns the bytes of s without copying. The result must not
// be modified.
func stringBytes(s string) []byte {
	if s == "" {
		return nil
	}

	return unsafe.Slice(unsafe.StringData(s), len(s))
}
