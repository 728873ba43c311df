package section

import (
	"bytes"

	"github.com/arloliu/flint/endian"
	"github.com/arloliu/flint/errs"
	"github.com/arloliu/flint/format"
)

// BeginEvent marks the start of a named interval on a process/thread.
type BeginEvent struct {
	Pid  uint32  // byte offset 1-4
	Tid  uint32  // byte offset 5-8
	When float64 // byte offset 9-16, raw timestamp
	// Name is encoded behind a one-byte length prefix. Only the first
	// MaxNameLength bytes are written.
	Name []byte
}

// EndEvent marks the end of the innermost open interval on a process/thread.
type EndEvent struct {
	Pid  uint32  // byte offset 1-4
	Tid  uint32  // byte offset 5-8
	When float64 // byte offset 9-16, raw timestamp
}

// NameLength returns the number of name bytes that will be encoded.
func (e *BeginEvent) NameLength() int {
	return min(len(e.Name), MaxNameLength)
}

// Truncated reports whether encoding will cut the name short.
func (e *BeginEvent) Truncated() bool {
	return len(e.Name) > MaxNameLength
}

// Size returns the encoded size of the record in bytes.
func (e *BeginEvent) Size() int {
	return BeginPrefixSize + e.NameLength()
}

// AppendPrefix appends the fixed part of the record, up to and including the
// name length byte, to dst.
func (e *BeginEvent) AppendPrefix(dst []byte) []byte {
	dst = appendEventPrefix(dst, format.EventBegin, e.Pid, e.Tid, e.When)

	return append(dst, uint8(e.NameLength())) //nolint: gosec
}

// AppendTo appends the complete record to dst, truncating the name to
// MaxNameLength bytes.
func (e *BeginEvent) AppendTo(dst []byte) []byte {
	dst = e.AppendPrefix(dst)

	return append(dst, e.Name[:e.NameLength()]...)
}

// Parse decodes a begin record from the start of data. The name is copied.
//
// Returns:
//   - int: Number of bytes consumed
//   - error: ErrShortRecord if data ends mid-record, ErrInvalidEventType if the
//     tag is not format.EventBegin
func (e *BeginEvent) Parse(data []byte) (int, error) {
	if len(data) < BeginPrefixSize {
		return 0, errs.ErrShortRecord
	}
	if format.EventType(data[typeOffset]) != format.EventBegin {
		return 0, errs.ErrInvalidEventType
	}

	size := BeginPrefixSize + int(data[nameLenOffset])
	if len(data) < size {
		return 0, errs.ErrShortRecord
	}

	e.Pid, e.Tid, e.When = parseEventPrefix(data)
	e.Name = bytes.Clone(data[BeginPrefixSize:size])

	return size, nil
}

// Size returns the encoded size of the record in bytes.
func (e *EndEvent) Size() int {
	return EndEventSize
}

// AppendTo appends the complete record to dst.
func (e *EndEvent) AppendTo(dst []byte) []byte {
	return appendEventPrefix(dst, format.EventEnd, e.Pid, e.Tid, e.When)
}

// Parse decodes an end record from the start of data.
//
// Returns:
//   - int: Number of bytes consumed
//   - error: ErrShortRecord or ErrInvalidEventType
func (e *EndEvent) Parse(data []byte) (int, error) {
	if len(data) < EndEventSize {
		return 0, errs.ErrShortRecord
	}
	if format.EventType(data[typeOffset]) != format.EventEnd {
		return 0, errs.ErrInvalidEventType
	}

	e.Pid, e.Tid, e.When = parseEventPrefix(data)

	return EndEventSize, nil
}

// PeekType returns the type tag of the record starting at data.
// Reserved tags are returned as-is so callers can skip or reject them.
func PeekType(data []byte) (format.EventType, error) {
	if len(data) == 0 {
		return format.EventInvalid, errs.ErrShortRecord
	}

	typ := format.EventType(data[typeOffset])
	if !typ.Valid() {
		return typ, errs.ErrInvalidEventType
	}

	return typ, nil
}

func appendEventPrefix(dst []byte, typ format.EventType, pid, tid uint32, when float64) []byte {
	engine := endian.GetNativeEngine()

	dst = append(dst, byte(typ))
	dst = engine.AppendUint32(dst, pid)
	dst = engine.AppendUint32(dst, tid)

	return endian.AppendFloat64(engine, dst, when)
}

func parseEventPrefix(data []byte) (pid, tid uint32, when float64) {
	engine := endian.GetNativeEngine()

	pid = engine.Uint32(data[pidOffset:tidOffset])
	tid = engine.Uint32(data[tidOffset:whenOffset])
	when = endian.Float64(engine, data[whenOffset:EventPrefixSize])

	return pid, tid, when
}
