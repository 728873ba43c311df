package section

import (
	"github.com/arloliu/flint/endian"
	"github.com/arloliu/flint/errs"
)

// Header represents the fixed-size header at the start of a binary trace.
// It is written exactly once, right after the sink opens.
type Header struct {
	// Magic identifies the format, always MagicHeader when written by flint.
	Magic uint64 // byte offset 0-7
	// Version is reserved for future format revisions.
	Version uint64 // byte offset 8-15
	// TimestampUnit is the multiplier a reader applies to every raw timestamp.
	TimestampUnit float64 // byte offset 16-23
	// Reserved must be zero.
	Reserved uint8 // byte offset 24
}

// NewHeader creates a header for a stream using the given timestamp unit.
func NewHeader(timestampUnit float64) *Header {
	return &Header{
		Magic:         MagicHeader,
		Version:       FormatVersion,
		TimestampUnit: timestampUnit,
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly HeaderSize bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not HeaderSize bytes, ErrInvalidMagic
//     if the magic field does not match MagicHeader
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetNativeEngine()

	h.Magic = engine.Uint64(data[0:8])
	h.Version = engine.Uint64(data[8:16])
	h.TimestampUnit = endian.Float64(engine, data[unitOffset:reservedOffset])
	h.Reserved = data[reservedOffset]

	if h.Magic != MagicHeader {
		return errs.ErrInvalidMagic
	}

	return nil
}

// Bytes serializes the header into a new byte slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst and returns the extended slice.
func (h *Header) AppendTo(dst []byte) []byte {
	engine := endian.GetNativeEngine()

	dst = engine.AppendUint64(dst, h.Magic)
	dst = engine.AppendUint64(dst, h.Version)
	dst = endian.AppendFloat64(engine, dst, h.TimestampUnit)

	return append(dst, h.Reserved)
}

// ParseHeader parses a Header from the start of a byte slice.
//
// Parameters:
//   - data: Byte slice starting with a header (must be at least HeaderSize bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize or ErrInvalidMagic
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
