package encoding

import (
	"fmt"

	"github.com/arloliu/flint/errs"
	"github.com/arloliu/flint/format"
	"github.com/arloliu/flint/section"
)

// Encoder appends the encoded form of an event to dst and returns the
// extended slice.
type Encoder interface {
	AppendBegin(dst []byte, ev *section.BeginEvent) []byte
	AppendEnd(dst []byte, ev *section.EndEvent) []byte
	// Mode reports which stream mode the encoder produces.
	Mode() format.Mode
}

// ForMode returns the encoder for a stream mode.
//
// Parameters:
//   - mode: format.ModeBinary or format.ModeJSON
//   - timestampUnit: multiplier applied to timestamps in JSON output
//
// Returns:
//   - Encoder: encoder for the mode
//   - error: wraps errs.ErrInvalidArgument for an unknown mode
func ForMode(mode format.Mode, timestampUnit float64) (Encoder, error) {
	switch mode {
	case format.ModeBinary:
		return NewBinaryEncoder(), nil
	case format.ModeJSON:
		return NewJSONEncoder(timestampUnit), nil
	default:
		return nil, fmt.Errorf("%w: unknown stream mode %s", errs.ErrInvalidArgument, mode)
	}
}

// BinaryEncoder produces packed records in host byte order.
type BinaryEncoder struct{}

var _ Encoder = BinaryEncoder{}

// NewBinaryEncoder creates a binary record encoder.
func NewBinaryEncoder() BinaryEncoder {
	return BinaryEncoder{}
}

func (BinaryEncoder) AppendBegin(dst []byte, ev *section.BeginEvent) []byte {
	return ev.AppendTo(dst)
}

func (BinaryEncoder) AppendEnd(dst []byte, ev *section.EndEvent) []byte {
	return ev.AppendTo(dst)
}

func (BinaryEncoder) Mode() format.Mode {
	return format.ModeBinary
}
