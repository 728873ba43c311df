package encoding

import (
	"fmt"

	"github.com/arloliu/flint/errs"
	"github.com/arloliu/flint/section"
)

// ResolveName validates an event name and returns the bytes to encode.
//
// A nil name or a length of zero or less is rejected. A length above
// section.MaxNameLength is clamped to it and reported as truncated; this is
// never an error. After clamping, the length may not exceed len(name).
//
// Parameters:
//   - name: name bytes supplied by the caller
//   - length: number of leading bytes of name to use
//
// Returns:
//   - []byte: name[:n] with n the effective length, aliasing name
//   - bool: true if the length was clamped
//   - error: wraps errs.ErrInvalidArgument
func ResolveName(name []byte, length int) ([]byte, bool, error) {
	if name == nil {
		return nil, false, fmt.Errorf("%w: name is absent", errs.ErrInvalidArgument)
	}
	if length <= 0 {
		return nil, false, fmt.Errorf("%w: name length %d", errs.ErrInvalidArgument, length)
	}

	truncated := length > section.MaxNameLength
	if truncated {
		length = section.MaxNameLength
	}

	if length > len(name) {
		return nil, false, fmt.Errorf("%w: name length %d exceeds %d available bytes",
			errs.ErrInvalidArgument, length, len(name))
	}

	return name[:length], truncated, nil
}
