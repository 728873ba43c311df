// Package errs defines the sentinel errors shared by the flint packages.
//
// Every failure returned by the encoder, the write buffer and the stream
// context wraps exactly one of the taxonomy sentinels below, so callers can
// classify it with errors.Is:
//
//	if err := ctx.Begin(buf, now, "load"); errors.Is(err, errs.ErrSinkFault) {
//		// the stream is already broken; stop recording
//	}
//
// Nothing in flint retries or panics on these errors. Whether to abort,
// retry, or keep recording into a possibly truncated stream is up to the
// caller.
package errs

import "errors"

// Taxonomy of encode and lifecycle failures.
var (
	// ErrInvalidArgument reports an absent context, an absent name, or a
	// non-positive name length.
	ErrInvalidArgument = errors.New("flint: invalid argument")

	// ErrSinkUnavailable reports a context with no open sink.
	ErrSinkUnavailable = errors.New("flint: sink unavailable")

	// ErrSinkFault reports a sink that was already at end-of-stream or in an
	// error state before the call.
	ErrSinkFault = errors.New("flint: sink fault")

	// ErrWriteFault reports that the underlying write or flush itself failed.
	ErrWriteFault = errors.New("flint: write fault")
)

// Format parsing failures.
var (
	ErrInvalidHeaderSize = errors.New("flint: invalid header size")
	ErrInvalidMagic      = errors.New("flint: invalid magic number")
	ErrInvalidEventType  = errors.New("flint: invalid event type")
	ErrShortRecord       = errors.New("flint: record truncated")
)
