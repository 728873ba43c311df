// Package stream implements the trace stream context and the begin/end event
// encoder.
//
// A Context exclusively owns one sink for the lifetime of a stream. Its mode
// (binary or JSON) and timestamp unit are fixed when the stream opens.
//
// # Binary streams
//
// The stream starts with a 25-byte header followed by packed begin/end
// records in host byte order. Records go through the caller's
// buffer.WriteBuffer and only reach the sink when the buffer fills or on
// Flush:
//
//	ctx, err := stream.Open("trace.bin", 1e-6)
//	if err != nil {
//	    return err
//	}
//	buf := buffer.NewDefault()
//	_ = ctx.BeginTidPid(buf, 100, "load", 1, 1)
//	_ = ctx.EndTidPid(buf, 200, 1, 1)
//	_ = ctx.Flush(buf)
//	_ = ctx.Close()
//
// # JSON streams
//
// With WithJSON the stream is a Chrome Trace Event Format document. Every
// record is written straight to the sink and the buffer argument is ignored.
// Close replaces the trailing separator of the last record with the closing
// brackets, which needs a sink implementing io.Seeker.
//
// # Concurrency
//
// Nothing in this package locks. Calls into one Context must be serialized
// by the caller; concurrent producers may each own a WriteBuffer but still
// have to serialize access to the shared Context.
package stream
