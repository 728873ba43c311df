package stream

import "go.uber.org/zap/zapcore"

// Stats is a snapshot of the counters of a stream.
//
// BytesWritten and Digest cover every byte handed to the sink, in write
// order. A JSON stream that ends with records rewinds over the trailing
// record separator before writing the epilogue, so after Close both still
// include those len(encoding.JSONSeparator) bytes although they are no
// longer part of the destination.
type Stats struct {
	BeginEvents    int64  // begin records handed to the buffer or sink
	EndEvents      int64  // end records handed to the buffer or sink
	TruncatedNames int64  // begin names clamped to section.MaxNameLength
	BytesWritten   int64  // bytes accepted by the sink
	SinkWrites     int64  // write calls issued to the sink
	Flushes        int64  // successful Context.Flush calls
	Digest         uint64 // xxHash64 of every byte accepted by the sink
}

// Events returns the total number of encoded records.
func (s Stats) Events() int64 {
	return s.BeginEvents + s.EndEvents
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (s Stats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt64("begin_events", s.BeginEvents)
	enc.AddInt64("end_events", s.EndEvents)
	enc.AddInt64("truncated_names", s.TruncatedNames)
	enc.AddInt64("bytes_written", s.BytesWritten)
	enc.AddInt64("sink_writes", s.SinkWrites)
	enc.AddInt64("flushes", s.Flushes)
	enc.AddUint64("digest", s.Digest)

	return nil
}
