// Package encoding turns logical trace events into bytes.
//
// Two encoders share one interface:
//
//   - BinaryEncoder emits the packed records described in package section.
//     Timestamps are stored raw; readers apply the header's unit.
//   - JSONEncoder emits Chrome Trace Event Format objects, one per line,
//     each terminated by ",\n". Timestamps are multiplied by the stream's
//     timestamp unit and printed with six decimals.
//
// Both encoders only append to a caller-supplied slice; routing the bytes
// to a write buffer or a sink is the stream context's job.
//
//	enc, _ := encoding.ForMode(format.ModeJSON, 1e-3)
//	rec := enc.AppendBegin(nil, &section.BeginEvent{Tid: 1, When: 1500, Name: []byte("load")})
//	// {"name":"load","ph":"B","pid":0,"tid":1,"ts":1.500000},\n
//
// # Names
//
// ResolveName applies the name rules shared by both modes: a name must be
// present and its length positive; lengths above section.MaxNameLength are
// clamped, never rejected.
package encoding
