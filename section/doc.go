// Package section defines the byte-level layout of the flint trace format.
//
// A binary trace is a Header followed by a sequence of tagged event records,
// with no separators and no record count. Readers advance by the type tag and
// the fixed or length-prefixed fields of each record until end-of-file.
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (25 bytes, fixed)                                │
//	├─────────────────────────────────────────────────────────┤
//	│ Begin record (18 + name length bytes)                   │
//	│ End record (17 bytes)                                   │
//	│ ...                                                     │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field          | Type    | Description
//	-------|----------------|---------|----------------------------------
//	0-7    | Magic          | uint64  | 0x0BADF00D
//	8-15   | Version        | uint64  | 0
//	16-23  | TimestampUnit  | float64 | multiplier applied to raw timestamps
//	24     | Reserved       | uint8   | written as 0
//
// # Record Formats
//
// Begin:
//
//	Bytes  | Field  | Type    | Description
//	-------|--------|---------|----------------------------------
//	0      | Type   | uint8   | format.EventBegin (2)
//	1-4    | Pid    | uint32  | process id
//	5-8    | Tid    | uint32  | thread id
//	9-16   | When   | float64 | raw, unscaled timestamp
//	17     | Length | uint8   | name length, 1-255
//	18-    | Name   | bytes   | exactly Length bytes
//
// End:
//
//	Bytes  | Field  | Type    | Description
//	-------|--------|---------|----------------------------------
//	0      | Type   | uint8   | format.EventEnd (3)
//	1-4    | Pid    | uint32  | process id
//	5-8    | Tid    | uint32  | thread id
//	9-16   | When   | float64 | raw, unscaled timestamp
//
// # Byte Order
//
// Every multi-byte field uses the host's native byte order (see
// endian.GetNativeEngine). Streams are not portable between machines of
// different endianness.
//
// # Name Length
//
// The one-byte length prefix caps names at MaxNameLength (255) bytes. Longer
// names are truncated to exactly 255 bytes when encoded; truncation is part of
// the wire contract and never an error.
package section
