package section

import "math"

const (
	// MagicHeader identifies a flint binary trace.
	MagicHeader uint64 = 0x0BADF00D
	// FormatVersion is the only version written so far.
	FormatVersion uint64 = 0
)

// record and section sizes in bytes
const (
	HeaderSize        = 8 + 8 + 8 + 1                   // magic, version, timestamp unit, reserved
	EventPrefixSize   = 1 + 4 + 4 + 8                   // type, pid, tid, when
	EndEventSize      = EventPrefixSize                 // end records carry no payload
	BeginPrefixSize   = EventPrefixSize + 1             // common prefix plus the name length byte
	MaxNameLength     = math.MaxUint8                   // largest length a one-byte prefix can carry
	MaxBeginEventSize = BeginPrefixSize + MaxNameLength // largest begin record
	MinBeginEventSize = BeginPrefixSize + 1             // names are never empty
	typeOffset        = 0                               // byte offset of the type tag
	pidOffset         = 1                               // byte offset of pid
	tidOffset         = 5                               // byte offset of tid
	whenOffset        = 9                               // byte offset of when
	nameLenOffset     = EventPrefixSize                 // byte offset of the begin name length
	unitOffset        = 16                              // byte offset of the header timestamp unit
	reservedOffset    = 24                              // byte offset of the header reserved byte
)
