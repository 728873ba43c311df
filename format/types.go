package format

type (
	EventType    uint8
	Mode         uint8
	NameStrategy uint8
)

// Event type tags. The numeric values are part of the wire format and must
// never be renumbered.
const (
	EventInvalid    EventType = 0x0 // EventInvalid is never written.
	EventCompletion EventType = 0x1 // EventCompletion is reserved for complete (begin+duration) events.
	EventBegin      EventType = 0x2 // EventBegin opens a named interval.
	EventEnd        EventType = 0x3 // EventEnd closes the innermost open interval.
	EventInstant    EventType = 0x4 // EventInstant is reserved for zero-duration markers.
	EventStreamOver EventType = 0x5 // EventStreamOver is reserved as an end-of-stream sentinel.

	ModeBinary Mode = 0x1 // ModeBinary writes the packed binary format.
	ModeJSON   Mode = 0x2 // ModeJSON writes a Chrome Trace Event Format document.

	NameCopy   NameStrategy = 0x1 // NameCopy assembles prefix and name into one contiguous record.
	NameBorrow NameStrategy = 0x2 // NameBorrow hands the caller's name slice to the buffer without staging.
)

func (t EventType) String() string {
	switch t {
	case EventInvalid:
		return "Invalid"
	case EventCompletion:
		return "Completion"
	case EventBegin:
		return "Begin"
	case EventEnd:
		return "End"
	case EventInstant:
		return "Instant"
	case EventStreamOver:
		return "StreamOver"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the known tags, reserved ones included.
func (t EventType) Valid() bool {
	return t > EventInvalid && t <= EventStreamOver
}

// Reserved reports whether t is a tag kept for forward compatibility that
// the encoder never emits.
func (t EventType) Reserved() bool {
	switch t { //nolint: exhaustive
	case EventCompletion, EventInstant, EventStreamOver:
		return true
	default:
		return false
	}
}

func (m Mode) String() string {
	switch m {
	case ModeBinary:
		return "Binary"
	case ModeJSON:
		return "JSON"
	default:
		return "Unknown"
	}
}

func (m Mode) Valid() bool {
	return m == ModeBinary || m == ModeJSON
}

func (s NameStrategy) String() string {
	switch s {
	case NameCopy:
		return "Copy"
	case NameBorrow:
		return "Borrow"
	default:
		return "Unknown"
	}
}

func (s NameStrategy) Valid() bool {
	return s == NameCopy || s == NameBorrow
}
