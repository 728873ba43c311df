package encoding

import (
	"strconv"
	"unicode/utf8"

	"github.com/arloliu/flint/format"
	"github.com/arloliu/flint/section"
	"github.com/bytedance/sonic"
)

// Fixed text of a JSON trace document.
const (
	// JSONPrologue opens the document; written once when the stream opens.
	JSONPrologue = "{\"traceEvents\":[\n"
	// JSONSeparator terminates every record, the last one included.
	JSONSeparator = ",\n"
	// JSONEpilogue replaces the final JSONSeparator when the stream closes.
	JSONEpilogue = "\n]}\n"
	// JSONEmptyEpilogue closes a document that holds no records.
	JSONEmptyEpilogue = "]}\n"
)

// Chrome Trace Event Format phases used by the encoder.
const (
	PhaseBegin = "B"
	PhaseEnd   = "E"
)

// timestamps are printed like C's %f
const tsPrecision = 6

// JSONEncoder produces Chrome Trace Event Format objects.
type JSONEncoder struct {
	unit float64
}

var _ Encoder = JSONEncoder{}

// NewJSONEncoder creates a JSON encoder that scales every timestamp by
// timestampUnit.
func NewJSONEncoder(timestampUnit float64) JSONEncoder {
	return JSONEncoder{unit: timestampUnit}
}

// TimestampUnit returns the multiplier applied to raw timestamps.
func (e JSONEncoder) TimestampUnit() float64 {
	return e.unit
}

// AppendBegin appends
//
//	{"name":"<name>","ph":"B","pid":<pid>,"tid":<tid>,"ts":<when*unit>},\n
//
// The name is truncated to section.MaxNameLength bytes before quoting.
func (e JSONEncoder) AppendBegin(dst []byte, ev *section.BeginEvent) []byte {
	dst = append(dst, `{"name":`...)
	dst = appendJSONString(dst, ev.Name[:ev.NameLength()])
	dst = append(dst, `,"ph":"`+PhaseBegin+`",`...)
	dst = e.appendTail(dst, ev.Pid, ev.Tid, ev.When)

	return dst
}

// AppendEnd appends
//
//	{"ph":"E","pid":<pid>,"tid":<tid>,"ts":<when*unit>},\n
func (e JSONEncoder) AppendEnd(dst []byte, ev *section.EndEvent) []byte {
	dst = append(dst, `{"ph":"`+PhaseEnd+`",`...)
	dst = e.appendTail(dst, ev.Pid, ev.Tid, ev.When)

	return dst
}

func (JSONEncoder) Mode() format.Mode {
	return format.ModeJSON
}

func (e JSONEncoder) appendTail(dst []byte, pid, tid uint32, when float64) []byte {
	dst = append(dst, `"pid":`...)
	dst = strconv.AppendUint(dst, uint64(pid), 10)
	dst = append(dst, `,"tid":`...)
	dst = strconv.AppendUint(dst, uint64(tid), 10)
	dst = append(dst, `,"ts":`...)
	dst = strconv.AppendFloat(dst, when*e.unit, 'f', tsPrecision, 64)
	dst = append(dst, '}')

	return append(dst, JSONSeparator...)
}

// appendJSONString appends name as a JSON string literal. Plain names are
// copied verbatim; names holding quotes, backslashes, control bytes or
// invalid UTF-8 go through sonic's standard-compatible encoder.
func appendJSONString(dst []byte, name []byte) []byte {
	if !needsEscape(name) {
		dst = append(dst, '"')
		dst = append(dst, name...)

		return append(dst, '"')
	}

	quoted, err := sonic.ConfigStd.Marshal(string(name))
	if err != nil {
		// Strings always marshal; keep the record well-formed regardless.
		return append(dst, `""`...)
	}

	return append(dst, quoted...)
}

func needsEscape(name []byte) bool {
	for _, c := range name {
		if c < 0x20 || c == '"' || c == '\\' {
			return true
		}
	}

	return !utf8.Valid(name)
}
