package stream

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arloliu/flint/buffer"
	"github.com/arloliu/flint/encoding"
	"github.com/arloliu/flint/errs"
	"github.com/arloliu/flint/format"
	"github.com/arloliu/flint/section"
	"github.com/arloliu/flint/sink"
	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var errBroken = errors.New("broken sink")

// faultySink accepts limit bytes and fails every write after that.
type faultySink struct {
	bytes.Buffer
	limit    int
	closed   bool
	closeErr error
}

func (s *faultySink) Write(p []byte) (int, error) {
	if s.Len()+len(p) > s.limit {
		return 0, errBroken
	}

	return s.Buffer.Write(p)
}

func (s *faultySink) Flush() error { return nil }

func (s *faultySink) Close() error {
	s.closed = true
	return s.closeErr
}

// streamSink cannot seek.
type streamSink struct {
	bytes.Buffer
	closed bool
}

func (s *streamSink) Flush() error { return nil }

func (s *streamSink) Close() error {
	s.closed = true
	return nil
}

// discardSink accepts and drops every write.
type discardSink struct{}

func (discardSink) Write(p []byte) (int, error) { return len(p), nil }
func (discardSink) Flush() error                { return nil }
func (discardSink) Close() error                { return nil }

func openMemory(t *testing.T, unit float64, opts ...Option) (*Context, *sink.Memory) {
	t.Helper()

	mem := sink.NewMemory()
	ctx, err := OpenSink(mem, unit, opts...)
	require.NoError(t, err)
	require.Equal(t, StateOpen, ctx.State())

	return ctx, mem
}

func TestBinaryScenario(t *testing.T) {
	ctx, mem := openMemory(t, 1e-6)
	buf := buffer.NewDefault()

	require.NoError(t, ctx.BeginTidPid(buf, 100, "foo", 1, 1))
	require.NoError(t, ctx.EndTidPid(buf, 200, 1, 1))
	require.NoError(t, ctx.Flush(buf))
	require.NoError(t, ctx.Close())

	want := section.NewHeader(1e-6).Bytes()
	want = (&section.BeginEvent{Pid: 1, Tid: 1, When: 100, Name: []byte("foo")}).AppendTo(want)
	want = (&section.EndEvent{Pid: 1, Tid: 1, When: 200}).AppendTo(want)

	require.Equal(t, want, mem.Bytes())
	require.True(t, mem.Closed())
	require.Equal(t, StateClosed, ctx.State())
}

func TestBinaryHeader(t *testing.T) {
	ctx, mem := openMemory(t, 0.25)
	require.NoError(t, ctx.Close())

	header, err := section.ParseHeader(mem.Bytes())
	require.NoError(t, err)
	require.Equal(t, section.MagicHeader, header.Magic)
	require.Equal(t, section.FormatVersion, header.Version)
	require.Equal(t, 0.25, header.TimestampUnit)
	require.Equal(t, section.HeaderSize, mem.Len())
}

func TestJSONScenario(t *testing.T) {
	ctx, mem := openMemory(t, 1, WithJSON())
	buf := buffer.NewDefault()

	require.NoError(t, ctx.Begin(buf, 0, "x"))
	require.NoError(t, ctx.End(buf, 0))
	require.Equal(t, 0, buf.Len(), "json records bypass the write buffer")
	require.NoError(t, ctx.Close())

	want := "{\"traceEvents\":[\n" +
		`{"name":"x","ph":"B","pid":0,"tid":0,"ts":0.000000},` + "\n" +
		`{"ph":"E","pid":0,"tid":0,"ts":0.000000}` + "\n]}\n"
	require.Equal(t, want, mem.String())
}

func TestJSONEmptyStream(t *testing.T) {
	ctx, mem := openMemory(t, 1, WithJSON())
	require.NoError(t, ctx.Close())

	require.Equal(t, encoding.JSONPrologue+encoding.JSONEmptyEpilogue, mem.String())
	require.True(t, json.Valid(mem.Bytes()))
}

func TestJSONDocumentIsValid(t *testing.T) {
	ctx, mem := openMemory(t, 1e-3, WithJSON())

	names := []string{"main", `say "hi"`, "path\\to", "multi\nline", strings.Repeat("long", 100)}
	for i, name := range names {
		require.NoError(t, ctx.BeginTidPid(nil, float64(i*1000), name, uint32(i), 42))
	}
	for i := len(names) - 1; i >= 0; i-- {
		require.NoError(t, ctx.EndTidPid(nil, float64(i*1000+500), uint32(i), 42))
	}
	require.NoError(t, ctx.Close())

	var doc struct {
		TraceEvents []struct {
			Name  string  `json:"name"`
			Phase string  `json:"ph"`
			Pid   uint32  `json:"pid"`
			Tid   uint32  `json:"tid"`
			Ts    float64 `json:"ts"`
		} `json:"traceEvents"`
	}
	require.NoError(t, json.Unmarshal(mem.Bytes(), &doc))
	require.Len(t, doc.TraceEvents, 2*len(names))

	first := doc.TraceEvents[1]
	assert.Equal(t, `say "hi"`, first.Name)
	assert.Equal(t, "B", first.Phase)
	assert.Equal(t, uint32(42), first.Pid)
	assert.Equal(t, uint32(1), first.Tid)
	assert.InDelta(t, 1.0, first.Ts, 1e-9)

	assert.Len(t, doc.TraceEvents[4].Name, section.MaxNameLength)
	assert.Equal(t, "E", doc.TraceEvents[len(doc.TraceEvents)-1].Phase)
}

func TestJSONFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.json")

	ctx, err := Open(path, 1, WithJSON())
	require.NoError(t, err)
	require.Equal(t, format.ModeJSON, ctx.Mode())
	require.Equal(t, 1.0, ctx.TimestampUnit())

	require.NoError(t, ctx.Begin(nil, 1, "frame"))
	require.NoError(t, ctx.End(nil, 2))
	require.NoError(t, ctx.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, json.Valid(data), string(data))
	require.True(t, strings.HasSuffix(string(data), "}\n]}\n"))
}

func TestBinaryFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.bin")

	ctx, err := Open(path, 1e-9)
	require.NoError(t, err)
	require.Equal(t, format.ModeBinary, ctx.Mode())

	buf := buffer.New(64)
	for i := 0; i < 100; i++ {
		require.NoError(t, ctx.BeginTid(buf, float64(i), "tick", 7))
		require.NoError(t, ctx.EndTid(buf, float64(i)+0.5, 7))
	}
	require.NoError(t, ctx.Flush(buf))
	require.NoError(t, ctx.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, section.HeaderSize+100*(section.BeginPrefixSize+4+section.EndEventSize))

	data = data[section.HeaderSize:]
	for i := 0; i < 100; i++ {
		var begin section.BeginEvent
		n, err := begin.Parse(data)
		require.NoError(t, err)
		require.Equal(t, float64(i), begin.When)
		require.Equal(t, uint32(7), begin.Tid)
		require.Equal(t, []byte("tick"), begin.Name)
		data = data[n:]

		var end section.EndEvent
		n, err = end.Parse(data)
		require.NoError(t, err)
		require.Equal(t, float64(i)+0.5, end.When)
		data = data[n:]
	}
	require.Empty(t, data)
}

func TestOpen_Failures(t *testing.T) {
	t.Run("Missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "trace.bin")

		ctx, err := Open(path, 1)
		require.ErrorIs(t, err, errs.ErrSinkUnavailable)
		require.NotNil(t, ctx)
		require.Equal(t, StateClosed, ctx.State())
		require.ErrorIs(t, ctx.Begin(nil, 0, "x"), errs.ErrSinkUnavailable)
		require.NoError(t, ctx.Close())
	})

	t.Run("Invalid mode", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "trace.bin")

		ctx, err := Open(path, 1, WithMode(format.Mode(9)))
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		require.Equal(t, StateClosed, ctx.State())

		_, statErr := os.Stat(path)
		require.True(t, os.IsNotExist(statErr), "no file is created for bad options")
	})

	t.Run("Invalid name strategy closes sink", func(t *testing.T) {
		mem := sink.NewMemory()

		ctx, err := OpenSink(mem, 1, WithNameStrategy(format.NameStrategy(0)))
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		require.Equal(t, StateClosed, ctx.State())
		require.True(t, mem.Closed())
	})

	t.Run("Nil sink", func(t *testing.T) {
		ctx, err := OpenSink(nil, 1)
		require.ErrorIs(t, err, errs.ErrSinkUnavailable)
		require.Equal(t, StateClosed, ctx.State())
	})

	t.Run("Header write fails", func(t *testing.T) {
		s := &faultySink{limit: section.HeaderSize - 1}

		ctx, err := OpenSink(s, 1)
		require.ErrorIs(t, err, errs.ErrWriteFault)
		require.ErrorIs(t, err, errBroken)
		require.Equal(t, StateClosed, ctx.State())
		require.True(t, s.closed)
	})

	t.Run("Prologue write fails", func(t *testing.T) {
		s := &faultySink{limit: 0}

		ctx, err := OpenSink(s, 1, WithJSON())
		require.ErrorIs(t, err, errs.ErrWriteFault)
		require.Equal(t, StateClosed, ctx.State())
		require.True(t, s.closed)
	})
}

func TestClose_Twice(t *testing.T) {
	for _, mode := range []format.Mode{format.ModeBinary, format.ModeJSON} {
		t.Run(mode.String(), func(t *testing.T) {
			ctx, mem := openMemory(t, 1, WithMode(mode))
			require.NoError(t, ctx.Begin(nil, 0, "x"))

			require.NoError(t, ctx.Close())
			snapshot := bytes.Clone(mem.Bytes())

			require.NoError(t, ctx.Close())
			require.Equal(t, snapshot, mem.Bytes())
			require.Equal(t, StateClosed, ctx.State())
		})
	}
}

func TestClosedContext(t *testing.T) {
	ctx, _ := openMemory(t, 1)
	require.NoError(t, ctx.Close())

	buf := buffer.New(32)
	require.NoError(t, buf.Write(nil, []byte("pending")))

	require.ErrorIs(t, ctx.Begin(buf, 0, "x"), errs.ErrSinkUnavailable)
	require.ErrorIs(t, ctx.End(buf, 0), errs.ErrSinkUnavailable)

	err := ctx.Flush(buf)
	require.ErrorIs(t, err, errs.ErrSinkUnavailable)
	require.Equal(t, 0, buf.Len(), "buffer is reset")

	var zero Context
	require.Equal(t, StateClosed, zero.State())
	require.ErrorIs(t, zero.Begin(nil, 0, "x"), errs.ErrSinkUnavailable)
	require.NoError(t, zero.Close())
}

func TestNilContext(t *testing.T) {
	var ctx *Context
	buf := buffer.New(32)
	require.NoError(t, buf.Write(nil, []byte("pending")))

	require.ErrorIs(t, ctx.Begin(buf, 0, "x"), errs.ErrInvalidArgument)
	require.ErrorIs(t, ctx.BeginLen(buf, 0, []byte("x"), 1), errs.ErrInvalidArgument)
	require.ErrorIs(t, ctx.End(buf, 0), errs.ErrInvalidArgument)

	require.NoError(t, ctx.Flush(buf))
	require.Equal(t, 0, buf.Len())
	require.NoError(t, ctx.Flush(nil))
	require.NoError(t, ctx.Close())

	require.Equal(t, StateClosed, ctx.State())
	require.Equal(t, format.Mode(0), ctx.Mode())
	require.Zero(t, ctx.TimestampUnit())
	require.Equal(t, Stats{}, ctx.Stats())
}

func TestBegin_InvalidArguments(t *testing.T) {
	ctx, mem := openMemory(t, 1)
	defer ctx.Close()

	tests := []struct {
		name string
		call func() error
	}{
		{"empty string", func() error { return ctx.Begin(nil, 0, "") }},
		{"nil slice", func() error { return ctx.BeginLen(nil, 0, nil, 3) }},
		{"zero length", func() error { return ctx.BeginLen(nil, 0, []byte("abc"), 0) }},
		{"negative length", func() error { return ctx.BeginLenTid(nil, 0, []byte("abc"), -2, 1) }},
		{"length past slice", func() error { return ctx.BeginLenTidPid(nil, 0, []byte("abc"), 4, 1, 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.call(), errs.ErrInvalidArgument)
		})
	}

	require.Equal(t, section.HeaderSize, mem.Len(), "rejected calls write nothing")
	require.Zero(t, ctx.Stats().BeginEvents)
}

func TestBegin_ValidationOrder(t *testing.T) {
	ctx, _ := openMemory(t, 1)
	require.NoError(t, ctx.Close())

	// A bad name is reported before the closed stream.
	require.ErrorIs(t, ctx.BeginLen(nil, 0, []byte("x"), 0), errs.ErrInvalidArgument)
	require.ErrorIs(t, ctx.BeginLen(nil, 0, []byte("x"), 1), errs.ErrSinkUnavailable)
}

func TestBeginLen_Prefix(t *testing.T) {
	ctx, mem := openMemory(t, 1)

	require.NoError(t, ctx.BeginLen(nil, 5, []byte("prefix-and-more"), 6))
	require.NoError(t, ctx.Close())

	var ev section.BeginEvent
	_, err := ev.Parse(mem.Bytes()[section.HeaderSize:])
	require.NoError(t, err)
	require.Equal(t, []byte("prefix"), ev.Name)
}

func TestBegin_Truncation(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx, mem := openMemory(t, 1, WithLogger(zap.New(core)))

	long := strings.Repeat("a", 254) + "bc" + strings.Repeat("z", 100)
	require.NoError(t, ctx.Begin(nil, 0, long))
	require.NoError(t, ctx.BeginLen(nil, 0, []byte(long), 1000))
	require.NoError(t, ctx.Close())

	require.Equal(t, int64(2), ctx.Stats().TruncatedNames)
	require.Equal(t, 2, logs.FilterMessage("event name truncated").Len())

	data := mem.Bytes()[section.HeaderSize:]
	for range 2 {
		var ev section.BeginEvent
		n, err := ev.Parse(data)
		require.NoError(t, err)
		require.Len(t, ev.Name, section.MaxNameLength)
		require.Equal(t, byte('b'), ev.Name[section.MaxNameLength-1])
		data = data[n:]
	}
}

func TestBinaryBuffering(t *testing.T) {
	ctx, mem := openMemory(t, 1)
	buf := buffer.New(1024)

	require.NoError(t, ctx.Begin(buf, 1, "buffered"))
	require.NoError(t, ctx.End(buf, 2))
	require.Equal(t, section.HeaderSize, mem.Len(), "records stay in the buffer")
	require.Equal(t, section.BeginPrefixSize+8+section.EndEventSize, buf.Len())

	require.NoError(t, ctx.Flush(buf))
	require.Equal(t, 0, buf.Len())
	require.Equal(t, section.HeaderSize+section.BeginPrefixSize+8+section.EndEventSize, mem.Len())

	// Close does not drain caller buffers.
	require.NoError(t, ctx.End(buf, 3))
	require.NoError(t, ctx.Close())
	require.Equal(t, section.EndEventSize, buf.Len())
}

func TestBinaryBufferBypass(t *testing.T) {
	ctx, mem := openMemory(t, 1)
	buf := buffer.New(section.EndEventSize)

	require.NoError(t, ctx.End(buf, 1))
	require.Equal(t, 0, buf.Len())
	require.Equal(t, section.HeaderSize+section.EndEventSize, mem.Len())

	require.NoError(t, ctx.Begin(buf, 1, "larger than the buffer"))
	require.Equal(t, 0, buf.Len())
	require.NoError(t, ctx.Close())
}

func TestNameStrategiesProduceSameBytes(t *testing.T) {
	record := func(strategy format.NameStrategy, capacity int) []byte {
		ctx, mem := openMemory(t, 1e-6, WithNameStrategy(strategy))

		var buf *buffer.WriteBuffer
		if capacity > 0 {
			buf = buffer.New(capacity)
		}

		for i := 0; i < 50; i++ {
			name := strings.Repeat(string(rune('a'+i%26)), i*7+1)
			require.NoError(t, ctx.BeginTidPid(buf, float64(i), name, uint32(i), 9))
			require.NoError(t, ctx.EndTidPid(buf, float64(i)+1, uint32(i), 9))
		}
		require.NoError(t, ctx.Flush(buf))
		require.NoError(t, ctx.Close())

		return mem.Bytes()
	}

	for _, capacity := range []int{0, 16, 300, 4096} {
		copied := record(format.NameCopy, capacity)
		borrowed := record(format.NameBorrow, capacity)
		require.Equal(t, copied, borrowed, "capacity %d", capacity)
	}
}

func TestSinkFaultIsSticky(t *testing.T) {
	s := &faultySink{limit: section.HeaderSize + section.EndEventSize}
	ctx, err := OpenSink(s, 1)
	require.NoError(t, err)

	require.NoError(t, ctx.End(nil, 1))

	err = ctx.End(nil, 2)
	require.ErrorIs(t, err, errs.ErrWriteFault)
	require.ErrorIs(t, err, errBroken)

	// The sink is not touched again.
	s.limit = 1 << 20
	err = ctx.Begin(nil, 3, "after")
	require.ErrorIs(t, err, errs.ErrSinkFault)
	require.ErrorIs(t, err, errBroken)
	require.ErrorIs(t, ctx.Flush(nil), errs.ErrSinkFault)

	stats := ctx.Stats()
	require.Equal(t, int64(1), stats.EndEvents)
	require.Zero(t, stats.BeginEvents)

	require.NoError(t, ctx.Close())
	require.True(t, s.closed)
	require.Equal(t, section.HeaderSize+section.EndEventSize, s.Len())
}

func TestFlushFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	s := &faultySink{limit: section.HeaderSize}
	ctx, err := OpenSink(s, 1, WithLogger(zap.New(core)))
	require.NoError(t, err)

	buf := buffer.New(256)
	require.NoError(t, ctx.Begin(buf, 1, "never lands"))

	err = ctx.Flush(buf)
	require.ErrorIs(t, err, errs.ErrWriteFault)
	require.Equal(t, 0, buf.Len())
	require.Equal(t, 1, logs.FilterMessage("trace write failed").Len())

	require.ErrorIs(t, ctx.End(buf, 2), errs.ErrSinkFault)
	require.NoError(t, ctx.Close())
}

func TestJSONCloseAfterFault(t *testing.T) {
	s := &faultySink{limit: len(encoding.JSONPrologue)}
	ctx, err := OpenSink(s, 1, WithJSON())
	require.NoError(t, err)

	require.ErrorIs(t, ctx.Begin(nil, 0, "x"), errs.ErrWriteFault)

	err = ctx.Close()
	require.ErrorIs(t, err, errs.ErrSinkFault)
	require.True(t, s.closed)
	require.Equal(t, StateClosed, ctx.State())
}

func TestJSONCloseNeedsSeeker(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	s := &streamSink{}

	ctx, err := OpenSink(s, 1, WithJSON(), WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.Equal(t, 1, logs.Len(), "non-seekable json sink is reported at open")

	require.NoError(t, ctx.Begin(nil, 0, "x"))

	err = ctx.Close()
	require.ErrorIs(t, err, errs.ErrWriteFault)
	require.True(t, s.closed)
	require.Equal(t, StateClosed, ctx.State())
}

func TestCloseSinkError(t *testing.T) {
	s := &faultySink{limit: 1 << 10, closeErr: errBroken}
	ctx, err := OpenSink(s, 1)
	require.NoError(t, err)

	err = ctx.Close()
	require.ErrorIs(t, err, errs.ErrWriteFault)
	require.ErrorIs(t, err, errBroken)
	require.Equal(t, StateClosed, ctx.State())
	require.NoError(t, ctx.Close())
}

func TestStats(t *testing.T) {
	ctx, mem := openMemory(t, 1)
	buf := buffer.New(64)

	require.NoError(t, ctx.Begin(buf, 1, "a"))
	require.NoError(t, ctx.Begin(buf, 2, "b"))
	require.NoError(t, ctx.End(buf, 3))
	require.NoError(t, ctx.Flush(buf))

	stats := ctx.Stats()
	assert.Equal(t, int64(2), stats.BeginEvents)
	assert.Equal(t, int64(1), stats.EndEvents)
	assert.Equal(t, int64(3), stats.Events())
	assert.Equal(t, int64(1), stats.Flushes)
	assert.Equal(t, int64(mem.Len()), stats.BytesWritten)
	assert.Equal(t, int64(2), stats.SinkWrites, "header and one buffer flush")
	assert.Equal(t, xxhash.Sum64(mem.Bytes()), stats.Digest)

	require.NoError(t, ctx.Close())
	assert.Equal(t, stats, ctx.Stats(), "counters survive close")
}

func TestStats_JSONCountsRewoundSeparator(t *testing.T) {
	ctx, mem := openMemory(t, 1, WithJSON())
	buf := buffer.NewDefault()

	require.NoError(t, ctx.Begin(buf, 1, "a"))
	require.NoError(t, ctx.End(buf, 2))
	beforeClose := bytes.Clone(mem.Bytes())
	require.True(t, strings.HasSuffix(string(beforeClose), encoding.JSONSeparator))

	require.NoError(t, ctx.Close())

	stats := ctx.Stats()
	sep := int64(len(encoding.JSONSeparator))
	assert.Equal(t, int64(mem.Len())+sep, stats.BytesWritten)
	handed := append(beforeClose, encoding.JSONEpilogue...)
	assert.Equal(t, xxhash.Sum64(handed), stats.Digest)
	assert.NotEqual(t, xxhash.Sum64(mem.Bytes()), stats.Digest)
}

func TestBinaryEncodeDoesNotAllocate(t *testing.T) {
	for _, names := range []format.NameStrategy{format.NameCopy, format.NameBorrow} {
		t.Run(names.String(), func(t *testing.T) {
			ctx, err := OpenSink(discardSink{}, 1e-6, WithNameStrategy(names))
			require.NoError(t, err)
			buf := buffer.NewDefault()

			allocs := testing.AllocsPerRun(100, func() {
				_ = ctx.BeginTidPid(buf, 1, "render_frame", 1, 1)
				_ = ctx.EndTidPid(buf, 2, 1, 1)
			})
			assert.Zero(t, allocs)
			require.NoError(t, ctx.Close())
		})
	}
}

func TestLifecycleLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx, _ := openMemory(t, 1e-6, WithLogger(zap.New(core)))

	require.NoError(t, ctx.Begin(nil, 0, "x"))
	require.NoError(t, ctx.Close())

	opened := logs.FilterMessage("trace stream opened").All()
	require.Len(t, opened, 1)
	assert.Equal(t, "Binary", opened[0].ContextMap()["mode"])
	assert.Equal(t, 1e-6, opened[0].ContextMap()["timestamp_unit"])

	closed := logs.FilterMessage("trace stream closed").All()
	require.Len(t, closed, 1)
	statsField, ok := closed[0].ContextMap()["stats"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, int64(1), statsField["begin_events"])
}

func TestOptions(t *testing.T) {
	cfg, err := newConfig()
	require.NoError(t, err)
	require.Equal(t, format.ModeBinary, cfg.mode)
	require.Equal(t, format.NameCopy, cfg.names)
	require.NotNil(t, cfg.logger)

	cfg, err = newConfig(WithJSON(), WithNameStrategy(format.NameBorrow), WithLogger(nil), nil)
	require.NoError(t, err)
	require.Equal(t, format.ModeJSON, cfg.mode)
	require.Equal(t, format.NameBorrow, cfg.names)
	require.NotNil(t, cfg.logger)

	_, err = newConfig(WithMode(format.Mode(0)))
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestStateString(t *testing.T) {
	require.Equal(t, "Closed", StateClosed.String())
	require.Equal(t, "Open", StateOpen.String())
	require.Equal(t, "Unknown", State(7).String())
}

func BenchmarkBeginEnd_Binary(b *testing.B) {
	ctx, err := OpenSink(sink.NewMemory(), 1e-9)
	require.NoError(b, err)
	buf := buffer.NewDefault()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ctx.BeginTidPid(buf, float64(i), "render_frame", 1, 1)
		_ = ctx.EndTidPid(buf, float64(i)+1, 1, 1)
	}
	_ = ctx.Flush(buf)
	_ = ctx.Close()
}

func BenchmarkBeginEnd_JSON(b *testing.B) {
	ctx, err := OpenSink(sink.NewMemory(), 1e-3, WithJSON())
	require.NoError(b, err)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ctx.BeginTidPid(nil, float64(i), "render_frame", 1, 1)
		_ = ctx.EndTidPid(nil, float64(i)+1, 1, 1)
	}
	_ = ctx.Close()
}
