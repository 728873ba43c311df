// Package pool recycles the scratch buffers that JSON trace records are
// assembled in before they are written to a sink.
package pool

import (
	"io"
	"sync"
)

// Record scratch sizing. A record with a 255-byte name that needs full
// escaping stays under DefaultRecordSize; buffers grown past
// MaxRecordSize are not kept.
const (
	DefaultRecordSize = 512  // 512B
	MaxRecordSize     = 4096 // 4KiB
)

// Record holds the bytes of one encoded record.
type Record struct {
	B []byte
}

// Bytes returns the encoded record.
func (r *Record) Bytes() []byte {
	return r.B
}

// Len returns the size of the encoded record.
func (r *Record) Len() int {
	return len(r.B)
}

// Reset empties the record and keeps its storage.
func (r *Record) Reset() {
	r.B = r.B[:0]
}

// WriteTo hands the whole record to w in one Write call so that a record is
// never split across sink writes.
func (r *Record) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.B)
	if err == nil && n != len(r.B) {
		err = io.ErrShortWrite
	}

	return int64(n), err
}

// RecordPool is a sync.Pool of Records.
type RecordPool struct {
	pool  sync.Pool
	limit int
}

// NewRecordPool creates a pool handing out Records with size bytes of
// initial capacity. Records that grew beyond limit are dropped on Put; a
// limit of zero or less keeps everything.
func NewRecordPool(size, limit int) *RecordPool {
	return &RecordPool{
		pool: sync.Pool{
			New: func() any {
				return &Record{B: make([]byte, 0, size)}
			},
		},
		limit: limit,
	}
}

// Get returns an empty Record.
func (p *RecordPool) Get() *Record {
	r, _ := p.pool.Get().(*Record)
	return r
}

// Put returns r to the pool. r must not be used afterwards.
func (p *RecordPool) Put(r *Record) {
	if r == nil || (p.limit > 0 && cap(r.B) > p.limit) {
		return
	}

	r.Reset()
	p.pool.Put(r)
}

var records = NewRecordPool(DefaultRecordSize, MaxRecordSize)

// GetRecord returns an empty Record from the shared pool.
func GetRecord() *Record {
	return records.Get()
}

// PutRecord returns r to the shared pool.
func PutRecord(r *Record) {
	records.Put(r)
}
