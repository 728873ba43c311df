package sink

import (
	"bufio"
	"errors"
	"io"
	"os"
)

const fileBufferSize = 1 << 16

// File is a Sink backed by an OS file with a userspace write buffer.
type File struct {
	f *os.File
	w *bufio.Writer
}

var (
	_ Sink      = (*File)(nil)
	_ io.Seeker = (*File)(nil)
)

// Create creates or truncates the named file and returns it as a Sink.
func Create(path string) (*File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return NewFile(f), nil
}

// NewFile wraps an already open file. The File takes ownership of f.
func NewFile(f *os.File) *File {
	return &File{f: f, w: bufio.NewWriterSize(f, fileBufferSize)}
}

// Name returns the name of the underlying file.
func (s *File) Name() string {
	return s.f.Name()
}

func (s *File) Write(p []byte) (int, error) {
	if s.w == nil {
		return 0, ErrClosed
	}

	return s.w.Write(p)
}

func (s *File) Flush() error {
	if s.w == nil {
		return ErrClosed
	}

	return s.w.Flush()
}

// Seek flushes buffered bytes and moves the file offset.
func (s *File) Seek(offset int64, whence int) (int64, error) {
	if err := s.Flush(); err != nil {
		return 0, err
	}

	return s.f.Seek(offset, whence)
}

// Close flushes buffered bytes and closes the file. Calling Close again
// returns ErrClosed.
func (s *File) Close() error {
	if s.w == nil {
		return ErrClosed
	}

	flushErr := s.w.Flush()
	s.w = nil

	return errors.Join(flushErr, s.f.Close())
}
