// Package buffer writes and reads fixed-size words directly in the internal
// buffers of buffered writers and readers, such as those of package bufio.
package buffer

import (
	"fmt"
	"io"
)

// Writer is a writer exposing its internal buffer, as bufio.Writer does.
type Writer interface {
	io.Writer
	Flush() (err error)
	AvailableBuffer() []byte
	Available() int
}

// Reader is a reader exposing its internal buffer, as bufio.Reader does.
type Reader interface {
	io.Reader
	Size() int
	Peek(n int) ([]byte, error)
	Discard(n int) (discarded int, err error)
}

// Buffer is a fixed-size in-memory [Writer] and [Reader], used to
// serialize objects of known size without copying through bufio.
type Buffer struct {
	data   []byte
	wr, rd int
}

// NewBuffer returns a Buffer reading from, and writing over, data.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// NewBufferSize returns an empty Buffer able to hold size bytes.
func NewBufferSize(size int) *Buffer {
	return &Buffer{data: make([]byte, size)}
}

// Bytes returns the bytes written so far.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.wr]
}

func (b *Buffer) Write(p []byte) (n int, err error) {
	if len(p) > b.Available() {
		return 0, fmt.Errorf("buffer too small: %d bytes available, %d requested", b.Available(), len(p))
	}
	n = copy(b.data[b.wr:], p)
	b.wr += n
	return
}

// Flush is a no-op.
func (b *Buffer) Flush() (err error) {
	return nil
}

func (b *Buffer) AvailableBuffer() []byte {
	return b.data[b.wr:b.wr]
}

func (b *Buffer) Available() int {
	return len(b.data) - b.wr
}

func (b *Buffer) Read(p []byte) (n int, err error) {
	n = copy(p, b.data[b.rd:])
	b.rd += n
	if n < len(p) {
		err = io.EOF
	}
	return
}

// Size returns the number of unread bytes.
func (b *Buffer) Size() int {
	return len(b.data) - b.rd
}

func (b *Buffer) Peek(n int) ([]byte, error) {
	if n > b.Size() {
		return b.data[b.rd:], io.EOF
	}
	return b.data[b.rd : b.rd+n], nil
}

func (b *Buffer) Discard(n int) (discarded int, err error) {
	if n > b.Size() {
		discarded, b.rd = b.Size(), len(b.data)
		return discarded, io.EOF
	}
	b.rd += n
	return n, nil
}
