// Package gzoe implements a streaming DEFLATE/gzip encoder: it reads an
// arbitrary byte stream and writes a valid gzip member (RFC 1952 envelope,
// RFC 1951 payload), choosing per-block DEFLATE formats via the
// package-merge Huffman builder in internal/huffman and the LZSS match
// finder in internal/window.
package gzoe

import (
	"bufio"
	"fmt"
	"io"

	"github.com/zoejohnston/gzoe/internal/window"
)

const maxBlockSize = 65535

// gzip header fields fixed by spec §4.9: magic, method=deflate, flags=0,
// mtime=0, xflags=0, OS=Unix. No optional fields are ever written (spec
// Non-goals: FNAME/FCOMMENT/FEXTRA/FHCRC).
var gzipHeader = [10]byte{0x1F, 0x8B, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03}

// Encoder drives one gzip member end to end: it owns the sliding window,
// the bit sink, and the running CRC/length accumulators for the duration
// of the run (spec §5).
type Encoder struct {
	r   *bufio.Reader
	bw  *BitWriter
	win *window.Window
	crc CRC32

	total uint32
}

// NewEncoder returns an Encoder reading from r and writing a gzip member to
// w.
func NewEncoder(r io.Reader, w io.Writer) *Encoder {
	return &Encoder{
		r:   bufio.NewReader(r),
		bw:  NewBitWriter(bufio.NewWriter(w)),
		win: window.New(),
	}
}

// Run reads all of the encoder's input, writes the gzip header, one or more
// DEFLATE blocks, and the trailer, and flushes output. It returns the first
// I/O error encountered, wrapped with context (spec §7).
func (e *Encoder) Run() error {
	if err := e.writeHeader(); err != nil {
		return err
	}

	block := make([]byte, maxBlockSize)
	n, readErr := io.ReadFull(e.r, block)
	for {
		if readErr != nil && readErr != io.ErrUnexpectedEOF && readErr != io.EOF {
			return fmt.Errorf("gzoe: reading input: %w", readErr)
		}

		_, peekErr := e.r.Peek(1)
		final := peekErr != nil

		if n == 0 && final && e.total == 0 {
			// Empty input: still emit one final empty block (spec §4.9,
			// §8 scenario 1).
			if err := WriteBlock(e.bw, e.win, nil, true); err != nil {
				return fmt.Errorf("gzoe: writing block: %w", err)
			}
			break
		}

		data := block[:n]
		e.crc.Write(data)
		e.total += uint32(n)

		if err := WriteBlock(e.bw, e.win, data, final); err != nil {
			return fmt.Errorf("gzoe: writing block: %w", err)
		}
		if final {
			break
		}

		n, readErr = io.ReadFull(e.r, block)
	}

	return e.writeTrailer()
}

func (e *Encoder) writeHeader() error {
	for _, b := range gzipHeader {
		if err := e.bw.PushByte(b); err != nil {
			return fmt.Errorf("gzoe: writing header: %w", err)
		}
	}
	return nil
}

func (e *Encoder) writeTrailer() error {
	if err := e.bw.AlignToByte(); err != nil {
		return fmt.Errorf("gzoe: aligning before trailer: %w", err)
	}
	if err := e.bw.PushUint32LE(e.crc.Sum32()); err != nil {
		return fmt.Errorf("gzoe: writing crc32: %w", err)
	}
	if err := e.bw.PushUint32LE(e.total); err != nil {
		return fmt.Errorf("gzoe: writing isize: %w", err)
	}
	if err := e.bw.Flush(); err != nil {
		return fmt.Errorf("gzoe: flushing output: %w", err)
	}
	return nil
}
