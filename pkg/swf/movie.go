// Copyright 2020-2021 The OS-NVR Authors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; version 2.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package swf

import (
	"bytes"
	"io"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/open-flash/swf-emitter-go/pkg/swf/bitio"
	"github.com/open-flash/swf-emitter-go/pkg/swf/compress"
	"github.com/open-flash/swf-emitter-go/pkg/swflog"
	"github.com/open-flash/swf-emitter-go/pkg/swftree"
)

// Tracer receives one call per notable emission decision. EmitSWF fires
// "swf-version-capped" when Options.MaxVersion lowers the requested
// version and "compression-selected" once the payload envelope is built;
// shape/morph-shape version escalations and wire quirks are not traced.
// A nil Tracer is the default and never changes emitted bytes.
type Tracer interface {
	Trace(event string, fields ...swflog.Field)
}

// Options configures one EmitSWF/EmitMovie call.
type Options struct {
	// Compression selects the signature magic and payload envelope.
	// The zero value is CompressionNone.
	Compression swftree.CompressionMethod

	// MaxVersion caps the SWF version written to the signature; 0 means
	// no ceiling (the swfVersion argument passed to EmitSWF is used
	// unmodified).
	MaxVersion uint8

	// Tracer receives emission trace events; nil disables tracing.
	Tracer Tracer
}

func (o Options) trace(event string, fields ...swflog.Field) {
	if o.Tracer != nil {
		o.Tracer.Trace(event, fields...)
	}
}

func signatureMagic(m swftree.CompressionMethod) [3]byte {
	switch m {
	case swftree.CompressionNone:
		return [3]byte{'F', 'W', 'S'}
	case swftree.CompressionDeflate:
		return [3]byte{'C', 'W', 'S'}
	case swftree.CompressionLzma:
		return [3]byte{'Z', 'W', 'S'}
	default:
		invariant(false, "unknown compression method %v", m)
		return [3]byte{}
	}
}

// EmitHeader writes a Movie header's uncompressed payload prefix: the
// frame rectangle, the 16-bit frame rate, and the 16-bit frame count.
func EmitHeader(w io.Writer, h swftree.Header) error {
	if err := EmitRect(w, h.FrameSize); err != nil {
		return wrapIO(err, "emit header frame size")
	}
	bw := bitio.NewWriter(w)
	bw.TryWriteInt16LE(int16(h.FrameRate))
	bw.TryWriteUint16LE(h.FrameCount)
	return wrapIO(bw.TryError, "emit header frame rate/count")
}

// EmitMovie writes a Movie's uncompressed payload: the header followed
// by the framed tag string and its end-of-tags sentinel. This is the
// region that compression (when selected) wraps.
func EmitMovie(w io.Writer, m swftree.Movie, swfVersion uint8, opts Options) error {
	if err := EmitHeader(w, m.Header); err != nil {
		return err
	}
	return EmitTagString(w, m.Tags, swfVersion)
}

// EmitSWF writes a complete SWF file: the 8-byte signature (always
// plaintext) followed by the movie payload, compressed per opts.
func EmitSWF(w io.Writer, m swftree.Movie, swfVersion uint8, opts Options) error {
	version := swfVersion
	if opts.MaxVersion != 0 && version > opts.MaxVersion {
		opts.trace("swf-version-capped", swflog.Field{Key: "requested", Value: strconv.Itoa(int(version))}, swflog.Field{Key: "cap", Value: strconv.Itoa(int(opts.MaxVersion))})
		version = opts.MaxVersion
	}

	var payload bytes.Buffer
	if err := EmitMovie(&payload, m, version, opts); err != nil {
		return err
	}

	var body []byte
	switch opts.Compression {
	case swftree.CompressionNone:
		body = payload.Bytes()
	case swftree.CompressionDeflate:
		compressed, err := compress.Deflate(payload.Bytes())
		if err != nil {
			return wrapIO(err, "compress payload")
		}
		body = compressed
	case swftree.CompressionLzma:
		compressed, err := compress.LZMA(payload.Bytes())
		if err != nil {
			return wrapIO(err, "compress payload")
		}
		body = compressed
	default:
		return &UnsupportedCompressionError{Method: opts.Compression}
	}
	opts.trace("compression-selected", swflog.Field{Key: "method", Value: strconv.Itoa(int(opts.Compression))})

	uncompressedLength := 8 + payload.Len()
	invariant(uint64(uncompressedLength) <= 0xffffffff, "uncompressed SWF file length overflows a u32")

	magic := signatureMagic(opts.Compression)
	bw := bitio.NewWriter(w)
	bw.TryWrite(magic[:])
	bw.TryWriteByte(version)
	bw.TryWriteUint32LE(uint32(uncompressedLength))
	bw.TryWrite(body)
	return wrapIO(bw.TryError, "write swf signature and payload")
}

// EmitAll emits every movie in movies concurrently (bounded by
// runtime.GOMAXPROCS), each with its own Options copy and scratch
// buffers per §5's guarantee that no state is shared across calls.
func EmitAll(movies []swftree.Movie, swfVersion uint8, opts Options) ([][]byte, []error) {
	results := make([][]byte, len(movies))
	errs := make([]error, len(movies))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, m := range movies {
		i, m := i, m
		g.Go(func() error {
			var buf bytes.Buffer
			err := EmitSWF(&buf, m, swfVersion, opts)
			results[i] = buf.Bytes()
			errs[i] = err
			return nil
		})
	}
	_ = g.Wait()

	return results, errs
}
