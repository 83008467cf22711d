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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/open-flash/swf-emitter-go/pkg/swflog"
	"github.com/open-flash/swf-emitter-go/pkg/swftree"
)

func TestEmitSWFEmptyMovieUncompressed(t *testing.T) {
	movie := swftree.Movie{
		Header: swftree.Header{
			FrameSize:  swftree.Rect{},
			FrameRate:  swftree.FrameRate(24 * 256),
			FrameCount: 1,
		},
	}
	var buf bytes.Buffer
	require.NoError(t, EmitSWF(&buf, movie, 10, Options{}))
	require.Equal(t, []byte{
		'F', 'W', 'S', 0x0A, 0x0F, 0x00, 0x00, 0x00, // signature; 15-byte file.
		0x00,                   // empty rect.
		0x00, 0x18, 0x01, 0x00, // frame rate, frame count.
		0x00, 0x00, // end-of-tags sentinel.
	}, buf.Bytes())
}

func TestEmitSWFDeflateUsesCWSMagic(t *testing.T) {
	movie := swftree.Movie{Header: swftree.Header{FrameCount: 1}}
	var buf bytes.Buffer
	require.NoError(t, EmitSWF(&buf, movie, 6, Options{Compression: swftree.CompressionDeflate}))
	require.Equal(t, []byte{'C', 'W', 'S'}, buf.Bytes()[:3])
}

func TestEmitSWFLzmaUsesZWSMagic(t *testing.T) {
	movie := swftree.Movie{Header: swftree.Header{FrameCount: 1}}
	var buf bytes.Buffer
	require.NoError(t, EmitSWF(&buf, movie, 6, Options{Compression: swftree.CompressionLzma}))
	require.Equal(t, []byte{'Z', 'W', 'S'}, buf.Bytes()[:3])
}

func TestEmitSWFRespectsMaxVersion(t *testing.T) {
	movie := swftree.Movie{Header: swftree.Header{FrameCount: 1}}
	var buf bytes.Buffer
	require.NoError(t, EmitSWF(&buf, movie, 20, Options{MaxVersion: 10}))
	require.Equal(t, byte(10), buf.Bytes()[3])
}

type recordingTracer struct{ events []string }

func (r *recordingTracer) Trace(event string, fields ...swflog.Field) { r.events = append(r.events, event) }

func TestEmitSWFTracesVersionCapAndCompression(t *testing.T) {
	movie := swftree.Movie{Header: swftree.Header{FrameCount: 1}}
	tracer := &recordingTracer{}
	var buf bytes.Buffer
	require.NoError(t, EmitSWF(&buf, movie, 20, Options{MaxVersion: 10, Tracer: tracer}))
	require.Contains(t, tracer.events, "swf-version-capped")
	require.Contains(t, tracer.events, "compression-selected")
}
