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

// Package compress wraps the two payload envelopes a CWS/ZWS SWF file can
// use. It is split out from pkg/swf because each envelope pulls in its
// own third-party tree.
package compress

import (
	"bytes"
	"compress/zlib"

	"github.com/pkg/errors"
)

// Deflate compresses payload as a single zlib stream, the CWS envelope's
// body. No dictionary, default compression level — the same trade-off
// as net/http's transparent gzip handling, with zlib swapped in because
// that's what the CWS signature promises a decoder.
func Deflate(payload []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(payload); err != nil {
		return nil, errors.Wrap(err, "compress/swf: deflate payload")
	}
	if err := zw.Close(); err != nil {
		return nil, errors.Wrap(err, "compress/swf: close deflate stream")
	}
	return buf.Bytes(), nil
}
