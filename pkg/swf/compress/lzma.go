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

package compress

import (
	"encoding/binary"

	"github.com/google/wuffs/lib/litonlylzma"
	"github.com/pkg/errors"
)

// lzmaPropsSize is the length of the LZMA properties block (1 byte
// lc/lp/pb plus a 4-byte little-endian dictionary size) that precedes
// every LZMA bitstream, including litonlylzma's.
const lzmaPropsSize = 5

// lzmaUncompressedSizeFieldSize is the 8-byte uncompressed-size field
// the standalone .lzma container carries right after the properties
// block. The SWF ZWS envelope has no use for it (the file's own
// 4-byte uncompressed length already covers that), so LZMA strips it.
const lzmaUncompressedSizeFieldSize = 8

// LZMA compresses payload into the ZWS envelope's body: a 4-byte
// little-endian compressed-data length, the 5-byte LZMA properties
// block, then the raw compressed bitstream — the ".lzma" container's
// own 8-byte uncompressed-size field is stripped, matching §6's "raw
// LZMA stream, no .lzma container" requirement.
func LZMA(payload []byte) ([]byte, error) {
	encoded, err := litonlylzma.FileFormatLZMA.Encode(nil, payload)
	if err != nil {
		return nil, errors.Wrap(err, "compress/swf: lzma encode payload")
	}
	headerSize := lzmaPropsSize + lzmaUncompressedSizeFieldSize
	if len(encoded) < headerSize {
		return nil, errors.New("compress/swf: lzma encoder returned a truncated header")
	}
	props := encoded[:lzmaPropsSize]
	stream := encoded[headerSize:]

	out := make([]byte, 0, 4+len(props)+len(stream))
	var lengthField [4]byte
	binary.LittleEndian.PutUint32(lengthField[:], uint32(len(stream)))
	out = append(out, lengthField[:]...)
	out = append(out, props...)
	out = append(out, stream...)
	return out, nil
}
