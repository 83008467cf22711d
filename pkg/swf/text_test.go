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

	"github.com/open-flash/swf-emitter-go/pkg/swftree"
)

func TestGetMinTextVersionOpaqueColorIsVersion1(t *testing.T) {
	records := []swftree.TextRecord{
		{Color: &swftree.StraightSRgba8{R: 1, G: 2, B: 3, A: 255}},
	}
	require.Equal(t, DefineTextVersion1, GetMinTextVersion(records))
}

func TestGetMinTextVersionTranslucentColorNeedsVersion2(t *testing.T) {
	records := []swftree.TextRecord{
		{Color: &swftree.StraightSRgba8{R: 1, G: 2, B: 3, A: 128}},
	}
	require.Equal(t, DefineTextVersion2, GetMinTextVersion(records))
}

func TestEmitDefineTextBodyEmptyRecord(t *testing.T) {
	fontID := uint16(7)
	fontSize := uint16(240)
	text := swftree.DefineText{
		ID:     1,
		Bounds: swftree.Rect{},
		Matrix: identityMatrix(),
		Records: []swftree.TextRecord{
			{FontID: &fontID, FontSize: &fontSize, Entries: []swftree.GlyphEntry{{Index: 0, Advance: 120}}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, EmitDefineTextBody(&buf, text, DefineTextVersion1))
	require.NotEmpty(t, buf.Bytes())
}

func TestGetMinFontInfoVersionPlainIsVersion1(t *testing.T) {
	require.Equal(t, DefineFontInfoVersion1, GetMinFontInfoVersion(swftree.DefineFontInfo{}))
}

func TestGetMinFontInfoVersionSmallTextNeedsVersion2(t *testing.T) {
	require.Equal(t, DefineFontInfoVersion2, GetMinFontInfoVersion(swftree.DefineFontInfo{SmallText: true}))
}

func TestEmitDefineFontInfoBodyNarrowCodes(t *testing.T) {
	info := swftree.DefineFontInfo{FontID: 3, FontName: "Foo", Bold: true, CodeTable: []uint16{65, 66}}
	var buf bytes.Buffer
	require.NoError(t, EmitDefineFontInfoBody(&buf, info, DefineFontInfoVersion1))
	b := buf.Bytes()
	require.Equal(t, byte(3), b[2]) // name length.
	require.Equal(t, []byte("Foo"), b[3:6])
	require.Equal(t, []byte{65, 66}, b[7:9])
}

func TestGetMinDoAbcVersionBareBytecodeIsVersion1(t *testing.T) {
	require.Equal(t, DoAbcVersion1, GetMinDoAbcVersion(swftree.DoAbc{Data: []byte{1, 2, 3}}))
}

func TestGetMinDoAbcVersionNamedNeedsVersion2(t *testing.T) {
	require.Equal(t, DoAbcVersion2, GetMinDoAbcVersion(swftree.DoAbc{Name: "main", Data: []byte{1}}))
}

func TestEmitDoAbcBodyVersion1IsBareBytecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EmitDoAbcBody(&buf, swftree.DoAbc{Data: []byte{0xde, 0xad}}, DoAbcVersion1))
	require.Equal(t, []byte{0xde, 0xad}, buf.Bytes())
}

func TestEmitDoAbcBodyVersion2HasFlagsAndName(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EmitDoAbcBody(&buf, swftree.DoAbc{Flags: 1, Name: "m", Data: []byte{0xff}}, DoAbcVersion2))
	require.Equal(t, []byte{1, 0, 0, 0, 'm', 0, 0xff}, buf.Bytes())
}
