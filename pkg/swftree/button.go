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

package swftree

// ButtonRecord places one character into one or more of a button's four
// states. ColorTransform/Filters/BlendMode being non-default forces the
// record (and therefore the whole button) onto the Button2 wire form,
// the same predicate the encoder uses in swf.GetMinButtonVersion.
type ButtonRecord struct {
	StateUp, StateOver, StateDown, StateHitTest bool
	CharacterID                                  uint16
	Depth                                        uint16
	Matrix                                       Matrix
	ColorTransform                               *ColorTransformWithAlpha
	Filters                                      []Filter
	BlendMode                                    BlendMode
}

// ButtonCond is the condition mask a Button2 ButtonCondAction fires on.
type ButtonCond struct {
	IdleToOverUp     bool
	OverUpToIdle     bool
	OverUpToOverDown bool
	OverDownToOverUp bool
	OverDownToOutDown bool
	OutDownToOverDown bool
	OutDownToIdle    bool
	IdleToOverDown   bool
	OverDownToIdle   bool
	KeyPress         *uint8
}

// ButtonCondAction pairs a condition mask with the actions to run.
type ButtonCondAction struct {
	Conditions ButtonCond
	Actions    []byte
}
