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

package swflog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerWritesLevelAndFields(t *testing.T) {
	var buf strings.Builder
	logger := NewLogger(&buf, LevelDebug)
	logger.Info().Str("shape", "square").Int("version", 4).Msg("escalated shape version")

	out := buf.String()
	require.Contains(t, out, "INFO")
	require.Contains(t, out, "escalated shape version")
	require.Contains(t, out, "shape=square")
	require.Contains(t, out, "version=4")
}

func TestLoggerFiltersBelowMinimumLevel(t *testing.T) {
	var buf strings.Builder
	logger := NewLogger(&buf, LevelWarning)
	logger.Debug().Msg("ignored")
	logger.Info().Msg("also ignored")
	require.Empty(t, buf.String())

	logger.Warn().Msg("kept")
	require.Contains(t, buf.String(), "kept")
}

func TestTraceLogsAtDebugLevel(t *testing.T) {
	var buf strings.Builder
	logger := NewLogger(&buf, LevelDebug)
	logger.Trace("shape4-promotion", Field{Key: "reason", Value: "line-style2"})
	require.Contains(t, buf.String(), "DEBUG")
	require.Contains(t, buf.String(), "shape4-promotion")
	require.Contains(t, buf.String(), "reason=line-style2")
}
