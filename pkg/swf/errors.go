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

// Package swf emits an in-memory swftree.Movie as an SWF file, byte for
// byte matching what a conforming decoder expects to read back.
package swf

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/open-flash/swf-emitter-go/pkg/swftree"
)

// UnsupportedCompressionError reports that the caller asked for a
// compression method this build cannot produce.
type UnsupportedCompressionError struct {
	Method swftree.CompressionMethod
}

func (e *UnsupportedCompressionError) Error() string {
	return fmt.Sprintf("unsupported compression method: %v", e.Method)
}

// wrapIO wraps a sink write failure with a breadcrumb via
// github.com/pkg/errors so a caller can still recover the original
// error with errors.Cause.
func wrapIO(err error, what string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, what)
}

// InvariantError reports a malformed-AST invariant violation: the input
// Movie asked the encoder to do something the SWF format cannot
// express (e.g. a LineStyle1 fill that isn't solid, or a morph shape
// record that repopulates the style table). Callers cannot recover from
// this; emission panics immediately rather than produce malformed bytes.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string { return "swf: invariant violation: " + e.Message }

func invariant(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(&InvariantError{Message: fmt.Sprintf(format, args...)})
	}
}
