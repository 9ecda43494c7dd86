// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"errors"
	"fmt"
)

// ErrUnsupportedShape indicates a schema shape the generator cannot emit code for.
var ErrUnsupportedShape = errors.New("unsupported shape")

// UnsupportedShapeError names the offending type and field.
// Field is empty when the problem concerns the type as a whole.
type UnsupportedShapeError struct {
	Type   string
	Field  string
	Reason string
}

func (e *UnsupportedShapeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s: %s", ErrUnsupportedShape, e.Type, e.Reason)
	}
	return fmt.Sprintf("%s: %s.%s: %s", ErrUnsupportedShape, e.Type, e.Field, e.Reason)
}

func (e *UnsupportedShapeError) Unwrap() error { return ErrUnsupportedShape }
