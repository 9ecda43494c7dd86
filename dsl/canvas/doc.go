// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package canvas is the generated DSL for the built-in canvas schema: named
// styles, points and a union of shapes drawn on a canvas.
package canvas

//go:generate go run ../../cmd/philarios generate --builtin canvas --output .
