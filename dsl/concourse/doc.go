// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package concourse is the generated DSL for the built-in concourse schema.
//
// Resources are registered by name while a configuration resolves, so get and
// put steps anywhere in the tree can reference them with ResourceRef.
package concourse

//go:generate go run ../../cmd/philarios generate --builtin concourse --output .
