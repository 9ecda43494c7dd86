// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package scaffold

// Spec is a reusable recipe for a value of type T, parameterized by a context C.
// Connect only stages scaffolds; nothing is resolved until Resolve.
type Spec[C, T any] interface {
	Connect(c C) Scaffold[T]
}

// SpecFunc adapts a plain function to a Spec.
type SpecFunc[C, T any] func(c C) Scaffold[T]

// Connect calls f.
func (f SpecFunc[C, T]) Connect(c C) Scaffold[T] {
	return f(c)
}

// Const returns a spec that ignores its context and resolves to v.
func Const[C, T any](v T) Spec[C, T] {
	return SpecFunc[C, T](func(C) Scaffold[T] { return Wrap(v) })
}

// RefSpec returns a spec resolving to the value registered under name.
func RefSpec[C, T any](name string) Spec[C, T] {
	return SpecFunc[C, T](func(C) Scaffold[T] { return Ref[T](name) })
}

// Builder is the state shared by every generated builder: the context value
// the DSL body sees and the shell it stages into.
type Builder[C, S any] struct {
	context C
	shell   *S
}

// NewBuilder returns a builder staging into shell under context c.
func NewBuilder[C, S any](c C, shell *S) Builder[C, S] {
	return Builder[C, S]{context: c, shell: shell}
}

// Context returns the context value the builder was created with.
func (b Builder[C, S]) Context() C {
	return b.context
}

// Shell returns the staged shell.
func (b Builder[C, S]) Shell() *S {
	return b.shell
}

// Split returns a builder over the same shell under a different context.
// Whatever the split builder stages is visible to b.
func Split[D, C, S any](b Builder[C, S], d D) Builder[D, S] {
	return Builder[D, S]{context: d, shell: b.shell}
}
