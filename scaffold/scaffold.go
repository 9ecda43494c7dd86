// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package scaffold

import (
	"context"
	"reflect"
)

// Scaffold is a not yet resolved recipe for a value of type T.
type Scaffold[T any] interface {
	Resolve(ctx context.Context, reg *Registry) (T, error)
}

// Wrapper is a scaffold around an already resolved value.
type Wrapper[T any] struct {
	Value T
}

// Wrap returns a scaffold resolving to v.
func Wrap[T any](v T) Wrapper[T] {
	return Wrapper[T]{Value: v}
}

// Resolve returns the wrapped value.
func (w Wrapper[T]) Resolve(context.Context, *Registry) (T, error) {
	return w.Value, nil
}

// RegistryRef is a scaffold resolving to the value registered under type T and Name.
type RegistryRef[T any] struct {
	Name string
}

// Ref returns a named forward reference to a value of type T.
func Ref[T any](name string) RegistryRef[T] {
	return RegistryRef[T]{Name: name}
}

// Resolve waits for the referenced value to be registered in the current pass.
func (r RegistryRef[T]) Resolve(ctx context.Context, reg *Registry) (T, error) {
	var zero T
	ctx, leave := reg.enter(ctx)
	defer leave()

	v, err := reg.await(ctx, reflect.TypeFor[T](), r.Name)
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

type mapped[T, U any] struct {
	inner Scaffold[T]
	fn    func(T) U
}

// Map adapts a scaffold of T into a scaffold of U.
// Generated code uses it to store a union variant where the union is expected.
func Map[T, U any](s Scaffold[T], fn func(T) U) Scaffold[U] {
	return mapped[T, U]{inner: s, fn: fn}
}

func (m mapped[T, U]) Resolve(ctx context.Context, reg *Registry) (U, error) {
	v, err := m.inner.Resolve(ctx, reg)
	if err != nil {
		var zero U
		return zero, err
	}
	return m.fn(v), nil
}

// Resolve runs a resolution pass for s over reg.
// It fails as a whole when any part of the tree fails.
func Resolve[T any](ctx context.Context, s Scaffold[T], reg *Registry) (T, error) {
	ctx, leave := reg.enter(ctx)
	defer leave()
	return s.Resolve(ctx, reg)
}

// Translate connects spec to c and resolves the result against a fresh registry.
func Translate[C, T any](ctx context.Context, spec Spec[C, T], c C, opts ...Option) (T, error) {
	return Resolve(ctx, spec.Connect(c), NewRegistry(opts...))
}
