// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package scaffold

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/hashicorp/go-hclog"
)

type key struct {
	typ  reflect.Type
	name string
}

// Registry maps (type, name) to the canonical resolved value of a named entity.
// It is created per resolution pass and is safe for concurrent use.
//
// Besides the entries, the registry tracks how many tasks of the pass are able to
// make progress. A task is a top-level Resolve call or a child goroutine of a
// Group. Tasks blocked on a reference or joining their children do not count.
// When that number drops to zero while references are pending, nothing can
// register their keys anymore and they fail.
type Registry struct {
	log hclog.Logger

	mu      sync.Mutex
	entries map[key]any
	waiters map[key][]chan struct{}
	active  int
	waiting int
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used to trace registrations and stalls.
func WithLogger(l hclog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		log:     hclog.NewNullLogger(),
		entries: make(map[key]any),
		waiters: make(map[key][]chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Put stores v under the type tag t and name.
// Putting the same instance twice is a no-op; a different value is an error.
func (r *Registry) Put(t reflect.Type, name string, v any) error {
	if v == nil || !reflect.TypeOf(v).AssignableTo(t) {
		return fmt.Errorf("%w: cannot register %T as %s %q", ErrTypeMismatch, v, t, name)
	}

	k := key{typ: t, name: name}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.entries[k]; ok {
		if sameInstance(prev, v) {
			return nil
		}
		return &DuplicateRegistrationError{Type: t.String(), Name: name}
	}
	r.entries[k] = v
	r.log.Trace("registered", "type", t.String(), "name", name)

	// Woken waiters take over a task slot each.
	for _, ch := range r.waiters[k] {
		r.waiting--
		r.active++
		close(ch)
	}
	delete(r.waiters, k)
	return nil
}

// Get returns the value stored under the type tag t and name.
func (r *Registry) Get(t reflect.Type, name string) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.entries[key{typ: t, name: name}]; ok {
		return v, nil
	}
	return nil, r.notFoundLocked(t, name)
}

// Len returns the number of registered values.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Register stores v under its static type T and name.
func Register[T any](r *Registry, name string, v T) error {
	return r.Put(reflect.TypeFor[T](), name, v)
}

// Lookup returns the value registered under type T and name.
func Lookup[T any](r *Registry, name string) (T, error) {
	var zero T
	v, err := r.Get(reflect.TypeFor[T](), name)
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

func (r *Registry) notFoundLocked(t reflect.Type, name string) error {
	var others []string
	for k := range r.entries {
		if k.name == name && k.typ != t {
			others = append(others, k.typ.String())
		}
	}
	sort.Strings(others)
	return &NotFoundError{Type: t.String(), Name: name, Others: others}
}

// await returns the value registered under (t, name), waiting for it while the
// pass can still make progress.
func (r *Registry) await(ctx context.Context, t reflect.Type, name string) (any, error) {
	k := key{typ: t, name: name}

	r.mu.Lock()
	if v, ok := r.entries[k]; ok {
		r.mu.Unlock()
		return v, nil
	}
	ch := make(chan struct{})
	r.waiters[k] = append(r.waiters[k], ch)
	r.waiting++
	r.active--
	r.checkStalledLocked()
	r.mu.Unlock()

	select {
	case <-ch:
	case <-ctx.Done():
		r.mu.Lock()
		if r.dropWaiterLocked(k, ch) {
			r.waiting--
			r.active++
		}
		r.mu.Unlock()
		return nil, ctx.Err()
	}

	r.mu.Lock()
	v, ok := r.entries[k]
	r.mu.Unlock()
	if !ok {
		return nil, &UnresolvedReferenceError{Type: t.String(), Name: name}
	}
	return v, nil
}

func (r *Registry) dropWaiterLocked(k key, ch chan struct{}) bool {
	chs := r.waiters[k]
	for i, c := range chs {
		if c == ch {
			r.waiters[k] = append(chs[:i], chs[i+1:]...)
			if len(r.waiters[k]) == 0 {
				delete(r.waiters, k)
			}
			return true
		}
	}
	return false
}

// checkStalledLocked wakes every waiter once no task can register anything.
// The woken waiters find their key missing and fail.
func (r *Registry) checkStalledLocked() {
	if r.active > 0 || r.waiting == 0 {
		return
	}
	r.log.Debug("resolution stalled, failing pending references", "pending", r.waiting)
	for k, chs := range r.waiters {
		for _, ch := range chs {
			r.waiting--
			r.active++
			close(ch)
		}
		delete(r.waiters, k)
	}
}

type passKey struct{}

// enter marks ctx as running inside a pass over r and accounts for the caller as
// an active task. Re-entering the same pass is free.
func (r *Registry) enter(ctx context.Context) (context.Context, func()) {
	if reg, ok := ctx.Value(passKey{}).(*Registry); ok && reg == r {
		return ctx, func() {}
	}
	r.mu.Lock()
	r.active++
	r.mu.Unlock()
	return context.WithValue(ctx, passKey{}, r), func() {
		r.mu.Lock()
		r.active--
		r.checkStalledLocked()
		r.mu.Unlock()
	}
}

func sameInstance(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
