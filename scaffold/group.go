// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package scaffold

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Group resolves the independent children of one shell concurrently.
// The first failing child cancels its siblings; Wait joins all of them.
// Children must be scheduled before Wait is called.
type Group struct {
	reg   *Registry
	eg    *errgroup.Group
	ctx   context.Context
	leave func()

	// guarded by reg.mu
	pending int
	parked  bool
}

// NewGroup starts a group of child resolutions within the pass of reg.
func NewGroup(ctx context.Context, reg *Registry) *Group {
	ctx, leave := reg.enter(ctx)
	eg, ctx := errgroup.WithContext(ctx)
	return &Group{reg: reg, eg: eg, ctx: ctx, leave: leave}
}

func (g *Group) spawn(fn func(ctx context.Context) error) {
	g.reg.mu.Lock()
	g.reg.active++
	g.pending++
	g.reg.mu.Unlock()

	g.eg.Go(func() error {
		err := fn(g.ctx)

		g.reg.mu.Lock()
		g.pending--
		if g.pending == 0 && g.parked {
			// The last child hands its task slot back to the joining parent.
			g.parked = false
		} else {
			g.reg.active--
			g.reg.checkStalledLocked()
		}
		g.reg.mu.Unlock()
		return err
	})
}

// Wait blocks until every child has resolved and returns the first failure.
func (g *Group) Wait() error {
	g.reg.mu.Lock()
	if g.pending > 0 {
		g.parked = true
		g.reg.active--
		g.reg.checkStalledLocked()
	}
	g.reg.mu.Unlock()

	err := g.eg.Wait()
	g.leave()
	return err
}

// Go schedules s and stores its value in dst once resolved.
func Go[T any](g *Group, s Scaffold[T], dst *T) {
	g.spawn(func(ctx context.Context) error {
		v, err := s.Resolve(ctx, g.reg)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	})
}

// GoEach schedules every element of ss, keeping their order in dst.
func GoEach[T any](g *Group, ss []Scaffold[T], dst *[]T) {
	if len(ss) == 0 {
		return
	}
	out := make([]T, len(ss))
	*dst = out
	for i, s := range ss {
		Go(g, s, &out[i])
	}
}

// GoEntries schedules the value of every entry, keeping keys and order in dst.
func GoEntries[K comparable, V any](g *Group, es []Entry[K, Scaffold[V]], dst *Entries[K, V]) {
	if len(es) == 0 {
		return
	}
	out := make(Entries[K, V], len(es))
	*dst = out
	for i, e := range es {
		out[i].Key = e.Key
		Go(g, e.Value, &out[i].Value)
	}
}
