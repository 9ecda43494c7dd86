// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package scaffold_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/philarios/philarios/scaffold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// item is a hand-written stand-in for a generated type with a list of children.
type item struct {
	Name string
	Deps []*item
}

type itemShell struct {
	name     *string
	deps     []scaffold.Scaffold[*item]
	register bool
}

func newItem(name string, register bool, deps ...scaffold.Scaffold[*item]) *itemShell {
	return &itemShell{name: &name, deps: deps, register: register}
}

func (s *itemShell) Resolve(ctx context.Context, reg *scaffold.Registry) (*item, error) {
	if s.name == nil {
		return nil, scaffold.MissingField("item", "name")
	}
	out := &item{Name: *s.name}
	g := scaffold.NewGroup(ctx, reg)
	scaffold.GoEach(g, s.deps, &out.Deps)
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if s.register {
		if err := scaffold.Register(reg, out.Name, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// delayed resolves its inner scaffold after d.
type delayed[T any] struct {
	d     time.Duration
	inner scaffold.Scaffold[T]
}

func (s delayed[T]) Resolve(ctx context.Context, reg *scaffold.Registry) (T, error) {
	select {
	case <-time.After(s.d):
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
	return s.inner.Resolve(ctx, reg)
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestResolve_SharedReferenceIsCanonical(t *testing.T) {
	ctx := testContext(t)

	// The references are scheduled before the defining subtree, which is also slow.
	root := newItem("root", false,
		scaffold.Ref[*item]("repo"),
		scaffold.Ref[*item]("repo"),
		delayed[*item]{d: 20 * time.Millisecond, inner: newItem("repo", true)},
	)

	got, err := scaffold.Resolve[*item](ctx, root, scaffold.NewRegistry())
	require.NoError(t, err)
	require.Len(t, got.Deps, 3)
	assert.Same(t, got.Deps[2], got.Deps[0])
	assert.Same(t, got.Deps[2], got.Deps[1])
}

func TestResolve_DirectShellCall(t *testing.T) {
	ctx := testContext(t)
	reg := scaffold.NewRegistry()

	root := newItem("root", false,
		scaffold.Ref[*item]("repo"),
		newItem("holder", false, newItem("repo", true)),
	)

	got, err := root.Resolve(ctx, reg)
	require.NoError(t, err)
	assert.Same(t, got.Deps[1].Deps[0], got.Deps[0])

	repo, err := scaffold.Lookup[*item](reg, "repo")
	require.NoError(t, err)
	assert.Same(t, repo, got.Deps[0])
}

func TestResolve_UnresolvedReference(t *testing.T) {
	ctx := testContext(t)

	root := newItem("root", false,
		scaffold.Ref[*item]("missing"),
		delayed[*item]{d: 10 * time.Millisecond, inner: newItem("other", true)},
	)

	got, err := scaffold.Resolve[*item](ctx, root, scaffold.NewRegistry())
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, scaffold.ErrUnresolvedReference)
	assert.Contains(t, err.Error(), `"missing"`)
	assert.NoError(t, ctx.Err(), "stalled pass must fail without waiting for a timeout")
}

func TestResolve_TopLevelReferenceWithoutDefinition(t *testing.T) {
	ctx := testContext(t)

	_, err := scaffold.Resolve[*item](ctx, scaffold.Ref[*item]("nobody"), scaffold.NewRegistry())
	assert.ErrorIs(t, err, scaffold.ErrUnresolvedReference)
}

func TestResolve_CyclicReferencesFail(t *testing.T) {
	ctx := testContext(t)

	root := newItem("root", false,
		newItem("a", true, scaffold.Ref[*item]("b")),
		newItem("b", true, scaffold.Ref[*item]("a")),
	)

	_, err := scaffold.Resolve[*item](ctx, root, scaffold.NewRegistry())
	assert.ErrorIs(t, err, scaffold.ErrUnresolvedReference)
	assert.NoError(t, ctx.Err())
}

func TestResolve_AllOrNothing(t *testing.T) {
	ctx := testContext(t)
	reg := scaffold.NewRegistry()

	broken := &itemShell{}
	root := newItem("root", false,
		newItem("fine", true),
		newItem("parent", false, broken),
	)

	got, err := scaffold.Resolve[*item](ctx, root, reg)
	assert.Nil(t, got)

	var missing *scaffold.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "item", missing.Type)
	assert.Equal(t, "name", missing.Field)
	assert.ErrorIs(t, err, scaffold.ErrMissingField)
}

func TestResolve_DuplicateNamesFail(t *testing.T) {
	ctx := testContext(t)

	root := newItem("root", false,
		newItem("twin", true),
		newItem("twin", true),
	)

	_, err := scaffold.Resolve[*item](ctx, root, scaffold.NewRegistry())
	assert.ErrorIs(t, err, scaffold.ErrDuplicateRegistration)
}

func TestResolve_OrderIndependentOfInterleaving(t *testing.T) {
	ctx := testContext(t)

	var deps []scaffold.Scaffold[*item]
	for i := range 20 {
		// Earlier children finish later.
		d := time.Duration(20-i) * time.Millisecond
		deps = append(deps, delayed[*item]{d: d, inner: newItem(fmt.Sprintf("n%02d", i), false)})
	}

	got, err := scaffold.Resolve[*item](ctx, newItem("root", false, deps...), scaffold.NewRegistry())
	require.NoError(t, err)
	require.Len(t, got.Deps, 20)
	for i, d := range got.Deps {
		assert.Equal(t, fmt.Sprintf("n%02d", i), d.Name)
	}
}

func TestResolve_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root := newItem("root", false, delayed[*item]{d: time.Second, inner: newItem("slow", false)})
	_, err := scaffold.Resolve[*item](ctx, root, scaffold.NewRegistry())
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestMap(t *testing.T) {
	ctx := testContext(t)

	s := scaffold.Map[int, string](scaffold.Wrap(21), func(v int) string { return fmt.Sprint(v * 2) })
	got, err := scaffold.Resolve(ctx, s, scaffold.NewRegistry())
	require.NoError(t, err)
	assert.Equal(t, "42", got)

	failing := scaffold.Map[*item, string](scaffold.Ref[*item]("x"), func(v *item) string { return v.Name })
	_, err = scaffold.Resolve(ctx, failing, scaffold.NewRegistry())
	assert.ErrorIs(t, err, scaffold.ErrUnresolvedReference)
}

func TestTranslate(t *testing.T) {
	ctx := testContext(t)

	spec := scaffold.SpecFunc[string, *item](func(c string) scaffold.Scaffold[*item] {
		return newItem(c, false, newItem(c+"-child", false))
	})

	got, err := scaffold.Translate[string, *item](ctx, spec, "team-a")
	require.NoError(t, err)
	assert.Equal(t, "team-a", got.Name)
	assert.Equal(t, "team-a-child", got.Deps[0].Name)

	c, err := scaffold.Translate(ctx, scaffold.Const[string](7), "ignored")
	require.NoError(t, err)
	assert.Equal(t, 7, c)
}

func TestRefSpec_UsesRegistry(t *testing.T) {
	ctx := testContext(t)
	reg := scaffold.NewRegistry()

	seeded := &item{Name: "seeded"}
	require.NoError(t, scaffold.Register(reg, "seeded", seeded))

	got, err := scaffold.Resolve(ctx, scaffold.RefSpec[int, *item]("seeded").Connect(0), reg)
	require.NoError(t, err)
	assert.Same(t, seeded, got)
}

func TestSplit_SharesShell(t *testing.T) {
	shell := &itemShell{}
	b := scaffold.NewBuilder("outer", shell)
	split := scaffold.Split(b, 3)

	assert.Equal(t, "outer", b.Context())
	assert.Equal(t, 3, split.Context())
	assert.Same(t, b.Shell(), split.Shell())
}
