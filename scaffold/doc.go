// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package scaffold is the runtime behind every generated philarios DSL.
//
// A Spec is an inert, reusable recipe. Connecting it to a context value stages a
// tree of Scaffolds (constants, named references and generated shells) without
// resolving anything. Resolving the root scaffold against a Registry walks the
// tree, resolves independent children concurrently, builds the immutable values
// and registers named ones so that every reference to the same name observes the
// same instance:
//
//	spec := concourse.ConcourseSpec[Team](func(b *concourse.ConcourseBuilder[Team]) { ... })
//	value, err := scaffold.Translate[Team, *concourse.Concourse](ctx, spec, team)
//
// A Registry lives for one resolution pass. References wait for their target to
// be registered while the pass can still make progress; once every task of the
// pass is blocked on a reference the pending lookups fail with
// ErrUnresolvedReference, so cycles and dangling names never hang.
package scaffold
