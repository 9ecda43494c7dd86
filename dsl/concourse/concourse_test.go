// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package concourse_test

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/philarios/philarios/dsl/concourse"
	"github.com/philarios/philarios/scaffold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// team is the context the specs below are written against.
type team struct {
	Name     string
	Services []string
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// repo stages the git resource every job of a pipeline pulls from.
func repo(b *concourse.ResourceBuilder[team]) {
	b.Name("repo")
	b.Type(concourse.ResourceKindGit)
	b.PutSource("uri", "https://example.com/"+b.Context().Name+".git")
	b.PutSource("branch", "main")
}

// buildJob stages a job that gets the shared repo and runs a task.
func buildJob(name string) concourse.JobSpec[team] {
	return func(b *concourse.JobBuilder[team]) {
		b.Name(name)
		b.AddPlanGetFunc(func(b *concourse.GetBuilder[team]) {
			b.ResourceRef("repo")
			b.Trigger(true)
		})
		b.AddPlanTaskFunc(func(b *concourse.TaskBuilder[team]) {
			b.Task(name)
			b.ConfigFunc(func(b *concourse.TaskConfigBuilder[team]) {
				b.Platform(concourse.PlatformLinux)
				b.Image("golang:1.24")
				b.RunFunc(func(b *concourse.CommandBuilder[team]) {
					b.Path("make")
					b.AddArgs(name)
				})
				b.AddInputs("repo")
			})
		})
	}
}

func pipeline(b *concourse.PipelineBuilder[team]) {
	b.Name(b.Context().Name)
	b.AddJobsSpec(buildJob("unit"))
	b.AddJobsSpec(buildJob("lint"))
	b.AddResourcesFunc(repo)
	b.PutVars("team", b.Context().Name)
}

func TestPipeline_SharedResource(t *testing.T) {
	ctx := testContext(t)

	got, err := scaffold.Translate[team, *concourse.Pipeline](ctx, concourse.PipelineSpec[team](pipeline), team{Name: "core"})
	require.NoError(t, err)

	require.Len(t, got.Resources, 1)
	require.Len(t, got.Jobs, 2)
	res := got.Resources[0]
	assert.Equal(t, concourse.ResourceKindGit, res.Type)

	uri, ok := res.Source.Lookup("uri")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/core.git", uri)

	for _, job := range got.Jobs {
		require.Len(t, job.Plan, 2)
		get, ok := job.Plan[0].(*concourse.Get)
		require.True(t, ok, "first step of %s is a get", job.Name)
		assert.Same(t, res, get.Resource)
		require.NotNil(t, get.Trigger)
		assert.True(t, *get.Trigger)

		task, ok := job.Plan[1].(*concourse.Task)
		require.True(t, ok)
		assert.Equal(t, []string{job.Name}, task.Config.Run.Args)
	}
}

func TestPipeline_OptionalFieldsStayUnset(t *testing.T) {
	ctx := testContext(t)

	spec := concourse.JobSpec[team](func(b *concourse.JobBuilder[team]) {
		b.Name("noop")
		b.Serial(false)
	})

	got, err := scaffold.Translate[team, *concourse.Job](ctx, spec, team{})
	require.NoError(t, err)
	assert.Nil(t, got.MaxInFlight)
	assert.Nil(t, got.Public)
	assert.Nil(t, got.Plan)

	out, err := yaml.Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, "name: noop\nserial: false\n", string(out))
}

func TestJob_MissingRequiredField(t *testing.T) {
	ctx := testContext(t)

	spec := concourse.JobSpec[team](func(b *concourse.JobBuilder[team]) {
		b.Name("incomplete")
	})

	_, err := scaffold.Translate[team, *concourse.Job](ctx, spec, team{})
	var missing *scaffold.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Job", missing.Type)
	assert.Equal(t, "serial", missing.Field)
}

func TestCommand_ArgsKeepOrder(t *testing.T) {
	ctx := testContext(t)

	spec := concourse.CommandSpec[team](func(b *concourse.CommandBuilder[team]) {
		b.Path("echo")
		b.AddArgs("a")
		b.AddAllArgs("b", "c")
	})

	got, err := scaffold.Translate[team, *concourse.Command](ctx, spec, team{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got.Args)
}

func TestSpecReuseAcrossContexts(t *testing.T) {
	ctx := testContext(t)
	spec := concourse.PipelineSpec[team](pipeline)

	a, err := scaffold.Translate[team, *concourse.Pipeline](ctx, spec, team{Name: "alpha"})
	require.NoError(t, err)
	b, err := scaffold.Translate[team, *concourse.Pipeline](ctx, spec, team{Name: "beta"})
	require.NoError(t, err)

	assert.Equal(t, "alpha", a.Name)
	assert.Equal(t, "beta", b.Name)
	assert.NotSame(t, a.Resources[0], b.Resources[0])
}

func TestTeam_IncludePipelineForEachService(t *testing.T) {
	ctx := testContext(t)

	service := concourse.TeamSpec[string](func(b *concourse.TeamBuilder[string]) {
		b.AddPipelinesFunc(func(b *concourse.PipelineBuilder[string]) {
			b.Name(b.Context())
		})
	})

	spec := concourse.TeamSpec[team](func(b *concourse.TeamBuilder[team]) {
		b.Name(b.Context().Name)
		concourse.IncludeTeamForEach(b, slices.Values(b.Context().Services), service)
	})

	got, err := scaffold.Translate[team, *concourse.Team](ctx, spec, team{Name: "platform", Services: []string{"api", "web", "worker"}})
	require.NoError(t, err)

	var names []string
	for _, p := range got.Pipelines {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"api", "web", "worker"}, names)
}

func TestConcourse_DanglingResourceFails(t *testing.T) {
	ctx := testContext(t)

	spec := concourse.ConcourseSpec[team](func(b *concourse.ConcourseBuilder[team]) {
		b.AddTeamsFunc(func(b *concourse.TeamBuilder[team]) {
			b.Name("ops")
			b.AddPipelinesFunc(func(b *concourse.PipelineBuilder[team]) {
				b.Name("deploy")
				b.AddJobsFunc(func(b *concourse.JobBuilder[team]) {
					b.Name("ship")
					b.Serial(true)
					b.AddPlanPutFunc(func(b *concourse.PutBuilder[team]) {
						b.ResourceRef("artifact")
					})
				})
			})
		})
	})

	got, err := scaffold.Translate[team, *concourse.Concourse](ctx, spec, team{})
	assert.ErrorIs(t, err, scaffold.ErrUnresolvedReference)
	assert.Nil(t, got)
}
