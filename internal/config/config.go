// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles philarios project configuration.
package config

import (
	"errors"
	"fmt"
	"go/token"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the project configuration file.
const FileName = "philarios.yaml"

// ErrInvalidTarget is wrapped by every target validation problem.
var ErrInvalidTarget = errors.New("invalid target")

// Target is one generation run: a schema and where its DSL package goes.
// Exactly one of Builtin and Schema is set.
type Target struct {
	Builtin string `yaml:"builtin,omitempty"`
	Schema  string `yaml:"schema,omitempty"`
	Output  string `yaml:"output"`
	// Package overrides the package name declared by the schema.
	Package string `yaml:"package,omitempty"`
}

// Source returns the builtin name or schema path the target reads.
func (t Target) Source() string {
	if t.Builtin != "" {
		return t.Builtin
	}
	return t.Schema
}

// Config represents the philarios.yaml project configuration file.
type Config struct {
	Version int      `yaml:"version"`
	Targets []Target `yaml:"targets,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
// Every problem found is reported.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}

	var errs *multierror.Error
	outputs := make(map[string]int)
	for i, t := range c.Targets {
		if err := t.Validate(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("targets[%d]: %w", i, err))
			continue
		}
		if prev, dup := outputs[t.Output]; dup {
			errs = multierror.Append(errs, fmt.Errorf("targets[%d]: %w: output %s already used by targets[%d]", i, ErrInvalidTarget, t.Output, prev))
			continue
		}
		outputs[t.Output] = i
	}
	return errs.ErrorOrNil()
}

// Validate checks a single target.
func (t Target) Validate() error {
	switch {
	case t.Builtin == "" && t.Schema == "":
		return fmt.Errorf("%w: one of builtin or schema is required", ErrInvalidTarget)
	case t.Builtin != "" && t.Schema != "":
		return fmt.Errorf("%w: builtin and schema are mutually exclusive", ErrInvalidTarget)
	case t.Output == "":
		return fmt.Errorf("%w: output is required", ErrInvalidTarget)
	case t.Package != "" && !token.IsIdentifier(t.Package):
		return fmt.Errorf("%w: package %q is not a Go identifier", ErrInvalidTarget, t.Package)
	}
	return nil
}
