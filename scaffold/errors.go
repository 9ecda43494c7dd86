// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package scaffold

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField indicates a shell was resolved with a required field unset.
	ErrMissingField = errors.New("missing required field")

	// ErrUnresolvedReference indicates a named reference was never registered
	// during the resolution pass.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrDuplicateRegistration indicates two different values were registered
	// under the same type and name.
	ErrDuplicateRegistration = errors.New("duplicate registration")

	// ErrNotFound indicates a registry lookup found no value for the key.
	ErrNotFound = errors.New("not found in registry")

	// ErrTypeMismatch indicates a value that is not assignable to the type tag
	// it was registered under.
	ErrTypeMismatch = errors.New("type mismatch")
)

// MissingFieldError reports the type and field left unset.
type MissingFieldError struct {
	Type  string
	Field string
}

// MissingField returns the error a generated shell reports for an unset field.
func MissingField(typeName, field string) error {
	return &MissingFieldError{Type: typeName, Field: field}
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s.%s", ErrMissingField, e.Type, e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// UnresolvedReferenceError reports a reference whose key was never registered.
type UnresolvedReferenceError struct {
	Type string
	Name string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("%s: %s %q", ErrUnresolvedReference, e.Type, e.Name)
}

func (e *UnresolvedReferenceError) Unwrap() error { return ErrUnresolvedReference }

// DuplicateRegistrationError reports a key registered twice with different values.
type DuplicateRegistrationError struct {
	Type string
	Name string
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("%s: %s %q", ErrDuplicateRegistration, e.Type, e.Name)
}

func (e *DuplicateRegistrationError) Unwrap() error { return ErrDuplicateRegistration }

// NotFoundError reports a failed registry lookup.
type NotFoundError struct {
	Type string
	Name string
	// Others lists type tags that do hold a value under Name.
	Others []string
}

func (e *NotFoundError) Error() string {
	if len(e.Others) > 0 {
		return fmt.Sprintf("%s: %s %q (registered as %v)", ErrNotFound, e.Type, e.Name, e.Others)
	}
	return fmt.Sprintf("%s: %s %q", ErrNotFound, e.Type, e.Name)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
