/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a schema or stored record is not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when a schema is attached twice to the same type
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput is returned when a value or configuration fails validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownAttribute is returned when writing an attribute the schema does not declare
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrTypeMismatch is returned when a value cannot be assigned to an attribute
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrNoIndexMap is returned when no index map is found for a type
	ErrNoIndexMap = errors.New("no index map found for type")
)

// NotFoundError represents an error when a schema or record is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when a registration already exists
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// UnknownAttributeError is returned by a schema asked to write an attribute it does not know
type UnknownAttributeError struct {
	Schema    string
	Attribute string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("schema %s has no attribute %q", e.Schema, e.Attribute)
}

func (e *UnknownAttributeError) Is(target error) bool {
	return target == ErrUnknownAttribute
}

// TypeMismatchError describes a value whose dynamic type does not fit the attribute
type TypeMismatchError struct {
	Attribute string
	Want      string
	Got       string
}

func (e *TypeMismatchError) Error() string {
	if e.Attribute == "" {
		return fmt.Sprintf("cannot use %s value as %s", e.Got, e.Want)
	}
	return fmt.Sprintf("cannot assign %s value to attribute %q of type %s", e.Got, e.Attribute, e.Want)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(entityType, key string) error {
	return &AlreadyExistsError{Type: entityType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewUnknownAttributeError creates a new UnknownAttributeError
func NewUnknownAttributeError(schema, attribute string) error {
	return &UnknownAttributeError{Schema: schema, Attribute: attribute}
}

// NewTypeMismatchError creates a new TypeMismatchError
func NewTypeMismatchError(attribute, want, got string) error {
	return &TypeMismatchError{Attribute: attribute, Want: want, Got: got}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnknownAttribute checks if an error reports an undeclared attribute
func IsUnknownAttribute(err error) bool {
	return errors.Is(err, ErrUnknownAttribute)
}

// IsTypeMismatch checks if an error reports a value of the wrong type
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}
