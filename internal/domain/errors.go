package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSource            = errors.New("source error")
	ErrMalformedObject   = errors.New("malformed object")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMissingField      = errors.New("missing field")
)

// SourceError reports a location that could not be turned into objects.
type SourceError struct {
	Location string
	Err      error
}

func (e *SourceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid source %q", e.Location)
	}
	return fmt.Sprintf("source %q: %v", e.Location, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

func (e *SourceError) Is(target error) bool { return target == ErrSource }

// MalformedObjectError reports an object missing a field an edge rule needs.
type MalformedObjectError struct {
	ID    string
	Type  string
	Field string
}

func (e *MalformedObjectError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s object is missing %q", e.Type, e.Field)
	}
	return fmt.Sprintf("%s object %s is missing %q", e.Type, e.ID, e.Field)
}

func (e *MalformedObjectError) Is(target error) bool { return target == ErrMalformedObject }

// UnsupportedFormatError reports an output format nobody implements.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q", e.Format)
}

func (e *UnsupportedFormatError) Is(target error) bool { return target == ErrUnsupportedFormat }

// MissingFieldError reports a graph node without the object data an emitter needs.
type MissingFieldError struct {
	NodeID string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("node %s has no %q", e.NodeID, e.Field)
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }
