package tiled

import (
	"errors"
	"fmt"
)

// ErrorKind classifies parse failures
type ErrorKind int

const (
	Malformed ErrorKind = iota
	UnresolvedReference
)

func (k ErrorKind) String() string {
	if k == UnresolvedReference {
		return "unresolved reference"
	}
	return "malformed"
}

var (
	ErrMalformed           = errors.New("tiled: malformed map")
	ErrUnresolvedReference = errors.New("tiled: unresolved reference")
)

// ParseError is returned by Parse. No partial model accompanies it.
type ParseError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse map %s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is matches ErrMalformed and ErrUnresolvedReference by kind.
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrMalformed:
		return e.Kind == Malformed
	case ErrUnresolvedReference:
		return e.Kind == UnresolvedReference
	}
	return false
}

func malformed(path string, err error) error {
	return &ParseError{Kind: Malformed, Path: path, Err: err}
}

func unresolved(path string, err error) error {
	return &ParseError{Kind: UnresolvedReference, Path: path, Err: err}
}
