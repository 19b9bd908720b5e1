// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ghuberrors classifies errors into the taxonomy of kinds spec.md
// §7 describes: Config, NotFound, RateLimit, Transport, Validation,
// Conflict, Integrity, IO, Fatal. The taxonomy is a kind, not a type
// hierarchy — ordinary errors are wrapped with fmt.Errorf("...: %w") as
// the teacher does, and Kind is recovered with errors.As when a caller
// needs to branch on it.
package ghuberrors

import (
	"errors"
	"fmt"
)

// Kind is one of the error taxonomy members from spec.md §7.
type Kind int

const (
	// KindUnknown is the zero value; no error should remain at this kind
	// once classified.
	KindUnknown Kind = iota
	KindConfig
	KindNotFound
	KindRateLimit
	KindTransport
	KindValidation
	KindConflict
	KindIntegrity
	KindIO
	KindFatal
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "Config"
	case KindNotFound:
		return "NotFound"
	case KindRateLimit:
		return "RateLimit"
	case KindTransport:
		return "Transport"
	case KindValidation:
		return "Validation"
	case KindConflict:
		return "Conflict"
	case KindIntegrity:
		return "Integrity"
	case KindIO:
		return "IO"
	case KindFatal:
		return "Fatal"
	default:
		return "Unknown"
	}
}

// TaxonomyError pairs a Kind with an underlying error.
type TaxonomyError struct {
	Kind Kind
	Err  error
}

func (e *TaxonomyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *TaxonomyError) Unwrap() error {
	return e.Err
}

// New wraps err with the given kind. If err is nil, New returns nil.
func New(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &TaxonomyError{Kind: kind, Err: err}
}

// Errorf builds a TaxonomyError the way fmt.Errorf builds a plain error.
func Errorf(kind Kind, format string, args ...any) error {
	return &TaxonomyError{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the Kind of err if it (or something it wraps) is a
// *TaxonomyError, and KindUnknown otherwise.
func KindOf(err error) Kind {
	var te *TaxonomyError
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindUnknown
}

// Is reports whether err is classified with the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
