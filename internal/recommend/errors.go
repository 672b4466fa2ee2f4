// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package recommend

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrModelUnavailable is returned by predictors that have no model behind them.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrMalformedOutput is returned when a predictor answers with an unusable value.
	ErrMalformedOutput = errors.New("malformed model output")

	// ErrNotNumeric is wrapped by coercion failures.
	ErrNotNumeric = errors.New("value is not numeric")
)

// InputErrorKind classifies an InputError.
type InputErrorKind int

const (
	// InputMissing means required fields were absent.
	InputMissing InputErrorKind = iota
	// InputInvalid means a field could not be coerced to a number.
	InputInvalid
)

// String returns a human-readable kind name.
func (k InputErrorKind) String() string {
	switch k {
	case InputMissing:
		return "missing"
	case InputInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// InputError reports a request the engine could not evaluate.
type InputError struct {
	Kind InputErrorKind

	// Source is "farm" or "weather" for missing fields, empty for coercion failures.
	Source string

	// Fields names the offending keys.
	Fields []string

	// Err is the underlying coercion error, if any.
	Err error
}

// Error implements the error interface.
func (e *InputError) Error() string {
	switch e.Kind {
	case InputMissing:
		return fmt.Sprintf("missing required %s fields: %s", e.Source, strings.Join(e.Fields, ", "))
	case InputInvalid:
		if e.Err != nil {
			return fmt.Sprintf("invalid field %s: %v", strings.Join(e.Fields, ", "), e.Err)
		}
		return fmt.Sprintf("invalid field %s", strings.Join(e.Fields, ", "))
	default:
		return "invalid input"
	}
}

// Unwrap returns the underlying error.
func (e *InputError) Unwrap() error {
	return e.Err
}
