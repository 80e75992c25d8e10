// Copyright (C) 2025 Incentra GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shared

import (
	"errors"
	"fmt"
)

// ErrorKind is the stable machine-readable classification the API contract
// exposes. Everything else that escapes the engine is an internal error.
type ErrorKind string

const (
	KindInvalidTransition     ErrorKind = "invalid_transition"
	KindForbidden             ErrorKind = "forbidden"
	KindConsultantUnavailable ErrorKind = "consultant_unavailable"
	KindNoEligibleConsultant  ErrorKind = "no_eligible_consultant"
	KindAssignmentConflict    ErrorKind = "assignment_conflict"
	KindNoActiveAssignment    ErrorKind = "no_active_assignment"
)

// EngineError is a typed, recoverable-by-caller condition. It is returned as
// a value across the engine boundary - never panicked.
type EngineError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *EngineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to the API status code.
func (e *EngineError) HTTPStatus() int {
	switch e.Kind {
	case KindForbidden:
		return 403
	case KindNoActiveAssignment:
		return 404
	default:
		return 409
	}
}

// AsEngineError returns the typed engine error inside err, or nil.
func AsEngineError(err error) *EngineError {
	var engineErr *EngineError
	if errors.As(err, &engineErr) {
		return engineErr
	}
	return nil
}

func IsKind(err error, kind ErrorKind) bool {
	engineErr := AsEngineError(err)
	return engineErr != nil && engineErr.Kind == kind
}

func NewInvalidTransition(entity, from, to string) *EngineError {
	return &EngineError{
		Kind:    KindInvalidTransition,
		Message: fmt.Sprintf("%s cannot move from %s to %s", entity, from, to),
	}
}

func NewForbidden(message string) *EngineError {
	return &EngineError{Kind: KindForbidden, Message: message}
}

func NewConsultantUnavailable(message string) *EngineError {
	return &EngineError{Kind: KindConsultantUnavailable, Message: message}
}

func NewNoEligibleConsultant(sector string) *EngineError {
	return &EngineError{
		Kind:    KindNoEligibleConsultant,
		Message: fmt.Sprintf("no eligible consultant for sector %q", sector),
	}
}

func NewAssignmentConflict(err error) *EngineError {
	return &EngineError{
		Kind:    KindAssignmentConflict,
		Message: "a concurrent assignment won the race - re-fetch and retry",
		Err:     err,
	}
}

func NewNoActiveAssignment() *EngineError {
	return &EngineError{
		Kind:    KindNoActiveAssignment,
		Message: "application has no active assignment",
	}
}
