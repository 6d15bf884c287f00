package client

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies every error the client can surface. The set is closed:
// anything a backend produces that does not map onto one of these kinds is
// wrapped as KindUnexpected with the original status code preserved.
type Kind int

const (
	KindUnexpected Kind = iota
	KindNotFound
	KindAmbiguous
	KindCrossValidation
	KindDuplicate
	KindInvalidArgument
	KindPermissionDenied
	KindUnavailable
)

// Error is the single error type returned by this package.
type Error struct {
	Kind       Kind
	Resource   string // display name of the resource type, e.g. "Organization"
	Identifier string // user-supplied identifier, when one exists
	StatusCode int    // backend HTTP status, 0 for client-side errors
	Message    string
	IDs        []int64 // conflicting IDs (ambiguous) or existing ID (duplicate)
	cause      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s %q not found", e.Resource, e.Identifier)
	case KindAmbiguous:
		return fmt.Sprintf("%s %q matches multiple resources (IDs %s)",
			e.Resource, e.Identifier, joinIDs(e.IDs))
	case KindCrossValidation:
		return e.Message
	case KindDuplicate:
		if len(e.IDs) > 0 {
			return fmt.Sprintf("%s %q already exists (ID %d)", e.Resource, e.Identifier, e.IDs[0])
		}
		return fmt.Sprintf("%s %q already exists", e.Resource, e.Identifier)
	case KindInvalidArgument:
		return e.Message
	case KindPermissionDenied:
		return "permission denied"
	case KindUnavailable:
		if e.Message != "" {
			return fmt.Sprintf("backend unavailable: %s (try again later)", e.Message)
		}
		return "backend unavailable (try again later)"
	default:
		if e.StatusCode != 0 {
			return fmt.Sprintf("unexpected API response (status %d): %s", e.StatusCode, e.Message)
		}
		return e.Message
	}
}

func (e *Error) Unwrap() error { return e.cause }

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ", ")
}

// KindOf returns the Kind of err, or KindUnexpected for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsInvalidArgument reports whether err is a client-side argument error.
func IsInvalidArgument(err error) bool { return KindOf(err) == KindInvalidArgument }

// IsPermissionDenied reports whether err is an authorization failure.
func IsPermissionDenied(err error) bool { return KindOf(err) == KindPermissionDenied }

// IsUnavailable reports whether err indicates the backend could not be reached.
func IsUnavailable(err error) bool { return KindOf(err) == KindUnavailable }

func notFoundErr(resource, identifier string) *Error {
	return &Error{Kind: KindNotFound, Resource: resource, Identifier: identifier}
}

func invalidArgumentErr(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}
