// Package errors provides structured error types for the consulta application.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindNetwork
	KindAuth
	KindAPI
	KindCanceled
	KindConfig
	KindClipboard
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindNetwork:
		return "network error"
	case KindAuth:
		return "authentication required"
	case KindAPI:
		return "server error"
	case KindCanceled:
		return "canceled"
	case KindConfig:
		return "configuration error"
	case KindClipboard:
		return "clipboard error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for consulta.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// Backend errors
func RequestFailed(endpoint string, err error) error {
	return E(Op("api.Do"), KindNetwork, fmt.Sprintf("request to %s failed", endpoint), err)
}

func NotAuthenticated() error {
	return E(Op("api.Chat"), KindAuth, "backend session is not authenticated")
}

func ServerRejected(endpoint, detail string) error {
	return E(Op("api.Do"), KindAPI, fmt.Sprintf("%s rejected: %s", endpoint, detail))
}

func RequestCanceled(endpoint string, err error) error {
	return E(Op("api.Do"), KindCanceled, fmt.Sprintf("request to %s canceled", endpoint), err)
}

// Message errors
func MessageNotFound(id string) error {
	return E(Op("thread.Find"), KindNotFound, fmt.Sprintf("message %s not found", id))
}

func MessageTooLong(limit int) error {
	return E(Op("app.Send"), KindInvalid, fmt.Sprintf("message exceeds the %d character limit", limit))
}

// Clipboard errors
func ClipboardWriteFailed(err error) error {
	return E(Op("clipboard.WriteText"), KindClipboard, "failed to write to system clipboard", err)
}
