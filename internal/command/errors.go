package command

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Failure kinds. Every error returned by the use case wraps one of these.
var (
	ErrEmptyTranscript   = errors.New("transcript is required")
	ErrMalformedResponse = errors.New("model response is not a valid command")
	ErrUnknownIntent     = errors.New("unknown intent")
	ErrMissingField      = errors.New("required field missing")
	ErrTaskNotFound      = errors.New("task not found")

	ErrResponseTruncated = errors.New("model response was truncated")
	ErrResponseBlocked   = errors.New("model response was blocked")
	ErrUnexpectedFinish  = errors.New("model finished unexpectedly")
	ErrModelUnavailable  = errors.New("language model unavailable")
)

// Error is a failure with a caller-facing message. errors.Is matches its Kind.
type Error struct {
	Kind    error
	Message string

	// AvailableTasks lists current titles in store order when Kind is ErrTaskNotFound.
	AvailableTasks []string

	// Raw and Extracted hold the model text for ErrMalformedResponse.
	Raw       string
	Extracted string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NewError builds an Error of the given kind.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// AvailableTasksOf returns the titles attached to err, if any.
func AvailableTasksOf(err error) []string {
	var cmdErr *Error
	if errors.As(err, &cmdErr) {
		return cmdErr.AvailableTasks
	}
	return nil
}

// truncate keeps diagnostics readable in logs and responses. n is in bytes;
// the cut backs off to a rune boundary so the result stays valid UTF-8.
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}

// NewMalformedError builds an ErrMalformedResponse carrying both texts.
func NewMalformedError(raw, extracted string, cause error) *Error {
	msg := "Failed to parse model response as a command"
	if cause != nil {
		msg += ": " + cause.Error()
	}
	return &Error{
		Kind:      ErrMalformedResponse,
		Message:   msg,
		Raw:       truncate(raw, 300),
		Extracted: truncate(extracted, 300),
	}
}
