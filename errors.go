package citer

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	ECONFLICT = "conflict"
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("citer error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Guess failures share a single generic message; their kind is available
// through GuessKindOf. Other non-application errors return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	var g *GuessError
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	} else if errors.As(err, &g) {
		return "could not guess citation details"
	}
	return "Internal error."
}

// GuessKind identifies the pipeline stage at which a guess failed.
type GuessKind int

// Guess failure kinds. Each one aborts the whole guess.
const (
	GuessUnknown GuessKind = iota
	GuessURLParse
	GuessRequest
	GuessDecoding
	GuessDOMParsing
	GuessNoDomain
)

func (k GuessKind) String() string {
	switch k {
	case GuessURLParse:
		return "UrlParse"
	case GuessRequest:
		return "Request"
	case GuessDecoding:
		return "Decoding"
	case GuessDOMParsing:
		return "DomParsing"
	case GuessNoDomain:
		return "NoDomain"
	default:
		return "Unknown"
	}
}

// GuessError reports a failed guess together with the stage that failed.
type GuessError struct {
	Kind GuessKind
	URL  string
	Err  error
}

func (e *GuessError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("guess %s: %s", e.URL, e.Kind)
	}
	return fmt.Sprintf("guess %s: %s: %v", e.URL, e.Kind, e.Err)
}

func (e *GuessError) Unwrap() error {
	return e.Err
}

// GuessKindOf returns the kind of a guess failure, or GuessUnknown if err
// is not a GuessError.
func GuessKindOf(err error) GuessKind {
	var g *GuessError
	if errors.As(err, &g) {
		return g.Kind
	}
	return GuessUnknown
}

// OwnerKind identifies why a domain owner lookup failed.
type OwnerKind int

// Owner lookup failure kinds.
const (
	OwnerUnknown OwnerKind = iota
	OwnerQueryWhois
	OwnerReadWhoisText
	OwnerParseXML
	OwnerParseRegistrant
	OwnerParseOrganisation
	OwnerNoOrganisation
)

func (k OwnerKind) String() string {
	switch k {
	case OwnerQueryWhois:
		return "QueryWhois"
	case OwnerReadWhoisText:
		return "ReadWhoisText"
	case OwnerParseXML:
		return "ParseXML"
	case OwnerParseRegistrant:
		return "ParseRegistrant"
	case OwnerParseOrganisation:
		return "ParseOrganisation"
	case OwnerNoOrganisation:
		return "NoOrganisation"
	default:
		return "Unknown"
	}
}

// OwnerError reports a failed domain owner lookup.
type OwnerError struct {
	Kind OwnerKind
	Host string
	Err  error
}

func (e *OwnerError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("resolve owner of %s: %s", e.Host, e.Kind)
	}
	return fmt.Sprintf("resolve owner of %s: %s: %v", e.Host, e.Kind, e.Err)
}

func (e *OwnerError) Unwrap() error {
	return e.Err
}

// OwnerKindOf returns the kind of an owner lookup failure, or OwnerUnknown
// if err is not an OwnerError.
func OwnerKindOf(err error) OwnerKind {
	var o *OwnerError
	if errors.As(err, &o) {
		return o.Kind
	}
	return OwnerUnknown
}
