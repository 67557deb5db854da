// Package commonerrors defines error categories shared across packages.
// Errors returned by this module always belong to one of these categories so
// that callers can match them with errors.Is or Any.
package commonerrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUndefined   = errors.New("undefined")
	ErrUnsupported = errors.New("unsupported")
	ErrInvalid     = errors.New("invalid")
	ErrOverflow    = errors.New("overflow")
	ErrMarshalling = errors.New("unserialisable")
	ErrUnknown     = errors.New("unknown")
)

// Any determines whether the target error is of the same type as any of the errors `err`
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether the target error is of none of the types of the errors `err`
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo determines whether the description of `target` contains any of the descriptions provided (case insensitive).
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for _, d := range description {
		if strings.Contains(desc, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

// New creates a new error of type targetErr with a reason.
func New(targetErr error, msg string) error {
	cleansedMsg := strings.TrimSpace(msg)
	if targetErr == nil {
		return errors.New(cleansedMsg)
	}
	if cleansedMsg == "" {
		return fmt.Errorf("%w", targetErr)
	}
	return fmt.Errorf("%w: %v", targetErr, cleansedMsg)
}

// Newf is similar to New but allows formatting of messages.
func Newf(targetErr error, msgFormat string, args ...any) error {
	return New(targetErr, fmt.Sprintf(msgFormat, args...))
}

// WrapError wraps an error into a particular targetError. originalErr is kept in the error chain.
func WrapError(targetErr, originalErr error, msg string) error {
	if originalErr == nil {
		return New(targetErr, msg)
	}
	if targetErr == nil {
		targetErr = ErrUnknown
	}
	cleansedMsg := strings.TrimSpace(msg)
	if cleansedMsg == "" {
		return fmt.Errorf("%w: %w", targetErr, originalErr)
	}
	return fmt.Errorf("%w: %v: %w", targetErr, cleansedMsg, originalErr)
}

// WrapErrorf is similar to WrapError but allows formatting of messages.
func WrapErrorf(targetErr, originalErr error, msgFormat string, args ...any) error {
	return WrapError(targetErr, originalErr, fmt.Sprintf(msgFormat, args...))
}
