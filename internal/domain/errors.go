package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Parse errors
	ErrMsgUnknownMaterial   = "unknown material"
	ErrMsgInvalidNumber     = "invalid number"
	ErrMsgNotPositive       = "must be a positive number"
	ErrMsgInvalidAction     = "invalid action"
	ErrMsgUnknownSound      = "unknown sound"
	ErrMsgAirNotAllowed     = "material cannot be air"
	ErrMsgInvalidDurability = "invalid durability"
	ErrMsgInvalidAmount     = "invalid amount"

	// Config value errors
	ErrMsgMissingValue = "missing value"
	ErrMsgInvalidValue = "invalid value"

	// Structural errors
	ErrMsgMissingSection        = "missing section"
	ErrMsgDuplicateMenuName     = "duplicate menu file name"
	ErrMsgDuplicateMenuCommand  = "duplicate menu command"
	ErrMsgOverriddenIcon        = "icon overrides another icon"
	ErrMsgMissingIconAttribute  = "missing icon attribute"
	ErrMsgIconPositionOutOfGrid = "icon position outside the menu"

	// Fatal errors
	ErrMsgUnreadableSource = "unreadable menu source"

	// Lookup errors
	ErrMsgMenuNotFound = "menu not found"
)

// Common domain errors.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Parse errors
	ErrUnknownMaterial   = errors.New(ErrMsgUnknownMaterial)
	ErrInvalidNumber     = errors.New(ErrMsgInvalidNumber)
	ErrNotPositive       = errors.New(ErrMsgNotPositive)
	ErrInvalidAction     = errors.New(ErrMsgInvalidAction)
	ErrUnknownSound      = errors.New(ErrMsgUnknownSound)
	ErrAirNotAllowed     = errors.New(ErrMsgAirNotAllowed)
	ErrInvalidDurability = errors.New(ErrMsgInvalidDurability)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)

	// Config value errors
	ErrMissingValue = errors.New(ErrMsgMissingValue)
	ErrInvalidValue = errors.New(ErrMsgInvalidValue)

	// Structural errors
	ErrMissingSection        = errors.New(ErrMsgMissingSection)
	ErrDuplicateMenuName     = errors.New(ErrMsgDuplicateMenuName)
	ErrDuplicateMenuCommand  = errors.New(ErrMsgDuplicateMenuCommand)
	ErrOverriddenIcon        = errors.New(ErrMsgOverriddenIcon)
	ErrMissingIconAttribute  = errors.New(ErrMsgMissingIconAttribute)
	ErrIconPositionOutOfGrid = errors.New(ErrMsgIconPositionOutOfGrid)

	// Fatal errors
	ErrUnreadableSource = errors.New(ErrMsgUnreadableSource)

	// Lookup errors
	ErrMenuNotFound = errors.New(ErrMsgMenuNotFound)
)

// ParseErrorKind classifies a malformed single value.
type ParseErrorKind int

const (
	UnknownMaterial ParseErrorKind = iota
	InvalidNumber
	NotPositive
	InvalidAction
	UnknownSound
	AirNotAllowed
	InvalidDurability
	InvalidAmount
)

var parseErrorSentinels = map[ParseErrorKind]error{
	UnknownMaterial:   ErrUnknownMaterial,
	InvalidNumber:     ErrInvalidNumber,
	NotPositive:       ErrNotPositive,
	InvalidAction:     ErrInvalidAction,
	UnknownSound:      ErrUnknownSound,
	AirNotAllowed:     ErrAirNotAllowed,
	InvalidDurability: ErrInvalidDurability,
	InvalidAmount:     ErrInvalidAmount,
}

// ParseError describes one malformed value. It is always recoverable: the
// caller substitutes a default or drops the single field or icon.
type ParseError struct {
	Kind   ParseErrorKind
	Input  string
	Reason string
}

// NewParseError builds a ParseError for the given kind and raw input.
func NewParseError(kind ParseErrorKind, input, reason string) *ParseError {
	return &ParseError{Kind: kind, Input: input, Reason: reason}
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s %q", e.Unwrap().Error(), e.Input)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap exposes the sentinel for errors.Is checks.
func (e *ParseError) Unwrap() error {
	if sentinel, ok := parseErrorSentinels[e.Kind]; ok {
		return sentinel
	}
	return ErrInvalidValue
}
