// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Mode selects which built-in check a field runs.
type Mode int

const (
	// ModeNone performs no checks; every value is valid.
	ModeNone Mode = iota
	// ModeEmail requires a non-empty value shaped like local@domain.tld.
	ModeEmail
	// ModePassword requires a non-empty value, optionally of a minimum length.
	ModePassword
	// ModeRequired requires a value that is not blank after trimming.
	ModeRequired
	// ModeCustom delegates to a caller supplied function.
	ModeCustom
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeEmail:
		return "email"
	case ModePassword:
		return "password"
	case ModeRequired:
		return "required"
	case ModeCustom:
		return "custom"
	default:
		return "none"
	}
}

// Default messages of the built-in modes.
const (
	MsgEmailRequired    = "Email is required."
	MsgEmailInvalid     = "Your email is invalid."
	MsgPasswordRequired = "Password is required."
	MsgFieldRequired    = "This field is required."
)

// MsgPasswordTooShort formats the minimum length message.
func MsgPasswordTooShort(minLength int) string {
	return "Password must be at least " + strconv.Itoa(minLength) + " characters."
}

// looksLikeEmail is a minimal, unanchored shape check. It is not RFC 5322
// validation: "x a@b.c y" passes because a match anywhere is enough.
// Some run of non-whitespace must hold a non-empty local part, an '@', a
// non-empty domain, a '.' and a non-empty suffix. Whitespace is anything
// unicode.IsSpace reports, so NBSP and ideographic spaces do not count as
// content.
func looksLikeEmail(value string) bool {
	for _, word := range strings.FieldsFunc(value, unicode.IsSpace) {
		at := strings.IndexByte(word[1:], '@') + 1
		if at == 0 {
			continue
		}
		if dot := strings.LastIndexByte(word[:len(word)-1], '.'); dot >= at+2 {
			return true
		}
	}
	return false
}

// CustomFunc returns an error message for value, or an empty string when
// value is acceptable.
type CustomFunc func(value string) string

// Options tune the built-in modes.
type Options struct {
	// MinLength is the minimum number of characters for ModePassword.
	// Zero disables the length check.
	MinLength int
	// CustomErrorMessage replaces the default message of any failing
	// built-in check. It is ignored by ModeCustom.
	CustomErrorMessage string
}

// Rule binds a mode, its options and, for ModeCustom, the check function.
// The zero Rule accepts everything.
type Rule struct {
	Mode    Mode
	Custom  CustomFunc
	Options Options
}

// Email returns a Rule for ModeEmail.
func Email(opts ...Options) Rule {
	return Rule{Mode: ModeEmail, Options: firstOptions(opts)}
}

// Password returns a Rule for ModePassword.
func Password(opts ...Options) Rule {
	return Rule{Mode: ModePassword, Options: firstOptions(opts)}
}

// Required returns a Rule for ModeRequired.
func Required(opts ...Options) Rule {
	return Rule{Mode: ModeRequired, Options: firstOptions(opts)}
}

// Custom returns a Rule that runs fn.
func Custom(fn CustomFunc) Rule {
	return Rule{Mode: ModeCustom, Custom: fn}
}

func firstOptions(opts []Options) Options {
	if len(opts) == 0 {
		return Options{}
	}
	return opts[0]
}

// Result is the outcome of a single validation. An empty Message means valid.
type Result struct {
	Message string
}

// Valid reports whether the value passed.
func (r Result) Valid() bool {
	return r.Message == ""
}

func invalid(defaultMsg string, opts Options) Result {
	if opts.CustomErrorMessage != "" {
		return Result{Message: opts.CustomErrorMessage}
	}
	return Result{Message: defaultMsg}
}

// Validate checks value against rule. It never fails: an invalid value is
// reported through Result.Message. Validate is pure and safe to call from
// any goroutine.
func Validate(value string, rule Rule) Result {
	switch rule.Mode {
	case ModeCustom:
		if rule.Custom == nil {
			return Result{}
		}
		return Result{Message: rule.Custom(value)}

	case ModeEmail:
		if value == "" {
			return invalid(MsgEmailRequired, rule.Options)
		}
		if !looksLikeEmail(value) {
			return invalid(MsgEmailInvalid, rule.Options)
		}

	case ModePassword:
		if value == "" {
			return invalid(MsgPasswordRequired, rule.Options)
		}
		if minLen := rule.Options.MinLength; minLen > 0 && utf8.RuneCountInString(value) < minLen {
			return invalid(MsgPasswordTooShort(minLen), rule.Options)
		}

	case ModeRequired:
		if strings.TrimSpace(value) == "" {
			return invalid(MsgFieldRequired, rule.Options)
		}
	}

	return Result{}
}

// Message is shorthand for Validate(value, rule).Message.
func Message(value string, rule Rule) string {
	return Validate(value, rule).Message
}
