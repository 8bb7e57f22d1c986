package validators

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Shared limits used by both the server and the terminal client.
const (
	MinPasswordLength      = 8
	VerificationCodeLength = 6
	MaxTags                = 10
	MaxTagLength           = 16
	MaxTitleLength         = 120
)

// Messages of the domain rules.
const (
	MsgLoginPasswordInvalid = "Your password is invalid."
	MsgPasswordsMismatch    = "Passwords do not match."
	MsgUsernamePrefix       = "Username must start with @."
	MsgUsernameSpaces       = "Username cannot contain spaces."
	MsgCodeRequired         = "Enter the code from the email."
	MsgCodeInvalid          = "The code must be 6 digits."
	MsgTitleRequired        = "Title is required."
	MsgTitleTooLong         = "Title is too long."
	MsgTagTooLong           = "Tags are limited to 16 characters."
	MsgTooManyTags          = "A report can have at most 10 tags."
	MsgTagDuplicate         = "This tag is already added."
)

// LoginEmailRule validates the address on sign-in and sign-up forms.
func LoginEmailRule() Rule {
	return Email()
}

// LoginPasswordRule validates the password on the sign-in form. It does not
// reveal the length policy.
func LoginPasswordRule() Rule {
	return Required(Options{CustomErrorMessage: MsgLoginPasswordInvalid})
}

// NewPasswordRule validates a password that is being set.
func NewPasswordRule() Rule {
	return Password(Options{MinLength: MinPasswordLength})
}

// ConfirmPasswordRule checks that the confirmation equals the value
// returned by password at validation time.
func ConfirmPasswordRule(password func() string) Rule {
	return Custom(func(value string) string {
		if value == "" {
			return MsgFieldRequired
		}
		if value != password() {
			return MsgPasswordsMismatch
		}
		return ""
	})
}

// UsernameRule validates an account handle.
func UsernameRule() Rule {
	return Custom(func(value string) string {
		value = strings.TrimSpace(value)
		switch {
		case value == "":
			return MsgFieldRequired
		case !strings.HasPrefix(value, "@") || len(value) == 1:
			return MsgUsernamePrefix
		case strings.IndexFunc(value, unicode.IsSpace) >= 0:
			return MsgUsernameSpaces
		}
		return ""
	})
}

// CodeRule validates a 6 digit verification code.
func CodeRule() Rule {
	return Custom(func(value string) string {
		value = strings.TrimSpace(value)
		if value == "" {
			return MsgCodeRequired
		}
		if len(value) != VerificationCodeLength {
			return MsgCodeInvalid
		}
		for _, r := range value {
			if r < '0' || r > '9' {
				return MsgCodeInvalid
			}
		}
		return ""
	})
}

// TitleRule validates a report title.
func TitleRule() Rule {
	return Custom(func(value string) string {
		value = strings.TrimSpace(value)
		if value == "" {
			return MsgTitleRequired
		}
		if utf8.RuneCountInString(value) > MaxTitleLength {
			return MsgTitleTooLong
		}
		return ""
	})
}

// TagRule validates a single tag about to be added next to existing ones.
func TagRule(existing func() []string) Rule {
	return Custom(func(value string) string {
		value = strings.TrimSpace(value)
		if value == "" {
			return MsgFieldRequired
		}
		if utf8.RuneCountInString(value) > MaxTagLength {
			return MsgTagTooLong
		}
		tags := existing()
		for _, t := range tags {
			if t == value {
				return MsgTagDuplicate
			}
		}
		if len(tags) >= MaxTags {
			return MsgTooManyTags
		}
		return ""
	})
}

// TagListRule validates the comma separated tag list of the report editor.
// Blank entries and repeats are ignored, as the server does.
func TagListRule() Rule {
	return Custom(func(value string) string {
		return tagsMessage(strings.Split(value, ","))
	})
}
