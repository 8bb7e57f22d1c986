package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saarzint/candle-recall/models"
)

// Field names used in requests and in models.FieldErrors.
const (
	FieldEmail           = "email"
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
	FieldToken           = "token"
	FieldCode            = "code"
	FieldTitle           = "title"
	FieldContent         = "content"
	FieldTags            = "tags"
	FieldTag             = "tag"
	FieldPeriod          = "period"
	FieldSort            = "sort"
)

const (
	MsgResetTokenRequired = "The reset link is missing its token."
	MsgUnknownPeriod      = "Unknown time range."
	MsgUnknownSort        = "Unknown sort order."
)

// RequestValidator validates the request models accepted by the API.
type RequestValidator struct{}

// NewRequestValidator returns a Validator for API request models.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.ForgotPasswordRequest:
		return v.check(fields, []string{FieldEmail}, map[string]string{FieldEmail: Message(value.Email, LoginEmailRule())})
	case *models.ForgotPasswordRequest:
		return v.Validate(ctx, *value, fields...)

	case models.ResetPasswordRequest:
		return v.validateResetPassword(value, fields...)
	case *models.ResetPasswordRequest:
		return v.validateResetPassword(*value, fields...)

	case models.UsernameChangeRequest:
		return v.check(fields, []string{FieldUsername}, map[string]string{FieldUsername: Message(value.Username, UsernameRule())})
	case *models.UsernameChangeRequest:
		return v.Validate(ctx, *value, fields...)

	case models.PasswordChangeRequest:
		return v.validatePasswordChange(value, fields...)
	case *models.PasswordChangeRequest:
		return v.validatePasswordChange(*value, fields...)

	case models.PasswordConfirmRequest:
		return v.check(fields, []string{FieldPassword}, map[string]string{FieldPassword: Message(value.Password, Required())})
	case *models.PasswordConfirmRequest:
		return v.Validate(ctx, *value, fields...)

	case models.CodeRequest:
		return v.check(fields, []string{FieldCode}, map[string]string{FieldCode: Message(value.Code, CodeRule())})
	case *models.CodeRequest:
		return v.Validate(ctx, *value, fields...)

	case models.NewEmailRequest:
		return v.check(fields, []string{FieldEmail}, map[string]string{FieldEmail: Message(value.Email, Email())})
	case *models.NewEmailRequest:
		return v.Validate(ctx, *value, fields...)

	case models.DeleteAccountRequest:
		return v.check(fields, []string{FieldCode, FieldPassword}, map[string]string{
			FieldCode:     Message(value.Code, CodeRule()),
			FieldPassword: Message(value.Password, Required()),
		})
	case *models.DeleteAccountRequest:
		return v.Validate(ctx, *value, fields...)

	case models.ReportCreateRequest:
		return v.validateReportCreate(value, fields...)
	case *models.ReportCreateRequest:
		return v.validateReportCreate(*value, fields...)

	case models.ReportUpdateRequest:
		return v.validateReportUpdate(value, fields...)
	case *models.ReportUpdateRequest:
		return v.validateReportUpdate(*value, fields...)

	case models.TagRequest:
		return v.check(fields, []string{FieldTag}, map[string]string{FieldTag: tagMessage(value.Tag)})
	case *models.TagRequest:
		return v.Validate(ctx, *value, fields...)

	case models.ReportFilter:
		return v.validateReportFilter(value, fields...)
	case *models.ReportFilter:
		return v.validateReportFilter(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// check collects the messages of the requested fields. all lists the
// fields of the model in order; it is used when fields is empty.
func (v *RequestValidator) check(fields, all []string, messages map[string]string) error {
	if len(fields) == 0 {
		fields = all
	}

	errs := models.FieldErrors{}
	for _, f := range fields {
		msg, ok := messages[f]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		errs.Add(f, msg)
	}

	return errs.Err()
}

func (v *RequestValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	return v.check(fields, []string{FieldEmail, FieldUsername, FieldPassword}, map[string]string{
		FieldEmail:    Message(req.Email, LoginEmailRule()),
		FieldUsername: Message(req.Username, UsernameRule()),
		FieldPassword: Message(req.Password, NewPasswordRule()),
	})
}

func (v *RequestValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	return v.check(fields, []string{FieldEmail, FieldPassword}, map[string]string{
		FieldEmail:    Message(req.Email, LoginEmailRule()),
		FieldPassword: Message(req.Password, LoginPasswordRule()),
	})
}

func (v *RequestValidator) validateResetPassword(req models.ResetPasswordRequest, fields ...string) error {
	tokenMsg := Message(req.Token, Required(Options{CustomErrorMessage: MsgResetTokenRequired}))

	return v.check(fields, []string{FieldToken, FieldPassword, FieldConfirmPassword}, map[string]string{
		FieldToken:           tokenMsg,
		FieldPassword:        Message(req.Password, NewPasswordRule()),
		FieldConfirmPassword: Message(req.ConfirmPassword, ConfirmPasswordRule(func() string { return req.Password })),
	})
}

func (v *RequestValidator) validatePasswordChange(req models.PasswordChangeRequest, fields ...string) error {
	return v.check(fields, []string{FieldCurrentPassword, FieldNewPassword, FieldConfirmPassword}, map[string]string{
		FieldCurrentPassword: Message(req.CurrentPassword, Required()),
		FieldNewPassword:     Message(req.NewPassword, NewPasswordRule()),
		FieldConfirmPassword: Message(req.ConfirmPassword, ConfirmPasswordRule(func() string { return req.NewPassword })),
	})
}

func (v *RequestValidator) validateReportCreate(req models.ReportCreateRequest, fields ...string) error {
	return v.check(fields, []string{FieldTitle, FieldContent, FieldTags}, map[string]string{
		FieldTitle:   Message(req.Title, TitleRule()),
		FieldContent: "",
		FieldTags:    tagsMessage(req.Tags),
	})
}

func (v *RequestValidator) validateReportUpdate(req models.ReportUpdateRequest, fields ...string) error {
	messages := map[string]string{
		FieldTitle:   "",
		FieldContent: "",
		FieldTags:    "",
	}
	if req.Title != nil {
		messages[FieldTitle] = Message(*req.Title, TitleRule())
	}
	if req.Tags != nil {
		messages[FieldTags] = tagsMessage(*req.Tags)
	}

	return v.check(fields, []string{FieldTitle, FieldContent, FieldTags}, messages)
}

func (v *RequestValidator) validateReportFilter(f models.ReportFilter, fields ...string) error {
	messages := map[string]string{
		FieldTag:    "",
		FieldPeriod: "",
		FieldSort:   "",
	}
	if f.Tag != "" {
		messages[FieldTag] = tagMessage(f.Tag)
	}
	if f.Period != "" && !knownPeriod(f.Period) {
		messages[FieldPeriod] = MsgUnknownPeriod
	}
	if f.Sort != "" && !knownSort(f.Sort) {
		messages[FieldSort] = MsgUnknownSort
	}

	return v.check(fields, []string{FieldTag, FieldPeriod, FieldSort}, messages)
}

func tagMessage(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return MsgFieldRequired
	}
	if utf8.RuneCountInString(tag) > MaxTagLength {
		return MsgTagTooLong
	}
	return ""
}

func tagsMessage(tags []string) string {
	normalized := models.NormalizeTags(tags)
	if len(normalized) > MaxTags {
		return MsgTooManyTags
	}
	for _, tag := range normalized {
		if msg := tagMessage(tag); msg != "" {
			return msg
		}
	}
	return ""
}

func knownPeriod(p models.Period) bool {
	for _, known := range models.Periods {
		if p == known {
			return true
		}
	}
	return false
}

func knownSort(s models.SortOrder) bool {
	for _, known := range models.SortOrders {
		if s == known {
			return true
		}
	}
	return false
}
