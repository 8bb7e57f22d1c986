package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsernameRule(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{value: "", want: MsgFieldRequired},
		{value: "   ", want: MsgFieldRequired},
		{value: "trader", want: MsgUsernamePrefix},
		{value: "@", want: MsgUsernamePrefix},
		{value: "@day trader", want: MsgUsernameSpaces},
		{value: "@daytrader", want: ""},
		{value: " @daytrader ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.value, UsernameRule()))
		})
	}
}

func TestConfirmPasswordRule(t *testing.T) {
	password := "correct horse"
	rule := ConfirmPasswordRule(func() string { return password })

	assert.Equal(t, MsgFieldRequired, Message("", rule))
	assert.Equal(t, MsgPasswordsMismatch, Message("wrong horse", rule))
	assert.Empty(t, Message("correct horse", rule))

	// the rule reads the password lazily
	password = "changed"
	assert.Equal(t, MsgPasswordsMismatch, Message("correct horse", rule))
}

func TestCodeRule(t *testing.T) {
	assert.Equal(t, MsgCodeRequired, Message(" ", CodeRule()))
	assert.Equal(t, MsgCodeInvalid, Message("12345", CodeRule()))
	assert.Equal(t, MsgCodeInvalid, Message("12a456", CodeRule()))
	assert.Empty(t, Message("123456", CodeRule()))
	assert.Empty(t, Message(" 123456 ", CodeRule()))
}

func TestTitleRule(t *testing.T) {
	assert.Equal(t, MsgTitleRequired, Message("  ", TitleRule()))
	assert.Equal(t, MsgTitleTooLong, Message(strings.Repeat("t", MaxTitleLength+1), TitleRule()))
	assert.Empty(t, Message("AAPL Q3 notes", TitleRule()))
}

func TestTagRule(t *testing.T) {
	tags := []string{"AAPL"}
	rule := TagRule(func() []string { return tags })

	assert.Equal(t, MsgFieldRequired, Message(" ", rule))
	assert.Equal(t, MsgTagDuplicate, Message(" AAPL ", rule))
	assert.Equal(t, MsgTagTooLong, Message(strings.Repeat("X", MaxTagLength+1), rule))
	assert.Empty(t, Message("TSLA", rule))

	tags = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
	assert.Equal(t, MsgTooManyTags, Message("K", rule))
}

func TestNewPasswordRule(t *testing.T) {
	assert.Equal(t, "Password must be at least 8 characters.", Message("short", NewPasswordRule()))
}

func TestTagListRule(t *testing.T) {
	assert.Empty(t, Message("", TagListRule()))
	assert.Empty(t, Message("AAPL, TSLA,, AAPL", TagListRule()))
	assert.Equal(t, MsgTagTooLong, Message("AAPL, "+strings.Repeat("x", MaxTagLength+1), TagListRule()))

	many := make([]string, MaxTags+1)
	for i := range many {
		many[i] = "T" + strings.Repeat("x", i)
	}
	assert.Equal(t, MsgTooManyTags, Message(strings.Join(many, ","), TagListRule()))
}
