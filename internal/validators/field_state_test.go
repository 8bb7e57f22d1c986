package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorState_Displayed(t *testing.T) {
	tests := []struct {
		name  string
		state ErrorState
		want  string
	}{
		{name: "clean", state: ErrorState{}, want: ""},
		{name: "internal only", state: ErrorState{Internal: "in"}, want: "in"},
		{name: "external only", state: ErrorState{External: "ex"}, want: "ex"},
		{name: "external wins", state: ErrorState{External: "ex", Internal: "in"}, want: "ex"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Displayed())
			assert.Equal(t, tt.want != "", tt.state.HasError())
		})
	}
}

func TestField_BlurValidates(t *testing.T) {
	f := NewField(Email())

	f.Blur("nope")
	assert.Equal(t, MsgEmailInvalid, f.Displayed())
	assert.True(t, f.HasError())

	f.Blur("a@b.c")
	assert.Empty(t, f.Displayed())
	assert.False(t, f.HasError())
}

func TestField_ChangeClearsInternalErrorWithoutValidating(t *testing.T) {
	f := NewField(Password(Options{MinLength: 8}))

	f.Blur("short")
	assert.Equal(t, MsgPasswordTooShort(8), f.Displayed())

	// still too short, but a keystroke clears the message until the next blur
	f.Change("short1")
	assert.Empty(t, f.State().Internal)
	assert.False(t, f.HasError())

	f.Blur("short1")
	assert.Equal(t, MsgPasswordTooShort(8), f.Displayed())
}

func TestField_ChangeValidatesWhenEnabled(t *testing.T) {
	f := NewField(Required())
	f.ValidateOnChange = true

	f.Change("")
	assert.Equal(t, MsgFieldRequired, f.Displayed())

	f.Change("x")
	assert.Empty(t, f.Displayed())
}

func TestField_BlurDisabled(t *testing.T) {
	f := &Field{Rule: Required()}

	f.Blur("")
	assert.False(t, f.HasError())
}

func TestField_ExternalErrorClearsInternal(t *testing.T) {
	f := NewField(Email())
	f.Blur("")
	assert.Equal(t, MsgEmailRequired, f.State().Internal)

	f.SetExternalError("This email is already registered.")

	assert.Empty(t, f.State().Internal)
	assert.Equal(t, "This email is already registered.", f.Displayed())
	assert.True(t, f.HasError())
}

func TestField_ExternalErrorReplacedClearsInternal(t *testing.T) {
	f := NewField(Email())
	f.Blur("bad")
	f.SetExternalError("first")

	f.Blur("bad")
	assert.Equal(t, "first", f.Displayed())
	assert.Equal(t, MsgEmailInvalid, f.State().Internal)

	f.SetExternalError("second")
	assert.Empty(t, f.State().Internal)
	assert.Equal(t, "second", f.Displayed())

	f.SetExternalError("")
	assert.Empty(t, f.Displayed())
	assert.False(t, f.HasError())
}

func TestField_SameExternalErrorKeepsInternal(t *testing.T) {
	f := NewField(Email())
	f.SetExternalError("first")
	f.Blur("bad")

	f.SetExternalError("first")
	assert.Equal(t, MsgEmailInvalid, f.State().Internal)
}

func TestField_ValidateOnSubmit(t *testing.T) {
	f := NewField(Password(Options{MinLength: 8}))

	assert.Equal(t, MsgPasswordRequired, f.Validate(""))
	assert.Empty(t, f.Validate("long enough"))
}

func TestField_Reset(t *testing.T) {
	f := NewField(Required())
	f.Blur("")
	f.SetExternalError("server says no")

	f.Reset()
	assert.Equal(t, ErrorState{}, f.State())
}
