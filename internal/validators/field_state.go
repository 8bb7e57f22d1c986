package validators

// ErrorState holds the two error sources of a single input.
//
// External errors come from the server or the enclosing form. Internal
// errors come from the field's own Rule. External wins when both are set.
type ErrorState struct {
	External string
	Internal string
}

// Displayed returns the message that should be rendered under the input.
func (s ErrorState) Displayed() string {
	if s.External != "" {
		return s.External
	}
	return s.Internal
}

// HasError reports whether the input should be styled as invalid.
func (s ErrorState) HasError() bool {
	return s.Displayed() != ""
}

// Field tracks the error state of one input across change, blur and
// submit events. A Field belongs to a single UI model and is not safe for
// concurrent use.
type Field struct {
	Rule Rule

	// ValidateOnChange re-validates on every keystroke.
	ValidateOnChange bool
	// ValidateOnBlur validates when the input loses focus.
	ValidateOnBlur bool

	state ErrorState
}

// NewField returns a Field that validates on blur only.
func NewField(rule Rule) *Field {
	return &Field{Rule: rule, ValidateOnBlur: true}
}

// Change handles a new value typed by the user. Without ValidateOnChange
// an existing internal error is cleared immediately, without re-validating,
// so the user is not nagged while correcting the input.
func (f *Field) Change(value string) {
	if f.ValidateOnChange {
		f.state.Internal = Message(value, f.Rule)
		return
	}
	if f.state.Internal != "" {
		f.state.Internal = ""
	}
}

// Blur handles the input losing focus.
func (f *Field) Blur(value string) {
	if f.ValidateOnBlur {
		f.state.Internal = Message(value, f.Rule)
	}
}

// Validate forces validation, e.g. on submit, and returns the displayed
// message.
func (f *Field) Validate(value string) string {
	f.state.Internal = Message(value, f.Rule)
	return f.Displayed()
}

// SetExternalError replaces the external message. Every new non-empty
// external message drops the internal one, so a stale local message does
// not reappear once the external error is cleared.
func (f *Field) SetExternalError(msg string) {
	if msg != "" && msg != f.state.External {
		f.state.Internal = ""
	}
	f.state.External = msg
}

// Reset clears both error sources.
func (f *Field) Reset() {
	f.state = ErrorState{}
}

// State returns a copy of the current error state.
func (f *Field) State() ErrorState {
	return f.state
}

// Displayed returns the message to render, external first.
func (f *Field) Displayed() string {
	return f.state.Displayed()
}

// HasError reports whether the field should be styled as invalid.
func (f *Field) HasError() bool {
	return f.state.HasError()
}
