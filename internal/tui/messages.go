package tui

import (
	"github.com/saarzint/candle-recall/models"
)

// resultMsg is implemented by every message that carries the outcome of a
// server call. The app model inspects it for an expired session before the
// current screen sees it.
type resultMsg interface {
	failure() error
}

type loginDoneMsg struct {
	profile models.Profile
	err     error
}

type registerDoneMsg struct {
	profile models.Profile
	err     error
}

type forgotDoneMsg struct {
	resp models.ForgotPasswordResponse
	err  error
}

type resetDoneMsg struct {
	err error
}

type reportsLoadedMsg struct {
	list models.ReportList
	tags []string
	err  error
}

type reportLoadedMsg struct {
	report models.Report
	err    error
}

type reportSavedMsg struct {
	report models.Report
	err    error
}

type reportDeletedMsg struct {
	err error
}

type tagChangedMsg struct {
	report models.Report
	err    error
}

type profileLoadedMsg struct {
	profile models.Profile
	err     error
}

type usernameChangedMsg struct {
	profile models.Profile
	err     error
}

type passwordChangedMsg struct {
	err error
}

type emailStepMsg struct {
	state models.EmailChangeState
	err   error
}

type emailChangedMsg struct {
	profile models.Profile
	err     error
}

type deletionCodeMsg struct {
	resp models.CodeSentResponse
	err  error
}

type accountDeletedMsg struct {
	err error
}

type signedOutMsg struct {
	notice string
	err    error
}

func (m loginDoneMsg) failure() error       { return m.err }
func (m registerDoneMsg) failure() error    { return m.err }
func (m forgotDoneMsg) failure() error      { return m.err }
func (m resetDoneMsg) failure() error       { return m.err }
func (m reportsLoadedMsg) failure() error   { return m.err }
func (m reportLoadedMsg) failure() error    { return m.err }
func (m reportSavedMsg) failure() error     { return m.err }
func (m reportDeletedMsg) failure() error   { return m.err }
func (m tagChangedMsg) failure() error      { return m.err }
func (m profileLoadedMsg) failure() error   { return m.err }
func (m usernameChangedMsg) failure() error { return m.err }
func (m passwordChangedMsg) failure() error { return m.err }
func (m emailStepMsg) failure() error       { return m.err }
func (m emailChangedMsg) failure() error    { return m.err }
func (m deletionCodeMsg) failure() error    { return m.err }
func (m accountDeletedMsg) failure() error  { return m.err }

// sessionExpiredMsg is sent by the session job when the server stops
// accepting the token.
type sessionExpiredMsg struct{}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct {
	id int
}
