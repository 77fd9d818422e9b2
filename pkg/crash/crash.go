// Package crash sends unexpected driver failures to Rollbar.  Reporting is opt in: nothing is sent
// unless a token is configured.
package crash

import (
	"github.com/stvp/rollbar"
)

// SuppressErrorReporting is a global flag to prevent any error from being sent, even when a token is set
var SuppressErrorReporting bool

// ErrorReporter sends unexpected errors to an external crash reporting service
type ErrorReporter interface {
	ReportError(err error)
	Wait()
}

type rollbarService struct{}

type noopService struct{}

// New returns a Rollbar backed reporter, or a reporter that drops everything when token is empty
func New(token string, environment string) ErrorReporter {
	if token == "" {
		return noopService{}
	}
	switch environment {
	case "development":
		rollbar.Environment = "development"
	default:
		rollbar.Environment = "production"
	}
	rollbar.Token = token
	return rollbarService{}
}

// ReportError will send the error with a stack trace to Rollbar
func (rollbarService) ReportError(err error) {
	if !SuppressErrorReporting && err != nil {
		rollbar.Error(rollbar.ERR, err)
	}
}

// Wait blocks until queued reports have been sent
func (rollbarService) Wait() {
	rollbar.Wait()
}

func (noopService) ReportError(err error) {}

func (noopService) Wait() {}
