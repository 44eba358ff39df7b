package services

import (
	"errors"
	"net/http"

	"github.com/yungbote/booklibrary-portal/internal/backend"
	"github.com/yungbote/booklibrary-portal/internal/platform/apierr"
)

// Outcome codes the presentation layer switches on.
const (
	CodeNotFound           = "not_found"
	CodeBackendError       = "backend_error"
	CodeValidationFailed   = "validation_failed"
	CodeIdentifierMismatch = "identifier_mismatch"
)

// backendFailure converts a failed Outcome into an apierr the handlers can
// classify. A transport failure carries no status, so it maps to 502.
func backendFailure(o backend.Outcome) error {
	if o.NotFound() {
		return apierr.New(http.StatusNotFound, CodeNotFound, o.Failure())
	}
	status := o.Status
	if o.Err != nil || status == 0 {
		status = http.StatusBadGateway
	}
	return apierr.New(status, CodeBackendError, o.Failure())
}

// decodeOutcome unmarshals a backend payload into v, classifying decode
// failures on a 2xx response as backend errors too.
func decodeOutcome(o backend.Outcome, v any) error {
	if err := o.Decode(v); err != nil {
		if o.Ok() {
			return apierr.New(http.StatusBadGateway, CodeBackendError, err)
		}
		return backendFailure(o)
	}
	return nil
}

// CodeOf extracts the outcome code from an error produced by this package.
func CodeOf(err error) string {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}
