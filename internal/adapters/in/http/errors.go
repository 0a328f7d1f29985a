package http

import (
	"errors"
	"fmt"
	"net/http"

	"eta/internal/adapters/in/http/openapi"
	"eta/internal/core/domain/services"
	"eta/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// requestError is a contract violation found before any handler ran.
type requestError struct {
	err    error
	fields map[string]string
}

func (e *requestError) Error() string {
	return e.err.Error()
}

func (e *requestError) Unwrap() error {
	return e.err
}

func newOpenAPIError(err error) *requestError {
	return &requestError{err: err, fields: openapi.Fields(err)}
}

// errorHandler renders every error returned by a route as an Error body.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := classify(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"route", c.Path(),
			"error", err,
		)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		s.logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", err)
	}
}

func classify(err error) (int, Error) {
	var (
		reqErr  *requestError
		pErr    *paramError
		valErrs validator.ValidationErrors
		httpErr *echo.HTTPError
	)
	fields := make(map[string]string)

	switch {
	case errors.As(err, &reqErr):
		return badRequest("request does not match the api contract", reqErr.fields)
	case errors.As(err, &pErr):
		return badRequest(pErr.Error(), map[string]string{pErr.name: pErr.err.Error()})
	case errors.As(err, &valErrs):
		return badRequest("request is invalid", validationFields(valErrs))
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, Error{Code: http.StatusNotFound, Message: err.Error()}
	case errors.Is(err, services.ErrNoActiveWarehouses):
		return http.StatusUnprocessableEntity, Error{Code: http.StatusUnprocessableEntity, Message: err.Error()}
	case errors.Is(err, services.ErrNoLineItems), errors.Is(err, services.ErrDuplicateWarehouseCode):
		collectDomainFields(err, fields)
		return badRequest(err.Error(), fields)
	case collectDomainFields(err, fields):
		return badRequest("request is invalid", fields)
	case errors.As(err, &httpErr):
		return httpErr.Code, Error{Code: httpErr.Code, Message: fmt.Sprint(httpErr.Message)}
	default:
		return http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		}
	}
}

func badRequest(message string, fields map[string]string) (int, Error) {
	if len(fields) == 0 {
		fields = nil
	}
	return http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message, Fields: fields}
}

// collectDomainFields walks err, including joined errors, and records every
// value error under its parameter name. It reports whether any was found.
func collectDomainFields(err error, fields map[string]string) bool {
	switch e := err.(type) { //nolint:errorlint // the tree is walked by hand
	case nil:
		return false
	case *errs.ValueIsInvalidError:
		fields[e.ParamName] = e.Error()
		return true
	case *errs.ValueIsOutOfRangeError:
		fields[e.ParamName] = e.Error()
		return true
	case *errs.ValueIsRequiredError:
		fields[e.ParamName] = e.Error()
		return true
	case interface{ Unwrap() []error }:
		found := false
		for _, inner := range e.Unwrap() {
			found = collectDomainFields(inner, fields) || found
		}
		return found
	default:
		return collectDomainFields(errors.Unwrap(err), fields)
	}
}
