package router

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"freelanceflow/internal/config"
	apperrors "freelanceflow/internal/errors"
	"freelanceflow/internal/response"
)

// newHTTPErrorHandler builds the centralized error-to-envelope translator.
// Domain errors carry their own status, validation failures become per-field
// details, and everything else is logged and surfaced as a 500 with the
// message suppressed in production.
func newHTTPErrorHandler(log *zap.Logger, cfg *config.Config) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "internal server error"
		var fieldErrors []apperrors.FieldError

		var httpErr *apperrors.HTTPError
		var echoErr *echo.HTTPError
		var validationErrs validator.ValidationErrors

		switch {
		case errors.As(err, &httpErr):
			status = httpErr.StatusCode
			message = httpErr.Message
		case errors.As(err, &validationErrs):
			status = http.StatusBadRequest
			message = "invalid request data"
			for _, fe := range validationErrs {
				fieldErrors = append(fieldErrors, apperrors.FieldError{
					Field:   jsonFieldName(fe.Field()),
					Message: fieldErrorMessage(fe),
				})
			}
		case errors.As(err, &echoErr):
			status = echoErr.Code
			message = fmt.Sprintf("%v", echoErr.Message)
		}

		if status >= http.StatusInternalServerError {
			log.Error("unhandled error",
				zap.Error(err),
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)
			if cfg.IsProduction() {
				message = "internal server error"
			} else {
				message = err.Error()
			}
		}

		if writeErr := c.JSON(status, response.Error(message, fieldErrors)); writeErr != nil {
			log.Error("write error response", zap.Error(writeErr))
		}
	}
}

// jsonFieldName lower-cases the leading character of a struct field name so
// validation details reference the JSON field the caller sent.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return "is invalid"
	}
}
