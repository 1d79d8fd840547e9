package presenter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/totegamma/logistics-backend/internal/domain"
)

const (
	InternalCode    = "INTERNAL_SERVER_ERROR"
	InternalMessage = "Something went wrong. Please contact the IT Support."
)

// ErrorHandler is the single place errors turn into responses. Domain
// errors keep their code and status; anything unexpected is logged and
// reported as a generic 500.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := describe(err)
		if status == http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, Envelope{Data: nil, Error: body})
		}
		if writeErr != nil {
			logger.Warn("write error response", zap.Error(writeErr))
		}
	}
}

func describe(err error) (int, *ErrorBody) {
	var appErr *domain.AppError
	if errors.As(err, &appErr) && appErr.Reason != domain.ReasonInternal && appErr.Status != 0 {
		return appErr.Status, &ErrorBody{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		return httpErr.Code, &ErrorBody{
			Code:    fmt.Sprintf("HTTP_%d", httpErr.Code),
			Message: message,
		}
	}

	return http.StatusInternalServerError, &ErrorBody{
		Code:    InternalCode,
		Message: InternalMessage,
	}
}
