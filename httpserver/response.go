package httpserver

import (
	"github.com/labstack/echo/v4"

	"movieapi/errs"
)

type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse carries either a plain message or the list of failed
// field constraints.
type errorResponse struct {
	Error interface{} `json:"error"`
}

func writeMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, messageResponse{Message: message})
}

func invalidBody(err error) errorResponse {
	if issues := errs.ErrorIssues(err); len(issues) > 0 {
		return errorResponse{Error: issues}
	}
	return errorResponse{Error: errs.ErrorMessage(err)}
}
