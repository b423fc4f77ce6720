package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the error payload every endpoint returns on failure. An
// endpoint either returns a complete well-typed payload or this object,
// never a mixture.
type ErrorBody struct {
	Error string `json:"error"`
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorBody{Error: errorMessage})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// MethodNotAllowedResponse sends a 405 Method Not Allowed response
func MethodNotAllowedResponse(c echo.Context) error {
	return ErrorResponseHandler(c, http.StatusMethodNotAllowed, "Method not allowed")
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "An unexpected error occurred"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}
