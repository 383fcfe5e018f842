package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "Bad request error",
	http.StatusNotFound:            "Resource not found",
	http.StatusUnprocessableEntity: "Unprocessable entity",
	http.StatusInternalServerError: "An error has occured, please try again",
}

// AbortWithError writes the fixed error body for status and stops the
// handler chain. Statuses without a fixed body are reported as 500.
func AbortWithError(c *gin.Context, status int) {
	message, ok := errorMessages[status]
	if !ok {
		status = http.StatusInternalServerError
		message = errorMessages[status]
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// NotFound answers unknown routes and methods.
func NotFound(c *gin.Context) {
	AbortWithError(c, http.StatusNotFound)
}

// bindFields lists the request fields that failed validation, for logging.
func bindFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Namespace()+":"+fe.Tag())
	}
	return fields
}

func logBindError(logger *zap.Logger, msg string, err error) {
	if fields := bindFields(err); fields != nil {
		logger.Debug(msg, zap.Strings("fields", fields))
		return
	}
	logger.Debug(msg, zap.Error(err))
}
