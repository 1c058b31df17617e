package http

import (
	"net/http"

	"github.com/fwojciec/reactdict"
	"github.com/gin-gonic/gin"
)

// internalErrorMessage is shown to clients instead of internal details.
const internalErrorMessage = "An error occurred while processing your request"

var codes = map[string]int{
	reactdict.ECONFLICT:       http.StatusConflict,
	reactdict.EINVALID:        http.StatusBadRequest,
	reactdict.ENOTFOUND:       http.StatusNotFound,
	reactdict.ENOTIMPLEMENTED: http.StatusNotImplemented,
	reactdict.EUNAUTHORIZED:   http.StatusUnauthorized,
	reactdict.EINTERNAL:       http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// errorMessage returns the client-facing message for err.
func errorMessage(err error) string {
	if reactdict.ErrorCode(err) == reactdict.EINTERNAL {
		return internalErrorMessage
	}
	return reactdict.ErrorMessage(err)
}

// writeError logs internal errors and writes err as {"error": msg}.
func (s *Server) writeError(c *gin.Context, err error) {
	code := reactdict.ErrorCode(err)
	if code == reactdict.EINTERNAL {
		s.Logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(requestIDKey),
			"error", err,
		)
	}
	c.AbortWithStatusJSON(ErrorStatusCode(code), gin.H{"error": errorMessage(err)})
}
