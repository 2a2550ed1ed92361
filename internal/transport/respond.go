package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// StatusCode is an error carrying nothing but an HTTP status.
type StatusCode int

func (s StatusCode) Error() string {
	if text := http.StatusText(int(s)); text != "" {
		return text
	}
	return strconv.Itoa(int(s))
}

// respond writes the outcome of a handler. Failures become {"error": message}
// with a status taken from the error, 400 by default. Strings and byte slices are
// written verbatim, nil writes no body, anything else is JSON.
func respond(c *gin.Context, result any, err error) {
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatusJSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	switch body := result.(type) {
	case nil:
		c.Status(http.StatusOK)
	case string:
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
	case json.RawMessage:
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
	case []byte:
		c.Data(http.StatusOK, "application/octet-stream", body)
	default:
		c.JSON(http.StatusOK, body)
	}
}

func errorStatus(err error) int {
	var code StatusCode
	if errors.As(err, &code) && validStatus(int(code)) {
		return int(code)
	}
	var declared interface{ HTTPStatus() int }
	if errors.As(err, &declared) && validStatus(declared.HTTPStatus()) {
		return declared.HTTPStatus()
	}
	return http.StatusBadRequest
}

func validStatus(code int) bool {
	return code >= 100 && code <= 599
}
