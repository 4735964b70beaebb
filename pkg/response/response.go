package response

import (
	"errors"
	"net/http"

	pkgErrors "calendar-assistant/pkg/errors"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a success envelope with an optional message.
func NewOKResp(message string) Resp {
	return Resp{Status: StatusSuccess, Message: message}
}

// OK sends 200 JSON. data is sent as-is and is expected to embed Resp.
func OK(c *gin.Context, data any) {
	if data == nil {
		data = NewOKResp("")
	}
	c.JSON(http.StatusOK, data)
}

// Error sends an error envelope. *errors.HTTPError keeps its status, message and
// details; anything else becomes a 500 carrying the error text.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.AbortWithStatusJSON(httpErr.Code, Resp{
			Status:  StatusError,
			Message: httpErr.Message,
			Errors:  httpErr.Details,
		})
		return
	}
	InternalError(c, err)
}

// InternalError sends 500 with the error text, or a generic message when err is nil.
func InternalError(c *gin.Context, err error) {
	message := DefaultErrorMessage
	if err != nil {
		message = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		Status:  StatusError,
		Message: message,
	})
}

// BadRequest sends 400 with the error text.
func BadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Resp{
		Status:  StatusError,
		Message: err.Error(),
	})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		Status:  StatusError,
		Message: TooManyRequestsMsg,
	})
}
