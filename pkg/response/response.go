package response

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thinhdeeptry/report-service/pkg/discord"
	"github.com/thinhdeeptry/report-service/pkg/errors"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Created writes a 201 response with the standard envelope.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// NoContent writes a 204 response with an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error writes an error response. HTTPError values map to their status code
// and message; anything else becomes a generic 400. Server-side errors are
// forwarded to Discord when a client is configured.
func Error(c *gin.Context, err error, notifier discord.IDiscord) {
	if httpErr, ok := err.(*errors.HTTPError); ok {
		if httpErr.StatusCode >= http.StatusInternalServerError {
			notifyDiscord(c, notifier, httpErr.Message, err)
		}
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   err.Error(),
	})
}

// PanicError writes a 500 response for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, notifier discord.IDiscord) {
	err := fmt.Errorf("panic: %v", recovered)
	notifyDiscord(c, notifier, "Internal server error", err)

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

func notifyDiscord(c *gin.Context, notifier discord.IDiscord, title string, err error) {
	if notifier == nil {
		return
	}
	// Detached context: the notification must not be cancelled with the request.
	go func() {
		_ = notifier.SendError(context.Background(), title,
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path), err)
	}()
}
