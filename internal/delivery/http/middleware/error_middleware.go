package middleware

import (
	"errors"
	"net/http"

	"go-hackmate-backend/internal/delivery/http/response"
	"go-hackmate-backend/pkg/apperror"
	"go-hackmate-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// Internal details stay server-side.
				reqID, _ := c.Get("RequestID")
				logger.Log.Error("unhandled request error",
					"error", err,
					"path", c.FullPath(),
					"request_id", reqID,
				)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
