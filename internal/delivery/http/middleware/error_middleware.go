package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/subahan00/job-portal/internal/delivery/http/response"
	"github.com/subahan00/job-portal/pkg/apperror"
	"github.com/subahan00/job-portal/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Kind == apperror.KindInternal {
					// Internal details stay server-side; the client gets the
					// generic message only.
					logger.Log.Error("internal server error",
						"error", appErr.Err,
						"path", c.FullPath(),
					)
				}
				response.Error(c, appErr.Code, appErr.Kind, appErr.Message, nil)
				return
			}
			logger.Log.Error("unhandled error", "error", err, "path", c.FullPath())
			response.Error(c, http.StatusInternalServerError, apperror.KindInternal,
				"An unexpected error occurred. Please try again later.", nil)
		}
	}
}
