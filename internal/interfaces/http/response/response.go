package response

import (
	"errors"
	"net/http"

	domainerrors "fastqr.backend/internal/domain/errors"
	"fastqr.backend/pkg/logger"
	"fastqr.backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Body is the envelope of every successful response
type Body struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PageBody is Body plus pagination metadata
type PageBody struct {
	Message string               `json:"message"`
	Data    interface{}          `json:"data"`
	Meta    utils.PaginationMeta `json:"meta"`
}

// Success sends a success response
func Success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Body{Message: message, Data: data})
}

// Paginated sends a page of results with its metadata
func Paginated(c *gin.Context, message string, data interface{}, meta utils.PaginationMeta) {
	c.JSON(http.StatusOK, PageBody{Message: message, Data: data, Meta: meta})
}

// Error sends an error response. Anything that is not an AppError becomes a 500.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.InternalError(err)
	}

	status := appErr.Status()
	if status >= http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "Request failed",
			zap.String("path", c.FullPath()),
			zap.String("message", appErr.Message),
			zap.Error(appErr.Err),
		)
	}

	c.JSON(status, gin.H{
		"code":    appErr.Kind,
		"message": appErr.Message,
	})
}

// ErrorWithError sends an error response with a specific status and code
func ErrorWithError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}
