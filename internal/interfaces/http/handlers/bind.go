package handlers

import (
	"errors"
	"io"

	domainerrors "fastqr.backend/internal/domain/errors"
	"fastqr.backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// bindJSON decodes the request body into dst. An empty body leaves dst zero so the
// usecase can name the missing field.
func bindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return domainerrors.BadRequest("Invalid request body")
	}
	return nil
}

// ownerID returns the authenticated account the route acts on
func ownerID(c *gin.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.Unauthorized("User not authenticated")
	}
	return userID, nil
}
