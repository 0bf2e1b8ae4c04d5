package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mazation/praktikaBack/internal/apperr"
	"github.com/mazation/praktikaBack/internal/dto"
	"github.com/mazation/praktikaBack/internal/quiz"
)

// respondError maps service errors onto HTTP statuses. A DecodeError at
// this point means a stored artifact no longer decodes, which is a
// server-side data problem rather than client input.
func respondError(ctx *gin.Context, err error) {
	var decodeErr *quiz.DecodeError
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, apperr.ErrPermissionDenied):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, apperr.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, apperr.ErrDuplicateEmail), errors.Is(err, apperr.ErrScoreOutOfRange):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.As(err, &decodeErr):
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal server error", Details: []string{err.Error()}})
	}
}
