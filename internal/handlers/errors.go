package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/project_finance_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondWithError maps a service error to a status code and JSON body.
// fallback is the message shown for unexpected failures.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status, msg := http.StatusInternalServerError, fallback

	switch {
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		status, msg = http.StatusServiceUnavailable, "Service temporarily unavailable, please retry"
	case errors.Is(err, apperrors.ErrValidation):
		status, msg = http.StatusBadRequest, errorMessage(err)
	case errors.Is(err, apperrors.ErrNotFound):
		status, msg = http.StatusNotFound, errorMessage(err)
	case errors.Is(err, apperrors.ErrAllAlreadyAssigned), errors.Is(err, apperrors.ErrDuplicate):
		status, msg = http.StatusConflict, errorMessage(err)
	case errors.Is(err, apperrors.ErrUnauthorized):
		status, msg = http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, apperrors.ErrForbidden):
		status, msg = http.StatusForbidden, "You do not have permission to perform this action"
	}

	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": msg})
}

// errorMessage prefers the AppError message over the wrapped chain.
func errorMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}
