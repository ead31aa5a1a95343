// backend/internal/api/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gigit-app/gigit/backend/internal/errs"
	"github.com/gigit-app/gigit/backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// writeError maps the service error taxonomy onto HTTP statuses using the
// shared response envelope.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	var validation *errs.ValidationError
	var authErr *errs.AuthError
	var conflict *errs.ConflictError
	var notFound *errs.NotFoundError
	var transient *errs.TransientError

	switch {
	case errors.As(err, &validation):
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, "Validation failed", err)
	case errors.As(err, &authErr):
		utils.ErrorResponse(c, http.StatusForbidden, "Not authorized", err)
	case errors.As(err, &conflict):
		utils.ErrorResponse(c, http.StatusConflict, "Conflict", err)
	case errors.As(err, &notFound):
		utils.ErrorResponse(c, http.StatusNotFound, "Not found", err)
	case errors.As(err, &transient):
		logger.WithError(err).Error("Upstream failure")
		utils.ErrorResponse(c, http.StatusBadGateway, "Service temporarily unavailable", nil)
	default:
		logger.WithError(err).Error("Unhandled error")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal error", nil)
	}
}
