package handlers

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gigit-app/gigit/backend/internal/errs"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestWriteError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", errs.Validation("rating", "must be between 1 and 5"), http.StatusUnprocessableEntity},
		{"auth", errs.Auth("sign in to write a review"), http.StatusForbidden},
		{"conflict", errs.Conflict("this review already has a reply"), http.StatusConflict},
		{"not found", errs.NotFound("review", "abc"), http.StatusNotFound},
		{"transient", errs.Transient(errors.New("connection refused")), http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			writeError(c, discardLogger(), tc.err)

			assert.Equal(t, tc.status, recorder.Code)
		})
	}
}
