package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

const actorKey = "actor_id"

// authenticate requires a valid bearer token and stores its user ID for
// the handler.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid Authorization header")
		}

		userID, err := s.verifier.Verify(c.Request().Context(), token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token").SetInternal(err)
		}

		c.Set(actorKey, userID)
		return next(c)
	}
}

func actorID(c echo.Context) int64 {
	id, _ := c.Get(actorKey).(int64)
	return id
}

// observe logs every request and records its duration under the route
// template, not the raw path.
func (s *Server) observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}
		elapsed := time.Since(start)

		req := c.Request()
		status := c.Response().Status
		path := c.Path()
		if path == "" {
			path = "unmatched"
		}

		s.metrics.ObserveHTTPRequestDuration(req.Method, path, strconv.Itoa(status), elapsed.Seconds())
		s.log.Info(req.Context(), "request handled",
			logger.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			logger.String("method", req.Method),
			logger.String("path", req.URL.Path),
			logger.Int("status", status),
			logger.Int64("duration_ms", elapsed.Milliseconds()),
		)

		return nil
	}
}

// handleError renders every failure as {"error", "request_id"}. Server-side
// failures are logged and their details are not exposed.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	status, message := describe(err)
	if status >= http.StatusInternalServerError {
		s.log.Error(c.Request().Context(), "request failed",
			logger.String("request_id", requestID),
			logger.WithError(err),
		)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, errorResponse{Error: message, RequestID: requestID})
	}
	if writeErr != nil {
		s.log.Warn(c.Request().Context(), "error response not written", logger.WithError(writeErr))
	}
}

func describe(err error) (int, string) {
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		return http.StatusBadRequest, bindErr.Error()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrObjectAlreadyExists), errors.Is(err, errs.ErrObjectInUse):
		return http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, commands.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, queries.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, errs.ErrStorageFailure):
		return http.StatusServiceUnavailable, "storage is temporarily unavailable"
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}
